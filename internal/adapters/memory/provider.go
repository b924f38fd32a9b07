package memory

import (
	portsrepo "github.com/pviana/retail_banking_app/internal/core/ports/repositories"
)

// NewRepositoryProvider bundles fresh in-memory repositories for the service
// layer. Each call returns an isolated registry, which is what tests rely on.
func NewRepositoryProvider() *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		CustomerRepo: NewCustomerRepository(),
		AccountRepo:  NewAccountRepository(),
	}
}
