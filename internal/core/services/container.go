package services

import (
	portsrepo "github.com/pviana/retail_banking_app/internal/core/ports/repositories"
	portssvc "github.com/pviana/retail_banking_app/internal/core/ports/services"
	"github.com/pviana/retail_banking_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Account = NewAccountService(
		repos.AccountRepo,
		repos.CustomerRepo,
		WithBranchCode(cfg.BranchCode),
	)
	container.Transaction = NewTransactionService(repos.CustomerRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CustomerSvcFacade    = (*customerService)(nil)
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
)
