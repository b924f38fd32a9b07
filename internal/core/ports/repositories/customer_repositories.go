package repositories

import (
	"context"

	"github.com/pviana/retail_banking_app/internal/core/domain"
)

// CustomerReader defines read operations for customer data.
type CustomerReader interface {
	// FindCustomerByIdentifier retrieves a customer by tax ID or registration
	// ID. Identifiers are compared for exact equality, no normalization.
	FindCustomerByIdentifier(ctx context.Context, identifier string) (*domain.Customer, error)

	// FindCustomerByID retrieves a customer by its internal customer ID.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves all customers in registration order.
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
}

// CustomerWriter defines write operations for customer data.
type CustomerWriter interface {
	// SaveCustomer registers a new customer. Saving a customer whose
	// identifier already exists fails with apperrors.ErrDuplicate.
	SaveCustomer(ctx context.Context, customer *domain.Customer) error
}

// CustomerRepositoryFacade combines all customer repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
