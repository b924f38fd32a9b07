// Package memory provides in-memory repository implementations. All state
// lives for one process run and is discarded on exit; there is no durable
// storage behind these adapters.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pviana/retail_banking_app/internal/apperrors"
	"github.com/pviana/retail_banking_app/internal/core/domain"
	portsrepo "github.com/pviana/retail_banking_app/internal/core/ports/repositories"
)

// CustomerRepository is an in-memory implementation of
// CustomerRepositoryFacade. It stores shared pointers: the customer objects
// it hands out are the same ones that own the live account lists.
type CustomerRepository struct {
	mu           sync.RWMutex
	byIdentifier map[string]*domain.Customer
	byID         map[string]*domain.Customer
	ordered      []*domain.Customer
}

// NewCustomerRepository creates an empty in-memory customer registry.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		byIdentifier: make(map[string]*domain.Customer),
		byID:         make(map[string]*domain.Customer),
	}
}

var _ portsrepo.CustomerRepositoryFacade = (*CustomerRepository)(nil)

// SaveCustomer registers a new customer. The identifier must be unique across
// the whole registry, covering both tax IDs and registration IDs.
func (r *CustomerRepository) SaveCustomer(ctx context.Context, customer *domain.Customer) error {
	identifier := customer.Identifier()
	if identifier == "" {
		return fmt.Errorf("%w: customer identifier is required", apperrors.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byIdentifier[identifier]; exists {
		return fmt.Errorf("customer with identifier %s: %w", identifier, apperrors.ErrDuplicate)
	}

	r.byIdentifier[identifier] = customer
	r.byID[customer.CustomerID] = customer
	r.ordered = append(r.ordered, customer)
	return nil
}

// FindCustomerByIdentifier retrieves a customer by exact identifier match.
func (r *CustomerRepository) FindCustomerByIdentifier(ctx context.Context, identifier string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, exists := r.byIdentifier[identifier]
	if !exists {
		return nil, fmt.Errorf("customer with identifier %s: %w", identifier, apperrors.ErrNotFound)
	}
	return customer, nil
}

// FindCustomerByID retrieves a customer by its internal ID.
func (r *CustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, exists := r.byID[customerID]
	if !exists {
		return nil, fmt.Errorf("customer %s: %w", customerID, apperrors.ErrNotFound)
	}
	return customer, nil
}

// ListCustomers returns all customers in registration order.
func (r *CustomerRepository) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Customer, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}
