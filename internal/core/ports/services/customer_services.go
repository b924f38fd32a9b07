package services

import (
	"context"

	"github.com/pviana/retail_banking_app/internal/core/domain"
	"github.com/pviana/retail_banking_app/internal/dto"
)

// CustomerSvcFacade defines the service operations for customers.
type CustomerSvcFacade interface {
	// CreateCustomer registers a new individual or business customer. A
	// duplicate tax/registration ID fails with apperrors.ErrDuplicate.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// FindCustomerByIdentifier resolves a customer by tax or registration ID.
	FindCustomerByIdentifier(ctx context.Context, identifier string) (*domain.Customer, error)

	// ListCustomers returns all customers in registration order.
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
}
