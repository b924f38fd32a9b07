package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pviana/retail_banking_app/internal/apperrors"
	"github.com/pviana/retail_banking_app/internal/core/domain"
	portsrepo "github.com/pviana/retail_banking_app/internal/core/ports/repositories"
	portssvc "github.com/pviana/retail_banking_app/internal/core/ports/services"
	"github.com/pviana/retail_banking_app/internal/dto"
)

// customerService implements the CustomerSvcFacade interface.
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{
		customerRepo: repo,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	customerID := uuid.NewString()

	var customer *domain.Customer
	switch req.Kind {
	case domain.CustomerIndividual:
		customer = domain.NewIndividual(customerID, req.FullName, req.BirthDate, req.TaxID, req.Address)
	case domain.CustomerBusiness:
		customer = domain.NewBusiness(customerID, req.CompanyName, req.RegistrationID, req.Address)
	default:
		return nil, fmt.Errorf("%w: unknown customer kind %q", apperrors.ErrValidation, req.Kind)
	}

	if customer.Identifier() == "" {
		return nil, fmt.Errorf("%w: missing customer identifier", apperrors.ErrValidation)
	}

	// Tax and registration IDs share one identifier space; the check covers both.
	existing, err := s.customerRepo.FindCustomerByIdentifier(ctx, customer.Identifier())
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing customer",
			slog.String("identifier", customer.Identifier()))
		return nil, err
	}
	if existing != nil {
		err := fmt.Errorf("customer with identifier %s: %w", customer.Identifier(), apperrors.ErrDuplicate)
		s.LogError(ctx, err, "Duplicate customer identifier",
			slog.String("identifier", customer.Identifier()))
		return nil, err
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer",
			slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created successfully",
		slog.String("customer_id", customer.CustomerID),
		slog.String("kind", string(customer.Kind)))
	return customer, nil
}

func (s *customerService) FindCustomerByIdentifier(ctx context.Context, identifier string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByIdentifier(ctx, identifier)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer by identifier",
				slog.String("identifier", identifier))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Customer retrieved successfully",
		slog.String("customer_id", customer.CustomerID))
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, err
	}
	if customers == nil {
		return []*domain.Customer{}, nil
	}
	return customers, nil
}
