package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pviana/retail_banking_app/internal/apperrors"
	"github.com/pviana/retail_banking_app/internal/core/domain"
	portsrepo "github.com/pviana/retail_banking_app/internal/core/ports/repositories"
	portssvc "github.com/pviana/retail_banking_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface.
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	branchCode   string
}

// AccountServiceOption is a functional option for configuring the account service.
type AccountServiceOption func(*accountService)

// WithBranchCode overrides the branch code assigned to new accounts.
func WithBranchCode(branchCode string) AccountServiceOption {
	return func(s *accountService) {
		s.branchCode = branchCode
	}
}

// NewAccountService creates a new account service with the provided options.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		branchCode:   domain.DefaultBranchCode,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) OpenAccount(ctx context.Context, customerIdentifier string) (*domain.CheckingAccount, error) {
	customer, err := s.customerRepo.FindCustomerByIdentifier(ctx, customerIdentifier)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer for account creation",
				slog.String("identifier", customerIdentifier))
		}
		return nil, err
	}

	count, err := s.accountRepo.CountAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count accounts")
		return nil, err
	}

	// Account numbers are sequential over the flat registry, starting at 1.
	account := domain.NewCheckingAccount(count+1, s.branchCode, customer.CustomerID)

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.Int64("account_number", account.Number()))
		return nil, err
	}
	customer.AddAccount(account)

	s.LogInfo(ctx, "Account created successfully",
		slog.Int64("account_number", account.Number()),
		slog.String("customer_id", customer.CustomerID))
	return account, nil
}

func (s *accountService) ListAccountSummaries(ctx context.Context) ([]domain.AccountSummary, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}

	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		holderName := ""
		owner, err := s.customerRepo.FindCustomerByID(ctx, account.CustomerID())
		if err != nil {
			// Registry invariant makes this unreachable; keep the listing alive.
			s.LogError(ctx, err, "Failed to resolve account owner",
				slog.Int64("account_number", account.Number()))
		} else {
			holderName = owner.DisplayName()
		}
		summaries = append(summaries, account.Summarize(holderName))
	}

	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(summaries)))
	return summaries, nil
}

func (s *accountService) ChangeCeiling(ctx context.Context, customerIdentifier string, accountNumber int64, newCeiling decimal.Decimal) (*domain.CheckingAccount, error) {
	customer, err := s.customerRepo.FindCustomerByIdentifier(ctx, customerIdentifier)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer for ceiling change",
				slog.String("identifier", customerIdentifier))
		}
		return nil, err
	}

	account, err := customer.SelectAccount(accountNumber)
	if err != nil {
		s.LogDebug(ctx, "Account selection failed for ceiling change",
			slog.Int64("account_number", accountNumber))
		return nil, err
	}

	if err := account.ChangeCeiling(newCeiling); err != nil {
		s.LogDebug(ctx, "Ceiling change rejected",
			slog.Int64("account_number", account.Number()),
			slog.String("new_ceiling", newCeiling.String()),
			slog.String("reason", err.Error()))
		return nil, err
	}

	s.LogInfo(ctx, "Ceiling changed successfully",
		slog.Int64("account_number", account.Number()),
		slog.String("new_ceiling", newCeiling.String()),
		slog.Int("changes_used", account.CeilingChanges()))
	return account, nil
}
