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

// transactionService implements the TransactionSvcFacade interface. It
// orchestrates the customer -> transaction -> account flow: the customer
// applies the transaction and records history on success.
type transactionService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		customerRepo: customerRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) Deposit(ctx context.Context, customerIdentifier string, accountNumber int64, amount decimal.Decimal) (*domain.CheckingAccount, error) {
	return s.apply(ctx, customerIdentifier, accountNumber, domain.NewDeposit(amount))
}

func (s *transactionService) Withdraw(ctx context.Context, customerIdentifier string, accountNumber int64, amount decimal.Decimal) (*domain.CheckingAccount, error) {
	return s.apply(ctx, customerIdentifier, accountNumber, domain.NewWithdraw(amount))
}

func (s *transactionService) Statement(ctx context.Context, customerIdentifier string, accountNumber int64) (*domain.Customer, *domain.CheckingAccount, error) {
	customer, account, err := s.resolve(ctx, customerIdentifier, accountNumber)
	if err != nil {
		return nil, nil, err
	}
	s.LogDebug(ctx, "Statement resolved",
		slog.Int64("account_number", account.Number()),
		slog.Int("records", account.History().Len()))
	return customer, account, nil
}

// apply resolves the customer and account, then routes the transaction
// through Customer.ApplyTransaction so history recording stays in one place.
func (s *transactionService) apply(ctx context.Context, customerIdentifier string, accountNumber int64, tx domain.Transaction) (*domain.CheckingAccount, error) {
	customer, account, err := s.resolve(ctx, customerIdentifier, accountNumber)
	if err != nil {
		return nil, err
	}

	if err := customer.ApplyTransaction(account, tx); err != nil {
		s.LogDebug(ctx, "Transaction rejected",
			slog.String("type", string(tx.Type)),
			slog.String("amount", tx.Amount.String()),
			slog.Int64("account_number", account.Number()),
			slog.String("reason", err.Error()))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction applied successfully",
		slog.String("type", string(tx.Type)),
		slog.String("amount", tx.Amount.String()),
		slog.Int64("account_number", account.Number()),
		slog.String("balance", account.Balance().String()))
	return account, nil
}

func (s *transactionService) resolve(ctx context.Context, customerIdentifier string, accountNumber int64) (*domain.Customer, *domain.CheckingAccount, error) {
	customer, err := s.customerRepo.FindCustomerByIdentifier(ctx, customerIdentifier)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer",
				slog.String("identifier", customerIdentifier))
		}
		return nil, nil, err
	}

	account, err := customer.SelectAccount(accountNumber)
	if err != nil {
		s.LogDebug(ctx, "Account selection failed",
			slog.String("customer_id", customer.CustomerID),
			slog.Int64("account_number", accountNumber),
			slog.Int("owned_accounts", len(customer.Accounts())))
		return nil, nil, err
	}
	return customer, account, nil
}
