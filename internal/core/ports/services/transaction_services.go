package services

import (
	"context"

	"github.com/pviana/retail_banking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionSvcFacade defines the service operations that apply transactions
// to a customer's account and project statements.
type TransactionSvcFacade interface {
	// Deposit applies a deposit to one of the customer's accounts. A zero
	// accountNumber selects the account automatically when the customer holds
	// exactly one.
	Deposit(ctx context.Context, customerIdentifier string, accountNumber int64, amount decimal.Decimal) (*domain.CheckingAccount, error)

	// Withdraw applies a withdrawal, subject to the account's ceiling and
	// withdrawal count rules.
	Withdraw(ctx context.Context, customerIdentifier string, accountNumber int64, amount decimal.Decimal) (*domain.CheckingAccount, error)

	// Statement resolves the customer and account for a read-only balance and
	// history view.
	Statement(ctx context.Context, customerIdentifier string, accountNumber int64) (*domain.Customer, *domain.CheckingAccount, error)
}
