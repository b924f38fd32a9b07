package services

import (
	"context"

	"github.com/pviana/retail_banking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountSvcFacade defines the service operations for accounts.
type AccountSvcFacade interface {
	// OpenAccount creates a checking account for an existing customer,
	// assigning the next sequential account number.
	OpenAccount(ctx context.Context, customerIdentifier string) (*domain.CheckingAccount, error)

	// ListAccountSummaries returns display summaries for all accounts in
	// registry order.
	ListAccountSummaries(ctx context.Context) ([]domain.AccountSummary, error)

	// ChangeCeiling updates the withdrawal ceiling of one of the customer's
	// accounts. This bypasses the transaction path and writes no history.
	ChangeCeiling(ctx context.Context, customerIdentifier string, accountNumber int64, newCeiling decimal.Decimal) (*domain.CheckingAccount, error)
}
