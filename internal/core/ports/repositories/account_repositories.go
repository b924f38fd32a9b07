package repositories

import (
	"context"

	"github.com/pviana/retail_banking_app/internal/core/domain"
)

// AccountReader defines read operations for the flat account registry.
type AccountReader interface {
	// FindAccountByNumber retrieves an account by its sequential number.
	FindAccountByNumber(ctx context.Context, number int64) (*domain.CheckingAccount, error)

	// ListAccounts retrieves all accounts in registry order.
	ListAccounts(ctx context.Context) ([]*domain.CheckingAccount, error)

	// CountAccounts returns the number of registered accounts. Account
	// numbering is derived from this count.
	CountAccounts(ctx context.Context) (int64, error)
}

// AccountWriter defines write operations for the account registry.
type AccountWriter interface {
	// SaveAccount registers a new account in the flat registry.
	SaveAccount(ctx context.Context, account *domain.CheckingAccount) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
