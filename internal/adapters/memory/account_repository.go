package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pviana/retail_banking_app/internal/apperrors"
	"github.com/pviana/retail_banking_app/internal/core/domain"
	portsrepo "github.com/pviana/retail_banking_app/internal/core/ports/repositories"
)

// AccountRepository is the in-memory flat registry of all accounts across
// customers. It is used for numbering and listing; each stored account is
// also reachable from exactly one customer's account list.
type AccountRepository struct {
	mu       sync.RWMutex
	byNumber map[int64]*domain.CheckingAccount
	ordered  []*domain.CheckingAccount
}

// NewAccountRepository creates an empty in-memory account registry.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byNumber: make(map[int64]*domain.CheckingAccount),
	}
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

// SaveAccount registers a new account under its number.
func (r *AccountRepository) SaveAccount(ctx context.Context, account *domain.CheckingAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byNumber[account.Number()]; exists {
		return fmt.Errorf("account %d: %w", account.Number(), apperrors.ErrDuplicate)
	}

	r.byNumber[account.Number()] = account
	r.ordered = append(r.ordered, account)
	return nil
}

// FindAccountByNumber retrieves an account by its sequential number.
func (r *AccountRepository) FindAccountByNumber(ctx context.Context, number int64) (*domain.CheckingAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.byNumber[number]
	if !exists {
		return nil, fmt.Errorf("account %d: %w", number, apperrors.ErrNotFound)
	}
	return account, nil
}

// ListAccounts returns all accounts in registry order.
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]*domain.CheckingAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.CheckingAccount, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

// CountAccounts returns the number of registered accounts.
func (r *AccountRepository) CountAccounts(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.ordered)), nil
}
