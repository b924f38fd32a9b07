package memory_test

import (
	"context"
	"testing"

	"github.com/pviana/retail_banking_app/internal/adapters/memory"
	"github.com/pviana/retail_banking_app/internal/apperrors"
	"github.com/pviana/retail_banking_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	account := domain.NewCheckingAccount(1, domain.DefaultBranchCode, "cust-1")
	require.NoError(t, repo.SaveAccount(ctx, account))

	found, err := repo.FindAccountByNumber(ctx, 1)
	require.NoError(t, err)
	assert.Same(t, account, found)

	_, err = repo.FindAccountByNumber(ctx, 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAccountRepository_DuplicateNumber(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	require.NoError(t, repo.SaveAccount(ctx, domain.NewCheckingAccount(1, domain.DefaultBranchCode, "cust-1")))

	err := repo.SaveAccount(ctx, domain.NewCheckingAccount(1, domain.DefaultBranchCode, "cust-2"))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	count, err := repo.CountAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAccountRepository_CountAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	count, err := repo.CountAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// Sequential numbering is count+1 at each step, across customers.
	for i := int64(1); i <= 3; i++ {
		count, err = repo.CountAccounts(ctx)
		require.NoError(t, err)
		account := domain.NewCheckingAccount(count+1, domain.DefaultBranchCode, "cust-1")
		require.NoError(t, repo.SaveAccount(ctx, account))
		assert.Equal(t, i, account.Number())
	}

	accounts, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	for i, account := range accounts {
		assert.Equal(t, int64(i+1), account.Number())
	}
}
