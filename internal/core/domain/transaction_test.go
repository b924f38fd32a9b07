package domain_test

import (
	"testing"

	"github.com/pviana/retail_banking_app/internal/apperrors"
	"github.com/pviana/retail_banking_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Apply(t *testing.T) {
	tests := []struct {
		name        string
		balance     int64
		tx          domain.Transaction
		wantErr     error
		wantBalance string
	}{
		{
			name:        "deposit mutates balance",
			balance:     0,
			tx:          domain.NewDeposit(decimal.NewFromInt(100)),
			wantBalance: "100",
		},
		{
			name:        "withdraw mutates balance",
			balance:     100,
			tx:          domain.NewWithdraw(decimal.NewFromInt(40)),
			wantBalance: "60",
		},
		{
			name:        "deposit surfaces account error",
			balance:     0,
			tx:          domain.NewDeposit(decimal.NewFromInt(-1)),
			wantErr:     apperrors.ErrInvalidAmount,
			wantBalance: "0",
		},
		{
			name:        "withdraw surfaces account error",
			balance:     10,
			tx:          domain.NewWithdraw(decimal.NewFromInt(20)),
			wantErr:     apperrors.ErrInsufficientFunds,
			wantBalance: "10",
		},
		{
			name:        "unknown type is rejected",
			balance:     0,
			tx:          domain.Transaction{Type: "TRANSFER", Amount: decimal.NewFromInt(10)},
			wantErr:     apperrors.ErrValidation,
			wantBalance: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := domain.NewCheckingAccount(1, domain.DefaultBranchCode, "cust-1")
			if tt.balance > 0 {
				require.NoError(t, account.Deposit(decimal.NewFromInt(tt.balance)))
			}

			err := tt.tx.Apply(account)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantBalance, account.Balance().String())
			// Apply never writes history; recording belongs to the customer path.
			assert.Equal(t, 0, account.History().Len())
		})
	}
}

func TestCustomer_ApplyTransaction_RecordsOnSuccessOnly(t *testing.T) {
	customer := domain.NewIndividual("cust-1", "Maria Silva", "01-02-1990", "111", "Rua A, 1")
	account := domain.NewCheckingAccount(1, domain.DefaultBranchCode, "cust-1")
	customer.AddAccount(account)

	// Success appends exactly one record carrying the transaction's type and amount.
	require.NoError(t, customer.ApplyTransaction(account, domain.NewDeposit(decimal.NewFromInt(250))))
	records := account.History().Records()
	require.Len(t, records, 1)
	assert.Equal(t, domain.TransactionDeposit, records[0].Type)
	assert.Equal(t, "250", records[0].Amount.String())
	assert.False(t, records[0].Timestamp.IsZero())

	// Failure appends nothing.
	err := customer.ApplyTransaction(account, domain.NewWithdraw(decimal.NewFromInt(1000)))
	assert.ErrorIs(t, err, apperrors.ErrCeilingExceeded)
	assert.Equal(t, 1, account.History().Len())

	err = customer.ApplyTransaction(account, domain.NewDeposit(decimal.Zero))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	assert.Equal(t, 1, account.History().Len())
}
