package domain

import (
	"fmt"

	"github.com/pviana/retail_banking_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction deposits into or withdraws
// from an account.
type TransactionType string

const (
	TransactionDeposit  TransactionType = "DEPOSIT"
	TransactionWithdraw TransactionType = "WITHDRAW"
)

// BankAccount is the account capability a transaction operates on.
type BankAccount interface {
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	History() *TransactionHistory
}

// Transaction is a transient unit of work against one account. It is
// constructed, applied once through Customer.ApplyTransaction, and discarded;
// only the resulting history record survives.
type Transaction struct {
	Type   TransactionType `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// NewDeposit builds a deposit transaction for the given amount.
func NewDeposit(amount decimal.Decimal) Transaction {
	return Transaction{Type: TransactionDeposit, Amount: amount}
}

// NewWithdraw builds a withdrawal transaction for the given amount.
func NewWithdraw(amount decimal.Decimal) Transaction {
	return Transaction{Type: TransactionWithdraw, Amount: amount}
}

// Apply validates the transaction against the account and mutates the balance
// on success. A nil return means state changed and the transaction must be
// recorded in the account's history by the caller.
func (t Transaction) Apply(account BankAccount) error {
	switch t.Type {
	case TransactionDeposit:
		return account.Deposit(t.Amount)
	case TransactionWithdraw:
		return account.Withdraw(t.Amount)
	default:
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, t.Type)
	}
}
