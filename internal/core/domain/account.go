package domain

import (
	"github.com/pviana/retail_banking_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultBranchCode is the branch assigned to accounts when no branch is
// configured explicitly.
const DefaultBranchCode = "0001"

const (
	// DefaultMaxWithdrawals is the number of withdrawals allowed over a
	// checking account's entire history.
	DefaultMaxWithdrawals = 3

	// MaxCeilingChanges is how many times the withdrawal ceiling may be
	// changed per account.
	MaxCeilingChanges = 3
)

var (
	// DefaultWithdrawalCeiling is the initial per-withdrawal limit of a
	// checking account.
	DefaultWithdrawalCeiling = decimal.NewFromInt(500)

	// MaxWithdrawalCeiling is the largest ceiling a ceiling change may set.
	MaxWithdrawalCeiling = decimal.NewFromInt(10000)
)

// Account holds a balance and the history of transactions applied to it.
// The balance changes only through Deposit and Withdraw; both validate before
// mutating, so a failed call leaves the account untouched.
type Account struct {
	number     int64
	branchCode string
	customerID string
	balance    decimal.Decimal
	history    *TransactionHistory
}

// NewAccount creates an account with a zero balance and an empty history.
// customerID is a non-owning back-reference to the owning customer.
func NewAccount(number int64, branchCode, customerID string) *Account {
	return &Account{
		number:     number,
		branchCode: branchCode,
		customerID: customerID,
		balance:    decimal.Zero,
		history:    NewTransactionHistory(),
	}
}

// Number returns the sequential account number.
func (a *Account) Number() int64 { return a.number }

// BranchCode returns the fixed branch code of the account.
func (a *Account) BranchCode() string { return a.branchCode }

// CustomerID returns the ID of the owning customer.
func (a *Account) CustomerID() string { return a.customerID }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// History returns the account's transaction history.
func (a *Account) History() *TransactionHistory { return a.history }

// Deposit adds amount to the balance. Amounts <= 0 are rejected with
// ErrInvalidAmount and no mutation takes place. Deposit does not write
// history; recording is the responsibility of the applying transaction path.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw subtracts amount from the balance. Amounts <= 0 fail with
// ErrInvalidAmount, amounts above the balance with ErrInsufficientFunds.
// The base account has no ceiling; any amount up to the balance is allowed.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(a.balance) {
		return apperrors.ErrInsufficientFunds
	}
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// CheckingAccount specializes Account with a per-withdrawal ceiling, a
// lifetime withdrawal count cap, and a limited quota of ceiling changes.
type CheckingAccount struct {
	Account
	ceiling        decimal.Decimal
	maxWithdrawals int
	ceilingChanges int
}

// NewCheckingAccount creates a checking account with the default ceiling and
// withdrawal cap.
func NewCheckingAccount(number int64, branchCode, customerID string) *CheckingAccount {
	return &CheckingAccount{
		Account:        *NewAccount(number, branchCode, customerID),
		ceiling:        DefaultWithdrawalCeiling,
		maxWithdrawals: DefaultMaxWithdrawals,
	}
}

// Ceiling returns the current per-withdrawal limit.
func (a *CheckingAccount) Ceiling() decimal.Decimal { return a.ceiling }

// MaxWithdrawals returns the lifetime withdrawal cap.
func (a *CheckingAccount) MaxWithdrawals() int { return a.maxWithdrawals }

// CeilingChanges returns how many ceiling changes were already performed.
func (a *CheckingAccount) CeilingChanges() int { return a.ceilingChanges }

// Withdraw applies the checking-account pre-checks before delegating to the
// base primitive. Checks run in a fixed order and the first failure wins, so
// a rejected withdrawal has no partial effects.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(a.ceiling) {
		return apperrors.ErrCeilingExceeded
	}
	if a.History().CountByType(TransactionWithdraw) >= a.maxWithdrawals {
		return apperrors.ErrWithdrawalCountExceeded
	}
	return a.Account.Withdraw(amount)
}

// ChangeCeiling sets a new withdrawal ceiling. At most MaxCeilingChanges
// changes are allowed per account and the new ceiling may not exceed
// MaxWithdrawalCeiling. This is an account-configuration mutation, not a
// financial transaction; it is never recorded in the history.
func (a *CheckingAccount) ChangeCeiling(newCeiling decimal.Decimal) error {
	if a.ceilingChanges >= MaxCeilingChanges {
		return apperrors.ErrCeilingChangeQuotaExhausted
	}
	if newCeiling.GreaterThan(MaxWithdrawalCeiling) {
		return apperrors.ErrCeilingChangeTooLarge
	}
	a.ceiling = newCeiling
	a.ceilingChanges++
	return nil
}

// AccountSummary is a read-only projection of a checking account for listings.
type AccountSummary struct {
	BranchCode string          `json:"branchCode"`
	Number     int64           `json:"number"`
	HolderName string          `json:"holderName"`
	Ceiling    decimal.Decimal `json:"ceiling"`
}

// Summarize builds the display summary for the account. The owner's display
// name is resolved by the caller since the account only keeps a customer ID.
func (a *CheckingAccount) Summarize(holderName string) AccountSummary {
	return AccountSummary{
		BranchCode: a.BranchCode(),
		Number:     a.Number(),
		HolderName: holderName,
		Ceiling:    a.ceiling,
	}
}
