package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Account and transaction rule violations. All of these are raised strictly
// before any state is mutated, so a failed operation leaves the account unchanged.
var (
	// ErrInvalidAmount indicates a deposit or withdrawal amount <= 0.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds indicates a withdrawal larger than the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrCeilingExceeded indicates a withdrawal above the account's withdrawal ceiling.
	ErrCeilingExceeded = errors.New("withdrawal exceeds ceiling")

	// ErrWithdrawalCountExceeded indicates the account already reached its
	// maximum number of withdrawals.
	ErrWithdrawalCountExceeded = errors.New("withdrawal count exceeded")

	// ErrCeilingChangeQuotaExhausted indicates the ceiling was already changed
	// the maximum number of times.
	ErrCeilingChangeQuotaExhausted = errors.New("ceiling change quota exhausted")

	// ErrCeilingChangeTooLarge indicates a proposed ceiling above the maximum allowed.
	ErrCeilingChangeTooLarge = errors.New("new ceiling exceeds maximum allowed")

	// ErrNoAccountSelected indicates an empty or invalid account choice.
	ErrNoAccountSelected = errors.New("no account selected")
)
