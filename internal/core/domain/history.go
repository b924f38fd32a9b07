package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is one immutable entry in an account's history.
type TransactionRecord struct {
	Type      TransactionType `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// TransactionHistory is the append-only ordered log of applied transactions
// for a single account. Records keep insertion order and are never mutated
// after being appended.
type TransactionHistory struct {
	records []TransactionRecord
}

// NewTransactionHistory creates an empty history.
func NewTransactionHistory() *TransactionHistory {
	return &TransactionHistory{}
}

// Append adds a record to the end of the history. Validation happened
// upstream in the transaction and account primitives; Append never fails.
func (h *TransactionHistory) Append(txType TransactionType, amount decimal.Decimal, timestamp time.Time) {
	h.records = append(h.records, TransactionRecord{
		Type:      txType,
		Amount:    amount,
		Timestamp: timestamp,
	})
}

// Records returns a copy of the history in insertion order.
func (h *TransactionHistory) Records() []TransactionRecord {
	out := make([]TransactionRecord, len(h.records))
	copy(out, h.records)
	return out
}

// CountByType returns how many records of the given type exist across the
// account's entire history. This is a lifetime count, not a rolling window.
func (h *TransactionHistory) CountByType(txType TransactionType) int {
	count := 0
	for _, r := range h.records {
		if r.Type == txType {
			count++
		}
	}
	return count
}

// Len returns the number of records in the history.
func (h *TransactionHistory) Len() int {
	return len(h.records)
}
