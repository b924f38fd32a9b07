package dto

import (
	"time"

	"github.com/pviana/retail_banking_app/internal/core/domain"
	"github.com/pviana/retail_banking_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for applying a deposit or a
// withdrawal to one of the customer's accounts. AccountNumber may be omitted
// only when the customer holds exactly one account.
type CreateTransactionRequest struct {
	Type          domain.TransactionType `json:"type" binding:"required,oneof=DEPOSIT WITHDRAW"`
	Amount        decimal.Decimal        `json:"amount" binding:"required"`
	AccountNumber int64                  `json:"accountNumber"`
}

// TransactionRecordResponse is one rendered history entry.
type TransactionRecordResponse struct {
	Type      domain.TransactionType `json:"type"`
	Amount    string                 `json:"amount"`
	Timestamp time.Time              `json:"timestamp"`
}

// StatementResponse is the balance-plus-history projection of an account.
type StatementResponse struct {
	BranchCode    string                      `json:"branchCode"`
	AccountNumber int64                       `json:"accountNumber"`
	HolderName    string                      `json:"holderName"`
	Records       []TransactionRecordResponse `json:"records"`
	Balance       string                      `json:"balance"`
}

// ToStatementResponse renders an account's history and balance.
func ToStatementResponse(account *domain.CheckingAccount, holderName string) StatementResponse {
	records := account.History().Records()
	rendered := make([]TransactionRecordResponse, len(records))
	for i, r := range records {
		rendered[i] = TransactionRecordResponse{
			Type:      r.Type,
			Amount:    utils.FormatAmount(r.Amount),
			Timestamp: r.Timestamp,
		}
	}
	return StatementResponse{
		BranchCode:    account.BranchCode(),
		AccountNumber: account.Number(),
		HolderName:    holderName,
		Records:       rendered,
		Balance:       utils.FormatAmount(account.Balance()),
	}
}
