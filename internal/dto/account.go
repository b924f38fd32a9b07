package dto

import (
	"github.com/pviana/retail_banking_app/internal/core/domain"
	"github.com/pviana/retail_banking_app/internal/utils"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Number         int64           `json:"number"`
	BranchCode     string          `json:"branchCode"`
	CustomerID     string          `json:"customerID"`
	Balance        decimal.Decimal `json:"balance"`
	Ceiling        decimal.Decimal `json:"ceiling"`
	CeilingChanges int             `json:"ceilingChanges"`
}

// ToAccountResponse converts a domain.CheckingAccount to an AccountResponse DTO.
func ToAccountResponse(account *domain.CheckingAccount) AccountResponse {
	return AccountResponse{
		Number:         account.Number(),
		BranchCode:     account.BranchCode(),
		CustomerID:     account.CustomerID(),
		Balance:        account.Balance(),
		Ceiling:        account.Ceiling(),
		CeilingChanges: account.CeilingChanges(),
	}
}

// AccountSummaryResponse is the display projection used by account listings.
type AccountSummaryResponse struct {
	BranchCode string `json:"branchCode"`
	Number     int64  `json:"number"`
	HolderName string `json:"holderName"`
	Ceiling    string `json:"ceiling"`
}

// ToAccountSummaryResponse converts a domain summary to its display DTO.
func ToAccountSummaryResponse(s domain.AccountSummary) AccountSummaryResponse {
	return AccountSummaryResponse{
		BranchCode: s.BranchCode,
		Number:     s.Number,
		HolderName: s.HolderName,
		Ceiling:    utils.FormatAmount(s.Ceiling),
	}
}

// ToListAccountSummaryResponse converts a slice of summaries to display DTOs.
func ToListAccountSummaryResponse(summaries []domain.AccountSummary) []AccountSummaryResponse {
	res := make([]AccountSummaryResponse, len(summaries))
	for i, s := range summaries {
		res[i] = ToAccountSummaryResponse(s)
	}
	return res
}

// ChangeCeilingRequest defines the payload for a withdrawal ceiling change.
type ChangeCeilingRequest struct {
	NewCeiling decimal.Decimal `json:"newCeiling" binding:"required"`
}
