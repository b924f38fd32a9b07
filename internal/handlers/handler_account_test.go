package handlers_test

import (
	"encoding/json"
	"net/http"

	"github.com/pviana/retail_banking_app/internal/apperrors"
	"github.com/pviana/retail_banking_app/internal/core/domain"
	"github.com/pviana/retail_banking_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestOpenAccount_Success() {
	account := domain.NewCheckingAccount(3, domain.DefaultBranchCode, "cust-1")

	suite.mockAccountService.On("OpenAccount", mock.Anything, "111").Return(account, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/customers/111/accounts", "")

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(3), resp.Number)
	suite.Equal(domain.DefaultBranchCode, resp.BranchCode)
	suite.True(resp.Ceiling.Equal(decimal.NewFromInt(500)))

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestOpenAccount_CustomerNotFound() {
	suite.mockAccountService.On("OpenAccount", mock.Anything, "999").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodPost, "/api/v1/customers/999/accounts", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListAccounts() {
	summaries := []domain.AccountSummary{
		{BranchCode: "0001", Number: 1, HolderName: "Maria Silva", Ceiling: decimal.NewFromInt(500)},
		{BranchCode: "0001", Number: 2, HolderName: "Empresa XYZ Ltda", Ceiling: decimal.NewFromInt(2000)},
	}
	suite.mockAccountService.On("ListAccountSummaries", mock.Anything).Return(summaries, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts", "")

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.AccountSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("Maria Silva", resp[0].HolderName)
	suite.Equal("R$ 500.00", resp[0].Ceiling)
	suite.Equal("R$ 2000.00", resp[1].Ceiling)
}

func (suite *HandlerTestSuite) TestChangeCeiling_Success() {
	account := domain.NewCheckingAccount(1, domain.DefaultBranchCode, "cust-1")
	suite.Require().NoError(account.ChangeCeiling(decimal.NewFromInt(2000)))

	suite.mockAccountService.On("ChangeCeiling", mock.Anything, "111", int64(1),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(2000)) }),
	).Return(account, nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/customers/111/accounts/1/ceiling", `{"newCeiling":2000}`)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Ceiling.Equal(decimal.NewFromInt(2000)))
	suite.Equal(1, resp.CeilingChanges)
}

func (suite *HandlerTestSuite) TestChangeCeiling_RuleViolation() {
	suite.mockAccountService.On("ChangeCeiling", mock.Anything, "111", int64(1), mock.Anything).
		Return(nil, apperrors.ErrCeilingChangeQuotaExhausted).Once()

	w := suite.serve(http.MethodPut, "/api/v1/customers/111/accounts/1/ceiling", `{"newCeiling":3000}`)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestChangeCeiling_InvalidAccountNumber() {
	w := suite.serve(http.MethodPut, "/api/v1/customers/111/accounts/abc/ceiling", `{"newCeiling":3000}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ChangeCeiling", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
