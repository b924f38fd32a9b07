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

func (suite *HandlerTestSuite) TestCreateTransaction_Deposit() {
	account := domain.NewCheckingAccount(1, domain.DefaultBranchCode, "cust-1")
	suite.Require().NoError(account.Deposit(decimal.NewFromInt(300)))

	suite.mockTransactionService.On("Deposit", mock.Anything, "111", int64(0),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(300)) }),
	).Return(account, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/customers/111/transactions", `{"type":"DEPOSIT","amount":300}`)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(300)))

	suite.mockTransactionService.AssertExpectations(suite.T())
	suite.mockTransactionService.AssertNotCalled(suite.T(), "Withdraw", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateTransaction_WithdrawRuleViolation() {
	suite.mockTransactionService.On("Withdraw", mock.Anything, "111", int64(1), mock.Anything).
		Return(nil, apperrors.ErrWithdrawalCountExceeded).Once()

	w := suite.serve(http.MethodPost, "/api/v1/customers/111/transactions", `{"type":"WITHDRAW","amount":50,"accountNumber":1}`)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestCreateTransaction_AmbiguousAccountChoice() {
	suite.mockTransactionService.On("Deposit", mock.Anything, "111", int64(0), mock.Anything).
		Return(nil, apperrors.ErrNoAccountSelected).Once()

	w := suite.serve(http.MethodPost, "/api/v1/customers/111/transactions", `{"type":"DEPOSIT","amount":100}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateTransaction_UnknownType() {
	w := suite.serve(http.MethodPost, "/api/v1/customers/111/transactions", `{"type":"TRANSFER","amount":100}`)

	// Rejected by binding before any service call.
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "Withdraw", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetStatement() {
	customer := domain.NewIndividual("cust-1", "Maria Silva", "01-02-1990", "111", "Rua A, 1")
	account := domain.NewCheckingAccount(1, domain.DefaultBranchCode, "cust-1")
	customer.AddAccount(account)
	suite.Require().NoError(customer.ApplyTransaction(account, domain.NewDeposit(decimal.NewFromInt(1000))))
	suite.Require().NoError(customer.ApplyTransaction(account, domain.NewWithdraw(decimal.NewFromInt(250))))

	suite.mockTransactionService.On("Statement", mock.Anything, "111", int64(1)).
		Return(customer, account, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/customers/111/accounts/1/statement", "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.StatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.AccountNumber)
	suite.Equal("Maria Silva", resp.HolderName)
	suite.Equal("R$ 750.00", resp.Balance)
	suite.Require().Len(resp.Records, 2)
	suite.Equal(domain.TransactionDeposit, resp.Records[0].Type)
	suite.Equal("R$ 1000.00", resp.Records[0].Amount)
	suite.Equal(domain.TransactionWithdraw, resp.Records[1].Type)
	suite.Equal("R$ 250.00", resp.Records[1].Amount)
}

func (suite *HandlerTestSuite) TestGetStatement_CustomerNotFound() {
	suite.mockTransactionService.On("Statement", mock.Anything, "999", int64(1)).
		Return(nil, nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/customers/999/accounts/1/statement", "")

	suite.Equal(http.StatusNotFound, w.Code)
}
