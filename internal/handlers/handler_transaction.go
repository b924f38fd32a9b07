package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pviana/retail_banking_app/internal/apperrors"
	"github.com/pviana/retail_banking_app/internal/core/domain"
	portssvc "github.com/pviana/retail_banking_app/internal/core/ports/services"
	"github.com/pviana/retail_banking_app/internal/dto"
	"github.com/pviana/retail_banking_app/internal/middleware"
)

// transactionHandler handles HTTP requests that apply transactions and render
// statements.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	customers := rg.Group("/customers/:identifier")
	{
		customers.POST("/transactions", h.createTransaction)
		customers.GET("/accounts/:number/statement", h.getStatement)
	}
}

// createTransaction godoc
// @Summary Apply a deposit or withdrawal
// @Description Applies a transaction to one of the customer's accounts. The account number may be omitted only when the customer holds exactly one account.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   identifier path string true "Tax ID or registration ID"
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input or account choice"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 422 {object} map[string]string "Transaction rule violation"
// @Failure 500 {object} map[string]string "Failed to apply transaction"
// @Router /customers/{identifier}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identifier := c.Param("identifier")

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var (
		account *domain.CheckingAccount
		err     error
	)
	switch req.Type {
	case domain.TransactionDeposit:
		account, err = h.transactionService.Deposit(c.Request.Context(), identifier, req.AccountNumber, req.Amount)
	case domain.TransactionWithdraw:
		account, err = h.transactionService.Withdraw(c.Request.Context(), identifier, req.AccountNumber, req.Amount)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown transaction type"})
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Customer not found for transaction", slog.String("identifier", identifier))
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		case errors.Is(err, apperrors.ErrNoAccountSelected):
			logger.Warn("Invalid account choice for transaction", slog.Int64("account_number", req.AccountNumber))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidAmount),
			errors.Is(err, apperrors.ErrInsufficientFunds),
			errors.Is(err, apperrors.ErrCeilingExceeded),
			errors.Is(err, apperrors.ErrWithdrawalCountExceeded):
			logger.Warn("Transaction rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to apply transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply transaction"})
		}
		return
	}

	logger.Info("Transaction applied successfully",
		slog.String("type", string(req.Type)),
		slog.Int64("account_number", account.Number()))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getStatement godoc
// @Summary Get an account statement
// @Description Renders the transaction history and current balance of one of the customer's accounts
// @Tags transactions
// @Produce  json
// @Param   identifier path string true "Tax ID or registration ID"
// @Param   number path int true "Account number"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid account choice"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Router /customers/{identifier}/accounts/{number}/statement [get]
func (h *transactionHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identifier := c.Param("identifier")

	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		logger.Warn("Invalid account number", slog.String("raw", c.Param("number")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account number"})
		return
	}

	customer, account, err := h.transactionService.Statement(c.Request.Context(), identifier, number)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Customer not found for statement", slog.String("identifier", identifier))
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		case errors.Is(err, apperrors.ErrNoAccountSelected):
			logger.Warn("Invalid account choice for statement", slog.Int64("account_number", number))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to build statement in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(account, customer.DisplayName()))
}
