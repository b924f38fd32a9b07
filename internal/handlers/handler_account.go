package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pviana/retail_banking_app/internal/apperrors"
	portssvc "github.com/pviana/retail_banking_app/internal/core/ports/services"
	"github.com/pviana/retail_banking_app/internal/dto"
	"github.com/pviana/retail_banking_app/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	rg.GET("/accounts", h.listAccounts)

	customers := rg.Group("/customers/:identifier")
	{
		customers.POST("/accounts", h.openAccount)
		customers.PUT("/accounts/:number/ceiling", h.changeCeiling)
	}
}

// openAccount godoc
// @Summary Open a new checking account
// @Description Opens a checking account for an existing customer with the next sequential number
// @Tags accounts
// @Produce  json
// @Param   identifier path string true "Tax ID or registration ID"
// @Success 201 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to open account"
// @Router /customers/{identifier}/accounts [post]
func (h *accountHandler) openAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identifier := c.Param("identifier")

	account, err := h.accountService.OpenAccount(c.Request.Context(), identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Customer not found for account creation", slog.String("identifier", identifier))
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to open account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open account"})
		}
		return
	}

	logger.Info("Account opened successfully", slog.Int64("account_number", account.Number()))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List all accounts
// @Description Lists display summaries for all accounts in registry order
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountSummaryResponse
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.accountService.ListAccountSummaries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountSummaryResponse(summaries))
}

// changeCeiling godoc
// @Summary Change the withdrawal ceiling
// @Description Changes the per-withdrawal ceiling of one of the customer's accounts. At most 3 changes per account; the new ceiling may not exceed 10000. Not recorded as a transaction.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   identifier path string true "Tax ID or registration ID"
// @Param   number path int true "Account number"
// @Param   ceiling body dto.ChangeCeilingRequest true "New ceiling"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input or account choice"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 422 {object} map[string]string "Ceiling change rule violation"
// @Failure 500 {object} map[string]string "Failed to change ceiling"
// @Router /customers/{identifier}/accounts/{number}/ceiling [put]
func (h *accountHandler) changeCeiling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identifier := c.Param("identifier")

	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		logger.Warn("Invalid account number", slog.String("raw", c.Param("number")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account number"})
		return
	}

	var req dto.ChangeCeilingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ChangeCeiling", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.ChangeCeiling(c.Request.Context(), identifier, number, req.NewCeiling)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Customer not found for ceiling change", slog.String("identifier", identifier))
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		case errors.Is(err, apperrors.ErrNoAccountSelected):
			logger.Warn("Invalid account choice for ceiling change", slog.Int64("account_number", number))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrCeilingChangeQuotaExhausted), errors.Is(err, apperrors.ErrCeilingChangeTooLarge):
			logger.Warn("Ceiling change rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to change ceiling in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change ceiling"})
		}
		return
	}

	logger.Info("Ceiling changed successfully", slog.Int64("account_number", account.Number()))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
