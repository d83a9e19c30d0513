package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// AccountHandler handles balance and summary reads
type AccountHandler struct {
	accounts usecase.AccountUseCase
	summary  usecase.SummaryUseCase
	logger   coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts usecase.AccountUseCase, summary usecase.SummaryUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, summary: summary, logger: logger}
}

// GetBalance handles GET /accounts/:accountId/balance
func (h *AccountHandler) GetBalance(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountId")
	if !ok {
		return
	}

	balance, err := h.accounts.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, h.logger, "Error getting account balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID: balance.AccountID,
		Balance:   balance.Balance,
	})
}

// GetSummary handles GET /accounts/:accountId/summary
func (h *AccountHandler) GetSummary(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountId")
	if !ok {
		return
	}

	summary, err := h.summary.GetSummary(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, h.logger, "Error building account summary", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSummaryResponse(summary))
}
