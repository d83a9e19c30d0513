package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// IdempotencyKeyHeader lets clients retry a cash-in or withdrawal safely
const IdempotencyKeyHeader = "Idempotency-Key"

// WalletHandler handles the account holder's wallet operations
type WalletHandler struct {
	wallet usecase.WalletUseCase
	logger coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(wallet usecase.WalletUseCase, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{wallet: wallet, logger: logger}
}

// CashIn handles POST /accounts/:accountId/cash-in
func (h *WalletHandler) CashIn(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountId")
	if !ok {
		return
	}

	var req dto.CashInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "", "Invalid request format: "+err.Error())
		return
	}

	result, err := h.wallet.CashIn(c.Request.Context(), accountID, usecase.CashInRequest{
		Amount:         req.Amount.String(),
		Method:         req.Method,
		IdempotencyKey: c.GetHeader(IdempotencyKeyHeader),
	})
	if err != nil {
		respondError(c, h.logger, "Cash-in failed", err)
		return
	}

	txn := result.Transaction
	resp := dto.CashInResponse{
		TransactionID: txn.ID,
		Status:        string(txn.Status),
		Amount:        txn.Amount(),
		Method:        string(txn.Method),
		Balance:       result.Balance,
		ApprovalURL:   result.ApprovalURL,
	}

	status := http.StatusCreated
	switch {
	case result.Replayed:
		status = http.StatusOK
	case txn.Status == entity.StatusPending:
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

// CancelCashIn handles POST /accounts/:accountId/cash-in/cancel
func (h *WalletHandler) CancelCashIn(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountId")
	if !ok {
		return
	}

	cancelled, err := h.wallet.CancelCashIn(c.Request.Context(), accountID, c.Query("paymentId"))
	if err != nil {
		respondError(c, h.logger, "Cash-in cancellation failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelResponse{
		Message:   "Payment cancelled",
		Cancelled: cancelled,
	})
}

// RequestWithdrawal handles POST /accounts/:accountId/withdrawals
func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountId")
	if !ok {
		return
	}

	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "", "Invalid request format: "+err.Error())
		return
	}

	result, err := h.wallet.RequestWithdrawal(c.Request.Context(), accountID, usecase.WithdrawalRequest{
		Amount:         req.Amount.String(),
		Method:         req.Method,
		IdempotencyKey: c.GetHeader(IdempotencyKeyHeader),
	})
	if err != nil {
		respondError(c, h.logger, "Withdrawal request failed", err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	txn := result.Transaction
	c.JSON(status, dto.WithdrawalResponse{
		TransactionID: txn.ID,
		Status:        string(txn.Status),
		Amount:        txn.Amount(),
		Method:        string(txn.Method),
	})
}

// ListTransactions handles GET /accounts/:accountId/transactions
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountId")
	if !ok {
		return
	}
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	list, err := h.wallet.ListTransactions(c.Request.Context(), accountID, opts)
	if err != nil {
		respondError(c, h.logger, "Listing transactions failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: dto.NewTransactionDTOs(list),
	})
}

func listOptions(c *gin.Context) (persistence.ListOptions, bool) {
	limit, ok := parseIntQuery(c, "limit")
	if !ok {
		return persistence.ListOptions{}, false
	}
	offset, ok := parseIntQuery(c, "offset")
	if !ok {
		return persistence.ListOptions{}, false
	}
	return persistence.ListOptions{Limit: limit, Offset: offset}, true
}
