package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// AdminHandler exposes the operator's withdrawal review queue
type AdminHandler struct {
	wallet usecase.WalletUseCase
	logger coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(wallet usecase.WalletUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{wallet: wallet, logger: logger}
}

// ListPendingWithdrawals handles GET /admin/withdrawals/pending
func (h *AdminHandler) ListPendingWithdrawals(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	list, err := h.wallet.ListPendingWithdrawals(c.Request.Context(), opts)
	if err != nil {
		respondError(c, h.logger, "Listing pending withdrawals failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{Transactions: dto.NewTransactionDTOs(list)})
}

// ApproveWithdrawal handles POST /admin/withdrawals/:transactionId/approve
func (h *AdminHandler) ApproveWithdrawal(c *gin.Context) {
	id, ok := parseIDParam(c, "transactionId")
	if !ok {
		return
	}

	result, err := h.wallet.ApproveWithdrawal(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Withdrawal approval failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.SettlementResponse{
		Transaction: dto.NewTransactionDTO(result.Transaction),
		Balance:     result.Balance,
	})
}

// RejectWithdrawal handles POST /admin/withdrawals/:transactionId/reject
func (h *AdminHandler) RejectWithdrawal(c *gin.Context) {
	id, ok := parseIDParam(c, "transactionId")
	if !ok {
		return
	}

	var req dto.RejectRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "", "Invalid request format: "+err.Error())
			return
		}
	}

	txn, err := h.wallet.RejectWithdrawal(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondError(c, h.logger, "Withdrawal rejection failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.SettlementResponse{Transaction: dto.NewTransactionDTO(txn)})
}

// ApproveWithdrawals handles POST /admin/withdrawals/approve
func (h *AdminHandler) ApproveWithdrawals(c *gin.Context) {
	var req dto.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "transactionIds", "Invalid request format: "+err.Error())
		return
	}

	outcomes := h.wallet.ApproveWithdrawals(c.Request.Context(), req.TransactionIDs)
	c.JSON(http.StatusOK, newBulkResponse(outcomes))
}

// RejectWithdrawals handles POST /admin/withdrawals/reject
func (h *AdminHandler) RejectWithdrawals(c *gin.Context) {
	var req dto.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "transactionIds", "Invalid request format: "+err.Error())
		return
	}

	outcomes := h.wallet.RejectWithdrawals(c.Request.Context(), req.TransactionIDs, req.Reason)
	c.JSON(http.StatusOK, newBulkResponse(outcomes))
}

func newBulkResponse(outcomes []usecase.BatchOutcome) dto.BulkResponse {
	resp := dto.BulkResponse{Results: make([]dto.BulkResult, 0, len(outcomes))}
	for _, o := range outcomes {
		result := dto.BulkResult{TransactionID: o.TransactionID}
		if o.Err != nil {
			errResp := NewErrorResponse(o.Err)
			result.Error = &errResp
			resp.Failed++
		} else {
			txn := dto.NewTransactionDTO(o.Transaction)
			result.Success = true
			result.Transaction = &txn
			resp.Succeeded++
		}
		resp.Results = append(resp.Results, result)
	}
	return resp
}
