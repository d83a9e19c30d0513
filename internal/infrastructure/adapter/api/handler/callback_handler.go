package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// CallbackHandler receives payers redirected back from a payment provider
type CallbackHandler struct {
	wallet usecase.WalletUseCase
	logger coreport.Logger
}

// NewCallbackHandler creates a new callback handler instance
func NewCallbackHandler(wallet usecase.WalletUseCase, logger coreport.Logger) *CallbackHandler {
	return &CallbackHandler{wallet: wallet, logger: logger}
}

// PaymentSuccess handles GET /payments/:method/success?paymentId=&PayerID=
func (h *CallbackHandler) PaymentSuccess(c *gin.Context) {
	method, err := entity.ParsePaymentMethod(c.Param("method"))
	if err != nil {
		respondError(c, h.logger, "Callback for unknown payment method", err)
		return
	}

	result, err := h.wallet.ConfirmCashIn(c.Request.Context(), method, c.Query("paymentId"), c.Query("PayerID"))
	if err != nil {
		respondError(c, h.logger, "Payment confirmation failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.CallbackResponse{
		Message:       "Payment successful",
		TransactionID: result.Transaction.ID,
		Balance:       result.Balance,
	})
}
