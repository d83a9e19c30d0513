package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domainerr.NewValidationError("amount", "must be positive", domainerr.ErrNonPositiveAmount), http.StatusBadRequest},
		{"unknown method", domainerr.ErrInvalidPaymentMethod, http.StatusBadRequest},
		{"insufficient balance", domainerr.NewInsufficientBalanceError(1, "60.00", "50.00"), http.StatusBadRequest},
		{"transaction not found", domainerr.ErrTransactionNotFound, http.StatusNotFound},
		{"account not found", domainerr.ErrAccountNotFound, http.StatusNotFound},
		{"already settled", domainerr.NewTransitionError(4, "completed", "completed"), http.StatusConflict},
		{"payment locked", domainerr.ErrPaymentLocked, http.StatusConflict},
		{"declined", fmt.Errorf("%w: over limit", domainerr.ErrPaymentDeclined), http.StatusPaymentRequired},
		{"declined at execution", domainerr.NewGatewayExecutionError("paypal", domainerr.ErrPaymentDeclined), http.StatusPaymentRequired},
		{"provider down", domainerr.NewGatewayInitiationError("paypal", errors.New("connection reset")), http.StatusBadGateway},
		{"negative balance guard", domainerr.ErrNegativeBalance, http.StatusInternalServerError},
		{"cancelled", context.Canceled, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(domainerr.NewValidationError("method", "unknown payment method cash", domainerr.ErrInvalidPaymentMethod))
	assert.Equal(t, "method", resp.Field)
	assert.Equal(t, domainerr.CodeValidation, resp.Code)

	resp = NewErrorResponse(fmt.Errorf("%w: dial tcp: refused", domainerr.ErrDatabaseConnection))
	assert.Equal(t, "Internal server error", resp.Message)
	assert.Equal(t, domainerr.CodeDatabaseConnection, resp.Code)

	resp = NewErrorResponse(domainerr.NewGatewayInitiationError("paypal", errors.New("secret upstream detail")))
	assert.Equal(t, "Payment provider error", resp.Message)
}
