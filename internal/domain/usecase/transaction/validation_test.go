package transaction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	domainerrs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name           string
		accountID      uint64
		amount         string
		method         string
		key            string
		expectedCents  int64
		expectedMethod entity.PaymentMethod
		expectedError  error
		field          string
	}{
		{name: "Valid gcash", accountID: 1, amount: "25.00", method: "gcash", expectedCents: 2500, expectedMethod: entity.MethodGCash},
		{name: "Valid paypal mixed case", accountID: 1, amount: "10.5", method: "PayPal", expectedCents: 1050, expectedMethod: entity.MethodPayPal},
		{name: "Zero account", accountID: 0, amount: "1.00", method: "visa", expectedError: domainerrs.ErrInvalidAccountID},
		{name: "Missing amount", accountID: 1, amount: " ", method: "visa", expectedError: domainerrs.ErrInvalidAmount, field: "amount"},
		{name: "Zero amount", accountID: 1, amount: "0.00", method: "visa", expectedError: domainerrs.ErrNonPositiveAmount, field: "amount"},
		{name: "Negative amount", accountID: 1, amount: "-10", method: "visa", expectedError: domainerrs.ErrNegativeAmount, field: "amount"},
		{name: "Three decimal places", accountID: 1, amount: "1.234", method: "visa", expectedError: domainerrs.ErrInvalidAmount, field: "amount"},
		{name: "Overflow", accountID: 1, amount: "123456789.00", method: "visa", expectedError: domainerrs.ErrAmountOverflow, field: "amount"},
		{name: "Missing method", accountID: 1, amount: "1.00", method: "", expectedError: domainerrs.ErrInvalidPaymentMethod, field: "method"},
		{name: "Unknown method", accountID: 1, amount: "1.00", method: "cash", expectedError: domainerrs.ErrInvalidPaymentMethod, field: "method"},
		{name: "Key too long", accountID: 1, amount: "1.00", method: "visa", key: strings.Repeat("k", 256), expectedError: domainerrs.ErrValidation, field: "idempotencyKey"},
	}

	validator := NewTransactionValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, method, err := validator.ValidateRequest(tt.accountID, tt.amount, tt.method, tt.key)

			if tt.expectedError == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedCents, cents)
				assert.Equal(t, tt.expectedMethod, method)
				return
			}

			assert.ErrorIs(t, err, tt.expectedError)
			assert.True(t, domainerrs.IsValidationError(err))
			if tt.field != "" {
				var ve *domainerrs.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.field, ve.Field)
			}
		})
	}
}

func TestValidateTransactionID(t *testing.T) {
	validator := NewTransactionValidator()

	assert.NoError(t, validator.ValidateTransactionID(3))
	assert.ErrorIs(t, validator.ValidateTransactionID(0), domainerrs.ErrValidation)
}
