package transaction

import (
	"errors"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// MaxIdempotencyKeyLength matches the width of the idempotency_key column
const MaxIdempotencyKeyLength = 255

// TransactionValidator checks and normalizes incoming transaction requests
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// ValidateRequest validates the account, amount, method and idempotency key of a
// cash-in or withdrawal request and returns the amount in cents and the method
func (v *TransactionValidator) ValidateRequest(
	accountID uint64,
	amount string,
	method string,
	idempotencyKey string,
) (int64, entity.PaymentMethod, error) {
	if err := v.ValidateAccountID(accountID); err != nil {
		return 0, "", err
	}

	amountInCents, err := v.validateAmount(amount)
	if err != nil {
		return 0, "", err
	}

	if strings.TrimSpace(method) == "" {
		return 0, "", errs.NewValidationError("method", "is required", errs.ErrInvalidPaymentMethod)
	}
	paymentMethod, err := entity.ParsePaymentMethod(method)
	if err != nil {
		return 0, "", err
	}

	if len(idempotencyKey) > MaxIdempotencyKeyLength {
		return 0, "", errs.NewValidationError("idempotencyKey", "must be at most 255 characters", nil)
	}

	return amountInCents, paymentMethod, nil
}

// ValidateAccountID rejects the zero account id
func (v *TransactionValidator) ValidateAccountID(accountID uint64) error {
	if accountID == 0 {
		return errs.ErrInvalidAccountID
	}
	return nil
}

// ValidateTransactionID rejects the zero transaction id
func (v *TransactionValidator) ValidateTransactionID(transactionID uint64) error {
	if transactionID == 0 {
		return errs.NewValidationError("transactionId", "must be positive", nil)
	}
	return nil
}

func (v *TransactionValidator) validateAmount(amount string) (int64, error) {
	if strings.TrimSpace(amount) == "" {
		return 0, errs.NewValidationError("amount", "is required", errs.ErrInvalidAmount)
	}

	cents, err := entity.ParseAmount(amount)
	if err != nil {
		reason := "must be a decimal with at most 2 places"
		switch {
		case errors.Is(err, errs.ErrNegativeAmount), errors.Is(err, errs.ErrNonPositiveAmount):
			reason = "must be greater than zero"
		case errors.Is(err, errs.ErrAmountOverflow):
			reason = "exceeds the maximum of " + entity.FormatCents(entity.MaxAmountInCents)
		}
		return 0, errs.NewValidationError("amount", reason, err)
	}
	return cents, nil
}
