package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientBalance.Error() != "insufficient balance" {
		t.Errorf("ErrInsufficientBalance has unexpected message: %s", ErrInsufficientBalance.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NonPositiveAmount", ErrNonPositiveAmount, 4002},
		{"InvalidAccountID", ErrInvalidAccountID, 4003},
		{"DuplicateTransaction", ErrDuplicateTransaction, 4004},
		{"Validation", NewValidationError("method", "unknown", nil), 4007},
		{"UnsupportedMethod", ErrUnsupportedPaymentMethod, 4008},
		{"InvalidTransition", NewTransitionError(1, "completed", "completed"), 4009},
		{"PaymentDeclined", ErrPaymentDeclined, 4020},
		{"AccountNotFound", ErrAccountNotFound, 4040},
		{"TransactionNotFound", ErrTransactionNotFound, 4041},
		{"AccountLocked", ErrAccountLocked, 4230},
		{"NegativeBalance", ErrNegativeBalance, 5001},
		{"GatewayInitiation", NewGatewayInitiationError("paypal", errors.New("boom")), 5020},
		{"GatewayExecutionDeclined", NewGatewayExecutionError("paypal", ErrPaymentDeclined), 5021},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidAccountID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("amount", "must have at most 2 decimal places", ErrInvalidAmount)

	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError should match ErrValidation")
	}
	if !errors.Is(err, ErrInvalidAmount) {
		t.Error("ValidationError should unwrap to its cause")
	}

	expected := "invalid amount: must have at most 2 decimal places: invalid amount format"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}

	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "amount" {
		t.Errorf("errors.As should expose the field, got %+v", ve)
	}

	bare := NewValidationError("method", "unknown method", nil)
	if bare.Error() != "invalid method: unknown method" {
		t.Errorf("unexpected message: %s", bare.Error())
	}
	if !IsValidationError(bare) {
		t.Error("IsValidationError should accept a ValidationError")
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(42, "60.00", "50.00")

	if !errors.Is(err, ErrInsufficientBalance) {
		t.Error("InsufficientBalanceError should match ErrInsufficientBalance")
	}

	expected := "insufficient balance for account 42: required 60.00, available 50.00"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}

	var ibe *InsufficientBalanceError
	if !errors.As(err, &ibe) {
		t.Fatal("errors.As failed")
	}
	fields := ibe.LogFields()
	if fields["account_id"] != uint64(42) || fields["error_code"] != CodeInsufficientBalance {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestTransitionError(t *testing.T) {
	err := NewTransitionError(7, "completed", "completed")

	if !errors.Is(err, ErrInvalidTransition) {
		t.Error("TransitionError should match ErrInvalidTransition")
	}
	if err.Error() != "transaction 7 cannot move from completed to completed" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !IsConflictError(err) {
		t.Error("TransitionError should be a conflict")
	}
}

func TestGatewayError(t *testing.T) {
	cause := fmt.Errorf("provider said no: %w", ErrPaymentDeclined)
	err := NewGatewayExecutionError("paypal", cause)

	if !errors.Is(err, ErrGatewayExecutionFailed) {
		t.Error("should match execution failure")
	}
	if errors.Is(err, ErrGatewayInitiationFailed) {
		t.Error("should not match initiation failure")
	}
	if !errors.Is(err, ErrPaymentDeclined) {
		t.Error("should expose the decline through Unwrap")
	}
	if !IsGatewayError(err) {
		t.Error("IsGatewayError should be true")
	}

	var ge *GatewayError
	if !errors.As(err, &ge) || ge.Operation != "execute" || ge.Method != "paypal" {
		t.Errorf("unexpected gateway error: %+v", ge)
	}
}

func TestDuplicateTransactionError(t *testing.T) {
	err := NewDuplicateTransactionError(3, "key-1")

	if !errors.Is(err, ErrDuplicateTransaction) {
		t.Error("should match ErrDuplicateTransaction")
	}
	if err.Error() != `duplicate transaction detected: idempotency key "key-1" for account 3` {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestIsNotFoundError(t *testing.T) {
	cases := []error{ErrNotFound, ErrAccountNotFound, fmt.Errorf("x: %w", ErrTransactionNotFound)}
	for _, err := range cases {
		if !IsNotFoundError(err) {
			t.Errorf("IsNotFoundError(%v) = false", err)
		}
	}
	if IsNotFoundError(ErrInsufficientBalance) {
		t.Error("insufficient balance is not a not-found error")
	}
}
