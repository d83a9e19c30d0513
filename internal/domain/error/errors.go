package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance      = 4001
	CodeInvalidAmount            = 4002
	CodeInvalidAccountID         = 4003
	CodeDuplicateTransaction     = 4004
	CodeConstraintViolation      = 4005
	CodeAmountOverflow           = 4006
	CodeValidation               = 4007
	CodeUnsupportedPaymentMethod = 4008
	CodeInvalidTransition        = 4009
	CodePaymentDeclined          = 4020
	CodeAccountNotFound          = 4040
	CodeTransactionNotFound      = 4041
	CodeAccountLocked            = 4230
	CodePaymentLocked            = 4231

	// 5xxx - Server errors
	CodeInternalServer          = 5000
	CodeNegativeBalance         = 5001
	CodeDatabaseConnection      = 5003
	CodeGatewayInitiationFailed = 5020
	CodeGatewayExecutionFailed  = 5021
)

var (
	// ErrValidation is the parent of every input validation failure
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when an amount cannot be parsed as a two-place decimal
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is below zero
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrNonPositiveAmount is returned when a transaction amount is zero or less
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrAmountOverflow is returned when an amount exceeds the storable range
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidAccountID is returned when the account ID is not a positive integer
	ErrInvalidAccountID = errors.New("account ID must be positive")

	// ErrInvalidPaymentMethod is returned for a method outside the supported set
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrUnsupportedPaymentMethod is returned when no gateway capability serves a method
	ErrUnsupportedPaymentMethod = errors.New("payment method is not supported for this operation")

	// ErrInvalidTransactionType is returned for an unknown transaction type
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrNegativeBalance guards the balance floor. Callers check the balance before
	// debiting, so seeing this error means a precondition check was skipped.
	ErrNegativeBalance = errors.New("balance cannot be negative")

	ErrPaymentDeclined = errors.New("payment declined")

	ErrGatewayInitiationFailed = errors.New("payment gateway initiation failed")
	ErrGatewayExecutionFailed  = errors.New("payment gateway execution failed")

	// ErrPaymentNotFound is returned by gateways that have no record of a payment id
	ErrPaymentNotFound = errors.New("payment not found at provider")

	ErrInvalidTransition = errors.New("invalid transaction state transition")

	ErrDuplicateTransaction = errors.New("transaction already exists")

	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrAccountLocked is returned when the account row could not be locked in time
	ErrAccountLocked = errors.New("account is locked by another operation")

	// ErrPaymentLocked is returned when another callback is already executing the payment
	ErrPaymentLocked = errors.New("payment is being processed by another request")

	ErrInvalidRequest      = errors.New("invalid request")
	ErrInternalServer      = errors.New("internal server error")
	ErrDatabaseConnection  = errors.New("database connection error")
	ErrDuplicateAccount    = errors.New("account already exists")
	ErrConstraintViolation = errors.New("database constraint violation")
	ErrNotFound            = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrNonPositiveAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidAccountID):
		return CodeInvalidAccountID
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrUnsupportedPaymentMethod):
		return CodeUnsupportedPaymentMethod
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidPaymentMethod),
		errors.Is(err, ErrInvalidTransactionType), errors.Is(err, ErrInvalidRequest):
		return CodeValidation
	case errors.Is(err, ErrDuplicateTransaction), errors.Is(err, ErrDuplicateAccount):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrGatewayInitiationFailed):
		return CodeGatewayInitiationFailed
	case errors.Is(err, ErrGatewayExecutionFailed):
		return CodeGatewayExecutionFailed
	case errors.Is(err, ErrPaymentDeclined):
		return CodePaymentDeclined
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrTransactionNotFound), errors.Is(err, ErrNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrAccountLocked):
		return CodeAccountLocked
	case errors.Is(err, ErrPaymentLocked):
		return CodePaymentLocked
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrNegativeBalance):
		return CodeNegativeBalance
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// ValidationError reports which input field was rejected and why
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets every ValidationError match ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": ErrorCode(e),
	}
}

// NewValidationError creates a field-level validation error wrapping cause (may be nil)
func NewValidationError(field, reason string, cause error) error {
	return &ValidationError{Field: field, Reason: reason, Err: cause}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	AccountID   uint64
	Amount      string
	CurrBalance string
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for account %d: required %s, available %s",
		e.AccountID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"account_id":      e.AccountID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(accountID uint64, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		AccountID:   accountID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// TransitionError is returned when a transaction is asked to leave a terminal state
type TransitionError struct {
	TransactionID uint64
	From          string
	To            string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transaction %d cannot move from %s to %s", e.TransactionID, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// LogFields returns a map of fields for structured logging
func (e *TransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "invalid_transition",
		"transaction_id": e.TransactionID,
		"from":           e.From,
		"to":             e.To,
		"error_code":     CodeInvalidTransition,
	}
}

// NewTransitionError creates an invalid transition error
func NewTransitionError(transactionID uint64, from, to string) error {
	return &TransitionError{TransactionID: transactionID, From: from, To: to}
}

// GatewayError wraps a failure reported by a payment gateway. Kind is one of
// ErrGatewayInitiationFailed or ErrGatewayExecutionFailed.
type GatewayError struct {
	Method    string
	Operation string
	Kind      error
	Err       error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", e.Kind, e.Method, e.Operation, e.Err)
}

// Is matches the gateway failure kind; the cause is reachable through Unwrap
func (e *GatewayError) Is(target error) bool {
	return target == e.Kind
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *GatewayError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "gateway_error",
		"method":     e.Method,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e),
	}
}

// NewGatewayInitiationError wraps a failure to start a provider payment
func NewGatewayInitiationError(method string, err error) error {
	return &GatewayError{Method: method, Operation: "initiate", Kind: ErrGatewayInitiationFailed, Err: err}
}

// NewGatewayExecutionError wraps a failure to execute a provider payment
func NewGatewayExecutionError(method string, err error) error {
	return &GatewayError{Method: method, Operation: "execute", Kind: ErrGatewayExecutionFailed, Err: err}
}

// DuplicateTransactionError provides detailed information about duplicate transaction attempts
type DuplicateTransactionError struct {
	AccountID      uint64
	IdempotencyKey string
}

func (e *DuplicateTransactionError) Error() string {
	return fmt.Sprintf("duplicate transaction detected: idempotency key %q for account %d",
		e.IdempotencyKey, e.AccountID)
}

// Is checks if the target error is an ErrDuplicateTransaction
func (e *DuplicateTransactionError) Is(target error) bool {
	return target == ErrDuplicateTransaction
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateTransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "duplicate_transaction",
		"account_id":      e.AccountID,
		"idempotency_key": e.IdempotencyKey,
		"error_code":      CodeDuplicateTransaction,
	}
}

// NewDuplicateTransactionError creates a new detailed duplicate transaction error
func NewDuplicateTransactionError(accountID uint64, idempotencyKey string) error {
	return &DuplicateTransactionError{AccountID: accountID, IdempotencyKey: idempotencyKey}
}

// IsValidationError reports whether err is any kind of input validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrNonPositiveAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidAccountID) ||
		errors.Is(err, ErrInvalidPaymentMethod) ||
		errors.Is(err, ErrUnsupportedPaymentMethod) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsConflictError groups errors that mean "retry later or the state already moved on"
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction) ||
		errors.Is(err, ErrDuplicateAccount) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrAccountLocked) ||
		errors.Is(err, ErrPaymentLocked)
}

// IsGatewayError reports whether the failure came from a payment provider
func IsGatewayError(err error) bool {
	return errors.Is(err, ErrGatewayInitiationFailed) || errors.Is(err, ErrGatewayExecutionFailed)
}
