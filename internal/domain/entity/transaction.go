package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// TransactionType tells whether a transaction adds to or takes from the balance
type TransactionType string

const (
	TypeCashIn     TransactionType = "cashin"
	TypeWithdrawal TransactionType = "withdrawal"
)

// IsValid reports whether t is a known transaction type
func (t TransactionType) IsValid() bool {
	return t == TypeCashIn || t == TypeWithdrawal
}

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// IsTerminal reports whether no further transition is allowed from s
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Transaction is a single ledger entry. Pending entries move to completed or
// failed exactly once; the balance only reflects completed entries.
type Transaction struct {
	ID                uint64
	AccountID         uint64
	Type              TransactionType
	AmountInCents     int64
	Method            PaymentMethod
	ExternalReference *string // provider payment id or charge reference
	IdempotencyKey    *string
	Status            TransactionStatus
	FailureReason     string
	CreatedAt         time.Time
	ProcessedAt       *time.Time
}

// TransactionOption customizes a transaction at construction time
type TransactionOption func(*Transaction)

// WithStatus sets the initial status, e.g. completed for synchronous cash-ins
func WithStatus(status TransactionStatus) TransactionOption {
	return func(t *Transaction) {
		t.Status = status
	}
}

// WithExternalReference records the provider reference
func WithExternalReference(reference string) TransactionOption {
	return func(t *Transaction) {
		if reference != "" {
			t.ExternalReference = &reference
		}
	}
}

// WithIdempotencyKey records the client supplied idempotency key
func WithIdempotencyKey(key string) TransactionOption {
	return func(t *Transaction) {
		if key != "" {
			t.IdempotencyKey = &key
		}
	}
}

// NewTransaction creates a validated transaction, pending unless an option says otherwise
func NewTransaction(
	accountID uint64,
	txType TransactionType,
	amountInCents int64,
	method PaymentMethod,
	timeProvider core.TimeProvider,
	opts ...TransactionOption,
) (*Transaction, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}
	if !txType.IsValid() {
		return nil, errs.NewValidationError("type", string(txType), errs.ErrInvalidTransactionType)
	}
	if !method.IsValid() {
		return nil, errs.NewValidationError("method", "unknown payment method "+string(method), errs.ErrInvalidPaymentMethod)
	}
	if amountInCents <= 0 {
		return nil, errs.ErrNonPositiveAmount
	}
	if amountInCents > MaxAmountInCents {
		return nil, errs.ErrAmountOverflow
	}

	now := timeProvider.Now()
	tx := &Transaction{
		AccountID:     accountID,
		Type:          txType,
		AmountInCents: amountInCents,
		Method:        method,
		Status:        StatusPending,
		CreatedAt:     now,
	}
	for _, opt := range opts {
		opt(tx)
	}
	if tx.Status.IsTerminal() {
		tx.ProcessedAt = &now
	}

	return tx, nil
}

// Amount returns the amount as a string with two decimal places
func (t *Transaction) Amount() string {
	return FormatCents(t.AmountInCents)
}

// Reference returns the external reference or an empty string
func (t *Transaction) Reference() string {
	if t.ExternalReference == nil {
		return ""
	}
	return *t.ExternalReference
}

// IsPending reports whether the transaction still awaits a decision
func (t *Transaction) IsPending() bool {
	return t.Status == StatusPending
}

// BalanceDelta is the signed effect this transaction has once completed
func (t *Transaction) BalanceDelta() int64 {
	if t.Type == TypeWithdrawal {
		return -t.AmountInCents
	}
	return t.AmountInCents
}

// Complete moves a pending transaction to completed
func (t *Transaction) Complete(timeProvider core.TimeProvider) error {
	return t.transition(StatusCompleted, "", timeProvider)
}

// Fail moves a pending transaction to failed, recording why
func (t *Transaction) Fail(reason string, timeProvider core.TimeProvider) error {
	return t.transition(StatusFailed, reason, timeProvider)
}

func (t *Transaction) transition(to TransactionStatus, reason string, timeProvider core.TimeProvider) error {
	if t.Status != StatusPending {
		return errs.NewTransitionError(t.ID, string(t.Status), string(to))
	}
	now := timeProvider.Now()
	t.Status = to
	t.FailureReason = reason
	t.ProcessedAt = &now
	return nil
}

// Clone returns a deep copy, so stores can hand out entities without sharing pointers
func (t *Transaction) Clone() *Transaction {
	c := *t
	if t.ExternalReference != nil {
		ref := *t.ExternalReference
		c.ExternalReference = &ref
	}
	if t.IdempotencyKey != nil {
		key := *t.IdempotencyKey
		c.IdempotencyKey = &key
	}
	if t.ProcessedAt != nil {
		at := *t.ProcessedAt
		c.ProcessedAt = &at
	}
	return &c
}
