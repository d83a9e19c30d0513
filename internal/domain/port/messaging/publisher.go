package messaging

import (
	"context"
	"time"
)

// Event types emitted after a unit of work commits
const (
	EventTransactionCreated   = "transaction.created"
	EventTransactionCompleted = "transaction.completed"
	EventTransactionFailed    = "transaction.failed"
)

// TransactionEvent describes a committed change to a ledger entry
type TransactionEvent struct {
	EventType         string    `json:"eventType"`
	TransactionID     uint64    `json:"transactionId"`
	AccountID         uint64    `json:"accountId"`
	TransactionType   string    `json:"transactionType"`
	Method            string    `json:"method"`
	Amount            string    `json:"amount"`
	Status            string    `json:"status"`
	Balance           string    `json:"balance,omitempty"`
	ExternalReference string    `json:"externalReference,omitempty"`
	OccurredAt        time.Time `json:"occurredAt"`
}

// EventPublisher delivers transaction events to downstream consumers.
// Delivery failures never undo the ledger change that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, event TransactionEvent) error
}
