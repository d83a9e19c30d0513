package messaging

import (
	"context"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
)

// LogPublisher writes events to the application log
type LogPublisher struct {
	logger coreport.Logger
}

var _ messaging.EventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger coreport.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event messaging.TransactionEvent) error {
	fields := map[string]any{
		"event_type":       event.EventType,
		"transaction_id":   event.TransactionID,
		"account_id":       event.AccountID,
		"transaction_type": event.TransactionType,
		"method":           event.Method,
		"amount":           event.Amount,
		"status":           event.Status,
		"occurred_at":      event.OccurredAt,
	}
	if event.Balance != "" {
		fields["balance"] = event.Balance
	}
	if event.ExternalReference != "" {
		fields["external_reference"] = event.ExternalReference
	}

	p.logger.Info("Transaction event", fields)
	return nil
}

// NoopPublisher drops every event
type NoopPublisher struct{}

var _ messaging.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, messaging.TransactionEvent) error { return nil }
