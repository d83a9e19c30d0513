package gateway

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// ChargeRequest asks a synchronous processor to move funds into the wallet
type ChargeRequest struct {
	AccountID     uint64
	AmountInCents int64
	Currency      string
	Method        entity.PaymentMethod
	Description   string
}

// ChargeResult is a successful synchronous charge
type ChargeResult struct {
	Reference string
}

// ChargeGateway settles a payment within the request. Implementations return an
// error wrapping ErrPaymentDeclined when the processor refuses the charge.
type ChargeGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// InitiateRequest starts a provider-mediated payment
type InitiateRequest struct {
	AccountID     uint64
	AmountInCents int64
	Currency      string
	Description   string
}

// Approval is where the payer must be sent to approve an initiated payment
type Approval struct {
	PaymentID   string
	ApprovalURL string
}

// ExecuteResult is the provider's confirmation of an executed payment
type ExecuteResult struct {
	PaymentID     string
	AmountInCents int64
	Currency      string
}

// PaymentState is the provider-side state of a payment
type PaymentState string

const (
	PaymentCreated  PaymentState = "created"
	PaymentApproved PaymentState = "approved"
	PaymentFailed   PaymentState = "failed"
)

// PaymentRecord is what the provider knows about a payment
type PaymentRecord struct {
	PaymentID     string
	State         PaymentState
	AmountInCents int64
	Currency      string
}

// RedirectGateway is a provider that needs the payer to approve out of band.
// Execute returns an error wrapping ErrPaymentDeclined when the provider
// definitively refuses; any other error may be transient.
type RedirectGateway interface {
	Initiate(ctx context.Context, req InitiateRequest) (*Approval, error)
	Execute(ctx context.Context, paymentID, payerID string) (*ExecuteResult, error)
	// Find returns ErrPaymentNotFound when the provider has no such payment
	Find(ctx context.Context, paymentID string) (*PaymentRecord, error)
}
