// Package instant simulates processors that settle a charge within the request
// (e-wallets and card networks).
package instant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/gateway"
)

// Gateway approves every charge up to a ceiling and declines the rest
type Gateway struct {
	declineAbove int64
	logger       coreport.Logger
	newReference func(method entity.PaymentMethod) string
}

var _ gateway.ChargeGateway = (*Gateway)(nil)

// NewGateway creates a simulated processor. declineAbove is the largest
// approved amount in cents; zero or less approves any amount.
func NewGateway(declineAbove int64, logger coreport.Logger) *Gateway {
	return &Gateway{
		declineAbove: declineAbove,
		logger:       logger,
		newReference: func(method entity.PaymentMethod) string {
			return strings.ToUpper(string(method)) + "-" + uuid.NewString()
		},
	}
}

// Charge settles the charge or returns an error wrapping ErrPaymentDeclined
func (g *Gateway) Charge(ctx context.Context, req gateway.ChargeRequest) (*gateway.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if req.AmountInCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", errs.ErrPaymentDeclined)
	}
	if g.declineAbove > 0 && req.AmountInCents > g.declineAbove {
		g.logger.Info("Instant charge declined", map[string]any{
			"account_id": req.AccountID,
			"method":     req.Method,
			"amount":     entity.FormatCents(req.AmountInCents),
			"limit":      entity.FormatCents(g.declineAbove),
		})
		return nil, fmt.Errorf("%w: %s exceeds the %s %s limit",
			errs.ErrPaymentDeclined, entity.FormatCents(req.AmountInCents), entity.FormatCents(g.declineAbove), req.Method)
	}

	reference := g.newReference(req.Method)
	g.logger.Debug("Instant charge approved", map[string]any{
		"account_id": req.AccountID,
		"method":     req.Method,
		"amount":     entity.FormatCents(req.AmountInCents),
		"currency":   req.Currency,
		"reference":  reference,
	})

	return &gateway.ChargeResult{Reference: reference}, nil
}
