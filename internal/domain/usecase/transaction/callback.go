package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// ConfirmCashIn settles the pending cash-in whose provider payment id is
// paymentID. The payment is executed at the provider before any lock is
// taken; the balance is credited only if execution succeeds.
func (s *Service) ConfirmCashIn(
	ctx context.Context,
	method entity.PaymentMethod,
	paymentID, payerID string,
) (*usecase.SettlementResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	payerID = strings.TrimSpace(payerID)
	if paymentID == "" {
		return nil, errs.NewValidationError("paymentId", "is required", nil)
	}
	if payerID == "" {
		return nil, errs.NewValidationError("PayerID", "is required", nil)
	}

	redirector, ok := s.gateways.Redirector(method)
	if !ok {
		return nil, errs.NewValidationError("method", string(method)+" has no provider callback", errs.ErrUnsupportedPaymentMethod)
	}

	pending, err := s.uow.GetTransactionRepository(ctx).GetByReference(ctx, method, paymentID)
	if err != nil {
		s.logFailure("Callback for unknown payment", err, map[string]any{"payment_id": paymentID, "method": method})
		return nil, err
	}
	if !pending.IsPending() || pending.Type != entity.TypeCashIn {
		s.logger.Warn("Callback for a payment that is no longer pending", map[string]any{
			"payment_id":     paymentID,
			"transaction_id": pending.ID,
			"status":         pending.Status,
		})
		return nil, errs.ErrTransactionNotFound
	}

	owner := uuid.NewString()
	if err := s.paymentLocks.AcquireLock(ctx, paymentID, owner, s.options.PaymentLockTTL); err != nil {
		s.logFailure("Could not lease payment for confirmation", err, map[string]any{"payment_id": paymentID})
		return nil, err
	}
	defer func() {
		if err := s.paymentLocks.ReleaseLock(context.WithoutCancel(ctx), paymentID, owner); err != nil {
			s.logger.Warn("Failed to release payment lock", map[string]any{
				"payment_id": paymentID,
				"error":      err.Error(),
			})
		}
	}()

	confirmed, err := s.executePayment(ctx, redirector, pending, payerID)
	if err != nil {
		if errors.Is(err, errs.ErrPaymentDeclined) {
			s.failPending(ctx, pending.AccountID, pending.ID, reasonDeclined)
		}
		err = errs.NewGatewayExecutionError(string(method), err)
		s.logFailure("Payment execution failed", err, map[string]any{
			"payment_id":     paymentID,
			"transaction_id": pending.ID,
		})
		return nil, err
	}
	if confirmed > entity.MaxAmountInCents {
		// executed at the provider but unstorable; the transaction stays pending
		s.logger.Error("Provider confirmed an amount above the ledger maximum, reconcile manually", map[string]any{
			"payment_id":     paymentID,
			"transaction_id": pending.ID,
			"account_id":     pending.AccountID,
			"requested":      pending.Amount(),
			"confirmed":      entity.FormatCents(confirmed),
		})
		return nil, errs.NewGatewayExecutionError(string(method), fmt.Errorf(
			"provider confirmed %s, above the maximum of %s",
			entity.FormatCents(confirmed), entity.FormatCents(entity.MaxAmountInCents)))
	}

	var (
		txn     *entity.Transaction
		balance string
	)
	err = s.withinAccount(ctx, pending.AccountID, func(ctx context.Context, accounts persistence.AccountRepository, txns persistence.TransactionRepository) error {
		account, t, err := lockPendingTransaction(ctx, accounts, txns, pending.AccountID, pending.ID, entity.StatusCompleted)
		if err != nil {
			if errors.Is(err, errs.ErrInvalidTransition) {
				return errs.ErrTransactionNotFound
			}
			return err
		}

		if confirmed != t.AmountInCents {
			s.logger.Warn("Provider confirmed a different amount than requested", map[string]any{
				"transaction_id": t.ID,
				"requested":      t.Amount(),
				"confirmed":      entity.FormatCents(confirmed),
			})
			t.AmountInCents = confirmed
		}
		if err := s.settle(ctx, accounts, txns, account, t); err != nil {
			return err
		}

		txn, balance = t, account.GetBalance()
		return nil
	})
	if err != nil {
		s.logger.Error("Payment executed but the ledger write failed", map[string]any{
			"payment_id":     paymentID,
			"transaction_id": pending.ID,
			"error":          err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Provider cash-in completed", map[string]any{
		"account_id":     txn.AccountID,
		"transaction_id": txn.ID,
		"payment_id":     paymentID,
		"amount":         txn.Amount(),
		"balance":        balance,
	})
	s.publish(ctx, messaging.EventTransactionCompleted, txn, balance)

	return &usecase.SettlementResult{Transaction: txn, Balance: balance}, nil
}

// executePayment executes the payment and returns the confirmed amount in
// cents. When execution fails for a reason other than a decline, the provider
// is asked whether the payment went through anyway.
func (s *Service) executePayment(
	ctx context.Context,
	redirector gateway.RedirectGateway,
	pending *entity.Transaction,
	payerID string,
) (int64, error) {
	paymentID := pending.Reference()

	result, err := redirector.Execute(ctx, paymentID, payerID)
	if err == nil {
		if result != nil && result.AmountInCents > 0 {
			return result.AmountInCents, nil
		}
		return pending.AmountInCents, nil
	}
	if errors.Is(err, errs.ErrPaymentDeclined) {
		return 0, err
	}

	record, findErr := redirector.Find(ctx, paymentID)
	if findErr != nil || record.State != gateway.PaymentApproved {
		return 0, err
	}

	s.logger.Warn("Execute failed but provider reports the payment approved", map[string]any{
		"payment_id": paymentID,
		"error":      err.Error(),
	})
	if record.AmountInCents > 0 {
		return record.AmountInCents, nil
	}
	return pending.AmountInCents, nil
}

// failPending marks a pending transaction failed; errors are logged only
func (s *Service) failPending(ctx context.Context, accountID, transactionID uint64, reason string) {
	var txn *entity.Transaction
	err := s.withinAccount(ctx, accountID, func(ctx context.Context, accounts persistence.AccountRepository, txns persistence.TransactionRepository) error {
		_, t, err := lockPendingTransaction(ctx, accounts, txns, accountID, transactionID, entity.StatusFailed)
		if err != nil {
			return err
		}
		if err := t.Fail(reason, s.timeProvider); err != nil {
			return err
		}
		txn = t
		return txns.Update(ctx, t)
	})
	if err != nil {
		s.logger.Warn("Could not mark transaction failed", map[string]any{
			"transaction_id": transactionID,
			"reason":         reason,
			"error":          err.Error(),
		})
		return
	}
	s.publish(ctx, messaging.EventTransactionFailed, txn, "")
}

// CancelCashIn marks the account's pending provider cash-ins failed. With a
// paymentID only that payment is cancelled; without one every pending
// provider cash-in of the account is. The balance is never touched.
func (s *Service) CancelCashIn(ctx context.Context, accountID uint64, paymentID string) (int, error) {
	if err := s.validator.ValidateAccountID(accountID); err != nil {
		return 0, err
	}
	paymentID = strings.TrimSpace(paymentID)

	var cancelled []*entity.Transaction
	err := s.withinAccount(ctx, accountID, func(ctx context.Context, accounts persistence.AccountRepository, txns persistence.TransactionRepository) error {
		cancelled = nil

		if _, err := accounts.GetForUpdate(ctx, accountID); err != nil {
			if errors.Is(err, errs.ErrAccountNotFound) {
				return errs.ErrTransactionNotFound
			}
			return err
		}

		candidates, err := s.cancellable(ctx, txns, accountID, paymentID)
		if err != nil {
			return err
		}
		for _, t := range candidates {
			if !t.IsPending() {
				continue
			}
			if err := t.Fail(reasonCancelled, s.timeProvider); err != nil {
				return err
			}
			if err := txns.Update(ctx, t); err != nil {
				return err
			}
			cancelled = append(cancelled, t)
		}

		if len(cancelled) == 0 {
			return errs.ErrTransactionNotFound
		}
		return nil
	})
	if err != nil {
		s.logFailure("Cash-in cancellation failed", err, map[string]any{
			"account_id": accountID,
			"payment_id": paymentID,
		})
		return 0, err
	}

	for _, t := range cancelled {
		s.publish(ctx, messaging.EventTransactionFailed, t, "")
	}
	s.logger.Info("Pending cash-in cancelled", map[string]any{
		"account_id": accountID,
		"payment_id": paymentID,
		"cancelled":  len(cancelled),
	})
	return len(cancelled), nil
}

func (s *Service) cancellable(
	ctx context.Context,
	txns persistence.TransactionRepository,
	accountID uint64,
	paymentID string,
) ([]*entity.Transaction, error) {
	methods := s.gateways.RedirectMethods()

	if paymentID == "" {
		var all []*entity.Transaction
		for _, method := range methods {
			pending, err := txns.ListPending(ctx, accountID, entity.TypeCashIn, method)
			if err != nil {
				return nil, err
			}
			all = append(all, pending...)
		}
		return all, nil
	}

	for _, method := range methods {
		t, err := txns.GetByReference(ctx, method, paymentID)
		if errors.Is(err, errs.ErrTransactionNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if t.AccountID != accountID || t.Type != entity.TypeCashIn {
			return nil, errs.ErrTransactionNotFound
		}
		locked, err := txns.GetForUpdate(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		return []*entity.Transaction{locked}, nil
	}
	return nil, errs.ErrTransactionNotFound
}
