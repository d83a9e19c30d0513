package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// CashIn funds a wallet. Methods with a synchronous gateway are charged and
// credited immediately; methods served through a provider redirect record a
// pending transaction and return the approval URL.
func (s *Service) CashIn(ctx context.Context, accountID uint64, req usecase.CashInRequest) (*usecase.CashInResult, error) {
	key := strings.TrimSpace(req.IdempotencyKey)
	amount, method, err := s.validator.ValidateRequest(accountID, req.Amount, req.Method, key)
	if err != nil {
		s.logFailure("Cash-in rejected", err, map[string]any{"account_id": accountID})
		return nil, err
	}

	if existing, found, err := s.idempotency.CheckIdempotency(ctx, accountID, key, entity.TypeCashIn); err != nil {
		return nil, err
	} else if found {
		return s.replayCashIn(ctx, existing)
	}

	if charger, ok := s.gateways.Charger(method); ok {
		return s.cashInSync(ctx, accountID, amount, method, key, charger)
	}
	if redirector, ok := s.gateways.Redirector(method); ok {
		return s.cashInRedirect(ctx, accountID, amount, method, key, redirector)
	}

	err = errs.NewValidationError("method", string(method)+" cannot be used for cash-in", errs.ErrUnsupportedPaymentMethod)
	s.logFailure("Cash-in rejected", err, map[string]any{"account_id": accountID})
	return nil, err
}

func (s *Service) cashInSync(
	ctx context.Context,
	accountID uint64,
	amount int64,
	method entity.PaymentMethod,
	key string,
	charger gateway.ChargeGateway,
) (*usecase.CashInResult, error) {
	charge, err := charger.Charge(ctx, gateway.ChargeRequest{
		AccountID:     accountID,
		AmountInCents: amount,
		Currency:      s.options.Currency,
		Method:        method,
		Description:   fmt.Sprintf("Wallet cash-in for account %d", accountID),
	})
	if err != nil {
		if !errors.Is(err, errs.ErrPaymentDeclined) {
			err = fmt.Errorf("%w: %w", errs.ErrPaymentDeclined, err)
		}
		s.logFailure("Cash-in charge failed", err, map[string]any{
			"account_id": accountID,
			"method":     method,
			"amount":     entity.FormatCents(amount),
		})
		return nil, err
	}

	var (
		txn     *entity.Transaction
		balance string
	)
	err = s.withinAccount(ctx, accountID, func(ctx context.Context, accounts persistence.AccountRepository, txns persistence.TransactionRepository) error {
		if err := accounts.EnsureExists(ctx, accountID); err != nil {
			return err
		}
		account, err := accounts.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}

		t, err := entity.NewTransaction(accountID, entity.TypeCashIn, amount, method, s.timeProvider,
			entity.WithStatus(entity.StatusCompleted),
			entity.WithExternalReference(charge.Reference),
			entity.WithIdempotencyKey(key),
		)
		if err != nil {
			return err
		}
		if err := account.ApplyDelta(t.BalanceDelta(), s.timeProvider); err != nil {
			return err
		}
		if err := accounts.Update(ctx, account); err != nil {
			return err
		}
		if err := txns.Create(ctx, t); err != nil {
			return err
		}

		txn, balance = t, account.GetBalance()
		return nil
	})
	if err != nil {
		if replay, ok := s.replayOnDuplicate(ctx, err, accountID, key); ok {
			return replay, nil
		}
		// The processor already took the money; keep the reference for reconciliation.
		s.logger.Error("Charge succeeded but the ledger write failed", map[string]any{
			"account_id": accountID,
			"method":     method,
			"amount":     entity.FormatCents(amount),
			"reference":  charge.Reference,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Cash-in completed", map[string]any{
		"account_id":     accountID,
		"transaction_id": txn.ID,
		"method":         method,
		"amount":         txn.Amount(),
		"balance":        balance,
	})
	s.publish(ctx, messaging.EventTransactionCompleted, txn, balance)

	return &usecase.CashInResult{Transaction: txn, Balance: balance}, nil
}

func (s *Service) cashInRedirect(
	ctx context.Context,
	accountID uint64,
	amount int64,
	method entity.PaymentMethod,
	key string,
	redirector gateway.RedirectGateway,
) (*usecase.CashInResult, error) {
	approval, err := redirector.Initiate(ctx, gateway.InitiateRequest{
		AccountID:     accountID,
		AmountInCents: amount,
		Currency:      s.options.Currency,
		Description:   fmt.Sprintf("Wallet cash-in for account %d", accountID),
	})
	if err == nil && (approval == nil || approval.PaymentID == "" || approval.ApprovalURL == "") {
		err = errors.New("provider returned no payment id or approval url")
	}
	if err != nil {
		err = errs.NewGatewayInitiationError(string(method), err)
		s.logFailure("Cash-in initiation failed", err, map[string]any{
			"account_id": accountID,
			"method":     method,
		})
		return nil, err
	}

	var txn *entity.Transaction
	err = s.withinAccount(ctx, accountID, func(ctx context.Context, accounts persistence.AccountRepository, txns persistence.TransactionRepository) error {
		if err := accounts.EnsureExists(ctx, accountID); err != nil {
			return err
		}

		t, err := entity.NewTransaction(accountID, entity.TypeCashIn, amount, method, s.timeProvider,
			entity.WithExternalReference(approval.PaymentID),
			entity.WithIdempotencyKey(key),
		)
		if err != nil {
			return err
		}
		if err := txns.Create(ctx, t); err != nil {
			return err
		}

		txn = t
		return nil
	})
	if err != nil {
		if replay, ok := s.replayOnDuplicate(ctx, err, accountID, key); ok {
			return replay, nil
		}
		s.logFailure("Failed to record pending cash-in", err, map[string]any{
			"account_id": accountID,
			"payment_id": approval.PaymentID,
		})
		return nil, err
	}

	s.logger.Info("Cash-in awaiting provider approval", map[string]any{
		"account_id":     accountID,
		"transaction_id": txn.ID,
		"method":         method,
		"payment_id":     approval.PaymentID,
	})
	s.publish(ctx, messaging.EventTransactionCreated, txn, "")

	return &usecase.CashInResult{Transaction: txn, ApprovalURL: approval.ApprovalURL}, nil
}

// replayCashIn answers a repeated request with what the first one recorded
func (s *Service) replayCashIn(ctx context.Context, existing *entity.Transaction) (*usecase.CashInResult, error) {
	result := &usecase.CashInResult{Transaction: existing, Replayed: true}
	if account, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, existing.AccountID); err == nil {
		result.Balance = account.GetBalance()
	}

	s.logger.Info("Replaying cash-in for idempotency key", map[string]any{
		"account_id":     existing.AccountID,
		"transaction_id": existing.ID,
	})
	return result, nil
}

// replayOnDuplicate resolves a lost race between two requests carrying the same key
func (s *Service) replayOnDuplicate(ctx context.Context, err error, accountID uint64, key string) (*usecase.CashInResult, bool) {
	if key == "" || !errors.Is(err, errs.ErrDuplicateTransaction) {
		return nil, false
	}
	existing, found, lookupErr := s.idempotency.CheckIdempotency(ctx, accountID, key, entity.TypeCashIn)
	if lookupErr != nil || !found {
		return nil, false
	}
	result, _ := s.replayCashIn(ctx, existing)
	return result, true
}
