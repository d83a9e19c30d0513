package transaction

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// RequestWithdrawal records a pending withdrawal if the balance covers it.
// The balance is only deducted when an operator approves the withdrawal.
func (s *Service) RequestWithdrawal(ctx context.Context, accountID uint64, req usecase.WithdrawalRequest) (*usecase.WithdrawalResult, error) {
	key := strings.TrimSpace(req.IdempotencyKey)
	amount, method, err := s.validator.ValidateRequest(accountID, req.Amount, req.Method, key)
	if err != nil {
		s.logFailure("Withdrawal rejected", err, map[string]any{"account_id": accountID})
		return nil, err
	}

	if existing, found, err := s.idempotency.CheckIdempotency(ctx, accountID, key, entity.TypeWithdrawal); err != nil {
		return nil, err
	} else if found {
		return &usecase.WithdrawalResult{Transaction: existing, Replayed: true}, nil
	}

	var txn *entity.Transaction
	err = s.withinAccount(ctx, accountID, func(ctx context.Context, accounts persistence.AccountRepository, txns persistence.TransactionRepository) error {
		account, err := accounts.GetForUpdate(ctx, accountID)
		if errors.Is(err, errs.ErrAccountNotFound) {
			// an account that never received a cash-in has a zero balance
			return errs.NewInsufficientBalanceError(accountID, entity.FormatCents(amount), entity.FormatCents(0))
		}
		if err != nil {
			return err
		}
		if !account.CanCover(amount) {
			return errs.NewInsufficientBalanceError(accountID, entity.FormatCents(amount), account.GetBalance())
		}

		t, err := entity.NewTransaction(accountID, entity.TypeWithdrawal, amount, method, s.timeProvider,
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
		if key != "" && errors.Is(err, errs.ErrDuplicateTransaction) {
			if existing, found, lookupErr := s.idempotency.CheckIdempotency(ctx, accountID, key, entity.TypeWithdrawal); lookupErr == nil && found {
				return &usecase.WithdrawalResult{Transaction: existing, Replayed: true}, nil
			}
		}
		s.logFailure("Withdrawal request failed", err, map[string]any{
			"account_id": accountID,
			"amount":     entity.FormatCents(amount),
		})
		return nil, err
	}

	s.logger.Info("Withdrawal requested", map[string]any{
		"account_id":     accountID,
		"transaction_id": txn.ID,
		"amount":         txn.Amount(),
		"method":         method,
	})
	s.publish(ctx, messaging.EventTransactionCreated, txn, "")

	return &usecase.WithdrawalResult{Transaction: txn}, nil
}

// ApproveWithdrawal deducts a pending withdrawal from the balance and completes
// it. If the balance no longer covers it the withdrawal stays pending.
func (s *Service) ApproveWithdrawal(ctx context.Context, transactionID uint64) (*usecase.SettlementResult, error) {
	pending, err := s.loadWithdrawal(ctx, transactionID)
	if err != nil {
		s.logFailure("Withdrawal approval rejected", err, map[string]any{"transaction_id": transactionID})
		return nil, err
	}

	var (
		txn     *entity.Transaction
		balance string
	)
	err = s.withinAccount(ctx, pending.AccountID, func(ctx context.Context, accounts persistence.AccountRepository, txns persistence.TransactionRepository) error {
		account, t, err := lockPendingTransaction(ctx, accounts, txns, pending.AccountID, transactionID, entity.StatusCompleted)
		if err != nil {
			return err
		}
		if !account.CanCover(t.AmountInCents) {
			return errs.NewInsufficientBalanceError(account.ID, t.Amount(), account.GetBalance())
		}
		if err := s.settle(ctx, accounts, txns, account, t); err != nil {
			return err
		}

		txn, balance = t, account.GetBalance()
		return nil
	})
	if err != nil {
		s.logFailure("Withdrawal approval failed", err, map[string]any{
			"transaction_id": transactionID,
			"account_id":     pending.AccountID,
		})
		return nil, err
	}

	s.logger.Info("Withdrawal approved", map[string]any{
		"account_id":     txn.AccountID,
		"transaction_id": txn.ID,
		"amount":         txn.Amount(),
		"balance":        balance,
	})
	s.publish(ctx, messaging.EventTransactionCompleted, txn, balance)

	return &usecase.SettlementResult{Transaction: txn, Balance: balance}, nil
}

// RejectWithdrawal fails a pending withdrawal without touching the balance
func (s *Service) RejectWithdrawal(ctx context.Context, transactionID uint64, reason string) (*entity.Transaction, error) {
	pending, err := s.loadWithdrawal(ctx, transactionID)
	if err != nil {
		s.logFailure("Withdrawal rejection rejected", err, map[string]any{"transaction_id": transactionID})
		return nil, err
	}
	if reason = strings.TrimSpace(reason); reason == "" {
		reason = reasonRejected
	}

	var txn *entity.Transaction
	err = s.withinAccount(ctx, pending.AccountID, func(ctx context.Context, accounts persistence.AccountRepository, txns persistence.TransactionRepository) error {
		_, t, err := lockPendingTransaction(ctx, accounts, txns, pending.AccountID, transactionID, entity.StatusFailed)
		if err != nil {
			return err
		}
		if err := t.Fail(reason, s.timeProvider); err != nil {
			return err
		}
		if err := txns.Update(ctx, t); err != nil {
			return err
		}
		txn = t
		return nil
	})
	if err != nil {
		s.logFailure("Withdrawal rejection failed", err, map[string]any{"transaction_id": transactionID})
		return nil, err
	}

	s.logger.Info("Withdrawal rejected", map[string]any{
		"account_id":     txn.AccountID,
		"transaction_id": txn.ID,
		"reason":         reason,
	})
	s.publish(ctx, messaging.EventTransactionFailed, txn, "")

	return txn, nil
}

// ApproveWithdrawals approves each withdrawal independently
func (s *Service) ApproveWithdrawals(ctx context.Context, transactionIDs []uint64) []usecase.BatchOutcome {
	outcomes := make([]usecase.BatchOutcome, 0, len(transactionIDs))
	for _, id := range transactionIDs {
		outcome := usecase.BatchOutcome{TransactionID: id}
		if result, err := s.ApproveWithdrawal(ctx, id); err != nil {
			outcome.Err = err
		} else {
			outcome.Transaction = result.Transaction
		}
		outcomes = append(outcomes, outcome)
	}
	s.logBatch("approve", outcomes)
	return outcomes
}

// RejectWithdrawals rejects each withdrawal independently
func (s *Service) RejectWithdrawals(ctx context.Context, transactionIDs []uint64, reason string) []usecase.BatchOutcome {
	outcomes := make([]usecase.BatchOutcome, 0, len(transactionIDs))
	for _, id := range transactionIDs {
		outcome := usecase.BatchOutcome{TransactionID: id}
		outcome.Transaction, outcome.Err = s.RejectWithdrawal(ctx, id, reason)
		outcomes = append(outcomes, outcome)
	}
	s.logBatch("reject", outcomes)
	return outcomes
}

func (s *Service) logBatch(action string, outcomes []usecase.BatchOutcome) {
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	s.logger.Info("Bulk withdrawal action finished", map[string]any{
		"action":    action,
		"total":     len(outcomes),
		"succeeded": len(outcomes) - failed,
		"failed":    failed,
	})
}

func (s *Service) loadWithdrawal(ctx context.Context, transactionID uint64) (*entity.Transaction, error) {
	if err := s.validator.ValidateTransactionID(transactionID); err != nil {
		return nil, err
	}

	txn, err := s.uow.GetTransactionRepository(ctx).GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Type != entity.TypeWithdrawal {
		return nil, errs.NewValidationError("transactionId", "is not a withdrawal", errs.ErrInvalidTransactionType)
	}
	return txn, nil
}
