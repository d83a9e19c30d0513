package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

// IdempotencyHandler finds transactions already recorded for a client key
type IdempotencyHandler struct {
	uow persistence.UnitOfWork
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(uow persistence.UnitOfWork) *IdempotencyHandler {
	return &IdempotencyHandler{uow: uow}
}

// CheckIdempotency returns the transaction recorded under key for the account.
// A key reused for a different kind of transaction is reported as a duplicate.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	accountID uint64,
	key string,
	txType entity.TransactionType,
) (*entity.Transaction, bool, error) {
	if key == "" {
		return nil, false, nil
	}

	txn, err := h.uow.GetTransactionRepository(ctx).GetByIdempotencyKey(ctx, accountID, key)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	if txn.Type != txType {
		return nil, true, errs.NewDuplicateTransactionError(accountID, key)
	}

	return txn, true, nil
}
