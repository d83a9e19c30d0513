package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// ListOptions pages through transaction lists
type ListOptions struct {
	Limit  int
	Offset int
}

// TransactionRepository stores ledger entries
type TransactionRepository interface {
	// Create inserts a transaction and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If the external reference or the
	//   (account, idempotency key) pair is already taken
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update persists status, amount, failure reason and processed time
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist
	Update(ctx context.Context, transaction *entity.Transaction) error

	// GetByID reads a transaction without locking it
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// GetForUpdate reads a transaction and locks its row. Callers lock the owning
	// account first.
	GetForUpdate(ctx context.Context, id uint64) (*entity.Transaction, error)

	// GetByReference finds the transaction a provider payment id belongs to
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction carries the reference
	GetByReference(ctx context.Context, method entity.PaymentMethod, reference string) (*entity.Transaction, error)

	// GetByIdempotencyKey returns the transaction recorded for a client key
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the key is unused
	GetByIdempotencyKey(ctx context.Context, accountID uint64, key string) (*entity.Transaction, error)

	// ListByAccount returns an account's transactions, newest first
	ListByAccount(ctx context.Context, accountID uint64, opts ListOptions) ([]*entity.Transaction, error)

	// ListPending returns an account's pending transactions of one type and method, locked
	ListPending(ctx context.Context, accountID uint64, txType entity.TransactionType, method entity.PaymentMethod) ([]*entity.Transaction, error)

	// ListPendingWithdrawals returns the operator queue, oldest first
	ListPendingWithdrawals(ctx context.Context, opts ListOptions) ([]*entity.Transaction, error)

	// SumCompleted totals the completed transactions of one type for an account, in cents
	SumCompleted(ctx context.Context, accountID uint64, txType entity.TransactionType) (int64, error)
}
