package persistence

import (
	"context"
)

// UnitOfWork coordinates one atomic change across the ledger repositories
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context. Rolling back a
	// committed transaction is a no-op.
	Rollback(ctx context.Context) error

	// Execute runs fn inside a transaction and commits when fn returns nil.
	// Transient failures such as deadlocks may re-run fn from the start, so fn
	// must not perform side effects outside the store.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error

	// GetAccountRepository returns an account repository bound to the transaction in ctx, if any
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetTransactionRepository returns a transaction repository bound to the transaction in ctx, if any
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
