package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	isolation    sql.IsolationLevel
	retry        RetryConfig
	errorMapper  *ErrorMapper
	metrics      *MetricsCollector
}

// UnitOfWorkOption customizes a UnitOfWork
type UnitOfWorkOption func(*UnitOfWork)

// WithIsolationLevel sets the isolation level of every transaction, e.g. "serializable"
func WithIsolationLevel(level string) UnitOfWorkOption {
	return func(u *UnitOfWork) {
		u.isolation = parseIsolationLevel(level)
	}
}

// WithRetryConfig sets how Execute retries transient failures
func WithRetryConfig(config RetryConfig) UnitOfWorkOption {
	return func(u *UnitOfWork) {
		u.retry = config
	}
}

// WithMetricsCollector records the duration and attempts of every Execute
func WithMetricsCollector(metrics *MetricsCollector) UnitOfWorkOption {
	return func(u *UnitOfWork) {
		u.metrics = metrics
	}
}

// NewUnitOfWork creates a new UnitOfWork instance. Transactions default to
// READ COMMITTED; balance safety comes from row locks, not isolation.
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, opts ...UnitOfWorkOption) *UnitOfWork {
	u := &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		isolation:    sql.LevelReadCommitted,
		retry:        DefaultRetryConfig(),
		errorMapper:  NewErrorMapper(),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.metrics == nil {
		u.metrics = NewMetricsCollector(logger, timeProvider, 0)
	}
	return u
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

func parseIsolationLevel(level string) sql.IsolationLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "serializable":
		return sql.LevelSerializable
	case "repeatable read":
		return sql.LevelRepeatableRead
	default:
		return sql.LevelReadCommitted
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return ctx, fmt.Errorf("%w: transaction already open in context", errs.ErrInternalServer)
	}

	u.logger.Debug("Beginning database transaction", map[string]any{
		"isolation": u.isolation.String(),
	})

	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: u.isolation})
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapError(tx.Error, "begin transaction")
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("%w: no transaction found in context", errs.ErrInternalServer)
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(err, "commit transaction")
	}
	return nil
}

// Rollback rolls back the current transaction. A transaction that already
// finished is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return nil
	}

	err := tx.Rollback().Error
	if err == nil || errors.Is(err, sql.ErrTxDone) ||
		strings.Contains(err.Error(), "already been committed or rolled back") {
		return nil
	}

	u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
	return fmt.Errorf("failed to rollback transaction: %w", err)
}

// Execute runs fn in a transaction, committing when it returns nil. Deadlocks,
// serialization failures and lock timeouts re-run fn in a fresh transaction.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := u.metrics.Measure(ctx, "unit_of_work", func() (int, error) {
		attempts := 0
		err := RetryOnTransientError(ctx, u.retry, func() error {
			attempts++
			return u.runOnce(ctx, fn)
		}, u.logger)
		return attempts, err
	})
	return err
}

func (u *UnitOfWork) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = u.Rollback(txCtx)
			panic(r)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			u.logger.Warn("Rollback after failed unit of work also failed", map[string]any{
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	return u.Commit(txCtx)
}

// GetAccountRepository returns an account repository in the current transaction
func (u *UnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return repository.NewAccountRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
