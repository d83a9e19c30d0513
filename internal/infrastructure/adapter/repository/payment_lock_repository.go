package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// PaymentLockRepository leases provider payment ids in the payment_locks table
type PaymentLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPaymentLockRepository creates a new PaymentLockRepository instance
func NewPaymentLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *PaymentLockRepository {
	return &PaymentLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock takes a lease on reference for owner. An expired lease is
// removed and replaced in the same transaction; a live one makes the insert
// collide on the primary key.
func (r *PaymentLockRepository) AcquireLock(ctx context.Context, reference, owner string, duration time.Duration) error {
	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reference = ? AND expires_at <= ?", reference, now).Delete(&model.PaymentLock{}).Error; err != nil {
			return err
		}
		return tx.Create(&model.PaymentLock{
			Reference: reference,
			Owner:     owner,
			LockedAt:  now,
			ExpiresAt: expiresAt,
			CreatedAt: now,
			UpdatedAt: now,
		}).Error
	})
	if err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) || r.errorClassifier.IsLockError(err) {
			r.logger.Warn("Payment is already locked", map[string]any{"reference": reference})
			return errs.ErrPaymentLocked
		}
		if isContextError(err) {
			r.logger.Warn("Context timeout acquiring payment lock", map[string]any{
				"reference": reference,
				"error":     err.Error(),
			})
			return fmt.Errorf("lock acquisition timeout: %w", err)
		}

		r.logger.Error("Database error acquiring payment lock", map[string]any{
			"reference": reference,
			"error":     err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	r.logger.Debug("Payment lock acquired", map[string]any{
		"reference":  reference,
		"expires_at": expiresAt,
	})
	return nil
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled")
}

// ReleaseLock drops the lease if owner still holds it. A missing or taken
// over lease is not an error and a timed out release is left to expire on
// its own.
func (r *PaymentLockRepository) ReleaseLock(ctx context.Context, reference, owner string) error {
	result := r.db.WithContext(ctx).Where("reference = ? AND owner = ?", reference, owner).Delete(&model.PaymentLock{})
	if result.Error != nil {
		if isContextError(result.Error) {
			r.logger.Warn("Context timeout releasing payment lock, lease will expire", map[string]any{
				"reference": reference,
				"error":     result.Error.Error(),
			})
			return nil
		}
		r.logger.Error("Failed to release payment lock", map[string]any{
			"reference": reference,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No payment lock held by owner to release", map[string]any{"reference": reference, "owner": owner})
	}
	return nil
}

// CleanupExpiredLocks removes all expired leases
func (r *PaymentLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.PaymentLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired payment locks", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired payment locks removed", map[string]any{
			"locks_removed": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
