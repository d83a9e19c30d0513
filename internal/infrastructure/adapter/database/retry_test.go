package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

func fastRetry(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:    maxRetries,
		RetryInterval: time.Millisecond,
		MaxInterval:   2 * time.Millisecond,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
			calls++
			if calls < 3 {
				return errors.New("ERROR: deadlock detected (SQLSTATE 40P01)")
			}
			return nil
		}, logger.NewNoopLogger())

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry business errors", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
			calls++
			return errs.ErrInsufficientBalance
		}, logger.NewNoopLogger())

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, 1, calls)
	})

	t.Run("does not retry duplicate keys", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
			calls++
			return errors.New(`duplicate key value violates unique constraint "idx_transactions_account_key"`)
		}, logger.NewNoopLogger())

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Transient database error, retrying operation", mock.Anything).Times(2)
		mockLogger.EXPECT().Error("All retry attempts failed", mock.Anything).Once()

		calls := 0
		locked := fmt.Errorf("%w: row busy", errs.ErrAccountLocked)
		err := RetryOnTransientError(context.Background(), fastRetry(3), func() error {
			calls++
			return locked
		}, mockLogger)

		assert.ErrorIs(t, err, errs.ErrAccountLocked)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := RetryOnTransientError(ctx, RetryConfig{MaxRetries: 5, RetryInterval: time.Second, MaxInterval: time.Second}, func() error {
			calls++
			cancel()
			return errors.New("could not serialize access due to concurrent update")
		}, logger.NewNoopLogger())

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, config))
	assert.Equal(t, 40*time.Millisecond, calculateBackoffWithJitter(2, config))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(6, config))

	config.JitterFactor = 0.5
	backoff := calculateBackoffWithJitter(1, config)
	assert.GreaterOrEqual(t, backoff, 20*time.Millisecond)
	assert.LessOrEqual(t, backoff, 30*time.Millisecond)
}

func TestIsTransientError(t *testing.T) {
	assert.True(t, isTransientError(errors.New("Error 1213: Deadlock found when trying to get lock")))
	assert.True(t, isTransientError(errors.New("Error 1205: Lock wait timeout exceeded")))
	assert.True(t, isTransientError(fmt.Errorf("%w: busy", errs.ErrAccountLocked)))
	assert.False(t, isTransientError(context.DeadlineExceeded))
	assert.False(t, isTransientError(errs.ErrDuplicateTransaction))
	assert.True(t, isTransientError(&pgconn.PgError{Code: "40001", Message: "could not serialize access"}))
	assert.True(t, isTransientError(&mysql.MySQLError{Number: 1213, Message: "Deadlock found"}))
	assert.False(t, isTransientError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"}))
	assert.False(t, isTransientError(nil))
}
