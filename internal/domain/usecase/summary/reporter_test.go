package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)

	t.Run("Aggregates completed totals and recent transactions", func(t *testing.T) {
		accounts := persistencemocks.NewMockAccountRepository(t)
		txns := persistencemocks.NewMockTransactionRepository(t)
		recent := []*entity.Transaction{
			{ID: 3, AccountID: 1, Type: entity.TypeWithdrawal, AmountInCents: 500, Status: entity.StatusPending},
			{ID: 2, AccountID: 1, Type: entity.TypeCashIn, AmountInCents: 10000, Status: entity.StatusCompleted},
		}

		accounts.EXPECT().GetByID(mock.Anything, uint64(1)).Return(entity.RestoreAccount(1, 7500, 3, now, now), nil).Once()
		txns.EXPECT().SumCompleted(mock.Anything, uint64(1), entity.TypeCashIn).Return(int64(10000), nil).Once()
		txns.EXPECT().SumCompleted(mock.Anything, uint64(1), entity.TypeWithdrawal).Return(int64(2500), nil).Once()
		txns.EXPECT().ListByAccount(mock.Anything, uint64(1), persistence.ListOptions{Limit: DefaultRecentLimit}).Return(recent, nil).Once()

		summary, err := NewReporter(accounts, txns, coremocks.NewMockLogger(t), 0).GetSummary(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "75.00", summary.Balance())
		assert.Equal(t, "100.00", summary.TotalDeposited())
		assert.Equal(t, "25.00", summary.TotalWithdrawn())
		assert.Equal(t, recent, summary.Recent)
	})

	t.Run("Unknown account reports zeros", func(t *testing.T) {
		accounts := persistencemocks.NewMockAccountRepository(t)
		accounts.EXPECT().GetByID(mock.Anything, uint64(8)).Return(nil, errs.ErrAccountNotFound).Once()

		summary, err := NewReporter(accounts, persistencemocks.NewMockTransactionRepository(t), coremocks.NewMockLogger(t), 5).GetSummary(ctx, 8)

		require.NoError(t, err)
		assert.Equal(t, "0.00", summary.Balance())
		assert.Equal(t, "0.00", summary.TotalDeposited())
		assert.Empty(t, summary.Recent)
		assert.NotNil(t, summary.Recent)
	})

	t.Run("Honours the configured recent limit", func(t *testing.T) {
		accounts := persistencemocks.NewMockAccountRepository(t)
		txns := persistencemocks.NewMockTransactionRepository(t)

		accounts.EXPECT().GetByID(mock.Anything, uint64(1)).Return(entity.RestoreAccount(1, 0, 0, now, now), nil).Once()
		txns.EXPECT().SumCompleted(mock.Anything, uint64(1), mock.Anything).Return(int64(0), nil).Twice()
		txns.EXPECT().ListByAccount(mock.Anything, uint64(1), persistence.ListOptions{Limit: 2}).Return(nil, nil).Once()

		summary, err := NewReporter(accounts, txns, coremocks.NewMockLogger(t), 2).GetSummary(ctx, 1)

		require.NoError(t, err)
		assert.NotNil(t, summary.Recent)
	})

	t.Run("Invalid account ID", func(t *testing.T) {
		reporter := NewReporter(persistencemocks.NewMockAccountRepository(t), persistencemocks.NewMockTransactionRepository(t), coremocks.NewMockLogger(t), 5)

		_, err := reporter.GetSummary(ctx, 0)

		assert.Equal(t, errs.ErrInvalidAccountID, err)
	})

	t.Run("Repository failure is logged and returned", func(t *testing.T) {
		accounts := persistencemocks.NewMockAccountRepository(t)
		txns := persistencemocks.NewMockTransactionRepository(t)
		mockLogger := coremocks.NewMockLogger(t)
		dbErr := errors.New("connection refused")

		accounts.EXPECT().GetByID(mock.Anything, uint64(1)).Return(entity.RestoreAccount(1, 0, 0, now, now), nil).Once()
		txns.EXPECT().SumCompleted(mock.Anything, uint64(1), entity.TypeCashIn).Return(int64(0), dbErr).Once()
		mockLogger.EXPECT().Error("Failed to build account summary", mock.Anything).Once()

		_, err := NewReporter(accounts, txns, mockLogger, 5).GetSummary(ctx, 1)

		assert.Equal(t, dbErr, err)
	})
}
