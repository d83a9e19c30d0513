package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/messaging"
)

func connectTestDB(t *testing.T) *TestDBManager {
	m := NewTestDBManager(t, logger.NewNoopLogger())
	m.Connect(t)
	return m
}

func TestConcurrentApprovalsNeverOverdraw(t *testing.T) {
	m := connectTestDB(t)
	m.CreateTestAccount(t, 1, 10000)

	uow := m.Manager.CreateUnitOfWork()
	service := transaction.NewTransactionService(uow, m.Manager.PaymentLocks(), gateway.NewRegistry(),
		messaging.NoopPublisher{}, m.TimeProvider, m.Logger, transaction.Options{})
	defer service.Shutdown()

	ctx := context.Background()
	var ids []uint64
	for i := 0; i < 5; i++ {
		result, err := service.RequestWithdrawal(ctx, 1, usecase.WithdrawalRequest{Amount: "30.00", Method: "gcash"})
		require.NoError(t, err)
		ids = append(ids, result.Transaction.ID)
	}

	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		approved     int
		insufficient int
	)
	for _, id := range ids {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.ApproveWithdrawal(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				approved++
			case errors.Is(err, errs.ErrInsufficientBalance):
				insufficient++
			default:
				t.Errorf("unexpected approval error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, approved)
	assert.Equal(t, 2, insufficient)

	account, err := uow.GetAccountRepository(ctx).GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), account.Balance())

	withdrawn, err := uow.GetTransactionRepository(ctx).SumCompleted(ctx, 1, entity.TypeWithdrawal)
	require.NoError(t, err)
	assert.Equal(t, int64(9000), withdrawn)

	pending, err := uow.GetTransactionRepository(ctx).ListPendingWithdrawals(ctx, persistence.ListOptions{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestUnitOfWorkRollsBack(t *testing.T) {
	m := connectTestDB(t)
	m.CreateTestAccount(t, 7, 5000)

	uow := m.Manager.CreateUnitOfWork()
	ctx := context.Background()
	boom := errors.New("boom")

	err := uow.Execute(ctx, func(txCtx context.Context) error {
		accounts := uow.GetAccountRepository(txCtx)
		account, err := accounts.GetForUpdate(txCtx, 7)
		if err != nil {
			return err
		}
		if err := account.ApplyDelta(-2000, m.TimeProvider); err != nil {
			return err
		}
		if err := accounts.Update(txCtx, account); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	account, err := uow.GetAccountRepository(ctx).GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), account.Balance())

	_, err = uow.GetAccountRepository(ctx).GetByID(ctx, 8)
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestPaymentLockLease(t *testing.T) {
	m := connectTestDB(t)
	locks := m.Manager.PaymentLocks()
	ctx := context.Background()

	require.NoError(t, locks.AcquireLock(ctx, "PAY-1", "owner-a", time.Minute))
	assert.ErrorIs(t, locks.AcquireLock(ctx, "PAY-1", "owner-b", time.Minute), errs.ErrPaymentLocked)

	// only the holder can release
	require.NoError(t, locks.ReleaseLock(ctx, "PAY-1", "owner-b"))
	assert.ErrorIs(t, locks.AcquireLock(ctx, "PAY-1", "owner-b", time.Minute), errs.ErrPaymentLocked)
	require.NoError(t, locks.ReleaseLock(ctx, "PAY-1", "owner-a"))

	require.NoError(t, locks.AcquireLock(ctx, "PAY-1", "owner-b", time.Millisecond))

	time.Sleep(20 * time.Millisecond)
	removed, err := locks.CleanupExpiredLocks(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, m.Manager.Ping(ctx))
	assert.Equal(t, int64(0), m.Manager.UnitMetrics().Failures)
}
