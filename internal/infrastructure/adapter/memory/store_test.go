package memory

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
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

func newTestStore(t *testing.T, now time.Time) *Store {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()
	return NewStore(mockTime, logger.NewNoopLogger())
}

func TestExecuteCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	err := store.Execute(ctx, func(txCtx context.Context) error {
		return store.GetAccountRepository(txCtx).EnsureExists(txCtx, 1)
	})
	require.NoError(t, err)

	account, err := store.GetAccountRepository(ctx).GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "0.00", account.GetBalance())
}

func TestExecuteRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, now)
	require.NoError(t, store.GetAccountRepository(ctx).Create(ctx, entity.RestoreAccount(1, 10000, 0, now, now)))

	boom := errors.New("boom")
	err := store.Execute(ctx, func(txCtx context.Context) error {
		accounts := store.GetAccountRepository(txCtx)
		account, err := accounts.GetForUpdate(txCtx, 1)
		require.NoError(t, err)

		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now).Maybe()
		require.NoError(t, account.ApplyDelta(-4000, mockTime))
		require.NoError(t, accounts.Update(txCtx, account))

		txn, err := entity.NewTransaction(1, entity.TypeWithdrawal, 4000, entity.MethodGCash, mockTime)
		require.NoError(t, err)
		require.NoError(t, store.GetTransactionRepository(txCtx).Create(txCtx, txn))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	account, err := store.GetAccountRepository(ctx).GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), account.Balance())

	list, err := store.GetTransactionRepository(ctx).ListByAccount(ctx, 1, persistence.ListOptions{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateRejectsNegativeBalance(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, now)
	require.NoError(t, store.GetAccountRepository(ctx).Create(ctx, entity.RestoreAccount(1, 100, 0, now, now)))

	err := store.GetAccountRepository(ctx).Update(ctx, entity.RestoreAccount(1, -1, 0, now, now))
	assert.ErrorIs(t, err, errs.ErrNegativeBalance)
}

func TestTransactionUniqueness(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, now)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()

	require.NoError(t, store.GetAccountRepository(ctx).EnsureExists(ctx, 1))
	txns := store.GetTransactionRepository(ctx)

	first, _ := entity.NewTransaction(1, entity.TypeCashIn, 100, entity.MethodPayPal, mockTime,
		entity.WithExternalReference("PAY-1"), entity.WithIdempotencyKey("k1"))
	require.NoError(t, txns.Create(ctx, first))
	assert.Equal(t, uint64(1), first.ID)

	sameRef, _ := entity.NewTransaction(1, entity.TypeCashIn, 100, entity.MethodPayPal, mockTime,
		entity.WithExternalReference("PAY-1"))
	assert.ErrorIs(t, txns.Create(ctx, sameRef), errs.ErrDuplicateTransaction)

	sameKey, _ := entity.NewTransaction(1, entity.TypeCashIn, 100, entity.MethodGCash, mockTime,
		entity.WithIdempotencyKey("k1"))
	assert.ErrorIs(t, txns.Create(ctx, sameKey), errs.ErrDuplicateTransaction)

	orphan, _ := entity.NewTransaction(2, entity.TypeCashIn, 100, entity.MethodGCash, mockTime)
	assert.ErrorIs(t, txns.Create(ctx, orphan), errs.ErrAccountNotFound)

	found, err := txns.GetByReference(ctx, entity.MethodPayPal, "PAY-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = txns.GetByReference(ctx, entity.MethodGCash, "PAY-1")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestListOrdering(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, base)
	require.NoError(t, store.GetAccountRepository(ctx).EnsureExists(ctx, 1))
	txns := store.GetTransactionRepository(ctx)

	for i := 0; i < 4; i++ {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(base.Add(time.Duration(i) * time.Minute)).Maybe()
		txn, err := entity.NewTransaction(1, entity.TypeWithdrawal, int64(100*(i+1)), entity.MethodGCash, mockTime)
		require.NoError(t, err)
		require.NoError(t, txns.Create(ctx, txn))
	}

	history, err := txns.ListByAccount(ctx, 1, persistence.ListOptions{Limit: 3})
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []uint64{4, 3, 2}, []uint64{history[0].ID, history[1].ID, history[2].ID})

	queue, err := txns.ListPendingWithdrawals(ctx, persistence.ListOptions{Limit: 10, Offset: 1})
	require.NoError(t, err)
	require.Len(t, queue, 3)
	assert.Equal(t, uint64(2), queue[0].ID)

	total, err := txns.SumCompleted(ctx, 1, entity.TypeWithdrawal)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestConcurrentUnitsAreSerialized(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, now)
	require.NoError(t, store.GetAccountRepository(ctx).Create(ctx, entity.RestoreAccount(1, 0, 0, now, now)))

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Execute(ctx, func(txCtx context.Context) error {
				accounts := store.GetAccountRepository(txCtx)
				account, err := accounts.GetForUpdate(txCtx, 1)
				if err != nil {
					return err
				}
				if err := account.ApplyDelta(100, mockTime); err != nil {
					return err
				}
				return accounts.Update(txCtx, account)
			})
		}()
	}
	wg.Wait()

	account, err := store.GetAccountRepository(ctx).GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), account.Balance())
}

func TestBeginHonoursContext(t *testing.T) {
	store := newTestStore(t, time.Now())

	txCtx, err := store.Begin(context.Background())
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = store.Begin(waitCtx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, store.Rollback(txCtx))
	require.NoError(t, store.Rollback(txCtx))
}

func TestPaymentLocks(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Minute)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Times(3)
	mockTime.EXPECT().Now().Return(later).Maybe()
	store := NewStore(mockTime, logger.NewNoopLogger())
	locks := store.PaymentLocks()

	require.NoError(t, locks.AcquireLock(ctx, "PAY-1", "owner-a", 30*time.Second))
	assert.ErrorIs(t, locks.AcquireLock(ctx, "PAY-1", "owner-b", 30*time.Second), errs.ErrPaymentLocked)
	require.NoError(t, locks.AcquireLock(ctx, "PAY-2", "owner-a", 30*time.Second))

	// both leases have expired by now
	removed, err := locks.CleanupExpiredLocks(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	require.NoError(t, locks.AcquireLock(ctx, "PAY-1", "owner-b", 30*time.Second))
	require.NoError(t, locks.ReleaseLock(ctx, "PAY-1", "owner-b"))
	require.NoError(t, locks.ReleaseLock(ctx, "PAY-1", "owner-b"))
}

func TestPaymentLockReleaseOnlyByOwner(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Once()
	mockTime.EXPECT().Now().Return(now.Add(time.Minute)).Maybe()
	locks := NewStore(mockTime, logger.NewNoopLogger()).PaymentLocks()

	require.NoError(t, locks.AcquireLock(ctx, "PAY-1", "slow-callback", 30*time.Second))
	// the first lease expired and was taken over
	require.NoError(t, locks.AcquireLock(ctx, "PAY-1", "next-callback", 30*time.Second))

	// the late release of the expired holder leaves the live lease alone
	require.NoError(t, locks.ReleaseLock(ctx, "PAY-1", "slow-callback"))
	assert.ErrorIs(t, locks.AcquireLock(ctx, "PAY-1", "third-callback", 30*time.Second), errs.ErrPaymentLocked)

	require.NoError(t, locks.ReleaseLock(ctx, "PAY-1", "next-callback"))
	assert.NoError(t, locks.AcquireLock(ctx, "PAY-1", "third-callback", 30*time.Second))
}
