package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid account", func(t *testing.T) {
		account, err := NewAccount(1, "100.00", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), account.ID)
		assert.Equal(t, int64(10000), account.Balance())
		assert.Equal(t, "100.00", account.GetBalance())
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.Equal(t, uint64(0), account.TransactionCount)
	})

	t.Run("Zero opening balance", func(t *testing.T) {
		account, err := NewAccount(2, "0", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "0.00", account.GetBalance())
	})

	t.Run("Zero ID", func(t *testing.T) {
		_, err := NewAccount(0, "10.00", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
	})

	t.Run("Negative opening balance", func(t *testing.T) {
		_, err := NewAccount(3, "-1.00", mockTime)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestApplyDelta(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	t.Run("Credit and debit", func(t *testing.T) {
		account, _ := NewAccount(1, "100.00", mockTime)

		require.NoError(t, account.ApplyDelta(2500, mockTime))
		assert.Equal(t, "125.00", account.GetBalance())

		require.NoError(t, account.ApplyDelta(-12500, mockTime))
		assert.Equal(t, "0.00", account.GetBalance())
		assert.Equal(t, uint64(2), account.TransactionCount)
	})

	t.Run("Never drops below zero", func(t *testing.T) {
		account, _ := NewAccount(1, "50.00", mockTime)

		err := account.ApplyDelta(-5001, mockTime)

		assert.ErrorIs(t, err, errs.ErrNegativeBalance)
		assert.Equal(t, int64(5000), account.Balance())
		assert.Equal(t, uint64(0), account.TransactionCount)
	})

	t.Run("Overflow", func(t *testing.T) {
		account := RestoreAccount(1, MaxBalanceInCents, 0, time.Time{}, time.Time{})

		err := account.ApplyDelta(1, mockTime)

		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
		assert.Equal(t, MaxBalanceInCents, account.Balance())
	})
}

func TestCanCover(t *testing.T) {
	account := RestoreAccount(1, 10000, 0, time.Time{}, time.Time{})

	assert.True(t, account.CanCover(10000))
	assert.True(t, account.CanCover(6000))
	assert.False(t, account.CanCover(10001))
}

func TestAccountClone(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Unix(0, 0).UTC()).Maybe()

	account := RestoreAccount(1, 10000, 3, time.Time{}, time.Time{})
	clone := account.Clone()
	require.NoError(t, clone.ApplyDelta(-100, mockTime))

	assert.Equal(t, int64(10000), account.Balance())
	assert.Equal(t, int64(9900), clone.Balance())
}
