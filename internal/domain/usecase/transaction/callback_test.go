package transaction

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	mockpersistence "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

// initiate records a pending PayPal cash-in for paymentID
func (f *engineFixture) initiate(t *testing.T, accountID uint64, amount, paymentID string) *entity.Transaction {
	t.Helper()
	f.paypal.EXPECT().Initiate(mock.Anything, mock.MatchedBy(func(req gateway.InitiateRequest) bool {
		return req.AccountID == accountID
	})).Return(&gateway.Approval{PaymentID: paymentID, ApprovalURL: "https://paypal.test/" + paymentID}, nil).Once()

	result, err := f.service.CashIn(context.Background(), accountID, usecase.CashInRequest{Amount: amount, Method: "paypal"})
	require.NoError(t, err)
	return result.Transaction
}

func TestConfirmCashIn(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	pending := f.initiate(t, 1, "50.00", "PAY-1")

	f.paypal.EXPECT().Execute(mock.Anything, "PAY-1", "PAYER-9").
		Return(&gateway.ExecuteResult{PaymentID: "PAY-1", AmountInCents: 5000, Currency: "PHP"}, nil).Once()

	result, err := f.service.ConfirmCashIn(ctx, entity.MethodPayPal, "PAY-1", "PAYER-9")
	require.NoError(t, err)

	assert.Equal(t, pending.ID, result.Transaction.ID)
	assert.Equal(t, entity.StatusCompleted, result.Transaction.Status)
	assert.Equal(t, "50.00", result.Balance)
	assert.Equal(t, "50.00", f.balance(t, 1))
	f.assertLedgerConsistent(t, 1)

	t.Run("second callback finds nothing to confirm", func(t *testing.T) {
		_, err := f.service.ConfirmCashIn(ctx, entity.MethodPayPal, "PAY-1", "PAYER-9")

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		assert.Equal(t, "50.00", f.balance(t, 1))
	})
}

func TestConfirmCashIn_MatchesByPaymentID(t *testing.T) {
	f := newEngineFixture(t)
	older := f.initiate(t, 1, "10.00", "PAY-A")
	f.initiate(t, 1, "20.00", "PAY-B")

	f.paypal.EXPECT().Execute(mock.Anything, "PAY-A", "PAYER").
		Return(&gateway.ExecuteResult{PaymentID: "PAY-A", AmountInCents: 1000}, nil).Once()

	result, err := f.service.ConfirmCashIn(context.Background(), entity.MethodPayPal, "PAY-A", "PAYER")
	require.NoError(t, err)

	assert.Equal(t, older.ID, result.Transaction.ID)
	assert.Equal(t, "10.00", f.balance(t, 1))
}

func TestConfirmCashIn_RejectedBeforeExecution(t *testing.T) {
	tests := []struct {
		name      string
		method    entity.PaymentMethod
		paymentID string
		payerID   string
		setup     func(t *testing.T, f *engineFixture)
		expected  error
	}{
		{
			name:      "missing payer",
			method:    entity.MethodPayPal,
			paymentID: "PAY-1",
			expected:  errs.ErrValidation,
		},
		{
			name:      "missing payment id",
			method:    entity.MethodPayPal,
			payerID:   "PAYER",
			expected:  errs.ErrValidation,
		},
		{
			name:      "method without callbacks",
			method:    entity.MethodGCash,
			paymentID: "PAY-1",
			payerID:   "PAYER",
			expected:  errs.ErrUnsupportedPaymentMethod,
		},
		{
			name:      "unknown payment",
			method:    entity.MethodPayPal,
			paymentID: "PAY-404",
			payerID:   "PAYER",
			expected:  errs.ErrTransactionNotFound,
		},
		{
			name:      "payment being confirmed elsewhere",
			method:    entity.MethodPayPal,
			paymentID: "PAY-1",
			payerID:   "PAYER",
			setup: func(t *testing.T, f *engineFixture) {
				f.initiate(t, 1, "5.00", "PAY-1")
				require.NoError(t, f.store.PaymentLocks().AcquireLock(context.Background(), "PAY-1", "other-callback", time.Minute))
			},
			expected: errs.ErrPaymentLocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t)
			if tt.setup != nil {
				tt.setup(t, f)
			}

			_, err := f.service.ConfirmCashIn(context.Background(), tt.method, tt.paymentID, tt.payerID)

			assert.ErrorIs(t, err, tt.expected)
			f.paypal.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestConfirmCashIn_ExecutionFailures(t *testing.T) {
	tests := []struct {
		name           string
		executeErr     error
		findRecord     *gateway.PaymentRecord
		findErr        error
		expectFind     bool
		expectedStatus entity.TransactionStatus
		expectedReason string
	}{
		{
			name:           "declined by provider",
			executeErr:     fmt.Errorf("%w: INSTRUMENT_DECLINED", errs.ErrPaymentDeclined),
			expectedStatus: entity.StatusFailed,
			expectedReason: reasonDeclined,
		},
		{
			name:           "transport error and payment not approved",
			executeErr:     errors.New("i/o timeout"),
			findRecord:     &gateway.PaymentRecord{PaymentID: "PAY-1", State: gateway.PaymentCreated},
			expectFind:     true,
			expectedStatus: entity.StatusPending,
		},
		{
			name:           "transport error and provider unreachable",
			executeErr:     errors.New("i/o timeout"),
			findErr:        errors.New("i/o timeout"),
			expectFind:     true,
			expectedStatus: entity.StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t)
			pending := f.initiate(t, 1, "30.00", "PAY-1")

			f.paypal.EXPECT().Execute(mock.Anything, "PAY-1", "PAYER").Return(nil, tt.executeErr).Once()
			if tt.expectFind {
				f.paypal.EXPECT().Find(mock.Anything, "PAY-1").Return(tt.findRecord, tt.findErr).Once()
			}

			_, err := f.service.ConfirmCashIn(context.Background(), entity.MethodPayPal, "PAY-1", "PAYER")

			assert.ErrorIs(t, err, errs.ErrGatewayExecutionFailed)
			assert.Equal(t, errs.CodeGatewayExecutionFailed, errs.ErrorCode(err))

			txn := f.transaction(t, pending.ID)
			assert.Equal(t, tt.expectedStatus, txn.Status)
			assert.Equal(t, tt.expectedReason, txn.FailureReason)
			assert.Equal(t, "0.00", f.balance(t, 1))

			// the lease is released whatever the outcome
			assert.NoError(t, f.store.PaymentLocks().AcquireLock(context.Background(), "PAY-1", "next-callback", time.Minute))
		})
	}
}

func TestConfirmCashIn_ExecuteErrorButProviderApproved(t *testing.T) {
	f := newEngineFixture(t)
	f.initiate(t, 1, "30.00", "PAY-1")

	f.paypal.EXPECT().Execute(mock.Anything, "PAY-1", "PAYER").Return(nil, errors.New("read: connection reset")).Once()
	f.paypal.EXPECT().Find(mock.Anything, "PAY-1").
		Return(&gateway.PaymentRecord{PaymentID: "PAY-1", State: gateway.PaymentApproved, AmountInCents: 3000}, nil).Once()

	result, err := f.service.ConfirmCashIn(context.Background(), entity.MethodPayPal, "PAY-1", "PAYER")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusCompleted, result.Transaction.Status)
	assert.Equal(t, "30.00", f.balance(t, 1))
}

func TestConfirmCashIn_CreditsConfirmedAmount(t *testing.T) {
	f := newEngineFixture(t)
	f.initiate(t, 1, "30.00", "PAY-1")

	f.paypal.EXPECT().Execute(mock.Anything, "PAY-1", "PAYER").
		Return(&gateway.ExecuteResult{PaymentID: "PAY-1", AmountInCents: 2999}, nil).Once()

	result, err := f.service.ConfirmCashIn(context.Background(), entity.MethodPayPal, "PAY-1", "PAYER")
	require.NoError(t, err)

	assert.Equal(t, "29.99", result.Transaction.Amount())
	assert.Equal(t, "29.99", f.balance(t, 1))
	f.assertLedgerConsistent(t, 1)
}

func TestConfirmCashIn_ConfirmedAmountAboveMaximum(t *testing.T) {
	f := newEngineFixture(t)
	pending := f.initiate(t, 1, "30.00", "PAY-1")

	f.paypal.EXPECT().Execute(mock.Anything, "PAY-1", "PAYER").
		Return(&gateway.ExecuteResult{PaymentID: "PAY-1", AmountInCents: entity.MaxAmountInCents + 1}, nil).Once()

	_, err := f.service.ConfirmCashIn(context.Background(), entity.MethodPayPal, "PAY-1", "PAYER")

	assert.ErrorIs(t, err, errs.ErrGatewayExecutionFailed)
	assert.Equal(t, errs.CodeGatewayExecutionFailed, errs.ErrorCode(err))

	txn := f.transaction(t, pending.ID)
	assert.Equal(t, entity.StatusPending, txn.Status)
	assert.Equal(t, int64(3000), txn.AmountInCents)
	assert.Equal(t, "0.00", f.balance(t, 1))
}

func TestConfirmCashIn_PaymentLease(t *testing.T) {
	t.Run("lease store failure stops before execution", func(t *testing.T) {
		f := newEngineFixture(t)
		f.initiate(t, 1, "30.00", "PAY-1")

		locks := mockpersistence.NewMockPaymentLockRepository(t)
		locks.EXPECT().AcquireLock(mock.Anything, "PAY-1", mock.AnythingOfType("string"), DefaultPaymentLockTTL).
			Return(fmt.Errorf("%w: connection refused", errs.ErrDatabaseConnection)).Once()
		f.service.paymentLocks = locks

		_, err := f.service.ConfirmCashIn(context.Background(), entity.MethodPayPal, "PAY-1", "PAYER")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		f.paypal.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
		locks.AssertNotCalled(t, "ReleaseLock", mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, "0.00", f.balance(t, 1))
	})

	t.Run("lease is released by the owner that took it", func(t *testing.T) {
		f := newEngineFixture(t)
		f.initiate(t, 1, "30.00", "PAY-1")
		f.paypal.EXPECT().Execute(mock.Anything, "PAY-1", "PAYER").
			Return(&gateway.ExecuteResult{PaymentID: "PAY-1", AmountInCents: 3000}, nil).Once()

		var owner string
		locks := mockpersistence.NewMockPaymentLockRepository(t)
		locks.EXPECT().AcquireLock(mock.Anything, "PAY-1", mock.AnythingOfType("string"), DefaultPaymentLockTTL).
			Run(func(_ context.Context, _ string, o string, _ time.Duration) { owner = o }).
			Return(nil).Once()
		locks.EXPECT().ReleaseLock(mock.Anything, "PAY-1", mock.MatchedBy(func(o string) bool { return o != "" && o == owner })).
			Return(errors.New("release failed")).Once()
		f.service.paymentLocks = locks

		result, err := f.service.ConfirmCashIn(context.Background(), entity.MethodPayPal, "PAY-1", "PAYER")

		// a failed release is logged, the settlement stands
		require.NoError(t, err)
		assert.Equal(t, "30.00", result.Balance)
	})
}

func TestCancelCashIn(t *testing.T) {
	t.Run("cancels the named payment only", func(t *testing.T) {
		f := newEngineFixture(t)
		f.approveCharges()
		f.fund(t, 1, "15.00")
		first := f.initiate(t, 1, "10.00", "PAY-1")
		second := f.initiate(t, 1, "20.00", "PAY-2")

		count, err := f.service.CancelCashIn(context.Background(), 1, "PAY-1")
		require.NoError(t, err)

		assert.Equal(t, 1, count)
		assert.Equal(t, entity.StatusFailed, f.transaction(t, first.ID).Status)
		assert.Equal(t, reasonCancelled, f.transaction(t, first.ID).FailureReason)
		assert.Equal(t, entity.StatusPending, f.transaction(t, second.ID).Status)
		assert.Equal(t, "15.00", f.balance(t, 1))

		_, err = f.service.ConfirmCashIn(context.Background(), entity.MethodPayPal, "PAY-1", "PAYER")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("cancels every pending provider cash-in without a payment id", func(t *testing.T) {
		f := newEngineFixture(t)
		f.initiate(t, 1, "10.00", "PAY-1")
		f.initiate(t, 1, "20.00", "PAY-2")
		f.initiate(t, 2, "30.00", "PAY-3")

		count, err := f.service.CancelCashIn(context.Background(), 1, "")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		_, err = f.service.CancelCashIn(context.Background(), 1, "")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

		count, err = f.service.CancelCashIn(context.Background(), 2, "")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("payment of another account", func(t *testing.T) {
		f := newEngineFixture(t)
		f.initiate(t, 1, "10.00", "PAY-1")
		f.initiate(t, 2, "10.00", "PAY-2")

		_, err := f.service.CancelCashIn(context.Background(), 2, "PAY-1")

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newEngineFixture(t)

		_, err := f.service.CancelCashIn(context.Background(), 42, "")

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}
