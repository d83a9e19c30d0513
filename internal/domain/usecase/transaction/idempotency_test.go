package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	mockpersistence "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

func TestIdempotencyHandler_CheckIdempotency(t *testing.T) {
	recorded := &entity.Transaction{ID: 5, AccountID: 1, Type: entity.TypeCashIn, Status: entity.StatusCompleted}

	testCases := []struct {
		name          string
		key           string
		txType        entity.TransactionType
		mockSetup     func(mockUow *mockpersistence.MockUnitOfWork, mockTxnRepo *mockpersistence.MockTransactionRepository)
		expectFound   bool
		expectedError error
	}{
		{
			name:        "empty key skips the lookup",
			key:         "",
			txType:      entity.TypeCashIn,
			mockSetup:   func(*mockpersistence.MockUnitOfWork, *mockpersistence.MockTransactionRepository) {},
			expectFound: false,
		},
		{
			name:   "unused key",
			key:    "new-key",
			txType: entity.TypeCashIn,
			mockSetup: func(mockUow *mockpersistence.MockUnitOfWork, mockTxnRepo *mockpersistence.MockTransactionRepository) {
				mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxnRepo)
				mockTxnRepo.EXPECT().GetByIdempotencyKey(mock.Anything, uint64(1), "new-key").Return(nil, errs.ErrTransactionNotFound)
			},
			expectFound: false,
		},
		{
			name:   "key already used for the same kind of transaction",
			key:    "used-key",
			txType: entity.TypeCashIn,
			mockSetup: func(mockUow *mockpersistence.MockUnitOfWork, mockTxnRepo *mockpersistence.MockTransactionRepository) {
				mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxnRepo)
				mockTxnRepo.EXPECT().GetByIdempotencyKey(mock.Anything, uint64(1), "used-key").Return(recorded, nil)
			},
			expectFound: true,
		},
		{
			name:   "key reused for a different kind of transaction",
			key:    "used-key",
			txType: entity.TypeWithdrawal,
			mockSetup: func(mockUow *mockpersistence.MockUnitOfWork, mockTxnRepo *mockpersistence.MockTransactionRepository) {
				mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxnRepo)
				mockTxnRepo.EXPECT().GetByIdempotencyKey(mock.Anything, uint64(1), "used-key").Return(recorded, nil)
			},
			expectFound:   true,
			expectedError: errs.ErrDuplicateTransaction,
		},
		{
			name:   "database error",
			key:    "any-key",
			txType: entity.TypeCashIn,
			mockSetup: func(mockUow *mockpersistence.MockUnitOfWork, mockTxnRepo *mockpersistence.MockTransactionRepository) {
				mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxnRepo)
				mockTxnRepo.EXPECT().GetByIdempotencyKey(mock.Anything, uint64(1), "any-key").Return(nil, errors.New("database connection error"))
			},
			expectedError: errors.New("failed to check idempotency key: database connection error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockUow := mockpersistence.NewMockUnitOfWork(t)
			mockTxnRepo := mockpersistence.NewMockTransactionRepository(t)
			tc.mockSetup(mockUow, mockTxnRepo)

			handler := NewIdempotencyHandler(mockUow)
			txn, found, err := handler.CheckIdempotency(context.Background(), 1, tc.key, tc.txType)

			assert.Equal(t, tc.expectFound, found)
			switch {
			case tc.expectedError == nil:
				require.NoError(t, err)
				if found {
					assert.Equal(t, recorded, txn)
				}
			case errors.Is(tc.expectedError, errs.ErrDuplicateTransaction):
				assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
			default:
				assert.EqualError(t, err, tc.expectedError.Error())
			}
		})
	}
}
