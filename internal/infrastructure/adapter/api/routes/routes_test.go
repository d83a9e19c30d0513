package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
	mockusecase "github.com/amirhossein-jamali/wallet-ledger/mocks/port/usecase"
)

const adminKey = "test-admin-key"

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type testServer struct {
	router   *gin.Engine
	wallet   *mockusecase.MockWalletUseCase
	accounts *mockusecase.MockAccountUseCase
	summary  *mockusecase.MockSummaryUseCase
}

func newTestServer(t *testing.T, storeErr error) *testServer {
	gin.SetMode(gin.TestMode)

	s := &testServer{
		router:   gin.New(),
		wallet:   mockusecase.NewMockWalletUseCase(t),
		accounts: mockusecase.NewMockAccountUseCase(t),
		summary:  mockusecase.NewMockSummaryUseCase(t),
	}

	log := logger.NewNoopLogger()
	tp := timeprovider.NewRealTimeProvider()
	SetupMiddlewares(s.router, log, tp)
	SetupRoutes(s.router, Handlers{
		Wallet:   handler.NewWalletHandler(s.wallet, log),
		Callback: handler.NewCallbackHandler(s.wallet, log),
		Account:  handler.NewAccountHandler(s.accounts, s.summary, log),
		Admin:    handler.NewAdminHandler(s.wallet, log),
		Health:   handler.NewHealthHandler(pinger{err: storeErr}, tp, log),
	}, adminKey, log)
	return s
}

func (s *testServer) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func txn(id, accountID uint64, typ entity.TransactionType, cents int64, method entity.PaymentMethod, status entity.TransactionStatus) *entity.Transaction {
	return &entity.Transaction{
		ID:            id,
		AccountID:     accountID,
		Type:          typ,
		AmountInCents: cents,
		Method:        method,
		Status:        status,
		CreatedAt:     fixedTime,
	}
}

func TestCashIn(t *testing.T) {
	t.Run("synchronous method credits immediately", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.wallet.EXPECT().CashIn(mock.Anything, uint64(1), usecase.CashInRequest{
			Amount: "25.00", Method: "gcash", IdempotencyKey: "key-1",
		}).Return(&usecase.CashInResult{
			Transaction: txn(10, 1, entity.TypeCashIn, 2500, entity.MethodGCash, entity.StatusCompleted),
			Balance:     "125.00",
		}, nil).Once()

		w := s.do(http.MethodPost, "/accounts/1/cash-in", `{"amount":"25.00","method":"gcash"}`,
			map[string]string{handler.IdempotencyKeyHeader: "key-1"})

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decode[dto.CashInResponse](t, w)
		assert.Equal(t, dto.CashInResponse{
			TransactionID: 10, Status: "completed", Amount: "25.00", Method: "gcash", Balance: "125.00",
		}, resp)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("redirect method returns the approval url", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.wallet.EXPECT().CashIn(mock.Anything, uint64(2), usecase.CashInRequest{Amount: "40", Method: "paypal"}).
			Return(&usecase.CashInResult{
				Transaction: txn(11, 2, entity.TypeCashIn, 4000, entity.MethodPayPal, entity.StatusPending),
				ApprovalURL: "https://paypal.test/approve?token=EC-1",
			}, nil).Once()

		w := s.do(http.MethodPost, "/accounts/2/cash-in", `{"amount":40,"method":"paypal"}`, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.CashInResponse](t, w)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "https://paypal.test/approve?token=EC-1", resp.ApprovalURL)
	})

	t.Run("validation error names the field", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.wallet.EXPECT().CashIn(mock.Anything, uint64(1), mock.Anything).
			Return(nil, domainerr.NewValidationError("method", "unknown payment method cash", domainerr.ErrInvalidPaymentMethod)).Once()

		w := s.do(http.MethodPost, "/accounts/1/cash-in", `{"amount":"5.00","method":"cash"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, "method", resp.Field)
	})

	t.Run("declined charge", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.wallet.EXPECT().CashIn(mock.Anything, uint64(1), mock.Anything).Return(nil, domainerr.ErrPaymentDeclined).Once()

		w := s.do(http.MethodPost, "/accounts/1/cash-in", `{"amount":"5.00","method":"visa"}`, nil)
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("malformed requests never reach the engine", func(t *testing.T) {
		s := newTestServer(t, nil)

		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/accounts/abc/cash-in", `{"amount":"5","method":"gcash"}`, nil).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/accounts/0/cash-in", `{"amount":"5","method":"gcash"}`, nil).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/accounts/1/cash-in", `{"method":"gcash"}`, nil).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/accounts/1/cash-in", `not json`, nil).Code)
	})
}

func TestCancelAndCallback(t *testing.T) {
	s := newTestServer(t, nil)
	s.wallet.EXPECT().CancelCashIn(mock.Anything, uint64(3), "PAY-9").Return(1, nil).Once()
	s.wallet.EXPECT().CancelCashIn(mock.Anything, uint64(3), "").Return(0, domainerr.ErrTransactionNotFound).Once()

	w := s.do(http.MethodPost, "/accounts/3/cash-in/cancel?paymentId=PAY-9", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[dto.CancelResponse](t, w).Cancelled)

	w = s.do(http.MethodPost, "/accounts/3/cash-in/cancel", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	completed := txn(12, 3, entity.TypeCashIn, 4000, entity.MethodPayPal, entity.StatusCompleted)
	s.wallet.EXPECT().ConfirmCashIn(mock.Anything, entity.MethodPayPal, "PAY-1", "PAYER-1").
		Return(&usecase.SettlementResult{Transaction: completed, Balance: "40.00"}, nil).Once()
	s.wallet.EXPECT().ConfirmCashIn(mock.Anything, entity.MethodPayPal, "PAY-404", "PAYER-1").
		Return(nil, domainerr.ErrTransactionNotFound).Once()

	w = s.do(http.MethodGet, "/payments/paypal/success?paymentId=PAY-1&PayerID=PAYER-1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.CallbackResponse{Message: "Payment successful", TransactionID: 12, Balance: "40.00"},
		decode[dto.CallbackResponse](t, w))

	w = s.do(http.MethodGet, "/payments/paypal/success?paymentId=PAY-404&PayerID=PAYER-1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/payments/bitcoin/success?paymentId=PAY-1&PayerID=PAYER-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWithdrawalsAndHistory(t *testing.T) {
	s := newTestServer(t, nil)

	s.wallet.EXPECT().RequestWithdrawal(mock.Anything, uint64(1), usecase.WithdrawalRequest{Amount: "60.00", Method: "gcash"}).
		Return(&usecase.WithdrawalResult{Transaction: txn(20, 1, entity.TypeWithdrawal, 6000, entity.MethodGCash, entity.StatusPending)}, nil).Once()
	s.wallet.EXPECT().RequestWithdrawal(mock.Anything, uint64(1), usecase.WithdrawalRequest{Amount: "500.00", Method: "gcash"}).
		Return(nil, domainerr.NewInsufficientBalanceError(1, "500.00", "100.00")).Once()

	w := s.do(http.MethodPost, "/accounts/1/withdrawals", `{"amount":"60.00","method":"gcash"}`, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "pending", decode[dto.WithdrawalResponse](t, w).Status)

	w = s.do(http.MethodPost, "/accounts/1/withdrawals", `{"amount":"500.00","method":"gcash"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domainerr.CodeInsufficientBalance, decode[dto.ErrorResponse](t, w).Code)

	s.wallet.EXPECT().ListTransactions(mock.Anything, uint64(1), persistence.ListOptions{Limit: 5, Offset: 10}).
		Return([]*entity.Transaction{txn(20, 1, entity.TypeWithdrawal, 6000, entity.MethodGCash, entity.StatusPending)}, nil).Once()

	w = s.do(http.MethodGet, "/accounts/1/transactions?limit=5&offset=10", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.TransactionListResponse](t, w)
	require.Len(t, list.Transactions, 1)
	assert.Equal(t, "60.00", list.Transactions[0].Amount)
	assert.Equal(t, "withdrawal", list.Transactions[0].Type)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/accounts/1/transactions?limit=-1", "", nil).Code)
}

func TestBalanceAndSummary(t *testing.T) {
	s := newTestServer(t, nil)
	s.accounts.EXPECT().GetBalance(mock.Anything, uint64(1)).Return(&usecase.AccountBalance{AccountID: 1, Balance: "100.00"}, nil).Once()
	s.accounts.EXPECT().GetBalance(mock.Anything, uint64(9)).Return(nil, domainerr.ErrAccountNotFound).Once()
	s.summary.EXPECT().GetSummary(mock.Anything, uint64(1)).Return(&entity.Summary{
		AccountID:          1,
		BalanceInCents:     5000,
		TotalCashInCents:   10000,
		TotalWithdrawCents: 5000,
		Recent:             []*entity.Transaction{txn(2, 1, entity.TypeWithdrawal, 5000, entity.MethodGCash, entity.StatusCompleted)},
	}, nil).Once()

	w := s.do(http.MethodGet, "/accounts/1/balance", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.BalanceResponse{AccountID: 1, Balance: "100.00"}, decode[dto.BalanceResponse](t, w))

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/accounts/9/balance", "", nil).Code)

	w = s.do(http.MethodGet, "/accounts/1/summary", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	summary := decode[dto.SummaryResponse](t, w)
	assert.Equal(t, "50.00", summary.Balance)
	assert.Equal(t, "100.00", summary.TotalDeposited)
	assert.Equal(t, "50.00", summary.TotalWithdrawn)
	assert.Len(t, summary.RecentTransactions, 1)
}

func TestAdminRoutes(t *testing.T) {
	auth := map[string]string{"X-Admin-Key": adminKey}

	t.Run("requires the admin key", func(t *testing.T) {
		s := newTestServer(t, nil)
		assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/admin/withdrawals/pending", "", nil).Code)
		assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/admin/withdrawals/1/approve", "",
			map[string]string{"X-Admin-Key": "wrong"}).Code)
	})

	t.Run("approve and reject one", func(t *testing.T) {
		s := newTestServer(t, nil)
		approved := txn(5, 1, entity.TypeWithdrawal, 6000, entity.MethodGCash, entity.StatusCompleted)
		s.wallet.EXPECT().ApproveWithdrawal(mock.Anything, uint64(5)).
			Return(&usecase.SettlementResult{Transaction: approved, Balance: "40.00"}, nil).Once()
		s.wallet.EXPECT().ApproveWithdrawal(mock.Anything, uint64(5)).
			Return(nil, domainerr.NewTransitionError(5, "completed", "completed")).Once()

		rejected := txn(6, 1, entity.TypeWithdrawal, 5000, entity.MethodGCash, entity.StatusFailed)
		rejected.FailureReason = "suspicious"
		s.wallet.EXPECT().RejectWithdrawal(mock.Anything, uint64(6), "suspicious").Return(rejected, nil).Once()
		s.wallet.EXPECT().RejectWithdrawal(mock.Anything, uint64(7), "").Return(nil, domainerr.ErrTransactionNotFound).Once()

		w := s.do(http.MethodPost, "/admin/withdrawals/5/approve", "", auth)
		assert.Equal(t, http.StatusOK, w.Code)
		settled := decode[dto.SettlementResponse](t, w)
		assert.Equal(t, "completed", settled.Transaction.Status)
		assert.Equal(t, "40.00", settled.Balance)

		assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/admin/withdrawals/5/approve", "", auth).Code)

		w = s.do(http.MethodPost, "/admin/withdrawals/6/reject", `{"reason":"suspicious"}`, auth)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "suspicious", decode[dto.SettlementResponse](t, w).Transaction.FailureReason)

		assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/admin/withdrawals/7/reject", "", auth).Code)
	})

	t.Run("bulk approve reports each outcome", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.wallet.EXPECT().ApproveWithdrawals(mock.Anything, []uint64{1, 2}).Return([]usecase.BatchOutcome{
			{TransactionID: 1, Transaction: txn(1, 1, entity.TypeWithdrawal, 6000, entity.MethodGCash, entity.StatusCompleted)},
			{TransactionID: 2, Err: domainerr.NewInsufficientBalanceError(1, "50.00", "40.00")},
		}).Once()

		w := s.do(http.MethodPost, "/admin/withdrawals/approve", `{"transactionIds":[1,2]}`, auth)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.BulkResponse](t, w)
		assert.Equal(t, 1, resp.Succeeded)
		assert.Equal(t, 1, resp.Failed)
		require.Len(t, resp.Results, 2)
		assert.True(t, resp.Results[0].Success)
		assert.Equal(t, domainerr.CodeInsufficientBalance, resp.Results[1].Error.Code)

		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/admin/withdrawals/reject", `{"transactionIds":[]}`, auth).Code)
	})

	t.Run("pending queue", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.wallet.EXPECT().ListPendingWithdrawals(mock.Anything, persistence.ListOptions{}).
			Return([]*entity.Transaction{txn(3, 2, entity.TypeWithdrawal, 100, entity.MethodVisa, entity.StatusPending)}, nil).Once()

		w := s.do(http.MethodGet, "/admin/withdrawals/pending", "", auth)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[dto.TransactionListResponse](t, w).Transactions, 1)
	})
}

func TestHealth(t *testing.T) {
	w := newTestServer(t, nil).do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[dto.HealthResponse](t, w).Status)

	w = newTestServer(t, errors.New("connection refused")).do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "down", decode[dto.HealthResponse](t, w).Database)
}

func TestRequestIDIsPropagated(t *testing.T) {
	s := newTestServer(t, nil)
	s.accounts.EXPECT().GetBalance(mock.Anything, uint64(1)).
		RunAndReturn(func(ctx context.Context, _ uint64) (*usecase.AccountBalance, error) {
			assert.Equal(t, "req-123", logger.RequestIDFromContext(ctx))
			return &usecase.AccountBalance{AccountID: 1, Balance: "0.00"}, nil
		}).Once()

	w := s.do(http.MethodGet, "/accounts/1/balance", "", map[string]string{"X-Request-ID": "req-123"})
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestPanicIsRecovered(t *testing.T) {
	s := newTestServer(t, nil)
	s.accounts.EXPECT().GetBalance(mock.Anything, uint64(1)).
		RunAndReturn(func(context.Context, uint64) (*usecase.AccountBalance, error) { panic("boom") }).Once()

	w := s.do(http.MethodGet, "/accounts/1/balance", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, domainerr.CodeInternalServer, decode[dto.ErrorResponse](t, w).Code)
}
