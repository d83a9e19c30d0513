package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

// CashInRequest is an incoming request to fund a wallet
type CashInRequest struct {
	Amount         string
	Method         string
	IdempotencyKey string
}

// CashInResult describes the outcome of a cash-in. ApprovalURL is set when the
// payer must approve the payment at the provider; the transaction is then pending.
type CashInResult struct {
	Transaction *entity.Transaction
	ApprovalURL string
	Balance     string
	Replayed    bool
}

// WithdrawalRequest is an incoming request to take money out of a wallet
type WithdrawalRequest struct {
	Amount         string
	Method         string
	IdempotencyKey string
}

// WithdrawalResult wraps the pending withdrawal that was recorded
type WithdrawalResult struct {
	Transaction *entity.Transaction
	Replayed    bool
}

// SettlementResult is a transaction after a balance-affecting transition
type SettlementResult struct {
	Transaction *entity.Transaction
	Balance     string
}

// BatchOutcome is the per-transaction result of a bulk operator action
type BatchOutcome struct {
	TransactionID uint64
	Transaction   *entity.Transaction
	Err           error
}

// WalletUseCase is the transaction engine: every operation that creates a
// ledger entry or moves one between states
type WalletUseCase interface {
	// CashIn funds a wallet, synchronously or through a provider redirect depending on the method
	CashIn(ctx context.Context, accountID uint64, req CashInRequest) (*CashInResult, error)

	// ConfirmCashIn handles the provider callback for an approved payment
	ConfirmCashIn(ctx context.Context, method entity.PaymentMethod, paymentID, payerID string) (*SettlementResult, error)

	// CancelCashIn marks pending provider cash-ins as failed; paymentID may be empty
	CancelCashIn(ctx context.Context, accountID uint64, paymentID string) (int, error)

	RequestWithdrawal(ctx context.Context, accountID uint64, req WithdrawalRequest) (*WithdrawalResult, error)
	ApproveWithdrawal(ctx context.Context, transactionID uint64) (*SettlementResult, error)
	RejectWithdrawal(ctx context.Context, transactionID uint64, reason string) (*entity.Transaction, error)
	ApproveWithdrawals(ctx context.Context, transactionIDs []uint64) []BatchOutcome
	RejectWithdrawals(ctx context.Context, transactionIDs []uint64, reason string) []BatchOutcome

	// ListTransactions returns an account's history, newest first
	ListTransactions(ctx context.Context, accountID uint64, opts persistence.ListOptions) ([]*entity.Transaction, error)

	// ListPendingWithdrawals returns withdrawals awaiting an operator, oldest first
	ListPendingWithdrawals(ctx context.Context, opts persistence.ListOptions) ([]*entity.Transaction, error)
}
