package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

const (
	DefaultPageSize       = 20
	MaxPageSize           = 100
	DefaultPaymentLockTTL = 30 * time.Second

	reasonCancelled = "cancelled by user"
	reasonDeclined  = "declined by provider"
	reasonRejected  = "rejected by operator"
)

// Options tunes the transaction engine
type Options struct {
	Currency         string
	PaymentLockTTL   time.Duration
	QueueSize        int
	QueueIdleTimeout time.Duration
}

// Service is the transaction engine. Every balance change happens inside a
// unit of work that also records the transaction state change causing it.
type Service struct {
	uow          persistence.UnitOfWork
	paymentLocks persistence.PaymentLockRepository
	gateways     *gateway.Registry
	publisher    messaging.EventPublisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	options      Options

	manager     *TransactionManager
	validator   *TransactionValidator
	idempotency *IdempotencyHandler
}

var _ usecase.WalletUseCase = (*Service)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(
	uow persistence.UnitOfWork,
	paymentLocks persistence.PaymentLockRepository,
	gateways *gateway.Registry,
	publisher messaging.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	options Options,
) *Service {
	if options.PaymentLockTTL <= 0 {
		options.PaymentLockTTL = DefaultPaymentLockTTL
	}
	if options.Currency == "" {
		options.Currency = "PHP"
	}

	return &Service{
		uow:          uow,
		paymentLocks: paymentLocks,
		gateways:     gateways,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
		options:      options,
		manager:      NewTransactionManager(logger, options.QueueSize, options.QueueIdleTimeout),
		validator:    NewTransactionValidator(),
		idempotency:  NewIdempotencyHandler(uow),
	}
}

// ledgerFunc is the body of a unit of work with repositories bound to its transaction
type ledgerFunc func(ctx context.Context, accounts persistence.AccountRepository, txns persistence.TransactionRepository) error

// withinAccount serializes fn behind other work on the account and runs it as
// one unit of work
func (s *Service) withinAccount(ctx context.Context, accountID uint64, fn ledgerFunc) error {
	return s.manager.Execute(ctx, accountID, func(ctx context.Context) error {
		return s.uow.Execute(ctx, func(txCtx context.Context) error {
			return fn(txCtx, s.uow.GetAccountRepository(txCtx), s.uow.GetTransactionRepository(txCtx))
		})
	})
}

// lockPendingTransaction locks the account and then the transaction, in that
// order, and checks the transaction can still leave pending for target
func lockPendingTransaction(
	ctx context.Context,
	accounts persistence.AccountRepository,
	txns persistence.TransactionRepository,
	accountID, transactionID uint64,
	target entity.TransactionStatus,
) (*entity.Account, *entity.Transaction, error) {
	account, err := accounts.GetForUpdate(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	txn, err := txns.GetForUpdate(ctx, transactionID)
	if err != nil {
		return nil, nil, err
	}
	if !txn.IsPending() {
		return nil, nil, errs.NewTransitionError(txn.ID, string(txn.Status), string(target))
	}

	return account, txn, nil
}

// settle applies the transaction's balance delta and completes it
func (s *Service) settle(
	ctx context.Context,
	accounts persistence.AccountRepository,
	txns persistence.TransactionRepository,
	account *entity.Account,
	txn *entity.Transaction,
) error {
	if err := account.ApplyDelta(txn.BalanceDelta(), s.timeProvider); err != nil {
		if errors.Is(err, errs.ErrNegativeBalance) {
			s.logger.Error("Balance floor violated, aborting", map[string]any{
				"account_id":     account.ID,
				"transaction_id": txn.ID,
				"balance":        account.GetBalance(),
				"amount":         txn.Amount(),
			})
		}
		return err
	}
	if err := txn.Complete(s.timeProvider); err != nil {
		return err
	}
	if err := accounts.Update(ctx, account); err != nil {
		return err
	}
	return txns.Update(ctx, txn)
}

func (s *Service) publish(ctx context.Context, eventType string, txn *entity.Transaction, balance string) {
	if s.publisher == nil {
		return
	}

	event := messaging.TransactionEvent{
		EventType:         eventType,
		TransactionID:     txn.ID,
		AccountID:         txn.AccountID,
		TransactionType:   string(txn.Type),
		Method:            string(txn.Method),
		Amount:            txn.Amount(),
		Status:            string(txn.Status),
		Balance:           balance,
		ExternalReference: txn.Reference(),
		OccurredAt:        s.timeProvider.Now(),
	}
	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Warn("Failed to publish transaction event", map[string]any{
			"event_type":     eventType,
			"transaction_id": txn.ID,
			"error":          err.Error(),
		})
	}
}

func (s *Service) logFailure(message string, err error, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()
	fields["error_code"] = errs.ErrorCode(err)

	if errs.IsValidationError(err) || errs.IsNotFoundError(err) || errs.IsConflictError(err) ||
		errors.Is(err, errs.ErrInsufficientBalance) || errors.Is(err, errs.ErrPaymentDeclined) {
		s.logger.Warn(message, fields)
		return
	}
	s.logger.Error(message, fields)
}

// GetManager returns the underlying transaction manager
func (s *Service) GetManager() *TransactionManager {
	return s.manager
}

// Shutdown drains queued ledger work
func (s *Service) Shutdown() {
	s.manager.Shutdown()
}

func normalizeListOptions(opts persistence.ListOptions) persistence.ListOptions {
	if opts.Limit <= 0 {
		opts.Limit = DefaultPageSize
	}
	if opts.Limit > MaxPageSize {
		opts.Limit = MaxPageSize
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return opts
}
