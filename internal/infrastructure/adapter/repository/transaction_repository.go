package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// idempotencyIndex names the (account_id, idempotency_key) unique index
const idempotencyIndex = "idx_transactions_account_key"

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func transactionToModel(t *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:                t.ID,
		AccountID:         t.AccountID,
		Type:              string(t.Type),
		Amount:            entity.CentsToDecimal(t.AmountInCents),
		Method:            string(t.Method),
		ExternalReference: t.ExternalReference,
		IdempotencyKey:    t.IdempotencyKey,
		Status:            string(t.Status),
		FailureReason:     t.FailureReason,
		CreatedAt:         t.CreatedAt,
		ProcessedAt:       t.ProcessedAt,
	}
}

func transactionToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                m.ID,
		AccountID:         m.AccountID,
		Type:              entity.TransactionType(m.Type),
		AmountInCents:     entity.DecimalToCents(m.Amount),
		Method:            entity.PaymentMethod(m.Method),
		ExternalReference: m.ExternalReference,
		IdempotencyKey:    m.IdempotencyKey,
		Status:            entity.TransactionStatus(m.Status),
		FailureReason:     m.FailureReason,
		CreatedAt:         m.CreatedAt,
		ProcessedAt:       m.ProcessedAt,
	}
}

func transactionsToEntities(models []model.Transaction) []*entity.Transaction {
	list := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		list = append(list, transactionToEntity(&models[i]))
	}
	return list
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	fields["error"] = err.Error()

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("Transaction row is locked by another transaction", fields)
		return fmt.Errorf("%w: %s", errs.ErrAccountLocked, err.Error())
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create inserts a transaction and assigns its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	m := transactionToModel(transaction)
	m.ID = 0

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		switch {
		case r.errorClassifier.IsDuplicateKeyError(err):
			r.logger.Warn("Duplicate transaction detected", map[string]any{
				"account_id": transaction.AccountID,
				"method":     transaction.Method,
				"reference":  transaction.Reference(),
			})
			if transaction.IdempotencyKey != nil && strings.Contains(err.Error(), idempotencyIndex) {
				return errs.NewDuplicateTransactionError(transaction.AccountID, *transaction.IdempotencyKey)
			}
			return errs.ErrDuplicateTransaction
		case r.errorClassifier.IsForeignKeyViolation(err):
			return errs.ErrAccountNotFound
		}
		return r.handleDatabaseError("creating transaction", err, map[string]any{
			"account_id": transaction.AccountID,
		})
	}

	transaction.ID = m.ID
	r.logger.Debug("Transaction created", map[string]any{
		"transaction_id": transaction.ID,
		"account_id":     transaction.AccountID,
		"type":           transaction.Type,
		"status":         transaction.Status,
	})
	return nil
}

// Update persists status, amount, failure reason and processed time
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]interface{}{
			"status":         string(transaction.Status),
			"amount":         entity.CentsToDecimal(transaction.AmountInCents),
			"failure_reason": transaction.FailureReason,
			"processed_at":   transaction.ProcessedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating transaction", result.Error, map[string]any{
			"transaction_id": transaction.ID,
		})
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Transaction not found during update", map[string]any{
			"transaction_id": transaction.ID,
		})
		return errs.ErrTransactionNotFound
	}

	r.logger.Debug("Transaction updated", map[string]any{
		"transaction_id": transaction.ID,
		"status":         transaction.Status,
	})
	return nil
}

func (r *TransactionRepository) first(query *gorm.DB, operation string, fields map[string]any) (*entity.Transaction, error) {
	var m model.Transaction
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, r.handleDatabaseError(operation, err, fields)
	}
	return transactionToEntity(&m), nil
}

// GetByID reads a transaction without locking it
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id), "getting transaction", map[string]any{
		"transaction_id": id,
	})
}

// GetForUpdate reads a transaction and locks its row
func (r *TransactionRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id)
	return r.first(query, "locking transaction", map[string]any{"transaction_id": id})
}

// GetByReference finds the transaction a provider reference belongs to
func (r *TransactionRepository) GetByReference(ctx context.Context, method entity.PaymentMethod, reference string) (*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Where("method = ? AND external_reference = ?", string(method), reference)
	return r.first(query, "finding transaction by reference", map[string]any{
		"method":    method,
		"reference": reference,
	})
}

// GetByIdempotencyKey returns the transaction recorded for a client key
func (r *TransactionRepository) GetByIdempotencyKey(ctx context.Context, accountID uint64, key string) (*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Where("account_id = ? AND idempotency_key = ?", accountID, key)
	return r.first(query, "finding transaction by idempotency key", map[string]any{
		"account_id": accountID,
	})
}

// ListByAccount returns an account's transactions, newest first
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID uint64, opts persistence.ListOptions) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").Order("id DESC").
		Scopes(paginate(opts)).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing transactions", err, map[string]any{"account_id": accountID})
	}
	return transactionsToEntities(models), nil
}

// ListPending returns an account's pending transactions of one type and method.
// The rows stay locked until the surrounding transaction ends.
func (r *TransactionRepository) ListPending(
	ctx context.Context,
	accountID uint64,
	txType entity.TransactionType,
	method entity.PaymentMethod,
) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("account_id = ? AND type = ? AND method = ? AND status = ?",
			accountID, string(txType), string(method), string(entity.StatusPending)).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing pending transactions", err, map[string]any{"account_id": accountID})
	}
	return transactionsToEntities(models), nil
}

// ListPendingWithdrawals returns the operator queue, oldest first
func (r *TransactionRepository) ListPendingWithdrawals(ctx context.Context, opts persistence.ListOptions) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("type = ? AND status = ?", string(entity.TypeWithdrawal), string(entity.StatusPending)).
		Order("created_at ASC").Order("id ASC").
		Scopes(paginate(opts)).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing pending withdrawals", err, map[string]any{})
	}
	return transactionsToEntities(models), nil
}

// SumCompleted totals the completed transactions of one type for an account
func (r *TransactionRepository) SumCompleted(ctx context.Context, accountID uint64, txType entity.TransactionType) (int64, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("SUM(amount)").
		Where("account_id = ? AND type = ? AND status = ?", accountID, string(txType), string(entity.StatusCompleted)).
		Row().Scan(&total)
	if err != nil {
		return 0, r.handleDatabaseError("summing transactions", err, map[string]any{
			"account_id": accountID,
			"type":       txType,
		})
	}
	if !total.Valid {
		return 0, nil
	}
	return entity.DecimalToCents(total.Decimal), nil
}

func paginate(opts persistence.ListOptions) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if opts.Offset > 0 {
			db = db.Offset(opts.Offset)
		}
		if opts.Limit > 0 {
			db = db.Limit(opts.Limit)
		}
		return db
	}
}
