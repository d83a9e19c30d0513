package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements the AccountRepository port using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance. db is either
// the pool or the transaction of the current unit of work.
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func accountToEntity(m *model.Account) *entity.Account {
	return entity.RestoreAccount(m.ID, entity.DecimalToCents(m.Balance), m.TransactionCount, m.CreatedAt, m.UpdatedAt)
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, accountID uint64) error {
	switch r.errorClassifier.Classify(err) {
	case DuplicateKeyError:
		r.logger.Warn("Duplicate account", map[string]any{"account_id": accountID})
		return errs.ErrDuplicateAccount
	case CheckError:
		r.logger.Error("Balance floor rejected by database", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrNegativeBalance, err.Error())
	case LockError:
		r.logger.Warn("Account is locked by another transaction", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrAccountLocked, err.Error())
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"account_id": accountID,
		"error":      err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

func (r *AccountRepository) first(query *gorm.DB, id uint64, operation string) (*entity.Account, error) {
	var m model.Account
	if err := query.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAccountNotFound
		}
		return nil, r.handleDatabaseError(operation, err, id)
	}
	return accountToEntity(&m), nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	return r.first(r.db.WithContext(ctx), id, "getting account")
}

// GetForUpdate retrieves an account and holds its row lock until the
// surrounding transaction ends
func (r *AccountRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.Account, error) {
	r.logger.Debug("Locking account", map[string]any{"account_id": id})

	query := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	return r.first(query, id, "locking account")
}

// Create inserts a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	m := model.Account{
		ID:               account.ID,
		Balance:          entity.CentsToDecimal(account.Balance()),
		CreatedAt:        account.CreatedAt,
		UpdatedAt:        account.UpdatedAt,
		TransactionCount: account.TransactionCount,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating account", err, account.ID)
	}

	r.logger.Debug("Account row inserted", map[string]any{
		"account_id": account.ID,
		"balance":    account.GetBalance(),
	})
	return nil
}

// EnsureExists inserts a zero-balance account unless one already exists
func (r *AccountRepository) EnsureExists(ctx context.Context, id uint64) error {
	now := r.timeProvider.Now()
	m := model.Account{
		ID:        id,
		Balance:   entity.CentsToDecimal(0),
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
	if result.Error != nil {
		return r.handleDatabaseError("ensuring account", result.Error, id)
	}
	if result.RowsAffected > 0 {
		r.logger.Info("Account opened on first cash-in", map[string]any{"account_id": id})
	}
	return nil
}

// Update persists the balance and counters of an account
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	if account.Balance() < 0 {
		return errs.ErrNegativeBalance
	}

	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"balance":           entity.CentsToDecimal(account.Balance()),
			"updated_at":        account.UpdatedAt,
			"transaction_count": account.TransactionCount,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating account", result.Error, account.ID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Account not found during update", map[string]any{"account_id": account.ID})
		return errs.ErrAccountNotFound
	}

	r.logger.Debug("Account updated", map[string]any{
		"account_id": account.ID,
		"balance":    account.GetBalance(),
		"tx_count":   account.TransactionCount,
	})
	return nil
}
