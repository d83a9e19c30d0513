package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// AccountRepository stores wallet balances
type AccountRepository interface {
	// GetByID reads an account without locking it
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// GetForUpdate reads an account and holds its row lock until the unit of work ends.
	// Must be called with a transactional context.
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrAccountLocked: If the lock could not be obtained
	GetForUpdate(ctx context.Context, id uint64) (*entity.Account, error)

	// Create inserts a new account
	//
	// Possible errors:
	// - ErrDuplicateAccount: If an account with the same ID exists
	Create(ctx context.Context, account *entity.Account) error

	// EnsureExists creates a zero-balance account if none exists. Existing
	// accounts are left untouched.
	EnsureExists(ctx context.Context, id uint64) error

	// Update persists the balance and counters of an account
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrNegativeBalance: If the store rejects a negative balance
	Update(ctx context.Context, account *entity.Account) error
}
