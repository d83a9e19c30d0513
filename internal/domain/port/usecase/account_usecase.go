package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// AccountBalance represents the standardized balance response
type AccountBalance struct {
	AccountID uint64
	Balance   string
}

// AccountUseCase covers reading and provisioning wallet accounts
type AccountUseCase interface {
	GetBalance(ctx context.Context, accountID uint64) (*AccountBalance, error)
	CreateAccount(ctx context.Context, id uint64, initialBalance string) (*entity.Account, error)
	// CreateDefaultAccounts seeds the demo accounts, skipping any that exist
	CreateDefaultAccounts(ctx context.Context) error
}

// SummaryUseCase builds the balance summary of an account
type SummaryUseCase interface {
	GetSummary(ctx context.Context, accountID uint64) (*entity.Summary, error)
}
