package account

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// DefaultAccount is a demo account seeded in development
type DefaultAccount struct {
	ID      uint64
	Balance string
}

// DefaultAccounts are seeded when no list is configured
var DefaultAccounts = []DefaultAccount{
	{ID: 1, Balance: "100.00"},
	{ID: 2, Balance: "200.00"},
	{ID: 3, Balance: "300.00"},
}

// AccountUseCase implements reading and provisioning wallet accounts
type AccountUseCase struct {
	accountRepo  persistence.AccountRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	defaults     []DefaultAccount
}

var _ usecase.AccountUseCase = (*AccountUseCase)(nil)

// NewAccountUseCase creates a new account use case. defaults replaces
// DefaultAccounts for CreateDefaultAccounts when non-empty.
func NewAccountUseCase(
	accountRepo persistence.AccountRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	defaults ...DefaultAccount,
) *AccountUseCase {
	if len(defaults) == 0 {
		defaults = DefaultAccounts
	}
	return &AccountUseCase{
		accountRepo:  accountRepo,
		timeProvider: timeProvider,
		logger:       logger,
		defaults:     defaults,
	}
}

// GetBalance retrieves an account's balance formatted with two decimals
func (u *AccountUseCase) GetBalance(ctx context.Context, accountID uint64) (*usecase.AccountBalance, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}

	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, errs.ErrAccountNotFound) {
			u.logger.Error("Failed to get account", map[string]any{
				"account_id": accountID,
				"error":      err.Error(),
			})
		}
		return nil, err
	}

	return &usecase.AccountBalance{
		AccountID: account.ID,
		Balance:   account.GetBalance(),
	}, nil
}

// AccountExists checks if an account exists with the given ID
func (u *AccountUseCase) AccountExists(ctx context.Context, accountID uint64) (bool, error) {
	if accountID == 0 {
		return false, errs.ErrInvalidAccountID
	}

	_, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
