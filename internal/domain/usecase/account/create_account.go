package account

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// CreateAccount opens an account with the given ID and opening balance
func (u *AccountUseCase) CreateAccount(ctx context.Context, id uint64, initialBalance string) (*entity.Account, error) {
	account, err := entity.NewAccount(id, initialBalance, u.timeProvider)
	if err != nil {
		return nil, err
	}

	exists, err := u.AccountExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrDuplicateAccount
	}

	if err := u.accountRepo.Create(ctx, account); err != nil {
		u.logger.Error("Failed to create account", map[string]any{
			"account_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Account created", map[string]any{
		"account_id":      id,
		"initial_balance": account.GetBalance(),
	})
	return account, nil
}

// CreateDefaultAccounts seeds the demo accounts, leaving existing ones untouched
func (u *AccountUseCase) CreateDefaultAccounts(ctx context.Context) error {
	created := 0
	for _, d := range u.defaults {
		_, err := u.CreateAccount(ctx, d.ID, d.Balance)
		if errors.Is(err, errs.ErrDuplicateAccount) {
			u.logger.Debug("Default account already exists", map[string]any{"account_id": d.ID})
			continue
		}
		if err != nil {
			return err
		}
		created++
	}

	u.logger.Info("Default accounts created or verified", map[string]any{
		"created": created,
		"total":   len(u.defaults),
	})
	return nil
}
