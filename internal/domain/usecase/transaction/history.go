package transaction

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

// ListTransactions returns the account's transactions, newest first
func (s *Service) ListTransactions(ctx context.Context, accountID uint64, opts persistence.ListOptions) ([]*entity.Transaction, error) {
	if err := s.validator.ValidateAccountID(accountID); err != nil {
		return nil, err
	}
	return s.uow.GetTransactionRepository(ctx).ListByAccount(ctx, accountID, normalizeListOptions(opts))
}

// ListPendingWithdrawals returns withdrawals awaiting an operator decision, oldest first
func (s *Service) ListPendingWithdrawals(ctx context.Context, opts persistence.ListOptions) ([]*entity.Transaction, error) {
	return s.uow.GetTransactionRepository(ctx).ListPendingWithdrawals(ctx, normalizeListOptions(opts))
}
