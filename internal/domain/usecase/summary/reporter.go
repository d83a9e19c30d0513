package summary

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// DefaultRecentLimit is how many transactions a summary lists
const DefaultRecentLimit = 5

// Reporter builds read-only account summaries
type Reporter struct {
	accountRepo     persistence.AccountRepository
	transactionRepo persistence.TransactionRepository
	logger          coreport.Logger
	recentLimit     int
}

var _ usecase.SummaryUseCase = (*Reporter)(nil)

// NewReporter creates a summary reporter listing recentLimit transactions
func NewReporter(
	accountRepo persistence.AccountRepository,
	transactionRepo persistence.TransactionRepository,
	logger coreport.Logger,
	recentLimit int,
) *Reporter {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &Reporter{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
		recentLimit:     recentLimit,
	}
}

// GetSummary returns the balance, completed totals and recent transactions of
// an account. An account that was never funded reports zeros.
func (r *Reporter) GetSummary(ctx context.Context, accountID uint64) (*entity.Summary, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}

	summary := &entity.Summary{AccountID: accountID, Recent: []*entity.Transaction{}}

	account, err := r.accountRepo.GetByID(ctx, accountID)
	switch {
	case errors.Is(err, errs.ErrAccountNotFound):
		return summary, nil
	case err != nil:
		return nil, r.fail(accountID, "account", err)
	}
	summary.BalanceInCents = account.Balance()

	if summary.TotalCashInCents, err = r.transactionRepo.SumCompleted(ctx, accountID, entity.TypeCashIn); err != nil {
		return nil, r.fail(accountID, "cash-in total", err)
	}
	if summary.TotalWithdrawCents, err = r.transactionRepo.SumCompleted(ctx, accountID, entity.TypeWithdrawal); err != nil {
		return nil, r.fail(accountID, "withdrawal total", err)
	}

	recent, err := r.transactionRepo.ListByAccount(ctx, accountID, persistence.ListOptions{Limit: r.recentLimit})
	if err != nil {
		return nil, r.fail(accountID, "recent transactions", err)
	}
	if recent != nil {
		summary.Recent = recent
	}

	return summary, nil
}

func (r *Reporter) fail(accountID uint64, part string, err error) error {
	r.logger.Error("Failed to build account summary", map[string]any{
		"account_id": accountID,
		"part":       part,
		"error":      err.Error(),
	})
	return err
}
