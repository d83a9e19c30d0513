package memory

import (
	"context"
	"sort"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

type accountRepository struct {
	store *Store
	unit  *unit
}

func (r *accountRepository) GetByID(_ context.Context, id uint64) (*entity.Account, error) {
	var account *entity.Account
	err := r.store.read(r.unit, func(st *ledgerState) error {
		a, ok := st.accounts[id]
		if !ok {
			return errs.ErrAccountNotFound
		}
		account = a.Clone()
		return nil
	})
	return account, err
}

// GetForUpdate is GetByID: inside a unit of work the whole ledger is already exclusive
func (r *accountRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.store.write(ctx, r.unit, func(st *ledgerState) error {
		if _, ok := st.accounts[account.ID]; ok {
			return errs.ErrDuplicateAccount
		}
		st.accounts[account.ID] = account.Clone()
		return nil
	})
}

func (r *accountRepository) EnsureExists(ctx context.Context, id uint64) error {
	return r.store.write(ctx, r.unit, func(st *ledgerState) error {
		if _, ok := st.accounts[id]; ok {
			return nil
		}
		now := r.store.timeProvider.Now()
		st.accounts[id] = entity.RestoreAccount(id, 0, 0, now, now)
		return nil
	})
}

func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	return r.store.write(ctx, r.unit, func(st *ledgerState) error {
		if _, ok := st.accounts[account.ID]; !ok {
			return errs.ErrAccountNotFound
		}
		if account.Balance() < 0 {
			return errs.ErrNegativeBalance
		}
		st.accounts[account.ID] = account.Clone()
		return nil
	})
}

type transactionRepository struct {
	store *Store
	unit  *unit
}

func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	return r.store.write(ctx, r.unit, func(st *ledgerState) error {
		if _, ok := st.accounts[txn.AccountID]; !ok {
			return errs.ErrAccountNotFound
		}
		for _, existing := range st.transactions {
			if txn.ExternalReference != nil && existing.Method == txn.Method && existing.Reference() == *txn.ExternalReference {
				return errs.ErrDuplicateTransaction
			}
			if txn.IdempotencyKey != nil && existing.IdempotencyKey != nil &&
				existing.AccountID == txn.AccountID && *existing.IdempotencyKey == *txn.IdempotencyKey {
				return errs.NewDuplicateTransactionError(txn.AccountID, *txn.IdempotencyKey)
			}
		}

		st.nextTransactionID++
		txn.ID = st.nextTransactionID
		st.transactions[txn.ID] = txn.Clone()
		return nil
	})
}

func (r *transactionRepository) Update(ctx context.Context, txn *entity.Transaction) error {
	return r.store.write(ctx, r.unit, func(st *ledgerState) error {
		if _, ok := st.transactions[txn.ID]; !ok {
			return errs.ErrTransactionNotFound
		}
		st.transactions[txn.ID] = txn.Clone()
		return nil
	})
}

func (r *transactionRepository) GetByID(_ context.Context, id uint64) (*entity.Transaction, error) {
	return r.findOne(func(t *entity.Transaction) bool { return t.ID == id })
}

func (r *transactionRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.Transaction, error) {
	return r.GetByID(ctx, id)
}

func (r *transactionRepository) GetByReference(_ context.Context, method entity.PaymentMethod, reference string) (*entity.Transaction, error) {
	return r.findOne(func(t *entity.Transaction) bool {
		return t.Method == method && t.ExternalReference != nil && *t.ExternalReference == reference
	})
}

func (r *transactionRepository) GetByIdempotencyKey(_ context.Context, accountID uint64, key string) (*entity.Transaction, error) {
	return r.findOne(func(t *entity.Transaction) bool {
		return t.AccountID == accountID && t.IdempotencyKey != nil && *t.IdempotencyKey == key
	})
}

func (r *transactionRepository) ListByAccount(_ context.Context, accountID uint64, opts persistence.ListOptions) ([]*entity.Transaction, error) {
	list, err := r.filter(func(t *entity.Transaction) bool { return t.AccountID == accountID })
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return newerFirst(list[i], list[j]) })
	return paginate(list, opts), nil
}

func (r *transactionRepository) ListPending(
	_ context.Context,
	accountID uint64,
	txType entity.TransactionType,
	method entity.PaymentMethod,
) ([]*entity.Transaction, error) {
	list, err := r.filter(func(t *entity.Transaction) bool {
		return t.AccountID == accountID && t.Type == txType && t.Method == method && t.IsPending()
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *transactionRepository) ListPendingWithdrawals(_ context.Context, opts persistence.ListOptions) ([]*entity.Transaction, error) {
	list, err := r.filter(func(t *entity.Transaction) bool {
		return t.Type == entity.TypeWithdrawal && t.IsPending()
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return newerFirst(list[j], list[i]) })
	return paginate(list, opts), nil
}

func (r *transactionRepository) SumCompleted(_ context.Context, accountID uint64, txType entity.TransactionType) (int64, error) {
	var total int64
	err := r.store.read(r.unit, func(st *ledgerState) error {
		for _, t := range st.transactions {
			if t.AccountID == accountID && t.Type == txType && t.Status == entity.StatusCompleted {
				total += t.AmountInCents
			}
		}
		return nil
	})
	return total, err
}

func (r *transactionRepository) findOne(match func(*entity.Transaction) bool) (*entity.Transaction, error) {
	var found *entity.Transaction
	err := r.store.read(r.unit, func(st *ledgerState) error {
		for _, t := range st.transactions {
			if match(t) {
				found = t.Clone()
				return nil
			}
		}
		return errs.ErrTransactionNotFound
	})
	return found, err
}

func (r *transactionRepository) filter(match func(*entity.Transaction) bool) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	err := r.store.read(r.unit, func(st *ledgerState) error {
		for _, t := range st.transactions {
			if match(t) {
				list = append(list, t.Clone())
			}
		}
		return nil
	})
	return list, err
}

func newerFirst(a, b *entity.Transaction) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func paginate(list []*entity.Transaction, opts persistence.ListOptions) []*entity.Transaction {
	if opts.Offset >= len(list) {
		return []*entity.Transaction{}
	}
	list = list[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(list) {
		list = list[:opts.Limit]
	}
	return list
}

type lease struct {
	owner     string
	expiresAt time.Time
}

type paymentLockRepository struct {
	store *Store
}

func (r *paymentLockRepository) AcquireLock(_ context.Context, reference, owner string, duration time.Duration) error {
	r.store.locksMu.Lock()
	defer r.store.locksMu.Unlock()

	now := r.store.timeProvider.Now()
	if l, ok := r.store.locks[reference]; ok && now.Before(l.expiresAt) {
		return errs.ErrPaymentLocked
	}
	r.store.locks[reference] = lease{owner: owner, expiresAt: now.Add(duration)}
	return nil
}

// ReleaseLock only drops the lease while owner still holds it
func (r *paymentLockRepository) ReleaseLock(_ context.Context, reference, owner string) error {
	r.store.locksMu.Lock()
	defer r.store.locksMu.Unlock()
	if l, ok := r.store.locks[reference]; ok && l.owner == owner {
		delete(r.store.locks, reference)
	}
	return nil
}

func (r *paymentLockRepository) CleanupExpiredLocks(_ context.Context) (int64, error) {
	r.store.locksMu.Lock()
	defer r.store.locksMu.Unlock()

	now := r.store.timeProvider.Now()
	var removed int64
	for ref, l := range r.store.locks {
		if !now.Before(l.expiresAt) {
			delete(r.store.locks, ref)
			removed++
		}
	}
	return removed, nil
}
