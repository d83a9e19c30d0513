package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

// ledgerState is one consistent version of the ledger. Entities stored in it
// are never mutated in place, so a shallow copy of the maps is a snapshot.
type ledgerState struct {
	accounts          map[uint64]*entity.Account
	transactions      map[uint64]*entity.Transaction
	nextTransactionID uint64
}

func newLedgerState() *ledgerState {
	return &ledgerState{
		accounts:     make(map[uint64]*entity.Account),
		transactions: make(map[uint64]*entity.Transaction),
	}
}

func (s *ledgerState) clone() *ledgerState {
	c := &ledgerState{
		accounts:          make(map[uint64]*entity.Account, len(s.accounts)),
		transactions:      make(map[uint64]*entity.Transaction, len(s.transactions)),
		nextTransactionID: s.nextTransactionID,
	}
	for id, a := range s.accounts {
		c.accounts[id] = a
	}
	for id, t := range s.transactions {
		c.transactions[id] = t
	}
	return c
}

type txKey struct{}

// unit is an open unit of work working on a private copy of the ledger
type unit struct {
	state *ledgerState
	done  bool
}

func unitFrom(ctx context.Context) *unit {
	u, _ := ctx.Value(txKey{}).(*unit)
	return u
}

// Store is an in-process Ledger Store. Units of work run one at a time and
// commit by swapping in their copy of the ledger, so a failed unit leaves no
// trace.
type Store struct {
	sem       chan struct{} // held for the lifetime of a unit of work
	mu        sync.RWMutex  // guards committed
	committed *ledgerState

	locksMu sync.Mutex
	locks   map[string]lease

	timeProvider core.TimeProvider
	logger       core.Logger
}

// NewStore creates an empty in-memory ledger
func NewStore(timeProvider core.TimeProvider, logger core.Logger) *Store {
	return &Store{
		sem:          make(chan struct{}, 1),
		committed:    newLedgerState(),
		locks:        make(map[string]lease),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ persistence.UnitOfWork = (*Store)(nil)

// Begin starts a unit of work, waiting for any other unit to finish first
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	if u := unitFrom(ctx); u != nil && !u.done {
		return nil, fmt.Errorf("%w: nested unit of work", errs.ErrInternalServer)
	}

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.RLock()
	snapshot := s.committed.clone()
	s.mu.RUnlock()

	return context.WithValue(ctx, txKey{}, &unit{state: snapshot}), nil
}

// Commit publishes the unit's copy of the ledger
func (s *Store) Commit(ctx context.Context) error {
	u := unitFrom(ctx)
	if u == nil {
		return fmt.Errorf("%w: no unit of work in context", errs.ErrInternalServer)
	}
	if u.done {
		s.logger.Warn("Attempted to commit a finished unit of work", nil)
		return nil
	}

	s.mu.Lock()
	s.committed = u.state
	s.mu.Unlock()

	u.done = true
	<-s.sem
	return nil
}

// Rollback discards the unit's copy of the ledger
func (s *Store) Rollback(ctx context.Context) error {
	u := unitFrom(ctx)
	if u == nil || u.done {
		return nil
	}
	u.done = true
	<-s.sem
	return nil
}

// Execute runs fn as one unit of work
func (s *Store) Execute(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	txCtx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = s.Rollback(txCtx)
			panic(r)
		}
	}()

	if err := fn(txCtx); err != nil {
		_ = s.Rollback(txCtx)
		return err
	}
	return s.Commit(txCtx)
}

func (s *Store) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return &accountRepository{store: s, unit: unitFrom(ctx)}
}

func (s *Store) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return &transactionRepository{store: s, unit: unitFrom(ctx)}
}

// PaymentLocks returns the lease repository backed by this store
func (s *Store) PaymentLocks() persistence.PaymentLockRepository {
	return &paymentLockRepository{store: s}
}

// Ping always succeeds; it lets the store stand in for a database in health checks
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// read runs fn against the unit's copy, or the committed ledger outside a unit
func (s *Store) read(u *unit, fn func(st *ledgerState) error) error {
	if u != nil && !u.done {
		return fn(u.state)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.committed)
}

// write runs fn against the unit's copy, or in its own unit outside one
func (s *Store) write(ctx context.Context, u *unit, fn func(st *ledgerState) error) error {
	if u != nil && !u.done {
		return fn(u.state)
	}
	return s.Execute(ctx, func(txCtx context.Context) error {
		return fn(unitFrom(txCtx).state)
	})
}
