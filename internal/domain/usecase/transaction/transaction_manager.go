package transaction

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

const (
	// DefaultQueueSize is the buffer of each per-account work queue
	DefaultQueueSize = 100
	// DefaultIdleTimeout is how long an account worker waits for work before exiting
	DefaultIdleTimeout = time.Minute

	drainPollInterval = 10 * time.Millisecond
)

// WorkFunc is a unit of ledger work for one account
type WorkFunc func(ctx context.Context) error

// TransactionManager runs ledger work for the same account one at a time, in
// arrival order. Work for different accounts runs concurrently. An account's
// worker exits after idleTimeout without work and is started again on demand.
type TransactionManager struct {
	logger      coreport.Logger
	queueSize   int
	idleTimeout time.Duration

	// mu guards queues, closed and every accountQueue.pending
	mu     sync.Mutex
	queues map[uint64]*accountQueue
	closed bool
	quit   chan struct{}

	queueWaitGroup sync.WaitGroup
}

type accountQueue struct {
	work chan *workRequest
	// requests registered but not yet handled; the worker only exits at zero
	pending int
}

const (
	requestQueued int32 = iota
	requestRunning
	requestAbandoned
)

type workRequest struct {
	ctx    context.Context
	fn     WorkFunc
	state  atomic.Int32
	result chan error
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(logger coreport.Logger, queueSize int, idleTimeout time.Duration) *TransactionManager {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &TransactionManager{
		logger:      logger,
		queueSize:   queueSize,
		idleTimeout: idleTimeout,
		queues:      make(map[uint64]*accountQueue),
		quit:        make(chan struct{}),
	}
}

// Execute queues fn behind any earlier work for accountID and waits for it to
// finish. A caller whose context ends while fn is still queued gets ctx.Err()
// and fn never runs; once fn has started, Execute returns its real outcome.
func (m *TransactionManager) Execute(ctx context.Context, accountID uint64, fn WorkFunc) error {
	q, err := m.register(accountID)
	if err != nil {
		return err
	}

	req := &workRequest{ctx: ctx, fn: fn, result: make(chan error, 1)}
	select {
	case q.work <- req:
	case <-ctx.Done():
		m.finish(q)
		m.logger.Warn("Context canceled while enqueueing ledger work", map[string]any{
			"account_id": accountID,
			"error":      ctx.Err().Error(),
		})
		return ctx.Err()
	}

	select {
	case err := <-req.result:
		return err
	case <-ctx.Done():
		if req.state.CompareAndSwap(requestQueued, requestAbandoned) {
			m.logger.Warn("Context canceled while waiting for ledger work", map[string]any{
				"account_id": accountID,
				"error":      ctx.Err().Error(),
			})
			return ctx.Err()
		}
		// already running: whatever it commits is the answer
		return <-req.result
	}
}

// register reserves a slot on the account's queue, starting its worker if needed
func (m *TransactionManager) register(accountID uint64) (*accountQueue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, fmt.Errorf("%w: transaction manager is shut down", errs.ErrInternalServer)
	}

	q, ok := m.queues[accountID]
	if !ok {
		q = &accountQueue{work: make(chan *workRequest, m.queueSize)}
		m.queues[accountID] = q
		m.logger.Debug("Starting ledger queue worker", map[string]any{"account_id": accountID})
		m.queueWaitGroup.Add(1)
		go m.processAccountQueue(accountID, q)
	}
	q.pending++
	return q, nil
}

func (m *TransactionManager) finish(q *accountQueue) {
	m.mu.Lock()
	q.pending--
	m.mu.Unlock()
}

// retire removes q from the manager if no work is registered on it
func (m *TransactionManager) retire(accountID uint64, q *accountQueue) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if q.pending > 0 {
		return false
	}
	delete(m.queues, accountID)
	return true
}

func (m *TransactionManager) processAccountQueue(accountID uint64, q *accountQueue) {
	defer m.queueWaitGroup.Done()

	idle := time.NewTimer(m.idleTimeout)
	defer idle.Stop()

	for {
		select {
		case req := <-q.work:
			m.handle(accountID, q, req)
			idle.Reset(m.idleTimeout)
		case <-idle.C:
			if m.retire(accountID, q) {
				m.logger.Debug("Idle ledger queue worker stopped", map[string]any{"account_id": accountID})
				return
			}
			idle.Reset(m.idleTimeout)
		case <-m.quit:
			m.drain(accountID, q)
			m.logger.Debug("Ledger queue worker stopped", map[string]any{"account_id": accountID})
			return
		}
	}
}

// drain handles queued work until nothing is registered on q. A registered
// caller may still give up before sending, so the queue is polled rather
// than blocked on.
func (m *TransactionManager) drain(accountID uint64, q *accountQueue) {
	poll := time.NewTicker(drainPollInterval)
	defer poll.Stop()

	for !m.retire(accountID, q) {
		select {
		case req := <-q.work:
			m.handle(accountID, q, req)
		case <-poll.C:
		}
	}
}

func (m *TransactionManager) handle(accountID uint64, q *accountQueue, req *workRequest) {
	defer m.finish(q)

	if !req.state.CompareAndSwap(requestQueued, requestRunning) {
		return
	}
	// The caller's context ended before we got here; don't touch the ledger.
	if err := req.ctx.Err(); err != nil {
		req.result <- err
		return
	}
	req.result <- m.run(accountID, req)
}

func (m *TransactionManager) run(accountID uint64, req *workRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Panic in ledger work", map[string]any{
				"account_id": accountID,
				"panic":      fmt.Sprintf("%v", r),
			})
			err = fmt.Errorf("%w: %v", errs.ErrInternalServer, r)
		}
	}()
	return req.fn(req.ctx)
}

// ActiveQueues reports how many account workers are running
func (m *TransactionManager) ActiveQueues() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queues)
}

// Shutdown stops accepting work, drains the queues and waits for the workers
func (m *TransactionManager) Shutdown() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	close(m.quit)
	m.mu.Unlock()

	m.logger.Info("Shutting down transaction manager", nil)
	m.queueWaitGroup.Wait()
	m.logger.Info("Transaction manager shut down successfully", nil)
}
