package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// Account holds a wallet balance that never drops below zero
type Account struct {
	ID               uint64
	balance          int64 // cents
	CreatedAt        time.Time
	UpdatedAt        time.Time
	TransactionCount uint64
}

// NewAccount creates an account with the given opening balance
func NewAccount(id uint64, initialBalance string, timeProvider core.TimeProvider) (*Account, error) {
	if id == 0 {
		return nil, errs.ErrInvalidAccountID
	}

	balanceInCents, err := ParseBalance(initialBalance)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Account{
		ID:        id,
		balance:   balanceInCents,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreAccount rebuilds an account from persisted state
func RestoreAccount(id uint64, balanceInCents int64, transactionCount uint64, createdAt, updatedAt time.Time) *Account {
	return &Account{
		ID:               id,
		balance:          balanceInCents,
		TransactionCount: transactionCount,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

// Balance returns the current balance in cents
func (a *Account) Balance() int64 {
	return a.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (a *Account) GetBalance() string {
	return FormatCents(a.balance)
}

// CanCover reports whether the balance is at least amountInCents
func (a *Account) CanCover(amountInCents int64) bool {
	return a.balance >= amountInCents
}

// ApplyDelta adds a signed delta to the balance. A result below zero is
// rejected with ErrNegativeBalance and leaves the account untouched.
func (a *Account) ApplyDelta(delta int64, timeProvider core.TimeProvider) error {
	next := a.balance + delta
	if next < 0 {
		return errs.ErrNegativeBalance
	}
	if next > MaxBalanceInCents {
		return errs.ErrAmountOverflow
	}

	a.balance = next
	a.UpdatedAt = timeProvider.Now()
	a.TransactionCount++
	return nil
}

// Clone returns a copy that can be mutated independently
func (a *Account) Clone() *Account {
	c := *a
	return &c
}
