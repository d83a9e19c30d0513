package persistence

import (
	"context"
	"time"
)

// PaymentLockRepository leases provider payment ids so only one callback
// executes a given payment at the provider at a time
type PaymentLockRepository interface {
	// AcquireLock takes a lease on the reference for owner that expires after
	// duration. An expired lease may be taken over.
	//
	// Possible errors:
	// - ErrPaymentLocked: If another holder's lease is still live
	// - ErrDatabaseConnection: If database connection fails
	AcquireLock(ctx context.Context, reference, owner string, duration time.Duration) error

	// ReleaseLock drops the lease if owner still holds it. Releasing a missing
	// lease, or one that expired and was taken over, is not an error.
	ReleaseLock(ctx context.Context, reference, owner string) error

	// CleanupExpiredLocks removes leases whose expiry has passed and returns how many
	CleanupExpiredLocks(ctx context.Context) (int64, error)
}
