package ports

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/editlock"
	"orderdesk/internal/core/domain/model/kernel"
)

// EditLockRepository stores at most one edit lock per order.
// Implementations must make TryCreate atomic across all callers that share the store.
type EditLockRepository interface {
	// TryCreate stores the lock unless the order already has one.
	// It reports whether the lock was stored.
	TryCreate(ctx context.Context, lock *editlock.Lock) (bool, error)

	// Get returns the current lock of an order, or an ObjectNotFoundError.
	Get(ctx context.Context, orderID kernel.ID) (*editlock.Lock, error)

	// DeleteAcquiredBefore removes the order's lock only if it was acquired before cutoff.
	// It reports whether a lock was removed.
	DeleteAcquiredBefore(ctx context.Context, orderID kernel.ID, cutoff time.Time) (bool, error)

	// Delete removes the order's lock. Removing a missing lock is not an error.
	Delete(ctx context.Context, orderID kernel.ID) error

	// DeleteAllAcquiredBefore removes every lock acquired before cutoff.
	DeleteAllAcquiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
