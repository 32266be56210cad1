package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/editlock"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
)

type PurgeExpiredEditLocksCommandHandler struct {
	locks ports.EditLockRepository
	ttl   time.Duration
	clock kernel.Clock
}

func NewPurgeExpiredEditLocksCommandHandler(
	locks ports.EditLockRepository,
	ttl time.Duration,
	clock kernel.Clock,
) PurgeExpiredEditLocksCommandHandler {
	if ttl <= 0 {
		ttl = editlock.DefaultTTL
	}
	return PurgeExpiredEditLocksCommandHandler{
		locks: locks,
		ttl:   ttl,
		clock: clock,
	}
}

// Handle returns the number of locks removed.
func (h PurgeExpiredEditLocksCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeExpiredEditLocksCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.locks.DeleteAllAcquiredBefore(ctx, editlock.Cutoff(h.clock(), h.ttl))
}
