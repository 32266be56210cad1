package commands

import (
	"context"
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/editlock"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// AcquireEditLockCommandHandler hands out per-order edit locks.
//
// Acquisition is a conditional create. When the order is already locked and the
// lock is older than the TTL, the stale lock is removed only if it is still the
// same stale lock, and the create is retried once. A fresh lock always yields
// a LockHeldError, also for the holder that owns it.
//
// Example:
//
//	handler := NewAcquireEditLockCommandHandler(lockRepo, editlock.DefaultTTL, kernel.SystemClock)
//	lock, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrLockHeld) {
//	    // someone else is editing, try again later
//	}
type AcquireEditLockCommandHandler struct {
	locks ports.EditLockRepository
	ttl   time.Duration
	clock kernel.Clock
}

func NewAcquireEditLockCommandHandler(
	locks ports.EditLockRepository,
	ttl time.Duration,
	clock kernel.Clock,
) AcquireEditLockCommandHandler {
	if ttl <= 0 {
		ttl = editlock.DefaultTTL
	}
	return AcquireEditLockCommandHandler{
		locks: locks,
		ttl:   ttl,
		clock: clock,
	}
}

func (h AcquireEditLockCommandHandler) TTL() time.Duration {
	return h.ttl
}

// Handle returns the stored lock on success.
func (h AcquireEditLockCommandHandler) Handle(ctx context.Context, cmd AcquireEditLockCommand) (*editlock.Lock, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock()
	lock, err := editlock.NewLock(cmd.OrderID(), cmd.HolderID(), now)
	if err != nil {
		return nil, err
	}

	created, err := h.locks.TryCreate(ctx, lock)
	if err != nil {
		return nil, err
	}
	if created {
		return lock, nil
	}

	current, err := h.locks.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		// Released between the create and the read.
		return h.retry(ctx, lock, nil)
	}
	if err != nil {
		return nil, err
	}
	if !current.IsExpired(now, h.ttl) {
		return nil, current.HeldError()
	}

	if _, err = h.locks.DeleteAcquiredBefore(ctx, cmd.OrderID(), editlock.Cutoff(now, h.ttl)); err != nil {
		return nil, err
	}

	return h.retry(ctx, lock, current)
}

func (h AcquireEditLockCommandHandler) retry(
	ctx context.Context,
	lock *editlock.Lock,
	previous *editlock.Lock,
) (*editlock.Lock, error) {
	created, err := h.locks.TryCreate(ctx, lock)
	if err != nil {
		return nil, err
	}
	if created {
		return lock, nil
	}

	winner, err := h.locks.Get(ctx, lock.OrderID())
	if err == nil {
		return nil, winner.HeldError()
	}
	if previous != nil {
		return nil, previous.HeldError()
	}
	return nil, errs.NewLockHeldError(lock.OrderID().Int64(), "", time.Time{})
}
