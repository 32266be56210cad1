package commands

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// EditSession runs work while holding an order's edit lock.
//
// When the order already carries a fresh lock of the same holder, for example
// one taken explicitly before the edit, fn runs under that lock and the session
// leaves it in place. A lock the session took itself is released on every exit
// path, including a failing or panicking fn. The release uses a context
// detached from ctx's cancellation so that a cancelled request still frees its
// lock.
//
// Example:
//
//	session := NewEditSession(acquireHandler, releaseHandler)
//	err := session.Run(ctx, orderID, userID, func(ctx context.Context) error {
//	    _, err := reconcileHandler.Handle(ctx, cmd)
//	    return err
//	})
type EditSession struct {
	acquire AcquireEditLockCommandHandler
	release ReleaseEditLockCommandHandler
}

func NewEditSession(acquire AcquireEditLockCommandHandler, release ReleaseEditLockCommandHandler) EditSession {
	return EditSession{
		acquire: acquire,
		release: release,
	}
}

// Run acquires the lock, runs fn and releases the lock. fn is not called when
// another holder has the lock. Errors from fn and from the release are joined.
func (s EditSession) Run(
	ctx context.Context,
	orderID kernel.ID,
	holderID string,
	fn func(ctx context.Context) error,
) (err error) {
	acquireCmd, err := NewAcquireEditLockCommand(orderID, holderID)
	if err != nil {
		return err
	}
	releaseCmd, err := NewReleaseEditLockCommand(orderID)
	if err != nil {
		return err
	}

	if _, err = s.acquire.Handle(ctx, acquireCmd); err != nil {
		var held *errs.LockHeldError
		if errors.As(err, &held) && held.HolderID == acquireCmd.HolderID() {
			return fn(ctx)
		}
		return err
	}

	defer func() {
		releaseErr := s.release.Handle(context.WithoutCancel(ctx), releaseCmd)
		if releaseErr != nil {
			err = errors.Join(err, fmt.Errorf("release edit lock: %w", releaseErr))
		}
	}()

	return fn(ctx)
}
