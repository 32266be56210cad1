package commands

import (
	"context"

	"orderdesk/internal/core/ports"
)

// ReleaseEditLockCommandHandler unconditionally removes edit locks.
// Releasing a lock that is already gone or expired succeeds.
type ReleaseEditLockCommandHandler struct {
	locks ports.EditLockRepository
}

func NewReleaseEditLockCommandHandler(locks ports.EditLockRepository) ReleaseEditLockCommandHandler {
	return ReleaseEditLockCommandHandler{locks: locks}
}

func (h ReleaseEditLockCommandHandler) Handle(ctx context.Context, cmd ReleaseEditLockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.locks.Delete(ctx, cmd.OrderID())
}
