package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrPurgeExpiredEditLocksCommandIsNotConstructed = errors.New(
	"PurgeExpiredEditLocksCommand must be created via NewPurgeExpiredEditLocksCommand constructor",
)

// PurgeExpiredEditLocksCommand removes every edit lock older than the TTL.
// Acquisition already replaces expired locks, so purging only keeps the store small.
type PurgeExpiredEditLocksCommand struct {
	guard guard.ConstructorGuard
}

func NewPurgeExpiredEditLocksCommand() PurgeExpiredEditLocksCommand {
	return PurgeExpiredEditLocksCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c PurgeExpiredEditLocksCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredEditLocksCommandIsNotConstructed)
}
