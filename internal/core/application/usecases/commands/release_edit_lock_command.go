package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrReleaseEditLockCommandIsNotConstructed = errors.New(
	"ReleaseEditLockCommand must be created via NewReleaseEditLockCommand constructor",
)

// ReleaseEditLockCommand removes an order's edit lock, whoever holds it.
type ReleaseEditLockCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewReleaseEditLockCommand(orderID kernel.ID) (ReleaseEditLockCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReleaseEditLockCommand{}, err
	}

	return ReleaseEditLockCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseEditLockCommand) Validate() error {
	return c.guard.Validate(ErrReleaseEditLockCommandIsNotConstructed)
}

func (c ReleaseEditLockCommand) OrderID() kernel.ID {
	return c.orderID
}
