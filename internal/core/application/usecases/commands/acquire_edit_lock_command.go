package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrAcquireEditLockCommandIsNotConstructed = errors.New(
	"AcquireEditLockCommand must be created via NewAcquireEditLockCommand constructor",
)

// AcquireEditLockCommand asks for exclusive editing of an order on behalf of a holder.
// The holder is an authenticated user identity supplied by the caller.
type AcquireEditLockCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.ID
	holderID string

	guard guard.ConstructorGuard
}

func NewAcquireEditLockCommand(orderID kernel.ID, holderID string) (AcquireEditLockCommand, error) {
	command := AcquireEditLockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setHolderID(holderID),
	); err != nil {
		return AcquireEditLockCommand{}, err
	}

	return command, nil
}

func (c AcquireEditLockCommand) Validate() error {
	return c.guard.Validate(ErrAcquireEditLockCommandIsNotConstructed)
}

func (c AcquireEditLockCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c AcquireEditLockCommand) HolderID() string {
	return c.holderID
}

func (c *AcquireEditLockCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcquireEditLockCommand) setHolderID(holderID string) error {
	holderID = strings.TrimSpace(holderID)
	if holderID == "" {
		return errs.NewValueIsRequiredError("holder id")
	}

	c.holderID = holderID
	return nil
}
