package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand moves an order to a new progress state.
// Any of the seven states is a valid target from any state.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, int(order.Invoiced))
//	result, err := handler.Handle(ctx, cmd)
//	fmt.Println(result.Previous, "->", result.Current, result.Document.Title)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.ID
	progress order.Progress

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand validates the order identifier and that progress is in 1..7.
func NewTransitionOrderCommand(orderID kernel.ID, progress int) (TransitionOrderCommand, error) {
	command := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setProgress(progress),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return command, nil
}

func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c TransitionOrderCommand) Progress() order.Progress {
	return c.progress
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setProgress(value int) error {
	progress, err := order.NewProgress(value)
	if err != nil {
		return err
	}

	c.progress = progress
	return nil
}
