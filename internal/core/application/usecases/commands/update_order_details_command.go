package commands

import (
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
)

// DetailsChange is one field change applied by UpdateOrderDetailsCommand.
type DetailsChange func(c *UpdateOrderDetailsCommand)

// ChangeProjectName replaces the project name.
func ChangeProjectName(name string) DetailsChange {
	return func(c *UpdateOrderDetailsCommand) {
		name = strings.TrimSpace(name)
		c.projectName = &name
	}
}

// ChangeDesiredDeliveryDate sets the desired delivery date; nil clears it.
func ChangeDesiredDeliveryDate(date *time.Time) DetailsChange {
	return func(c *UpdateOrderDetailsCommand) {
		c.desiredDeliveryDate = copyDate(date)
		c.desiredSet = true
	}
}

// ChangeExpectedDeliveryDate sets the expected delivery date; nil clears it.
func ChangeExpectedDeliveryDate(date *time.Time) DetailsChange {
	return func(c *UpdateOrderDetailsCommand) {
		c.expectedDeliveryDate = copyDate(date)
		c.expectedSet = true
	}
}

// UpdateOrderDetailsCommand changes the freely mutable fields of an order.
// Fields without a change keep their stored value. Progress is not one of them.
//
// Example:
//
//	cmd, err := NewUpdateOrderDetailsCommand(orderID,
//	    ChangeProjectName("Autumn catalogue"),
//	    ChangeExpectedDeliveryDate(nil),
//	)
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.ID
	projectName          *string
	desiredDeliveryDate  *time.Time
	desiredSet           bool
	expectedDeliveryDate *time.Time
	expectedSet          bool

	guard guard.ConstructorGuard
}

func NewUpdateOrderDetailsCommand(orderID kernel.ID, changes ...DetailsChange) (UpdateOrderDetailsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	command := UpdateOrderDetailsCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}
	for _, change := range changes {
		change(&command)
	}
	if command.projectName != nil {
		if err := kernel.CheckLength("project name", *command.projectName, kernel.MaxNameLength); err != nil {
			return UpdateOrderDetailsCommand{}, err
		}
	}

	return command, nil
}

func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

func (c UpdateOrderDetailsCommand) OrderID() kernel.ID {
	return c.orderID
}

// ProjectName returns the new project name and whether it changes.
func (c UpdateOrderDetailsCommand) ProjectName() (string, bool) {
	if c.projectName == nil {
		return "", false
	}
	return *c.projectName, true
}

// DesiredDeliveryDate returns the new desired date and whether it changes.
func (c UpdateOrderDetailsCommand) DesiredDeliveryDate() (*time.Time, bool) {
	return copyDate(c.desiredDeliveryDate), c.desiredSet
}

// ExpectedDeliveryDate returns the new expected date and whether it changes.
func (c UpdateOrderDetailsCommand) ExpectedDeliveryDate() (*time.Time, bool) {
	return copyDate(c.expectedDeliveryDate), c.expectedSet
}

func copyDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
