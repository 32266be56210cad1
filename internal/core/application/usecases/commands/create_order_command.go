package commands

import (
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new order for a client.
// The customer and contact names are snapshots taken now; they are not kept in
// sync with the client record afterwards.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.Details{
//	    CustomerName: "Acme K.K.",
//	    ContactName:  "Sato",
//	    ProjectName:  "Spring catalogue",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the new order's details.
// CustomerName is required; ClientID, when given, must be a valid identifier.
func NewCreateOrderCommand(details order.Details) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setClientID(details.ClientID),
		command.setCustomerName(details.CustomerName),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	command.details.ContactName = strings.TrimSpace(details.ContactName)
	command.details.ProjectName = strings.TrimSpace(details.ProjectName)
	if err := errors.Join(
		kernel.CheckLength("contact name", command.details.ContactName, kernel.MaxNameLength),
		kernel.CheckLength("project name", command.details.ProjectName, kernel.MaxNameLength),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	command.details.DesiredDeliveryDate = details.DesiredDeliveryDate
	command.details.ExpectedDeliveryDate = details.ExpectedDeliveryDate

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c CreateOrderCommand) CustomerName() string {
	return c.details.CustomerName
}

func (c CreateOrderCommand) ClientID() *kernel.ID {
	return c.details.ClientID
}

func (c CreateOrderCommand) DesiredDeliveryDate() *time.Time {
	return c.details.DesiredDeliveryDate
}

func (c *CreateOrderCommand) setClientID(id *kernel.ID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("client id", err)
	}

	clientID := *id
	c.details.ClientID = &clientID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if err := kernel.CheckLength("customer name", name, kernel.MaxNameLength); err != nil {
		return err
	}

	c.details.CustomerName = name
	return nil
}
