package commands

import (
	"context"
)

// UpdateOrderDetailsCommandHandler applies project name and delivery date changes.
type UpdateOrderDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderDetailsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the changes and saves it.
// A missing order surfaces as an ObjectNotFoundError.
func (h UpdateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDetailsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if name, ok := cmd.ProjectName(); ok {
		aggregate.RenameProject(name)
	}

	desired := aggregate.DesiredDeliveryDate()
	if date, ok := cmd.DesiredDeliveryDate(); ok {
		desired = date
	}
	expected := aggregate.ExpectedDeliveryDate()
	if date, ok := cmd.ExpectedDeliveryDate(); ok {
		expected = date
	}
	aggregate.ScheduleDelivery(desired, expected)

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
