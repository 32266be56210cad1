package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// TransitionResult reports a completed state change together with the
// document the new state calls for, rendered with the order's project name.
type TransitionResult struct {
	OrderID  kernel.ID
	Previous order.Progress
	Current  order.Progress
	Document order.DocumentTemplate
}

// TransitionOrderCommandHandler applies progress transitions.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the new state and returns the previous and new states.
// A missing order surfaces as an ObjectNotFoundError.
func (h TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	previous, err := aggregate.TransitionTo(cmd.Progress())
	if err != nil {
		return TransitionResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{
		OrderID:  aggregate.ID(),
		Previous: previous,
		Current:  aggregate.Progress(),
		Document: aggregate.Document(),
	}, nil
}
