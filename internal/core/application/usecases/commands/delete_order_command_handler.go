package commands

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/domain/model/kernel"
)

// DeleteOrderCommandHandler is the cascade deletion coordinator.
//
// Steps, in order, all inside one transaction:
//  1. delete the invoice items
//  2. delete the cost items
//  3. delete the chat records
//  4. delete the order row
//
// Every step is logged. Any failure rolls back all of them. No edit lock is
// taken; a reconciliation racing with the delete fails with NotFound once the
// delete has committed.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewDeleteOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "DeleteOrderCommandHandler"),
	}
}

// Handle deletes the order. A missing order surfaces as an ObjectNotFoundError
// before anything is deleted.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orderID := cmd.OrderID()
	log := h.logger.With("order_id", orderID.Int64())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if _, err := orderRepo.Get(ctx, orderID); err != nil {
		return err
	}

	itemRepo := uow.LineItemRepository()
	for _, kind := range kernel.ItemKinds() {
		step := "delete " + kind.String() + " items"
		rows, err := itemRepo.DeleteWhere(ctx, orderID, kind, nil)
		if err != nil {
			log.ErrorContext(ctx, "cascade step failed", "step", step, "error", err)
			return err
		}
		log.InfoContext(ctx, "cascade step done", "step", step, "rows", rows)
	}

	rows, err := uow.ChatRecordRepository().DeleteByOrder(ctx, orderID)
	if err != nil {
		log.ErrorContext(ctx, "cascade step failed", "step", "delete chat records", "error", err)
		return err
	}
	log.InfoContext(ctx, "cascade step done", "step", "delete chat records", "rows", rows)

	if err = orderRepo.Delete(ctx, orderID); err != nil {
		log.ErrorContext(ctx, "cascade step failed", "step", "delete order", "error", err)
		return err
	}
	log.InfoContext(ctx, "cascade step done", "step", "delete order", "rows", 1)

	if err = uow.Commit(ctx); err != nil {
		log.ErrorContext(ctx, "cascade commit failed", "error", err)
		return err
	}

	log.InfoContext(ctx, "order deleted")
	return nil
}
