package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/services"
)

// ReconcileResult summarizes one reconciliation.
// Kept lists the identifiers of the collection after the call, in sort order.
type ReconcileResult struct {
	Kept     []kernel.ID
	Inserted int
	Updated  int
	Deleted  int
	Skipped  int
}

// ReconcileItemsCommandHandler makes a stored collection match a submission
// exactly, inside one transaction.
//
// The handler does not take the edit lock. Callers that may race with other
// editors run it inside an EditSession.
type ReconcileItemsCommandHandler struct {
	uowFactory ItemsUoWFactory
	planner    services.ReconciliationPlanner
	clock      kernel.Clock
}

func NewReconcileItemsCommandHandler(
	uowFactory ItemsUoWFactory,
	planner services.ReconciliationPlanner,
	clock kernel.Clock,
) ReconcileItemsCommandHandler {
	return ReconcileItemsCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		clock:      clock,
	}
}

// Handle runs the reconciliation:
//  1. plan sort orders, skip blank entries
//  2. check the order exists
//  3. update rows that carry an identifier, insert the rest
//  4. delete every row of the collection that was not kept
//  5. commit
//
// A submitted identifier that does not match a row of this collection is
// inserted as a new row. Any failure rolls back the whole call.
func (h ReconcileItemsCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileItemsCommand,
) (ReconcileResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcileResult{}, err
	}

	plan, err := h.planner.Plan(cmd.OrderID(), cmd.Kind(), cmd.Items(), h.clock())
	if err != nil {
		return ReconcileResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ReconcileResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return ReconcileResult{}, err
	}

	itemRepo := uow.LineItemRepository()
	result := ReconcileResult{
		Kept:    make([]kernel.ID, 0, len(plan.Items)),
		Skipped: plan.Skipped,
	}

	for _, item := range plan.Items {
		var id kernel.ID
		if id, err = itemRepo.Upsert(ctx, item); err != nil {
			return ReconcileResult{}, err
		}

		if !item.IsNew() && id.IsEqual(item.ID()) {
			result.Updated++
		} else {
			result.Inserted++
		}
		result.Kept = append(result.Kept, id)
	}

	deleted, err := itemRepo.DeleteWhere(ctx, cmd.OrderID(), cmd.Kind(), result.Kept)
	if err != nil {
		return ReconcileResult{}, err
	}
	result.Deleted = int(deleted)

	if err = uow.Commit(ctx); err != nil {
		return ReconcileResult{}, err
	}

	return result, nil
}
