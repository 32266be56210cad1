package commands

import (
	"errors"
	"slices"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/lineitem"
	"orderdesk/internal/pkg/guard"
)

var ErrReconcileItemsCommandIsNotConstructed = errors.New(
	"ReconcileItemsCommand must be created via NewReconcileItemsCommand constructor",
)

// ReconcileItemsCommand replaces one collection of an order with a submitted list.
// The list order is significant: it becomes the stored sort order.
//
// Example:
//
//	cmd, err := NewReconcileItemsCommand(orderID, kernel.KindInvoice, []lineitem.Submission{
//	    {ID: 12, Fields: lineitem.Fields{ProductName: "Flyer", UnitPrice: price, Quantity: qty}},
//	    {Fields: lineitem.Fields{ProductName: "Poster"}},
//	})
type ReconcileItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	kind    kernel.ItemKind
	items   []lineitem.Submission

	guard guard.ConstructorGuard
}

// NewReconcileItemsCommand validates the target collection. Item contents are
// not validated here: blank entries are skipped by reconciliation, not rejected.
func NewReconcileItemsCommand(
	orderID kernel.ID,
	kind kernel.ItemKind,
	items []lineitem.Submission,
) (ReconcileItemsCommand, error) {
	if err := errors.Join(orderID.Validate(), kind.Validate()); err != nil {
		return ReconcileItemsCommand{}, err
	}

	return ReconcileItemsCommand{
		orderID: orderID,
		kind:    kind,
		items:   slices.Clone(items),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcileItemsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileItemsCommandIsNotConstructed)
}

func (c ReconcileItemsCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c ReconcileItemsCommand) Kind() kernel.ItemKind {
	return c.kind
}

func (c ReconcileItemsCommand) Items() []lineitem.Submission {
	return slices.Clone(c.items)
}
