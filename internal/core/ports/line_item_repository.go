package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/lineitem"
)

// LineItemRepository is the line-item store. Every operation is scoped to one
// (order, kind) collection and carries no business rules.
type LineItemRepository interface {
	// Get returns the collection ordered by sort order, then identifier.
	Get(ctx context.Context, orderID kernel.ID, kind kernel.ItemKind) ([]*lineitem.LineItem, error)

	// Upsert writes one row and returns its identifier.
	//
	// A row with an identifier updates the stored row with that identifier, but only
	// when it belongs to the same order and kind. When no such row exists a new row
	// is inserted and its new identifier is returned instead.
	Upsert(ctx context.Context, item *lineitem.LineItem) (kernel.ID, error)

	// DeleteWhere removes every row of the collection whose identifier is not in keep,
	// and returns how many rows were removed. An empty keep removes the whole collection.
	DeleteWhere(ctx context.Context, orderID kernel.ID, kind kernel.ItemKind, keep []kernel.ID) (int64, error)
}
