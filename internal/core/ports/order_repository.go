// Package ports defines the contracts between the order core and its storage.
// Adapters implement them; command and query handlers depend only on these.
package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add inserts a new order and assigns it the identifier chosen by storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists project name, delivery dates and progress of an existing order.
	// Returns an ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns an ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Delete removes the order row only; dependents are the caller's concern.
	// Returns an ObjectNotFoundError when nothing was deleted.
	Delete(ctx context.Context, id kernel.ID) error
}
