// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every command is built by a validating constructor; every handler opens its own
// unit of work, commits on success and rolls back on every other path.
package commands

import (
	"context"

	"orderdesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LineItemRepoFactory provides access to the line-item store within a transaction.
	LineItemRepoFactory interface {
		LineItemRepository() ports.LineItemRepository
	}

	// ChatRecordRepoFactory provides access to chat records within a transaction.
	ChatRecordRepoFactory interface {
		ChatRecordRepository() ports.ChatRecordRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ItemsUoW manages transactions that rewrite an order's line items.
	// The order repository is used to check that the owning order exists.
	ItemsUoW interface {
		TxManager
		OrderRepoFactory
		LineItemRepoFactory
	}

	// ItemsUoWFactory creates new items unit of work instances.
	ItemsUoWFactory interface {
		Create() ItemsUoW
	}

	// UoW manages transactions across the order and everything it owns.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   items := uow.LineItemRepository()
	//   orders := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		LineItemRepoFactory
		ChatRecordRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-table operations.
	UoWFactory interface {
		Create() UoW
	}
)
