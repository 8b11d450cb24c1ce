// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"tableside/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest unit of work it needs, so a command that
// only touches orders never sees the menu or table repositories.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// TableRepoFactory provides access to the table repository within a transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// OrderUoW manages transactions for order-only operations, such as item
	// status updates. The whole read-derive-write sequence runs inside one
	// transaction so concurrent updates to the same order serialize cleanly.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MenuUoW manages transactions for menu-only operations.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// TableUoW manages transactions for table-only operations.
	TableUoW interface {
		TxManager
		TableRepoFactory
	}

	// TableUoWFactory creates new table unit of work instances.
	TableUoWFactory interface {
		Create() TableUoW
	}

	// AddItemsUoW manages transactions for commands that read the menu and
	// modify an order aggregate.
	AddItemsUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
	}

	// AddItemsUoWFactory creates new add-items unit of work instances.
	AddItemsUoWFactory interface {
		Create() AddItemsUoW
	}

	// PlaceOrderUoW manages transactions for order placement, which validates
	// the table, snapshots menu items and creates the order aggregate.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tableRepo := uow.TableRepository()
	//   menuRepo := uow.MenuRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
		TableRepoFactory
	}

	// PlaceOrderUoWFactory creates new place-order unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}
)
