package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command,
// isolating concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
//
// Commands that read, derive and write order state (add-items, item-status
// updates) run the whole sequence inside one unit of work, so the derivation
// always sees the item set it writes against. Client code manages the
// transaction lifecycle explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// MenuRepository returns a MenuRepository bound to the current
	// transaction.
	MenuRepository() MenuRepository

	// TableRepository returns a TableRepository bound to the current
	// transaction.
	TableRepository() TableRepository
}
