package commands

import (
	"context"

	"tableside/internal/core/domain/model/table"
)

// CreateTableCommandHandler handles dining table registration. The
// repository enforces label uniqueness per restaurant and surfaces a
// duplicate as a conflict error.
type CreateTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewCreateTableCommandHandler creates a handler for table registration.
// Requires a TableUoWFactory for transactional persistence.
func NewCreateTableCommandHandler(uowFactory TableUoWFactory) CreateTableCommandHandler {
	return CreateTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table registration command and returns the created
// aggregate.
func (h *CreateTableCommandHandler) Handle(ctx context.Context, cmd CreateTableCommand) (*table.Table, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	diningTable, err := table.NewTable(cmd.TableID(), cmd.RestaurantID(), cmd.Label())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TableRepository().Add(ctx, diningTable); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return diningTable, nil
}
