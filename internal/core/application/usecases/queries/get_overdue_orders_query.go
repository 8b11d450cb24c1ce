package queries

import (
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery retrieves open orders, across all restaurants, that
// have been waiting longer than the given age. Feeds the periodic overdue
// order monitor.
type GetOverdueOrdersQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates an overdue orders query.
// Requires a positive age threshold.
func NewGetOverdueOrdersQuery(olderThan time.Duration) (GetOverdueOrdersQuery, error) {
	if olderThan <= 0 {
		return GetOverdueOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("olderThan",
			fmt.Errorf("%s is not a positive duration", olderThan))
	}

	return GetOverdueOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// OlderThan returns the age threshold.
func (q GetOverdueOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetOverdueOrdersQueryResponse represents one overdue order.
type GetOverdueOrdersQueryResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	TableID      kernel.UUID
	Status       order.Status
	AgeMinutes   int
}
