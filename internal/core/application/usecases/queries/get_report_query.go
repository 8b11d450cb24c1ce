package queries

import (
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrGetReportQueryIsNotConstructed = errors.New(
	"GetReportQuery must be created via NewGetReportQuery constructor",
)

// GetReportQuery retrieves the analytics report for a restaurant over a
// half-open time window [start, end). Growth metrics compare against the
// window of equal length immediately before start.
type GetReportQuery struct {
	restaurantID kernel.UUID
	start        time.Time
	end          time.Time

	guard guard.ConstructorGuard
}

// NewGetReportQuery creates a report query for the given window.
// Requires start to be strictly before end.
func NewGetReportQuery(restaurantID kernel.UUID, start, end time.Time) (GetReportQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetReportQuery{}, err
	}

	if !start.Before(end) {
		return GetReportQuery{}, errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("start %s is not before end %s", start, end))
	}

	return GetReportQuery{
		restaurantID: restaurantID,
		start:        start,
		end:          end,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReportQuery) Validate() error {
	return q.guard.Validate(ErrGetReportQueryIsNotConstructed)
}

// RestaurantID returns the restaurant the report is for.
func (q GetReportQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Start returns the inclusive window start.
func (q GetReportQuery) Start() time.Time {
	return q.start
}

// End returns the exclusive window end.
func (q GetReportQuery) End() time.Time {
	return q.end
}
