package queries

import (
	"context"

	"tableside/internal/core/domain/services"
	"tableside/internal/core/ports"
)

// GetReportQueryHandler produces the analytics report for a restaurant.
// Loads the orders of the requested window and of the preceding window of
// equal length, then delegates all metric computation to the report
// aggregator.
type GetReportQueryHandler struct {
	orders     ports.OrderRepository
	aggregator services.ReportAggregator
}

// NewGetReportQueryHandler creates a handler for report queries. The
// repository supplies full aggregates because the aggregator walks every
// item for revenue, category and prep-time metrics.
func NewGetReportQueryHandler(orders ports.OrderRepository) GetReportQueryHandler {
	return GetReportQueryHandler{orders: orders, aggregator: services.NewReportAggregator()}
}

// Handle executes the report query.
func (h GetReportQueryHandler) Handle(
	ctx context.Context,
	query GetReportQuery,
) (services.Report, error) {
	if err := query.Validate(); err != nil {
		return services.Report{}, err
	}

	period := services.ReportPeriod{Start: query.Start(), End: query.End()}
	previousPeriod := period.Previous()

	current, err := h.orders.GetByRestaurantBetween(ctx, query.RestaurantID(), period.Start, period.End)
	if err != nil {
		return services.Report{}, err
	}

	previous, err := h.orders.GetByRestaurantBetween(ctx, query.RestaurantID(), previousPeriod.Start, previousPeriod.End)
	if err != nil {
		return services.Report{}, err
	}

	return h.aggregator.Aggregate(period, current, previous), nil
}
