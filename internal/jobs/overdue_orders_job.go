package jobs

import (
	"context"
	"log/slog"
	"time"

	"tableside/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersJob periodically scans for open orders older than the
// configured threshold and logs them for kitchen staff attention.
type OverdueOrdersJob struct {
	handler   queries.GetOverdueOrdersQueryHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOverdueOrdersJob creates the overdue order sweep. The threshold is how
// long an order may stay open before it is reported.
func NewOverdueOrdersJob(
	handler queries.GetOverdueOrdersQueryHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "overdue_orders_job"),
	}
}

// Start begins the sweep, running once per minute.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOverdueOrdersQuery(j.olderThan)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue orders job misconfigured", "error", err)
			return
		}

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
			return
		}

		for _, item := range overdue {
			j.logger.WarnContext(ctx, "Order is overdue",
				"order_id", item.ID.String(),
				"restaurant_id", item.RestaurantID.String(),
				"table_id", item.TableID.String(),
				"status", item.Status.String(),
				"age_minutes", item.AgeMinutes,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}
