package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingBacklogJob periodically reports the dispatch backlog: pending
// deliveries that no driver has been assigned to yet. Runs every minute
// so operators can watch the backlog without polling the API.
type PendingBacklogJob struct {
	handler queries.CountPendingDeliveriesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingBacklogJob creates a new job for backlog monitoring.
// Uses CountPendingDeliveriesQueryHandler to measure the backlog every minute.
func NewPendingBacklogJob(handler queries.CountPendingDeliveriesQueryHandler, logger *slog.Logger) *PendingBacklogJob {
	return &PendingBacklogJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_backlog_job"),
	}
}

// Start begins the backlog monitoring job to run every minute.
func (j *PendingBacklogJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewCountPendingDeliveriesQuery()

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending backlog job failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.InfoContext(ctx, "Deliveries awaiting a driver", "count", count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending backlog job started (running every minute)")
	return nil
}

// Stop stops the backlog monitoring job.
func (j *PendingBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending backlog job stopped")
}
