package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PendingBroadcastJob periodically re-announces unclaimed deliveries to
// available partners. The creation-time broadcast is best effort, this job
// is the retry path for deliveries nobody has accepted yet.
type PendingBroadcastJob struct {
	handler commands.BroadcastPendingDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingBroadcastJob creates a job that re-broadcasts pending deliveries
// every 30 seconds.
func NewPendingBroadcastJob(
	handler commands.BroadcastPendingDeliveriesCommandHandler,
	logger *slog.Logger,
) *PendingBroadcastJob {
	return &PendingBroadcastJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_broadcast_job"),
	}
}

// Start begins the re-broadcast job.
func (j *PendingBroadcastJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewBroadcastPendingDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue is the normal case, not a failure
			if !errors.Is(err, commands.ErrNoPendingDeliveries) {
				j.logger.ErrorContext(ctx, "Pending delivery re-broadcast failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending delivery re-broadcast job started (running every 30 seconds)")
	return nil
}

// Stop stops the re-broadcast job.
func (j *PendingBroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending delivery re-broadcast job stopped")
}
