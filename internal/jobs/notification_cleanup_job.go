package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// notificationRetention is how long dispatched outbox rows are kept before
// the cleanup job removes them.
const notificationRetention = 24 * time.Hour

// NotificationPruner removes old notification outbox rows.
type NotificationPruner interface {
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// NotificationCleanupJob trims the notification outbox so it does not grow
// without bound. Runs hourly and removes rows older than the retention
// window.
type NotificationCleanupJob struct {
	pruner NotificationPruner
	cron   *cron.Cron
	logger *slog.Logger
}

// NewNotificationCleanupJob creates a job that prunes the notification
// outbox every hour.
func NewNotificationCleanupJob(pruner NotificationPruner, logger *slog.Logger) *NotificationCleanupJob {
	return &NotificationCleanupJob{
		pruner: pruner,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "notification_cleanup_job"),
	}
}

// Start begins the cleanup job.
func (j *NotificationCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().Add(-notificationRetention)

		removed, err := j.pruner.PruneOlderThan(ctx, cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification outbox cleanup failed", "error", err)
			return
		}
		if removed > 0 {
			j.logger.InfoContext(ctx, "Notification outbox pruned", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification cleanup job started (running hourly)")
	return nil
}

// Stop stops the cleanup job.
func (j *NotificationCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification cleanup job stopped")
}
