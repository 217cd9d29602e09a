package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingBroadcastJob    *PendingBroadcastJob
	notificationCleanupJob *NotificationCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	broadcastHandler commands.BroadcastPendingDeliveriesCommandHandler,
	pruner NotificationPruner,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingBroadcastJob:    NewPendingBroadcastJob(broadcastHandler, logger),
		notificationCleanupJob: NewNotificationCleanupJob(pruner, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingBroadcastJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending broadcast job: %w", err)
	}

	if err := jm.notificationCleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pendingBroadcastJob.Stop()
		return fmt.Errorf("failed to start notification cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationCleanupJob.Stop()
	jm.pendingBroadcastJob.Stop()
}
