// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. PendingBroadcastJob - Runs every 30 seconds to re-announce unclaimed deliveries to partners
// 2. NotificationCleanupJob - Runs hourly to prune old rows from the notification outbox
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(broadcastHandler, notifier, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The broadcast job ignores the expected empty-queue case (ErrNoPendingDeliveries)
// - The cleanup job logs failures and retries on the next tick
// - Failed job starts will stop any already running jobs
package jobs
