// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery lifecycle service.
//
// # Available Jobs
//
// 1. PendingBacklogJob - Runs every minute to report pending deliveries that have no driver yet
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(countPendingHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The backlog job uses the cron expression "0 * * * * *" which means it runs
// at the start of every minute. The backlog is an operational signal, not a
// real-time feed, so a minute of staleness is acceptable.
//
// # Error Handling
//
// - The backlog job logs query failures and keeps running
// - Failed job starts will stop any already running jobs
package jobs
