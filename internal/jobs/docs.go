// Package jobs provides scheduled background tasks for the batching system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the batch planning service.
//
// # Available Jobs
//
// 1. DraftExpiryJob - Runs hourly to mark drafts abandoned past the retention window as Expired
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireDraftsHandler, retention, logger)
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
// The expiry job uses the "@hourly" cron expression. Drafts only leave the
// Draft status through an explicit commit or this sweep, so an hourly pass is
// frequent enough.
//
// # Error Handling
//
// - Expiry job failures are logged and retried on the next tick
// - A failed job start stops any already running jobs
package jobs
