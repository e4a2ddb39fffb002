// Package jobs provides scheduled background tasks for the order marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. AutoTransitionJob - Fires at 20:00 daily to run the cutoff engine over
// every order whose service date arrived: accepted work is force-completed,
// unaccepted work is force-cancelled.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(autoTransitionHandler, logger)
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
// The cutoff uses the cron expression "0 0 20 * * *": once a day at 20:00
// in the process's local time zone. The business day of a run is the
// calendar date at that moment.
//
// # Error Handling
//
// - A run that cannot select its candidates is logged and retried the next day
// - Per-order failures are summarized in the run's log line, never retried mid-run
// - Failed job starts will stop any already running jobs
package jobs
