// Package jobs provides scheduled background tasks for the ordering subsystem.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. StaleOrderWatchJob - Runs every minute to report placed orders the
// restaurant has not reacted to within the configured threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the database connection
//	jobManager := jobs.NewJobManager(db, 15*time.Minute, logger)
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
// - The watch job logs query errors and keeps its schedule
// - Failed job starts are reported to the caller
package jobs
