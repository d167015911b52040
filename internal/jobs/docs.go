// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order boards.
//
// # Available Jobs
//
// 1. BoardRefreshJob - Periodically reloads the board snapshot so the
// boards pick up orders created or changed outside this process
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the lifecycle coordinator
//	jobManager := jobs.NewJobManager(orderCoordinator, logger)
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
// The refresh job uses the cron expression "*/30 * * * * *" and runs every
// thirty seconds. Writes made through this process already refresh the
// snapshot themselves; the job only covers out-of-band changes.
//
// # Error Handling
//
// A failed refresh is logged and the prior snapshot stays visible until the
// next successful run.
package jobs
