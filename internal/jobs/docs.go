// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order lifecycle.
//
// # Available Jobs
//
// 1. OrderProcessingJob - Periodically sweeps all pending orders into processing
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the required handler and schedule
//	jobManager := jobs.NewJobManager(processPendingOrdersHandler, "0 */5 * * * *", logger)
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
// The sweep schedule is a six-field cron expression with a seconds column,
// configured via SWEEP_CRON. The default "0 */5 * * * *" runs the sweep
// every five minutes.
//
// # Error Handling
//
// A failing sweep tick is logged and swallowed; the schedule keeps running
// and the next tick processes whatever remained pending. The sweep itself
// is a single atomic bulk update, so a concurrent cancellation can never be
// overwritten by a stale tick.
package jobs
