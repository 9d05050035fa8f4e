// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the order workflow needs.
//
// # Available Jobs
//
// 1. StaleDraftSweeperJob - Runs hourly to cancel draft orders abandoned for more than the configured age
// 2. LowStockAlertJob - Runs every five minutes to log products at or below their minimum stock
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, lowStockHandler, staleDraftAge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log failures and keep their schedule; a failed run is retried
// on the next tick. A failed job start stops any already running jobs.
package jobs
