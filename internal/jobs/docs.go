// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for restaurant service.
//
// # Available Jobs
//
// 1. OverdueOrdersJob - Runs every minute and logs open orders that have been
// waiting longer than the configured threshold, so kitchen staff notice
// stalled tickets.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueOrdersHandler, threshold, logger)
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
// The overdue order sweep uses the cron expression "0 * * * * *", once per
// minute on the minute. Order age is measured in minutes, so a tighter
// schedule would add noise without adding information.
package jobs
