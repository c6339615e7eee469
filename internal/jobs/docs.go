// Package jobs provides scheduled background tasks for the booking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. ReferenceRefreshJob - Runs hourly to reload the cached reference data
// (countries, cities, currencies) from the database
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the caches that need refreshing
//	jobManager := jobs.NewJobManager(logger, countries, cities, currencies)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
package jobs
