// Package jobs provides scheduled background tasks for the rental system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueLoanJob - Runs every minute to flag active rentals whose
// scheduled end date has passed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(markOverdueHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
