// Package jobs provides scheduled background tasks for the dispatch system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and are managed
// through JobManager which provides a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(pendingHandler, assignBestHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// AssignmentJob runs every second ("* * * * * *" with seconds enabled) and
// sweeps the pending pool, assigning the best available agent to each
// delivery. An empty pool and an exhausted agent pool are normal outcomes,
// not errors; only unexpected failures are logged.
package jobs
