// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// EditLockSweeperJob deletes edit locks older than the TTL. Acquisition
// already replaces expired locks on its own, so the sweeper only keeps the
// lock table small; nothing depends on it running.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(purgeHandler, cfg.LockSweepSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron specs with a leading seconds field; the default
// "*/30 * * * * *" runs the sweeper every 30 seconds.
package jobs
