// Package jobs runs the background work of the dispatch service on
// github.com/robfig/cron/v3 schedules.
//
// NotificationDispatchJob drains notifications stored as pending, which is how
// customer messages emitted while resolving a delivery exception reach email and
// SMS without holding the exception request open.
//
// JobManager starts jobs in order and stops them in reverse; when one job fails to
// start, the ones already running are stopped:
//
//	jm := jobs.NewJobManager(logger,
//		jobs.NewNotificationDispatchJob(handler, cfg.NotificationDispatchSchedule, 0, logger))
//	if err := jm.StartAll(); err != nil {
//		return err
//	}
//	defer jm.StopAll()
//
// Schedules use the six-field cron syntax with seconds, or descriptors such as
// "@every 30s". A tick that fires while the previous run is still busy is skipped.
package jobs
