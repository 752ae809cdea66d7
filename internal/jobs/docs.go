// Package jobs holds the scheduled background tasks of the warehouse service,
// built on github.com/robfig/cron/v3.
//
// DailyAnalyticsJob runs once a day (DefaultDailyAnalyticsSchedule, UTC) and
// stores the previous day's heatmap and metrics snapshots for every layout.
// Snapshots are created at most once per layout and day, so a rerun, or a
// second replica firing at the same time, only reports "skipped".
//
//	job := jobs.NewDailyAnalyticsJob(layoutRepo, analyticsHandler, cfg.AnalyticsSchedule, cfg.HeatmapDays, logger)
//	manager := jobs.NewJobManager(job)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// A layout whose run fails is logged with its id and counted as "failed" in
// the warehouse_analytics_layout_runs_total metric; the remaining layouts still run.
package jobs
