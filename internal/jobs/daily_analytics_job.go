package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultDailyAnalyticsSchedule runs shortly after midnight UTC, once the
// previous day is closed.
const DefaultDailyAnalyticsSchedule = "15 0 * * *"

// LayoutSource lists the layouts to summarise. ports.LayoutRepository satisfies it.
type LayoutSource interface {
	GetAll(ctx context.Context) ([]*layout.Layout, error)
}

// DailyAnalyticsHandler is satisfied by commands.GenerateDailyAnalyticsCommandHandler.
type DailyAnalyticsHandler interface {
	Handle(ctx context.Context, command commands.GenerateDailyAnalyticsCommand) (commands.DailyAnalyticsResult, error)
}

// DailyAnalyticsJob generates yesterday's heatmap and metrics snapshots for
// every layout. Each layout runs in its own unit of work; a failing layout is
// logged and counted, and the run moves on to the next one.
type DailyAnalyticsJob struct {
	layouts     LayoutSource
	handler     DailyAnalyticsHandler
	schedule    string
	heatmapDays int
	cron        *cron.Cron
	now         func() time.Time
	logger      *slog.Logger
}

// RunSummary counts layout outcomes of one run.
type RunSummary struct {
	Created int
	Skipped int
	Failed  int
}

// NewDailyAnalyticsJob creates the job. An empty schedule means
// DefaultDailyAnalyticsSchedule and a non-positive heatmapDays means
// queries.DefaultHeatmapDays. Schedules are read in UTC.
//
// Example:
//
//	job := jobs.NewDailyAnalyticsJob(layoutRepo, handler, "", 0, logger)
//	if err := job.Start(); err != nil {
//	    return err
//	}
//	defer job.Stop()
func NewDailyAnalyticsJob(
	layouts LayoutSource,
	handler DailyAnalyticsHandler,
	schedule string,
	heatmapDays int,
	logger *slog.Logger,
) *DailyAnalyticsJob {
	if schedule == "" {
		schedule = DefaultDailyAnalyticsSchedule
	}
	if heatmapDays <= 0 {
		heatmapDays = queries.DefaultHeatmapDays
	}
	logger = logger.With("component", "daily_analytics_job")
	cronLogger := slogCronLogger{logger: logger}
	return &DailyAnalyticsJob{
		layouts:     layouts,
		handler:     handler,
		schedule:    schedule,
		heatmapDays: heatmapDays,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger)),
		),
		now:    time.Now,
		logger: logger,
	}
}

func (j *DailyAnalyticsJob) Name() string { return "daily analytics" }

// Start registers the schedule and starts the cron. Each tick processes the
// UTC day before the tick. A panic inside a tick is logged and does not stop the cron.
func (j *DailyAnalyticsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		day := analytics.Day(j.now()).AddDate(0, 0, -1)
		if _, err := j.RunOnce(ctx, day); err != nil {
			j.logger.ErrorContext(ctx, "Daily analytics run failed", "day", day.Format(time.DateOnly), "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily analytics job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a run in progress to finish.
func (j *DailyAnalyticsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Daily analytics job stopped")
}

// RunOnce generates the snapshots of day for every layout. Only a failure to
// list the layouts is returned; per-layout failures end up in the summary.
func (j *DailyAnalyticsJob) RunOnce(ctx context.Context, day time.Time) (RunSummary, error) {
	var summary RunSummary

	layouts, err := j.layouts.GetAll(ctx)
	if err != nil {
		return summary, fmt.Errorf("list layouts: %w", err)
	}

	for _, l := range layouts {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		outcome := j.runLayout(ctx, l, day)
		metrics.ObserveAnalyticsRun(outcome)
		switch outcome {
		case metrics.OutcomeCreated:
			summary.Created++
		case metrics.OutcomeSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
	}

	j.logger.InfoContext(ctx, "Daily analytics run finished",
		"day", day.Format(time.DateOnly),
		"created", summary.Created,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return summary, nil
}

// runLayout turns a panic in the handler into a failed outcome so the
// remaining layouts still run.
func (j *DailyAnalyticsJob) runLayout(ctx context.Context, l *layout.Layout, day time.Time) (outcome string) {
	defer func() {
		if r := recover(); r != nil {
			j.logger.ErrorContext(ctx, "Daily analytics panicked for layout",
				"layout_id", l.ID().String(),
				"layout", l.Name(),
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			outcome = metrics.OutcomeFailed
		}
	}()

	cmd, err := commands.NewGenerateDailyAnalyticsCommand(l.ID(), day, j.heatmapDays)
	if err == nil {
		var result commands.DailyAnalyticsResult
		if result, err = j.handler.Handle(ctx, cmd); err == nil {
			if result.HeatmapCreated || result.MetricsCreated {
				return metrics.OutcomeCreated
			}
			return metrics.OutcomeSkipped
		}
	}

	j.logger.ErrorContext(ctx, "Daily analytics failed for layout",
		"layout_id", l.ID().String(),
		"layout", l.Name(),
		"error", err,
	)
	return metrics.OutcomeFailed
}

// slogCronLogger routes cron's own messages, including recovered job panics,
// to the job logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
