package jobs

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultNotificationDispatchSchedule is used when no schedule is configured.
const DefaultNotificationDispatchSchedule = "@every 30s"

// NotificationDispatcher is satisfied by *commands.DispatchPendingNotificationsCommandHandler.
type NotificationDispatcher interface {
	Handle(ctx context.Context, cmd commands.DispatchPendingNotificationsCommand) (commands.DispatchResult, error)
}

// NotificationDispatchJob periodically sends pending notifications.
type NotificationDispatchJob struct {
	handler   NotificationDispatcher
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewNotificationDispatchJob creates a job sending up to batchSize notifications per run.
// An empty schedule means DefaultNotificationDispatchSchedule and a zero batch size
// means commands.DefaultDispatchBatchSize.
func NewNotificationDispatchJob(
	handler NotificationDispatcher,
	schedule string,
	batchSize int,
	logger *zap.Logger,
) *NotificationDispatchJob {
	if schedule == "" {
		schedule = DefaultNotificationDispatchSchedule
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "notification_dispatch_job"))

	return &NotificationDispatchJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

func (j *NotificationDispatchJob) Name() string {
	return "notification dispatch"
}

// Start schedules the job. It fails when the schedule cannot be parsed.
func (j *NotificationDispatchJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("notification dispatch job started", zap.String("schedule", j.schedule))
	return nil
}

// RunOnce performs a single dispatch run and reports its outcome.
func (j *NotificationDispatchJob) RunOnce(ctx context.Context) commands.DispatchResult {
	cmd, err := commands.NewDispatchPendingNotificationsCommand(j.batchSize)
	if err != nil {
		j.logger.Error("invalid dispatch batch size", zap.Int("batch_size", j.batchSize), zap.Error(err))
		return commands.DispatchResult{}
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("notification dispatch failed",
			zap.Int("sent", result.Sent),
			zap.Int("failed", result.Failed),
			zap.Error(err))
		return result
	}

	if result.Total() > 0 {
		j.logger.Info("pending notifications dispatched",
			zap.Int("sent", result.Sent),
			zap.Int("failed", result.Failed))
	}
	return result
}

// Stop stops scheduling and waits for a running dispatch to finish.
func (j *NotificationDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("notification dispatch job stopped")
}
