package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// EventCleanupJobName is the name of the sync event pruning job
const EventCleanupJobName = "sync_event_cleanup"

// EventPruner deletes sync event rows older than the given cutoff and
// reports how many rows went away. The sync event repository satisfies it.
type EventPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// EventCleanupJob prunes old rows from the sync event audit log so the
// table does not grow without bound.
type EventCleanupJob struct {
	pruner        EventPruner
	logger        *zap.Logger
	retentionDays int
	timeout       time.Duration
}

// NewEventCleanupJob creates a new event cleanup job.
func NewEventCleanupJob(pruner EventPruner, logger *zap.Logger, retentionDays int, timeout time.Duration) *EventCleanupJob {
	return &EventCleanupJob{
		pruner:        pruner,
		logger:        logger,
		retentionDays: retentionDays,
		timeout:       timeout,
	}
}

// Run executes the cleanup. This is called by the scheduler according to
// the configured cron expression.
func (j *EventCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	cutoff := time.Now().UTC().AddDate(0, 0, -j.retentionDays)

	deleted, err := j.pruner.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.Error("sync event cleanup failed",
			zap.Error(err),
			zap.Time("cutoff", cutoff),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("sync event cleanup completed",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff),
		zap.Duration("duration", time.Since(start)))
}
