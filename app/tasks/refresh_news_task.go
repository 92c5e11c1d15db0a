package tasks

import (
	"context"
	"log/slog"
	"time"

	"github.com/huddlewire/huddlewire/app/store"
)

// RefreshNewsTask runs the aggregation pipeline and publishes the
// result as the serving snapshot. Individual feed failures are already
// absorbed into the result's counters, so the task itself only fails
// on cancellation
type RefreshNewsTask struct {
	Task
	pipeline NewsRunner
	store    *store.Store
}

func NewRefreshNewsTask(pipeline NewsRunner, snapshots *store.Store) *RefreshNewsTask {
	return &RefreshNewsTask{
		Task:     NewTask(TaskTypeRefreshNews),
		pipeline: pipeline,
		store:    snapshots,
	}
}

func (t *RefreshNewsTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	now := time.Now()
	result := t.pipeline.Run(ctx, now)
	t.store.SetNews(result, now)

	slog.Info("Task completed",
		"type", "RefreshNews",
		"duration", t.GetDuration(),
		"articles", len(result.Articles),
		"succeeded", result.Succeeded,
		"failed", result.Failed)

	return nil
}
