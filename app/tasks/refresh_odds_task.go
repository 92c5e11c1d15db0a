package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/huddlewire/huddlewire/app/odds"
	"github.com/huddlewire/huddlewire/app/store"
)

// RefreshOddsTask fetches the upcoming week's games and publishes them
// as the serving snapshot. Failures, including a missing API key,
// still stamp the snapshot so the next attempt waits out a full TTL
type RefreshOddsTask struct {
	Task
	client OddsFetcher
	store  *store.Store
}

func NewRefreshOddsTask(client OddsFetcher, snapshots *store.Store) *RefreshOddsTask {
	return &RefreshOddsTask{
		Task:   NewTask(TaskTypeRefreshOdds),
		client: client,
		store:  snapshots,
	}
}

func (t *RefreshOddsTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	now := time.Now()
	games, err := t.client.FetchWeekGames(ctx, now)
	if err != nil {
		t.store.SetOddsError(err, now)

		if errors.Is(err, odds.ErrNoAPIKey) {
			slog.Info("Odds refresh skipped", "reason", err.Error())
			return nil
		}

		return fmt.Errorf("failed to fetch odds: %w", err)
	}

	t.store.SetOdds(games, now)

	slog.Info("Task completed",
		"type", "RefreshOdds",
		"duration", t.GetDuration(),
		"games", len(games))

	return nil
}
