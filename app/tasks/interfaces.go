package tasks

import (
	"context"
	"time"

	"github.com/huddlewire/huddlewire/app/news"
	"github.com/huddlewire/huddlewire/app/odds"
)

// NewsRunner aggregates every configured feed into one result.
// Implemented by news.Pipeline.
type NewsRunner interface {
	Run(ctx context.Context, now time.Time) news.Result
}

var _ NewsRunner = (*news.Pipeline)(nil)

// OddsFetcher pulls the upcoming week's games.
// Implemented by odds.Client.
type OddsFetcher interface {
	FetchWeekGames(ctx context.Context, now time.Time) ([]odds.Game, error)
}

var _ OddsFetcher = (*odds.Client)(nil)

// TaskSchedulerInterface defines the interface for task scheduling operations.
// Used by the main application and the API layer to manage background refreshes.
// Example usage:
//
//	scheduler := NewScheduler(pipeline, oddsClient, snapshots)
//	scheduler.Start()
//	defer scheduler.Stop()
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
	Stats() Stats
}
