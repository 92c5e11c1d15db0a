package api

import (
	"github.com/huddlewire/huddlewire/app/config"
	"github.com/huddlewire/huddlewire/app/store"
	"github.com/huddlewire/huddlewire/app/tasks"
)

// SnapshotProvider is the read side of the snapshot store
type SnapshotProvider interface {
	News() store.NewsSnapshot
	Odds() store.OddsSnapshot
}

var _ SnapshotProvider = (*store.Store)(nil)

type Handler struct {
	snapshots SnapshotProvider
	scheduler tasks.TaskSchedulerInterface
	sources   *config.Config
}
