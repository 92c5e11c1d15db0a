package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/huddlewire/huddlewire/app/cfg"
	"github.com/huddlewire/huddlewire/app/store"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

// Stats reports lifetime task counters and current queue pressure
type Stats struct {
	Executed  int64 `json:"executed"`
	Failed    int64 `json:"failed"`
	QueueSize int   `json:"queue_size"`
	Workers   int   `json:"workers"`
}

type Scheduler struct {
	pipeline    NewsRunner
	oddsClient  OddsFetcher
	store       *store.Store
	interval    time.Duration
	newsTTL     time.Duration
	oddsTTL     time.Duration
	workerCount int
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	taskQueue   chan TaskInterface
	executed    atomic.Int64
	failed      atomic.Int64
}

func NewScheduler(pipeline NewsRunner, oddsClient OddsFetcher, snapshots *store.Store) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := cfg.Get()

	return &Scheduler{
		pipeline:    pipeline,
		oddsClient:  oddsClient,
		store:       snapshots,
		interval:    time.Duration(cfg.SchedulerInterval) * time.Second,
		newsTTL:     time.Duration(cfg.NewsTTL) * time.Second,
		oddsTTL:     time.Duration(cfg.OddsTTL) * time.Second,
		workerCount: cfg.WorkerCount,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, 300),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.enqueueDueTasks()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueDueTasks()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

func (s *Scheduler) Stats() Stats {
	return Stats{
		Executed:  s.executed.Load(),
		Failed:    s.failed.Load(),
		QueueSize: len(s.taskQueue),
		Workers:   s.workerCount,
	}
}

// enqueueDueTasks refreshes whichever snapshot has outlived its TTL.
// An empty store fails both freshness checks, so the first call after
// startup enqueues both refreshes
func (s *Scheduler) enqueueDueTasks() {
	now := time.Now()

	if !s.store.NewsFresh(s.newsTTL, now) {
		task := NewRefreshNewsTask(s.pipeline, s.store)
		if err := s.EnqueueTask(task); err != nil {
			slog.Warn("Failed to enqueue RefreshNewsTask", "error", err)
		}
	}

	if !s.store.OddsFresh(s.oddsTTL, now) {
		task := NewRefreshOddsTask(s.oddsClient, s.store)
		if err := s.EnqueueTask(task); err != nil {
			slog.Warn("Failed to enqueue RefreshOddsTask", "error", err)
		}
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	err := task.Execute(taskCtx)

	s.executed.Add(1)
	if err != nil {
		s.failed.Add(1)
		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "error", err)
	}
}
