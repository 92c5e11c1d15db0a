package store

import (
	"sync"
	"time"

	"github.com/huddlewire/huddlewire/app/news"
	"github.com/huddlewire/huddlewire/app/odds"
)

// NewsSnapshot is the latest aggregation result together with its
// fetch-run counters
type NewsSnapshot struct {
	Articles  []news.Article
	Succeeded int
	Failed    int
	FetchedAt time.Time
}

// OddsSnapshot is the latest odds result. LastError records why the
// snapshot is empty when the fetch did not produce games
type OddsSnapshot struct {
	Games     []odds.Game
	FetchedAt time.Time
	LastError string
}

// Store holds the serving snapshots. Refresh tasks replace them
// wholesale while API handlers read them concurrently
type Store struct {
	mu   sync.RWMutex
	news NewsSnapshot
	odds OddsSnapshot
}

func New() *Store {
	return &Store{}
}

// SetNews replaces the news snapshot, stamping it with now
func (s *Store) SetNews(result news.Result, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.news = NewsSnapshot{
		Articles:  result.Articles,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		FetchedAt: now,
	}
}

// News returns the current news snapshot
func (s *Store) News() NewsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.news
}

// SetOdds replaces the odds snapshot, stamping it with now
func (s *Store) SetOdds(games []odds.Game, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.odds = OddsSnapshot{
		Games:     games,
		FetchedAt: now,
	}
}

// SetOddsError replaces the odds snapshot with an empty one carrying
// the failure reason. The snapshot is still stamped with now, so the
// next attempt waits out a full TTL instead of hammering the API
func (s *Store) SetOddsError(err error, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.odds = OddsSnapshot{
		FetchedAt: now,
		LastError: err.Error(),
	}
}

// Odds returns the current odds snapshot
func (s *Store) Odds() OddsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.odds
}

// NewsFresh reports whether the news snapshot is younger than ttl. A
// store that never saw a snapshot is never fresh
func (s *Store) NewsFresh(ttl time.Duration, now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return !s.news.FetchedAt.IsZero() && now.Sub(s.news.FetchedAt) < ttl
}

// OddsFresh reports whether the odds snapshot is younger than ttl
func (s *Store) OddsFresh(ttl time.Duration, now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return !s.odds.FetchedAt.IsZero() && now.Sub(s.odds.FetchedAt) < ttl
}
