package news

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed"

	"github.com/huddlewire/huddlewire/app/cfg"
)

// Fetcher downloads and normalizes individual feeds and fans out over
// many of them with a bounded worker pool
type Fetcher struct {
	httpClient *http.Client
	parser     *gofeed.Parser
	teams      []string
	userAgent  string
	location   *time.Location
	lookback   time.Duration
	maxEntries int
	timeout    time.Duration
	workers    int
}

func NewFetcher(httpClient *http.Client, teams []string) *Fetcher {
	c := cfg.Get()

	return &Fetcher{
		httpClient: httpClient,
		parser:     gofeed.NewParser(),
		teams:      teams,
		userAgent:  c.UserAgent,
		location:   c.Location,
		lookback:   time.Duration(c.LookbackDays) * 24 * time.Hour,
		maxEntries: c.FeedMaxEntries,
		timeout:    time.Duration(c.FeedTimeout) * time.Second,
		workers:    c.WorkerCount,
	}
}

// Fetch downloads one feed and returns its recent articles. Entries
// missing a title or link are skipped; entries older than the lookback
// cutoff are dropped. A feed that parses but carries no entries at all
// is an error, so the caller can count it as a failed source
func (f *Fetcher) Fetch(ctx context.Context, src Source, now time.Time) ([]Article, error) {
	data, err := f.fetchFeed(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	parsed, err := f.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("feed has no entries")
	}

	source := cmp.Or(parsed.Title, src.URL)
	cutoff := now.Add(-f.lookback)

	limit := f.maxEntries
	if len(parsed.Items) < limit {
		limit = len(parsed.Items)
	}

	articles := make([]Article, 0, limit)
	for _, item := range parsed.Items[:limit] {
		if item.Title == "" || item.Link == "" {
			continue
		}

		published := f.resolvePublished(item, now)
		if published.Before(cutoff) {
			continue
		}

		team := src.Team
		if team == "" {
			team = DetectTeam(item.Title, f.teams)
		}

		articles = append(articles, Article{
			Title:     item.Title,
			Link:      item.Link,
			Published: published,
			Summary:   CleanText(item.Description),
			Source:    source,
			Team:      team,
		})
	}

	return articles, nil
}

// FetchAll fans out over the given sources with at most workers
// concurrent fetches. Per-source results land in slots indexed by the
// source's position and are concatenated in input order, so the output
// order does not depend on goroutine scheduling. A failed source
// contributes nothing and never aborts the run
func (f *Fetcher) FetchAll(ctx context.Context, sources []Source, now time.Time) Result {
	if len(sources) == 0 {
		return Result{}
	}

	workers := f.workers
	if workers < 1 {
		workers = 1
	}

	slots := make([][]Article, len(sources))
	errs := make([]error, len(sources))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			slots[i], errs[i] = f.Fetch(ctx, src, now)
		}(i, src)
	}

	wg.Wait()

	var result Result
	for i := range slots {
		if errs[i] != nil {
			slog.Warn("Feed fetch failed", "url", sources[i].URL, "error", errs[i])
			result.Failed++
			continue
		}
		result.Succeeded++
		result.Articles = append(result.Articles, slots[i]...)
	}

	return result
}

// resolvePublished picks the entry timestamp: parsed published date,
// parsed updated date, a textual date either field can be parsed into,
// and finally now. The result is normalized into the reference zone;
// zone-less values are treated as UTC
func (f *Fetcher) resolvePublished(item *gofeed.Item, now time.Time) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.In(f.location)
	}

	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.In(f.location)
	}

	for _, raw := range []string{item.Published, item.Updated} {
		if raw == "" {
			continue
		}
		if ts, err := dateparse.ParseAny(raw); err == nil {
			return ts.In(f.location)
		}
	}

	return now.In(f.location)
}

func (f *Fetcher) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
