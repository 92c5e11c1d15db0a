package news

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"

	"github.com/huddlewire/huddlewire/app/config"
)

// Pipeline aggregates every configured source into one deduplicated
// article list, newest first
type Pipeline struct {
	fetcher *Fetcher
	config  *config.Config
}

func NewPipeline(fetcher *Fetcher, sources *config.Config) *Pipeline {
	return &Pipeline{
		fetcher: fetcher,
		config:  sources,
	}
}

// Run fetches all sources, drops duplicate headlines and sorts the
// result by publish time, newest first. An empty article list with
// failure counts is still a valid result
func (p *Pipeline) Run(ctx context.Context, now time.Time) Result {
	result := p.fetcher.FetchAll(ctx, p.Sources(), now)

	result.Articles = dedupeArticles(result.Articles)
	sortArticles(result.Articles)

	return result
}

// sortArticles orders by publish time, newest first. Ties keep their
// input order, so the overall result stays deterministic
func sortArticles(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Published.After(articles[j].Published)
	})
}

// Sources builds the fetch list: enabled general feeds in file order,
// then team feeds grouped by team name in sorted order. The ordering
// is fixed so repeated runs resolve duplicate headlines the same way
func (p *Pipeline) Sources() []Source {
	var sources []Source

	for _, feed := range p.config.EnabledGeneralFeeds() {
		sources = append(sources, Source{URL: feed.URL})
	}

	for _, team := range p.config.TeamFeedTeams() {
		for _, url := range p.config.Feeds.Team[team] {
			sources = append(sources, Source{URL: url, Team: team})
		}
	}

	return sources
}

// dedupeArticles keeps the first occurrence of each headline. The
// fingerprint covers the headline only, so the same story syndicated
// through several feeds collapses into one article
func dedupeArticles(articles []Article) []Article {
	seen := make(map[string]bool, len(articles))
	deduped := make([]Article, 0, len(articles))

	for _, article := range articles {
		hash := headlineHash(article.Title)
		if seen[hash] {
			continue
		}
		seen[hash] = true
		deduped = append(deduped, article)
	}

	return deduped
}

func headlineHash(title string) string {
	hash := sha256.Sum256([]byte(title))
	return hex.EncodeToString(hash[:])
}
