package api

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/huddlewire/huddlewire/app/config"
	"github.com/huddlewire/huddlewire/app/news"
	"github.com/huddlewire/huddlewire/app/odds"
	"github.com/huddlewire/huddlewire/app/tasks"
)

func NewHandler(snapshots SnapshotProvider, scheduler tasks.TaskSchedulerInterface,
	sources *config.Config) *Handler {
	return &Handler{
		snapshots: snapshots,
		scheduler: scheduler,
		sources:   sources,
	}
}

// GetNews serves the latest aggregated articles, optionally filtered
// to one team via the team query parameter. An empty article list is a
// valid response and means news is currently unavailable
func (h *Handler) GetNews(c *gin.Context) {
	snapshot := h.snapshots.News()

	articles := snapshot.Articles
	if team := c.Query("team"); team != "" {
		filtered := make([]news.Article, 0, len(articles))
		for _, article := range articles {
			if strings.EqualFold(article.Team, team) {
				filtered = append(filtered, article)
			}
		}
		articles = filtered
	}

	if articles == nil {
		articles = []news.Article{}
	}

	teams := make(map[string]bool)
	sources := make(map[string]bool)
	for _, article := range articles {
		teams[article.Team] = true
		sources[article.Source] = true
	}

	response := gin.H{
		"articles":      articles,
		"total":         len(articles),
		"teams_covered": len(teams),
		"sources":       len(sources),
		"succeeded":     snapshot.Succeeded,
		"failed":        snapshot.Failed,
	}
	if !snapshot.FetchedAt.IsZero() {
		response["fetched_at"] = snapshot.FetchedAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, response)
}

// GetGames serves the latest odds snapshot. Each game carries
// display-ready odds strings and no-vig win percentages alongside the
// raw American odds
func (h *Handler) GetGames(c *gin.Context) {
	snapshot := h.snapshots.Odds()

	games := make([]gin.H, 0, len(snapshot.Games))
	favorites := 0
	for _, game := range snapshot.Games {
		awayProb := odds.ImpliedProbability(game.AwayOdds)
		homeProb := odds.ImpliedProbability(game.HomeOdds)
		awayPct, homePct := odds.RemoveVig(awayProb, homeProb)

		if game.AwayOdds < 0 || game.HomeOdds < 0 {
			favorites++
		}

		games = append(games, gin.H{
			"away_team":         game.AwayTeam,
			"home_team":         game.HomeTeam,
			"away_odds":         game.AwayOdds,
			"home_odds":         game.HomeOdds,
			"away_odds_display": odds.FormatOdds(game.AwayOdds),
			"home_odds_display": odds.FormatOdds(game.HomeOdds),
			"away_win_pct":      math.Round(awayPct*10) / 10,
			"home_win_pct":      math.Round(homePct*10) / 10,
			"away_color":        game.AwayColor,
			"home_color":        game.HomeColor,
			"start_time":        game.StartTime.Format(time.RFC3339),
		})
	}

	response := gin.H{
		"games":     games,
		"total":     len(games),
		"favorites": favorites,
	}
	if !snapshot.FetchedAt.IsZero() {
		response["fetched_at"] = snapshot.FetchedAt.Format(time.RFC3339)
	}
	if snapshot.LastError != "" {
		response["error"] = snapshot.LastError
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().Format(time.RFC3339),
		"teams":     len(h.sources.Teams),
		"feeds":     h.sources.FeedCount(),
	}

	if newsSnapshot := h.snapshots.News(); !newsSnapshot.FetchedAt.IsZero() {
		health["news_age"] = time.Since(newsSnapshot.FetchedAt).Round(time.Second).String()
	}
	if oddsSnapshot := h.snapshots.Odds(); !oddsSnapshot.FetchedAt.IsZero() {
		health["odds_age"] = time.Since(oddsSnapshot.FetchedAt).Round(time.Second).String()
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	newsSnapshot := h.snapshots.News()
	oddsSnapshot := h.snapshots.Odds()

	newsStats := gin.H{
		"articles":  len(newsSnapshot.Articles),
		"succeeded": newsSnapshot.Succeeded,
		"failed":    newsSnapshot.Failed,
	}
	if !newsSnapshot.FetchedAt.IsZero() {
		newsStats["fetched_at"] = newsSnapshot.FetchedAt.Format(time.RFC3339)
	}

	oddsStats := gin.H{
		"games": len(oddsSnapshot.Games),
	}
	if !oddsSnapshot.FetchedAt.IsZero() {
		oddsStats["fetched_at"] = oddsSnapshot.FetchedAt.Format(time.RFC3339)
	}
	if oddsSnapshot.LastError != "" {
		oddsStats["last_error"] = oddsSnapshot.LastError
	}

	c.JSON(http.StatusOK, gin.H{
		"scheduler": h.scheduler.Stats(),
		"news":      newsStats,
		"odds":      oddsStats,
	})
}
