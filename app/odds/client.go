package odds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/huddlewire/huddlewire/app/cfg"
)

// ErrNoAPIKey is returned when no Odds API key is configured. The
// client never goes to the network in that case
var ErrNoAPIKey = errors.New("odds API key is not configured")

// legalBooks is the bookmaker allow-list, keyed the way The Odds API
// names them
var legalBooks = map[string]bool{
	"fanduel":    true,
	"draftkings": true,
	"betmgm":     true,
	"caesars":    true,
	"bet365":     true,
}

// Client fetches NFL moneyline odds from The Odds API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	timeout    time.Duration
}

func NewClient(httpClient *http.Client) *Client {
	c := cfg.Get()

	return &Client{
		httpClient: httpClient,
		baseURL:    c.OddsAPIBase,
		apiKey:     c.OddsAPIKey,
		userAgent:  c.UserAgent,
		timeout:    time.Duration(c.OddsTimeout) * time.Second,
	}
}

// FetchWeekGames returns the games of the NFL week around now, sorted
// by start time. Events outside the Thursday through Monday window are
// skipped, and so are events where no allow-listed bookmaker quoted
// both sides
func (c *Client) FetchWeekGames(ctx context.Context, now time.Time) ([]Game, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	events, err := c.fetchEvents(ctx)
	if err != nil {
		return nil, err
	}

	start, end := WeekWindow(now)

	games := make([]Game, 0, len(events))
	for _, event := range events {
		day := dateOnly(event.CommenceTime)
		if day.Before(start) || day.After(end) {
			continue
		}

		game, ok := extractGame(event)
		if !ok {
			continue
		}

		games = append(games, game)
	}

	sort.SliceStable(games, func(i, j int) bool {
		return games[i].StartTime.Before(games[j].StartTime)
	})

	return games, nil
}

func (c *Client) fetchEvents(ctx context.Context) ([]apiEvent, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + "/sports/americanfootball_nfl/odds"

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	query := req.URL.Query()
	query.Set("apiKey", c.apiKey)
	query.Set("regions", "us,us2")
	query.Set("markets", "h2h")
	query.Set("oddsFormat", "american")
	req.URL.RawQuery = query.Encode()

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch odds: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s: %s", resp.StatusCode, resp.Status, excerpt(body))
	}

	var events []apiEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to decode odds response: %w", err)
	}

	return events, nil
}

// extractGame pulls one quote per side from the allow-listed
// bookmakers, scanning in response order. The first quote for a side
// wins and later ones never overwrite it. Events missing either side
// are dropped
func extractGame(event apiEvent) (Game, bool) {
	var homeOdds, awayOdds int
	var homeSet, awaySet bool

	for _, book := range event.Bookmakers {
		if !legalBooks[book.Key] {
			continue
		}
		if len(book.Markets) == 0 {
			continue
		}

		for _, outcome := range book.Markets[0].Outcomes {
			switch outcome.Name {
			case event.HomeTeam:
				if !homeSet {
					homeOdds = outcome.Price
					homeSet = true
				}
			case event.AwayTeam:
				if !awaySet {
					awayOdds = outcome.Price
					awaySet = true
				}
			}
		}

		if homeSet && awaySet {
			break
		}
	}

	if !homeSet || !awaySet {
		return Game{}, false
	}

	return Game{
		AwayTeam:  event.AwayTeam,
		HomeTeam:  event.HomeTeam,
		AwayOdds:  awayOdds,
		HomeOdds:  homeOdds,
		AwayColor: TeamColor(event.AwayTeam),
		HomeColor: TeamColor(event.HomeTeam),
		StartTime: event.CommenceTime,
	}, true
}

func excerpt(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
