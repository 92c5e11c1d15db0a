package odds

import "time"

// Game is one upcoming matchup with its moneyline quotes in American
// format. AwayOdds and HomeOdds come from the first allow-listed
// bookmaker that quoted each side
type Game struct {
	AwayTeam  string    `json:"away_team"`
	HomeTeam  string    `json:"home_team"`
	AwayOdds  int       `json:"away_odds"`
	HomeOdds  int       `json:"home_odds"`
	AwayColor string    `json:"away_color"`
	HomeColor string    `json:"home_color"`
	StartTime time.Time `json:"start_time"`
}

// Wire shapes for The Odds API v4 event list

type apiEvent struct {
	ID           string         `json:"id"`
	CommenceTime time.Time      `json:"commence_time"`
	HomeTeam     string         `json:"home_team"`
	AwayTeam     string         `json:"away_team"`
	Bookmakers   []apiBookmaker `json:"bookmakers"`
}

type apiBookmaker struct {
	Key     string      `json:"key"`
	Title   string      `json:"title"`
	Markets []apiMarket `json:"markets"`
}

type apiMarket struct {
	Key      string       `json:"key"`
	Outcomes []apiOutcome `json:"outcomes"`
}

type apiOutcome struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}
