package news

import (
	"time"
)

// Article is a normalized news item ready for serving
type Article struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Published time.Time `json:"published"`
	Summary   string    `json:"summary"`
	Source    string    `json:"source"`
	Team      string    `json:"team"`
}

// Source is a single feed to fetch. An empty Team marks a league-wide
// source whose articles get team attribution from their headlines
type Source struct {
	URL  string
	Team string
}

// Result is the outcome of one aggregation run. Succeeded and Failed
// count sources, not articles
type Result struct {
	Articles  []Article
	Succeeded int
	Failed    int
}
