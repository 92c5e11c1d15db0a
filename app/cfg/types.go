package cfg

import "time"

type Cfg struct {
	// Server configuration
	Port              string
	SchedulerInterval int
	WorkerCount       int

	// News configuration
	SourcesFile    string
	LookbackDays   int
	FeedMaxEntries int
	FeedTimeout    int
	NewsTTL        int

	// Odds configuration
	OddsAPIKey  string
	OddsAPIBase string
	OddsTimeout int
	OddsTTL     int

	// Application metadata
	UserAgent string
	Timezone  string
	Location  *time.Location
	Debug     bool
	Version   string
}
