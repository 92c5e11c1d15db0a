package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Server configuration
	Port              string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	SchedulerInterval int    `long:"scheduler-interval" env:"SCHEDULER_INTERVAL" default:"60" description:"Scheduler tick interval in seconds"`
	WorkerCount       int    `long:"worker-count" env:"WORKER_COUNT" default:"10" description:"Number of concurrent feed fetches"`

	// News configuration
	SourcesFile    string `long:"sources-file" env:"SOURCES_FILE" default:"./sources.yml" description:"Path to the sources configuration file"`
	LookbackDays   int    `long:"lookback-days" env:"LOOKBACK_DAYS" default:"7" description:"Drop articles older than this many days"`
	FeedMaxEntries int    `long:"feed-max-entries" env:"FEED_MAX_ENTRIES" default:"10" description:"Maximum entries taken from each feed"`
	FeedTimeout    int    `long:"feed-timeout" env:"FEED_TIMEOUT" default:"10" description:"Per-feed fetch timeout in seconds"`
	NewsTTL        int    `long:"news-ttl" env:"NEWS_TTL" default:"1800" description:"News snapshot refresh interval in seconds"`

	// Odds configuration
	OddsAPIKey  string `long:"odds-api-key" env:"ODDS_API_KEY" description:"The Odds API key (odds are disabled without it)"`
	OddsAPIBase string `long:"odds-api-base" env:"ODDS_API_BASE" default:"https://api.the-odds-api.com/v4" description:"The Odds API base URL"`
	OddsTimeout int    `long:"odds-timeout" env:"ODDS_TIMEOUT" default:"10" description:"Odds API request timeout in seconds"`
	OddsTTL     int    `long:"odds-ttl" env:"ODDS_TTL" default:"86400" description:"Odds snapshot refresh interval in seconds"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Mozilla/5.0 (compatible; Huddlewire/1.0)" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"America/New_York" description:"Reference timezone for article timestamps"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:              raw.Port,
		SchedulerInterval: raw.SchedulerInterval,
		WorkerCount:       raw.WorkerCount,
		SourcesFile:       raw.SourcesFile,
		LookbackDays:      raw.LookbackDays,
		FeedMaxEntries:    raw.FeedMaxEntries,
		FeedTimeout:       raw.FeedTimeout,
		NewsTTL:           raw.NewsTTL,
		OddsAPIKey:        raw.OddsAPIKey,
		OddsAPIBase:       raw.OddsAPIBase,
		OddsTimeout:       raw.OddsTimeout,
		OddsTTL:           raw.OddsTTL,
		UserAgent:         raw.UserAgent,
		Timezone:          raw.Timezone,
		Location:          resolveLocation(raw.Timezone),
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func resolveLocation(timezone string) *time.Location {
	if timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using UTC: %v\n", timezone, err)
		return time.UTC
	}
	return loc
}
