package config

import "sort"

// IsEnabled reports whether the feed should be fetched. An omitted
// enabled key means enabled
func (f GeneralFeed) IsEnabled() bool {
	return f.Enabled == nil || *f.Enabled
}

// EnabledGeneralFeeds returns the general feeds that are enabled,
// preserving file order
func (c *Config) EnabledGeneralFeeds() []GeneralFeed {
	enabled := make([]GeneralFeed, 0, len(c.Feeds.General))
	for _, feed := range c.Feeds.General {
		if feed.IsEnabled() {
			enabled = append(enabled, feed)
		}
	}
	return enabled
}

// TeamFeedTeams returns the teams that have dedicated feeds, in sorted
// order so iteration is deterministic
func (c *Config) TeamFeedTeams() []string {
	teams := make([]string, 0, len(c.Feeds.Team))
	for team := range c.Feeds.Team {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}

// FeedCount returns the number of feeds the aggregator will fetch
func (c *Config) FeedCount() int {
	count := len(c.EnabledGeneralFeeds())
	for _, urls := range c.Feeds.Team {
		count += len(urls)
	}
	return count
}
