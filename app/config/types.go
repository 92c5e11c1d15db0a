package config

// Config represents the sources configuration file: the known team list
// plus the news feeds to aggregate
type Config struct {
	Teams []string `yaml:"teams"`
	Feeds Feeds    `yaml:"feeds"`
}

type Feeds struct {
	General []GeneralFeed       `yaml:"general"`
	Team    map[string][]string `yaml:"team"`
}

// GeneralFeed is a league-wide news source. Enabled is a pointer so an
// omitted key means enabled
type GeneralFeed struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Enabled *bool  `yaml:"enabled"`
}
