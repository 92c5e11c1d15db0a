package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sources.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	content := `
teams:
  - Dallas Cowboys
  - Green Bay Packers
  - Kansas City Chiefs

feeds:
  general:
    - name: "ESPN NFL News"
      url: "https://example.com/nfl.rss"
      enabled: true
    - name: "Disabled Feed"
      url: "https://example.com/disabled.rss"
      enabled: false
  team:
    Dallas Cowboys:
      - "https://example.com/cowboys.rss"
`

	loader := NewLoader(writeConfig(t, content))
	config, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	if len(config.Teams) != 3 {
		t.Errorf("Expected 3 teams, got %d", len(config.Teams))
	}
	if config.Teams[0] != "Dallas Cowboys" {
		t.Errorf("Expected first team 'Dallas Cowboys', got '%s'", config.Teams[0])
	}
	if len(config.Feeds.General) != 2 {
		t.Errorf("Expected 2 general feeds, got %d", len(config.Feeds.General))
	}
	if config.Feeds.General[0].Name != "ESPN NFL News" {
		t.Errorf("Expected feed name 'ESPN NFL News', got '%s'", config.Feeds.General[0].Name)
	}
	if !config.Feeds.General[0].IsEnabled() {
		t.Error("Expected first general feed to be enabled")
	}
	if config.Feeds.General[1].IsEnabled() {
		t.Error("Expected second general feed to be disabled")
	}
	if len(config.Feeds.Team["Dallas Cowboys"]) != 1 {
		t.Errorf("Expected 1 team feed for Dallas Cowboys, got %d", len(config.Feeds.Team["Dallas Cowboys"]))
	}
}

func TestEnabledDefaultsToTrue(t *testing.T) {
	content := `
teams:
  - Dallas Cowboys

feeds:
  general:
    - name: "No Enabled Key"
      url: "https://example.com/nfl.rss"
`

	loader := NewLoader(writeConfig(t, content))
	config, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	if !config.Feeds.General[0].IsEnabled() {
		t.Error("Expected feed without enabled key to default to enabled")
	}

	enabled := config.EnabledGeneralFeeds()
	if len(enabled) != 1 {
		t.Errorf("Expected 1 enabled feed, got %d", len(enabled))
	}
}

func TestEnabledGeneralFeedsPreservesOrder(t *testing.T) {
	content := `
teams:
  - Dallas Cowboys

feeds:
  general:
    - name: "First"
      url: "https://example.com/a.rss"
    - name: "Skipped"
      url: "https://example.com/b.rss"
      enabled: false
    - name: "Second"
      url: "https://example.com/c.rss"
`

	loader := NewLoader(writeConfig(t, content))
	config, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	enabled := config.EnabledGeneralFeeds()
	if len(enabled) != 2 {
		t.Fatalf("Expected 2 enabled feeds, got %d", len(enabled))
	}
	if enabled[0].Name != "First" || enabled[1].Name != "Second" {
		t.Errorf("Expected enabled feeds in file order, got %s then %s", enabled[0].Name, enabled[1].Name)
	}
}

func TestTeamFeedTeamsSorted(t *testing.T) {
	content := `
teams:
  - Dallas Cowboys
  - Green Bay Packers
  - Buffalo Bills

feeds:
  team:
    Green Bay Packers:
      - "https://example.com/packers.rss"
    Buffalo Bills:
      - "https://example.com/bills.rss"
    Dallas Cowboys:
      - "https://example.com/cowboys.rss"
`

	loader := NewLoader(writeConfig(t, content))
	config, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	teams := config.TeamFeedTeams()
	expected := []string{"Buffalo Bills", "Dallas Cowboys", "Green Bay Packers"}
	if len(teams) != len(expected) {
		t.Fatalf("Expected %d teams, got %d", len(expected), len(teams))
	}
	for i, team := range expected {
		if teams[i] != team {
			t.Errorf("Expected team %q at index %d, got %q", team, i, teams[i])
		}
	}

	if config.FeedCount() != 3 {
		t.Errorf("Expected feed count 3, got %d", config.FeedCount())
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "No teams",
			content: `
feeds:
  general:
    - name: "Feed"
      url: "https://example.com/nfl.rss"
`,
		},
		{
			name: "General feed missing URL",
			content: `
teams:
  - Dallas Cowboys

feeds:
  general:
    - name: "No URL"
`,
		},
		{
			name: "Team feed for unknown team",
			content: `
teams:
  - Dallas Cowboys

feeds:
  team:
    Chicago Bears:
      - "https://example.com/bears.rss"
`,
		},
		{
			name: "Empty team feed URL",
			content: `
teams:
  - Dallas Cowboys

feeds:
  team:
    Dallas Cowboys:
      - ""
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(writeConfig(t, tt.content))
			if _, err := loader.Load(); err == nil {
				t.Error("Expected error for invalid configuration")
			}
		})
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing.yml"))
	if _, err := loader.Load(); err == nil {
		t.Error("Expected error for missing configuration file")
	}
}
