package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
)

var testNow = time.Date(2025, 11, 14, 12, 0, 0, 0, time.UTC)

func newTestFetcher() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		parser:     gofeed.NewParser(),
		teams:      []string{"Dallas Cowboys", "Philadelphia Eagles"},
		userAgent:  "test-agent",
		location:   time.UTC,
		lookback:   7 * 24 * time.Hour,
		maxEntries: 10,
		timeout:    5 * time.Second,
		workers:    4,
	}
}

func serveFeed(t *testing.T, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestFetchSkipsIncompleteEntries(t *testing.T) {
	feedXML := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Test Feed</title>
<item>
	<title>First valid story</title>
	<link>https://example.com/1</link>
	<pubDate>Thu, 13 Nov 2025 10:00:00 GMT</pubDate>
</item>
<item>
	<link>https://example.com/no-title</link>
	<pubDate>Thu, 13 Nov 2025 09:00:00 GMT</pubDate>
</item>
<item>
	<title>No link here</title>
	<pubDate>Thu, 13 Nov 2025 08:00:00 GMT</pubDate>
</item>
<item>
	<title>Second valid story</title>
	<link>https://example.com/2</link>
	<pubDate>Thu, 13 Nov 2025 07:00:00 GMT</pubDate>
</item>
</channel>
</rss>`

	server := serveFeed(t, feedXML)
	fetcher := newTestFetcher()

	articles, err := fetcher.Fetch(context.Background(), Source{URL: server.URL}, testNow)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("Expected 2 articles, got: %d", len(articles))
	}
	if articles[0].Title != "First valid story" {
		t.Errorf("Expected 'First valid story', got: %q", articles[0].Title)
	}
	if articles[1].Title != "Second valid story" {
		t.Errorf("Expected 'Second valid story', got: %q", articles[1].Title)
	}
}

func TestFetchDropsOldEntries(t *testing.T) {
	feedXML := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Test Feed</title>
<item>
	<title>Fresh story</title>
	<link>https://example.com/fresh</link>
	<pubDate>Thu, 13 Nov 2025 10:00:00 GMT</pubDate>
</item>
<item>
	<title>Stale story</title>
	<link>https://example.com/stale</link>
	<pubDate>Wed, 01 Oct 2025 10:00:00 GMT</pubDate>
</item>
</channel>
</rss>`

	server := serveFeed(t, feedXML)
	fetcher := newTestFetcher()

	articles, err := fetcher.Fetch(context.Background(), Source{URL: server.URL}, testNow)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(articles) != 1 {
		t.Fatalf("Expected 1 article, got: %d", len(articles))
	}
	if articles[0].Title != "Fresh story" {
		t.Errorf("Expected 'Fresh story', got: %q", articles[0].Title)
	}
}

func TestFetchCapsConsideredEntries(t *testing.T) {
	feedXML := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Test Feed</title>
<item>
	<title>Story one</title>
	<link>https://example.com/1</link>
	<pubDate>Thu, 13 Nov 2025 10:00:00 GMT</pubDate>
</item>
<item>
	<title>Story two without a link</title>
	<pubDate>Thu, 13 Nov 2025 09:00:00 GMT</pubDate>
</item>
<item>
	<title>Story three past the cap</title>
	<link>https://example.com/3</link>
	<pubDate>Thu, 13 Nov 2025 08:00:00 GMT</pubDate>
</item>
</channel>
</rss>`

	server := serveFeed(t, feedXML)
	fetcher := newTestFetcher()
	fetcher.maxEntries = 2

	articles, err := fetcher.Fetch(context.Background(), Source{URL: server.URL}, testNow)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// The cap limits entries considered, not articles kept, so the
	// skipped second entry does not pull the third into range
	if len(articles) != 1 {
		t.Fatalf("Expected 1 article, got: %d", len(articles))
	}
	if articles[0].Title != "Story one" {
		t.Errorf("Expected 'Story one', got: %q", articles[0].Title)
	}
}

func TestFetchEmptyFeedIsError(t *testing.T) {
	feedXML := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Empty Feed</title>
</channel>
</rss>`

	server := serveFeed(t, feedXML)
	fetcher := newTestFetcher()

	_, err := fetcher.Fetch(context.Background(), Source{URL: server.URL}, testNow)
	if err == nil {
		t.Fatal("Expected error for feed without entries, got nil")
	}
	if !strings.Contains(err.Error(), "no entries") {
		t.Errorf("Expected 'no entries' error, got: %v", err)
	}
}

func TestFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	fetcher := newTestFetcher()

	_, err := fetcher.Fetch(context.Background(), Source{URL: server.URL}, testNow)
	if err == nil {
		t.Fatal("Expected error for HTTP 500, got nil")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("Expected HTTP error with status code, got: %v", err)
	}
}

func TestFetchSendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	fetcher := newTestFetcher()
	fetcher.Fetch(context.Background(), Source{URL: server.URL}, testNow)

	if gotAgent != "test-agent" {
		t.Errorf("Expected User-Agent 'test-agent', got: %q", gotAgent)
	}
}

func TestFetchSourceLabel(t *testing.T) {
	titled := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>League Wire</title>
<item>
	<title>Some story</title>
	<link>https://example.com/1</link>
	<pubDate>Thu, 13 Nov 2025 10:00:00 GMT</pubDate>
</item>
</channel>
</rss>`

	server := serveFeed(t, titled)
	fetcher := newTestFetcher()

	articles, err := fetcher.Fetch(context.Background(), Source{URL: server.URL}, testNow)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if articles[0].Source != "League Wire" {
		t.Errorf("Expected source 'League Wire', got: %q", articles[0].Source)
	}

	untitled := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title></title>
<item>
	<title>Another story</title>
	<link>https://example.com/2</link>
	<pubDate>Thu, 13 Nov 2025 10:00:00 GMT</pubDate>
</item>
</channel>
</rss>`

	server2 := serveFeed(t, untitled)

	articles, err = fetcher.Fetch(context.Background(), Source{URL: server2.URL}, testNow)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if articles[0].Source != server2.URL {
		t.Errorf("Expected source to fall back to feed URL, got: %q", articles[0].Source)
	}
}

func TestFetchTeamAttribution(t *testing.T) {
	feedXML := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Team Feed</title>
<item>
	<title>Eagles soar in divisional round</title>
	<link>https://example.com/1</link>
	<pubDate>Thu, 13 Nov 2025 10:00:00 GMT</pubDate>
</item>
</channel>
</rss>`

	server := serveFeed(t, feedXML)
	fetcher := newTestFetcher()

	// A team-dedicated source labels every article with its team
	articles, err := fetcher.Fetch(context.Background(), Source{URL: server.URL, Team: "Dallas Cowboys"}, testNow)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if articles[0].Team != "Dallas Cowboys" {
		t.Errorf("Expected 'Dallas Cowboys', got: %q", articles[0].Team)
	}

	// A general source attributes from the headline
	articles, err = fetcher.Fetch(context.Background(), Source{URL: server.URL}, testNow)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if articles[0].Team != "Philadelphia Eagles" {
		t.Errorf("Expected 'Philadelphia Eagles', got: %q", articles[0].Team)
	}
}

func TestResolvePublished(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	fetcher := newTestFetcher()
	fetcher.location = est

	parsed := time.Date(2025, 11, 13, 15, 0, 0, 0, time.UTC)
	item := &gofeed.Item{PublishedParsed: &parsed}

	result := fetcher.resolvePublished(item, testNow)
	if !result.Equal(parsed) {
		t.Errorf("Expected %v, got: %v", parsed, result)
	}
	if result.Location() != est {
		t.Errorf("Expected reference zone %v, got: %v", est, result.Location())
	}

	updated := time.Date(2025, 11, 12, 9, 30, 0, 0, time.UTC)
	item = &gofeed.Item{UpdatedParsed: &updated}

	result = fetcher.resolvePublished(item, testNow)
	if !result.Equal(updated) {
		t.Errorf("Expected updated date %v, got: %v", updated, result)
	}

	item = &gofeed.Item{Published: "2025-11-13 08:30:00 UTC"}

	result = fetcher.resolvePublished(item, testNow)
	expected := time.Date(2025, 11, 13, 8, 30, 0, 0, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("Expected textual date %v, got: %v", expected, result)
	}

	item = &gofeed.Item{Updated: "2025-11-11 18:00:00 UTC"}

	result = fetcher.resolvePublished(item, testNow)
	expected = time.Date(2025, 11, 11, 18, 0, 0, 0, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("Expected textual updated date %v, got: %v", expected, result)
	}

	item = &gofeed.Item{}

	result = fetcher.resolvePublished(item, testNow)
	if !result.Equal(testNow) {
		t.Errorf("Expected fallback to now %v, got: %v", testNow, result)
	}
}

func TestFetchAll(t *testing.T) {
	goodFeed := func(title, story string) string {
		return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>%s</title>
<item>
	<title>%s</title>
	<link>https://example.com/story</link>
	<pubDate>Thu, 13 Nov 2025 10:00:00 GMT</pubDate>
</item>
</channel>
</rss>`, title, story)
	}

	first := serveFeed(t, goodFeed("Feed A", "Story from A"))
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(broken.Close)
	second := serveFeed(t, goodFeed("Feed B", "Story from B"))
	garbage := serveFeed(t, "this is not a feed")
	third := serveFeed(t, goodFeed("Feed C", "Story from C"))

	sources := []Source{
		{URL: first.URL},
		{URL: broken.URL},
		{URL: second.URL},
		{URL: garbage.URL},
		{URL: third.URL},
	}

	fetcher := newTestFetcher()
	result := fetcher.FetchAll(context.Background(), sources, testNow)

	if result.Succeeded != 3 {
		t.Errorf("Expected 3 succeeded, got: %d", result.Succeeded)
	}
	if result.Failed != 2 {
		t.Errorf("Expected 2 failed, got: %d", result.Failed)
	}
	if result.Succeeded+result.Failed != len(sources) {
		t.Errorf("Expected counts to cover all %d sources, got: %d", len(sources), result.Succeeded+result.Failed)
	}

	expected := []string{"Story from A", "Story from B", "Story from C"}
	if len(result.Articles) != len(expected) {
		t.Fatalf("Expected %d articles, got: %d", len(expected), len(result.Articles))
	}
	for i, title := range expected {
		if result.Articles[i].Title != title {
			t.Errorf("Expected article %d to be %q, got: %q", i, title, result.Articles[i].Title)
		}
	}
}

func TestFetchAllEmptySources(t *testing.T) {
	fetcher := newTestFetcher()
	result := fetcher.FetchAll(context.Background(), nil, testNow)

	if result.Succeeded != 0 || result.Failed != 0 {
		t.Errorf("Expected zero counts, got: %d succeeded, %d failed", result.Succeeded, result.Failed)
	}
	if len(result.Articles) != 0 {
		t.Errorf("Expected no articles, got: %d", len(result.Articles))
	}
}
