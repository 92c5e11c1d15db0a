package news

import (
	"regexp"
	"strings"

	"github.com/mrz1836/go-sanitize"
)

// SummaryMaxLen is the cap applied to sanitized summaries, in runes
const SummaryMaxLen = 300

var whitespaceRegexp = regexp.MustCompile(`\s+`)

// CleanText strips markup tags, collapses whitespace runs to single
// spaces, trims the ends, and caps the result at SummaryMaxLen runes
// plus an ellipsis
func CleanText(s string) string {
	if s == "" {
		return ""
	}

	text := sanitize.HTML(s)
	text = strings.TrimSpace(whitespaceRegexp.ReplaceAllString(text, " "))

	runes := []rune(text)
	if len(runes) > SummaryMaxLen {
		return string(runes[:SummaryMaxLen]) + "..."
	}

	return text
}
