package profile

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// Profile pages arrive as full captured DOM snapshots, most of which is layout
// chrome. Sanitizing and flattening to visible text before prompting keeps the
// extraction prompt focused on content.

var (
	htmlPolicy = bluemonday.UGCPolicy()

	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n{3,}`)
)

// CleanProfileHTML strips scripts, styles and markup noise from captured
// profile HTML and returns the visible text with whitespace collapsed.
// Empty or whitespace-only input yields an empty string.
func CleanProfileHTML(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	sanitized := htmlPolicy.Sanitize(raw)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sanitized))
	if err != nil {
		return collapseWhitespace(sanitized)
	}
	doc.Find("script, style, noscript").Remove()

	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = spaceRuns.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")
	s = newlineRuns.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}
