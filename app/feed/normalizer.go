package feed

import (
	"strings"
	"time"
)

// PublishedLayout renders dates the way the papers section shows them.
const PublishedLayout = "January 2, 2006"

const ellipsis = "..."

var publishedInputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

type Normalizer struct {
	location *time.Location
}

// NewNormalizer formats dates in loc. A nil loc means UTC.
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{location: loc}
}

func (n *Normalizer) Run(entry Entry) Paper {
	authors := make([]string, 0, len(entry.Authors))
	for _, author := range entry.Authors {
		authors = append(authors, strings.TrimSpace(author))
	}

	paper := Paper{
		Title:   CollapseWhitespace(entry.Title),
		Authors: authors,
		Summary: CollapseWhitespace(entry.Summary),
		Link:    entry.ID,
	}

	if published, ok := n.parsePublished(entry.Published); ok {
		paper.PublishedAt = published
		paper.PublishedDate = n.FormatPublished(published)
	}

	return paper
}

// FormatPublished renders t as "Month D, YYYY" in the normalizer's location; zero gives "".
func (n *Normalizer) FormatPublished(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(n.location).Format(PublishedLayout)
}

func (n *Normalizer) parsePublished(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range publishedInputLayouts {
		if t, err := time.ParseInLocation(layout, raw, n.location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CollapseWhitespace replaces every run of whitespace with a single space and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate keeps at most limit characters of s and marks the cut with an ellipsis.
func Truncate(s string, limit int) string {
	if limit < 0 {
		limit = 0
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}
