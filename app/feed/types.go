package feed

import (
	"time"
)

// Raw feed types

// Entry is one publication as it appears in the feed. Missing fields are empty.
type Entry struct {
	ID        string
	Title     string
	Summary   string
	Authors   []string // Ordered as in the feed
	Published string   // Feed-native timestamp, e.g. 2024-03-05T00:00:00Z
}

// Normalized types

type Paper struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Summary       string   `json:"summary"`
	Link          string   `json:"link"`
	PublishedDate string   `json:"publishedDate"` // "March 5, 2024"

	PublishedAt time.Time `json:"-"` // Zero when the feed timestamp is unparsable
}

// Channel describes the RSS channel the papers are re-published under.
type Channel struct {
	Title       string
	Link        string
	Description string
	SelfLink    string
	Generator   string
}
