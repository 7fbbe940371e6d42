package feed

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// AuthorMatcher decides whether an entry is attributed to the tracked person.
// Names are compared after accent and case folding, so "Leguéry" and
// "Leguery" are the same author.
type AuthorMatcher struct {
	targets []string
}

func NewAuthorMatcher(names ...string) *AuthorMatcher {
	targets := make([]string, 0, len(names))
	for _, name := range names {
		if folded := FoldName(name); folded != "" {
			targets = append(targets, folded)
		}
	}
	return &AuthorMatcher{targets: targets}
}

func (m *AuthorMatcher) Matches(authors []string) bool {
	for _, author := range authors {
		folded := FoldName(author)
		if folded == "" {
			continue
		}
		for _, target := range m.targets {
			if strings.Contains(folded, target) {
				return true
			}
		}
	}
	return false
}

func (m *AuthorMatcher) Run(entries []Entry) []Entry {
	matched := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if m.Matches(entry.Authors) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// FoldName strips diacritics, lowercases and collapses whitespace.
func FoldName(name string) string {
	// transform.Chain keeps state, so each call gets its own chain
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(stripAccents, name)
	if err != nil {
		folded = name
	}
	return CollapseWhitespace(strings.ToLower(folded))
}
