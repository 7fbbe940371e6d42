package feed

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run returns the entries of an Atom payload in feed order.
func (p *Parser) Run(data []byte) ([]Entry, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		entries = append(entries, p.toEntry(item))
	}

	return entries, nil
}

func (p *Parser) toEntry(item *gofeed.Item) Entry {
	return Entry{
		ID:        item.GUID,
		Title:     item.Title,
		Summary:   item.Description,
		Authors:   p.extractAuthors(item),
		Published: item.Published,
	}
}

func (p *Parser) extractAuthors(item *gofeed.Item) []string {
	var authors []string

	if len(item.Authors) > 0 {
		for _, author := range item.Authors {
			if author == nil {
				continue
			}
			if name := strings.TrimSpace(author.Name); name != "" {
				authors = append(authors, name)
			}
		}
	} else if item.Author != nil {
		if name := strings.TrimSpace(item.Author.Name); name != "" {
			authors = append(authors, name)
		}
	}

	return authors
}
