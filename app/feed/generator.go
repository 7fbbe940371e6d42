package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"
)

type Generator struct {
	location *time.Location
}

// NewGenerator writes RSS dates in loc. A nil loc means UTC.
func NewGenerator(loc *time.Location) *Generator {
	if loc == nil {
		loc = time.UTC
	}
	return &Generator{location: loc}
}

func (g *Generator) Run(channel Channel, papers []Paper) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", channel.Title, 4)
	g.writeElement(&buf, "link", channel.Link, 4)
	description := channel.Description
	if description == "" {
		description = fmt.Sprintf("Papers listed on %s", channel.Link)
	}
	g.writeElement(&buf, "description", description, 4)

	if channel.SelfLink != "" {
		buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
			html.EscapeString(channel.SelfLink)))
	}

	lastBuildDate := time.Now()
	if len(papers) > 0 && !papers[0].PublishedAt.IsZero() {
		lastBuildDate = papers[0].PublishedAt
	}
	g.writeElement(&buf, "lastBuildDate", lastBuildDate.In(g.location).Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", channel.Generator, 4)

	for _, paper := range papers {
		g.writeItem(&buf, paper)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, paper Paper) {
	buf.WriteString("    <item>\n")

	if paper.Link != "" {
		buf.WriteString(fmt.Sprintf("      <guid isPermaLink=\"%t\">", g.isURL(paper.Link)))
		xml.EscapeText(buf, []byte(paper.Link))
		buf.WriteString("</guid>\n")
	}

	g.writeElement(buf, "title", paper.Title, 6)
	g.writeElement(buf, "link", paper.Link, 6)
	g.writeElement(buf, "description", paper.Summary, 6)

	if !paper.PublishedAt.IsZero() {
		g.writeElement(buf, "pubDate", paper.PublishedAt.In(g.location).Format(time.RFC1123Z), 6)
	}

	if len(paper.Authors) > 0 {
		g.writeElement(buf, "author", strings.Join(paper.Authors, ", "), 6)
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func (g *Generator) isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
