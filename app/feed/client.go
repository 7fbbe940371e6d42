package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultMaxResults is the page size requested from the search API.
const DefaultMaxResults = 10

// Fetcher retrieves and parses the raw entries for a search query.
type Fetcher func(ctx context.Context, query string) ([]Entry, error)

// Source queries an arXiv-compatible search endpoint.
type Source struct {
	baseURL    string
	httpClient *http.Client
	parser     *Parser
	userAgent  string
	maxResults int
}

func NewSource(baseURL string, httpClient *http.Client, parser *Parser, userAgent string, maxResults int) *Source {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Source{
		baseURL:    baseURL,
		httpClient: httpClient,
		parser:     parser,
		userAgent:  userAgent,
		maxResults: maxResults,
	}
}

// FetchEntries issues exactly one request; there is no retry.
func (s *Source) FetchEntries(ctx context.Context, query string) ([]Entry, error) {
	data, err := s.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	return s.parser.Run(data)
}

func (s *Source) RequestURL(query string) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid feed URL %q: %w", s.baseURL, err)
	}

	params := u.Query()
	params.Set("search_query", query)
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(s.maxResults))
	u.RawQuery = params.Encode()

	return u.String(), nil
}

func (s *Source) fetch(ctx context.Context, query string) ([]byte, error) {
	requestURL, err := s.RequestURL(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// Client turns feed entries into the papers attributed to one author.
type Client struct {
	fetch      Fetcher
	matcher    *AuthorMatcher
	normalizer *Normalizer
}

func NewClient(fetch Fetcher, matcher *AuthorMatcher, normalizer *Normalizer) *Client {
	return &Client{
		fetch:      fetch,
		matcher:    matcher,
		normalizer: normalizer,
	}
}

// Fetch runs the whole pipeline. Network, HTTP and parse failures all come
// back as a single error and no partial result is kept.
func (c *Client) Fetch(ctx context.Context, query string) ([]Paper, error) {
	entries, err := c.fetch(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("feed unavailable: %w", err)
	}

	papers := make([]Paper, 0, len(entries))
	for _, entry := range c.matcher.Run(entries) {
		papers = append(papers, c.normalizer.Run(entry))
	}

	return papers, nil
}

// FetchAuthoredPapers never fails: errors are logged and an empty list is
// returned, so callers see the same thing for "no papers" and "feed down".
func (c *Client) FetchAuthoredPapers(ctx context.Context, query string) []Paper {
	papers, err := c.Fetch(ctx, query)
	if err != nil {
		slog.Error("Error fetching papers", "query", query, "error", err)
		return []Paper{}
	}
	return papers
}
