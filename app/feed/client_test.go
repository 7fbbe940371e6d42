package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(fetch Fetcher) *Client {
	return NewClient(fetch, NewAuthorMatcher("Maxence Leguéry"), NewNormalizer(time.UTC))
}

func staticFetcher(entries []Entry, err error) Fetcher {
	return func(ctx context.Context, query string) ([]Entry, error) {
		return entries, err
	}
}

func TestFetchAuthoredPapers_KeepsMatchingEntry(t *testing.T) {
	client := newTestClient(staticFetcher([]Entry{
		{
			ID:        "http://arxiv.org/abs/2403.01234v1",
			Title:     "A paper",
			Summary:   "Summary",
			Authors:   []string{"Maxence Leguéry", "Jane Doe"},
			Published: "2024-03-05T00:00:00Z",
		},
	}, nil))

	papers := client.FetchAuthoredPapers(context.Background(), "au:Maxence Leguery")

	require.Len(t, papers, 1)
	assert.Equal(t, []string{"Maxence Leguéry", "Jane Doe"}, papers[0].Authors)
	assert.Equal(t, "March 5, 2024", papers[0].PublishedDate)
}

func TestFetchAuthoredPapers_DropsOtherAuthors(t *testing.T) {
	client := newTestClient(staticFetcher([]Entry{
		{ID: "x", Title: "Not mine", Authors: []string{"John Smith"}},
	}, nil))

	papers := client.FetchAuthoredPapers(context.Background(), "au:Maxence Leguery")

	assert.NotNil(t, papers)
	assert.Empty(t, papers)
}

func TestFetchAuthoredPapers_ErrorResolvesToEmpty(t *testing.T) {
	client := newTestClient(staticFetcher(nil, errors.New("connection refused")))

	papers := client.FetchAuthoredPapers(context.Background(), "au:Maxence Leguery")

	assert.NotNil(t, papers)
	assert.Empty(t, papers)
}

func TestFetch_ReturnsCollapsedError(t *testing.T) {
	client := newTestClient(staticFetcher(nil, errors.New("connection refused")))

	papers, err := client.Fetch(context.Background(), "au:Maxence Leguery")

	assert.Nil(t, papers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feed unavailable")
}

func TestFetch_PreservesFeedOrder(t *testing.T) {
	client := newTestClient(staticFetcher([]Entry{
		{ID: "first", Authors: []string{"Maxence Leguery"}},
		{ID: "skipped", Authors: []string{"John Smith"}},
		{ID: "second", Authors: []string{"Jane Doe", "Maxence Leguéry"}},
	}, nil))

	papers, err := client.Fetch(context.Background(), "au:Maxence Leguery")
	require.NoError(t, err)
	require.Len(t, papers, 2)
	assert.Equal(t, "first", papers[0].Link)
	assert.Equal(t, "second", papers[1].Link)
}

func TestSource_FetchEntries(t *testing.T) {
	var userAgent string
	var query map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(arxivFeed))
	}))
	defer server.Close()

	source := NewSource(server.URL+"/api/query", server.Client(), NewParser(), "Portfolio/test", 0)
	entries, err := source.FetchEntries(context.Background(), "au:Maxence Leguery")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	assert.Equal(t, "Portfolio/test", userAgent)
	assert.Equal(t, []string{"au:Maxence Leguery"}, query["search_query"])
	assert.Equal(t, []string{"0"}, query["start"])
	assert.Equal(t, []string{"10"}, query["max_results"])
}

func TestSource_SingleAttemptOnServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	source := NewSource(server.URL, server.Client(), NewParser(), "", 10)
	_, err := source.FetchEntries(context.Background(), "au:Maxence Leguery")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSource_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>rate limited</body></html>"))
	}))
	defer server.Close()

	source := NewSource(server.URL, server.Client(), NewParser(), "", 10)
	_, err := source.FetchEntries(context.Background(), "au:Maxence Leguery")
	assert.Error(t, err)
}

func TestSource_RequestURL(t *testing.T) {
	source := NewSource("https://export.arxiv.org/api/query", nil, NewParser(), "", 5)

	requestURL, err := source.RequestURL("au:Maxence Leguery")
	require.NoError(t, err)
	assert.Equal(t, "https://export.arxiv.org/api/query?max_results=5&search_query=au%3AMaxence+Leguery&start=0", requestURL)

	bad := NewSource("://missing-scheme", nil, NewParser(), "", 5)
	_, err = bad.RequestURL("au:Maxence Leguery")
	assert.Error(t, err)
}

func TestEndToEnd_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close() // nothing is listening anymore

	source := NewSource(serverURL, nil, NewParser(), "", 10)
	client := newTestClient(source.FetchEntries)

	papers := client.FetchAuthoredPapers(context.Background(), "au:Maxence Leguery")
	assert.Empty(t, papers)
}

func TestEndToEnd_SamePayloadSameOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(arxivFeed))
	}))
	defer server.Close()

	source := NewSource(server.URL, server.Client(), NewParser(), "", 10)
	client := newTestClient(source.FetchEntries)

	first := client.FetchAuthoredPapers(context.Background(), "au:Maxence Leguery")
	second := client.FetchAuthoredPapers(context.Background(), "au:Maxence Leguery")

	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, "Uncertainty estimation for deep networks", first[0].Title)
	assert.Equal(t, "We study overconfident predictions.", first[0].Summary)
	assert.Equal(t, []string{"Maxence Leguéry", "Jane Doe"}, first[0].Authors)
	assert.Equal(t, "March 5, 2024", first[0].PublishedDate)
}
