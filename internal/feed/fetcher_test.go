package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusnews/nexus/internal/registry"
)

// rssDocument renders a minimal RSS 2.0 feed; ages are relative to now.
func rssDocument(ages ...time.Duration) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>Test Feed</title>`)
	for i, age := range ages {
		pub := time.Now().Add(-age).Format(time.RFC1123Z)
		fmt.Fprintf(&b, `<item><title>Story %d</title><link>https://example.com/story-%d</link><guid>guid-%d</guid><description>Body %d</description><pubDate>%s</pubDate></item>`, i, i, i, i, pub)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func feedServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchParsesRSS(t *testing.T) {
	srv := feedServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssDocument(time.Hour, 2*time.Hour))
	})

	f := NewFetcher(2 * time.Second)
	items, err := f.Fetch(context.Background(), registry.FeedSource{URL: srv.URL, Source: "Test"})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Story 0", items[0].Title)
	assert.Equal(t, "guid-1", items[1].GUID)
}

func TestFetchParsesAtom(t *testing.T) {
	atom := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Feed</title>
  <entry>
    <title>Atom Story</title>
    <link href="https://example.com/atom-story"/>
    <id>atom-1</id>
    <updated>` + time.Now().Format(time.RFC3339) + `</updated>
    <summary>Atom body</summary>
  </entry>
</feed>`

	srv := feedServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, atom)
	})

	f := NewFetcher(2 * time.Second)
	items, err := f.Fetch(context.Background(), registry.FeedSource{URL: srv.URL, Source: "Atom"})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Atom Story", items[0].Title)
}

func TestFetchNon200IsError(t *testing.T) {
	srv := feedServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	f := NewFetcher(2 * time.Second)
	_, err := f.Fetch(context.Background(), registry.FeedSource{URL: srv.URL, Source: "Broken"})

	assert.Error(t, err)
}

func TestFetchMalformedDocumentIsError(t *testing.T) {
	srv := feedServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not a feed")
	})

	f := NewFetcher(2 * time.Second)
	_, err := f.Fetch(context.Background(), registry.FeedSource{URL: srv.URL, Source: "Garbage"})

	assert.Error(t, err)
}

func TestFetchHonorsTimeout(t *testing.T) {
	srv := feedServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		fmt.Fprint(w, rssDocument(time.Hour))
	})

	f := NewFetcher(50 * time.Millisecond)

	start := time.Now()
	_, err := f.Fetch(context.Background(), registry.FeedSource{URL: srv.URL, Source: "Slow"})
	elapsed := time.Since(start)

	assert.Error(t, err)
	assert.Less(t, elapsed, 400*time.Millisecond)
}
