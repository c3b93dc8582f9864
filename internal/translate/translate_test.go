package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusnews/nexus/internal/cache"
	"github.com/nexusnews/nexus/internal/models"
)

// fakeProvider mimics the gtx endpoint: it echoes the query back with a
// target-language marker, and fails for any text containing failWhen.
type fakeProvider struct {
	srv      *httptest.Server
	hits     atomic.Int64
	failWhen string

	mu       sync.Mutex
	received []string
}

func newFakeProvider(t *testing.T, failWhen string) *fakeProvider {
	t.Helper()
	p := &fakeProvider{failWhen: failWhen}
	p.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.hits.Add(1)
		q := r.URL.Query().Get("q")
		target := r.URL.Query().Get("tl")

		p.mu.Lock()
		p.received = append(p.received, q)
		p.mu.Unlock()

		if p.failWhen != "" && strings.Contains(q, p.failWhen) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		payload := []interface{}{
			[]interface{}{
				[]interface{}{fmt.Sprintf("[%s] %s", target, q), q},
			},
			nil,
			"en",
		}
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(p.srv.Close)
	return p
}

func TestTranslateSuccess(t *testing.T) {
	provider := newFakeProvider(t, "")
	tr := New(WithEndpoint(provider.srv.URL))

	out, err := tr.Translate(context.Background(), "hello world", "es")

	require.NoError(t, err)
	assert.Equal(t, "[es] hello world", out)
}

func TestTranslateEmptyTextSkipsProvider(t *testing.T) {
	provider := newFakeProvider(t, "")
	tr := New(WithEndpoint(provider.srv.URL))

	out, err := tr.Translate(context.Background(), "   ", "es")

	require.NoError(t, err)
	assert.Equal(t, "   ", out)
	assert.Zero(t, provider.hits.Load())
}

func TestTranslateProviderFailureIsError(t *testing.T) {
	provider := newFakeProvider(t, "boom")
	tr := New(WithEndpoint(provider.srv.URL))

	_, err := tr.Translate(context.Background(), "boom town", "es")

	assert.Error(t, err)
}

func TestTranslateItemsIsolation(t *testing.T) {
	provider := newFakeProvider(t, "poison")
	tr := New(WithEndpoint(provider.srv.URL))

	items := make([]models.NewsItem, 10)
	for i := range items {
		items[i] = models.NewsItem{
			ID:      fmt.Sprintf("item-%d", i),
			Title:   fmt.Sprintf("Headline %d", i),
			Summary: fmt.Sprintf("Summary %d", i),
		}
	}
	// Item #3 trips the provider for both fields.
	items[3].Title = "poison headline"
	items[3].Summary = "poison summary"

	out := tr.TranslateItems(context.Background(), items, "es")

	require.Len(t, out, 10)
	assert.Equal(t, "poison headline", out[3].Title)
	assert.Equal(t, "poison summary", out[3].Summary)
	for i, item := range out {
		if i == 3 {
			continue
		}
		assert.Equal(t, fmt.Sprintf("[es] Headline %d", i), item.Title, "item %d", i)
		assert.Equal(t, fmt.Sprintf("[es] Summary %d", i), item.Summary, "item %d", i)
	}
}

func TestTranslateItemsBoundsBatch(t *testing.T) {
	provider := newFakeProvider(t, "")
	tr := New(WithEndpoint(provider.srv.URL), WithLimits(10, 120))

	items := make([]models.NewsItem, 15)
	for i := range items {
		items[i] = models.NewsItem{Title: fmt.Sprintf("Headline %d", i)}
	}

	out := tr.TranslateItems(context.Background(), items, "es")

	require.Len(t, out, 15)
	for i := 0; i < 10; i++ {
		assert.True(t, strings.HasPrefix(out[i].Title, "[es] "), "item %d should be translated", i)
	}
	for i := 10; i < 15; i++ {
		assert.Equal(t, fmt.Sprintf("Headline %d", i), out[i].Title, "item %d should be untouched", i)
	}
}

func TestTranslateItemsSummaryPrefixBound(t *testing.T) {
	provider := newFakeProvider(t, "")
	tr := New(WithEndpoint(provider.srv.URL), WithLimits(10, 120))

	items := []models.NewsItem{{
		Title:   "Headline",
		Summary: strings.Repeat("x", 500),
	}}

	tr.TranslateItems(context.Background(), items, "es")

	provider.mu.Lock()
	defer provider.mu.Unlock()
	for _, q := range provider.received {
		assert.LessOrEqual(t, len([]rune(q)), 120)
	}
}

func TestTranslateMemoization(t *testing.T) {
	provider := newFakeProvider(t, "")
	memo := cache.NewMemoryCache()
	tr := New(WithEndpoint(provider.srv.URL), WithCache(memo, time.Minute))

	first, err := tr.Translate(context.Background(), "hello", "es")
	require.NoError(t, err)
	second, err := tr.Translate(context.Background(), "hello", "es")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), provider.hits.Load())

	// A different target language is a different memo entry.
	_, err = tr.Translate(context.Background(), "hello", "hi")
	require.NoError(t, err)
	assert.Equal(t, int64(2), provider.hits.Load())
}

func TestParseResponseConcatenatesSegments(t *testing.T) {
	body := []byte(`[[["hola ","hello ",null],["mundo","world",null]],null,"en"]`)

	out, err := parseResponse(body)

	require.NoError(t, err)
	assert.Equal(t, "hola mundo", out)
}

func TestParseResponseRejectsGarbage(t *testing.T) {
	_, err := parseResponse([]byte(`{"not":"an array"}`))
	assert.Error(t, err)

	_, err = parseResponse([]byte(`[]`))
	assert.Error(t, err)
}
