package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"

	"github.com/nexusnews/nexus/internal/registry"
)

const userAgent = "NexusNewsBot/1.0"

// Fetcher downloads and parses a single RSS/Atom document under a hard
// timeout. It holds no mutable state and is safe for concurrent use; the
// aggregator runs one Fetch per feed in parallel.
type Fetcher struct {
	client  *resty.Client
	timeout time.Duration
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", userAgent),
		timeout: timeout,
	}
}

// Fetch retrieves one feed and parses it into raw entries. Any network,
// status, or parse problem comes back as an error; the caller treats a
// failed feed as contributing zero items.
func (f *Fetcher) Fetch(ctx context.Context, src registry.FeedSource) ([]*gofeed.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.client.R().
		SetContext(ctx).
		Get(src.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed from %s: %w", src.URL, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode(), src.URL)
	}

	// gofeed sniffs RSS 2.0 vs Atom from the document itself, including
	// the media extension dialects.
	parser := gofeed.NewParser()
	feed, err := parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed from %s: %w", src.URL, err)
	}

	return feed.Items, nil
}
