package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nexusnews/nexus/internal/cache"
	"github.com/nexusnews/nexus/internal/logger"
	"github.com/nexusnews/nexus/internal/models"
	"github.com/nexusnews/nexus/internal/utils"
)

// Public Google Translate endpoint (no API key). Treated as unreliable:
// every call is best-effort and failures leave the original text in place.
const defaultEndpoint = "https://translate.googleapis.com/translate_a/single"

const (
	defaultMaxItems    = 10
	defaultPrefixChars = 120
)

// Translator calls the translation provider with per-item failure
// isolation and memoizes results through an optional TranslationCache.
type Translator struct {
	client   *resty.Client
	endpoint string

	cache    cache.TranslationCache
	cacheTTL time.Duration

	maxItems    int // items translated per batch
	prefixChars int // summary prefix sent to the provider
}

type Option func(*Translator)

// WithEndpoint overrides the provider URL; tests point this at a fake.
func WithEndpoint(url string) Option {
	return func(t *Translator) { t.endpoint = url }
}

// WithCache memoizes translations under the given TTL.
func WithCache(c cache.TranslationCache, ttl time.Duration) Option {
	return func(t *Translator) {
		t.cache = c
		t.cacheTTL = ttl
	}
}

// WithLimits bounds the batch size and the summary prefix length.
func WithLimits(maxItems, prefixChars int) Option {
	return func(t *Translator) {
		if maxItems > 0 {
			t.maxItems = maxItems
		}
		if prefixChars > 0 {
			t.prefixChars = prefixChars
		}
	}
}

func New(opts ...Option) *Translator {
	t := &Translator{
		client:      resty.New().SetTimeout(15 * time.Second),
		endpoint:    defaultEndpoint,
		maxItems:    defaultMaxItems,
		prefixChars: defaultPrefixChars,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate translates one text into the target language. The cache is
// consulted first; cache errors degrade to a provider call.
func (t *Translator) Translate(ctx context.Context, text, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	key := utils.Hash(text + "|" + target)
	if t.cache != nil {
		if val, ok, err := t.cache.Get(ctx, key); err == nil && ok {
			return val, nil
		}
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     "auto",
			"tl":     target,
			"dt":     "t",
			"q":      text,
		}).
		Get(t.endpoint)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode())
	}

	out, err := parseResponse(resp.Body())
	if err != nil {
		return "", fmt.Errorf("failed to parse translate response: %w", err)
	}
	if out == "" {
		return "", errors.New("empty translation")
	}

	if t.cache != nil {
		if err := t.cache.Set(ctx, key, out, t.cacheTTL); err != nil {
			logger.Get().Warn().Err(err).Msg("Failed to cache translation")
		}
	}
	return out, nil
}

// TranslateItems translates the leading items' title and a bounded summary
// prefix, in place. Items run concurrently and each field call is
// isolated: a provider failure for one item leaves that field untouched
// and never affects siblings.
func (t *Translator) TranslateItems(ctx context.Context, items []models.NewsItem, target string) []models.NewsItem {
	n := t.maxItems
	if len(items) < n {
		n = len(items)
	}
	if n == 0 || target == "" {
		return items
	}

	log := logger.Get()
	start := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(item *models.NewsItem) {
			defer wg.Done()

			if out, err := t.Translate(ctx, item.Title, target); err == nil {
				item.Title = out
			} else {
				log.Debug().Err(err).Str("id", item.ID).Msg("Title translation failed")
			}

			prefix := summaryPrefix(item.Summary, t.prefixChars)
			if prefix == "" {
				return
			}
			if out, err := t.Translate(ctx, prefix, target); err == nil {
				item.Summary = out
			} else {
				log.Debug().Err(err).Str("id", item.ID).Msg("Summary translation failed")
			}
		}(&items[i])
	}
	wg.Wait()

	log.Info().
		Int("translated", n).
		Str("target", target).
		Dur("duration", time.Since(start)).
		Msg("Translation stage complete")
	return items
}

// summaryPrefix trades fidelity for latency: only the leading characters
// of long summaries are sent to the provider.
func summaryPrefix(summary string, max int) string {
	runes := []rune(summary)
	if len(runes) <= max {
		return summary
	}
	return string(runes[:max])
}

// parseResponse unpacks the provider's nested-array payload:
// [[["translated","original",...], ...], ...]
func parseResponse(body []byte) (string, error) {
	var response []interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response) == 0 {
		return "", errors.New("empty response")
	}

	segments, ok := response[0].([]interface{})
	if !ok {
		return "", errors.New("unexpected response format")
	}

	var result strings.Builder
	for _, segment := range segments {
		parts, ok := segment.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if translated, ok := parts[0].(string); ok {
			result.WriteString(translated)
		}
	}
	return result.String(), nil
}
