package feed

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/nexusnews/nexus/internal/logger"
	"github.com/nexusnews/nexus/internal/models"
	"github.com/nexusnews/nexus/internal/registry"
)

// Translator is the best-effort translation stage. Implementations must
// isolate per-item failures: an item whose translation fails keeps its
// original-language text.
type Translator interface {
	TranslateItems(ctx context.Context, items []models.NewsItem, target string) []models.NewsItem
}

// Aggregator drives one aggregation request end to end: registry lookup,
// concurrent fan-out fetch, normalization, empty-category fallback,
// translation, shuffle. It never returns an error for expected failure
// modes; a degraded request simply yields fewer (possibly zero) items.
type Aggregator struct {
	registry     *registry.Registry
	fetcher      *Fetcher
	normalizer   *Normalizer
	translator   Translator
	itemsPerFeed int

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

func NewAggregator(reg *registry.Registry, fetcher *Fetcher, normalizer *Normalizer, translator Translator, itemsPerFeed int) *Aggregator {
	return &Aggregator{
		registry:     reg,
		fetcher:      fetcher,
		normalizer:   normalizer,
		translator:   translator,
		itemsPerFeed: itemsPerFeed,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand replaces the shuffle source. Tests pin a seed here to make the
// final ordering deterministic.
func (a *Aggregator) WithRand(r *rand.Rand) *Aggregator {
	a.mu.Lock()
	a.rng = r
	a.mu.Unlock()
	return a
}

// Aggregate returns the shuffled canonical items for one request. The
// region parameter is accepted for labeling and future routing; feed
// selection is driven by language and category.
func (a *Aggregator) Aggregate(ctx context.Context, region, lang, category string) []models.NewsItem {
	log := logger.Get()
	start := time.Now()

	sources, needsTranslation := a.registry.Resolve(lang, category)
	log.Info().
		Str("region", region).
		Str("language", lang).
		Str("category", category).
		Int("feeds", len(sources)).
		Bool("needs_translation", needsTranslation).
		Msg("Aggregating feeds")

	items := a.collect(ctx, sources, category, false)

	// A category with zero fresh items falls back to the language's top
	// stories, with the freshness filter off.
	if len(items) == 0 && !strings.EqualFold(category, "all") {
		fallback := a.registry.FallbackSet(lang)
		log.Warn().
			Str("category", category).
			Int("feeds", len(fallback)).
			Msg("Category yielded no items, falling back to top stories")
		items = a.collect(ctx, fallback, category, true)
	}

	if needsTranslation && a.translator != nil {
		if target := a.registry.TranslationTarget(lang); target != "" {
			items = a.translator.TranslateItems(ctx, items, target)
		}
	}

	a.shuffle(items)

	log.Info().
		Int("items", len(items)).
		Dur("duration", time.Since(start)).
		Msg("Aggregation complete")
	return items
}

// collect fans out one fetch per source and joins every result, success or
// failure alike. A failed or slow feed contributes zero items and never
// blocks or cancels its siblings; each goroutine writes only its own
// result before the merge.
func (a *Aggregator) collect(ctx context.Context, sources []registry.FeedSource, category string, lenient bool) []models.NewsItem {
	type result struct {
		source string
		items  []models.NewsItem
	}

	results := make(chan result, len(sources))

	for _, src := range sources {
		go func(src registry.FeedSource) {
			raw, err := a.fetcher.Fetch(ctx, src)
			if err != nil {
				logger.Get().Warn().
					Err(err).
					Str("source", src.Source).
					Msg("Feed fetch failed")
				results <- result{source: src.Source}
				return
			}

			if len(raw) > a.itemsPerFeed {
				raw = raw[:a.itemsPerFeed]
			}

			items := make([]models.NewsItem, 0, len(raw))
			for _, entry := range raw {
				if lenient {
					items = append(items, a.normalizer.NormalizeLenient(entry, src))
					continue
				}
				item, ok := a.normalizer.Normalize(entry, src, category)
				if !ok {
					continue
				}
				items = append(items, item)
			}
			results <- result{source: src.Source, items: items}
		}(src)
	}

	var all []models.NewsItem
	for range sources {
		r := <-results
		all = append(all, r.items...)
	}
	return all
}

// shuffle randomizes the final order for feed diversity. Kept as the last
// pure step so tests can substitute a seeded source.
func (a *Aggregator) shuffle(items []models.NewsItem) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
