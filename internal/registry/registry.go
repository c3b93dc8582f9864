package registry

import (
	"sort"
	"strings"
)

// FeedSource identifies one upstream RSS/Atom document and the label its
// items carry.
type FeedSource struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

// FeedSet maps a category key to the ordered feeds serving it. Every set
// carries an "all" entry used when a category has no dedicated feeds.
type FeedSet map[string][]FeedSource

// Language describes one language the service can serve, either from a
// native feed set or through machine translation of the English feeds.
type Language struct {
	Code   string `json:"code"`
	Native bool   `json:"native"`
}

// Registry is the immutable feed configuration, built once at startup and
// shared by reference. Lookups do no I/O and cannot fail.
type Registry struct {
	native  map[string]FeedSet
	targets map[string]string
}

// New builds a Registry from native feed sets and translation target codes.
// The native map must contain an "en" set; it doubles as the default for
// languages without native feeds.
func New(native map[string]FeedSet, targets map[string]string) *Registry {
	return &Registry{native: native, targets: targets}
}

// Default returns the built-in registry: English plus nine native-language
// feed sets.
func Default() *Registry {
	return New(map[string]FeedSet{
		"en": englishFeeds,
		"hi": hindiFeeds,
		"ta": tamilFeeds,
		"te": teluguFeeds,
		"kn": kannadaFeeds,
		"ml": malayalamFeeds,
		"bn": bengaliFeeds,
		"mr": marathiFeeds,
		"gu": gujaratiFeeds,
		"pa": punjabiFeeds,
	}, translationTargets)
}

// Resolve returns the ordered feed list for a language/category pair and
// whether the results will need machine translation. A native registry
// serves its own category, falling back to its "all" entry; languages
// without a native registry are served from the English set and flagged
// for translation.
func (r *Registry) Resolve(lang, category string) ([]FeedSource, bool) {
	key := normalizeCategory(category)

	if set, ok := r.native[lang]; ok {
		if feeds, ok := set[key]; ok && len(feeds) > 0 {
			return feeds, false
		}
		return set["all"], false
	}

	set := r.native["en"]
	feeds, ok := set[key]
	if !ok || len(feeds) == 0 {
		feeds = set["all"]
	}
	return feeds, true
}

// FallbackSet returns the "all" feeds used when a category produced zero
// items: the language's own top stories when a native registry exists,
// else the English top stories.
func (r *Registry) FallbackSet(lang string) []FeedSource {
	if set, ok := r.native[lang]; ok {
		return set["all"]
	}
	return r.native["en"]["all"]
}

// HasNative reports whether feeds authored in lang exist.
func (r *Registry) HasNative(lang string) bool {
	_, ok := r.native[lang]
	return ok
}

// TranslationTarget maps a UI language code to the provider's code, or ""
// when the language is unknown to the translation provider.
func (r *Registry) TranslationTarget(lang string) string {
	return r.targets[lang]
}

// Languages lists every language code the service understands, sorted by
// code, with native feed availability marked.
func (r *Registry) Languages() []Language {
	seen := make(map[string]bool, len(r.native)+len(r.targets))
	for code := range r.native {
		seen[code] = true
	}
	for code := range r.targets {
		if !seen[code] {
			seen[code] = false
		}
	}

	langs := make([]Language, 0, len(seen))
	for code, native := range seen {
		langs = append(langs, Language{Code: code, Native: native})
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Code < langs[j].Code })
	return langs
}

func normalizeCategory(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if key == "" {
		return "all"
	}
	return key
}
