package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNativeCategory(t *testing.T) {
	reg := Default()

	feeds, translate := reg.Resolve("hi", "business")

	require.NotEmpty(t, feeds)
	assert.False(t, translate)
	assert.Equal(t, "Aaj Tak Biz", feeds[0].Source)
}

func TestResolveNativeFallsBackToAll(t *testing.T) {
	reg := Default()

	feeds, translate := reg.Resolve("pa", "business")

	require.NotEmpty(t, feeds)
	assert.False(t, translate)
	assert.Equal(t, "BBC Punjabi", feeds[0].Source)
}

func TestResolveCategoryCaseInsensitive(t *testing.T) {
	reg := Default()

	upper, _ := reg.Resolve("en", "TECH")
	lower, _ := reg.Resolve("en", "tech")

	assert.Equal(t, lower, upper)
}

func TestResolveUnknownCategoryUsesAll(t *testing.T) {
	reg := Default()

	feeds, _ := reg.Resolve("en", "obscure-nonexistent")
	all, _ := reg.Resolve("en", "all")

	assert.Equal(t, all, feeds)
}

func TestResolveEmptyCategoryUsesAll(t *testing.T) {
	reg := Default()

	feeds, _ := reg.Resolve("en", "")
	all, _ := reg.Resolve("en", "all")

	assert.Equal(t, all, feeds)
}

func TestResolveUnmappedLanguageSignalsTranslation(t *testing.T) {
	reg := Default()

	feeds, translate := reg.Resolve("es", "tech")
	english, _ := reg.Resolve("en", "tech")

	assert.True(t, translate)
	assert.Equal(t, english, feeds)
	assert.Equal(t, "es", reg.TranslationTarget("es"))
}

func TestResolveEnglishNeedsNoTranslation(t *testing.T) {
	reg := Default()

	_, translate := reg.Resolve("en", "all")

	assert.False(t, translate)
}

func TestTranslationTargetUnknownLanguage(t *testing.T) {
	reg := Default()

	assert.Empty(t, reg.TranslationTarget("xx"))
}

func TestFallbackSet(t *testing.T) {
	reg := Default()

	hindi := reg.FallbackSet("hi")
	require.NotEmpty(t, hindi)
	assert.Equal(t, "BBC Hindi", hindi[0].Source)

	// No native registry for Spanish: fall back to English top stories.
	spanish := reg.FallbackSet("es")
	require.NotEmpty(t, spanish)
	assert.Equal(t, "BBC", spanish[0].Source)
}

func TestHasNative(t *testing.T) {
	reg := Default()

	assert.True(t, reg.HasNative("ta"))
	assert.False(t, reg.HasNative("es"))
}

func TestLanguagesListsNativeAndTranslated(t *testing.T) {
	reg := Default()

	langs := reg.Languages()
	require.NotEmpty(t, langs)

	byCode := make(map[string]bool, len(langs))
	for _, l := range langs {
		byCode[l.Code] = l.Native
	}

	native, ok := byCode["hi"]
	require.True(t, ok)
	assert.True(t, native)

	native, ok = byCode["es"]
	require.True(t, ok)
	assert.False(t, native)
}
