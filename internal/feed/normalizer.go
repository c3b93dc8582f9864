package feed

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"github.com/nexusnews/nexus/internal/models"
	"github.com/nexusnews/nexus/internal/registry"
)

// PlaceholderImage is served whenever an entry carries no image-bearing
// field; Image is never empty on a normalized item.
const PlaceholderImage = "https://images.unsplash.com/photo-1504711434969-e33886168f5c?q=80&w=1000"

const fallbackCategoryLabel = "Top Story (Fallback)"

// fallbackSummaryMax caps summaries on the lenient fallback pass.
const fallbackSummaryMax = 200

var (
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	imgSrcRegex  = regexp.MustCompile(`src="([^"]+)"`)

	negativeKeywords = []string{"dead", "kill", "crash", "war"}
	positiveKeywords = []string{"win", "success", "record", "launch"}
)

// Normalizer maps raw feed entries into canonical NewsItems. Malformed
// entries degrade field by field to defaults; the only way an entry is
// dropped is the freshness check.
type Normalizer struct {
	freshness  time.Duration
	summaryMax int
	now        func() time.Time
}

func NewNormalizer(freshness time.Duration, summaryMax int) *Normalizer {
	return &Normalizer{
		freshness:  freshness,
		summaryMax: summaryMax,
		now:        time.Now,
	}
}

// Normalize builds a NewsItem from one raw entry. The second return is
// false when the entry is older than the freshness window and was dropped.
func (n *Normalizer) Normalize(item *gofeed.Item, src registry.FeedSource, category string) (models.NewsItem, bool) {
	if item == nil {
		return models.NewsItem{}, false
	}

	now := n.now()
	published := now
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		published = *item.UpdatedParsed
	}

	age := now.Sub(published)
	if n.freshness > 0 && age > n.freshness {
		return models.NewsItem{}, false
	}

	return models.NewsItem{
		ID:        itemID(item),
		Title:     item.Title,
		Summary:   n.summary(item, n.summaryMax),
		Image:     imageURL(item),
		VideoURL:  videoURL(item),
		Category:  CategoryLabel(category),
		Source:    src.Source,
		Timestamp: timestampLabel(age),
		Sentiment: titleSentiment(item.Title),
		Bias:      models.BiasCenter,
		Link:      item.Link,
	}, true
}

// NormalizeLenient is the fallback-pass mapping: no freshness check, the
// fallback category marker, and a shorter summary. Better stale than empty.
func (n *Normalizer) NormalizeLenient(item *gofeed.Item, src registry.FeedSource) models.NewsItem {
	if item == nil {
		return models.NewsItem{}
	}

	return models.NewsItem{
		ID:        itemID(item),
		Title:     item.Title,
		Summary:   n.summary(item, fallbackSummaryMax),
		Image:     enclosureImageOrPlaceholder(item),
		Category:  fallbackCategoryLabel,
		Source:    src.Source,
		Timestamp: "Just now",
		Sentiment: models.SentimentNeutral,
		Bias:      models.BiasCenter,
		Link:      item.Link,
	}
}

// CategoryLabel renders the human-readable category: "Top Story" for the
// catch-all request, else the capitalized requested key.
func CategoryLabel(requested string) string {
	if requested == "" || strings.EqualFold(requested, "all") {
		return "Top Story"
	}
	runes := []rune(requested)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

func timestampLabel(age time.Duration) string {
	if age < time.Hour {
		return "Just now"
	}
	return fmt.Sprintf("%dh ago", int(age.Hours()))
}

// titleSentiment runs the keyword heuristic over the headline. Negative
// keywords take precedence when both sets match.
func titleSentiment(title string) models.Sentiment {
	lower := strings.ToLower(title)
	for _, kw := range negativeKeywords {
		if strings.Contains(lower, kw) {
			return models.SentimentNegative
		}
	}
	for _, kw := range positiveKeywords {
		if strings.Contains(lower, kw) {
			return models.SentimentPositive
		}
	}
	return models.SentimentNeutral
}

// summary picks the richest text field, strips markup, and caps length.
func (n *Normalizer) summary(item *gofeed.Item, max int) string {
	raw := item.Content
	if raw == "" {
		raw = item.Description
	}
	return truncate(stripHTML(raw), max)
}

func stripHTML(input string) string {
	cleaned := htmlTagRegex.ReplaceAllString(input, " ")
	cleaned = html.UnescapeString(cleaned)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return strings.TrimSpace(cleaned)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// imageURL resolves the item image. Precedence: enclosure URL, then
// media:content, then the first src="..." inside raw HTML content, then
// media:thumbnail, then the placeholder.
func imageURL(item *gofeed.Item) string {
	if u := enclosureURL(item); u != "" {
		return u
	}
	if u := mediaExtensionURL(item, "content"); u != "" {
		return u
	}
	if m := imgSrcRegex.FindStringSubmatch(item.Content); len(m) > 1 {
		return m[1]
	}
	if u := mediaExtensionURL(item, "thumbnail"); u != "" {
		return u
	}
	return PlaceholderImage
}

func enclosureImageOrPlaceholder(item *gofeed.Item) string {
	if u := enclosureURL(item); u != "" {
		return u
	}
	return PlaceholderImage
}

func enclosureURL(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}

// videoURL is set only when the enclosure declares a video MIME type.
func videoURL(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" && strings.Contains(enc.Type, "video") {
			return enc.URL
		}
	}
	return ""
}

// mediaExtensionURL digs a url out of a media:* extension element, which
// feeds express either as an attribute or as the element value.
func mediaExtensionURL(item *gofeed.Item, name string) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}
	for _, e := range media[name] {
		if u := e.Attrs["url"]; u != "" {
			return u
		}
		if e.Value != "" {
			return e.Value
		}
	}
	return ""
}

// itemID derives a response-unique id: guid, else link, else random.
func itemID(item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	if item.Link != "" {
		return item.Link
	}
	return uuid.NewString()
}
