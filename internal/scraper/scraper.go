package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/nexusnews/nexus/internal/models"
)

// minContentChars is the point at which a selector's harvest counts as a
// real article body rather than boilerplate.
const minContentChars = 200

// minParagraphChars filters out nav links, captions, and share buttons.
const minParagraphChars = 40

// contentSelectors is the extraction cascade, most specific first.
var contentSelectors = []string{
	"article p",
	"[itemprop='articleBody'] p",
	".article-body p",
	".story-body p",
	"main p",
}

// Scraper extracts readable article text from a news page on demand. It
// is consumed lazily when a reader opens an item's full-text view and is
// never part of the aggregation pass.
type Scraper struct {
	client *resty.Client
}

func New() *Scraper {
	return &Scraper{
		client: resty.New().
			SetTimeout(15 * time.Second).
			SetHeader("User-Agent", "Mozilla/5.0 (compatible; NexusNewsBot/1.0)"),
	}
}

// ExtractArticle downloads the page and harvests its title and body text.
func (s *Scraper) ExtractArticle(ctx context.Context, pageURL string) (*models.Article, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("invalid article url %q", pageURL)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load page: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode(), pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	content := extractContent(doc)
	if content == "" {
		return nil, errors.New("no readable content found")
	}

	return &models.Article{
		Title:   extractTitle(doc),
		Content: content,
		URL:     pageURL,
	}, nil
}

// extractContent walks the selector cascade and settles for a bare <p>
// sweep when no structured container yields enough text.
func extractContent(doc *goquery.Document) string {
	for _, sel := range contentSelectors {
		if text := collectParagraphs(doc, sel); len(text) >= minContentChars {
			return text
		}
	}
	return collectParagraphs(doc, "p")
}

func collectParagraphs(doc *goquery.Document, selector string) string {
	var parts []string
	doc.Find(selector).Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if len(text) >= minParagraphChars {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, "\n\n")
}

func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
