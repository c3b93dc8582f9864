package api

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nexusnews/nexus/internal/config"
	"github.com/nexusnews/nexus/internal/logger"
	"github.com/nexusnews/nexus/internal/models"
	"github.com/nexusnews/nexus/internal/registry"
)

// translatedBodyMax bounds how much extracted article text is sent to the
// translation provider for the full-text view.
const translatedBodyMax = 4000

// Aggregator produces the canonical item list for one request.
type Aggregator interface {
	Aggregate(ctx context.Context, region, lang, category string) []models.NewsItem
}

// ArticleExtractor is the on-demand full-text collaborator.
type ArticleExtractor interface {
	ExtractArticle(ctx context.Context, url string) (*models.Article, error)
}

// Translator translates a single text, best-effort.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

type Handlers struct {
	config     *config.Config
	registry   *registry.Registry
	aggregator Aggregator
	scraper    ArticleExtractor
	translator Translator
	validate   *validator.Validate
}

func NewHandlers(cfg *config.Config, reg *registry.Registry, agg Aggregator, scraper ArticleExtractor, translator Translator) *Handlers {
	return &Handlers{
		config:     cfg,
		registry:   reg,
		aggregator: agg,
		scraper:    scraper,
		translator: translator,
		validate:   validator.New(),
	}
}

// HealthCheck handles GET /api/v1/health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

type newsQuery struct {
	Region   string `query:"region" validate:"omitempty,max=32"`
	Lang     string `query:"lang" validate:"omitempty,alpha,max=8"`
	Category string `query:"category" validate:"omitempty,max=32"`
}

// GetNews handles GET /api/v1/news. Missing parameters default to the
// global English top-stories view. The response is always a list;
// upstream feed failures surface only as fewer items.
func (h *Handlers) GetNews(c *fiber.Ctx) error {
	q := newsQuery{Region: "global", Lang: "en", Category: "all"}
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid query parameters: " + err.Error(),
		})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Validation failed: " + err.Error(),
		})
	}

	lang := strings.ToLower(q.Lang)
	_, needsTranslation := h.registry.Resolve(lang, q.Category)
	translated := needsTranslation && h.registry.TranslationTarget(lang) != ""

	items := h.aggregator.Aggregate(c.Context(), q.Region, lang, q.Category)

	return c.JSON(fiber.Map{
		"region":     q.Region,
		"language":   lang,
		"category":   strings.ToLower(q.Category),
		"translated": translated,
		"count":      len(items),
		"items":      items,
	})
}

// GetArticle handles GET /api/v1/article. It lazily extracts the full
// text of one story and, for languages served through translation,
// translates the extracted title and a bounded slice of the body.
func (h *Handlers) GetArticle(c *fiber.Ctx) error {
	rawURL := c.Query("url")
	if rawURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Article URL is required",
		})
	}
	lang := strings.ToLower(c.Query("lang", "en"))

	article, err := h.scraper.ExtractArticle(c.Context(), rawURL)
	if err != nil {
		logger.Get().Warn().Err(err).Str("url", rawURL).Msg("Article extraction failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to extract article",
		})
	}

	h.translateArticle(c.Context(), article, lang)

	return c.JSON(article)
}

// GetLanguages handles GET /api/v1/languages
func (h *Handlers) GetLanguages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"languages": h.registry.Languages(),
	})
}

// translateArticle is best-effort: native-language requests pass through
// untouched and provider failures keep the extracted original.
func (h *Handlers) translateArticle(ctx context.Context, article *models.Article, lang string) {
	if h.translator == nil || h.registry.HasNative(lang) {
		return
	}
	target := h.registry.TranslationTarget(lang)
	if target == "" {
		return
	}

	if out, err := h.translator.Translate(ctx, article.Title, target); err == nil && out != "" {
		article.Title = out
	}

	body := article.Content
	if runes := []rune(body); len(runes) > translatedBodyMax {
		body = string(runes[:translatedBodyMax])
	}
	if out, err := h.translator.Translate(ctx, body, target); err == nil && out != "" {
		article.Content = out
	}
}
