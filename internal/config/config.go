package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`

	// Aggregation pipeline
	FeedTimeout     time.Duration `json:"feed_timeout"`      // hard per-feed fetch timeout
	ItemsPerFeed    int           `json:"items_per_feed"`    // normalization cap per feed
	FreshnessWindow time.Duration `json:"freshness_window"`  // entries older than this are dropped
	SummaryMaxChars int           `json:"summary_max_chars"` // summary cap after HTML strip

	// Translation stage
	TranslateMaxItems    int `json:"translate_max_items"`    // items translated per response
	TranslatePrefixChars int `json:"translate_prefix_chars"` // summary prefix sent to the provider

	// Redis (translation memo cache)
	RedisURL    string        `json:"redis_url"`
	RedisPrefix string        `json:"redis_prefix"`
	CacheTTL    time.Duration `json:"cache_ttl"`

	// Logging
	LogLevel string `json:"log_level"`
}

// Load loads configuration from environment variables and validates it
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		// Server configuration
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),

		// Aggregation pipeline
		FeedTimeout:     getEnvAsDuration("FEED_TIMEOUT", 4*time.Second),
		ItemsPerFeed:    getEnvAsInt("ITEMS_PER_FEED", 15),
		FreshnessWindow: getEnvAsDuration("FRESHNESS_WINDOW", 36*time.Hour),
		SummaryMaxChars: getEnvAsInt("SUMMARY_MAX_CHARS", 800),

		// Translation stage
		TranslateMaxItems:    getEnvAsInt("TRANSLATE_MAX_ITEMS", 10),
		TranslatePrefixChars: getEnvAsInt("TRANSLATE_PREFIX_CHARS", 120),

		// Redis
		RedisURL:    getEnv("REDIS_URL", ""),
		RedisPrefix: getEnv("REDIS_PREFIX", "nexus:tr:"),
		CacheTTL:    getEnvAsDuration("CACHE_TTL", 24*time.Hour),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// Validate normalizes out-of-range values rather than failing startup;
// the pipeline caps must stay positive.
func (c *Config) Validate() error {
	if c.ItemsPerFeed <= 0 {
		c.ItemsPerFeed = 15
	}
	if c.SummaryMaxChars <= 0 {
		c.SummaryMaxChars = 800
	}
	if c.TranslateMaxItems < 0 {
		c.TranslateMaxItems = 0
	}
	return nil
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
