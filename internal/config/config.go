// Package config provides configuration loading and structs for partsearch.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/steelworks/partsearch/internal/ranking"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool                  `yaml:"debug"`
	Server  ServerConfig          `yaml:"server"`
	Catalog CatalogConfig         `yaml:"catalog"`
	Search  SearchConfig          `yaml:"search"`
	Scoring ranking.ScoringConfig `yaml:"scoring"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CatalogConfig holds catalog source settings. Exactly one of URL (remote
// CSV) or Path (local CSV, XLSX, or SQLite file) should be set; Path wins
// when both are present.
type CatalogConfig struct {
	URL  string `yaml:"url"`
	Path string `yaml:"path"`
	// Format selects the local source type: csv, xlsx, or sqlite.
	// Inferred from the Path extension when empty.
	Format string `yaml:"format"`
	// Sheet is the XLSX sheet name; first sheet when empty.
	Sheet string `yaml:"sheet"`
	// Table and column names for the SQLite source.
	Table             string `yaml:"table"`
	NumberColumn      string `yaml:"number_column"`
	DescriptionColumn string `yaml:"description_column"`

	RefreshTTLSeconds int  `yaml:"refresh_ttl_seconds"`
	TimeoutSeconds    int  `yaml:"timeout_seconds"`
	WatchFile         bool `yaml:"watch_file"`
}

// SearchConfig holds search, pagination, and analytics settings.
type SearchConfig struct {
	ResultCap          int   `yaml:"result_cap"`
	PageSize           int   `yaml:"page_size"`
	MinQueryLength     int   `yaml:"min_query_length"`
	HighlightCacheSize int   `yaml:"highlight_cache_size"`
	MaxRecentSearches  int   `yaml:"max_recent_searches"`
	EnableAnalytics    *bool `yaml:"enable_analytics"`
}

// AnalyticsEnabled reports whether analytics tracking is on; defaults to true
// when unset.
func (s *SearchConfig) AnalyticsEnabled() bool {
	if s.EnableAnalytics != nil {
		return *s.EnableAnalytics
	}
	return true
}

// Load reads and parses the config file at path, then applies environment
// overrides and defaults. An empty path skips the file and uses environment
// and defaults only.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	applyEnv(&cfg)
	ApplyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations that would produce nonsensical pagination
// or an unusable catalog source.
func (c *Config) Validate() error {
	if c.Search.ResultCap < 1 {
		return fmt.Errorf("search.result_cap must be at least 1, got %d", c.Search.ResultCap)
	}
	if c.Search.PageSize < 1 {
		return fmt.Errorf("search.page_size must be at least 1, got %d", c.Search.PageSize)
	}
	if c.Catalog.URL == "" && c.Catalog.Path == "" {
		return fmt.Errorf("catalog.url or catalog.path is required")
	}
	if c.Catalog.RefreshTTLSeconds < 0 {
		return fmt.Errorf("catalog.refresh_ttl_seconds must not be negative, got %d", c.Catalog.RefreshTTLSeconds)
	}
	return nil
}

// applyEnv overlays PARTSEARCH_* environment variables onto cfg. Environment
// values win over file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PARTSEARCH_CATALOG_URL"); v != "" {
		cfg.Catalog.URL = v
	}
	if v := os.Getenv("PARTSEARCH_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v, ok := envInt("PARTSEARCH_DATA_TTL"); ok {
		cfg.Catalog.RefreshTTLSeconds = v
	}
	if v, ok := envInt("PARTSEARCH_DATA_TIMEOUT"); ok {
		cfg.Catalog.TimeoutSeconds = v
	}
	if v, ok := envInt("PARTSEARCH_MAX_RESULTS"); ok {
		cfg.Search.ResultCap = v
	}
	if v, ok := envInt("PARTSEARCH_RESULTS_PER_PAGE"); ok {
		cfg.Search.PageSize = v
	}
	if v, ok := envInt("PARTSEARCH_MIN_QUERY_LENGTH"); ok {
		cfg.Search.MinQueryLength = v
	}
	if v, ok := envInt("PARTSEARCH_MAX_RECENT_SEARCHES"); ok {
		cfg.Search.MaxRecentSearches = v
	}
	if v, ok := envInt("PARTSEARCH_FUZZY_THRESHOLD"); ok {
		cfg.Scoring.FuzzyThreshold = v
	}
	if v := os.Getenv("PARTSEARCH_ANALYTICS"); v != "" {
		enabled := strings.EqualFold(v, "true") || v == "1"
		cfg.Search.EnableAnalytics = &enabled
	}
	if v := os.Getenv("PARTSEARCH_DEBUG"); v != "" {
		cfg.Debug = strings.EqualFold(v, "true") || v == "1"
	}
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
