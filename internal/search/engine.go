package search

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/steelworks/partsearch/internal/analytics"
	"github.com/steelworks/partsearch/internal/config"
	"github.com/steelworks/partsearch/internal/models"
	"github.com/steelworks/partsearch/internal/ranking"
)

// Catalog supplies the cleaned, deduplicated catalog snapshot. The snapshot
// must be immutable for the duration of a search; the engine never mutates
// or caches it beyond one call.
type Catalog interface {
	Records() []models.Part
}

// Engine runs ranked search over a catalog snapshot: tiered classification,
// keyword scoring, fuzzy fallback, stable ordering, pagination, and
// highlighting. Each search is a pure computation; the engine is safe for
// concurrent use.
type Engine struct {
	catalog     Catalog
	ranker      *ranking.Ranker
	highlighter *Highlighter
	tracker     *analytics.Tracker
	config      *config.SearchConfig
	logger      *zap.Logger
}

// NewEngine creates an engine. scoring may be nil for defaults; logger and
// tracker are optional.
func NewEngine(catalog Catalog, cfg *config.SearchConfig, scoring *ranking.ScoringConfig, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	ranker := ranking.NewRanker(scoring)
	return &Engine{
		catalog:     catalog,
		ranker:      ranker,
		highlighter: NewHighlighter(ranker.Config().MinTokenLength, cfg.HighlightCacheSize),
		config:      cfg,
		logger:      logger,
	}
}

// WithTracker attaches an analytics tracker.
func (e *Engine) WithTracker(t *analytics.Tracker) *Engine {
	e.tracker = t
	return e
}

// Highlighter returns the engine's highlighter, for callers that render
// additional strings.
func (e *Engine) Highlighter() *Highlighter {
	return e.highlighter
}

// Search ranks the catalog against query and returns the requested page.
// Empty queries, queries below the minimum length, and empty catalogs yield
// an empty response, not an error. Invalid pagination settings are a
// configuration error and fail fast.
func (e *Engine) Search(query string, page int) (*models.SearchResponse, error) {
	if e.config.ResultCap <= 0 {
		return nil, fmt.Errorf("result cap must be positive, got %d", e.config.ResultCap)
	}
	if e.config.PageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", e.config.PageSize)
	}

	start := time.Now()
	q := strings.TrimSpace(query)

	resp := &models.SearchResponse{
		Results:     []*models.SearchResult{},
		CurrentPage: page,
		Query:       q,
		Showing:     "0 results",
	}
	if q == "" || len(q) < e.config.MinQueryLength {
		return resp, nil
	}

	parts := e.catalog.Records()
	if len(parts) == 0 {
		e.logger.Warn("search against empty catalog", zap.String("query", q))
		return resp, nil
	}

	matches, err := e.ranker.Rank(q, parts, e.config.ResultCap)
	if err != nil {
		return nil, err
	}

	items, currentPage, totalPages, err := Paginate(matches, page, e.config.PageSize)
	if err != nil {
		return nil, err
	}

	resp.TotalResults = len(matches)
	resp.TotalPages = totalPages
	resp.CurrentPage = currentPage

	offset := (currentPage - 1) * e.config.PageSize
	for i, m := range items {
		resp.Results = append(resp.Results, &models.SearchResult{
			Part:                   m.Part,
			Score:                  m.Score,
			Rank:                   offset + i + 1,
			HighlightedNumber:      e.highlighter.Highlight(m.Part.Number, q),
			HighlightedDescription: e.highlighter.Highlight(m.Part.Description, q),
		})
	}
	if len(items) > 0 {
		resp.Showing = fmt.Sprintf("%d-%d of %d", offset+1, offset+len(items), len(matches))
	}

	took := time.Since(start)
	resp.QueryTime = took.Milliseconds()
	if e.tracker != nil {
		e.tracker.Record(q, len(matches), took)
	}
	e.logger.Debug("search completed",
		zap.String("query", q),
		zap.Int("total_results", len(matches)),
		zap.Int("page", currentPage),
		zap.Duration("took", took),
	)
	return resp, nil
}

// Suggestions returns popular-query suggestions for a partial input, or nil
// when analytics is not attached.
func (e *Engine) Suggestions(partial string, limit int) []string {
	if e.tracker == nil {
		return nil
	}
	return e.tracker.Suggestions(partial, limit)
}

// RecentSearches returns the configured number of recent successful queries,
// or nil when analytics is not attached.
func (e *Engine) RecentSearches() []string {
	if e.tracker == nil {
		return nil
	}
	limit := e.config.MaxRecentSearches
	if limit <= 0 {
		limit = 10
	}
	return e.tracker.RecentSearches(limit)
}
