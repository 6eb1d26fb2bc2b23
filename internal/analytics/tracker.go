// Package analytics tracks search patterns: history, popular queries,
// no-result queries, and timing metrics. All state is in-memory, bounded,
// and guarded by a mutex.
package analytics

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	maxHistory         = 1000
	maxNoResultQueries = 100
	maxTimings         = 100
	// Queries this short are too noisy to count toward popularity.
	minPopularQueryLen = 3
)

// Entry is one logged search.
type Entry struct {
	ID          string        `json:"id"`
	Query       string        `json:"query"`
	ResultCount int           `json:"result_count"`
	Duration    time.Duration `json:"-"`
	At          time.Time     `json:"timestamp"`
}

// QueryCount pairs a query with how often it was searched.
type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// Summary aggregates tracker state for status reporting.
type Summary struct {
	TotalSearches   int          `json:"total_searches"`
	AvgSearchTimeMs float64      `json:"avg_search_time_ms"`
	TopQueries      []QueryCount `json:"top_queries"`
	NoResultRate    float64      `json:"no_result_rate"`
}

// Tracker records searches and answers suggestion/history queries.
// Safe for concurrent use.
type Tracker struct {
	mu            sync.Mutex
	totalSearches int
	history       []Entry
	popular       map[string]int
	noResult      []string
	timings       []time.Duration
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{popular: make(map[string]int)}
}

// Record logs one search and its outcome.
func (t *Tracker) Record(query string, resultCount int, took time.Duration) {
	query = strings.TrimSpace(query)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalSearches++
	t.history = append(t.history, Entry{
		ID:          uuid.NewString(),
		Query:       query,
		ResultCount: resultCount,
		Duration:    took,
		At:          time.Now(),
	})
	if len(t.history) > maxHistory {
		t.history = t.history[len(t.history)-maxHistory:]
	}

	if len(query) >= minPopularQueryLen {
		t.popular[strings.ToLower(query)]++
	}

	if resultCount == 0 && query != "" {
		t.noResult = append(t.noResult, query)
		if len(t.noResult) > maxNoResultQueries {
			t.noResult = t.noResult[len(t.noResult)-maxNoResultQueries:]
		}
	}

	t.timings = append(t.timings, took)
	if len(t.timings) > maxTimings {
		t.timings = t.timings[len(t.timings)-maxTimings:]
	}
}

// Suggestions returns up to limit popular queries containing partial
// (case-insensitive), most frequent first. Partials shorter than two
// characters return nothing.
func (t *Tracker) Suggestions(partial string, limit int) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))
	if len(partial) < 2 || limit <= 0 {
		return nil
	}

	t.mu.Lock()
	ranked := t.popularLocked()
	t.mu.Unlock()

	var out []string
	for _, qc := range ranked {
		if strings.Contains(qc.Query, partial) && qc.Query != partial {
			out = append(out, qc.Query)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}

// RecentSearches returns up to limit unique recent queries that had results,
// most recent first.
func (t *Tracker) RecentSearches(limit int) []string {
	if limit <= 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var out []string
	seen := make(map[string]bool)
	for i := len(t.history) - 1; i >= 0; i-- {
		e := t.history[i]
		if e.Query == "" || e.ResultCount == 0 || seen[e.Query] {
			continue
		}
		out = append(out, e.Query)
		seen[e.Query] = true
		if len(out) >= limit {
			break
		}
	}
	return out
}

// Summary returns aggregate metrics over the tracked window.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	var avgMs float64
	if len(t.timings) > 0 {
		var total time.Duration
		for _, d := range t.timings {
			total += d
		}
		avgMs = float64(total.Microseconds()) / float64(len(t.timings)) / 1000
	}

	top := t.popularLocked()
	if len(top) > 5 {
		top = top[:5]
	}

	var noResultRate float64
	if t.totalSearches > 0 {
		noResultRate = float64(len(t.noResult)) / float64(t.totalSearches) * 100
	}

	return Summary{
		TotalSearches:   t.totalSearches,
		AvgSearchTimeMs: avgMs,
		TopQueries:      top,
		NoResultRate:    noResultRate,
	}
}

// popularLocked returns popular queries sorted by count descending, then
// query ascending for determinism. Caller must hold t.mu.
func (t *Tracker) popularLocked() []QueryCount {
	ranked := make([]QueryCount, 0, len(t.popular))
	for q, n := range t.popular {
		ranked = append(ranked, QueryCount{Query: q, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Query < ranked[j].Query
	})
	return ranked
}
