package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/steelworks/partsearch/internal/models"
)

// ScoredMatch pairs a part with its computed relevance score. Transient,
// produced per search and discarded after pagination.
type ScoredMatch struct {
	Part  models.Part `json:"part"`
	Score int         `json:"score"`
}

// Ranker runs the classifier ladder, keyword scorer, and fuzzy fallback over
// a catalog snapshot and produces a capped, ordered result list. It is
// stateless per call and safe for concurrent use over an immutable snapshot.
type Ranker struct {
	config     *ScoringConfig
	classifier *Classifier
	keywords   *KeywordScorer
	fuzzy      *FuzzyFallback
}

// NewRanker creates a Ranker with the given configuration.
func NewRanker(config *ScoringConfig) *Ranker {
	if config == nil {
		config = DefaultScoringConfig()
	}
	config.ApplyDefaults()

	return &Ranker{
		config:     config,
		classifier: NewClassifier(config),
		keywords:   NewKeywordScorer(config),
		fuzzy:      NewFuzzyFallback(config),
	}
}

// WithSimilarity replaces the fuzzy fallback's similarity primitive.
func (r *Ranker) WithSimilarity(sim Similarity) *Ranker {
	r.fuzzy.WithSimilarity(sim)
	return r
}

// Config returns the scoring configuration.
func (r *Ranker) Config() *ScoringConfig {
	return r.config
}

// Rank scores every part against the query and returns matches sorted by
// score descending, truncated to resultCap. Equal scores preserve the
// catalog's original order (stable sort). An empty query or empty catalog
// yields an empty result, not an error; resultCap <= 0 is a configuration
// error. Parts with a missing number or description are skipped.
func (r *Ranker) Rank(query string, parts []models.Part, resultCap int) ([]ScoredMatch, error) {
	if resultCap <= 0 {
		return nil, fmt.Errorf("result cap must be positive, got %d", resultCap)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(parts) == 0 {
		return nil, nil
	}
	queryTokens := KeywordTokens(q, r.config.MinTokenLength)

	matches := make([]ScoredMatch, 0, len(parts)/4)
	var unmatched []int
	for i, part := range parts {
		if !part.Valid() {
			continue
		}
		score := r.classifier.Score(q, part)
		if score == 0 {
			score = r.keywords.Score(queryTokens, part)
		}
		if score > 0 {
			matches = append(matches, ScoredMatch{Part: part, Score: score})
			continue
		}
		unmatched = append(unmatched, i)
	}

	matches = append(matches, r.fuzzy.Score(q, parts, unmatched)...)

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > resultCap {
		matches = matches[:resultCap]
	}
	return matches, nil
}
