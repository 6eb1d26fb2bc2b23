package ranking

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/steelworks/partsearch/internal/models"
)

// Similarity computes an approximate string similarity on a 0-100 scale.
// Any standard approximate-matching primitive (token-set ratio, Levenshtein
// ratio) satisfies the fuzzy fallback contract.
type Similarity interface {
	Ratio(a, b string) int
}

// TokenSetRatio is a token-set similarity built on Levenshtein distance:
// both strings are tokenized, the shared-token core is compared against each
// side's full token string, and the leftover tokens on each side are compared
// pairwise. The result is the best of those ratios, so word order and
// duplicate tokens do not affect it, and a single misspelled token still
// scores high against a long haystack.
type TokenSetRatio struct{}

// Ratio returns the token-set similarity of a and b on a 0-100 scale.
func (TokenSetRatio) Ratio(a, b string) int {
	tokensA := tokenSet(Tokenize(a))
	tokensB := tokenSet(Tokenize(b))
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	var shared, onlyA, onlyB []string
	for t := range tokensA {
		if tokensB[t] {
			shared = append(shared, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range tokensB {
		if !tokensA[t] {
			onlyB = append(onlyB, t)
		}
	}
	sort.Strings(shared)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	core := strings.Join(shared, " ")
	full := func(rest []string) string {
		if core == "" {
			return strings.Join(rest, " ")
		}
		if len(rest) == 0 {
			return core
		}
		return core + " " + strings.Join(rest, " ")
	}
	sideA := full(onlyA)
	sideB := full(onlyB)

	best := levenshteinRatio(core, sideA)
	if r := levenshteinRatio(core, sideB); r > best {
		best = r
	}
	if r := levenshteinRatio(sideA, sideB); r > best {
		best = r
	}
	for _, ta := range onlyA {
		for _, tb := range onlyB {
			if r := levenshteinRatio(ta, tb); r > best {
				best = r
			}
		}
	}
	return best
}

// levenshteinRatio converts edit distance to a 0-100 similarity.
func levenshteinRatio(a, b string) int {
	if a == b {
		return 100
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 100
	}
	dist := fuzzy.LevenshteinDistance(a, b)
	return (longest - dist) * 100 / longest
}

// FuzzyFallback provides typo tolerance for parts no exact or keyword rule
// touched. Survivors above the similarity threshold are rescaled into a low
// band strictly below the keyword band, so fuzzy matches only fill remaining
// result slots.
type FuzzyFallback struct {
	config     *ScoringConfig
	similarity Similarity
}

// NewFuzzyFallback creates a FuzzyFallback using the default token-set ratio.
func NewFuzzyFallback(config *ScoringConfig) *FuzzyFallback {
	return &FuzzyFallback{config: config, similarity: TokenSetRatio{}}
}

// WithSimilarity replaces the similarity primitive.
func (f *FuzzyFallback) WithSimilarity(sim Similarity) *FuzzyFallback {
	f.similarity = sim
	return f
}

// Name returns the scorer name.
func (f *FuzzyFallback) Name() string {
	return "fuzzy"
}

type fuzzyCandidate struct {
	index int
	raw   int
}

// Score evaluates the parts at the given catalog indexes and returns scored
// matches in catalog order. Only the top-N candidates by raw similarity are
// kept, and anything below the threshold is discarded. Queries shorter than
// the minimum length produce no fuzzy matches (too much noise).
func (f *FuzzyFallback) Score(query string, parts []models.Part, indexes []int) []ScoredMatch {
	if len(query) < f.config.FuzzyMinQueryLen || len(indexes) == 0 {
		return nil
	}

	candidates := make([]fuzzyCandidate, 0, len(indexes))
	for _, i := range indexes {
		haystack := strings.ToLower(parts[i].Number + " " + parts[i].Description)
		raw := f.similarity.Ratio(query, haystack)
		if raw < f.config.FuzzyThreshold {
			continue
		}
		candidates = append(candidates, fuzzyCandidate{index: i, raw: raw})
	}
	if len(candidates) == 0 {
		return nil
	}

	// Top-N by raw similarity, then restore catalog order so equal final
	// scores keep the provider's load order after the stable sort.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].raw > candidates[j].raw
	})
	if len(candidates) > f.config.FuzzyTopN {
		candidates = candidates[:f.config.FuzzyTopN]
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].index < candidates[j].index
	})

	matches := make([]ScoredMatch, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, ScoredMatch{
			Part:  parts[c.index],
			Score: f.rescale(c.raw),
		})
	}
	return matches
}

// rescale maps raw similarity in [threshold, 100] linearly into
// [1, KeywordBaseScore-1], so fuzzy scores can never reach the keyword band.
func (f *FuzzyFallback) rescale(raw int) int {
	threshold := f.config.FuzzyThreshold
	ceiling := f.config.KeywordBaseScore - 1
	if raw >= 100 || threshold >= 100 {
		return ceiling
	}
	return 1 + (raw-threshold)*(ceiling-1)/(100-threshold)
}
