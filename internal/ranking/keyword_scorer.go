package ranking

import (
	"github.com/steelworks/partsearch/internal/models"
)

// KeywordScorer scores partial and complete keyword overlap for multi-word
// queries. It runs only for parts the classifier ladder did not match, and
// its scores sit strictly below every ladder band and strictly above the
// fuzzy fallback band.
type KeywordScorer struct {
	config *ScoringConfig
}

// NewKeywordScorer creates a KeywordScorer with the given config.
func NewKeywordScorer(config *ScoringConfig) *KeywordScorer {
	return &KeywordScorer{config: config}
}

// Name returns the scorer name.
func (s *KeywordScorer) Name() string {
	return "keyword"
}

// Score counts how many distinct query tokens appear in the part number's
// token set and in the description's token set (number takes priority; each
// token is counted at most once), then weighs the match fractions. Records
// matching all tokens earn a completeness bonus; records matching more
// tokens in the number than in the description earn a dominance bonus.
// Returns 0 when no token matches.
func (s *KeywordScorer) Score(queryTokens []string, part models.Part) int {
	if len(queryTokens) == 0 {
		return 0
	}

	numberTokens := tokenSet(Tokenize(part.Number))
	descTokens := tokenSet(Tokenize(part.Description))

	seen := make(map[string]bool, len(queryTokens))
	total := 0
	numberMatches := 0
	descMatches := 0
	for _, w := range queryTokens {
		if seen[w] {
			continue
		}
		seen[w] = true
		total++
		switch {
		case numberTokens[w]:
			numberMatches++
		case descTokens[w]:
			descMatches++
		}
	}

	if numberMatches+descMatches == 0 {
		return 0
	}

	score := s.config.KeywordBaseScore +
		numberMatches*s.config.KeywordNumberWeight/total +
		descMatches*s.config.KeywordDescWeight/total

	if numberMatches+descMatches == total {
		score += s.config.CompletenessBonus
	}
	if numberMatches > descMatches {
		score += s.config.NumberDominanceBonus
	}
	return score
}
