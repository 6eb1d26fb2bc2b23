package ranking

import (
	"strings"

	"github.com/steelworks/partsearch/internal/models"
)

// Classifier scores a single part against a normalized query using a strict
// priority ladder: exact number, number prefix, number substring, separator-
// normalized number, description substring. The first applicable rule wins;
// a return of 0 means no rule applied.
type Classifier struct {
	config *ScoringConfig
}

// NewClassifier creates a Classifier with the given config.
func NewClassifier(config *ScoringConfig) *Classifier {
	return &Classifier{config: config}
}

// Name returns the scorer name.
func (c *Classifier) Name() string {
	return "classifier"
}

// Score returns the best ladder score for part, or 0 when no rule applies.
// The query must already be lowercased and trimmed.
func (c *Classifier) Score(query string, part models.Part) int {
	if query == "" {
		return 0
	}

	number := strings.ToLower(strings.TrimSpace(part.Number))
	if query == number {
		return c.config.ExactNumberScore
	}
	if strings.HasPrefix(number, query) {
		return c.config.NumberPrefixScore
	}
	if offset := strings.Index(number, query); offset >= 0 {
		return c.config.NumberContainsScore + positionBonus(offset, c.config.ContainsPositionBonus)
	}

	// Separator-normalized forms recover matches like "dec pb reg"
	// against "DEC-PB-REG-A-E1".
	normNumber := NormalizeSeparators(number)
	normQuery := NormalizeSeparators(query)
	if normQuery != "" && normNumber != number {
		if strings.HasPrefix(normNumber, normQuery) {
			return c.config.NormalizedPrefixScore
		}
		if offset := strings.Index(normNumber, normQuery); offset >= 0 {
			return c.config.NormalizedContainsScore + positionBonus(offset, c.config.NormalizedPositionBonus)
		}
	}

	desc := strings.ToLower(strings.TrimSpace(part.Description))
	if offset := strings.Index(desc, query); offset >= 0 {
		return c.config.DescriptionContainsScore + positionBonus(offset, c.config.DescriptionPositionBonus)
	}

	return 0
}

// positionBonus rewards earlier match offsets, bottoming out at zero.
func positionBonus(offset, max int) int {
	bonus := max - offset
	if bonus < 0 {
		return 0
	}
	return bonus
}
