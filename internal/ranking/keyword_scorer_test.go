package ranking

import (
	"testing"

	"github.com/steelworks/partsearch/internal/models"
)

func TestKeywordScorer_Score(t *testing.T) {
	config := DefaultScoringConfig()
	scorer := NewKeywordScorer(config)

	tests := []struct {
		name   string
		tokens []string
		part   models.Part
		want   int
	}{
		{
			name:   "all tokens in description",
			tokens: []string{"pump", "seal"},
			part:   models.Part{Number: "X100", Description: "Pump seal assembly"},
			// 100 + 0 + 2*250/2 + completeness 100
			want: config.KeywordBaseScore + config.KeywordDescWeight + config.CompletenessBonus,
		},
		{
			name:   "all tokens in number",
			tokens: []string{"pb", "reg"},
			part:   models.Part{Number: "DEC-PB-REG-A-E1", Description: "Regulator"},
			// 100 + 2*400/2 + completeness 100 + dominance 50
			want: config.KeywordBaseScore + config.KeywordNumberWeight +
				config.CompletenessBonus + config.NumberDominanceBonus,
		},
		{
			name:   "partial match in description",
			tokens: []string{"pump", "seal", "titanium"},
			part:   models.Part{Number: "X100", Description: "Pump seal assembly"},
			// 100 + 0 + 2*250/3, no completeness
			want: config.KeywordBaseScore + 2*config.KeywordDescWeight/3,
		},
		{
			name:   "even split between number and description",
			tokens: []string{"reg", "bronze"},
			part:   models.Part{Number: "DEC-PB-REG", Description: "Bronze housing"},
			// 100 + 400/2 + 250/2 + completeness, number==desc so no dominance
			want: config.KeywordBaseScore + config.KeywordNumberWeight/2 +
				config.KeywordDescWeight/2 + config.CompletenessBonus,
		},
		{
			name:   "number takes priority over description per token",
			tokens: []string{"reg"},
			part:   models.Part{Number: "A-REG", Description: "reg unit"},
			// counted once, as a number match
			want: config.KeywordBaseScore + config.KeywordNumberWeight +
				config.CompletenessBonus + config.NumberDominanceBonus,
		},
		{
			name:   "duplicate query tokens deduped",
			tokens: []string{"seal", "seal"},
			part:   models.Part{Number: "X100", Description: "Seal kit"},
			want:   config.KeywordBaseScore + config.KeywordDescWeight + config.CompletenessBonus,
		},
		{
			name:   "no token matches",
			tokens: []string{"valve"},
			part:   models.Part{Number: "X900", Description: "Gasket set"},
			want:   0,
		},
		{
			name:   "no tokens",
			tokens: nil,
			part:   models.Part{Number: "X900", Description: "Gasket set"},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.tokens, tt.part)
			if got != tt.want {
				t.Errorf("Score(%v, %v) = %d, want %d", tt.tokens, tt.part, got, tt.want)
			}
		})
	}
}

// The keyword band must stay strictly below the weakest ladder band for any
// token split; the best case is all tokens in the number.
func TestKeywordScorer_BandBounds(t *testing.T) {
	config := DefaultScoringConfig()

	maxKeyword := config.KeywordBaseScore + config.KeywordNumberWeight +
		config.CompletenessBonus + config.NumberDominanceBonus
	if maxKeyword >= config.DescriptionContainsScore {
		t.Errorf("max keyword score %d reaches description band %d",
			maxKeyword, config.DescriptionContainsScore)
	}
}
