// Package ranking provides tiered relevance scoring for part catalog search.
package ranking

// ScoringConfig holds all score bands and weights for the ranking system.
// The exact constants are tunable; the relative ordering between bands is a
// hard contract (exact > prefix > substring > keyword > fuzzy) and must not
// be inverted by custom values.
type ScoringConfig struct {
	// Part-number match bands (strict priority ladder)
	ExactNumberScore      int `yaml:"exact_number_score"`      // default: 1000
	NumberPrefixScore     int `yaml:"number_prefix_score"`     // default: 950
	NumberContainsScore   int `yaml:"number_contains_score"`   // default: 900
	NormalizedPrefixScore int `yaml:"normalized_prefix_score"` // default: 870
	NormalizedContainsScore int `yaml:"normalized_contains_score"` // default: 850
	DescriptionContainsScore int `yaml:"description_contains_score"` // default: 800

	// Positional bonuses for substring matches (earlier offset scores higher).
	// Bonus is max(0, N - offset); capped so a band can never reach the one above.
	ContainsPositionBonus    int `yaml:"contains_position_bonus"`    // default: 20
	NormalizedPositionBonus  int `yaml:"normalized_position_bonus"`  // default: 15
	DescriptionPositionBonus int `yaml:"description_position_bonus"` // default: 15

	// Keyword (multi-word) band: base + number/description fractions + bonuses.
	// Maximum reachable keyword score stays strictly below DescriptionContainsScore.
	KeywordBaseScore     int `yaml:"keyword_base_score"`     // default: 100
	KeywordNumberWeight  int `yaml:"keyword_number_weight"`  // default: 400
	KeywordDescWeight    int `yaml:"keyword_desc_weight"`    // default: 250
	CompletenessBonus    int `yaml:"completeness_bonus"`     // default: 100
	NumberDominanceBonus int `yaml:"number_dominance_bonus"` // default: 50

	// Tokens shorter than MinTokenLength are dropped from keyword scoring
	// (but the full query string still participates in containment checks).
	MinTokenLength int `yaml:"min_token_length"` // default: 2

	// Fuzzy fallback settings. Raw similarity (0-100) below FuzzyThreshold is
	// discarded; survivors are rescaled into [1, KeywordBaseScore-1].
	FuzzyThreshold  int `yaml:"fuzzy_threshold"`   // default: 45
	FuzzyTopN       int `yaml:"fuzzy_top_n"`       // default: 10
	FuzzyMinQueryLen int `yaml:"fuzzy_min_query_len"` // default: 3
}

// DefaultScoringConfig returns the default scoring configuration.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		ExactNumberScore:         1000,
		NumberPrefixScore:        950,
		NumberContainsScore:      900,
		NormalizedPrefixScore:    870,
		NormalizedContainsScore:  850,
		DescriptionContainsScore: 800,

		ContainsPositionBonus:    20,
		NormalizedPositionBonus:  15,
		DescriptionPositionBonus: 15,

		KeywordBaseScore:     100,
		KeywordNumberWeight:  400,
		KeywordDescWeight:    250,
		CompletenessBonus:    100,
		NumberDominanceBonus: 50,

		MinTokenLength: 2,

		FuzzyThreshold:   45,
		FuzzyTopN:        10,
		FuzzyMinQueryLen: 3,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *ScoringConfig) ApplyDefaults() {
	defaults := DefaultScoringConfig()

	if c.ExactNumberScore == 0 {
		c.ExactNumberScore = defaults.ExactNumberScore
	}
	if c.NumberPrefixScore == 0 {
		c.NumberPrefixScore = defaults.NumberPrefixScore
	}
	if c.NumberContainsScore == 0 {
		c.NumberContainsScore = defaults.NumberContainsScore
	}
	if c.NormalizedPrefixScore == 0 {
		c.NormalizedPrefixScore = defaults.NormalizedPrefixScore
	}
	if c.NormalizedContainsScore == 0 {
		c.NormalizedContainsScore = defaults.NormalizedContainsScore
	}
	if c.DescriptionContainsScore == 0 {
		c.DescriptionContainsScore = defaults.DescriptionContainsScore
	}

	if c.ContainsPositionBonus == 0 {
		c.ContainsPositionBonus = defaults.ContainsPositionBonus
	}
	if c.NormalizedPositionBonus == 0 {
		c.NormalizedPositionBonus = defaults.NormalizedPositionBonus
	}
	if c.DescriptionPositionBonus == 0 {
		c.DescriptionPositionBonus = defaults.DescriptionPositionBonus
	}

	if c.KeywordBaseScore == 0 {
		c.KeywordBaseScore = defaults.KeywordBaseScore
	}
	if c.KeywordNumberWeight == 0 {
		c.KeywordNumberWeight = defaults.KeywordNumberWeight
	}
	if c.KeywordDescWeight == 0 {
		c.KeywordDescWeight = defaults.KeywordDescWeight
	}
	if c.CompletenessBonus == 0 {
		c.CompletenessBonus = defaults.CompletenessBonus
	}
	if c.NumberDominanceBonus == 0 {
		c.NumberDominanceBonus = defaults.NumberDominanceBonus
	}

	if c.MinTokenLength == 0 {
		c.MinTokenLength = defaults.MinTokenLength
	}

	if c.FuzzyThreshold == 0 {
		c.FuzzyThreshold = defaults.FuzzyThreshold
	}
	if c.FuzzyTopN == 0 {
		c.FuzzyTopN = defaults.FuzzyTopN
	}
	if c.FuzzyMinQueryLen == 0 {
		c.FuzzyMinQueryLen = defaults.FuzzyMinQueryLen
	}
}
