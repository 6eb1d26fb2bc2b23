package ranking

import (
	"testing"

	"github.com/steelworks/partsearch/internal/models"
)

func TestTokenSetRatio(t *testing.T) {
	sim := TokenSetRatio{}

	tests := []struct {
		name    string
		a, b    string
		wantMin int
		wantMax int
	}{
		{
			name:    "identical strings",
			a:       "pump seal",
			b:       "pump seal",
			wantMin: 100,
			wantMax: 100,
		},
		{
			name:    "word order ignored",
			a:       "seal pump",
			b:       "pump seal",
			wantMin: 100,
			wantMax: 100,
		},
		{
			name:    "subset of tokens",
			a:       "pump",
			b:       "pump seal assembly",
			wantMin: 100,
			wantMax: 100,
		},
		{
			name:    "single typo stays high",
			a:       "hydralic",
			b:       "hydraulic",
			wantMin: 70,
			wantMax: 99,
		},
		{
			name:    "unrelated strings stay low",
			a:       "valve",
			b:       "gasket set",
			wantMin: 0,
			wantMax: 44,
		},
		{
			name:    "empty side",
			a:       "",
			b:       "pump",
			wantMin: 0,
			wantMax: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sim.Ratio(tt.a, tt.b)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("Ratio(%q, %q) = %d, want in [%d, %d]", tt.a, tt.b, got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestFuzzyFallback_Score(t *testing.T) {
	config := DefaultScoringConfig()
	fallback := NewFuzzyFallback(config)

	parts := []models.Part{
		{Number: "M1433", Description: "Hydraulic valve"},
		{Number: "X900", Description: "Gasket set"},
		{Number: "M1456", Description: "Valve seat insert"},
	}
	all := []int{0, 1, 2}

	t.Run("typo recovers near matches", func(t *testing.T) {
		matches := fallback.Score("hydralic", parts, all)
		if len(matches) == 0 {
			t.Fatal("expected at least one fuzzy match for a close typo")
		}
		if matches[0].Part.Number != "M1433" {
			t.Errorf("expected M1433 first, got %s", matches[0].Part.Number)
		}
		for _, m := range matches {
			if m.Score < 1 || m.Score >= config.KeywordBaseScore {
				t.Errorf("fuzzy score %d outside [1, %d)", m.Score, config.KeywordBaseScore)
			}
		}
	})

	t.Run("query below minimum length yields nothing", func(t *testing.T) {
		if matches := fallback.Score("hy", parts, all); matches != nil {
			t.Errorf("expected nil for short query, got %v", matches)
		}
	})

	t.Run("empty index list yields nothing", func(t *testing.T) {
		if matches := fallback.Score("hydralic", parts, nil); matches != nil {
			t.Errorf("expected nil for empty indexes, got %v", matches)
		}
	})

	t.Run("results come back in catalog order", func(t *testing.T) {
		matches := fallback.Score("valve", parts, all)
		lastIndex := -1
		for _, m := range matches {
			idx := -1
			for i, p := range parts {
				if p.Number == m.Part.Number {
					idx = i
					break
				}
			}
			if idx <= lastIndex {
				t.Fatalf("matches not in catalog order: %v", matches)
			}
			lastIndex = idx
		}
	})
}

func TestFuzzyFallback_TopN(t *testing.T) {
	config := DefaultScoringConfig()
	config.FuzzyTopN = 2
	fallback := NewFuzzyFallback(config)

	parts := []models.Part{
		{Number: "SEAL-1", Description: "Seal kit"},
		{Number: "SEAL-2", Description: "Seal kit"},
		{Number: "SEAL-3", Description: "Seal kit"},
		{Number: "SEAL-4", Description: "Seal kit"},
	}
	matches := fallback.Score("seals", parts, []int{0, 1, 2, 3})
	if len(matches) > 2 {
		t.Errorf("expected at most 2 matches with FuzzyTopN=2, got %d", len(matches))
	}
}

func TestFuzzyRescale(t *testing.T) {
	config := DefaultScoringConfig()
	fallback := NewFuzzyFallback(config)

	tests := []struct {
		raw  int
		want int
	}{
		{config.FuzzyThreshold, 1},
		{100, config.KeywordBaseScore - 1},
	}
	for _, tt := range tests {
		if got := fallback.rescale(tt.raw); got != tt.want {
			t.Errorf("rescale(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}

	// Monotone over the whole survivor range, never reaching the keyword base.
	prev := 0
	for raw := config.FuzzyThreshold; raw <= 100; raw++ {
		got := fallback.rescale(raw)
		if got < prev {
			t.Fatalf("rescale not monotone at raw=%d: %d < %d", raw, got, prev)
		}
		if got >= config.KeywordBaseScore {
			t.Fatalf("rescale(%d) = %d reaches keyword base %d", raw, got, config.KeywordBaseScore)
		}
		prev = got
	}
}
