package catalog

import (
	"strings"

	"github.com/steelworks/partsearch/internal/models"
)

// CleanStats summarizes what cleaning removed.
type CleanStats struct {
	Input      int `json:"input"`
	Kept       int `json:"kept"`
	Invalid    int `json:"invalid"`
	Duplicates int `json:"duplicates"`
}

// placeholders are spreadsheet artifacts that mean "no value".
var placeholders = map[string]bool{
	"nan":  true,
	"null": true,
	"n/a":  true,
	"none": true,
}

// Clean trims both fields, drops rows with empty or placeholder values, and
// deduplicates by part number keeping the first occurrence. Load order is
// preserved; it is the ranking tie-break key downstream.
func Clean(raw []models.Part) ([]models.Part, CleanStats) {
	stats := CleanStats{Input: len(raw)}
	seen := make(map[string]bool, len(raw))
	parts := make([]models.Part, 0, len(raw))

	for _, p := range raw {
		number := strings.TrimSpace(p.Number)
		desc := strings.TrimSpace(p.Description)
		if number == "" || desc == "" ||
			placeholders[strings.ToLower(number)] || placeholders[strings.ToLower(desc)] {
			stats.Invalid++
			continue
		}
		key := strings.ToLower(number)
		if seen[key] {
			stats.Duplicates++
			continue
		}
		seen[key] = true
		parts = append(parts, models.Part{Number: number, Description: desc})
	}

	stats.Kept = len(parts)
	return parts, stats
}
