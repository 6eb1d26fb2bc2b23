// Package models defines core data structures for parts, queries, and search results.
package models

import "strings"

// Part is one catalog record: a part number and its free-text description.
// The part number is the primary lookup key; the catalog provider guarantees
// both fields are trimmed and non-empty and that numbers are unique.
type Part struct {
	Number      string `json:"part_number"`
	Description string `json:"description"`
}

// Valid reports whether both fields carry non-whitespace content.
func (p Part) Valid() bool {
	return strings.TrimSpace(p.Number) != "" && strings.TrimSpace(p.Description) != ""
}
