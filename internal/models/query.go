package models

import "strings"

// SearchQuery represents a search request.
type SearchQuery struct {
	Query string `json:"query"`
	Page  int    `json:"page,omitempty"`
}

// Normalize trims the query string and clamps the page to a minimum of 1.
// An empty query is not an error; it produces an empty result set downstream.
func (q *SearchQuery) Normalize() {
	q.Query = strings.TrimSpace(q.Query)
	if q.Page < 1 {
		q.Page = 1
	}
}
