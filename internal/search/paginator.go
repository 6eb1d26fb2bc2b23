package search

import (
	"fmt"

	"github.com/steelworks/partsearch/internal/ranking"
)

// Paginate slices a ranked list into one fixed-size page. The returned page
// number is clamped into [1, totalPages]; out-of-range requests are
// corrected, never an error. An empty list yields an empty page and a single
// (empty) total page. pageSize <= 0 is a configuration error.
func Paginate(matches []ranking.ScoredMatch, page, pageSize int) (items []ranking.ScoredMatch, currentPage, totalPages int, err error) {
	if pageSize <= 0 {
		return nil, 0, 0, fmt.Errorf("page size must be positive, got %d", pageSize)
	}

	totalPages = (len(matches) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start >= len(matches) {
		return []ranking.ScoredMatch{}, page, totalPages, nil
	}
	end := start + pageSize
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end], page, totalPages, nil
}
