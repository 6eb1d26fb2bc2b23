package models

// SearchResult represents a single rank-ordered hit.
type SearchResult struct {
	Part  Part `json:"part"`
	Score int  `json:"score"`
	Rank  int  `json:"rank"`
	// HighlightedNumber and HighlightedDescription are HTML-escaped copies
	// of the part fields with matched query tokens wrapped in highlight spans.
	HighlightedNumber      string `json:"highlighted_number,omitempty"`
	HighlightedDescription string `json:"highlighted_description,omitempty"`
}

// SearchResponse is one page of ranked results plus pagination metadata.
type SearchResponse struct {
	Results      []*SearchResult `json:"results"`
	TotalResults int             `json:"total_results"`
	TotalPages   int             `json:"total_pages"`
	CurrentPage  int             `json:"current_page"`
	QueryTime    int64           `json:"query_time_ms"`
	Query        string          `json:"query"`
	// Showing is a human-readable "1-20 of 134" range description.
	Showing string `json:"showing_results"`
}
