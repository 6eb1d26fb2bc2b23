// Package cli provides output formatting for the partsearch CLI.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/steelworks/partsearch/internal/models"
	"github.com/steelworks/partsearch/pkg/utils"
)

// OutputFormat is the format for search result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteSearchResults writes search results to w in the given format.
func WriteSearchResults(w io.Writer, response *models.SearchResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeSearchResultsText(w, response)
		return nil
	}
}

func writeSearchResultsText(w io.Writer, response *models.SearchResponse) {
	if response.TotalResults == 0 {
		fmt.Fprintf(w, "No results for %q\n", response.Query)
		return
	}
	fmt.Fprintf(w, "\nShowing %s (page %d/%d, %dms)\n\n",
		response.Showing, response.CurrentPage, response.TotalPages, response.QueryTime)
	for _, result := range response.Results {
		fmt.Fprintf(w, "%3d. %-24s %s  (score %d)\n",
			result.Rank,
			result.Part.Number,
			utils.Truncate(strings.TrimSpace(result.Part.Description), 60),
			result.Score,
		)
	}
	fmt.Fprintln(w)
}
