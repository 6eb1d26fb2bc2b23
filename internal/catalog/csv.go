package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/steelworks/partsearch/internal/models"
)

const userAgent = "partsearch/1.0"

// HTTPCSVSource loads a CSV feed over HTTP, typically a published
// spreadsheet URL.
type HTTPCSVSource struct {
	URL    string
	client *http.Client
}

// NewHTTPCSVSource creates a source with the given request timeout in
// seconds (0 means 15).
func NewHTTPCSVSource(url string, timeoutSeconds int) *HTTPCSVSource {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 15
	}
	return &HTTPCSVSource{
		URL:    url,
		client: &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
	}
}

// Name identifies the source.
func (s *HTTPCSVSource) Name() string {
	return "http-csv"
}

// Load fetches and parses the remote CSV.
func (s *HTTPCSVSource) Load(ctx context.Context) ([]models.Part, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned HTTP %d", resp.StatusCode)
	}

	parts, err := parseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse catalog CSV: %w", err)
	}
	return parts, nil
}

// FileCSVSource loads a local CSV file.
type FileCSVSource struct {
	Path string
}

// Name identifies the source.
func (s *FileCSVSource) Name() string {
	return "file-csv"
}

// Load reads and parses the CSV file.
func (s *FileCSVSource) Load(ctx context.Context) ([]models.Part, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	parts, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse catalog CSV %s: %w", s.Path, err)
	}
	return parts, nil
}

// parseCSV reads all rows leniently (ragged rows and stray quotes are
// tolerated, bad lines skipped) and maps them through the column
// resolution chain.
func parseCSV(r io.Reader) ([]models.Part, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip unparseable lines; a single bad row must not abort the load.
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog feed is empty")
	}
	return partsFromRows(rows)
}
