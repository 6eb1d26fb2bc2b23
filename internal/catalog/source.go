// Package catalog loads, cleans, and serves the parts catalog. Sources pull
// raw rows from a remote spreadsheet feed, a local CSV/XLSX file, or a
// SQLite database; the provider cleans them into an immutable snapshot.
package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/steelworks/partsearch/internal/config"
	"github.com/steelworks/partsearch/internal/models"
)

// Source loads raw part records from one backing store.
type Source interface {
	// Load fetches all records. Rows are returned in source order; cleaning
	// and deduplication happen in the provider.
	Load(ctx context.Context) ([]models.Part, error)
	// Name identifies the source for logging and status output.
	Name() string
}

// NewSource builds a Source from the catalog configuration. A local path
// wins over a URL; the format is inferred from the file extension unless
// set explicitly.
func NewSource(cfg *config.CatalogConfig) (Source, error) {
	if cfg.Path != "" {
		format := cfg.Format
		if format == "" {
			switch strings.ToLower(filepath.Ext(cfg.Path)) {
			case ".xlsx", ".xlsm":
				format = "xlsx"
			case ".db", ".sqlite", ".sqlite3":
				format = "sqlite"
			default:
				format = "csv"
			}
		}
		switch format {
		case "csv":
			return &FileCSVSource{Path: cfg.Path}, nil
		case "xlsx":
			return &ExcelSource{Path: cfg.Path, Sheet: cfg.Sheet}, nil
		case "sqlite":
			return &SQLiteSource{
				Path:              cfg.Path,
				Table:             cfg.Table,
				NumberColumn:      cfg.NumberColumn,
				DescriptionColumn: cfg.DescriptionColumn,
			}, nil
		default:
			return nil, fmt.Errorf("unknown catalog format %q", format)
		}
	}
	if cfg.URL != "" {
		return NewHTTPCSVSource(cfg.URL, cfg.TimeoutSeconds), nil
	}
	return nil, fmt.Errorf("catalog source requires a url or path")
}

// partsFromRows converts tabular rows into parts using the header resolution
// chain. The first row is treated as a header when it resolves to named
// columns; with a positional fallback the first row is kept as data unless
// it looks like a header.
func partsFromRows(rows [][]string) ([]models.Part, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	numberCol, descCol, named := ResolveColumns(rows[0])
	data := rows
	if named || looksLikeHeader(rows[0]) {
		data = rows[1:]
	}

	parts := make([]models.Part, 0, len(data))
	for _, row := range data {
		if numberCol >= len(row) || descCol >= len(row) {
			continue
		}
		parts = append(parts, models.Part{
			Number:      row[numberCol],
			Description: row[descCol],
		})
	}
	return parts, nil
}
