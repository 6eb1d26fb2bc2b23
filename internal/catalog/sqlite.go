package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/mattn/go-sqlite3"

	"github.com/steelworks/partsearch/internal/models"
)

// identPattern restricts table/column names to safe SQL identifiers, since
// they come from configuration and are interpolated into the query.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource loads parts from a SQLite database table.
type SQLiteSource struct {
	Path              string
	Table             string
	NumberColumn      string
	DescriptionColumn string
}

// Name identifies the source.
func (s *SQLiteSource) Name() string {
	return "sqlite"
}

// Load selects all rows in rowid order, preserving insertion order as the
// catalog load order.
func (s *SQLiteSource) Load(ctx context.Context) ([]models.Part, error) {
	for _, ident := range []string{s.Table, s.NumberColumn, s.DescriptionColumn} {
		if !identPattern.MatchString(ident) {
			return nil, fmt.Errorf("invalid identifier %q in catalog config", ident)
		}
	}

	db, err := sql.Open("sqlite3", s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY rowid",
		s.NumberColumn, s.DescriptionColumn, s.Table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog table: %w", err)
	}
	defer rows.Close()

	var parts []models.Part
	for rows.Next() {
		var number, desc sql.NullString
		if err := rows.Scan(&number, &desc); err != nil {
			// A single bad row must not abort the load.
			continue
		}
		parts = append(parts, models.Part{
			Number:      number.String,
			Description: desc.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read catalog rows: %w", err)
	}
	return parts, nil
}
