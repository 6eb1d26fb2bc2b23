package catalog

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/steelworks/partsearch/internal/models"
)

// ExcelSource loads parts from an XLSX workbook.
type ExcelSource struct {
	Path string
	// Sheet selects the worksheet; the first sheet when empty.
	Sheet string
}

// Name identifies the source.
func (s *ExcelSource) Name() string {
	return "xlsx"
}

// Load reads all rows from the configured sheet.
func (s *ExcelSource) Load(ctx context.Context) ([]models.Part, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := s.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", s.Path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}
	return partsFromRows(rows)
}
