package catalog

import "testing"

func TestResolveColumns(t *testing.T) {
	tests := []struct {
		name       string
		headers    []string
		wantNumber int
		wantDesc   int
		wantNamed  bool
	}{
		{
			name:       "exact headers",
			headers:    []string{"part_number", "description"},
			wantNumber: 0,
			wantDesc:   1,
			wantNamed:  true,
		},
		{
			name:       "exact headers reversed order",
			headers:    []string{"description", "part_number"},
			wantNumber: 1,
			wantDesc:   0,
			wantNamed:  true,
		},
		{
			name:       "exact headers with casing and padding",
			headers:    []string{" Part_Number ", " DESCRIPTION "},
			wantNumber: 0,
			wantDesc:   1,
			wantNamed:  true,
		},
		{
			name:       "fuzzy spaced headers",
			headers:    []string{"Part Number", "Item Description"},
			wantNumber: 0,
			wantDesc:   1,
			wantNamed:  true,
		},
		{
			name:       "fuzzy abbreviated headers",
			headers:    []string{"PART-NO", "Desc"},
			wantNumber: 0,
			wantDesc:   1,
			wantNamed:  true,
		},
		{
			name:       "fuzzy with extra columns",
			headers:    []string{"id", "Item Number", "price", "Long Description"},
			wantNumber: 1,
			wantDesc:   3,
			wantNamed:  true,
		},
		{
			name:       "positional fallback for unrecognized headers",
			headers:    []string{"foo", "bar"},
			wantNumber: 0,
			wantDesc:   1,
			wantNamed:  false,
		},
		{
			name:       "positional fallback when only one header matches",
			headers:    []string{"part_number", "notes"},
			wantNumber: 0,
			wantDesc:   1,
			wantNamed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, desc, named := ResolveColumns(tt.headers)
			if number != tt.wantNumber || desc != tt.wantDesc || named != tt.wantNamed {
				t.Errorf("ResolveColumns(%v) = (%d, %d, %v), want (%d, %d, %v)",
					tt.headers, number, desc, named, tt.wantNumber, tt.wantDesc, tt.wantNamed)
			}
		})
	}
}

func TestLooksLikeHeader(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"part label first", []string{"Part No", "whatever"}, true},
		{"description label second", []string{"whatever", "Description"}, true},
		{"data row", []string{"M1433", "Gate valve bronze"}, false},
		{"single column", []string{"M1433"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikeHeader(tt.row); got != tt.want {
				t.Errorf("looksLikeHeader(%v) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}
