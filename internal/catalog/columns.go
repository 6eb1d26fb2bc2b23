package catalog

import "strings"

// Column resolution is an ordered chain: exact header names, then
// separator-insensitive fuzzy header names, then positional fallback. The
// first strategy that succeeds wins.

type columnResolver func(headers []string) (numberCol, descCol int, ok bool)

var resolvers = []columnResolver{exactColumns, fuzzyColumns}

// ResolveColumns maps a header row to (part number, description) column
// indexes. named is false when only the positional fallback applied, in
// which case the caller must decide whether the first row is data.
func ResolveColumns(headers []string) (numberCol, descCol int, named bool) {
	for _, resolve := range resolvers {
		if n, d, ok := resolve(headers); ok {
			return n, d, true
		}
	}
	// Positional fallback: first column is the number, second the description.
	return 0, 1, false
}

func exactColumns(headers []string) (int, int, bool) {
	numberCol, descCol := -1, -1
	for i, h := range headers {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "part_number":
			if numberCol < 0 {
				numberCol = i
			}
		case "description":
			if descCol < 0 {
				descCol = i
			}
		}
	}
	return numberCol, descCol, numberCol >= 0 && descCol >= 0
}

// fuzzyColumns matches headers ignoring separators and casing, so
// "Part Number", "PART-NO", and "Item Description" all resolve.
func fuzzyColumns(headers []string) (int, int, bool) {
	numberCol, descCol := -1, -1
	for i, h := range headers {
		key := canonicalHeader(h)
		switch {
		case numberCol < 0 && (strings.Contains(key, "partnumber") ||
			strings.Contains(key, "partno") ||
			strings.Contains(key, "itemnumber") ||
			key == "number" || key == "part"):
			numberCol = i
		case descCol < 0 && (strings.Contains(key, "description") || key == "desc"):
			descCol = i
		}
	}
	return numberCol, descCol, numberCol >= 0 && descCol >= 0
}

// canonicalHeader lowercases a header and strips separator characters.
func canonicalHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(h)) {
		switch r {
		case ' ', '-', '_', '.', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// looksLikeHeader reports whether a positionally-resolved first row reads
// like column labels rather than data.
func looksLikeHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	first := canonicalHeader(row[0])
	second := canonicalHeader(row[1])
	return strings.Contains(first, "part") || strings.Contains(first, "number") ||
		strings.Contains(second, "desc")
}
