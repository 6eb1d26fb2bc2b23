package ranking

import (
	"regexp"
	"strings"
)

// splitPattern matches runs of the separator class used by both queries and
// part numbers: whitespace, hyphen, underscore, period.
var splitPattern = regexp.MustCompile(`[-_\s.]+`)

// Tokenize splits s on whitespace, hyphen, underscore, and period, lowercases
// the pieces, and drops empty tokens. It does not dedupe; callers needing a
// set dedupe explicitly.
func Tokenize(s string) []string {
	parts := splitPattern.Split(strings.ToLower(s), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// KeywordTokens tokenizes s and drops tokens shorter than minLen. Short
// tokens are excluded from keyword scoring but the full query string still
// participates in containment checks.
func KeywordTokens(s string, minLen int) []string {
	all := Tokenize(s)
	tokens := all[:0]
	for _, t := range all {
		if len(t) >= minLen {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// NormalizeSeparators replaces separator runs with single spaces and
// lowercases, so "DEC-PB-REG-A-E1" compares as "dec pb reg a e1".
func NormalizeSeparators(s string) string {
	return strings.TrimSpace(splitPattern.ReplaceAllString(strings.ToLower(s), " "))
}

// tokenSet builds a membership set from a token list.
func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
