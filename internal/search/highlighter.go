// Package search provides the search engine: ranking orchestration,
// highlighting, and pagination over a catalog snapshot.
package search

import (
	"html"
	"sort"
	"strings"

	"github.com/steelworks/partsearch/internal/ranking"
)

const (
	highlightOpen  = `<span class="highlight">`
	highlightClose = `</span>`
)

// span is a half-open [Start, End) byte range in the escaped text.
type span struct {
	Start int
	End   int
}

// Highlighter wraps matched query tokens in highlight spans. Results are
// cached because the presentation layer re-renders the same strings across
// page views.
type Highlighter struct {
	minTokenLen int
	cache       *highlightCache
}

// NewHighlighter creates a Highlighter. Tokens shorter than minTokenLen are
// ignored; cacheSize bounds the result cache.
func NewHighlighter(minTokenLen, cacheSize int) *Highlighter {
	return &Highlighter{
		minTokenLen: minTokenLen,
		cache:       newHighlightCache(cacheSize),
	}
}

// Highlight returns text with every case-insensitive occurrence of the
// query's tokens wrapped in a highlight span. The text is HTML-escaped before
// spans are inserted, and overlapping or adjacent occurrences are merged so
// markup never nests. Calling Highlight on already-highlighted text is a
// no-op, as is a query with no usable tokens or no occurrences.
func (h *Highlighter) Highlight(text, query string) string {
	if strings.Contains(text, highlightOpen) {
		return text
	}

	tokens := ranking.KeywordTokens(query, h.minTokenLen)
	if len(tokens) == 0 {
		return text
	}

	cacheKey := text + "\x00" + query
	if cached, ok := h.cache.Get(cacheKey); ok {
		return cached
	}

	escaped := html.EscapeString(text)
	spans := findOccurrences(escaped, tokens)
	if len(spans) == 0 {
		return text
	}
	merged := mergeSpans(spans)

	var b strings.Builder
	b.Grow(len(escaped) + len(merged)*(len(highlightOpen)+len(highlightClose)))
	prev := 0
	for _, sp := range merged {
		b.WriteString(escaped[prev:sp.Start])
		b.WriteString(highlightOpen)
		b.WriteString(escaped[sp.Start:sp.End])
		b.WriteString(highlightClose)
		prev = sp.End
	}
	b.WriteString(escaped[prev:])

	result := b.String()
	h.cache.Set(cacheKey, result)
	return result
}

// findOccurrences collects every case-insensitive occurrence of every token.
func findOccurrences(escaped string, tokens []string) []span {
	lower := strings.ToLower(escaped)
	var spans []span
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		from := 0
		for {
			i := strings.Index(lower[from:], token)
			if i < 0 {
				break
			}
			start := from + i
			spans = append(spans, span{Start: start, End: start + len(token)})
			from = start + 1
		}
	}
	return spans
}

// mergeSpans sorts spans and merges overlapping or adjacent ranges, so a
// short token inside a longer one never produces nested markup.
func mergeSpans(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})

	merged := make([]span, 0, len(spans))
	current := spans[0]
	for _, next := range spans[1:] {
		if next.Start <= current.End {
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
