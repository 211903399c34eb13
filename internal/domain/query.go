package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Limit bounds for airport search requests.
const (
	// DefaultLimit is used when no limit is supplied or the supplied value is invalid.
	DefaultLimit = 15

	// MaxLimit caps the number of items returned in a single response.
	MaxLimit = 30

	// MinQueryLength is the minimum effective query length; anything shorter
	// short-circuits the pipeline without touching the cache or the store.
	MinQueryLength = 2
)

// Code-shape bounds: queries of 2-5 alphanumeric characters are treated as
// potential airport codes and matched against every code column.
const (
	minCodeLength = 2
	maxCodeLength = 5
)

// cacheKeyPrefix versions the cache namespace so the key derivation can change
// without serving stale payloads from a previous scheme.
const cacheKeyPrefix = "airport-search:v1"

// Query holds the normalized tokens derived from a raw search request.
// All downstream stages consume these tokens; the raw string is kept only
// for tag matching against the precomputed search-tag set.
type Query struct {
	// Raw is the original query string as received, trimmed
	Raw string

	// Text is the display-normalized token: lowercase, non-alphanumerics
	// (except spaces) stripped, whitespace collapsed. Used for substring matching.
	Text string

	// Code is the trimmed, upper-cased raw query. Used for exact/prefix code matching.
	Code string

	// Limit is the clamped result limit
	Limit int
}

// NormalizeQuery derives the search tokens and effective limit from raw input.
func NormalizeQuery(raw string, limit int) Query {
	trimmed := strings.TrimSpace(raw)
	return Query{
		Raw:   trimmed,
		Text:  normalizeText(trimmed),
		Code:  strings.ToUpper(trimmed),
		Limit: ClampLimit(limit),
	}
}

// TooShort reports whether the query is below the minimum effective length.
// Short queries produce an empty result set with no side effects.
func (q Query) TooShort() bool {
	return len([]rune(q.Text)) < MinQueryLength
}

// CodeShaped reports whether the raw query looks like an airport code:
// 2-5 characters, all alphanumeric.
func (q Query) CodeShaped() bool {
	n := len([]rune(q.Raw))
	if n < minCodeLength || n > maxCodeLength {
		return false
	}
	for _, r := range q.Raw {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// CacheKey derives the deterministic cache key for this query.
// Two requests with equivalent effective inputs always map to the same entry.
func (q Query) CacheKey() string {
	return fmt.Sprintf("%s:%s:%d", cacheKeyPrefix, q.Text, q.Limit)
}

// ClampLimit bounds a requested limit to [1, MaxLimit].
// Zero, negative, or unparseable limits fall back to DefaultLimit.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// normalizeText lowercases the input, strips everything that is not a letter,
// digit, or space, and collapses runs of whitespace to a single space.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
