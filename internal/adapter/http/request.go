package http

import "strconv"

// parseLimit parses the limit query parameter. Absent, non-numeric, or
// out-of-range values are passed downstream as zero, where the normalizer
// applies the default and clamps to the allowed range.
func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}
