package pure_utils

import (
	"regexp"
	"strings"
)

var (
	headerSeparators   = regexp.MustCompile(`[\s()\-]+`)
	headerInvalidChars = regexp.MustCompile(`[^a-z0-9_]`)
)

// NormalizeHeader canonicalizes a CSV column header to lowercase snake_case:
// "Time Period", "TIME-PERIOD" and " time period " all normalize to
// "time_period". Idempotent, so already normalized headers pass through
// unchanged.
func NormalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = headerSeparators.ReplaceAllString(h, "_")
	h = headerInvalidChars.ReplaceAllString(h, "")
	return strings.Trim(h, "_")
}
