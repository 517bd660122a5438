package pure_utils

import (
	"regexp"
	"strings"
)

var numericJunk = regexp.MustCompile(`[^0-9.\-]`)

// CleanAmountString prepares a formatted kWh/SEK amount for parsing. Commas
// are thousands separators in these columns, so they are dropped, then every
// remaining character except digits, dot and minus is stripped.
// "1,234.50 SEK" becomes "1234.50", "1,030" becomes "1030".
func CleanAmountString(raw string) string {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	return numericJunk.ReplaceAllString(s, "")
}

// CleanPercentString prepares a formatted percentage for parsing. The comma
// is a decimal comma in these columns, so it becomes a dot before junk is
// stripped. "12,5%" becomes "12.5".
func CleanPercentString(raw string) string {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return numericJunk.ReplaceAllString(s, "")
}
