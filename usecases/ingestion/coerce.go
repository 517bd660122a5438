package ingestion

import (
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/pure_utils"
)

var isoDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseIsoDate parses the timestamp convention of Overview exports.
func parseIsoDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(models.BadParameterError, "cannot parse %q as a date", raw)
}

// parseSlashDate parses the M/D/YYYY convention of the Retrospect,
// Demand_Control and Building_Impact exports by reordering the components
// into year-month-day explicitly, never through locale-dependent parsing.
// A first component that cannot be a month (> 12) is treated as the day, so
// unambiguous day-first values still land on the right date.
func parseSlashDate(raw string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 3 {
		return time.Time{}, errors.Wrapf(models.BadParameterError, "cannot parse %q as a slash date", raw)
	}

	first, err1 := strconv.Atoi(parts[0])
	second, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, errors.Wrapf(models.BadParameterError, "cannot parse %q as a slash date", raw)
	}

	month, day := first, second
	if month > 12 && day <= 12 {
		month, day = day, month
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, errors.Wrapf(models.BadParameterError, "date %q out of range", raw)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// optionalFloat keeps absence distinct from zero: an absent or non-numeric
// cell yields an invalid null.Float, never 0.
func optionalFloat(v models.CsvValue) null.Float {
	switch v.Kind {
	case models.CsvNumber:
		return null.FloatFrom(v.Number)
	case models.CsvString:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64); err == nil {
			return null.FloatFrom(f)
		}
	}
	return null.Float{}
}

// optionalAmount parses formatted kWh/SEK cells ("1,234.50", "1,030") with
// the same absence-preserving policy as optionalFloat. Commas are thousands
// separators in amount columns.
func optionalAmount(v models.CsvValue) null.Float {
	switch v.Kind {
	case models.CsvNumber:
		return null.FloatFrom(v.Number)
	case models.CsvString:
		cleaned := pure_utils.CleanAmountString(v.String)
		if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return null.FloatFrom(f)
		}
	}
	return null.Float{}
}

// optionalPercent parses percentage cells ("12,5%") where the comma is a
// decimal comma, not a thousands separator.
func optionalPercent(v models.CsvValue) null.Float {
	switch v.Kind {
	case models.CsvNumber:
		return null.FloatFrom(v.Number)
	case models.CsvString:
		cleaned := pure_utils.CleanPercentString(v.String)
		if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return null.FloatFrom(f)
		}
	}
	return null.Float{}
}

// optionalString maps empty cells to a null string.
func optionalString(v models.CsvValue) null.String {
	if v.IsAbsent() {
		return null.String{}
	}
	return null.StringFrom(v.AsString())
}
