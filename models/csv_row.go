package models

import "strconv"

type CsvValueKind int

const (
	CsvAbsent CsvValueKind = iota
	CsvString
	CsvNumber
	CsvBool
)

// CsvValue is one dynamically typed CSV cell. Cells are typed at parse time
// the way the source exporter types them: empty cells are absent, cells that
// parse as a number are numbers, "true"/"false" are booleans, everything else
// stays a string.
type CsvValue struct {
	Kind   CsvValueKind
	String string
	Number float64
	Bool   bool
}

// RawRow maps normalized snake_case headers to cell values. Keys are always
// normalized before any field is read, so variant header casing in source
// files can never cause a lookup miss.
type RawRow map[string]CsvValue

func NewCsvValue(raw string) CsvValue {
	if raw == "" {
		return CsvValue{Kind: CsvAbsent}
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return CsvValue{Kind: CsvNumber, Number: f, String: raw}
	}
	if raw == "true" || raw == "false" {
		return CsvValue{Kind: CsvBool, Bool: raw == "true", String: raw}
	}
	return CsvValue{Kind: CsvString, String: raw}
}

func (v CsvValue) IsAbsent() bool {
	return v.Kind == CsvAbsent
}

// AsString returns the raw cell text, empty for absent cells.
func (v CsvValue) AsString() string {
	return v.String
}

// AsFloat coerces the cell to a float64, defaulting to 0 when the cell is
// absent or not numeric. This is the NOT NULL column policy: unparseable
// input becomes a true zero downstream.
func (v CsvValue) AsFloat() float64 {
	if v.Kind == CsvNumber {
		return v.Number
	}
	if v.Kind == CsvString {
		if f, err := strconv.ParseFloat(v.String, 64); err == nil {
			return f
		}
	}
	return 0
}

// AsInt truncates AsFloat. Same zero-default policy.
func (v CsvValue) AsInt() int {
	return int(v.AsFloat())
}

// AsBool interprets 1/0 numerics and "1"/"0" or true/false strings, the way
// the exporter encodes active flags.
func (v CsvValue) AsBool() (value, ok bool) {
	switch v.Kind {
	case CsvBool:
		return v.Bool, true
	case CsvNumber:
		return v.Number == 1, true
	case CsvString:
		if i, err := strconv.Atoi(v.String); err == nil {
			return i == 1, true
		}
	}
	return false, false
}

func (r RawRow) Get(key string) CsvValue {
	if v, ok := r[key]; ok {
		return v
	}
	return CsvValue{Kind: CsvAbsent}
}
