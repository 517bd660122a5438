package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAmountStringTreatsCommasAsThousandsSeparators(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"1,234.50", "1234.50"},
		{"12,345,678.9", "12345678.9"},
		// comma-grouped integers are whole amounts, not decimals
		{"1,234", "1234"},
		{"1,030", "1030"},
		// currency decorations
		{"1,234.50 SEK", "1234.50"},
		// already clean
		{"42", "42"},
		{"-0.5", "-0.5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CleanAmountString(tt.in), "CleanAmountString(%q)", tt.in)
	}
}

func TestCleanPercentStringTreatsCommaAsDecimal(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"12,5", "12.5"},
		{"12,5%", "12.5"},
		{"-3,25", "-3.25"},
		{"8.4%", "8.4"},
		{"42", "42"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CleanPercentString(tt.in), "CleanPercentString(%q)", tt.in)
	}
}
