package services

import (
	"testing"

	"github.com/agnivade/levenshtein"
	"github.com/stretchr/testify/assert"
	"github.com/xrash/smetrics"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain digits", "0641234567", "0641234567"},
		{"international with separators", "+381 64/123-456", "38164123456"},
		{"parentheses and dots", "(011) 123.456", "011123456"},
		{"no digits", "pozovi me", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

// The duplicate thresholds are config values applied to library metrics; pin
// the metric behavior they rely on so a dependency upgrade cannot silently
// change what counts as a duplicate.
func TestDuplicateMetricAssumptions(t *testing.T) {
	// A single wrong digit is one edit; a transposition counts as two and
	// falls outside the default budget of 1.
	assert.Equal(t, 1, levenshtein.ComputeDistance("0641234567", "0641234568"))
	assert.Equal(t, 2, levenshtein.ComputeDistance("0641234567", "0641234576"))

	// Identical normalized addresses score 1.0, clearly above 0.92.
	assert.Equal(t, 1.0, smetrics.JaroWinkler("bulevar kralja aleksandra 73", "bulevar kralja aleksandra 73", 0.7, 4))

	// A small house-number difference stays above the threshold.
	jw := smetrics.JaroWinkler("bulevar kralja aleksandra 73", "bulevar kralja aleksandra 75", 0.7, 4)
	assert.Greater(t, jw, 0.92)

	// A different street falls below it.
	jw = smetrics.JaroWinkler("bulevar kralja aleksandra 73", "ustanicka 12", 0.7, 4)
	assert.Less(t, jw, 0.92)
}
