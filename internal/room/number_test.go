package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  ParsedNumber
		expectErr bool
	}{
		{
			name:     "First floor first room",
			raw:      "101",
			expected: ParsedNumber{Floor: 1, Seq: 1},
		},
		{
			name:     "Top floor last room",
			raw:      "310",
			expected: ParsedNumber{Floor: 3, Seq: 10},
		},
		{
			name:     "Two digit sequence",
			raw:      "215",
			expected: ParsedNumber{Floor: 2, Seq: 15},
		},
		{
			name:      "Zero sequence",
			raw:       "100",
			expectErr: true,
		},
		{
			name:      "Leading zero floor",
			raw:       "011",
			expectErr: true,
		},
		{
			name:      "Too short",
			raw:       "11",
			expectErr: true,
		},
		{
			name:      "Not a number",
			raw:       "1A1",
			expectErr: true,
		},
		{
			name:      "Empty",
			raw:       "",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseNumber(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, parsed)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "101", FormatNumber(1, 1))
	assert.Equal(t, "210", FormatNumber(2, 10))
	assert.Equal(t, "309", FormatNumber(3, 9))
}

func TestRateFor(t *testing.T) {
	assert.Equal(t, int64(1800), RateFor(1))
	assert.Equal(t, int64(2000), RateFor(2))
	assert.Equal(t, int64(2200), RateFor(3))
}
