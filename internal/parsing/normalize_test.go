package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "en and em dashes become hyphens",
			input:    "2019 – 2021 — now",
			expected: "2019 - 2021 - now",
		},
		{
			name:     "bullet glyphs become hyphens",
			input:    "• first · second",
			expected: "- first - second",
		},
		{
			name:     "multiplication sign becomes x",
			input:    "scaled 3× throughput",
			expected: "scaled 3x throughput",
		},
		{
			name:     "runs of spaces and tabs collapse",
			input:    "Name\t\tCity   Country",
			expected: "Name City Country",
		},
		{
			name:     "newlines are untouched",
			input:    "a\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "plain text is unchanged",
			input:    "Go, Python, SQL",
			expected: "Go, Python, SQL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	input := "Led team •  shipped 2× faster — 2019 – 2021"
	once := Normalize(input)
	assert.Equal(t, once, Normalize(once))
}
