package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	header := ParseHeader([]string{
		"Jane Doe",
		"",
		"Berlin, Germany",
		"jane@example.com | https://example.com/jane",
	})

	assert.Equal(t, "Jane Doe", header.Name)
	assert.Equal(t, []string{
		"Berlin, Germany",
		"jane@example.com | https://example.com/jane",
	}, header.Contact)
}

func TestParseHeaderColorMarker(t *testing.T) {
	header := ParseHeader([]string{
		"Jane Doe",
		"some junk x-t-c2-color: jane@example.com",
	})
	assert.Equal(t, []string{"jane@example.com"}, header.Contact)
}

func TestParseHeaderEmpty(t *testing.T) {
	header := ParseHeader([]string{"", "  "})
	assert.Empty(t, header.Name)
	assert.Empty(t, header.Contact)
}
