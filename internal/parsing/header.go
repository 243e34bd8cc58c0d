package parsing

import (
	"strings"

	"github.com/mobee/resume-tailor/internal/types"
)

// colorMarker is a vendor annotation some resume exporters leave on contact
// lines; the real content follows the marker.
const colorMarker = "x-t-c2-color:"

// ParseHeader extracts the candidate name and contact items from the header
// block. The first non-blank line is the name; remaining non-blank lines are
// contact items.
func ParseHeader(headerLines []string) types.Header {
	var nonBlank []string
	for _, l := range headerLines {
		if strings.TrimSpace(l) != "" {
			nonBlank = append(nonBlank, l)
		}
	}

	var header types.Header
	if len(nonBlank) == 0 {
		return header
	}
	header.Name = nonBlank[0]

	for _, line := range nonBlank[1:] {
		if idx := strings.LastIndex(line, colorMarker); idx >= 0 {
			line = strings.TrimSpace(line[idx+len(colorMarker):])
		}
		if line != "" {
			header.Contact = append(header.Contact, line)
		}
	}
	return header
}
