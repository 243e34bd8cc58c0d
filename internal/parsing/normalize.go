// Package parsing converts plain-text resumes and constrained tailored text
// into the structured section model.
package parsing

import (
	"regexp"
	"strings"
)

// punctReplacer maps common non-ASCII punctuation (smart dashes, bullet
// glyphs, multiplication sign) to ASCII equivalents.
var punctReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"•", "-", // bullet
	"·", "-", // middle dot
	"×", "x", // multiplication sign
)

var spaceRun = regexp.MustCompile(`[ \t]{2,}`)

// Normalize canonicalizes punctuation and whitespace in raw text.
// It is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = punctReplacer.Replace(text)
	return spaceRun.ReplaceAllString(text, " ")
}
