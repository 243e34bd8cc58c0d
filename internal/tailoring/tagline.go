// Package tailoring drives the text-generation collaborator: resume
// rewriting, tagline generation, and cover letters.
package tailoring

import (
	"context"
	"regexp"
	"strings"

	"github.com/mobee/resume-tailor/internal/llm"
	"github.com/mobee/resume-tailor/internal/parsing"
	"github.com/mobee/resume-tailor/internal/prompts"
)

// taglineMaxWords bounds tagline length; anything longer is rejected.
const taglineMaxWords = 6

var taglineWord = regexp.MustCompile(`[A-Za-z0-9+#-]+`)
var taglineToken = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+#-]+`)

// taglineStopwords are connective words and generic role nouns exempt from
// the no-fabrication check.
var taglineStopwords = map[string]bool{
	"and": true, "or": true, "for": true, "with": true, "in": true, "on": true,
	"to": true, "of": true, "the": true, "a": true, "an": true,
	"developer": true, "engineer": true, "analyst": true, "specialist": true,
}

// ExtractTagline splits a leading "TAGLINE: ..." line off tailored text,
// returning the tagline (or "") and the remaining body.
func ExtractTagline(text string) (string, string) {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, strings.TrimSpace(l))
		}
	}
	if len(lines) > 0 && strings.HasPrefix(strings.ToLower(lines[0]), "tagline:") {
		_, tagline, _ := strings.Cut(lines[0], ":")
		return strings.TrimSpace(tagline), strings.Join(lines[1:], "\n")
	}
	return "", text
}

// ValidateTagline enforces the no-fabrication invariant: a tagline longer
// than 6 words, or containing significant terms absent from the resume, is
// rejected. Returns "" on rejection, the tagline unchanged otherwise.
func ValidateTagline(tagline, resumeText string) string {
	if tagline == "" {
		return ""
	}
	if len(taglineWord.FindAllString(tagline, -1)) > taglineMaxWords {
		return ""
	}

	resumeLower := strings.ToLower(parsing.Normalize(resumeText))
	for _, token := range taglineToken.FindAllString(strings.ToLower(tagline), -1) {
		if taglineStopwords[token] || len(token) < 3 {
			continue
		}
		if !strings.Contains(resumeLower, token) {
			return ""
		}
	}
	return tagline
}

// GenerateTagline asks the collaborator for a short role-specific tagline and
// validates it. Returns "" when no valid tagline could be produced; callers
// fall back to no tagline or a supplied default. Never fatal.
func GenerateTagline(ctx context.Context, client llm.Client, jobText, resumeText string) string {
	if client == nil {
		return ""
	}
	prompt := prompts.Format(prompts.MustGet("tailoring.json", "tagline"), map[string]string{
		"JobText":    jobText,
		"ResumeText": resumeText,
	})
	text, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return ""
	}
	first, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return ValidateTagline(strings.TrimSpace(first), resumeText)
}
