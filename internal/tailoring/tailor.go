package tailoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/mobee/resume-tailor/internal/llm"
	"github.com/mobee/resume-tailor/internal/prompts"
)

// Tailor asks the collaborator to rewrite the resume for the job description
// in the constrained format the tailored-text parser accepts (## sections
// from the allow-list, ### entries, "- " bullets, leading TAGLINE line).
// Returns the validated tagline (possibly "" after fallbacks) and the body.
// A collaborator failure fails the whole generation request.
func Tailor(ctx context.Context, client llm.Client, jobText, resumeText string, allowedSections []string, fallbackTagline string) (string, string, error) {
	if client == nil {
		return "", "", fmt.Errorf("text-generation collaborator is not configured")
	}

	allowedText := ""
	if len(allowedSections) > 0 {
		allowedText = strings.Join(allowedSections, "\n") + "\n"
	}
	prompt := prompts.Format(prompts.MustGet("tailoring.json", "instructions"), map[string]string{
		"AllowedSections": allowedText,
		"JobText":         jobText,
		"ResumeText":      resumeText,
	})

	text, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", "", fmt.Errorf("failed to tailor resume: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", fmt.Errorf("collaborator returned empty tailored text")
	}

	tagline, body := ExtractTagline(text)
	tagline = ValidateTagline(tagline, resumeText)
	if tagline == "" {
		tagline = GenerateTagline(ctx, client, jobText, resumeText)
	}
	if tagline == "" {
		tagline = fallbackTagline
	}
	return tagline, body, nil
}
