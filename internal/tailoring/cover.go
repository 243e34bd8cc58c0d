package tailoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/mobee/resume-tailor/internal/llm"
	"github.com/mobee/resume-tailor/internal/prompts"
)

// CoverLetter drafts a tailored cover letter signed with the candidate name.
// Requires the text-generation collaborator; there is no local fallback for
// long-form drafting.
func CoverLetter(ctx context.Context, client llm.Client, jobText, resumeText, name string) (string, error) {
	if client == nil {
		return "", fmt.Errorf("text-generation collaborator is not configured")
	}
	if name == "" {
		name = "Candidate"
	}

	prompt := prompts.Format(prompts.MustGet("cover_letter.json", "write"), map[string]string{
		"Name":       name,
		"JobText":    jobText,
		"ResumeText": resumeText,
	})

	text, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("failed to generate cover letter: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("collaborator returned empty cover letter")
	}
	return text, nil
}
