package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobee/resume-tailor/internal/llm"
)

const coverReply = `Dear Hiring Manager,

I build backend services in Go.

Kind regards,
Jane Doe`

// coverClient answers the long-form draft on the advanced tier and a tagline
// on the lite tier.
type coverClient struct {
	taglineErr error
}

func (c *coverClient) GenerateContent(_ context.Context, _ string, tier llm.ModelTier) (string, error) {
	if tier == llm.TierLite {
		if c.taglineErr != nil {
			return "", c.taglineErr
		}
		return "Go Backend Engineer", nil
	}
	return coverReply, nil
}

func (c *coverClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return "", fmt.Errorf("not used")
}

func (c *coverClient) GetModel(_ llm.ModelTier) string { return "fake" }

func (c *coverClient) Close() error { return nil }

func TestGenerateCoverLetter(t *testing.T) {
	result, err := GenerateCoverLetter(context.Background(), CoverLetterOptions{
		ResumeText: sampleResume,
		JobText:    "Go backend engineer",
		Client:     &coverClient{},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", result.Header.Name)
	assert.Equal(t, coverReply, result.Text)
	assert.Empty(t, result.PDF)
	assert.Contains(t, result.HTML, "I build backend services in Go.")
	assert.Contains(t, result.HTML, `<div class="tagline">Go Backend Engineer</div>`)
}

func TestGenerateCoverLetterTaglineUnavailable(t *testing.T) {
	result, err := GenerateCoverLetter(context.Background(), CoverLetterOptions{
		ResumeText: sampleResume,
		JobText:    "Go backend engineer",
		Client:     &coverClient{taglineErr: fmt.Errorf("quota exhausted")},
	})
	require.NoError(t, err)
	assert.Contains(t, result.HTML, `<div class="tagline"></div>`)
}

func TestGenerateCoverLetterRendersPDF(t *testing.T) {
	result, err := GenerateCoverLetter(context.Background(), CoverLetterOptions{
		ResumeText: sampleResume,
		JobText:    "Go backend engineer",
		Client:     &coverClient{},
		Renderer:   pageRenderer{},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.PDF)
}

func TestGenerateCoverLetterRequiresClient(t *testing.T) {
	_, err := GenerateCoverLetter(context.Background(), CoverLetterOptions{
		ResumeText: sampleResume,
		JobText:    "Go backend engineer",
	})
	assert.Error(t, err)
}
