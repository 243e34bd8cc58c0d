package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEmbeddedPrompts(t *testing.T) {
	for _, key := range []struct{ file, key string }{
		{"tailoring.json", "instructions"},
		{"tailoring.json", "tagline"},
		{"assessment.json", "assess"},
		{"cover_letter.json", "write"},
	} {
		prompt, err := Get(key.file, key.key)
		require.NoError(t, err, "%s/%s", key.file, key.key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Get("tailoring.json", "nope")
	assert.Error(t, err)
}

func TestGetUnknownFile(t *testing.T) {
	_, err := Get("missing.json", "x")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	got := Format("Job: {{.JobText}} Resume: {{.ResumeText}}", map[string]string{
		"JobText":    "backend role",
		"ResumeText": "my resume",
	})
	assert.Equal(t, "Job: backend role Resume: my resume", got)
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	got := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "v"})
	assert.Equal(t, "v {{.Unknown}}", got)
}

func TestTailoringPromptMentionsFormat(t *testing.T) {
	prompt := MustGet("tailoring.json", "instructions")
	assert.Contains(t, prompt, "{{.JobText}}")
	assert.Contains(t, prompt, "{{.ResumeText}}")
	assert.Contains(t, prompt, "TAGLINE")
}
