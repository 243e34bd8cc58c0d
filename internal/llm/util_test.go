package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "bare fence with language line",
			input:    "```javascript\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "no fence",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  {\"a\": 1}  ",
			expected: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestFirstJSONObject(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, FirstJSONObject(`Sure! {"a": 1} Hope that helps.`))
	assert.Equal(t, "no braces here", FirstJSONObject("no braces here"))
	assert.Equal(t, `{"outer": {"inner": 2}}`, FirstJSONObject(`{"outer": {"inner": 2}}`))
}

func TestConfigTiers(t *testing.T) {
	cfg := DefaultConfig()
	assert.NotEmpty(t, cfg.GetModel(TierLite))
	assert.NotEmpty(t, cfg.GetModel(TierStandard))
	assert.NotEmpty(t, cfg.GetModel(TierAdvanced))

	pinned := cfg.WithModel("custom-model")
	assert.Equal(t, "custom-model", pinned.GetModel(TierLite))
	assert.Equal(t, "custom-model", pinned.GetModel(TierAdvanced))
	// The original is untouched.
	assert.NotEqual(t, "custom-model", cfg.GetModel(TierLite))
}

func TestDefaultConfigIgnoresEnvironment(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "env-model")
	cfg := DefaultConfig()
	assert.NotEqual(t, "env-model", cfg.GetModel(TierLite))
	assert.NotEqual(t, "env-model", cfg.GetModel(TierAdvanced))
}

func TestConfigNilSafe(t *testing.T) {
	var cfg *Config
	assert.Empty(t, cfg.GetModel(TierLite))
}
