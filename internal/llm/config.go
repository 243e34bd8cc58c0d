// Package llm provides centralized LLM configuration and client abstractions
// for the text-generation collaborator.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple single-line tasks: tagline generation
	TierLite ModelTier = "lite"
	// TierStandard is for structured output: fit-assessment JSON
	TierStandard ModelTier = "standard"
	// TierAdvanced is for long-form rewriting: resume tailoring, cover letters
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model configuration for the application
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration. A single-model
// override comes in through WithModel; this package never reads the
// environment.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the configured model name for a tier
func (c *Config) GetModel(tier ModelTier) string {
	if c == nil || c.Models == nil {
		return ""
	}
	return c.Models[tier]
}

// WithModel returns a copy of the config with every tier set to model.
// Used when the caller pins a single model explicitly.
func (c *Config) WithModel(model string) *Config {
	out := &Config{Models: make(map[ModelTier]string, len(c.Models))}
	for tier := range c.Models {
		out.Models[tier] = model
	}
	return out
}
