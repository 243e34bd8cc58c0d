// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultMaxPages is the page budget applied when none is configured.
const DefaultMaxPages = 2

// Config represents the application configuration. It can be loaded from a
// JSON file and overlaid with environment values; CLI flags win over both.
// The core packages receive this struct explicitly, never ambient state.
type Config struct {
	// Paths
	Resume    string `json:"resume,omitempty"`     // Path to resume text file
	Template  string `json:"template,omitempty"`   // Path to base HTML template
	Job       string `json:"job,omitempty"`        // Path to job description text file
	OutputDir string `json:"output_dir,omitempty"` // Directory for generated artifacts

	// Limits
	MaxPages int `json:"max_pages,omitempty"` // Page budget for rendered PDFs

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key; empty disables the collaborator
	Model       string `json:"model,omitempty"`        // Model override for every tier
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed progress information
	Port        int    `json:"port,omitempty"`         // HTTP server port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL for run history (optional)
	JWTSecret   string `json:"jwt_secret,omitempty"`   // HS256 secret for API auth (optional)
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	cfg := Config{
		Resume:      os.Getenv("RESUME_TXT"),
		Template:    os.Getenv("RESUME_TEMPLATE"),
		OutputDir:   os.Getenv("RESUME_OUTPUT_DIR"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Model:       os.Getenv("GEMINI_MODEL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("RESUME_JWT_SECRET"),
	}
	if v := os.Getenv("RESUME_MAX_PAGES"); v != "" {
		if pages, err := strconv.Atoi(v); err == nil {
			cfg.MaxPages = pages
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values. Required fields
// are enforced by CLI flag validation after merging, not here.
func (c *Config) Validate() error {
	if c.MaxPages < 0 {
		return fmt.Errorf("config error: 'max_pages' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to layer config file values under environment values, and
// both under CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}

	if result.MaxPages == 0 {
		if defaults.MaxPages != 0 {
			result.MaxPages = defaults.MaxPages
		} else {
			result.MaxPages = DefaultMaxPages
		}
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
