package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mobee/resume-tailor/internal/config"
	"github.com/mobee/resume-tailor/internal/llm"
)

// loadConfig layers the optional config file under environment values; the
// caller applies flag overrides on top.
func loadConfig(configPath string) (config.Config, error) {
	env := config.FromEnv()
	if configPath == "" {
		return env, nil
	}
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	merged := env.MergeWithDefaults(*fileCfg)
	return merged, nil
}

// applyCommonFlags overlays the flags shared by the generation commands onto
// the merged config. Only explicitly set flags override.
func applyCommonFlags(cmd *cobra.Command, cfg *config.Config, resume, template, outputDir, apiKey, model string, maxPages int, verbose bool) {
	if cmd.Flags().Changed("resume") {
		cfg.Resume = resume
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = template
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = outputDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = apiKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = model
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.MaxPages = maxPages
	}
	if verbose {
		cfg.Verbose = true
	}
}

// newCollaborator builds the Gemini client, or returns nil when no API key
// is configured so callers fall back to the local heuristics.
func newCollaborator(ctx context.Context, cfg config.Config) (llm.Client, func(), error) {
	if cfg.APIKey == "" {
		log.Println("[CLI] no API key configured; running without the text-generation collaborator")
		return nil, func() {}, nil
	}
	modelCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		modelCfg = modelCfg.WithModel(cfg.Model)
	}
	client, err := llm.NewGeminiClient(ctx, modelCfg, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, func() { _ = client.Close() }, nil
}

// readInput reads a required input file.
func readInput(label, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%s path is required", label)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	return string(data), nil
}

// readOptional reads an input file when a path is set.
func readOptional(label, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return readInput(label, path)
}

// ensureOutputDir resolves the output directory, defaulting to the working
// directory.
func ensureOutputDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return dir, nil
}
