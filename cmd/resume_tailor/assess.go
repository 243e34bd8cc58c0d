package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/mobee/resume-tailor/internal/config"
	"github.com/mobee/resume-tailor/internal/observability"
	"github.com/mobee/resume-tailor/internal/pipeline"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess whether a job posting is worth applying to",
	Long: `Compares the resume against the job posting and prints an APPLY, MAYBE or
NO recommendation with confidence and gaps. Without an API key the
recommendation comes from local keyword overlap.`,
	RunE: runAssess,
}

var (
	assessConfigPath string
	assessResume     string
	assessJob        string
	assessAPIKey     string
	assessModel      string
	assessVerbose    bool
)

func init() {
	assessCmd.Flags().StringVar(&assessConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	assessCmd.Flags().StringVarP(&assessResume, "resume", "r", "", "Path to plain-text resume file")
	assessCmd.Flags().StringVarP(&assessJob, "job", "j", "", "Path to job posting text file")
	assessCmd.Flags().StringVar(&assessAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	assessCmd.Flags().StringVar(&assessModel, "model", "", "Model override for every tier")
	assessCmd.Flags().BoolVarP(&assessVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(assessConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = assessResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = assessJob
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = assessAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = assessModel
	}
	cfg = cfg.MergeWithDefaults(config.Config{})
	if err := cfg.Validate(); err != nil {
		return err
	}

	resumeText, err := readInput("resume", cfg.Resume)
	if err != nil {
		return err
	}
	jobText, err := readInput("job posting", cfg.Job)
	if err != nil {
		return err
	}

	client, closeClient, err := newCollaborator(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeClient()

	assessment := pipeline.AssessFit(ctx, client, jobText, resumeText)
	observability.NewPrinter(os.Stdout).PrintAssessment(assessment)
	return nil
}
