package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mobee/resume-tailor/internal/config"
	"github.com/mobee/resume-tailor/internal/pdf"
	"github.com/mobee/resume-tailor/internal/pipeline"
)

var coverCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Draft a cover letter for a job posting",
	Long: `Drafts a cover letter for the given job posting based on the resume and
renders it with the resume's stylesheet. Requires an API key.`,
	RunE: runCover,
}

var (
	coverConfigPath string
	coverResume     string
	coverTemplate   string
	coverJob        string
	coverLabel      string
	coverOutputDir  string
	coverAPIKey     string
	coverModel      string
	coverNoPDF      bool
	coverVerbose    bool
)

func init() {
	coverCmd.Flags().StringVar(&coverConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	coverCmd.Flags().StringVarP(&coverResume, "resume", "r", "", "Path to plain-text resume file")
	coverCmd.Flags().StringVarP(&coverTemplate, "template", "t", "", "Path to base HTML template")
	coverCmd.Flags().StringVarP(&coverJob, "job", "j", "", "Path to job posting text file")
	coverCmd.Flags().StringVarP(&coverLabel, "label", "l", "", "Label for output filenames (defaults to the job file name)")
	coverCmd.Flags().StringVarP(&coverOutputDir, "output-dir", "o", "", "Directory for generated artifacts")
	coverCmd.Flags().StringVar(&coverAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	coverCmd.Flags().StringVar(&coverModel, "model", "", "Model override for every tier")
	coverCmd.Flags().BoolVar(&coverNoPDF, "no-pdf", false, "Skip PDF rendering, write HTML only")
	coverCmd.Flags().BoolVarP(&coverVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(coverCmd)
}

func runCover(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(coverConfigPath)
	if err != nil {
		return err
	}
	applyCommonFlags(cmd, &cfg, coverResume, coverTemplate, coverOutputDir, coverAPIKey, coverModel, 0, coverVerbose)
	if cmd.Flags().Changed("job") {
		cfg.Job = coverJob
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
	templateHTML, err := readOptional("template", cfg.Template)
	if err != nil {
		return err
	}

	client, closeClient, err := newCollaborator(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeClient()

	var renderer *pdf.Renderer
	if !coverNoPDF {
		renderer = pdf.NewRenderer()
		if err := renderer.Check(ctx); err != nil {
			return err
		}
	}

	// Rendering happens after the HTML is written, straight to the output
	// file, so the pipeline is left without a renderer here.
	result, err := pipeline.GenerateCoverLetter(ctx, pipeline.CoverLetterOptions{
		ResumeText:   resumeText,
		TemplateHTML: templateHTML,
		JobText:      jobText,
		Client:       client,
	})
	if err != nil {
		return err
	}

	label := coverLabel
	if label == "" {
		label = strings.TrimSuffix(filepath.Base(cfg.Job), filepath.Ext(cfg.Job))
	}
	outDir, err := ensureOutputDir(cfg.OutputDir)
	if err != nil {
		return err
	}
	now := time.Now()

	htmlPath := filepath.Join(outDir, pipeline.ArtifactName("CoverLetter", label, now, "html"))
	if err := os.WriteFile(htmlPath, []byte(result.HTML), 0o644); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	fmt.Printf("Wrote %s\n", htmlPath)

	if renderer != nil {
		pdfPath := filepath.Join(outDir, pipeline.ArtifactName("CoverLetter", label, now, "pdf"))
		if err := renderer.RenderToFile(ctx, result.HTML, pdfPath); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Printf("Wrote %s\n", pdfPath)
	}
	return nil
}
