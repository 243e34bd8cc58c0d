package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mobee/resume-tailor/internal/config"
	"github.com/mobee/resume-tailor/internal/observability"
	"github.com/mobee/resume-tailor/internal/pdf"
	"github.com/mobee/resume-tailor/internal/pipeline"
	"github.com/mobee/resume-tailor/internal/store"
	"github.com/mobee/resume-tailor/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume for a job posting",
	Long: `Rewrites the resume for the given job posting and renders it to HTML and
a page-budgeted PDF. Without an API key the rewrite falls back to local
keyword heuristics.`,
	RunE: runGenerate,
}

var (
	genConfigPath  string
	genResume      string
	genTemplate    string
	genJob         string
	genLabel       string
	genOutputDir   string
	genMaxPages    int
	genAPIKey      string
	genModel       string
	genAssess      bool
	genVerbose     bool
	genDatabaseURL string
)

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCmd.Flags().StringVarP(&genResume, "resume", "r", "", "Path to plain-text resume file")
	generateCmd.Flags().StringVarP(&genTemplate, "template", "t", "", "Path to base HTML template")
	generateCmd.Flags().StringVarP(&genJob, "job", "j", "", "Path to job posting text file")
	generateCmd.Flags().StringVarP(&genLabel, "label", "l", "", "Label for output filenames (defaults to the job file name)")
	generateCmd.Flags().StringVarP(&genOutputDir, "output-dir", "o", "", "Directory for generated artifacts")
	generateCmd.Flags().IntVar(&genMaxPages, "max-pages", 0, "Page budget for the rendered PDF (0 uses the default)")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVar(&genModel, "model", "", "Model override for every tier")
	generateCmd.Flags().BoolVar(&genAssess, "assess", false, "Also print an apply/no-apply assessment")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed progress information")
	generateCmd.Flags().StringVar(&genDatabaseURL, "db-url", "", "PostgreSQL connection URL for run history (optional)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(genConfigPath)
	if err != nil {
		return err
	}
	applyCommonFlags(cmd, &cfg, genResume, genTemplate, genOutputDir, genAPIKey, genModel, genMaxPages, genVerbose)
	if cmd.Flags().Changed("job") {
		cfg.Job = genJob
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = genDatabaseURL
	}
	cfg = cfg.MergeWithDefaults(config.Config{})
	if err := cfg.Validate(); err != nil {
		return err
	}

	resumeText, err := readInput("resume", cfg.Resume)
	if err != nil {
		return err
	}
	jobText, err := readOptional("job posting", cfg.Job)
	if err != nil {
		return err
	}
	templateHTML, err := readOptional("template", cfg.Template)
	if err != nil {
		return err
	}

	renderer := pdf.NewRenderer()
	if err := renderer.Check(ctx); err != nil {
		return err
	}

	client, closeClient, err := newCollaborator(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeClient()

	result, err := pipeline.Generate(ctx, pipeline.GenerateOptions{
		ResumeText:   resumeText,
		TemplateHTML: templateHTML,
		JobText:      jobText,
		Client:       client,
		Renderer:     renderer,
		Counter:      pdf.NewCounter(),
		MaxPages:     cfg.MaxPages,
		Verbose:      cfg.Verbose,
		Printer:      observability.NewPrinter(os.Stdout),
	})
	if err != nil {
		return err
	}

	label := genLabel
	if label == "" && cfg.Job != "" {
		label = strings.TrimSuffix(filepath.Base(cfg.Job), filepath.Ext(cfg.Job))
	}

	outDir, err := ensureOutputDir(cfg.OutputDir)
	if err != nil {
		return err
	}
	now := time.Now()
	htmlPath := filepath.Join(outDir, pipeline.ArtifactName("Resume", label, now, "html"))
	pdfPath := filepath.Join(outDir, pipeline.ArtifactName("Resume", label, now, "pdf"))
	if err := os.WriteFile(htmlPath, []byte(result.HTML), 0o644); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	if err := os.WriteFile(pdfPath, result.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	fmt.Printf("Wrote %s\n", htmlPath)
	fmt.Printf("Wrote %s (%d pages)\n", pdfPath, result.Pages)

	var assessment *types.FitAssessment
	if genAssess && jobText != "" {
		assessment = pipeline.AssessFit(ctx, client, jobText, resumeText)
		observability.NewPrinter(os.Stdout).PrintAssessment(assessment)
	}

	if cfg.DatabaseURL != "" {
		recordGenerateRun(ctx, cfg.DatabaseURL, label, result, assessment, htmlPath, pdfPath)
	}
	return nil
}

// recordGenerateRun persists the run outcome; failures only log since the
// artifacts are already on disk.
func recordGenerateRun(ctx context.Context, databaseURL, label string, result *pipeline.Result, assessment *types.FitAssessment, htmlPath, pdfPath string) {
	st, err := store.Connect(ctx, databaseURL)
	if err != nil {
		log.Printf("[CLI] run history unavailable: %v", err)
		return
	}
	defer st.Close()
	if err := st.EnsureSchema(ctx); err != nil {
		log.Printf("[CLI] run history unavailable: %v", err)
		return
	}

	runID, err := st.CreateRun(ctx, label, result.Tailored)
	if err != nil {
		log.Printf("[CLI] failed to record run: %v", err)
		return
	}
	saveFileArtifact(ctx, st, runID, "html", htmlPath)
	saveFileArtifact(ctx, st, runID, "pdf", pdfPath)
	if assessment != nil {
		if err := st.SaveAssessment(ctx, runID, assessment.Recommendation, assessment.Confidence); err != nil {
			log.Printf("[CLI] failed to save assessment: %v", err)
		}
	}
	if err := st.CompleteRun(ctx, runID, result.Pages, result.FitIterations, result.Fitted); err != nil {
		log.Printf("[CLI] failed to complete run: %v", err)
	}
	fmt.Printf("Recorded run %s\n", runID)
}

func saveFileArtifact(ctx context.Context, st *store.Store, runID uuid.UUID, kind, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[CLI] failed to read artifact for persistence: %v", err)
		return
	}
	if err := st.SaveArtifact(ctx, runID, kind, filepath.Base(path), data); err != nil {
		log.Printf("[CLI] failed to save artifact: %v", err)
	}
}
