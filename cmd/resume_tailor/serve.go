package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/mobee/resume-tailor/internal/config"
	"github.com/mobee/resume-tailor/internal/pdf"
	"github.com/mobee/resume-tailor/internal/server"
	"github.com/mobee/resume-tailor/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that tailors the configured resume to posted jobs.
The resume and template are loaded once at startup; each request supplies a
job posting.`,
	RunE: runServe,
}

var (
	servePort       int
	serveConfigPath string
	serveResume     string
	serveTemplate   string
	serveMaxPages   int
	serveAPIKey     string
	serveModel      string
	serveVerbose    bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().StringVarP(&serveResume, "resume", "r", "", "Path to plain-text resume file")
	serveCmd.Flags().StringVarP(&serveTemplate, "template", "t", "", "Path to base HTML template")
	serveCmd.Flags().IntVar(&serveMaxPages, "max-pages", 0, "Page budget for rendered PDFs (0 uses the default)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Model override for every tier")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	applyCommonFlags(cmd, &cfg, serveResume, serveTemplate, "", serveAPIKey, serveModel, serveMaxPages, serveVerbose)
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	cfg = cfg.MergeWithDefaults(config.Config{Port: 8080})
	if err := cfg.Validate(); err != nil {
		return err
	}

	resumeText, err := readInput("resume", cfg.Resume)
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

	var st *store.Store
	if cfg.DatabaseURL != "" {
		st, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := st.EnsureSchema(ctx); err != nil {
			return err
		}
		log.Println("[CLI] run history enabled")
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		ResumeText:   resumeText,
		TemplateHTML: templateHTML,
		MaxPages:     cfg.MaxPages,
		Client:       client,
		Renderer:     renderer,
		Counter:      pdf.NewCounter(),
		Store:        st,
		JWTSecret:    cfg.JWTSecret,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}
