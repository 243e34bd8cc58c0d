// Package pipeline provides the high-level orchestration for resume
// generation: parsing, tailoring, rendering, and page fitting.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mobee/resume-tailor/internal/assessment"
	"github.com/mobee/resume-tailor/internal/fitting"
	"github.com/mobee/resume-tailor/internal/keywords"
	"github.com/mobee/resume-tailor/internal/llm"
	"github.com/mobee/resume-tailor/internal/observability"
	"github.com/mobee/resume-tailor/internal/parsing"
	"github.com/mobee/resume-tailor/internal/rendering"
	"github.com/mobee/resume-tailor/internal/tailoring"
	"github.com/mobee/resume-tailor/internal/types"
)

// Skills section sizing for job-relevance filtering.
const (
	maxFilteredSkills = 16
	minFilteredSkills = 10
)

// extraPrintCSS is appended to every template stylesheet so the PDF layout
// matches the print rendering.
const extraPrintCSS = `
.section-title { font-weight: 700; margin-top: 16px; }
.summary { margin: 6px 0; }
ul { margin: 6px 0 12px 18px; }
@media print { .page { padding-top: 6mm; } }`

// GenerateOptions holds the inputs for one generation run. Each run owns its
// section model exclusively; nothing is shared across concurrent runs.
type GenerateOptions struct {
	ResumeText   string
	TemplateHTML string
	JobText      string

	// Client is the text-generation collaborator; nil selects the heuristic
	// path with no external calls.
	Client llm.Client

	// Renderer and Counter are the page-rendering and page-count
	// collaborators. Renderer is required.
	Renderer fitting.PDFRenderer
	Counter  fitting.PageCounter

	// MaxPages is the page budget; <= 0 disables the fit loop.
	MaxPages int

	Verbose bool
	Printer *observability.Printer
}

// Result holds the artifacts of one generation run.
type Result struct {
	HTML          string
	PDF           []byte
	Pages         int
	FitIterations int
	Fitted        bool

	Header   types.Header
	Tagline  string
	Sections []*types.Section
	Keywords []string

	// Tailored reports whether the collaborator-tailored path produced the
	// output (as opposed to the local heuristic path).
	Tailored bool
}

// Generate runs one full generation: parse the resume, restructure it for
// the job (via the collaborator when available, locally otherwise), render
// HTML, and fit it to the page budget.
func Generate(ctx context.Context, opts GenerateOptions) (*Result, error) {
	if strings.TrimSpace(opts.ResumeText) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}
	if opts.Renderer == nil {
		return nil, fmt.Errorf("page-rendering collaborator is required")
	}
	if opts.Counter == nil {
		opts.Counter = noopCounter{}
	}

	style, err := rendering.ExtractStyle(opts.TemplateHTML)
	if err != nil {
		return nil, err
	}
	style += extraPrintCSS

	templateHeader, err := rendering.ExtractHeader(opts.TemplateHTML)
	if err != nil {
		return nil, err
	}
	templateSections, err := rendering.ExtractSectionTitles(opts.TemplateHTML)
	if err != nil {
		return nil, err
	}

	headerLines, sectionMap := parsing.SplitSections(opts.ResumeText)
	header := parsing.ParseHeader(headerLines)

	result := &Result{Header: header}
	if opts.Client != nil && strings.TrimSpace(opts.JobText) != "" {
		err = generateTailored(ctx, opts, header, templateHeader, templateSections, style, result)
	} else {
		err = generateHeuristic(ctx, opts, header, sectionMap, templateHeader, style, result)
	}
	if err != nil {
		return nil, err
	}

	if opts.Printer != nil {
		opts.Printer.PrintSections(result.Sections)
		if len(result.Keywords) > 0 {
			opts.Printer.PrintKeywords(result.Keywords)
		}
		opts.Printer.PrintFitResult(result.Pages, result.FitIterations, result.Fitted)
	}
	return result, nil
}

// generateTailored runs the collaborator path: tailor the resume text, parse
// the constrained output, filter skills for the job, and fit to budget.
func generateTailored(ctx context.Context, opts GenerateOptions, header types.Header, templateHeader string, templateSections []string, style string, result *Result) error {
	tagline, body, err := tailoring.Tailor(ctx, opts.Client, opts.JobText, opts.ResumeText, templateSections, "")
	if err != nil {
		return err
	}
	if opts.Verbose {
		log.Printf("[GENERATE] tailored text received (%d bytes), tagline %q", len(body), tagline)
	}

	sections, allowed := parsing.ParseTailored(body, header.Name, templateSections)
	for _, s := range sections {
		if strings.Contains(strings.ToLower(s.Title), "skill") && len(s.Skills) > 0 {
			s.Skills = keywords.FilterSkills(s.Skills, opts.JobText, maxFilteredSkills, minFilteredSkills)
		}
	}

	headerHTML := templateHeader
	if headerHTML == "" {
		headerHTML, err = rendering.RenderHeader(header.Name, "", header.Contact)
		if err != nil {
			return err
		}
	}
	if tagline != "" {
		headerHTML = rendering.ApplyTagline(headerHTML, tagline)
	}

	result.Tailored = true
	result.Tagline = tagline
	result.Sections = sections
	return renderAndFit(ctx, opts, headerHTML, style, allowed, result)
}

// renderAndFit renders the current section model and, when a page budget is
// set, runs the render/measure/trim loop.
func renderAndFit(ctx context.Context, opts GenerateOptions, headerHTML, style string, order []string, result *Result) error {
	build := func() string {
		body, err := rendering.RenderSections(result.Sections, order)
		if err != nil {
			// The section template only fails on a broken writer; a section
			// it cannot render is dropped from output, not fatal.
			log.Printf("[GENERATE] section rendering error: %v", err)
		}
		doc, err := rendering.RenderDocument("Tailored Resume", headerHTML+"\n"+body, style)
		if err != nil {
			log.Printf("[GENERATE] document rendering error: %v", err)
		}
		return doc
	}

	if opts.MaxPages <= 0 {
		result.HTML = build()
		pdfData, err := opts.Renderer.Render(ctx, result.HTML)
		if err != nil {
			return fmt.Errorf("failed to render PDF: %w", err)
		}
		result.PDF = pdfData
		if pages, err := opts.Counter.CountPages(pdfData); err == nil {
			result.Pages = pages
		}
		result.Fitted = true
		return nil
	}

	fit, err := fitting.RunFitLoop(ctx, &result.Sections, build, opts.Renderer, opts.Counter, opts.MaxPages, 0, opts.Verbose)
	if err != nil {
		return err
	}
	result.HTML = fit.HTML
	result.PDF = fit.PDF
	result.Pages = fit.Pages
	result.FitIterations = fit.Iterations
	result.Fitted = fit.Fitted
	return nil
}

// AssessFit produces the apply/no-apply recommendation for a job posting,
// falling back to the local heuristic when the collaborator is unavailable.
func AssessFit(ctx context.Context, client llm.Client, jobText, resumeText string) *types.FitAssessment {
	return assessment.Assess(ctx, client, jobText, resumeText)
}

// noopCounter accepts every rendering as a single page. Used when no
// page-count collaborator is configured and no budget applies.
type noopCounter struct{}

func (noopCounter) CountPages([]byte) (int, error) { return 1, nil }
