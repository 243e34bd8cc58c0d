package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/mobee/resume-tailor/internal/fitting"
	"github.com/mobee/resume-tailor/internal/llm"
	"github.com/mobee/resume-tailor/internal/parsing"
	"github.com/mobee/resume-tailor/internal/rendering"
	"github.com/mobee/resume-tailor/internal/tailoring"
	"github.com/mobee/resume-tailor/internal/types"
)

// CoverLetterOptions holds the inputs for one cover letter draft.
type CoverLetterOptions struct {
	ResumeText   string
	TemplateHTML string
	JobText      string

	Client llm.Client

	// Renderer produces the PDF; nil skips PDF output.
	Renderer fitting.PDFRenderer
}

// CoverLetterResult holds the drafted letter and its rendered forms.
type CoverLetterResult struct {
	Text   string
	HTML   string
	PDF    []byte
	Header types.Header
}

func (o CoverLetterOptions) validate() error {
	if o.Client == nil {
		return fmt.Errorf("cover letters require the text-generation collaborator")
	}
	if strings.TrimSpace(o.ResumeText) == "" {
		return fmt.Errorf("resume text is empty")
	}
	if strings.TrimSpace(o.JobText) == "" {
		return fmt.Errorf("job text is empty")
	}
	return nil
}

// GenerateCoverLetter drafts and renders a cover letter for a job posting.
func GenerateCoverLetter(ctx context.Context, opts CoverLetterOptions) (*CoverLetterResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	headerLines, _ := parsing.SplitSections(opts.ResumeText)
	header := parsing.ParseHeader(headerLines)

	text, err := tailoring.CoverLetter(ctx, opts.Client, opts.JobText, opts.ResumeText, header.Name)
	if err != nil {
		return nil, err
	}

	style, err := rendering.ExtractStyle(opts.TemplateHTML)
	if err != nil {
		return nil, err
	}
	headerHTML, err := rendering.ExtractHeader(opts.TemplateHTML)
	if err != nil {
		return nil, err
	}
	if headerHTML == "" {
		headerHTML, err = rendering.RenderHeader(header.Name, "", header.Contact)
		if err != nil {
			return nil, err
		}
	}
	if tagline := tailoring.GenerateTagline(ctx, opts.Client, opts.JobText, opts.ResumeText); tagline != "" {
		headerHTML = rendering.ApplyTagline(headerHTML, tagline)
	}

	html, err := rendering.RenderCoverLetter(headerHTML, style, text)
	if err != nil {
		return nil, err
	}

	result := &CoverLetterResult{Text: text, HTML: html, Header: header}
	if opts.Renderer != nil {
		pdfData, err := opts.Renderer.Render(ctx, html)
		if err != nil {
			return nil, fmt.Errorf("failed to render PDF: %w", err)
		}
		result.PDF = pdfData
	}
	return result, nil
}
