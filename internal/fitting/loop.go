package fitting

import (
	"context"
	"fmt"
	"log"

	"github.com/mobee/resume-tailor/internal/types"
)

// defaultMaxIterations bounds the fit loop. Trimming removes one unit per
// iteration, so any realistic resume converges well before this.
const defaultMaxIterations = 500

// PDFRenderer renders an HTML document to PDF bytes.
type PDFRenderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// PageCounter reports the number of pages in a rendered PDF.
type PageCounter interface {
	CountPages(pdf []byte) (int, error)
}

// FitResult holds the final state of a fit loop.
type FitResult struct {
	HTML       string
	PDF        []byte
	Pages      int
	Iterations int
	// Fitted is false when trimming was exhausted before reaching the page
	// budget; the result is then best-effort, not an error.
	Fitted bool
}

// RunFitLoop renders the document, measures its page count, and trims the
// section model one unit at a time until the rendering fits within maxPages
// or nothing trimmable remains. The loop is inherently sequential: each
// iteration depends on the previous page count. build must re-render the
// current state of sections.
//
// A render failure aborts the loop; a page-count failure does not, the
// current rendering is accepted as fitting.
func RunFitLoop(ctx context.Context, sections *[]*types.Section, build func() string, renderer PDFRenderer, counter PageCounter, maxPages, maxIterations int, verbose bool) (*FitResult, error) {
	if maxIterations <= 0 {
		maxIterations = defaultMaxIterations
	}

	result := &FitResult{}
	for {
		result.Iterations++
		result.HTML = build()

		pdfData, err := renderer.Render(ctx, result.HTML)
		if err != nil {
			return nil, fmt.Errorf("failed to render PDF at iteration %d: %w", result.Iterations, err)
		}
		result.PDF = pdfData

		pages, err := counter.CountPages(pdfData)
		if err != nil {
			// Accept the current rendering; an unreadable count is not fatal.
			pages = maxPages
		}
		result.Pages = pages

		if pages <= maxPages {
			result.Fitted = true
			return result, nil
		}
		if verbose {
			log.Printf("[FIT] iteration %d: %d pages over budget %d, trimming", result.Iterations, pages, maxPages)
		}
		if !TrimOnce(sections) {
			// Exhausted: accept the best-effort final state.
			return result, nil
		}
		if result.Iterations >= maxIterations {
			return result, nil
		}
	}
}
