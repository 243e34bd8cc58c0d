package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper size in inches for Page.printToPDF.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// defaultRenderTimeout bounds one render, browser startup included.
const defaultRenderTimeout = 60 * time.Second

// Renderer renders HTML documents to A4 PDFs with headless Chrome.
// A CHROME_PATH environment value or explicit ExecPath overrides browser
// discovery.
type Renderer struct {
	ExecPath string
	Timeout  time.Duration
}

// NewRenderer creates a Renderer with defaults, honoring CHROME_PATH.
func NewRenderer() *Renderer {
	return &Renderer{
		ExecPath: os.Getenv("CHROME_PATH"),
		Timeout:  defaultRenderTimeout,
	}
}

// Check verifies that a headless browser can be launched. A failure here is a
// fatal configuration error for callers, distinct from per-render failures.
func (r *Renderer) Check(ctx context.Context) error {
	browserCtx, cancel, err := r.newBrowserContext(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	if err := chromedp.Run(browserCtx, chromedp.Navigate("about:blank")); err != nil {
		return &ConfigError{Message: "headless Chrome is not available; install Chrome/Chromium or set CHROME_PATH", Cause: err}
	}
	return nil
}

// Render renders an HTML document to PDF bytes: A4, print background, zero
// margins, matching the print layout the stylesheet targets.
func (r *Renderer) Render(ctx context.Context, html string) ([]byte, error) {
	browserCtx, cancel, err := r.newBrowserContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	// Chrome resolves relative stylesheet/image URLs for file:// documents,
	// so serve the HTML from a temp file rather than a data URL.
	tmpDir, err := os.MkdirTemp("", "resume-tailor-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write HTML: %w", err)
	}

	var pdfBuf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdfBuf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print PDF: %w", err)
	}
	return pdfBuf, nil
}

// RenderToFile renders an HTML document and writes the PDF to path.
func (r *Renderer) RenderToFile(ctx context.Context, html, path string) error {
	data, err := r.Render(ctx, html)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	return nil
}

func (r *Renderer) newBrowserContext(ctx context.Context) (context.Context, context.CancelFunc, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)

	cancel := func() {
		cancelTimeout()
		cancelBrowser()
		cancelAlloc()
	}
	return browserCtx, cancel, nil
}
