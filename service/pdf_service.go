package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrInvalidPDF is returned when Chrome produced bytes that do not parse as a PDF
var ErrInvalidPDF = errors.New("generated PDF is not readable")

const (
	// A4 in inches
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
	// A4 at 96 DPI
	a4WidthPx  = 794
	a4HeightPx = 1123

	defaultPDFTimeout = 30 * time.Second
)

// PDFService converts rendered quote HTML into printable output using headless Chrome
type PDFService struct {
	chromePath string
	timeout    time.Duration
}

// Ensure PDFService implements PDFServiceInterface
var _ PDFServiceInterface = (*PDFService)(nil)

// NewPDFService creates a new PDFService.
// An empty chromePath falls back to detectChromePath, then to chromedp's own lookup.
func NewPDFService(chromePath string, timeout time.Duration) *PDFService {
	if chromePath == "" {
		chromePath = detectChromePath(chromeCandidates)
	}
	if timeout <= 0 {
		timeout = defaultPDFTimeout
	}
	return &PDFService{
		chromePath: chromePath,
		timeout:    timeout,
	}
}

// chromeCandidates are the usual Chrome/Chromium install locations
var chromeCandidates = []string{
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/snap/bin/chromium",
}

// detectChromePath returns the first candidate that exists, or "".
// CHROME_PATH is read by config.Load and handed to NewPDFService.
func detectChromePath(candidates []string) string {
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// GeneratePDF prints the HTML document to a single A4 PDF
func (s *PDFService) GeneratePDF(ctx context.Context, html []byte) ([]byte, error) {
	var pdfBuf []byte
	err := s.run(ctx, html, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		pdfBuf, _, err = page.PrintToPDF().
			WithPrintBackground(true).
			WithPreferCSSPageSize(true).
			WithPaperWidth(a4WidthInches).
			WithPaperHeight(a4HeightInches).
			Do(ctx)
		return err
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	pages, err := api.PageCount(bytes.NewReader(pdfBuf), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	if pages > 1 {
		log.Printf("⚠️  GeneratePDF: quote spilled onto %d pages", pages)
	}

	log.Printf("📄 GeneratePDF: %d bytes, %d page(s)", len(pdfBuf), pages)
	return pdfBuf, nil
}

// GeneratePNG captures the HTML document as a full-page PNG preview
func (s *PDFService) GeneratePNG(ctx context.Context, html []byte) ([]byte, error) {
	var buf []byte
	if err := s.run(ctx, html, chromedp.FullScreenshot(&buf, 100)); err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}
	log.Printf("📸 GeneratePNG: %d bytes", len(buf))
	return buf, nil
}

// run loads the HTML into a fresh browser tab and performs the capture action.
// Each call owns its browser, so calls are independent of each other.
func (s *PDFService) run(ctx context.Context, html []byte, capture chromedp.Action) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if s.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(s.chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	return chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(a4WidthPx, a4HeightPx),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		// Wait for fonts and the inline logo to decode
		chromedp.Evaluate(`
			Promise.all([
				document.fonts.ready,
				Promise.all(Array.from(document.images).map(img => img.decode().catch(() => null)))
			]).then(() => true);
		`, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		capture,
	)
}
