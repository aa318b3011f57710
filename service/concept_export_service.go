package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"campaign-studio/models"
)

var conceptHTMLTemplate = template.Must(template.ParseFS(templatesFS, "templates/concept.html.tmpl"))

// ConceptExporterInterface turns a concept into a downloadable document
type ConceptExporterInterface interface {
	RenderHTML(concept *models.CreativeConcept) ([]byte, error)
	ExportPDF(ctx context.Context, concept *models.CreativeConcept) ([]byte, error)
}

// ConceptExportService prints concept briefs to PDF with headless Chrome
type ConceptExportService struct {
	chromePath string
	timeout    time.Duration
}

// NewConceptExportService creates a ConceptExportService. An empty chromePath triggers auto-detection.
func NewConceptExportService(chromePath string) *ConceptExportService {
	if chromePath == "" {
		chromePath = detectChromePath()
	}
	return &ConceptExportService{
		chromePath: chromePath,
		timeout:    30 * time.Second,
	}
}

// Ensure ConceptExportService implements ConceptExporterInterface
var _ ConceptExporterInterface = (*ConceptExportService)(nil)

// detectChromePath checks CHROME_PATH first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// RenderHTML renders the printable HTML page of a concept
func (s *ConceptExportService) RenderHTML(concept *models.CreativeConcept) ([]byte, error) {
	var buf bytes.Buffer
	if err := conceptHTMLTemplate.Execute(&buf, concept); err != nil {
		return nil, fmt.Errorf("failed to render concept HTML: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportPDF loads the concept HTML into a blank Chrome tab and prints it as an A4 PDF
func (s *ConceptExportService) ExportPDF(ctx context.Context, concept *models.CreativeConcept) ([]byte, error) {
	html, err := s.RenderHTML(concept)
	if err != nil {
		return nil, err
	}

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

	log.Printf("📄 ExportPDF: printing concept %q (chrome=%q)", concept.Title, s.chromePath)

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 in inches; margins come from the @page rule
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✓ ExportPDF: %d bytes", len(pdfBuf))
	return pdfBuf, nil
}
