package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"orca-quote-renderer/models"
	"orca-quote-renderer/quote"
	"orca-quote-renderer/repository"
)

// ErrUnsupportedFormat is returned for output formats other than html, pdf and png
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrNoQuoteSource is returned by RenderByQuoteID when no repository is configured
var ErrNoQuoteSource = errors.New("no quote source configured")

// validFormats is a map of valid format values
var validFormats = map[string]bool{
	models.FormatHTML: true,
	models.FormatPDF:  true,
	models.FormatPNG:  true,
}

// NormalizeFormat lowercases a format and defaults an empty one to pdf
func NormalizeFormat(format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return models.FormatPDF, nil
	}
	if !validFormats[format] {
		return "", fmt.Errorf("%w: %q (valid formats: html, pdf, png)", ErrUnsupportedFormat, format)
	}
	return format, nil
}

// QuoteService renders quote documents into html, pdf or png
type QuoteService struct {
	pdfService PDFServiceInterface
	logos      LogoProvider
	repository repository.QuoteRepositoryInterface
}

// Ensure QuoteService implements QuoteServiceInterface
var _ QuoteServiceInterface = (*QuoteService)(nil)

// NewQuoteService creates a new QuoteService. repo may be nil when no database is configured.
func NewQuoteService(pdfService PDFServiceInterface, logos LogoProvider, repo repository.QuoteRepositoryInterface) *QuoteService {
	return &QuoteService{
		pdfService: pdfService,
		logos:      logos,
		repository: repo,
	}
}

// RenderRecord parses an upstream JSON record and renders it
func (s *QuoteService) RenderRecord(ctx context.Context, record []byte, format string) (*models.RenderedQuote, error) {
	doc, err := quote.ParseDocument(record)
	if err != nil {
		return nil, err
	}
	return s.RenderDocument(ctx, doc, format)
}

// RenderByQuoteID loads the upstream record for quoteID and renders it
func (s *QuoteService) RenderByQuoteID(ctx context.Context, quoteID string, format string) (*models.RenderedQuote, error) {
	if s.repository == nil {
		return nil, ErrNoQuoteSource
	}
	record, err := s.repository.GetPayloadByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return s.RenderRecord(ctx, record, format)
}

// RenderDocument renders a document. A document without a logo gets the default one;
// the caller's document is not modified.
func (s *QuoteService) RenderDocument(ctx context.Context, doc *models.QuoteDocument, format string) (*models.RenderedQuote, error) {
	format, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, quote.Validate(nil)
	}

	resolved := *doc
	if strings.TrimSpace(resolved.LogoBase64) == "" && s.logos != nil {
		resolved.LogoBase64 = s.logos.DefaultLogo()
	}

	html, err := quote.Render(&resolved)
	if err != nil {
		return nil, err
	}

	rendered := &models.RenderedQuote{
		QuoteID: resolved.QuoteID,
		Format:  format,
	}

	switch format {
	case models.FormatHTML:
		rendered.ContentType = "text/html; charset=utf-8"
		rendered.Body = html
	case models.FormatPDF:
		pdf, err := s.pdfService.GeneratePDF(ctx, html)
		if err != nil {
			return nil, err
		}
		rendered.ContentType = "application/pdf"
		rendered.Filename = resolved.QuoteID + ".pdf"
		rendered.Body = pdf
	case models.FormatPNG:
		png, err := s.pdfService.GeneratePNG(ctx, html)
		if err != nil {
			return nil, err
		}
		rendered.ContentType = "image/png"
		rendered.Filename = resolved.QuoteID + ".png"
		rendered.Body = png
	}

	log.Printf("✅ RenderDocument: quote=%s format=%s bytes=%d", rendered.QuoteID, format, len(rendered.Body))
	return rendered, nil
}
