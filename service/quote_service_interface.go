package service

import (
	"context"

	"orca-quote-renderer/models"
)

// QuoteServiceInterface defines the contract for producing quote documents
type QuoteServiceInterface interface {
	RenderDocument(ctx context.Context, doc *models.QuoteDocument, format string) (*models.RenderedQuote, error)
	RenderRecord(ctx context.Context, record []byte, format string) (*models.RenderedQuote, error)
	RenderByQuoteID(ctx context.Context, quoteID string, format string) (*models.RenderedQuote, error)
}
