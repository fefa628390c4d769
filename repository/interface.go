package repository

import "context"

// QuoteRepositoryInterface defines the contract for reading upstream quote records
type QuoteRepositoryInterface interface {
	GetPayloadByQuoteID(ctx context.Context, quoteID string) ([]byte, error)
}
