package service

import "context"

// PDFServiceInterface defines the contract for turning quote HTML into printable output
type PDFServiceInterface interface {
	GeneratePDF(ctx context.Context, html []byte) ([]byte, error)
	GeneratePNG(ctx context.Context, html []byte) ([]byte, error)
}
