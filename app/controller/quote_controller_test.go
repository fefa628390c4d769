package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orca-quote-renderer/models"
	"orca-quote-renderer/quote"
	"orca-quote-renderer/repository"
	"orca-quote-renderer/service"
)

type fakeQuoteService struct {
	rendered *models.RenderedQuote
	err      error

	gotRecord  []byte
	gotQuoteID string
	gotFormat  string
}

func (f *fakeQuoteService) RenderDocument(ctx context.Context, doc *models.QuoteDocument, format string) (*models.RenderedQuote, error) {
	f.gotFormat = format
	return f.rendered, f.err
}

func (f *fakeQuoteService) RenderRecord(ctx context.Context, record []byte, format string) (*models.RenderedQuote, error) {
	f.gotRecord = record
	f.gotFormat = format
	return f.rendered, f.err
}

func (f *fakeQuoteService) RenderByQuoteID(ctx context.Context, quoteID string, format string) (*models.RenderedQuote, error) {
	f.gotQuoteID = quoteID
	f.gotFormat = format
	return f.rendered, f.err
}

func pdfQuote() *models.RenderedQuote {
	return &models.RenderedQuote{
		QuoteID:     "VC-1",
		Format:      models.FormatPDF,
		ContentType: "application/pdf",
		Filename:    "VC-1.pdf",
		Body:        []byte("%PDF-1.4"),
	}
}

func TestRenderQuote_Success(t *testing.T) {
	svc := &fakeQuoteService{rendered: pdfQuote()}
	c := NewQuoteController(svc)

	req := httptest.NewRequest(http.MethodPost, "/quotes/render?format=pdf", strings.NewReader(`{"quote_id":"VC-1"}`))
	rec := httptest.NewRecorder()
	c.RenderQuote(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename=VC-1.pdf` {
		t.Errorf("Content-Disposition = %q", got)
	}
	if got := rec.Header().Get("Content-Length"); got != "8" {
		t.Errorf("Content-Length = %q", got)
	}
	if rec.Header().Get("X-Render-ID") == "" {
		t.Error("missing X-Render-ID")
	}
	if !bytes.Equal(rec.Body.Bytes(), []byte("%PDF-1.4")) {
		t.Errorf("body = %q", rec.Body.String())
	}
	if string(svc.gotRecord) != `{"quote_id":"VC-1"}` || svc.gotFormat != "pdf" {
		t.Errorf("service got record=%q format=%q", svc.gotRecord, svc.gotFormat)
	}
}

func TestRenderQuote_HTMLHasNoAttachment(t *testing.T) {
	svc := &fakeQuoteService{rendered: &models.RenderedQuote{
		QuoteID:     "VC-1",
		Format:      models.FormatHTML,
		ContentType: "text/html; charset=utf-8",
		Body:        []byte("<html></html>"),
	}}
	c := NewQuoteController(svc)

	req := httptest.NewRequest(http.MethodPost, "/quotes/render?format=html", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	c.RenderQuote(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != "" {
		t.Errorf("Content-Disposition = %q, want none", got)
	}
}

func TestRenderQuote_MethodNotAllowed(t *testing.T) {
	c := NewQuoteController(&fakeQuoteService{})

	rec := httptest.NewRecorder()
	c.RenderQuote(rec, httptest.NewRequest(http.MethodGet, "/quotes/render", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestRenderQuote_BodyTooLarge(t *testing.T) {
	svc := &fakeQuoteService{rendered: pdfQuote()}
	c := NewQuoteController(svc)

	body := bytes.Repeat([]byte("a"), maxRecordBytes+1)
	rec := httptest.NewRecorder()
	c.RenderQuote(rec, httptest.NewRequest(http.MethodPost, "/quotes/render", bytes.NewReader(body)))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
	if svc.gotRecord != nil {
		t.Error("oversized body reached the service")
	}
}

func TestRenderQuote_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", fmt.Errorf("wrapped: %w", &quote.ValidationError{Violations: quote.Violations{"suburb": quote.CodeRequired}}), http.StatusUnprocessableEntity},
		{"missing asset", &quote.MissingAssetError{Asset: quote.FieldLogoBase64, Reason: "empty"}, http.StatusUnprocessableEntity},
		{"format", fmt.Errorf("%w: %q", service.ErrUnsupportedFormat, "docx"), http.StatusBadRequest},
		{"not found", fmt.Errorf("%w: VC-9", repository.ErrQuoteNotFound), http.StatusNotFound},
		{"no source", service.ErrNoQuoteSource, http.StatusServiceUnavailable},
		{"browser", errors.New("chrome exited"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewQuoteController(&fakeQuoteService{err: tt.err})
			rec := httptest.NewRecorder()
			c.RenderQuote(rec, httptest.NewRequest(http.MethodPost, "/quotes/render", strings.NewReader(`{}`)))
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestRenderQuote_ValidationBody(t *testing.T) {
	err := &quote.ValidationError{Violations: quote.Violations{
		"suburb":      quote.CodeRequired,
		"total_price": quote.CodeNotANumber,
	}}
	c := NewQuoteController(&fakeQuoteService{err: err})

	rec := httptest.NewRecorder()
	c.RenderQuote(rec, httptest.NewRequest(http.MethodPost, "/quotes/render", strings.NewReader(`{}`)))

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Violations["suburb"] != quote.CodeRequired || body.Violations["total_price"] != quote.CodeNotANumber {
		t.Errorf("violations = %v", body.Violations)
	}
}

func TestGetQuote(t *testing.T) {
	svc := &fakeQuoteService{rendered: pdfQuote()}
	c := NewQuoteController(svc)

	rec := httptest.NewRecorder()
	c.GetQuote(rec, httptest.NewRequest(http.MethodGet, "/quotes/VC-1?format=png", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.gotQuoteID != "VC-1" || svc.gotFormat != "png" {
		t.Errorf("service got id=%q format=%q", svc.gotQuoteID, svc.gotFormat)
	}
}

func TestGetQuote_BadRequests(t *testing.T) {
	c := NewQuoteController(&fakeQuoteService{rendered: pdfQuote()})

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodPost, "/quotes/VC-1", http.StatusMethodNotAllowed},
		{http.MethodGet, "/quotes/", http.StatusBadRequest},
		{http.MethodGet, "/quotes/VC-1/extra", http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		c.GetQuote(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Code != tt.status {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, rec.Code, tt.status)
		}
	}
}
