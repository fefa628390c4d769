package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strings"

	"orca-quote-renderer/models"
	"orca-quote-renderer/quote"
	"orca-quote-renderer/repository"
	"orca-quote-renderer/service"

	"github.com/google/uuid"
)

// maxRecordBytes bounds the request body; the logo makes up most of it
const maxRecordBytes = 10 << 20

// QuoteController handles HTTP requests for quote documents
type QuoteController struct {
	quoteService service.QuoteServiceInterface
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(quoteService service.QuoteServiceInterface) *QuoteController {
	return &QuoteController{
		quoteService: quoteService,
	}
}

// errorResponse is the JSON body returned for rejected quotes
type errorResponse struct {
	Error      string            `json:"error"`
	Violations map[string]string `json:"violations,omitempty"`
}

// RenderQuote handles POST /quotes/render?format=html|pdf|png
// Body: the quote record as produced by the pricing service
func (c *QuoteController) RenderQuote(w http.ResponseWriter, r *http.Request) {
	renderID := uuid.NewString()
	w.Header().Set("X-Render-ID", renderID)

	if r.Method != http.MethodPost {
		log.Printf("❌ RenderQuote[%s]: Method not allowed: %s", renderID, r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRecordBytes+1))
	if err != nil {
		log.Printf("❌ RenderQuote[%s]: Failed to read request body: %v", renderID, err)
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	if len(body) > maxRecordBytes {
		log.Printf("❌ RenderQuote[%s]: Request body too large", renderID)
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}

	format := r.URL.Query().Get("format")
	log.Printf("📥 RenderQuote[%s]: format=%q bytes=%d", renderID, format, len(body))

	rendered, err := c.quoteService.RenderRecord(r.Context(), body, format)
	if err != nil {
		c.writeError(w, "RenderQuote", renderID, err)
		return
	}

	c.writeRendered(w, "RenderQuote", renderID, rendered)
}

// GetQuote handles GET /quotes/{quote_id}?format=html|pdf|png
// Renders a quote stored by the pricing service
func (c *QuoteController) GetQuote(w http.ResponseWriter, r *http.Request) {
	renderID := uuid.NewString()
	w.Header().Set("X-Render-ID", renderID)

	if r.Method != http.MethodGet {
		log.Printf("❌ GetQuote[%s]: Method not allowed: %s", renderID, r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	quoteID := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/quotes/"))
	if quoteID == "" || strings.Contains(quoteID, "/") {
		log.Printf("❌ GetQuote[%s]: Invalid quote id in path %s", renderID, r.URL.Path)
		http.Error(w, "quote id is required", http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	log.Printf("📥 GetQuote[%s]: quote=%s format=%q", renderID, quoteID, format)

	rendered, err := c.quoteService.RenderByQuoteID(r.Context(), quoteID, format)
	if err != nil {
		c.writeError(w, "GetQuote", renderID, err)
		return
	}

	c.writeRendered(w, "GetQuote", renderID, rendered)
}

func (c *QuoteController) writeRendered(w http.ResponseWriter, op, renderID string, rendered *models.RenderedQuote) {
	w.Header().Set("Content-Type", rendered.ContentType)
	if rendered.Filename != "" {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
			"filename": rendered.Filename,
		}))
	}
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(rendered.Body)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(rendered.Body); err != nil {
		log.Printf("❌ %s[%s]: Error writing response: %v", op, renderID, err)
		return
	}
	log.Printf("✅ %s[%s]: quote=%s format=%s", op, renderID, rendered.QuoteID, rendered.Format)
}

// writeError maps domain errors onto status codes
func (c *QuoteController) writeError(w http.ResponseWriter, op, renderID string, err error) {
	var validationErr *quote.ValidationError
	var assetErr *quote.MissingAssetError

	switch {
	case errors.As(err, &validationErr):
		log.Printf("⚠️  %s[%s]: %v", op, renderID, validationErr)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:      "invalid quote",
			Violations: validationErr.Violations,
		})
	case errors.As(err, &assetErr):
		log.Printf("⚠️  %s[%s]: %v", op, renderID, assetErr)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: assetErr.Error()})
	case errors.Is(err, service.ErrUnsupportedFormat):
		log.Printf("❌ %s[%s]: %v", op, renderID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrQuoteNotFound):
		log.Printf("⚠️  %s[%s]: %v", op, renderID, err)
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrNoQuoteSource):
		log.Printf("❌ %s[%s]: %v", op, renderID, err)
		http.Error(w, "Quote lookup is not available", http.StatusServiceUnavailable)
	default:
		log.Printf("❌ %s[%s]: Error rendering quote: %v", op, renderID, err)
		http.Error(w, fmt.Sprintf("Failed to render quote: %v", err), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}
