package quote

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"orca-quote-renderer/models"
)

//go:embed templates/quote.html
var templateFS embed.FS

var quoteTemplate = template.Must(template.ParseFS(templateFS, "templates/quote.html"))

// Render validates and formats a document, then executes the A4 quote template.
// The same document always yields the same bytes.
func Render(doc *models.QuoteDocument) ([]byte, error) {
	view, err := Format(doc)
	if err != nil {
		return nil, err
	}
	return RenderView(view)
}

// RenderView executes the quote template for an already formatted view
func RenderView(view models.QuoteView) ([]byte, error) {
	var buf bytes.Buffer
	if err := quoteTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
