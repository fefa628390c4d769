package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"orca-quote-renderer/db"

	"github.com/jackc/pgx/v5"
)

// ErrQuoteNotFound is returned when no upstream record exists for a quote_id
var ErrQuoteNotFound = errors.New("quote not found")

// DefaultQuotesTable is where the pricing service writes its quote records
const DefaultQuotesTable = "quote_responses"

// QuoteRepository reads quote records written by the upstream pricing service.
// It never writes.
type QuoteRepository struct {
	table string
}

// NewQuoteRepository creates a new QuoteRepository
func NewQuoteRepository(table string) *QuoteRepository {
	if table == "" {
		table = DefaultQuotesTable
	}
	return &QuoteRepository{table: table}
}

// Ensure QuoteRepository implements QuoteRepositoryInterface
var _ QuoteRepositoryInterface = (*QuoteRepository)(nil)

// GetPayloadByQuoteID returns the raw JSON record for a quote
func (r *QuoteRepository) GetPayloadByQuoteID(ctx context.Context, quoteID string) ([]byte, error) {
	log.Printf("🔍 Fetching quote record: %s", quoteID)

	query := r.payloadQuery()

	var payload []byte
	err := db.DB.QueryRowContext(ctx, query, quoteID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrQuoteNotFound, quoteID)
	}
	if err != nil {
		log.Printf("❌ Error fetching quote record %s: %v", quoteID, err)
		return nil, fmt.Errorf("failed to fetch quote record: %w", err)
	}

	return payload, nil
}

// payloadQuery quotes the table name, keeping a schema prefix such as public.quote_responses
func (r *QuoteRepository) payloadQuery() string {
	table := pgx.Identifier(strings.Split(r.table, ".")).Sanitize()
	return fmt.Sprintf(`SELECT payload FROM %s WHERE quote_id = $1`, table)
}
