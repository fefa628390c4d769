package quote

import (
	"fmt"
	"sort"
	"strings"
)

// Violation codes reported per field
const (
	CodeRequired     = "required"
	CodeNotANumber   = "not_a_number"
	CodeNotAnInteger = "not_an_integer"
	CodeNegative     = "negative"
	CodeNotABoolean  = "not_a_boolean"
	CodeNotAString   = "not_a_string"
	CodeInvalidRange = "invalid_range"
	CodeOutOfRange   = "out_of_range"
	CodeMalformed    = "malformed"
)

// Violations maps a wire field name to a violation code
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// add keeps the first violation reported for a field
func (v Violations) add(field, code string) {
	if _, exists := v[field]; !exists {
		v[field] = code
	}
}

// ValidationError is returned when a quote is missing fields or carries malformed values.
// A quote that fails validation must not be shown to a customer.
type ValidationError struct {
	Violations Violations
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for field := range e.Violations {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Violations[field]))
	}
	return "invalid quote: " + strings.Join(parts, ", ")
}

// MissingAssetError is returned when the logo is absent or is not a decodable image
type MissingAssetError struct {
	Asset  string
	Reason string
	Err    error
}

func (e *MissingAssetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing asset %s: %s: %v", e.Asset, e.Reason, e.Err)
	}
	return fmt.Sprintf("missing asset %s: %s", e.Asset, e.Reason)
}

func (e *MissingAssetError) Unwrap() error { return e.Err }
