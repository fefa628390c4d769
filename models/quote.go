package models

import (
	"errors"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"
)

// ErrInvalidTimeRange is returned when a range estimate has min > max
var ErrInvalidTimeRange = errors.New("minimum time exceeds estimated time")

// QuoteDocument is a validated quote ready to be rendered.
// Built by quote.ParseDocument, never mutated afterwards.
type QuoteDocument struct {
	QuoteID         string
	Suburb          string
	CustomerName    string
	CustomerPhone   string
	PropertyAddress string
	BusinessName    *string // nil when absent

	Bedrooms  int
	Bathrooms int
	Furnished string

	OvenCleaning       bool
	CarpetCleaning     bool
	AfterHoursCleaning bool
	WeekendCleaning    bool
	MandurahProperty   bool
	IsPropertyManager  bool

	BaseHourlyRate      decimal.Decimal
	WeekendSurcharge    decimal.Decimal
	AfterHoursSurcharge decimal.Decimal
	MandurahSurcharge   decimal.Decimal
	DiscountApplied     decimal.Decimal
	GSTApplied          decimal.Decimal
	TotalPrice          decimal.Decimal

	Estimate TimeEstimate

	Note       *string // nil when absent
	LogoBase64 string
}

// TimeEstimate is either a RangeEstimate or a PointEstimate
type TimeEstimate interface {
	// Label returns the display text, e.g. "30–45 mins" or "60 mins"
	Label() string
	IsRange() bool
	isTimeEstimate()
}

// RangeEstimate is a min–max duration in minutes
type RangeEstimate struct {
	min int
	max int
}

// NewRangeEstimate builds a range estimate, refusing min > max or negative values
func NewRangeEstimate(min, max int) (RangeEstimate, error) {
	if min < 0 || max < 0 {
		return RangeEstimate{}, fmt.Errorf("time estimate cannot be negative: %d–%d", min, max)
	}
	if min > max {
		return RangeEstimate{}, fmt.Errorf("%w: %d > %d", ErrInvalidTimeRange, min, max)
	}
	return RangeEstimate{min: min, max: max}, nil
}

func (r RangeEstimate) Min() int { return r.min }
func (r RangeEstimate) Max() int { return r.max }

func (r RangeEstimate) Label() string {
	return fmt.Sprintf("%d–%d mins", r.min, r.max)
}

func (RangeEstimate) IsRange() bool   { return true }
func (RangeEstimate) isTimeEstimate() {}

// PointEstimate is a single duration in minutes
type PointEstimate struct {
	Minutes int
}

func (p PointEstimate) Label() string {
	return fmt.Sprintf("%d mins", p.Minutes)
}

func (PointEstimate) IsRange() bool   { return false }
func (PointEstimate) isTimeEstimate() {}

// QuoteView is the fully formatted projection handed to the template.
// Every value is already a display string.
type QuoteView struct {
	QuoteID         string
	Suburb          string
	CustomerName    string
	CustomerPhone   string
	PropertyAddress string
	BusinessName    *string

	Bedrooms  string
	Bathrooms string
	Furnished string

	OvenCleaning       string
	CarpetCleaning     string
	AfterHoursCleaning string
	WeekendCleaning    string
	MandurahProperty   string
	IsPropertyManager  string

	BaseHourlyRate      string
	WeekendSurcharge    string
	AfterHoursSurcharge string
	MandurahSurcharge   string
	DiscountApplied     string
	GSTApplied          string
	TotalPrice          string

	EstimatedTime string
	Note          *string

	// LogoDataURI is data:<mime>;base64,<payload>, set only after the payload decoded as an image
	LogoDataURI template.URL
}

// Output formats
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// RenderedQuote is a finished document ready to be written to a response
type RenderedQuote struct {
	QuoteID     string
	Format      string
	ContentType string
	Filename    string
	Body        []byte
}
