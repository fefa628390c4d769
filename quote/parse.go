package quote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"orca-quote-renderer/models"

	"github.com/shopspring/decimal"
)

// Wire field names of the upstream quote record
const (
	FieldQuoteID             = "quote_id"
	FieldSuburb              = "suburb"
	FieldCustomerName        = "customer_name"
	FieldCustomerPhone       = "customer_phone"
	FieldPhoneAlias          = "phone"
	FieldPropertyAddress     = "property_address"
	FieldBusinessName        = "business_name"
	FieldBedrooms            = "bedrooms_v2"
	FieldBathrooms           = "bathrooms_v2"
	FieldFurnished           = "furnished"
	FieldOvenCleaning        = "oven_cleaning"
	FieldCarpetCleaning      = "carpet_cleaning"
	FieldAfterHoursCleaning  = "after_hours_cleaning"
	FieldWeekendCleaning     = "weekend_cleaning"
	FieldMandurahProperty    = "mandurah_property"
	FieldIsPropertyManager   = "is_property_manager"
	FieldBaseHourlyRate      = "base_hourly_rate"
	FieldWeekendSurcharge    = "weekend_surcharge"
	FieldAfterHoursSurcharge = "after_hours_surcharge"
	FieldMandurahSurcharge   = "mandurah_surcharge"
	FieldDiscountApplied     = "discount_applied"
	FieldGSTApplied          = "gst_applied"
	FieldTotalPrice          = "total_price"
	FieldIsRange             = "is_range"
	FieldMinimumTime         = "minimum_time_mins"
	FieldEstimatedTime       = "estimated_time_mins"
	FieldNote                = "note"
	FieldLogoBase64          = "logo_base64"
)

// Bounds on numeric values. Larger literals are refused before any arithmetic.
const (
	maxNumberLength = 32
	maxExponent     = 12
	minExponent     = -20
)

var (
	// MaxAmount is the largest money value a quote may carry
	MaxAmount = decimal.New(1, 12)
	// MaxWhole is the largest count or duration in minutes
	MaxWhole = decimal.NewFromInt(math.MaxInt32)
)

// record wraps the raw JSON object and collects violations while fields are read
type record struct {
	raw        map[string]json.RawMessage
	violations Violations
}

// ParseDocument decodes an upstream quote record into a QuoteDocument.
// Every field is checked; all problems are reported together in a *ValidationError.
func ParseDocument(data []byte) (*models.QuoteDocument, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode quote record: %w", &ValidationError{
			Violations: Violations{"quote": CodeMalformed},
		})
	}
	if raw == nil {
		return nil, &ValidationError{Violations: Violations{"quote": CodeRequired}}
	}

	rec := &record{raw: raw, violations: Violations{}}

	doc := &models.QuoteDocument{
		QuoteID:         rec.requiredString(FieldQuoteID),
		Suburb:          rec.requiredString(FieldSuburb),
		CustomerName:    rec.requiredString(FieldCustomerName),
		CustomerPhone:   rec.phone(),
		PropertyAddress: rec.requiredString(FieldPropertyAddress),
		BusinessName:    rec.optionalString(FieldBusinessName),

		Bedrooms:  rec.count(FieldBedrooms),
		Bathrooms: rec.count(FieldBathrooms),
		Furnished: rec.requiredString(FieldFurnished),

		OvenCleaning:       rec.flag(FieldOvenCleaning),
		CarpetCleaning:     rec.flag(FieldCarpetCleaning),
		AfterHoursCleaning: rec.flag(FieldAfterHoursCleaning),
		WeekendCleaning:    rec.flag(FieldWeekendCleaning),
		MandurahProperty:   rec.flag(FieldMandurahProperty),
		IsPropertyManager:  rec.flag(FieldIsPropertyManager),

		BaseHourlyRate:      rec.money(FieldBaseHourlyRate),
		WeekendSurcharge:    rec.money(FieldWeekendSurcharge),
		AfterHoursSurcharge: rec.money(FieldAfterHoursSurcharge),
		MandurahSurcharge:   rec.money(FieldMandurahSurcharge),
		DiscountApplied:     rec.money(FieldDiscountApplied),
		GSTApplied:          rec.money(FieldGSTApplied),
		TotalPrice:          rec.money(FieldTotalPrice),

		Estimate: rec.estimate(),

		Note:       rec.optionalString(FieldNote),
		LogoBase64: rec.logo(),
	}

	if !rec.violations.Empty() {
		return nil, &ValidationError{Violations: rec.violations}
	}
	return doc, nil
}

// value returns the raw field, treating a JSON null as absent
func (r *record) value(field string) (json.RawMessage, bool) {
	v, ok := r.raw[field]
	if !ok {
		return nil, false
	}
	if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return nil, false
	}
	return v, true
}

func (r *record) str(field string) (string, bool) {
	v, ok := r.value(field)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		r.violations.add(field, CodeNotAString)
		return "", false
	}
	return s, true
}

func (r *record) requiredString(field string) string {
	s, ok := r.str(field)
	if _, bad := r.violations[field]; bad {
		return ""
	}
	if !ok || strings.TrimSpace(s) == "" {
		r.violations.add(field, CodeRequired)
		return ""
	}
	return strings.TrimSpace(s)
}

// optionalString resolves absent, null and blank values to nil
func (r *record) optionalString(field string) *string {
	s, ok := r.str(field)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// phone reads customer_phone, falling back to the legacy "phone" key
func (r *record) phone() string {
	if _, ok := r.value(FieldCustomerPhone); !ok {
		if _, alias := r.value(FieldPhoneAlias); alias {
			return r.requiredString(FieldPhoneAlias)
		}
	}
	return r.requiredString(FieldCustomerPhone)
}

// number reads a JSON number or numeric string. It reports not_a_number for anything else
// and out_of_range for literals too long or too far from the decimal point.
func (r *record) number(field string, v json.RawMessage) (decimal.Decimal, bool) {
	var n json.Number
	if err := json.Unmarshal(v, &n); err != nil {
		r.violations.add(field, CodeNotANumber)
		return decimal.Zero, false
	}
	if len(n.String()) > maxNumberLength {
		r.violations.add(field, CodeOutOfRange)
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		r.violations.add(field, CodeNotANumber)
		return decimal.Zero, false
	}
	if !exponentInRange(d) {
		r.violations.add(field, CodeOutOfRange)
		return decimal.Zero, false
	}
	return d, true
}

// exponentInRange is checked before comparing or converting d,
// since both expand the exponent into a big integer
func exponentInRange(d decimal.Decimal) bool {
	return d.Exponent() <= maxExponent && d.Exponent() >= minExponent
}

// integer reads a whole, non-negative number no larger than MaxWhole
func (r *record) integer(field string) (int, bool) {
	v, ok := r.value(field)
	if !ok {
		return 0, false
	}
	d, ok := r.number(field, v)
	if !ok {
		return 0, false
	}
	if !d.IsInteger() {
		r.violations.add(field, CodeNotAnInteger)
		return 0, false
	}
	if d.IsNegative() {
		r.violations.add(field, CodeNegative)
		return 0, false
	}
	if d.GreaterThan(MaxWhole) {
		r.violations.add(field, CodeOutOfRange)
		return 0, false
	}
	return int(d.IntPart()), true
}

func (r *record) count(field string) int {
	n, ok := r.integer(field)
	if !ok {
		r.violations.add(field, CodeRequired)
	}
	return n
}

// flag reads a boolean. Accepts true/false and the strings yes/no/true/false/1/0.
func (r *record) flag(field string) bool {
	v, ok := r.value(field)
	if !ok {
		r.violations.add(field, CodeRequired)
		return false
	}
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "yes", "1":
			return true
		case "false", "no", "0":
			return false
		}
	}
	r.violations.add(field, CodeNotABoolean)
	return false
}

// money reads a non-negative amount no larger than MaxAmount
func (r *record) money(field string) decimal.Decimal {
	v, ok := r.value(field)
	if !ok {
		r.violations.add(field, CodeRequired)
		return decimal.Zero
	}
	d, ok := r.number(field, v)
	if !ok {
		return decimal.Zero
	}
	if d.IsNegative() {
		r.violations.add(field, CodeNegative)
		return decimal.Zero
	}
	if d.GreaterThan(MaxAmount) {
		r.violations.add(field, CodeOutOfRange)
		return decimal.Zero
	}
	return d
}

func (r *record) estimate() models.TimeEstimate {
	isRange := r.flag(FieldIsRange)
	estimated, ok := r.integer(FieldEstimatedTime)
	if !ok {
		r.violations.add(FieldEstimatedTime, CodeRequired)
		return nil
	}
	if !isRange {
		return models.PointEstimate{Minutes: estimated}
	}

	minimum, ok := r.integer(FieldMinimumTime)
	if !ok {
		r.violations.add(FieldMinimumTime, CodeRequired)
		return nil
	}
	est, err := models.NewRangeEstimate(minimum, estimated)
	if err != nil {
		r.violations.add(FieldMinimumTime, CodeInvalidRange)
		return nil
	}
	return est
}

// logo keeps the payload opaque; it is checked when the document is rendered
func (r *record) logo() string {
	s, _ := r.str(FieldLogoBase64)
	return s
}
