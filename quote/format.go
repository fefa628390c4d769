package quote

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"strings"

	"orca-quote-renderer/models"
	"orca-quote-renderer/utils"

	"github.com/shopspring/decimal"
)

// Validate checks a document built in Go rather than through ParseDocument
func Validate(doc *models.QuoteDocument) error {
	if doc == nil {
		return &ValidationError{Violations: Violations{"quote": CodeRequired}}
	}

	v := Violations{}
	required := map[string]string{
		FieldQuoteID:         doc.QuoteID,
		FieldSuburb:          doc.Suburb,
		FieldCustomerName:    doc.CustomerName,
		FieldCustomerPhone:   doc.CustomerPhone,
		FieldPropertyAddress: doc.PropertyAddress,
		FieldFurnished:       doc.Furnished,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			v.add(field, CodeRequired)
		}
	}

	counts := map[string]int{
		FieldBedrooms:  doc.Bedrooms,
		FieldBathrooms: doc.Bathrooms,
	}
	for field, n := range counts {
		if code := wholeCode(n); code != "" {
			v.add(field, code)
		}
	}

	amounts := map[string]decimal.Decimal{
		FieldBaseHourlyRate:      doc.BaseHourlyRate,
		FieldWeekendSurcharge:    doc.WeekendSurcharge,
		FieldAfterHoursSurcharge: doc.AfterHoursSurcharge,
		FieldMandurahSurcharge:   doc.MandurahSurcharge,
		FieldDiscountApplied:     doc.DiscountApplied,
		FieldGSTApplied:          doc.GSTApplied,
		FieldTotalPrice:          doc.TotalPrice,
	}
	for field, amount := range amounts {
		switch {
		case amount.IsNegative():
			v.add(field, CodeNegative)
		case !exponentInRange(amount) || amount.GreaterThan(MaxAmount):
			v.add(field, CodeOutOfRange)
		}
	}

	switch est := doc.Estimate.(type) {
	case nil:
		v.add(FieldEstimatedTime, CodeRequired)
	case models.PointEstimate:
		if code := wholeCode(est.Minutes); code != "" {
			v.add(FieldEstimatedTime, code)
		}
	case models.RangeEstimate:
		// the zero RangeEstimate is 0–0 and therefore valid
		if code := wholeCode(est.Max()); code != "" {
			v.add(FieldEstimatedTime, code)
		}
		if est.Min() > est.Max() {
			v.add(FieldMinimumTime, CodeInvalidRange)
		}
	}

	if !v.Empty() {
		return &ValidationError{Violations: v}
	}
	return nil
}

func wholeCode(n int) string {
	switch {
	case n < 0:
		return CodeNegative
	case int64(n) > MaxWhole.IntPart():
		return CodeOutOfRange
	}
	return ""
}

// Format turns a document into display strings. Pure and deterministic.
func Format(doc *models.QuoteDocument) (models.QuoteView, error) {
	if err := Validate(doc); err != nil {
		return models.QuoteView{}, err
	}

	logoURI, err := LogoDataURI(doc.LogoBase64)
	if err != nil {
		return models.QuoteView{}, err
	}

	return models.QuoteView{
		QuoteID:         doc.QuoteID,
		Suburb:          doc.Suburb,
		CustomerName:    doc.CustomerName,
		CustomerPhone:   doc.CustomerPhone,
		PropertyAddress: doc.PropertyAddress,
		BusinessName:    present(doc.BusinessName),

		Bedrooms:  strconv.Itoa(doc.Bedrooms),
		Bathrooms: strconv.Itoa(doc.Bathrooms),
		Furnished: doc.Furnished,

		OvenCleaning:       utils.YesNo(doc.OvenCleaning),
		CarpetCleaning:     utils.YesNo(doc.CarpetCleaning),
		AfterHoursCleaning: utils.YesNo(doc.AfterHoursCleaning),
		WeekendCleaning:    utils.YesNo(doc.WeekendCleaning),
		MandurahProperty:   utils.YesNo(doc.MandurahProperty),
		IsPropertyManager:  utils.YesNo(doc.IsPropertyManager),

		BaseHourlyRate:      utils.FormatAUD(doc.BaseHourlyRate),
		WeekendSurcharge:    utils.FormatAUD(doc.WeekendSurcharge),
		AfterHoursSurcharge: utils.FormatAUD(doc.AfterHoursSurcharge),
		MandurahSurcharge:   utils.FormatAUD(doc.MandurahSurcharge),
		DiscountApplied:     utils.FormatDiscount(doc.DiscountApplied),
		GSTApplied:          utils.FormatAUD(doc.GSTApplied),
		TotalPrice:          utils.FormatAUD(doc.TotalPrice),

		EstimatedTime: doc.Estimate.Label(),
		Note:          present(doc.Note),

		LogoDataURI: logoURI,
	}, nil
}

// present drops blank optional values so the template never sees an empty string
func present(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// LogoDataURI checks that the payload is a base64 encoded PNG, JPEG or GIF
// and returns it as an inline data URI. The payload itself is not altered.
func LogoDataURI(payload string) (template.URL, error) {
	payload = strings.TrimSpace(payload)
	if i := strings.Index(payload, ";base64,"); strings.HasPrefix(payload, "data:") && i >= 0 {
		payload = payload[i+len(";base64,"):]
	}
	if payload == "" {
		return "", &MissingAssetError{Asset: FieldLogoBase64, Reason: "logo is empty"}
	}

	// wrapped base64 files carry line breaks
	payload = strings.Join(strings.Fields(payload), "")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", &MissingAssetError{Asset: FieldLogoBase64, Reason: "logo is not valid base64", Err: err}
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", &MissingAssetError{Asset: FieldLogoBase64, Reason: "logo is not a supported image", Err: err}
	}

	return template.URL("data:image/" + format + ";base64," + payload), nil
}
