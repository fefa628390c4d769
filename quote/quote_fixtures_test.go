package quote

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testLogo returns a tiny PNG encoded as base64
func testLogo(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.RGBA{R: 11, G: 110, B: 153, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

// sampleRecord mirrors what the pricing service sends for a range quote
func sampleRecord(t *testing.T) map[string]any {
	t.Helper()
	return map[string]any{
		"quote_id":              "VC-250413-224512-491",
		"suburb":                "Subiaco",
		"customer_name":         "John Smith",
		"customer_phone":        "0412 345 678",
		"property_address":      "12 Example Street, Subiaco WA 6008",
		"business_name":         "Smith Realty",
		"bedrooms_v2":           3,
		"bathrooms_v2":          2,
		"furnished":             "Furnished",
		"oven_cleaning":         true,
		"carpet_cleaning":       false,
		"after_hours_cleaning":  false,
		"weekend_cleaning":      true,
		"mandurah_property":     false,
		"is_property_manager":   true,
		"base_hourly_rate":      75.0,
		"weekend_surcharge":     387.5,
		"after_hours_surcharge": 0,
		"mandurah_surcharge":    0,
		"discount_applied":      25.5,
		"gst_applied":           41.46,
		"total_price":           456.05,
		"is_range":              true,
		"minimum_time_mins":     30,
		"estimated_time_mins":   45,
		"note":                  "Includes 30–60 min for special request",
		"logo_base64":           testLogo(t),
	}
}

func encodeRecord(t *testing.T, rec map[string]any) []byte {
	t.Helper()
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	return data
}
