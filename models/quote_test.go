package models

import (
	"errors"
	"testing"
)

func TestNewRangeEstimate(t *testing.T) {
	est, err := NewRangeEstimate(30, 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.Min() != 30 || est.Max() != 45 {
		t.Errorf("range = %d–%d, want 30–45", est.Min(), est.Max())
	}
	if got := est.Label(); got != "30–45 mins" {
		t.Errorf("Label() = %q, want %q", got, "30–45 mins")
	}
	if !est.IsRange() {
		t.Error("IsRange() = false")
	}

	if _, err := NewRangeEstimate(45, 45); err != nil {
		t.Errorf("equal bounds rejected: %v", err)
	}
	if _, err := NewRangeEstimate(50, 40); !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("expected ErrInvalidTimeRange, got %v", err)
	}
	if _, err := NewRangeEstimate(-1, 40); err == nil {
		t.Error("expected error for negative minimum")
	}
}

func TestPointEstimate(t *testing.T) {
	var est TimeEstimate = PointEstimate{Minutes: 60}
	if est.Label() != "60 mins" {
		t.Errorf("Label() = %q, want %q", est.Label(), "60 mins")
	}
	if est.IsRange() {
		t.Error("IsRange() = true")
	}
}
