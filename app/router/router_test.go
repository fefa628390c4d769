package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"orca-quote-renderer/app/controller"
	"orca-quote-renderer/service"
)

func TestSetupRoutes(t *testing.T) {
	quoteService := service.NewQuoteService(nil, nil, nil)
	mux := http.NewServeMux()
	SetupRoutes(mux, &Controllers{Quote: controller.NewQuoteController(quoteService)})

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/ping", http.StatusOK},
		{http.MethodPost, "/ping", http.StatusMethodNotAllowed},
		{http.MethodGet, "/quotes/render", http.StatusMethodNotAllowed},
		{http.MethodGet, "/quotes/VC-1", http.StatusServiceUnavailable},
		{http.MethodGet, "/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Code != tt.status {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, rec.Code, tt.status)
		}
	}
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	pingHandler(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rec.Body.String(); got != `{"ping":"pong"}` {
		t.Errorf("body = %q, want %q", got, `{"ping":"pong"}`)
	}
}
