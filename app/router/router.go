package router

import (
	"net/http"

	"orca-quote-renderer/app/controller"
)

type Controllers struct {
	Quote *controller.QuoteController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"ping":"pong"}`))
}

func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Render a quote record sent in the body
	mux.HandleFunc("/quotes/render", controllers.Quote.RenderQuote)

	// Render a stored quote by id
	mux.HandleFunc("/quotes/", controllers.Quote.GetQuote)
}
