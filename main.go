package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"orca-quote-renderer/app"
	"orca-quote-renderer/config"
	"orca-quote-renderer/db"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("ENV") != "production" {
		envPath := ".env"
		if err := godotenv.Overload(envPath); err != nil {
			log.Printf("Warning: .env file not found at %s, using system environment variables", envPath)
		} else {
			log.Printf("Successfully loaded environment variables from %s (overriding system variables)", envPath)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	handler, err := app.Initialize(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.CloseDB()

	addr := cfg.Addr()
	log.Printf("Server starting on %s", addr)
	log.Printf("Render endpoint: POST http://localhost:%s/quotes/render?format=pdf", cfg.Port)

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
