package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"orca-quote-renderer/app/controller"
	"orca-quote-renderer/app/router"
	"orca-quote-renderer/config"
	"orca-quote-renderer/db"
	"orca-quote-renderer/repository"
	"orca-quote-renderer/service"
)

// Initialize wires services and controllers and returns the HTTP handler
func Initialize(ctx context.Context, cfg *config.Config) (http.Handler, error) {
	// Logo: Drive when configured, local file otherwise
	var source service.LogoSource
	if cfg.UseDriveLogo() {
		driveService, err := service.NewDriveService(ctx, cfg.DriveCredentials)
		if err != nil {
			return nil, err
		}
		source = service.NewDriveLogoSource(driveService, cfg.LogoDriveFileID)
	} else {
		source = &service.FileLogoSource{Path: cfg.LogoPath}
	}

	logoService := service.NewLogoService(source, cfg.LogoMaxWidth)
	if err := logoService.Load(ctx); err != nil {
		// Quotes that carry their own logo still render
		log.Printf("⚠️  Default logo unavailable: %v", err)
	}

	// Upstream quote records are optional
	var quoteRepo repository.QuoteRepositoryInterface
	if err := db.InitDB(ctx); err != nil {
		if !errors.Is(err, db.ErrNotConfigured) {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Printf("⚠️  No database configured, GET /quotes/{id} is disabled")
	} else {
		quoteRepo = repository.NewQuoteRepository(cfg.QuotesTable)
	}

	pdfService := service.NewPDFService(cfg.ChromePath, cfg.PDFTimeout)
	quoteService := service.NewQuoteService(pdfService, logoService, quoteRepo)

	controllers := &router.Controllers{
		Quote: controller.NewQuoteController(quoteService),
	}

	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers)

	return mux, nil
}
