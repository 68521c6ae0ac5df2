package main

import (
	"fmt"
	"log"

	"cropai/internal/batch"
	"cropai/internal/config"
	"cropai/internal/extractor/gemini"
	"cropai/internal/handler"
	"cropai/internal/repository/kvstore"
	"cropai/internal/review"
	"cropai/internal/router"
	"cropai/internal/service"
	"cropai/internal/storage/kv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := kv.NewSQLiteStore(&cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer func() { _ = store.Close() }()

	// Initialize repositories
	profileRepo := kvstore.NewProfileRepo(store)
	recordRepo := kvstore.NewRecordRepo(store)

	// Initialize the extraction pipeline
	docExtractor := gemini.NewExtractor(&cfg.Extractor)
	orchestrator := batch.New(docExtractor)
	sessions := review.NewStore()

	// Initialize services
	profileSvc := service.NewProfileService(profileRepo, recordRepo)
	extractionSvc := service.NewExtractionService(profileRepo, recordRepo, orchestrator, sessions, &cfg.Upload)
	recordSvc := service.NewRecordService(profileRepo, recordRepo)

	// Initialize handlers
	profileH := handler.NewProfileHandler(profileSvc)
	extractionH := handler.NewExtractionHandler(extractionSvc)
	recordH := handler.NewRecordHandler(recordSvc)
	healthH := handler.NewHealthHandler(store)

	// Setup router
	r := router.Setup(cfg, profileH, extractionH, recordH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
