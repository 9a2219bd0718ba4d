package main

import (
	"net/http"

	"github.com/evoteng/voter-card-api/internal/application"
	"github.com/evoteng/voter-card-api/internal/card"
	"github.com/evoteng/voter-card-api/internal/storage"
	"github.com/evoteng/voter-card-api/internal/system/config"
	"github.com/evoteng/voter-card-api/internal/system/database/provider"
	"github.com/evoteng/voter-card-api/internal/system/log"
	"github.com/evoteng/voter-card-api/internal/verification"
)

// registerServices wires all modules onto the HTTP multiplexer and returns
// the services the gin router needs.
func registerServices(
	mux *http.ServeMux,
	dbClient provider.DBClientInterface,
	artifactStore storage.ArtifactStore,
	cfg *config.Config,
) (application.ApplicationService, card.CardService) {
	logger := log.GetLogger()

	// Application module owns the records; it backs both the card module's
	// gateway and the verification module's record source.
	applicationService := application.Initialize(dbClient)
	logger.Info("Application module initialized")

	cardService := card.Initialize(mux, applicationService, artifactStore, &cfg.Card)
	logger.Info("Card module initialized")

	verification.Initialize(mux, applicationService)
	logger.Info("Verification module initialized")

	// Register health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return applicationService, cardService
}
