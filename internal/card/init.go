package card

import (
	"net/http"

	"github.com/evoteng/voter-card-api/internal/storage"
	"github.com/evoteng/voter-card-api/internal/system/config"
	"github.com/evoteng/voter-card-api/internal/system/constants"
	"github.com/evoteng/voter-card-api/internal/system/middleware"
)

// Initialize sets up the card module and registers its routes.
func Initialize(mux *http.ServeMux, gateway ApplicationGateway, store storage.ArtifactStore, cfg *config.CardConfig) CardService {
	service := newCardService(gateway, store, cfg)
	handler := newCardHandler(service)

	registerRoutes(mux, handler)

	return service
}

func registerRoutes(mux *http.ServeMux, handler *cardHandler) {
	corsOpts := middleware.CORSOptions{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Correlation-ID"},
		AllowCredentials: true,
	}

	// POST /api/v1/applications/{applicationId}/voter-card - Issue card
	mux.HandleFunc(middleware.WithCORS("POST "+constants.APIBasePath+"/applications/{applicationId}/voter-card", handler.issueCard, corsOpts))

	// GET /api/v1/applications/{applicationId}/voter-card - Download card
	mux.HandleFunc(middleware.WithCORS("GET "+constants.APIBasePath+"/applications/{applicationId}/voter-card", handler.downloadCard, corsOpts))

	mux.HandleFunc("OPTIONS "+constants.APIBasePath+"/applications/{applicationId}/voter-card", middleware.PreflightHandler(corsOpts))
}
