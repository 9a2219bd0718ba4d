package verification

import (
	"net/http"

	"github.com/evoteng/voter-card-api/internal/system/middleware"
)

// Initialize sets up the public verification module and registers its route.
func Initialize(mux *http.ServeMux, records RecordSource) VerificationService {
	service := newVerificationService(records)
	handler := newVerificationHandler(service)

	registerRoutes(mux, handler)

	return service
}

func registerRoutes(mux *http.ServeMux, handler *verificationHandler) {
	// The verification endpoint is scanned from printed cards by arbitrary
	// devices, so it is fully public.
	corsOpts := middleware.CORSOptions{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}

	// GET /verify/{vin} - Public voter card verification
	mux.HandleFunc(middleware.WithCORS("GET /verify/{vin}", handler.verify, corsOpts))
	mux.HandleFunc("OPTIONS /verify/{vin}", middleware.PreflightHandler(corsOpts))
}
