package router

import (
	"github.com/gin-gonic/gin"

	"github.com/evoteng/voter-card-api/internal/application"
	"github.com/evoteng/voter-card-api/internal/system/config"
	"github.com/evoteng/voter-card-api/internal/system/middleware"
)

// SetupRouter configures the application-record API routes. The router is
// mounted under /api/v1 by the server.
func SetupRouter(applicationHandler *application.ApplicationHandler, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	if cfg.CORS.Enabled {
		router.Use(middleware.CORSMiddleware(middleware.CORSOptions{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   cfg.CORS.AllowedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
		}))
	}

	applications := router.Group("/applications")
	{
		applications.POST("", applicationHandler.SubmitApplication)
		applications.GET("", applicationHandler.ListApplications)

		// Specific paths before parameterized paths
		applications.POST("/:applicationId/approve", applicationHandler.ApproveApplication)
		applications.POST("/:applicationId/reject", applicationHandler.RejectApplication)

		applications.GET("/:applicationId", applicationHandler.GetApplication)
	}

	return router
}
