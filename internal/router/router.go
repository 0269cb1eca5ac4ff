package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"

	"github.com/d-fine/dataland-sourcing-service/internal/handler"
	"github.com/d-fine/dataland-sourcing-service/internal/middleware"
)

// Setup sets up all routes
func Setup(
	h *server.Hertz,
	auth *handler.Auth,
	requestHandler *handler.RequestHandler,
	sourcingHandler *handler.DataSourcingHandler,
	adminHandler *handler.AdminHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Swagger API documentation
	// Access at: http://localhost:8080/swagger/index.html
	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	// Health check routes (no authentication required)
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	// API v1 routes (JWT authentication required)
	apiV1 := h.Group("/api/v1")
	apiV1.Use(auth.Middleware())
	{
		// Data request lifecycle
		requests := apiV1.Group("/requests")
		{
			requests.POST("", requestHandler.Create)
			requests.GET("", requestHandler.Search)
			requests.GET("/:id", requestHandler.Get)
			requests.PATCH("/:id/state", requestHandler.PatchState)
			requests.PATCH("/:id/priority", requestHandler.PatchPriority)
			requests.GET("/:id/history", requestHandler.History)
			requests.GET("/:id/history/extended", requestHandler.ExtendedHistory)
		}

		// Shared sourcing workflow
		sourcings := apiV1.Group("/data-sourcings")
		{
			sourcings.GET("", sourcingHandler.Search)
			sourcings.POST("/priorities", sourcingHandler.Priorities)
			sourcings.GET("/:id", sourcingHandler.Get)
			sourcings.PATCH("/:id", sourcingHandler.AdminPatch)
			sourcings.PATCH("/:id/state", sourcingHandler.PatchState)
			sourcings.PATCH("/:id/documents", sourcingHandler.PatchDocuments)
			sourcings.GET("/:id/history", sourcingHandler.History)
		}

		// Company-scoped views
		apiV1.GET("/companies/:companyId/data-sourcings", sourcingHandler.ListAssigned)

		// Operational admin endpoints
		admin := apiV1.Group("/admin")
		{
			admin.POST("/rebalance", adminHandler.TriggerRebalance)
		}
	}
}
