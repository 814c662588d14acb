package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studenthub-backend/internal/shared/middleware"
	"studenthub-backend/internal/shared/response"
	"studenthub-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.RateLimit(c.Config.RateLimit, c.Redis.Client),
	)

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Route not found")
	})

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", healthCheckHandler(c))

		// Key issuance stays open: it is how a client obtains its first
		// credential. The rate limiter above keeps it from being a mint.
		api.POST("/generate-api-key", c.APIKeyHandler.Generate)
		api.POST("/api-keys/revoke", c.APIKeyHandler.Revoke)

		setupStudentRoutes(api, c)
	}

	return router
}

// ========================================
// STUDENT ROUTES
// ========================================
// The API-key gate is composed exactly once, on the whole group. Every
// record route added here is protected without further wiring.
func setupStudentRoutes(api *gin.RouterGroup, c *container.Container) {
	students := api.Group("/students")
	if c.Config.Auth.Enabled {
		students.Use(middleware.APIKeyAuth(c.APIKeyService))
	}
	{
		students.GET("", c.StudentHandler.List)
		students.GET("/search", c.StudentHandler.Search)
		students.GET("/:id", c.StudentHandler.Get)
		students.POST("", c.StudentHandler.Create)
		students.PUT("/:id", c.StudentHandler.Update)
		students.DELETE("/:id", c.StudentHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{
			"database": "ok",
			"redis":    "ok",
		}
		healthy := true

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = "unavailable"
			healthy = false
		}
		if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
			// Degraded, not down: redis only backs the rate limiter.
			checks["redis"] = "unavailable"
		}

		if !healthy {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "dependency check failed")
			return
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
