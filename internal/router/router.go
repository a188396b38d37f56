package router

import (
	"github.com/gin-gonic/gin"

	"redline/internal/config"
	"redline/internal/handler"
	"redline/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	fileH *handler.FileHandler,
	cmpH *handler.ComparisonHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// File routes
	files := v1.Group("/files")
	files.POST("/upload", fileH.Upload)
	files.GET("", fileH.List)
	files.GET("/:id", fileH.GetByID)
	files.DELETE("/:id", fileH.Delete)

	// Comparison routes
	cmps := v1.Group("/comparisons")
	cmps.POST("", cmpH.Create)
	cmps.GET("", cmpH.List)
	cmps.POST("/text", cmpH.CompareText)
	cmps.GET("/:id", cmpH.GetByID)
	cmps.GET("/:id/export", cmpH.Export)

	return r
}
