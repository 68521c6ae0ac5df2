package router

import (
	"github.com/gin-gonic/gin"

	"cropai/internal/config"
	"cropai/internal/handler"
	"cropai/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	profileH *handler.ProfileHandler,
	extractionH *handler.ExtractionHandler,
	recordH *handler.RecordHandler,
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

	// Profile routes
	profile := v1.Group("/profile")
	profile.POST("", profileH.Onboard)
	profile.GET("", profileH.Get)
	profile.PUT("", profileH.Update)
	profile.POST("/logout", profileH.Logout)

	// Batch extraction and review session routes
	extractions := v1.Group("/extractions")
	extractions.POST("", extractionH.StartBatch)
	extractions.GET("/:id", extractionH.GetSession)
	extractions.PUT("/:id/drafts/:draftID", extractionH.UpdateDraft)
	extractions.DELETE("/:id/drafts/:draftID", extractionH.RemoveDraft)
	extractions.POST("/:id/commit", extractionH.Commit)
	extractions.POST("/:id/cancel", extractionH.Cancel)

	// Persisted record routes. "export" is registered before ":id" so the
	// static segment wins.
	records := v1.Group("/records")
	records.GET("/:kind", recordH.List)
	records.GET("/:kind/export", recordH.Export)
	records.GET("/:kind/:id", recordH.GetByID)
	records.DELETE("/:kind/:id", recordH.Delete)

	return r
}
