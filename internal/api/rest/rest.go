package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/eventfold/sponsorpipe/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// Public portal resolution (sponsors follow emailed links, no auth)
	router.GET("/portal/validate", handler.ValidatePortalToken)

	// API v1 routes (organizer-facing, all authenticated)
	v1 := router.Group("/api/v1", middleware.Auth(authCfg))
	{
		// Sponsorship lifecycle
		v1.POST("/sponsorships/:id/transition", handler.TransitionSponsorship)
		v1.POST("/sponsorships/:id/paid", handler.MarkSponsorshipPaid)

		// Deliverable orchestration
		v1.POST("/sponsorships/:id/deliverables/generate", handler.GenerateDeliverables)
		v1.GET("/sponsorships/:id/deliverables/summary", handler.GetDeliverableSummary)
		v1.POST("/editions/:edition_id/deliverables/generate", handler.GenerateEditionDeliverables)
		v1.PATCH("/deliverables/:id/status", handler.UpdateDeliverableStatus)
		v1.POST("/deliverables/:id/delivered", handler.MarkDeliverableDelivered)

		// Portal token management
		v1.POST("/sponsorships/:id/portal-link", handler.GeneratePortalLink)
		v1.POST("/sponsorships/:id/portal-token/refresh", handler.RefreshPortalToken)
		v1.DELETE("/sponsorships/:id/portal-token", handler.RevokePortalToken)

		// Edition statistics
		v1.GET("/editions/:edition_id/stats", handler.GetStats)
		v1.GET("/editions/:edition_id/stats/sponsors", handler.GetSponsorStats)
		v1.GET("/editions/:edition_id/stats/revenue", handler.GetRevenueStats)
		v1.GET("/editions/:edition_id/stats/pipeline", handler.GetPipelineStats)
		v1.GET("/editions/:edition_id/stats/pending-deliverables", handler.GetPendingDeliverables)
	}
}
