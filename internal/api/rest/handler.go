package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfold/sponsorpipe/internal/api/rest/dto"
	"github.com/eventfold/sponsorpipe/internal/deliverable"
	"github.com/eventfold/sponsorpipe/internal/portal"
	"github.com/eventfold/sponsorpipe/internal/sponsorship"
	"github.com/eventfold/sponsorpipe/internal/stats"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// TransitionSponsorship moves a sponsorship through the status machine
	// POST /api/v1/sponsorships/:id/transition
	TransitionSponsorship(c *gin.Context)

	// MarkSponsorshipPaid records payment on a confirmed sponsorship
	// POST /api/v1/sponsorships/:id/paid
	MarkSponsorshipPaid(c *gin.Context)

	// GenerateDeliverables creates missing deliverables for one sponsorship
	// POST /api/v1/sponsorships/:id/deliverables/generate
	GenerateDeliverables(c *gin.Context)

	// GenerateEditionDeliverables runs generation for every confirmed
	// sponsorship of an edition
	// POST /api/v1/editions/:edition_id/deliverables/generate
	GenerateEditionDeliverables(c *gin.Context)

	// UpdateDeliverableStatus transitions a deliverable's status
	// PATCH /api/v1/deliverables/:id/status
	UpdateDeliverableStatus(c *gin.Context)

	// MarkDeliverableDelivered completes a deliverable in one call
	// POST /api/v1/deliverables/:id/delivered
	MarkDeliverableDelivered(c *gin.Context)

	// GetDeliverableSummary reports deliverable progress for a sponsorship
	// GET /api/v1/sponsorships/:id/deliverables/summary
	GetDeliverableSummary(c *gin.Context)

	// GetSponsorStats tallies sponsorships by status and package occupancy
	// GET /api/v1/editions/:edition_id/stats/sponsors
	GetSponsorStats(c *gin.Context)

	// GetRevenueStats sums confirmed and paid revenue against the target
	// GET /api/v1/editions/:edition_id/stats/revenue
	GetRevenueStats(c *gin.Context)

	// GetPipelineStats reports funnel conversion and average deal size
	// GET /api/v1/editions/:edition_id/stats/pipeline
	GetPipelineStats(c *gin.Context)

	// GetPendingDeliverables groups outstanding deliverables by sponsorship
	// GET /api/v1/editions/:edition_id/stats/pending-deliverables
	GetPendingDeliverables(c *gin.Context)

	// GetStats composes all sub-reports in one response
	// GET /api/v1/editions/:edition_id/stats
	GetStats(c *gin.Context)

	// GeneratePortalLink issues a shareable portal link for a sponsorship
	// POST /api/v1/sponsorships/:id/portal-link
	GeneratePortalLink(c *gin.Context)

	// RefreshPortalToken rotates the sponsorship's portal token
	// POST /api/v1/sponsorships/:id/portal-token/refresh
	RefreshPortalToken(c *gin.Context)

	// RevokePortalToken deletes the sponsorship's portal tokens
	// DELETE /api/v1/sponsorships/:id/portal-token
	RevokePortalToken(c *gin.Context)

	// ValidatePortalToken resolves a raw token to its sponsorship
	// (open, no authentication required)
	// GET /portal/validate?token=<token>
	ValidatePortalToken(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// PortalLinkConfig holds the settings the portal handlers need
type PortalLinkConfig struct {
	BaseURL    string
	ExpiryDays int
}

// handler implements the Handler interface
type handler struct {
	sponsorships sponsorship.Service
	deliverables deliverable.Service
	portal       portal.Service
	stats        stats.Engine
	portalCfg    PortalLinkConfig
}

// NewHandler creates a new REST API handler
func NewHandler(
	sponsorships sponsorship.Service,
	deliverables deliverable.Service,
	portalSvc portal.Service,
	statsEngine stats.Engine,
	portalCfg PortalLinkConfig,
) Handler {
	return &handler{
		sponsorships: sponsorships,
		deliverables: deliverables,
		portal:       portalSvc,
		stats:        statsEngine,
		portalCfg:    portalCfg,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: "sponsorpipe-api",
	})
}
