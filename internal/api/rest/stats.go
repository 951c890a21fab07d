package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSponsorStats tallies sponsorships by status and package occupancy
func (h *handler) GetSponsorStats(c *gin.Context) {
	editionID := c.Param("edition_id")
	if editionID == "" {
		respondBadRequest(c, "Edition ID is required")
		return
	}

	report, err := h.stats.SponsorStats(c.Request.Context(), editionID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute sponsor stats")
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetRevenueStats sums confirmed and paid revenue against the target
func (h *handler) GetRevenueStats(c *gin.Context) {
	editionID := c.Param("edition_id")
	if editionID == "" {
		respondBadRequest(c, "Edition ID is required")
		return
	}

	report, err := h.stats.RevenueStats(c.Request.Context(), editionID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute revenue stats")
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetPipelineStats reports funnel conversion and average deal size
func (h *handler) GetPipelineStats(c *gin.Context) {
	editionID := c.Param("edition_id")
	if editionID == "" {
		respondBadRequest(c, "Edition ID is required")
		return
	}

	report, err := h.stats.PipelineStats(c.Request.Context(), editionID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute pipeline stats")
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetPendingDeliverables groups outstanding deliverables by sponsorship
func (h *handler) GetPendingDeliverables(c *gin.Context) {
	editionID := c.Param("edition_id")
	if editionID == "" {
		respondBadRequest(c, "Edition ID is required")
		return
	}

	pending, err := h.stats.PendingDeliverables(c.Request.Context(), editionID)
	if err != nil {
		respondServiceError(c, err, "Failed to list pending deliverables")
		return
	}

	c.JSON(http.StatusOK, pending)
}

// GetStats composes all sub-reports in one response
func (h *handler) GetStats(c *gin.Context) {
	editionID := c.Param("edition_id")
	if editionID == "" {
		respondBadRequest(c, "Edition ID is required")
		return
	}

	report, err := h.stats.GetStats(c.Request.Context(), editionID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute edition stats")
		return
	}

	c.JSON(http.StatusOK, report)
}
