package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfold/sponsorpipe/internal/api/rest/dto"
	"github.com/eventfold/sponsorpipe/internal/domain"
)

// GenerateDeliverables creates missing deliverables for one sponsorship
func (h *handler) GenerateDeliverables(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Sponsorship ID is required")
		return
	}

	var req dto.GenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err.Error())
			return
		}
	}

	outcome, err := h.deliverables.GenerateForSponsorship(c.Request.Context(), id, req.DueDate)
	if err != nil {
		respondServiceError(c, err, "Failed to generate deliverables")
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// GenerateEditionDeliverables runs generation for every confirmed
// sponsorship of an edition
func (h *handler) GenerateEditionDeliverables(c *gin.Context) {
	editionID := c.Param("edition_id")
	if editionID == "" {
		respondBadRequest(c, "Edition ID is required")
		return
	}

	var req dto.GenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err.Error())
			return
		}
	}

	outcome, err := h.deliverables.GenerateForEdition(c.Request.Context(), editionID, req.DueDate)
	if err != nil {
		respondServiceError(c, err, "Failed to generate edition deliverables")
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// UpdateDeliverableStatus transitions a deliverable's status
func (h *handler) UpdateDeliverableStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Deliverable ID is required")
		return
	}

	var req dto.DeliverableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if !domain.IsValidDeliverableStatus(req.Status) {
		respondValidationError(c, fmt.Sprintf("unknown status: %s", req.Status))
		return
	}

	updated, err := h.deliverables.UpdateStatus(c.Request.Context(), id, req.Status, req.EventName)
	if err != nil {
		respondServiceError(c, err, "Failed to update deliverable status")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// MarkDeliverableDelivered completes a deliverable in one call
func (h *handler) MarkDeliverableDelivered(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Deliverable ID is required")
		return
	}

	var req dto.MarkDeliveredRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err.Error())
			return
		}
	}

	updated, err := h.deliverables.MarkAsDelivered(c.Request.Context(), id, req.EventName, req.Notes)
	if err != nil {
		respondServiceError(c, err, "Failed to mark deliverable as delivered")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetDeliverableSummary reports deliverable progress for a sponsorship
func (h *handler) GetDeliverableSummary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Sponsorship ID is required")
		return
	}

	summary, err := h.deliverables.Summarize(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to summarize deliverables")
		return
	}

	c.JSON(http.StatusOK, summary)
}
