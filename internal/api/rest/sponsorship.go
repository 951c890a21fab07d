package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfold/sponsorpipe/internal/api/rest/dto"
	"github.com/eventfold/sponsorpipe/internal/domain"
)

// TransitionSponsorship moves a sponsorship through the status machine
func (h *handler) TransitionSponsorship(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Sponsorship ID is required")
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if !domain.IsValidSponsorStatus(req.Status) {
		respondValidationError(c, fmt.Sprintf("unknown status: %s", req.Status))
		return
	}

	updated, err := h.sponsorships.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		respondServiceError(c, err, "Failed to transition sponsorship")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// MarkSponsorshipPaid records payment on a confirmed sponsorship
func (h *handler) MarkSponsorshipPaid(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Sponsorship ID is required")
		return
	}

	// The payment reference is optional, so an empty body is fine
	var req dto.MarkPaidRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err.Error())
			return
		}
	}

	updated, err := h.sponsorships.MarkPaid(c.Request.Context(), id, req.PaymentReference)
	if err != nil {
		respondServiceError(c, err, "Failed to mark sponsorship as paid")
		return
	}

	c.JSON(http.StatusOK, updated)
}
