package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventfold/sponsorpipe/internal/api/rest/dto"
)

// GeneratePortalLink issues a shareable portal link for a sponsorship
func (h *handler) GeneratePortalLink(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Sponsorship ID is required")
		return
	}

	var req dto.PortalLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	url, err := h.portal.GeneratePortalLink(c.Request.Context(), id, req.EditionSlug, h.portalCfg.BaseURL)
	if err != nil {
		respondServiceError(c, err, "Failed to generate portal link")
		return
	}

	c.JSON(http.StatusOK, dto.PortalLinkResponse{URL: url})
}

// RefreshPortalToken rotates the sponsorship's portal token
func (h *handler) RefreshPortalToken(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Sponsorship ID is required")
		return
	}

	var req dto.PortalRefreshRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err.Error())
			return
		}
	}

	expiryDays := req.ExpiryDays
	if expiryDays <= 0 {
		expiryDays = h.portalCfg.ExpiryDays
	}

	token, err := h.portal.Refresh(c.Request.Context(), id, expiryDays)
	if err != nil {
		respondServiceError(c, err, "Failed to refresh portal token")
		return
	}

	c.JSON(http.StatusOK, dto.NewPortalTokenResponse(token))
}

// RevokePortalToken deletes the sponsorship's portal tokens
func (h *handler) RevokePortalToken(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Sponsorship ID is required")
		return
	}

	if err := h.portal.Revoke(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to revoke portal tokens")
		return
	}

	c.Status(http.StatusNoContent)
}

// ValidatePortalToken resolves a raw token to its sponsorship
func (h *handler) ValidatePortalToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		respondBadRequest(c, "Token is required")
		return
	}

	result, err := h.portal.Validate(c.Request.Context(), token)
	if err != nil {
		respondServiceError(c, err, "Failed to validate portal token")
		return
	}

	c.JSON(http.StatusOK, dto.PortalValidationResponse{
		Valid:       result.Valid,
		Reason:      result.Reason,
		Sponsorship: result.Sponsorship,
	})
}
