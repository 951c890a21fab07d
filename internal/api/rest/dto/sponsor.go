package dto

import (
	"time"

	"github.com/eventfold/sponsorpipe/internal/domain"
	"github.com/eventfold/sponsorpipe/internal/store/schema"
)

// TransitionRequest asks for a sponsorship status change
type TransitionRequest struct {
	Status domain.SponsorStatus `json:"status" binding:"required"`
}

// MarkPaidRequest records a payment against a confirmed sponsorship
type MarkPaidRequest struct {
	PaymentReference string `json:"payment_reference"`
}

// GenerateRequest optionally sets a default due date for generated deliverables
type GenerateRequest struct {
	DueDate *time.Time `json:"due_date"`
}

// DeliverableStatusRequest asks for a deliverable status change
type DeliverableStatusRequest struct {
	Status    domain.DeliverableStatus `json:"status" binding:"required"`
	EventName string                   `json:"event_name"`
}

// MarkDeliveredRequest completes a deliverable in one call
type MarkDeliveredRequest struct {
	EventName string `json:"event_name"`
	Notes     string `json:"notes"`
}

// PortalLinkRequest asks for a shareable portal link
type PortalLinkRequest struct {
	EditionSlug string `json:"edition_slug" binding:"required"`
}

// PortalRefreshRequest rotates a sponsorship's portal token
type PortalRefreshRequest struct {
	ExpiryDays int `json:"expiry_days"`
}

// PortalLinkResponse carries the generated portal URL
type PortalLinkResponse struct {
	URL string `json:"url"`
}

// PortalTokenResponse exposes a portal token without its record internals
type PortalTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// PortalValidationResponse is the public portal resolution result
type PortalValidationResponse struct {
	Valid       bool                `json:"valid"`
	Reason      string              `json:"reason,omitempty"`
	Sponsorship *schema.Sponsorship `json:"sponsorship,omitempty"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// NewPortalTokenResponse converts a stored token to its API shape
func NewPortalTokenResponse(t *schema.PortalToken) PortalTokenResponse {
	return PortalTokenResponse{
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt.String(),
	}
}
