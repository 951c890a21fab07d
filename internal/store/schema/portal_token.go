package schema

// PortalToken represents a record in the sponsor_portal_tokens collection:
// an opaque credential binding an external sponsor contact to one
// sponsorship record
type PortalToken struct {
	// ID is the record identifier assigned by the store
	ID string `json:"id"`
	// SponsorshipID references the sponsorship the token grants access to
	SponsorshipID string `json:"sponsorship"`
	// Token is the opaque random credential value
	Token string `json:"token"`
	// ExpiresAt bounds the token lifetime, unset means the token never expires
	ExpiresAt DateTime `json:"expires_at"`
	// LastUsedAt is advisory telemetry stamped on each successful validation
	LastUsedAt DateTime `json:"last_used_at"`
	// Created is the store-managed creation timestamp
	Created DateTime `json:"created"`
}

// CollectionName specifies the record store collection for portal tokens
func (PortalToken) CollectionName() string {
	return "sponsor_portal_tokens"
}

// PortalTokenFields is the writable field set for token records
type PortalTokenFields struct {
	SponsorshipID *string   `json:"sponsorship,omitempty"`
	Token         *string   `json:"token,omitempty"`
	ExpiresAt     *DateTime `json:"expires_at,omitempty"`
	LastUsedAt    *DateTime `json:"last_used_at,omitempty"`
}
