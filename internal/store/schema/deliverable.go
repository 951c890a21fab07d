package schema

import (
	"github.com/eventfold/sponsorpipe/internal/domain"
)

// Deliverable represents a record in the sponsor_deliverables collection:
// one tracked obligation to fulfill an included benefit for one sponsorship
type Deliverable struct {
	// ID is the record identifier assigned by the store
	ID string `json:"id"`
	// SponsorshipID references the owning sponsorship
	SponsorshipID string `json:"sponsorship"`
	// BenefitName is copied from the package benefit at generation time,
	// not a live reference
	BenefitName string `json:"benefit_name"`
	// Description is optional free text
	Description string `json:"description"`
	// Status is the fulfillment state
	Status domain.DeliverableStatus `json:"status"`
	// DueDate is the optional fulfillment deadline
	DueDate DateTime `json:"due_date"`
	// DeliveredAt is stamped by the mark-delivered operation
	DeliveredAt DateTime `json:"delivered_at"`
	// Notes holds organizer notes
	Notes string `json:"notes"`
	// Created / Updated are store-managed timestamps
	Created DateTime `json:"created"`
	Updated DateTime `json:"updated"`

	// Expand holds related records embedded by the store on request
	Expand DeliverableExpand `json:"expand"`
}

// DeliverableExpand holds related records embedded by foreign-key field name
type DeliverableExpand struct {
	Sponsorship *Sponsorship `json:"sponsorship"`
}

// CollectionName specifies the record store collection for deliverables
func (Deliverable) CollectionName() string {
	return "sponsor_deliverables"
}

// DeliverableFields is the writable field set for deliverable creation
// and updates
type DeliverableFields struct {
	SponsorshipID *string                   `json:"sponsorship,omitempty"`
	BenefitName   *string                   `json:"benefit_name,omitempty"`
	Description   *string                   `json:"description,omitempty"`
	Status        *domain.DeliverableStatus `json:"status,omitempty"`
	DueDate       *DateTime                 `json:"due_date,omitempty"`
	DeliveredAt   *DateTime                 `json:"delivered_at,omitempty"`
	Notes         *string                   `json:"notes,omitempty"`
}
