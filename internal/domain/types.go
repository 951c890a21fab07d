package domain

import "time"

// SponsorStatus represents where a sponsorship sits in the deal pipeline
type SponsorStatus string

const (
	StatusProspect    SponsorStatus = "prospect"
	StatusContacted   SponsorStatus = "contacted"
	StatusNegotiating SponsorStatus = "negotiating"
	StatusConfirmed   SponsorStatus = "confirmed"
	StatusDeclined    SponsorStatus = "declined"
	StatusCancelled   SponsorStatus = "cancelled"
	StatusRefunded    SponsorStatus = "refunded"
)

// AllSponsorStatuses lists every sponsor status in pipeline order,
// terminal statuses last
var AllSponsorStatuses = []SponsorStatus{
	StatusProspect,
	StatusContacted,
	StatusNegotiating,
	StatusConfirmed,
	StatusDeclined,
	StatusCancelled,
	StatusRefunded,
}

// IsValidSponsorStatus checks if a sponsor status is valid
func IsValidSponsorStatus(s SponsorStatus) bool {
	switch s {
	case StatusProspect, StatusContacted, StatusNegotiating, StatusConfirmed,
		StatusDeclined, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// DeliverableStatus represents the fulfillment state of a single tracked benefit
type DeliverableStatus string

const (
	DeliverablePending    DeliverableStatus = "pending"
	DeliverableInProgress DeliverableStatus = "in_progress"
	DeliverableDelivered  DeliverableStatus = "delivered"
)

// AllDeliverableStatuses lists every deliverable status
var AllDeliverableStatuses = []DeliverableStatus{
	DeliverablePending,
	DeliverableInProgress,
	DeliverableDelivered,
}

// IsValidDeliverableStatus checks if a deliverable status is valid
func IsValidDeliverableStatus(s DeliverableStatus) bool {
	switch s {
	case DeliverablePending, DeliverableInProgress, DeliverableDelivered:
		return true
	}
	return false
}

// Benefit is a named perk declared on a sponsorship package
type Benefit struct {
	Name     string `json:"name"`
	Included bool   `json:"included"`
}

// EventType represents the type of domain event published to the broker
type EventType string

const (
	EventTypeStatusChanged      EventType = "sponsorship.status.changed"
	EventTypeDeliverableCreated EventType = "deliverable.created"
	EventTypeDelivered          EventType = "deliverable.delivered"
	EventTypeTokenRefreshed     EventType = "portal.token.refreshed"
)

// Event is the normalized domain event published to the message broker
type Event struct {
	EventID       string    `json:"event_id"` // ULID
	EventType     EventType `json:"event_type"`
	EditionID     string    `json:"edition_id,omitempty"`
	SponsorshipID string    `json:"sponsorship_id,omitempty"`
	DeliverableID string    `json:"deliverable_id,omitempty"`
	FromStatus    string    `json:"from_status,omitempty"`
	ToStatus      string    `json:"to_status,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
