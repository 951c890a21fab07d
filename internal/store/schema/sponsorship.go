package schema

import (
	"github.com/eventfold/sponsorpipe/internal/domain"
)

// Sponsorship represents a record in the edition_sponsors collection:
// one sponsor's relationship to one event edition
type Sponsorship struct {
	// ID is the record identifier assigned by the store
	ID string `json:"id"`
	// EditionID references the event edition
	EditionID string `json:"edition"`
	// SponsorID references the sponsor organization
	SponsorID string `json:"sponsor"`
	// PackageID references the assigned package, empty while prospecting
	PackageID string `json:"package"`
	// Status is the pipeline status, controlled by the transition gate
	Status domain.SponsorStatus `json:"status"`
	// Amount is the agreed sponsorship amount in minor currency units,
	// meaningful once confirmed
	Amount int64 `json:"amount"`
	// ConfirmedAt is stamped when the status reaches confirmed
	ConfirmedAt DateTime `json:"confirmed_at"`
	// PaidAt is stamped by the mark-paid operation, never free-form
	PaidAt DateTime `json:"paid_at"`
	// InvoiceNumber is a free-text billing reference
	InvoiceNumber string `json:"invoice_number"`
	// PaymentReference is a free-text payment reference
	PaymentReference string `json:"payment_reference"`
	// Notes holds organizer notes
	Notes string `json:"notes"`
	// Created / Updated are store-managed timestamps
	Created DateTime `json:"created"`
	Updated DateTime `json:"updated"`

	// Expand holds related records embedded by the store on request
	Expand SponsorshipExpand `json:"expand"`
}

// SponsorshipExpand holds related records embedded by foreign-key field name
type SponsorshipExpand struct {
	Sponsor *Sponsor `json:"sponsor"`
	Package *Package `json:"package"`
}

// CollectionName specifies the record store collection for sponsorships
func (Sponsorship) CollectionName() string {
	return "edition_sponsors"
}

// IsPaid reports whether the sponsorship carries a payment timestamp
func (s *Sponsorship) IsPaid() bool {
	return s.PaidAt.IsSet()
}

// SponsorshipFields is the writable field set for sponsorship updates.
// Nil pointers are omitted from the wire payload, so a partial update
// touches only the fields the caller sets.
type SponsorshipFields struct {
	Status           *domain.SponsorStatus `json:"status,omitempty"`
	PackageID        *string               `json:"package,omitempty"`
	Amount           *int64                `json:"amount,omitempty"`
	ConfirmedAt      *DateTime             `json:"confirmed_at,omitempty"`
	PaidAt           *DateTime             `json:"paid_at,omitempty"`
	InvoiceNumber    *string               `json:"invoice_number,omitempty"`
	PaymentReference *string               `json:"payment_reference,omitempty"`
	Notes            *string               `json:"notes,omitempty"`
}
