package schema

import (
	"github.com/eventfold/sponsorpipe/internal/domain"
)

// Package represents a record in the sponsor_packages collection: a
// purchasable sponsorship tier owned by an edition
type Package struct {
	// ID is the record identifier assigned by the store
	ID string `json:"id"`
	// EditionID references the owning edition
	EditionID string `json:"edition"`
	// Name is the display name of the tier
	Name string `json:"name"`
	// Tier orders packages, lower is more senior
	Tier int `json:"tier"`
	// Price is the list price in minor currency units
	Price int64 `json:"price"`
	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`
	// MaxSponsors caps how many sponsorships may hold this package,
	// zero means uncapped
	MaxSponsors int `json:"max_sponsors"`
	// Benefits is the ordered benefit checklist, the authoritative
	// source for deliverable generation
	Benefits []domain.Benefit `json:"benefits"`
	// Created / Updated are store-managed timestamps
	Created DateTime `json:"created"`
	Updated DateTime `json:"updated"`
}

// CollectionName specifies the record store collection for packages
func (Package) CollectionName() string {
	return "sponsor_packages"
}

// IncludedBenefits returns the benefits flagged as included, in order
func (p *Package) IncludedBenefits() []domain.Benefit {
	out := make([]domain.Benefit, 0, len(p.Benefits))
	for _, b := range p.Benefits {
		if b.Included {
			out = append(out, b)
		}
	}
	return out
}

// HasCapacity reports whether the package has a slot cap
func (p *Package) HasCapacity() bool {
	return p.MaxSponsors > 0
}
