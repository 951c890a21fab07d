package store

import (
	"context"

	"github.com/eventfold/sponsorpipe/internal/domain"
	"github.com/eventfold/sponsorpipe/internal/store/schema"
)

// Expand names for sponsorship and deliverable lookups, matching the
// foreign-key field names the record store embeds by
const (
	ExpandSponsor            = "sponsor"
	ExpandPackage            = "package"
	ExpandSponsorshipSponsor = "sponsorship.sponsor"
)

// Store defines the interface for record store operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetSponsorship retrieves a sponsorship by id, optionally expanding
	// related records. Returns domain.ErrSponsorshipNotFound if absent.
	GetSponsorship(ctx context.Context, id string, expand ...string) (*schema.Sponsorship, error)

	// ListSponsorships retrieves every sponsorship for an edition
	ListSponsorships(ctx context.Context, editionID string, expand ...string) ([]schema.Sponsorship, error)

	// ListSponsorshipsByStatus retrieves every sponsorship for an edition in
	// the given status
	ListSponsorshipsByStatus(ctx context.Context, editionID string, status domain.SponsorStatus, expand ...string) ([]schema.Sponsorship, error)

	// UpdateSponsorship applies a partial field update to a sponsorship
	UpdateSponsorship(ctx context.Context, id string, fields schema.SponsorshipFields) (*schema.Sponsorship, error)

	// GetPackage retrieves a package by id. Returns domain.ErrPackageNotFound
	// if absent.
	GetPackage(ctx context.Context, id string) (*schema.Package, error)

	// ListPackages retrieves every package for an edition, ordered by tier
	ListPackages(ctx context.Context, editionID string) ([]schema.Package, error)

	// GetDeliverable retrieves a deliverable by id, optionally expanding
	// related records. Returns domain.ErrDeliverableNotFound if absent.
	GetDeliverable(ctx context.Context, id string, expand ...string) (*schema.Deliverable, error)

	// ListDeliverables retrieves every deliverable owned by a sponsorship
	ListDeliverables(ctx context.Context, sponsorshipID string) ([]schema.Deliverable, error)

	// CreateDeliverable creates a new deliverable record
	CreateDeliverable(ctx context.Context, fields schema.DeliverableFields) (*schema.Deliverable, error)

	// UpdateDeliverable applies a partial field update to a deliverable
	UpdateDeliverable(ctx context.Context, id string, fields schema.DeliverableFields) (*schema.Deliverable, error)

	// FindTokenByValue looks up a portal token by its opaque value.
	// Returns domain.ErrTokenNotFound if absent.
	FindTokenByValue(ctx context.Context, token string) (*schema.PortalToken, error)

	// ListTokensBySponsorship retrieves every portal token issued for a
	// sponsorship, newest first
	ListTokensBySponsorship(ctx context.Context, sponsorshipID string) ([]schema.PortalToken, error)

	// CreateToken creates a new portal token record
	CreateToken(ctx context.Context, fields schema.PortalTokenFields) (*schema.PortalToken, error)

	// UpdateToken applies a partial field update to a portal token
	UpdateToken(ctx context.Context, id string, fields schema.PortalTokenFields) (*schema.PortalToken, error)

	// DeleteToken removes a portal token record
	DeleteToken(ctx context.Context, id string) error
}
