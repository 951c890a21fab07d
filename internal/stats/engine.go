// Package stats derives read-side aggregate reports from current
// sponsorship, deliverable, and package records. Reports are pure
// aggregation over store scans; nothing here mutates state.
package stats

import (
	"context"
	"math"

	"github.com/alitto/pond/v2"

	"github.com/eventfold/sponsorpipe/internal/domain"
	"github.com/eventfold/sponsorpipe/internal/lifecycle"
	"github.com/eventfold/sponsorpipe/internal/store"
)

// PackageSlots reports occupancy for one package tier
type PackageSlots struct {
	PackageID    string `json:"package_id"`
	Name         string `json:"name"`
	Tier         int    `json:"tier"`
	SponsorCount int    `json:"sponsor_count"`
	MaxSponsors  int    `json:"max_sponsors,omitempty"`
	// Available is the remaining slot count, nil for uncapped packages
	Available *int `json:"available"`
}

// SponsorReport tallies sponsorships by status and package occupancy
type SponsorReport struct {
	EditionID string         `json:"edition_id"`
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"by_status"`
	Confirmed int            `json:"confirmed"`
	Active    int            `json:"active"`
	Packages  []PackageSlots `json:"packages"`
}

// RevenueReport compares confirmed revenue against the edition target
type RevenueReport struct {
	EditionID      string `json:"edition_id"`
	TotalRevenue   int64  `json:"total_revenue"`
	PaidRevenue    int64  `json:"paid_revenue"`
	PendingRevenue int64  `json:"pending_revenue"`
	// TargetRevenue is nil when no package has both a positive price and
	// a capacity: open-ended tiers are excluded from target math
	TargetRevenue   *int64  `json:"target_revenue"`
	ProgressPercent float64 `json:"progress_percent"`
}

// PipelineReport summarizes funnel conversion
type PipelineReport struct {
	EditionID string         `json:"edition_id"`
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"by_status"`
	// ConversionRate is confirmed over non-cancelled, as a percentage:
	// abandoned deals do not dilute the rate
	ConversionRate  float64 `json:"conversion_rate"`
	AverageDealSize int64   `json:"average_deal_size"`
}

// PendingSponsor groups the outstanding deliverables of one confirmed
// sponsorship
type PendingSponsor struct {
	SponsorshipID         string   `json:"sponsorship_id"`
	SponsorName           string   `json:"sponsor_name"`
	PackageName           string   `json:"package_name"`
	PendingBenefits       []string `json:"pending_benefits"`
	TotalDeliverables     int      `json:"total_deliverables"`
	CompletedDeliverables int      `json:"completed_deliverables"`
}

// Report is the combined statistics view for one edition
type Report struct {
	EditionID    string           `json:"edition_id"`
	Sponsors     *SponsorReport   `json:"sponsors"`
	Revenue      *RevenueReport   `json:"revenue"`
	Pipeline     *PipelineReport  `json:"pipeline"`
	Pending      []PendingSponsor `json:"pending_deliverables"`
	PackageCount int              `json:"package_count"`
}

// Engine defines the statistics operations
//
//go:generate mockgen -source=engine.go -destination=../mocks/stats_engine.go -package=mocks -mock_names=Engine=MockStatsEngine
type Engine interface {
	// SponsorStats tallies sponsorships by status and package occupancy
	SponsorStats(ctx context.Context, editionID string) (*SponsorReport, error)

	// RevenueStats sums confirmed and paid revenue against the target
	RevenueStats(ctx context.Context, editionID string) (*RevenueReport, error)

	// PipelineStats reports funnel conversion and average deal size
	PipelineStats(ctx context.Context, editionID string) (*PipelineReport, error)

	// PendingDeliverables groups outstanding deliverables of confirmed
	// sponsorships by sponsorship
	PendingDeliverables(ctx context.Context, editionID string) ([]PendingSponsor, error)

	// GetStats composes all four sub-reports plus the package count,
	// fetched concurrently
	GetStats(ctx context.Context, editionID string) (*Report, error)
}

type engine struct {
	store store.Store
	pool  pond.Pool
}

// NewEngine creates a new statistics engine. The sub-reports of GetStats
// run on a small shared pool.
func NewEngine(st store.Store) Engine {
	return &engine{
		store: st,
		pool:  pond.NewPool(5),
	}
}

func (e *engine) SponsorStats(ctx context.Context, editionID string) (*SponsorReport, error) {
	sponsorships, err := e.store.ListSponsorships(ctx, editionID)
	if err != nil {
		return nil, err
	}

	packages, err := e.store.ListPackages(ctx, editionID)
	if err != nil {
		return nil, err
	}

	report := &SponsorReport{
		EditionID: editionID,
		Total:     len(sponsorships),
		ByStatus:  statusTally(),
		Packages:  []PackageSlots{},
	}

	// Confirmed sponsorships are what consume a package slot
	confirmedPerPackage := make(map[string]int)
	for _, sp := range sponsorships {
		report.ByStatus[string(sp.Status)]++
		if lifecycle.IsActive(sp.Status) {
			report.Active++
		}
		if sp.Status == domain.StatusConfirmed {
			report.Confirmed++
			if sp.PackageID != "" {
				confirmedPerPackage[sp.PackageID]++
			}
		}
	}

	for _, pkg := range packages {
		slots := PackageSlots{
			PackageID:    pkg.ID,
			Name:         pkg.Name,
			Tier:         pkg.Tier,
			SponsorCount: confirmedPerPackage[pkg.ID],
			MaxSponsors:  pkg.MaxSponsors,
		}
		if pkg.HasCapacity() {
			available := pkg.MaxSponsors - slots.SponsorCount
			if available < 0 {
				available = 0
			}
			slots.Available = &available
		}
		report.Packages = append(report.Packages, slots)
	}

	return report, nil
}

func (e *engine) RevenueStats(ctx context.Context, editionID string) (*RevenueReport, error) {
	confirmed, err := e.store.ListSponsorshipsByStatus(ctx, editionID, domain.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	packages, err := e.store.ListPackages(ctx, editionID)
	if err != nil {
		return nil, err
	}

	report := &RevenueReport{EditionID: editionID}
	for _, sp := range confirmed {
		report.TotalRevenue += sp.Amount
		if sp.IsPaid() {
			report.PaidRevenue += sp.Amount
		}
	}
	report.PendingRevenue = report.TotalRevenue - report.PaidRevenue

	var target int64
	for _, pkg := range packages {
		if pkg.Price > 0 && pkg.HasCapacity() {
			target += pkg.Price * int64(pkg.MaxSponsors)
		}
	}
	if target > 0 {
		report.TargetRevenue = &target
		report.ProgressPercent = round2(float64(report.TotalRevenue) / float64(target) * 100)
	}

	return report, nil
}

func (e *engine) PipelineStats(ctx context.Context, editionID string) (*PipelineReport, error) {
	sponsorships, err := e.store.ListSponsorships(ctx, editionID)
	if err != nil {
		return nil, err
	}

	report := &PipelineReport{
		EditionID: editionID,
		Total:     len(sponsorships),
		ByStatus:  statusTally(),
	}

	var confirmedAmount int64
	confirmed, cancelled := 0, 0
	for _, sp := range sponsorships {
		report.ByStatus[string(sp.Status)]++
		switch sp.Status {
		case domain.StatusConfirmed:
			confirmed++
			confirmedAmount += sp.Amount
		case domain.StatusCancelled:
			cancelled++
		}
	}

	if denominator := report.Total - cancelled; denominator > 0 {
		report.ConversionRate = round2(float64(confirmed) / float64(denominator) * 100)
	}
	if confirmed > 0 {
		report.AverageDealSize = int64(math.Round(float64(confirmedAmount) / float64(confirmed)))
	}

	return report, nil
}

func (e *engine) PendingDeliverables(ctx context.Context, editionID string) ([]PendingSponsor, error) {
	confirmed, err := e.store.ListSponsorshipsByStatus(ctx, editionID, domain.StatusConfirmed, store.ExpandSponsor, store.ExpandPackage)
	if err != nil {
		return nil, err
	}

	result := []PendingSponsor{}
	for _, sp := range confirmed {
		deliverables, err := e.store.ListDeliverables(ctx, sp.ID)
		if err != nil {
			return nil, err
		}

		entry := PendingSponsor{
			SponsorshipID:     sp.ID,
			TotalDeliverables: len(deliverables),
		}
		if sp.Expand.Sponsor != nil {
			entry.SponsorName = sp.Expand.Sponsor.Name
		}
		if sp.Expand.Package != nil {
			entry.PackageName = sp.Expand.Package.Name
		}

		for _, d := range deliverables {
			if d.Status == domain.DeliverableDelivered {
				entry.CompletedDeliverables++
			} else {
				entry.PendingBenefits = append(entry.PendingBenefits, d.BenefitName)
			}
		}

		if len(entry.PendingBenefits) > 0 {
			result = append(result, entry)
		}
	}

	return result, nil
}

func (e *engine) GetStats(ctx context.Context, editionID string) (*Report, error) {
	report := &Report{EditionID: editionID}

	// The sub-reports share no state and only read, so they fetch
	// concurrently
	group := e.pool.NewGroup()

	group.SubmitErr(func() error {
		sponsors, err := e.SponsorStats(ctx, editionID)
		report.Sponsors = sponsors
		return err
	})
	group.SubmitErr(func() error {
		revenue, err := e.RevenueStats(ctx, editionID)
		report.Revenue = revenue
		return err
	})
	group.SubmitErr(func() error {
		pipeline, err := e.PipelineStats(ctx, editionID)
		report.Pipeline = pipeline
		return err
	})
	group.SubmitErr(func() error {
		pending, err := e.PendingDeliverables(ctx, editionID)
		report.Pending = pending
		return err
	})
	group.SubmitErr(func() error {
		packages, err := e.store.ListPackages(ctx, editionID)
		report.PackageCount = len(packages)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

// statusTally initializes a per-status counter with every status present
func statusTally() map[string]int {
	tally := make(map[string]int, len(domain.AllSponsorStatuses))
	for _, s := range domain.AllSponsorStatuses {
		tally[string(s)] = 0
	}
	return tally
}

// round2 rounds to two decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
