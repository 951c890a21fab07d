// Package deliverable materializes a sponsorship's contracted benefits as
// individually trackable obligations and works them through their
// fulfillment lifecycle.
package deliverable

import (
	"time"

	"github.com/eventfold/sponsorpipe/internal/domain"
	"github.com/eventfold/sponsorpipe/internal/store/schema"
)

// GenerationResult reports what a generation pass produced. Skipped counts
// included benefits that already had a deliverable.
type GenerationResult struct {
	Created      int
	Skipped      int
	Deliverables []schema.DeliverableFields
}

// BuildMissing computes the deliverable creation records for every included
// benefit that has no deliverable yet, matched by exact benefit name.
// Calling it again with the records it produced already persisted yields
// zero creations: generation is idempotent. It never proposes deletions --
// a tracked obligation is never silently dropped, even when its benefit was
// later excluded from the package.
func BuildMissing(sponsorshipID string, benefits []domain.Benefit, existing []schema.Deliverable, defaultDue *time.Time) GenerationResult {
	existingNames := make(map[string]bool, len(existing))
	for _, d := range existing {
		existingNames[d.BenefitName] = true
	}

	var due *schema.DateTime
	if defaultDue != nil {
		d := schema.NewDateTime(*defaultDue)
		due = &d
	}

	result := GenerationResult{}
	for _, b := range benefits {
		if !b.Included {
			continue
		}
		if existingNames[b.Name] {
			result.Skipped++
			continue
		}

		name := b.Name
		status := domain.DeliverablePending
		result.Deliverables = append(result.Deliverables, schema.DeliverableFields{
			SponsorshipID: &sponsorshipID,
			BenefitName:   &name,
			Status:        &status,
			DueDate:       due,
		})
		result.Created++
	}

	return result
}

// StaleBenefits returns the benefit names of deliverables whose benefit is
// no longer an included benefit of the given list. Stale deliverables are
// reported for operator visibility, never removed.
func StaleBenefits(benefits []domain.Benefit, existing []schema.Deliverable) []string {
	included := make(map[string]bool, len(benefits))
	for _, b := range benefits {
		if b.Included {
			included[b.Name] = true
		}
	}

	var stale []string
	for _, d := range existing {
		if !included[d.BenefitName] {
			stale = append(stale, d.BenefitName)
		}
	}
	return stale
}
