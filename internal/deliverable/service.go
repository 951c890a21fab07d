package deliverable

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/eventfold/sponsorpipe/internal/adapter"
	"github.com/eventfold/sponsorpipe/internal/domain"
	"github.com/eventfold/sponsorpipe/internal/events"
	"github.com/eventfold/sponsorpipe/internal/lifecycle"
	"github.com/eventfold/sponsorpipe/internal/locker"
	"github.com/eventfold/sponsorpipe/internal/logger"
	"github.com/eventfold/sponsorpipe/internal/mailer"
	"github.com/eventfold/sponsorpipe/internal/store"
	"github.com/eventfold/sponsorpipe/internal/store/schema"
)

// Notification reason strings, rendered directly to callers
const (
	reasonMailerNotConfigured = "Email service not configured"
	reasonNoContactEmail      = "No contact email for sponsor"
)

// GenerateOutcome reports a generation pass for one sponsorship
type GenerateOutcome struct {
	SponsorshipID string               `json:"sponsorship_id"`
	Created       int                  `json:"created"`
	Skipped       int                  `json:"skipped"`
	Deliverables  []schema.Deliverable `json:"deliverables"`
}

// SponsorshipOutcome is one entry of an edition-wide generation batch:
// either a per-sponsorship result or a failure reason
type SponsorshipOutcome struct {
	SponsorshipID string `json:"sponsorship_id"`
	Created       int    `json:"created"`
	Skipped       int    `json:"skipped"`
	Error         string `json:"error,omitempty"`
}

// EditionOutcome reports an edition-wide generation batch. Failed
// sponsorships are listed next to successful ones; the batch never rolls
// back prior successes.
type EditionOutcome struct {
	BatchID      string               `json:"batch_id"`
	EditionID    string               `json:"edition_id"`
	TotalCreated int                  `json:"total_created"`
	TotalSkipped int                  `json:"total_skipped"`
	Outcomes     []SponsorshipOutcome `json:"outcomes"`
}

// Summary reports the deliverable position of one sponsorship
type Summary struct {
	SponsorshipID     string         `json:"sponsorship_id"`
	Total             int            `json:"total"`
	ByStatus          map[string]int `json:"by_status"`
	Overdue           int            `json:"overdue"`
	DueSoon           int            `json:"due_soon"`
	StaleBenefits     []string       `json:"stale_benefits,omitempty"`
	CompletionPercent int            `json:"completion_percent"`
}

// Config holds orchestration settings
type Config struct {
	// DueSoonDays is the window for the summary's due-soon count.
	// Zero or negative falls back to seven days.
	DueSoonDays int
}

// Service defines the deliverable orchestration operations
//
//go:generate mockgen -source=service.go -destination=../mocks/deliverable_service.go -package=mocks -mock_names=Service=MockDeliverableService
type Service interface {
	// GenerateForSponsorship creates the missing deliverables for one
	// sponsorship from its package's included benefits. A sponsorship
	// without a package or benefits yields a zero outcome, not an error.
	GenerateForSponsorship(ctx context.Context, sponsorshipID string, defaultDue *time.Time) (*GenerateOutcome, error)

	// GenerateForEdition runs generation for every confirmed sponsorship
	// of an edition, best-effort: one failure does not halt the batch.
	GenerateForEdition(ctx context.Context, editionID string, defaultDue *time.Time) (*EditionOutcome, error)

	// UpdateStatus transitions a deliverable's status through the status
	// machine. Reaching delivered triggers a sponsor notification when a
	// mailer is configured; no other status does.
	UpdateStatus(ctx context.Context, deliverableID string, status domain.DeliverableStatus, eventName string) (*schema.Deliverable, error)

	// MarkAsDelivered sets status to delivered and stamps deliveredAt in
	// the same update, optionally attaching notes, then notifies exactly
	// as UpdateStatus does.
	MarkAsDelivered(ctx context.Context, deliverableID, eventName, notes string) (*schema.Deliverable, error)

	// Summarize reports counts by status, the overdue and due-soon counts
	// at call time, stale benefits, and a completion percentage for one
	// sponsorship.
	Summarize(ctx context.Context, sponsorshipID string) (*Summary, error)

	// NotifyDelivery sends the "benefit delivered" notification for an
	// expanded deliverable, reporting a structured outcome instead of an
	// error: an unconfigured mailer or a sponsor without a contact email
	// are expected conditions.
	NotifyDelivery(ctx context.Context, d *schema.Deliverable, eventName string) mailer.Result
}

type service struct {
	store       store.Store
	clock       adapter.Clock
	mail        mailer.Mailer // nil when notification is not configured
	publisher   events.Publisher
	locks       *locker.Keyed
	dueSoonDays int
}

// NewService creates a new deliverable orchestration service. The mailer
// may be nil; delivery notifications then report a structured failure.
func NewService(cfg Config, st store.Store, clock adapter.Clock, mail mailer.Mailer, publisher events.Publisher) Service {
	dueSoonDays := cfg.DueSoonDays
	if dueSoonDays <= 0 {
		dueSoonDays = 7
	}
	return &service{
		store:       st,
		clock:       clock,
		mail:        mail,
		publisher:   publisher,
		locks:       locker.NewKeyed(),
		dueSoonDays: dueSoonDays,
	}
}

func (s *service) GenerateForSponsorship(ctx context.Context, sponsorshipID string, defaultDue *time.Time) (*GenerateOutcome, error) {
	outcome := &GenerateOutcome{
		SponsorshipID: sponsorshipID,
		Deliverables:  []schema.Deliverable{},
	}

	// Serialize per sponsorship so concurrent generation cannot both
	// observe the same missing benefit and create duplicates.
	err := s.locks.Do(sponsorshipID, func() error {
		sp, err := s.store.GetSponsorship(ctx, sponsorshipID, store.ExpandPackage)
		if err != nil {
			return err
		}

		pkg := sp.Expand.Package
		if pkg == nil && sp.PackageID != "" {
			pkg, err = s.store.GetPackage(ctx, sp.PackageID)
			if err != nil {
				return err
			}
		}
		if pkg == nil || len(pkg.Benefits) == 0 {
			// Nothing to do is not a failure
			return nil
		}

		existing, err := s.store.ListDeliverables(ctx, sponsorshipID)
		if err != nil {
			return err
		}

		result := BuildMissing(sponsorshipID, pkg.Benefits, existing, defaultDue)
		outcome.Skipped = result.Skipped

		for _, fields := range result.Deliverables {
			created, err := s.store.CreateDeliverable(ctx, fields)
			if err != nil {
				return fmt.Errorf("failed to create deliverable %q: %w", *fields.BenefitName, err)
			}
			outcome.Created++
			outcome.Deliverables = append(outcome.Deliverables, *created)

			s.publish(ctx, &domain.Event{
				EventType:     domain.EventTypeDeliverableCreated,
				EditionID:     sp.EditionID,
				SponsorshipID: sponsorshipID,
				DeliverableID: created.ID,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Deliverable generation finished",
		zap.String("sponsorship_id", sponsorshipID),
		zap.Int("created", outcome.Created),
		zap.Int("skipped", outcome.Skipped),
	)

	return outcome, nil
}

func (s *service) GenerateForEdition(ctx context.Context, editionID string, defaultDue *time.Time) (*EditionOutcome, error) {
	sponsorships, err := s.store.ListSponsorshipsByStatus(ctx, editionID, domain.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	batch := &EditionOutcome{
		BatchID:   uuid.NewString(),
		EditionID: editionID,
		Outcomes:  []SponsorshipOutcome{},
	}

	for _, sp := range sponsorships {
		outcome, err := s.GenerateForSponsorship(ctx, sp.ID, defaultDue)
		if err != nil {
			logger.WarnCtx(ctx, "Generation failed for sponsorship",
				zap.Error(err),
				zap.String("sponsorship_id", sp.ID),
				zap.String("batch_id", batch.BatchID),
			)
			batch.Outcomes = append(batch.Outcomes, SponsorshipOutcome{
				SponsorshipID: sp.ID,
				Error:         err.Error(),
			})
			continue
		}

		batch.TotalCreated += outcome.Created
		batch.TotalSkipped += outcome.Skipped
		batch.Outcomes = append(batch.Outcomes, SponsorshipOutcome{
			SponsorshipID: sp.ID,
			Created:       outcome.Created,
			Skipped:       outcome.Skipped,
		})
	}

	logger.InfoCtx(ctx, "Edition-wide deliverable generation finished",
		zap.String("edition_id", editionID),
		zap.String("batch_id", batch.BatchID),
		zap.Int("sponsorships", len(sponsorships)),
		zap.Int("total_created", batch.TotalCreated),
	)

	return batch, nil
}

func (s *service) UpdateStatus(ctx context.Context, deliverableID string, status domain.DeliverableStatus, eventName string) (*schema.Deliverable, error) {
	d, err := s.store.GetDeliverable(ctx, deliverableID)
	if err != nil {
		return nil, err
	}

	if !lifecycle.CanTransitionDeliverable(d.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, d.Status, status)
	}

	updated, err := s.store.UpdateDeliverable(ctx, deliverableID, schema.DeliverableFields{
		Status: &status,
	})
	if err != nil {
		return nil, err
	}

	if status == domain.DeliverableDelivered {
		s.notifyAfterDelivery(ctx, deliverableID, updated.SponsorshipID, eventName)
	}

	return updated, nil
}

func (s *service) MarkAsDelivered(ctx context.Context, deliverableID, eventName, notes string) (*schema.Deliverable, error) {
	d, err := s.store.GetDeliverable(ctx, deliverableID)
	if err != nil {
		return nil, err
	}

	if !lifecycle.CanTransitionDeliverable(d.Status, domain.DeliverableDelivered) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, d.Status, domain.DeliverableDelivered)
	}

	status := domain.DeliverableDelivered
	deliveredAt := schema.NewDateTime(s.clock.Now())
	fields := schema.DeliverableFields{
		Status:      &status,
		DeliveredAt: &deliveredAt,
	}
	if notes != "" {
		fields.Notes = &notes
	}

	updated, err := s.store.UpdateDeliverable(ctx, deliverableID, fields)
	if err != nil {
		return nil, err
	}

	s.notifyAfterDelivery(ctx, deliverableID, updated.SponsorshipID, eventName)

	return updated, nil
}

// notifyAfterDelivery fetches the expanded deliverable and sends the sponsor
// notification. Notification failures are logged, never returned: the status
// update has already been persisted.
func (s *service) notifyAfterDelivery(ctx context.Context, deliverableID, sponsorshipID string, eventName string) {
	s.publish(ctx, &domain.Event{
		EventType:     domain.EventTypeDelivered,
		SponsorshipID: sponsorshipID,
		DeliverableID: deliverableID,
	})

	if s.mail == nil {
		return
	}

	expanded, err := s.store.GetDeliverable(ctx, deliverableID, store.ExpandSponsorshipSponsor)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load deliverable for notification",
			zap.Error(err),
			zap.String("deliverable_id", deliverableID),
		)
		return
	}

	result := s.NotifyDelivery(ctx, expanded, eventName)
	if !result.Success {
		logger.WarnCtx(ctx, "Delivery notification not sent",
			zap.String("deliverable_id", deliverableID),
			zap.String("reason", result.Error),
		)
	}
}

func (s *service) NotifyDelivery(ctx context.Context, d *schema.Deliverable, eventName string) mailer.Result {
	if s.mail == nil {
		return mailer.Result{Success: false, Error: reasonMailerNotConfigured}
	}

	var sponsor *schema.Sponsor
	if d.Expand.Sponsorship != nil {
		sponsor = d.Expand.Sponsorship.Expand.Sponsor
	}
	if sponsor == nil || sponsor.ContactEmail == "" {
		return mailer.Result{Success: false, Error: reasonNoContactEmail}
	}

	msg := mailer.BenefitDelivered(sponsor.ContactEmail, sponsor.ContactName, d.BenefitName, eventName)
	return s.mail.Send(ctx, msg)
}

func (s *service) Summarize(ctx context.Context, sponsorshipID string) (*Summary, error) {
	sp, err := s.store.GetSponsorship(ctx, sponsorshipID, store.ExpandPackage)
	if err != nil {
		return nil, err
	}

	deliverables, err := s.store.ListDeliverables(ctx, sponsorshipID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	summary := &Summary{
		SponsorshipID: sponsorshipID,
		Total:         len(deliverables),
		ByStatus:      map[string]int{},
	}
	for _, status := range domain.AllDeliverableStatuses {
		summary.ByStatus[string(status)] = 0
	}

	delivered := 0
	for _, d := range deliverables {
		summary.ByStatus[string(d.Status)]++
		if d.Status == domain.DeliverableDelivered {
			delivered++
		}
		if lifecycle.IsOverdue(d.Status, d.DueDate.TimePtr(), now) {
			summary.Overdue++
		}
		if lifecycle.IsDueSoon(d.Status, d.DueDate.TimePtr(), now, s.dueSoonDays) {
			summary.DueSoon++
		}
	}

	if sp.Expand.Package != nil {
		summary.StaleBenefits = StaleBenefits(sp.Expand.Package.Benefits, deliverables)
	}

	if summary.Total > 0 {
		summary.CompletionPercent = int(math.Round(float64(delivered) / float64(summary.Total) * 100))
	}

	return summary, nil
}

// publish sends a domain event, best-effort
func (s *service) publish(ctx context.Context, event *domain.Event) {
	if s.publisher == nil {
		return
	}
	event.EventID = ulid.MustNewDefault(s.clock.Now()).String()
	event.Timestamp = s.clock.Now()
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish domain event",
			zap.Error(err),
			zap.String("event_type", string(event.EventType)),
		)
	}
}
