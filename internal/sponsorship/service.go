// Package sponsorship owns writes to the sponsorship pipeline status. Every
// status change goes through the Transition gate, which consults the
// transition table and refuses invalid writes, so no call site can persist
// an off-table status.
package sponsorship

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/eventfold/sponsorpipe/internal/adapter"
	"github.com/eventfold/sponsorpipe/internal/domain"
	"github.com/eventfold/sponsorpipe/internal/events"
	"github.com/eventfold/sponsorpipe/internal/lifecycle"
	"github.com/eventfold/sponsorpipe/internal/logger"
	"github.com/eventfold/sponsorpipe/internal/store"
	"github.com/eventfold/sponsorpipe/internal/store/schema"
)

// Service defines the sponsorship pipeline operations
//
//go:generate mockgen -source=service.go -destination=../mocks/sponsorship_service.go -package=mocks -mock_names=Service=MockSponsorshipService
type Service interface {
	// Transition moves a sponsorship to a new status. Returns
	// domain.ErrInvalidTransition when the transition table forbids the
	// move. Reaching confirmed stamps confirmedAt; no other status change
	// touches timestamps.
	Transition(ctx context.Context, id string, to domain.SponsorStatus) (*schema.Sponsorship, error)

	// MarkPaid stamps paidAt on a confirmed sponsorship, optionally
	// recording a payment reference. Refuses unconfirmed or already-paid
	// sponsorships, which enforces that payment never precedes
	// confirmation.
	MarkPaid(ctx context.Context, id string, paymentReference string) (*schema.Sponsorship, error)
}

type service struct {
	store     store.Store
	clock     adapter.Clock
	publisher events.Publisher
}

// NewService creates a new sponsorship service
func NewService(st store.Store, clock adapter.Clock, publisher events.Publisher) Service {
	return &service{
		store:     st,
		clock:     clock,
		publisher: publisher,
	}
}

func (s *service) Transition(ctx context.Context, id string, to domain.SponsorStatus) (*schema.Sponsorship, error) {
	if !domain.IsValidSponsorStatus(to) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, to)
	}

	sp, err := s.store.GetSponsorship(ctx, id)
	if err != nil {
		return nil, err
	}

	if !lifecycle.CanTransition(sp.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, sp.Status, to)
	}

	fields := schema.SponsorshipFields{Status: &to}
	if to == domain.StatusConfirmed && !sp.ConfirmedAt.IsSet() {
		confirmedAt := schema.NewDateTime(s.clock.Now())
		fields.ConfirmedAt = &confirmedAt
	}

	updated, err := s.store.UpdateSponsorship(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Sponsorship status changed",
		zap.String("sponsorship_id", id),
		zap.String("from", string(sp.Status)),
		zap.String("to", string(to)),
	)

	s.publish(ctx, &domain.Event{
		EventType:     domain.EventTypeStatusChanged,
		EditionID:     sp.EditionID,
		SponsorshipID: id,
		FromStatus:    string(sp.Status),
		ToStatus:      string(to),
	})

	return updated, nil
}

func (s *service) MarkPaid(ctx context.Context, id string, paymentReference string) (*schema.Sponsorship, error) {
	sp, err := s.store.GetSponsorship(ctx, id)
	if err != nil {
		return nil, err
	}

	if sp.Status != domain.StatusConfirmed {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrNotConfirmed, sp.Status)
	}
	if sp.IsPaid() {
		return nil, domain.ErrAlreadyPaid
	}

	paidAt := schema.NewDateTime(s.clock.Now())
	fields := schema.SponsorshipFields{PaidAt: &paidAt}
	if paymentReference != "" {
		fields.PaymentReference = &paymentReference
	}

	updated, err := s.store.UpdateSponsorship(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Sponsorship marked paid",
		zap.String("sponsorship_id", id),
		zap.Int64("amount", sp.Amount),
	)

	return updated, nil
}

// publish sends a domain event, logging and swallowing broker failures:
// event delivery is best-effort and never fails the write that caused it
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
