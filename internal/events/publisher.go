// Package events publishes domain events to the message broker. Publishing
// is optional: deployments without a broker use the no-op publisher and the
// pipeline behaves identically.
package events

import (
	"context"

	"github.com/eventfold/sponsorpipe/internal/domain"
)

// Publisher defines the interface for publishing domain events
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a domain event to the message broker
	PublishEvent(ctx context.Context, event *domain.Event) error
	// Close closes the connection
	Close()
}

// noopPublisher drops every event
type noopPublisher struct{}

// NewNoopPublisher creates a publisher that discards events, for
// deployments without a broker
func NewNoopPublisher() Publisher {
	return &noopPublisher{}
}

func (n *noopPublisher) PublishEvent(_ context.Context, _ *domain.Event) error {
	return nil
}

func (n *noopPublisher) Close() {}
