package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventfold/sponsorpipe/internal/domain"
	"github.com/eventfold/sponsorpipe/internal/lifecycle"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.SponsorStatus
		to      domain.SponsorStatus
		allowed bool
	}{
		{
			name:    "prospect to contacted",
			from:    domain.StatusProspect,
			to:      domain.StatusContacted,
			allowed: true,
		},
		{
			name:    "prospect directly to confirmed is rejected",
			from:    domain.StatusProspect,
			to:      domain.StatusConfirmed,
			allowed: false,
		},
		{
			name:    "contacted to negotiating",
			from:    domain.StatusContacted,
			to:      domain.StatusNegotiating,
			allowed: true,
		},
		{
			name:    "negotiating to confirmed",
			from:    domain.StatusNegotiating,
			to:      domain.StatusConfirmed,
			allowed: true,
		},
		{
			name:    "confirmed to refunded",
			from:    domain.StatusConfirmed,
			to:      domain.StatusRefunded,
			allowed: true,
		},
		{
			name:    "confirmed back to negotiating is rejected",
			from:    domain.StatusConfirmed,
			to:      domain.StatusNegotiating,
			allowed: false,
		},
		{
			name:    "declined can be reopened as prospect",
			from:    domain.StatusDeclined,
			to:      domain.StatusProspect,
			allowed: true,
		},
		{
			name:    "declined can be reopened as contacted",
			from:    domain.StatusDeclined,
			to:      domain.StatusContacted,
			allowed: true,
		},
		{
			name:    "cancelled can only restart as prospect",
			from:    domain.StatusCancelled,
			to:      domain.StatusContacted,
			allowed: false,
		},
		{
			name:    "refunded is terminal",
			from:    domain.StatusRefunded,
			to:      domain.StatusProspect,
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, lifecycle.CanTransition(tt.from, tt.to))
		})
	}
}

func TestCanTransition_SelfTransitionsRejected(t *testing.T) {
	for _, s := range domain.AllSponsorStatuses {
		assert.False(t, lifecycle.CanTransition(s, s), "self transition for %s", s)
	}
}

func TestCanTransition_OffTableAlwaysFalse(t *testing.T) {
	// Cross-check every pair against ValidTransitions: anything the table
	// does not list must be rejected.
	for _, from := range domain.AllSponsorStatuses {
		allowed := map[domain.SponsorStatus]bool{}
		for _, to := range lifecycle.ValidTransitions(from) {
			allowed[to] = true
		}
		for _, to := range domain.AllSponsorStatuses {
			assert.Equal(t, allowed[to] && from != to, lifecycle.CanTransition(from, to),
				"%s -> %s", from, to)
		}
	}
}

func TestValidTransitions(t *testing.T) {
	assert.ElementsMatch(t,
		[]domain.SponsorStatus{domain.StatusCancelled, domain.StatusRefunded},
		lifecycle.ValidTransitions(domain.StatusConfirmed))

	assert.Empty(t, lifecycle.ValidTransitions(domain.StatusRefunded))

	assert.ElementsMatch(t,
		[]domain.SponsorStatus{domain.StatusProspect},
		lifecycle.ValidTransitions(domain.StatusCancelled))
}

func TestStatusClassification(t *testing.T) {
	active := []domain.SponsorStatus{
		domain.StatusProspect,
		domain.StatusContacted,
		domain.StatusNegotiating,
		domain.StatusConfirmed,
	}
	terminal := []domain.SponsorStatus{
		domain.StatusDeclined,
		domain.StatusCancelled,
		domain.StatusRefunded,
	}

	for _, s := range active {
		assert.True(t, lifecycle.IsActive(s), "%s should be active", s)
		assert.True(t, lifecycle.IsPipeline(s), "%s should be pipeline", s)
		assert.False(t, lifecycle.IsTerminal(s), "%s should not be terminal", s)
	}
	for _, s := range terminal {
		assert.False(t, lifecycle.IsActive(s), "%s should not be active", s)
		assert.False(t, lifecycle.IsPipeline(s), "%s should not be pipeline", s)
		assert.True(t, lifecycle.IsTerminal(s), "%s should be terminal", s)
	}
}
