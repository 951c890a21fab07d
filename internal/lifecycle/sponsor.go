// Package lifecycle holds the pure status machines for sponsorships and
// deliverables. Nothing here performs I/O; callers persist the results.
package lifecycle

import "github.com/eventfold/sponsorpipe/internal/domain"

// sponsorTransitions is the fixed transition table for sponsorship statuses.
// refunded is terminal.
var sponsorTransitions = map[domain.SponsorStatus][]domain.SponsorStatus{
	domain.StatusProspect:    {domain.StatusContacted, domain.StatusDeclined, domain.StatusCancelled},
	domain.StatusContacted:   {domain.StatusNegotiating, domain.StatusDeclined, domain.StatusCancelled},
	domain.StatusNegotiating: {domain.StatusConfirmed, domain.StatusDeclined, domain.StatusCancelled},
	domain.StatusConfirmed:   {domain.StatusCancelled, domain.StatusRefunded},
	domain.StatusDeclined:    {domain.StatusProspect, domain.StatusContacted},
	domain.StatusCancelled:   {domain.StatusProspect},
	domain.StatusRefunded:    {},
}

// pipelineStatuses is the subset of statuses representing an open deal,
// used for funnel reporting
var pipelineStatuses = map[domain.SponsorStatus]bool{
	domain.StatusProspect:    true,
	domain.StatusContacted:   true,
	domain.StatusNegotiating: true,
	domain.StatusConfirmed:   true,
}

// CanTransition reports whether a sponsorship may move from one status to
// another. Self-transitions are always rejected.
func CanTransition(from, to domain.SponsorStatus) bool {
	if from == to {
		return false
	}
	for _, allowed := range sponsorTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidTransitions returns the statuses reachable from the given status.
// The result is empty for terminal statuses such as refunded.
func ValidTransitions(from domain.SponsorStatus) []domain.SponsorStatus {
	targets := sponsorTransitions[from]
	out := make([]domain.SponsorStatus, len(targets))
	copy(out, targets)
	return out
}

// IsPipeline reports whether a status counts toward the open-deal funnel
func IsPipeline(s domain.SponsorStatus) bool {
	return pipelineStatuses[s]
}

// IsActive reports whether a status represents an unresolved relationship
func IsActive(s domain.SponsorStatus) bool {
	return pipelineStatuses[s]
}

// IsTerminal reports whether a status represents a resolved deal
func IsTerminal(s domain.SponsorStatus) bool {
	switch s {
	case domain.StatusDeclined, domain.StatusCancelled, domain.StatusRefunded:
		return true
	}
	return false
}
