package lifecycle

import (
	"time"

	"github.com/eventfold/sponsorpipe/internal/domain"
)

// CanTransitionDeliverable reports whether a deliverable may move from one
// status to another. The graph is fully connected minus self-loops: a
// mistaken "delivered" mark can be corrected back to any earlier state.
func CanTransitionDeliverable(from, to domain.DeliverableStatus) bool {
	if from == to {
		return false
	}
	return domain.IsValidDeliverableStatus(from) && domain.IsValidDeliverableStatus(to)
}

// ValidDeliverableTransitions returns the statuses reachable from the given
// deliverable status
func ValidDeliverableTransitions(from domain.DeliverableStatus) []domain.DeliverableStatus {
	if !domain.IsValidDeliverableStatus(from) {
		return nil
	}
	out := make([]domain.DeliverableStatus, 0, 2)
	for _, s := range domain.AllDeliverableStatuses {
		if s != from {
			out = append(out, s)
		}
	}
	return out
}

// IsOverdue reports whether a deliverable with the given status and due date
// is past due at the given time. Deliverables without a due date are never
// overdue, nor are delivered ones.
func IsOverdue(status domain.DeliverableStatus, dueDate *time.Time, now time.Time) bool {
	if dueDate == nil || status == domain.DeliverableDelivered {
		return false
	}
	return now.After(*dueDate)
}

// IsDueSoon reports whether a deliverable is undelivered with a due date
// strictly in the future that falls within the given day threshold of now
func IsDueSoon(status domain.DeliverableStatus, dueDate *time.Time, now time.Time, days int) bool {
	if dueDate == nil || status == domain.DeliverableDelivered {
		return false
	}
	if days <= 0 {
		days = domain.DEFAULT_DUE_SOON_DAYS
	}
	if !dueDate.After(now) {
		return false
	}
	return !dueDate.After(now.AddDate(0, 0, days))
}
