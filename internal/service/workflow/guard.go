// Package workflow decides whether a status change on a youth profile or
// proposal is legal for a given actor. It is purely computational: callers
// apply the mutation and fire audit/notification only after an allowed
// decision.
package workflow

import (
	"github.com/google/uuid"

	"kabataan-backend/internal/domain"
)

// DenialReason classifies a refused transition.
type DenialReason string

const (
	ReasonInvalidTransition DenialReason = "invalid_transition"
	ReasonInsufficientRole  DenialReason = "insufficient_role"
)

// Decision is the guard's verdict. Reason is empty when Allowed.
type Decision struct {
	Allowed bool
	Reason  DenialReason
}

// Actor is the user attempting the transition. IsSubmitter must be true
// when the actor is the original submitter/owner of the entity.
type Actor struct {
	ID          uuid.UUID
	Role        domain.UserRole
	IsSubmitter bool
}

// TransitionTable maps each status to the set of statuses reachable from it.
type TransitionTable map[domain.Status][]domain.Status

// DefaultTransitions is shared by youth profiles and proposals:
// draft -> pending, pending -> approved|rejected, approved terminal,
// rejected -> pending (resubmission by the submitter only).
func DefaultTransitions() TransitionTable {
	return TransitionTable{
		domain.StatusDraft:    {domain.StatusPending},
		domain.StatusPending:  {domain.StatusApproved, domain.StatusRejected},
		domain.StatusApproved: {},
		domain.StatusRejected: {domain.StatusPending},
	}
}

// Evaluate decides whether requested is reachable from current and whether
// the actor may perform that particular move. Table membership is checked
// first: an unreachable pair is invalid_transition regardless of role.
func Evaluate(table TransitionTable, current, requested domain.Status, actor Actor) Decision {
	if !contains(table[current], requested) {
		return Decision{Allowed: false, Reason: ReasonInvalidTransition}
	}

	switch {
	case current == domain.StatusPending:
		// Approve/reject is a review action.
		if !hasCapability(actor.Role, CapReview) {
			return Decision{Allowed: false, Reason: ReasonInsufficientRole}
		}
	case requested == domain.StatusPending:
		// Submission (draft -> pending) and resubmission (rejected -> pending)
		// belong to the submitter, even when the actor is an admin.
		if !actor.IsSubmitter || !hasCapability(actor.Role, CapSubmitOwn) {
			return Decision{Allowed: false, Reason: ReasonInsufficientRole}
		}
	}

	return Decision{Allowed: true}
}

func contains(statuses []domain.Status, s domain.Status) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}
