package unit_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/service/workflow"
)

func TestEvaluate_TransitionTable(t *testing.T) {
	table := workflow.DefaultTransitions()
	admin := workflow.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	submitter := workflow.Actor{ID: uuid.New(), Role: domain.RoleUser, IsSubmitter: true}

	tests := []struct {
		name    string
		current domain.Status
		target  domain.Status
		actor   workflow.Actor
		allowed bool
		reason  workflow.DenialReason
	}{
		{"submit draft", domain.StatusDraft, domain.StatusPending, submitter, true, ""},
		{"approve pending", domain.StatusPending, domain.StatusApproved, admin, true, ""},
		{"reject pending", domain.StatusPending, domain.StatusRejected, admin, true, ""},
		{"resubmit rejected", domain.StatusRejected, domain.StatusPending, submitter, true, ""},
		{"approve draft", domain.StatusDraft, domain.StatusApproved, admin, false, workflow.ReasonInvalidTransition},
		{"reject draft", domain.StatusDraft, domain.StatusRejected, admin, false, workflow.ReasonInvalidTransition},
		{"approve approved", domain.StatusApproved, domain.StatusApproved, admin, false, workflow.ReasonInvalidTransition},
		{"reopen approved", domain.StatusApproved, domain.StatusPending, submitter, false, workflow.ReasonInvalidTransition},
		{"reject approved", domain.StatusApproved, domain.StatusRejected, admin, false, workflow.ReasonInvalidTransition},
		{"draft to draft", domain.StatusDraft, domain.StatusDraft, submitter, false, workflow.ReasonInvalidTransition},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decision := workflow.Evaluate(table, tc.current, tc.target, tc.actor)
			assert.Equal(t, tc.allowed, decision.Allowed)
			assert.Equal(t, tc.reason, decision.Reason)
		})
	}
}

func TestEvaluate_RoleRequirements(t *testing.T) {
	table := workflow.DefaultTransitions()

	t.Run("plain user cannot approve", func(t *testing.T) {
		actor := workflow.Actor{ID: uuid.New(), Role: domain.RoleUser, IsSubmitter: true}
		decision := workflow.Evaluate(table, domain.StatusPending, domain.StatusApproved, actor)
		assert.False(t, decision.Allowed)
		assert.Equal(t, workflow.ReasonInsufficientRole, decision.Reason)
	})

	t.Run("plain user cannot reject", func(t *testing.T) {
		actor := workflow.Actor{ID: uuid.New(), Role: domain.RoleUser}
		decision := workflow.Evaluate(table, domain.StatusPending, domain.StatusRejected, actor)
		assert.False(t, decision.Allowed)
		assert.Equal(t, workflow.ReasonInsufficientRole, decision.Reason)
	})

	t.Run("superadmin can approve", func(t *testing.T) {
		actor := workflow.Actor{ID: uuid.New(), Role: domain.RoleSuperAdmin}
		decision := workflow.Evaluate(table, domain.StatusPending, domain.StatusApproved, actor)
		assert.True(t, decision.Allowed)
	})

	t.Run("admin who is not the submitter cannot resubmit", func(t *testing.T) {
		actor := workflow.Actor{ID: uuid.New(), Role: domain.RoleAdmin, IsSubmitter: false}
		decision := workflow.Evaluate(table, domain.StatusRejected, domain.StatusPending, actor)
		assert.False(t, decision.Allowed)
		assert.Equal(t, workflow.ReasonInsufficientRole, decision.Reason)
	})

	t.Run("admin submitter can resubmit own", func(t *testing.T) {
		actor := workflow.Actor{ID: uuid.New(), Role: domain.RoleAdmin, IsSubmitter: true}
		decision := workflow.Evaluate(table, domain.StatusRejected, domain.StatusPending, actor)
		assert.True(t, decision.Allowed)
	})

	t.Run("non-owner user cannot submit", func(t *testing.T) {
		actor := workflow.Actor{ID: uuid.New(), Role: domain.RoleUser, IsSubmitter: false}
		decision := workflow.Evaluate(table, domain.StatusDraft, domain.StatusPending, actor)
		assert.False(t, decision.Allowed)
		assert.Equal(t, workflow.ReasonInsufficientRole, decision.Reason)
	})

	t.Run("table check wins over role check", func(t *testing.T) {
		// A plain user reopening an approved record is refused for the
		// transition, not the role.
		actor := workflow.Actor{ID: uuid.New(), Role: domain.RoleUser}
		decision := workflow.Evaluate(table, domain.StatusApproved, domain.StatusPending, actor)
		assert.Equal(t, workflow.ReasonInvalidTransition, decision.Reason)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, domain.StatusApproved.IsTerminal())
	assert.False(t, domain.StatusDraft.IsTerminal())
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.False(t, domain.StatusRejected.IsTerminal())
}
