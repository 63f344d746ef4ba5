package unit_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/service/audit"
	"kabataan-backend/internal/service/proposal"
	"kabataan-backend/internal/service/workflow"
	"kabataan-backend/tests/mocks"
)

func newProposalService(proposalRepo *mocks.ProposalRepository, categoryRepo *mocks.ProposalCategoryRepository, auditRepo *mocks.AuditLogRepository, notifSvc *mocks.NotificationService) proposal.Service {
	auditSvc := audit.NewService(auditRepo, zerolog.Nop())
	return proposal.NewService(proposalRepo, categoryRepo, auditSvc, notifSvc)
}

func TestProposalService_Create(t *testing.T) {
	ctx := context.Background()
	submitterID := uuid.New()
	categoryID := uuid.New()

	input := domain.ProposalInput{
		CategoryID:  categoryID,
		Title:       "Coastal cleanup drive",
		Description: "Quarterly cleanup along the municipal shoreline.",
	}

	t.Run("Success", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		categoryRepo := new(mocks.ProposalCategoryRepository)
		svc := newProposalService(proposalRepo, categoryRepo, new(mocks.AuditLogRepository), new(mocks.NotificationService))

		categoryRepo.On("GetByID", ctx, categoryID).Return(&domain.ProposalCategory{ID: categoryID, Name: "Environment"}, nil).Once()
		proposalRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Proposal) bool {
			return p.Status == domain.StatusDraft && p.SubmittedBy == submitterID && p.Title == input.Title
		})).Return(nil).Once()

		created, err := svc.Create(ctx, submitterID, input)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusDraft, created.Status)
		proposalRepo.AssertExpectations(t)
	})

	t.Run("Unknown category", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		categoryRepo := new(mocks.ProposalCategoryRepository)
		svc := newProposalService(proposalRepo, categoryRepo, new(mocks.AuditLogRepository), new(mocks.NotificationService))

		categoryRepo.On("GetByID", ctx, categoryID).Return(nil, nil).Once()

		created, err := svc.Create(ctx, submitterID, input)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, proposal.ErrCategoryNotFound)
		proposalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProposalService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	submitterID := uuid.New()
	adminID := uuid.New()
	submitter := &domain.User{ID: submitterID, Role: "user", FullName: "Maria Santos"}
	admin := &domain.User{ID: adminID, Role: "admin"}

	t.Run("submit then approve", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		auditRepo := new(mocks.AuditLogRepository)
		notifSvc := new(mocks.NotificationService)
		svc := newProposalService(proposalRepo, new(mocks.ProposalCategoryRepository), auditRepo, notifSvc)

		proposalID := uuid.New()

		draft := &domain.Proposal{ID: proposalID, Status: domain.StatusDraft, SubmittedBy: submitterID, Title: "Sports fest"}
		proposalRepo.On("GetByID", ctx, proposalID).Return(draft, nil).Once()
		proposalRepo.On("UpdateStatus", ctx, proposalID, domain.StatusPending, (*uuid.UUID)(nil), (*string)(nil)).Return(nil).Once()
		auditRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "SUBMIT" && log.EntityType == "PROPOSAL"
		})).Return(nil).Once()
		notifSvc.On("NotifyProposalSubmitted", ctx, mock.Anything, "Maria Santos").Once()

		submitted, err := svc.Submit(ctx, submitter, proposalID, audit.Meta{})
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, submitted.Status)

		pending := &domain.Proposal{ID: proposalID, Status: domain.StatusPending, SubmittedBy: submitterID, Title: "Sports fest"}
		proposalRepo.On("GetByID", ctx, proposalID).Return(pending, nil).Once()
		proposalRepo.On("UpdateStatus", ctx, proposalID, domain.StatusApproved, &adminID, (*string)(nil)).Return(nil).Once()
		auditRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "APPROVE" && log.UserID == adminID
		})).Return(nil).Once()
		notifSvc.On("NotifyProposalReviewed", ctx, mock.Anything, true, (*string)(nil)).Once()

		approved, err := svc.Approve(ctx, admin, proposalID, audit.Meta{})
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, approved.Status)
		assert.Equal(t, &adminID, approved.ApprovedBy)

		proposalRepo.AssertExpectations(t)
		notifSvc.AssertExpectations(t)
	})

	t.Run("approve is terminal", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		auditRepo := new(mocks.AuditLogRepository)
		notifSvc := new(mocks.NotificationService)
		svc := newProposalService(proposalRepo, new(mocks.ProposalCategoryRepository), auditRepo, notifSvc)

		proposalID := uuid.New()
		approved := &domain.Proposal{ID: proposalID, Status: domain.StatusApproved, SubmittedBy: submitterID}
		proposalRepo.On("GetByID", ctx, proposalID).Return(approved, nil).Once()

		result, err := svc.Approve(ctx, admin, proposalID, audit.Meta{})

		assert.Nil(t, result)
		var transitionErr *proposal.TransitionError
		assert.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, workflow.ReasonInvalidTransition, transitionErr.Reason)
		proposalRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		notifSvc.AssertNotCalled(t, "NotifyProposalReviewed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("reject stores reason and resubmission clears it", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		auditRepo := new(mocks.AuditLogRepository)
		notifSvc := new(mocks.NotificationService)
		svc := newProposalService(proposalRepo, new(mocks.ProposalCategoryRepository), auditRepo, notifSvc)

		proposalID := uuid.New()
		reason := "budget exceeds the quarterly cap"

		pending := &domain.Proposal{ID: proposalID, Status: domain.StatusPending, SubmittedBy: submitterID}
		proposalRepo.On("GetByID", ctx, proposalID).Return(pending, nil).Once()
		proposalRepo.On("UpdateStatus", ctx, proposalID, domain.StatusRejected, (*uuid.UUID)(nil), &reason).Return(nil).Once()
		auditRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "REJECT"
		})).Return(nil).Once()
		notifSvc.On("NotifyProposalReviewed", ctx, mock.Anything, false, &reason).Once()

		rejected, err := svc.Reject(ctx, admin, proposalID, &reason, audit.Meta{})
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, rejected.Status)
		assert.Equal(t, &reason, rejected.RejectionReason)

		stored := &domain.Proposal{ID: proposalID, Status: domain.StatusRejected, SubmittedBy: submitterID, RejectionReason: &reason}
		proposalRepo.On("GetByID", ctx, proposalID).Return(stored, nil).Once()
		proposalRepo.On("UpdateStatus", ctx, proposalID, domain.StatusPending, (*uuid.UUID)(nil), (*string)(nil)).Return(nil).Once()
		auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		notifSvc.On("NotifyProposalSubmitted", ctx, mock.Anything, mock.Anything).Once()

		resubmitted, err := svc.Submit(ctx, submitter, proposalID, audit.Meta{})
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, resubmitted.Status)
		assert.Nil(t, resubmitted.RejectionReason)
	})

	t.Run("admin cannot resubmit someone else's proposal", func(t *testing.T) {
		proposalRepo := new(mocks.ProposalRepository)
		svc := newProposalService(proposalRepo, new(mocks.ProposalCategoryRepository), new(mocks.AuditLogRepository), new(mocks.NotificationService))

		proposalID := uuid.New()
		rejected := &domain.Proposal{ID: proposalID, Status: domain.StatusRejected, SubmittedBy: submitterID}
		proposalRepo.On("GetByID", ctx, proposalID).Return(rejected, nil).Once()

		result, err := svc.Submit(ctx, admin, proposalID, audit.Meta{})

		assert.Nil(t, result)
		var transitionErr *proposal.TransitionError
		assert.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, workflow.ReasonInsufficientRole, transitionErr.Reason)
	})
}
