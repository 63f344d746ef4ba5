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
	"kabataan-backend/internal/service/workflow"
	"kabataan-backend/internal/service/youthprofile"
	"kabataan-backend/tests/mocks"
)

func newProfileService(profileRepo *mocks.YouthProfileRepository, auditRepo *mocks.AuditLogRepository, notifSvc *mocks.NotificationService) youthprofile.Service {
	auditSvc := audit.NewService(auditRepo, zerolog.Nop())
	return youthprofile.NewService(profileRepo, auditSvc, notifSvc)
}

func validProfileInput() domain.YouthProfileInput {
	return domain.YouthProfileInput{
		FullName:            "Juan Dela Cruz",
		Birthdate:           "2003-04-15",
		Gender:              "male",
		CivilStatus:         "single",
		Barangay:            "Poblacion",
		EducationAttainment: "college",
		WorkStatus:          "student",
	}
}

func TestYouthProfileService_Create(t *testing.T) {
	profileRepo := new(mocks.YouthProfileRepository)
	auditRepo := new(mocks.AuditLogRepository)
	notifSvc := new(mocks.NotificationService)
	svc := newProfileService(profileRepo, auditRepo, notifSvc)
	ctx := context.Background()
	ownerID := uuid.New()

	profileRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.YouthProfile) bool {
		return p.Status == domain.StatusDraft &&
			p.Source == domain.ProfileSourceRegistration &&
			p.UserID != nil && *p.UserID == ownerID &&
			p.FullName == "Juan Dela Cruz"
	})).Return(nil).Once()

	profile, err := svc.Create(ctx, ownerID, validProfileInput())

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, profile.Status)
	profileRepo.AssertExpectations(t)
}

func TestYouthProfileService_Submit(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	owner := &domain.User{ID: ownerID, Role: "user", FullName: "Juan Dela Cruz"}

	t.Run("owner submits draft", func(t *testing.T) {
		profileRepo := new(mocks.YouthProfileRepository)
		auditRepo := new(mocks.AuditLogRepository)
		notifSvc := new(mocks.NotificationService)
		svc := newProfileService(profileRepo, auditRepo, notifSvc)

		profileID := uuid.New()
		stored := &domain.YouthProfile{ID: profileID, UserID: &ownerID, Status: domain.StatusDraft}

		profileRepo.On("GetByID", ctx, profileID).Return(stored, nil).Once()
		profileRepo.On("UpdateStatus", ctx, profileID, domain.StatusPending, (*uuid.UUID)(nil), (*string)(nil)).Return(nil).Once()
		auditRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "SUBMIT" && log.EntityType == "YOUTH_PROFILE" && log.EntityID == profileID
		})).Return(nil).Once()
		notifSvc.On("NotifyProfileSubmitted", ctx, mock.Anything, "Juan Dela Cruz").Once()

		profile, err := svc.Submit(ctx, owner, profileID, audit.Meta{})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, profile.Status)
		profileRepo.AssertExpectations(t)
		auditRepo.AssertExpectations(t)
		notifSvc.AssertExpectations(t)
	})

	t.Run("non-owner cannot submit", func(t *testing.T) {
		profileRepo := new(mocks.YouthProfileRepository)
		auditRepo := new(mocks.AuditLogRepository)
		notifSvc := new(mocks.NotificationService)
		svc := newProfileService(profileRepo, auditRepo, notifSvc)

		profileID := uuid.New()
		stored := &domain.YouthProfile{ID: profileID, UserID: &ownerID, Status: domain.StatusDraft}
		stranger := &domain.User{ID: uuid.New(), Role: "admin"}

		profileRepo.On("GetByID", ctx, profileID).Return(stored, nil).Once()

		profile, err := svc.Submit(ctx, stranger, profileID, audit.Meta{})

		assert.Nil(t, profile)
		var transitionErr *youthprofile.TransitionError
		assert.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, workflow.ReasonInsufficientRole, transitionErr.Reason)
		profileRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestYouthProfileService_Review(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	adminID := uuid.New()
	admin := &domain.User{ID: adminID, Role: "admin"}

	t.Run("approve pending", func(t *testing.T) {
		profileRepo := new(mocks.YouthProfileRepository)
		auditRepo := new(mocks.AuditLogRepository)
		notifSvc := new(mocks.NotificationService)
		svc := newProfileService(profileRepo, auditRepo, notifSvc)

		profileID := uuid.New()
		stored := &domain.YouthProfile{ID: profileID, UserID: &ownerID, Status: domain.StatusPending}

		profileRepo.On("GetByID", ctx, profileID).Return(stored, nil).Once()
		profileRepo.On("UpdateStatus", ctx, profileID, domain.StatusApproved, &adminID, (*string)(nil)).Return(nil).Once()
		auditRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "APPROVE" && log.UserID == adminID
		})).Return(nil).Once()
		notifSvc.On("NotifyProfileReviewed", ctx, mock.Anything, true, (*string)(nil)).Once()

		profile, err := svc.Approve(ctx, admin, profileID, domain.ReviewInput{}, audit.Meta{})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, profile.Status)
		assert.Equal(t, &adminID, profile.ReviewedBy)
		notifSvc.AssertExpectations(t)
	})

	t.Run("reject pending with note", func(t *testing.T) {
		profileRepo := new(mocks.YouthProfileRepository)
		auditRepo := new(mocks.AuditLogRepository)
		notifSvc := new(mocks.NotificationService)
		svc := newProfileService(profileRepo, auditRepo, notifSvc)

		profileID := uuid.New()
		note := "incomplete address"
		stored := &domain.YouthProfile{ID: profileID, UserID: &ownerID, Status: domain.StatusPending}

		profileRepo.On("GetByID", ctx, profileID).Return(stored, nil).Once()
		profileRepo.On("UpdateStatus", ctx, profileID, domain.StatusRejected, &adminID, &note).Return(nil).Once()
		auditRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "REJECT"
		})).Return(nil).Once()
		notifSvc.On("NotifyProfileReviewed", ctx, mock.Anything, false, &note).Once()

		profile, err := svc.Reject(ctx, admin, profileID, domain.ReviewInput{Note: &note}, audit.Meta{})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, profile.Status)
		assert.Equal(t, &note, profile.ReviewNote)
	})

	t.Run("second approve is refused with no side effects", func(t *testing.T) {
		profileRepo := new(mocks.YouthProfileRepository)
		auditRepo := new(mocks.AuditLogRepository)
		notifSvc := new(mocks.NotificationService)
		svc := newProfileService(profileRepo, auditRepo, notifSvc)

		profileID := uuid.New()
		stored := &domain.YouthProfile{ID: profileID, UserID: &ownerID, Status: domain.StatusApproved}

		profileRepo.On("GetByID", ctx, profileID).Return(stored, nil).Once()

		profile, err := svc.Approve(ctx, admin, profileID, domain.ReviewInput{}, audit.Meta{})

		assert.Nil(t, profile)
		var transitionErr *youthprofile.TransitionError
		assert.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, workflow.ReasonInvalidTransition, transitionErr.Reason)
		profileRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		notifSvc.AssertNotCalled(t, "NotifyProfileReviewed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestYouthProfileService_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	owner := &domain.User{ID: ownerID, Role: "user"}

	t.Run("owner edits rejected record", func(t *testing.T) {
		profileRepo := new(mocks.YouthProfileRepository)
		svc := newProfileService(profileRepo, new(mocks.AuditLogRepository), new(mocks.NotificationService))

		profileID := uuid.New()
		stored := &domain.YouthProfile{ID: profileID, UserID: &ownerID, Status: domain.StatusRejected}

		profileRepo.On("GetByID", ctx, profileID).Return(stored, nil).Once()
		profileRepo.On("Update", ctx, mock.Anything).Return(nil).Once()

		profile, err := svc.Update(ctx, owner, profileID, validProfileInput())

		assert.NoError(t, err)
		assert.Equal(t, "Juan Dela Cruz", profile.FullName)
	})

	t.Run("pending record is not editable", func(t *testing.T) {
		profileRepo := new(mocks.YouthProfileRepository)
		svc := newProfileService(profileRepo, new(mocks.AuditLogRepository), new(mocks.NotificationService))

		profileID := uuid.New()
		stored := &domain.YouthProfile{ID: profileID, UserID: &ownerID, Status: domain.StatusPending}

		profileRepo.On("GetByID", ctx, profileID).Return(stored, nil).Once()

		_, err := svc.Update(ctx, owner, profileID, validProfileInput())

		assert.ErrorIs(t, err, youthprofile.ErrNotEditable)
	})
}

func TestYouthProfileService_List(t *testing.T) {
	ctx := context.Background()
	params := domain.PaginationParams{Page: 1, PageSize: 20}

	t.Run("plain user sees own records only", func(t *testing.T) {
		profileRepo := new(mocks.YouthProfileRepository)
		svc := newProfileService(profileRepo, new(mocks.AuditLogRepository), new(mocks.NotificationService))

		userID := uuid.New()
		actor := &domain.User{ID: userID, Role: "user"}

		profileRepo.On("List", ctx, mock.MatchedBy(func(f domain.YouthProfileFilter) bool {
			return f.UserID != nil && *f.UserID == userID
		}), params).Return([]domain.YouthProfile{}, int64(0), nil).Once()

		_, err := svc.List(ctx, actor, domain.YouthProfileFilter{}, params)

		assert.NoError(t, err)
		profileRepo.AssertExpectations(t)
	})

	t.Run("admin filter is not scoped to owner", func(t *testing.T) {
		profileRepo := new(mocks.YouthProfileRepository)
		svc := newProfileService(profileRepo, new(mocks.AuditLogRepository), new(mocks.NotificationService))

		actor := &domain.User{ID: uuid.New(), Role: "admin"}
		status := domain.StatusPending

		profileRepo.On("List", ctx, mock.MatchedBy(func(f domain.YouthProfileFilter) bool {
			return f.UserID == nil && f.Status != nil && *f.Status == status
		}), params).Return([]domain.YouthProfile{}, int64(0), nil).Once()

		_, err := svc.List(ctx, actor, domain.YouthProfileFilter{Status: &status}, params)

		assert.NoError(t, err)
		profileRepo.AssertExpectations(t)
	})
}
