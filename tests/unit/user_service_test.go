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
	"kabataan-backend/internal/service/user"
	"kabataan-backend/tests/mocks"
)

func newUserService(userRepo *mocks.UserRepository, auditRepo *mocks.AuditLogRepository, notifSvc *mocks.NotificationService) user.Service {
	auditSvc := audit.NewService(auditRepo, zerolog.Nop())
	return user.NewService(userRepo, auditSvc, notifSvc)
}

func TestUserService_SetActive(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: uuid.New(), Role: "admin"}

	t.Run("activation notifies the account holder", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		auditRepo := new(mocks.AuditLogRepository)
		notifSvc := new(mocks.NotificationService)
		svc := newUserService(userRepo, auditRepo, notifSvc)

		targetID := uuid.New()
		target := &domain.User{ID: targetID, Role: "user", IsActive: false}

		userRepo.On("GetByID", ctx, targetID).Return(target, nil).Once()
		userRepo.On("SetActive", ctx, targetID, true).Return(nil).Once()
		auditRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "ACTIVATE" && log.EntityType == "USER" && log.EntityID == targetID
		})).Return(nil).Once()
		notifSvc.On("NotifyAccountActivated", ctx, targetID).Once()

		err := svc.SetActive(ctx, admin, targetID, true, audit.Meta{})

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
		auditRepo.AssertExpectations(t)
		notifSvc.AssertExpectations(t)
	})

	t.Run("already active is a no-op", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := newUserService(userRepo, new(mocks.AuditLogRepository), new(mocks.NotificationService))

		targetID := uuid.New()
		userRepo.On("GetByID", ctx, targetID).Return(&domain.User{ID: targetID, Role: "user", IsActive: true}, nil).Once()

		err := svc.SetActive(ctx, admin, targetID, true, audit.Meta{})

		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("admin cannot deactivate a superadmin", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := newUserService(userRepo, new(mocks.AuditLogRepository), new(mocks.NotificationService))

		targetID := uuid.New()
		userRepo.On("GetByID", ctx, targetID).Return(&domain.User{ID: targetID, Role: "superadmin", IsActive: true}, nil).Once()

		err := svc.SetActive(ctx, admin, targetID, false, audit.Meta{})

		assert.ErrorIs(t, err, user.ErrSuperAdminProtected)
	})

	t.Run("cannot change own status", func(t *testing.T) {
		svc := newUserService(new(mocks.UserRepository), new(mocks.AuditLogRepository), new(mocks.NotificationService))

		err := svc.SetActive(ctx, admin, admin.ID, false, audit.Meta{})

		assert.ErrorIs(t, err, user.ErrCannotChangeSelf)
	})
}

func TestUserService_SetRole(t *testing.T) {
	ctx := context.Background()
	superadmin := &domain.User{ID: uuid.New(), Role: "superadmin"}

	t.Run("promotion records promoter and notifies", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		auditRepo := new(mocks.AuditLogRepository)
		notifSvc := new(mocks.NotificationService)
		svc := newUserService(userRepo, auditRepo, notifSvc)

		targetID := uuid.New()
		userRepo.On("GetByID", ctx, targetID).Return(&domain.User{ID: targetID, Role: "user"}, nil).Once()
		userRepo.On("SetRole", ctx, targetID, "admin", superadmin.ID).Return(nil).Once()
		auditRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "CHANGE_ROLE" && log.UserID == superadmin.ID
		})).Return(nil).Once()
		notifSvc.On("NotifyRoleChanged", ctx, targetID, domain.RoleAdmin).Once()

		err := svc.SetRole(ctx, superadmin, targetID, domain.RoleAdmin, audit.Meta{})

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
		notifSvc.AssertExpectations(t)
	})

	t.Run("invalid role", func(t *testing.T) {
		svc := newUserService(new(mocks.UserRepository), new(mocks.AuditLogRepository), new(mocks.NotificationService))

		err := svc.SetRole(ctx, superadmin, uuid.New(), domain.UserRole("owner"), audit.Meta{})

		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("same role is a no-op", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := newUserService(userRepo, new(mocks.AuditLogRepository), new(mocks.NotificationService))

		targetID := uuid.New()
		userRepo.On("GetByID", ctx, targetID).Return(&domain.User{ID: targetID, Role: "admin"}, nil).Once()

		err := svc.SetRole(ctx, superadmin, targetID, domain.RoleAdmin, audit.Meta{})

		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	superadmin := &domain.User{ID: uuid.New(), Role: "superadmin"}

	t.Run("superadmin accounts are never deletable", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := newUserService(userRepo, new(mocks.AuditLogRepository), new(mocks.NotificationService))

		targetID := uuid.New()
		userRepo.On("GetByID", ctx, targetID).Return(&domain.User{ID: targetID, Role: "superadmin"}, nil).Once()

		err := svc.Delete(ctx, superadmin, targetID, audit.Meta{})

		assert.ErrorIs(t, err, user.ErrSuperAdminProtected)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes and audits a regular account", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		auditRepo := new(mocks.AuditLogRepository)
		svc := newUserService(userRepo, auditRepo, new(mocks.NotificationService))

		targetID := uuid.New()
		userRepo.On("GetByID", ctx, targetID).Return(&domain.User{ID: targetID, Role: "user"}, nil).Once()
		userRepo.On("Delete", ctx, targetID).Return(nil).Once()
		auditRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "DELETE" && log.EntityType == "USER"
		})).Return(nil).Once()

		err := svc.Delete(ctx, superadmin, targetID, audit.Meta{})

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
		auditRepo.AssertExpectations(t)
	})
}
