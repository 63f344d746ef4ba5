package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kabataan-backend/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	args := m.Called(ctx, userID, unreadOnly, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Notification]), args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *NotificationService) ClearAll(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *NotificationService) NotifyProfileSubmitted(ctx context.Context, profile *domain.YouthProfile, submitterName string) {
	m.Called(ctx, profile, submitterName)
}

func (m *NotificationService) NotifyProfileReviewed(ctx context.Context, profile *domain.YouthProfile, approved bool, note *string) {
	m.Called(ctx, profile, approved, note)
}

func (m *NotificationService) NotifyProposalSubmitted(ctx context.Context, proposal *domain.Proposal, submitterName string) {
	m.Called(ctx, proposal, submitterName)
}

func (m *NotificationService) NotifyProposalReviewed(ctx context.Context, proposal *domain.Proposal, approved bool, reason *string) {
	m.Called(ctx, proposal, approved, reason)
}

func (m *NotificationService) NotifyImportCompleted(ctx context.Context, userID uuid.UUID, progress domain.ImportProgress) {
	m.Called(ctx, userID, progress)
}

func (m *NotificationService) NotifyRoleChanged(ctx context.Context, userID uuid.UUID, newRole domain.UserRole) {
	m.Called(ctx, userID, newRole)
}

func (m *NotificationService) NotifyAccountActivated(ctx context.Context, userID uuid.UUID) {
	m.Called(ctx, userID)
}
