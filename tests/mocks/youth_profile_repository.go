package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kabataan-backend/internal/domain"
)

type YouthProfileRepository struct {
	mock.Mock
}

func (m *YouthProfileRepository) Create(ctx context.Context, profile *domain.YouthProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *YouthProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.YouthProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.YouthProfile), args.Error(1)
}

func (m *YouthProfileRepository) Update(ctx context.Context, profile *domain.YouthProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *YouthProfileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, reviewedBy *uuid.UUID, note *string) error {
	args := m.Called(ctx, id, status, reviewedBy, note)
	return args.Error(0)
}

func (m *YouthProfileRepository) List(ctx context.Context, filter domain.YouthProfileFilter, params domain.PaginationParams) ([]domain.YouthProfile, int64, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]domain.YouthProfile), args.Get(1).(int64), args.Error(2)
}

func (m *YouthProfileRepository) ExistsPendingByNameAndBirthdate(ctx context.Context, fullName, birthdate string) (bool, error) {
	args := m.Called(ctx, fullName, birthdate)
	return args.Bool(0), args.Error(1)
}

func (m *YouthProfileRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *YouthProfileRepository) GetLastActivityAt(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *YouthProfileRepository) ListAll(ctx context.Context) ([]domain.YouthProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.YouthProfile), args.Error(1)
}
