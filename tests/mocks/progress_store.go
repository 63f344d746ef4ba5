package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kabataan-backend/internal/domain"
)

type ProgressStore struct {
	mock.Mock
}

func (m *ProgressStore) Init(ctx context.Context, userID uuid.UUID, total int64) error {
	args := m.Called(ctx, userID, total)
	return args.Error(0)
}

func (m *ProgressStore) Set(ctx context.Context, progress domain.ImportProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *ProgressStore) Get(ctx context.Context, userID uuid.UUID) (*domain.ImportProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportProgress), args.Error(1)
}
