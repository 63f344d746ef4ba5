package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kabataan-backend/internal/domain"
)

type ProposalRepository struct {
	mock.Mock
}

func (m *ProposalRepository) Create(ctx context.Context, proposal *domain.Proposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *ProposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

func (m *ProposalRepository) Update(ctx context.Context, proposal *domain.Proposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *ProposalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, approvedBy *uuid.UUID, rejectionReason *string) error {
	args := m.Called(ctx, id, status, approvedBy, rejectionReason)
	return args.Error(0)
}

func (m *ProposalRepository) List(ctx context.Context, filter domain.ProposalFilter, params domain.PaginationParams) ([]domain.Proposal, int64, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]domain.Proposal), args.Get(1).(int64), args.Error(2)
}

func (m *ProposalRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProposalRepository) ListAll(ctx context.Context) ([]domain.Proposal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Proposal), args.Error(1)
}

type ProposalCategoryRepository struct {
	mock.Mock
}

func (m *ProposalCategoryRepository) Create(ctx context.Context, category *domain.ProposalCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *ProposalCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProposalCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProposalCategory), args.Error(1)
}

func (m *ProposalCategoryRepository) List(ctx context.Context) ([]domain.ProposalCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ProposalCategory), args.Error(1)
}
