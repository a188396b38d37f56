package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"redline/internal/domain"
)

// MockComparisonRepo is a mock implementation of port.ComparisonRepository.
type MockComparisonRepo struct {
	mock.Mock
}

func (m *MockComparisonRepo) Create(ctx context.Context, cmp *domain.Comparison) error {
	args := m.Called(ctx, cmp)
	return args.Error(0)
}

func (m *MockComparisonRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comparison, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comparison), args.Error(1)
}

func (m *MockComparisonRepo) List(ctx context.Context, offset, limit int) ([]domain.Comparison, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Comparison), args.Int(1), args.Error(2)
}

func (m *MockComparisonRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.Comparison, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comparison), args.Error(1)
}

func (m *MockComparisonRepo) MarkCompleted(ctx context.Context, id uuid.UUID, report []byte) error {
	args := m.Called(ctx, id, report)
	return args.Error(0)
}

func (m *MockComparisonRepo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	args := m.Called(ctx, id, errMsg)
	return args.Error(0)
}

func (m *MockComparisonRepo) Requeue(ctx context.Context, id uuid.UUID, errMsg string) error {
	args := m.Called(ctx, id, errMsg)
	return args.Error(0)
}
