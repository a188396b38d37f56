package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"redline/internal/docdiff"
	"redline/internal/domain"
	"redline/internal/service"
)

// MockComparisonService is a mock implementation of service.ComparisonService.
type MockComparisonService struct {
	mock.Mock
}

func (m *MockComparisonService) Create(ctx context.Context, input service.CreateComparisonInput) (*domain.Comparison, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comparison), args.Error(1)
}

func (m *MockComparisonService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comparison, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comparison), args.Error(1)
}

func (m *MockComparisonService) List(ctx context.Context, offset, limit int) ([]domain.Comparison, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Comparison), args.Int(1), args.Error(2)
}

func (m *MockComparisonService) GetReport(ctx context.Context, id uuid.UUID) (*docdiff.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdiff.Report), args.Error(1)
}

func (m *MockComparisonService) CompareText(ctx context.Context, input service.TextCompareInput) *docdiff.Report {
	args := m.Called(ctx, input)
	return args.Get(0).(*docdiff.Report)
}

func (m *MockComparisonService) ProcessComparison(ctx context.Context, cmp *domain.Comparison, maxAttempts int) {
	m.Called(ctx, cmp, maxAttempts)
}
