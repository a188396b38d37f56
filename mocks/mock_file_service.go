package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"redline/internal/domain"
	"redline/internal/service"
)

// MockFileService is a mock implementation of service.FileService.
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, input service.FileUploadInput) (*domain.FileMeta, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileMeta), args.Error(1)
}

func (m *MockFileService) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.FileMeta, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileMeta), args.Error(1)
}

func (m *MockFileService) List(ctx context.Context, offset, limit int) ([]domain.FileMeta, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.FileMeta), args.Int(1), args.Error(2)
}

func (m *MockFileService) GetDownloadURL(ctx context.Context, fileID uuid.UUID) (string, error) {
	args := m.Called(ctx, fileID)
	return args.String(0), args.Error(1)
}

func (m *MockFileService) Delete(ctx context.Context, fileID uuid.UUID) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}
