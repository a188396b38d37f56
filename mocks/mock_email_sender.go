package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"redline/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendComparisonReady(ctx context.Context, toEmail string, notice port.ComparisonNotice) error {
	args := m.Called(ctx, toEmail, notice)
	return args.Error(0)
}

func (m *MockEmailSender) SendComparisonFailed(ctx context.Context, toEmail string, comparisonID, reason string) error {
	args := m.Called(ctx, toEmail, comparisonID, reason)
	return args.Error(0)
}
