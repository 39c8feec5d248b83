// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
)

// MockEmailService implements EmailService for testing
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendTaskReminder(ctx context.Context, reminder domain.EmailTaskReminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}
