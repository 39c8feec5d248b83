// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
)

// MockTaskRepository implements TaskRepository for testing
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Exists(ctx context.Context, taskUID string) (bool, error) {
	args := m.Called(ctx, taskUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskRepository) Get(ctx context.Context, taskUID string) (*models.Task, error) {
	args := m.Called(ctx, taskUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetWithRevision(ctx context.Context, taskUID string) (*models.Task, uint64, error) {
	args := m.Called(ctx, taskUID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(uint64), args.Error(2)
	}
	return args.Get(0).(*models.Task), args.Get(1).(uint64), args.Error(2)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *models.Task, revision uint64) error {
	args := m.Called(ctx, task, revision)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, taskUID string, revision uint64) error {
	args := m.Called(ctx, taskUID, revision)
	return args.Error(0)
}

func (m *MockTaskRepository) ListAll(ctx context.Context) ([]*models.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByLicense(ctx context.Context, licenseUID string) ([]*models.Task, error) {
	args := m.Called(ctx, licenseUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByClient(ctx context.Context, clientUID string) ([]*models.Task, error) {
	args := m.Called(ctx, clientUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}
