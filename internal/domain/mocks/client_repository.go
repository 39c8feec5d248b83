// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
)

// MockClientRepository implements ClientRepository for testing
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *models.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Exists(ctx context.Context, clientUID string) (bool, error) {
	args := m.Called(ctx, clientUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) Get(ctx context.Context, clientUID string) (*models.Client, error) {
	args := m.Called(ctx, clientUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientRepository) GetWithRevision(ctx context.Context, clientUID string) (*models.Client, uint64, error) {
	args := m.Called(ctx, clientUID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(uint64), args.Error(2)
	}
	return args.Get(0).(*models.Client), args.Get(1).(uint64), args.Error(2)
}

func (m *MockClientRepository) Update(ctx context.Context, client *models.Client, revision uint64) error {
	args := m.Called(ctx, client, revision)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, clientUID string, revision uint64) error {
	args := m.Called(ctx, clientUID, revision)
	return args.Error(0)
}

func (m *MockClientRepository) ListByLicense(ctx context.Context, licenseUID string) ([]*models.Client, error) {
	args := m.Called(ctx, licenseUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Client), args.Error(1)
}
