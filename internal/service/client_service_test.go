// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/mocks"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupClientService() (*ClientService, *mocks.MockClientRepository, *mocks.MockMessageBuilder) {
	clientRepo := &mocks.MockClientRepository{}
	messageBuilder := &mocks.MockMessageBuilder{}

	svc := NewClientService(clientRepo, messageBuilder, ServiceConfig{SkipEtagValidation: true})

	return svc, clientRepo, messageBuilder
}

func TestClientService_ServiceReady(t *testing.T) {
	svc, _, _ := setupClientService()
	assert.True(t, svc.ServiceReady())

	assert.False(t, NewClientService(nil, nil, ServiceConfig{}).ServiceReady())
}

func TestClientService_CreateClient(t *testing.T) {
	licenseUID := uuid.New().String()

	tests := []struct {
		name        string
		payload     *models.Client
		setupMocks  func(clientRepo *mocks.MockClientRepository, messageBuilder *mocks.MockMessageBuilder)
		wantErr     bool
		wantErrType domain.ErrorType
	}{
		{
			name: "creates a client",
			payload: &models.Client{
				LicenseUID: licenseUID,
				Name:       "Fjordvik AS",
				OrgNumber:  "987654321",
			},
			setupMocks: func(clientRepo *mocks.MockClientRepository, messageBuilder *mocks.MockMessageBuilder) {
				clientRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Client")).Return(nil)
				messageBuilder.On("SendIndexClient", mock.Anything, models.ActionCreated, mock.AnythingOfType("models.Client")).Return(nil)
				messageBuilder.On("SendUpdateAccessClient", mock.Anything, mock.AnythingOfType("models.ClientAccessMessage")).Return(nil)
			},
		},
		{
			name:        "nil payload",
			payload:     nil,
			wantErr:     true,
			wantErrType: domain.ErrorTypeValidation,
		},
		{
			name: "missing license",
			payload: &models.Client{
				Name: "Fjordvik AS",
			},
			wantErr:     true,
			wantErrType: domain.ErrorTypeValidation,
		},
		{
			name: "missing name",
			payload: &models.Client{
				LicenseUID: licenseUID,
				Name:       "  ",
			},
			wantErr:     true,
			wantErrType: domain.ErrorTypeValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, clientRepo, messageBuilder := setupClientService()
			if tc.setupMocks != nil {
				tc.setupMocks(clientRepo, messageBuilder)
			}

			client, err := svc.CreateClient(context.Background(), tc.payload)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.wantErrType, domain.GetErrorType(err))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, client)
			assert.NotEmpty(t, client.UID)
			assert.NotNil(t, client.CreatedAt)
			assert.NotNil(t, client.UpdatedAt)
			clientRepo.AssertExpectations(t)
			messageBuilder.AssertExpectations(t)
		})
	}
}

func TestClientService_GetClient(t *testing.T) {
	clientUID := uuid.New().String()
	licenseUID := uuid.New().String()

	t.Run("returns client and etag", func(t *testing.T) {
		svc, clientRepo, _ := setupClientService()
		clientRepo.On("GetWithRevision", mock.Anything, clientUID).Return(&models.Client{
			UID:        clientUID,
			LicenseUID: licenseUID,
			Name:       "Fjordvik AS",
		}, uint64(9), nil)

		client, etag, err := svc.GetClient(context.Background(), clientUID, licenseUID)
		require.NoError(t, err)
		assert.Equal(t, "Fjordvik AS", client.Name)
		assert.Equal(t, "9", etag)
	})

	t.Run("cross-license read reports not found", func(t *testing.T) {
		svc, clientRepo, _ := setupClientService()
		clientRepo.On("GetWithRevision", mock.Anything, clientUID).Return(&models.Client{
			UID:        clientUID,
			LicenseUID: uuid.New().String(),
		}, uint64(1), nil)

		_, _, err := svc.GetClient(context.Background(), clientUID, licenseUID)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})
}

func TestClientService_UpdateClient(t *testing.T) {
	clientUID := uuid.New().String()
	licenseUID := uuid.New().String()

	t.Run("updates a client", func(t *testing.T) {
		svc, clientRepo, messageBuilder := setupClientService()
		clientRepo.On("GetWithRevision", mock.Anything, clientUID).Return(&models.Client{
			UID:        clientUID,
			LicenseUID: licenseUID,
			Name:       "Fjordvik AS",
		}, uint64(2), nil)
		clientRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Client"), uint64(2)).Return(nil)
		messageBuilder.On("SendIndexClient", mock.Anything, models.ActionUpdated, mock.AnythingOfType("models.Client")).Return(nil)
		messageBuilder.On("SendUpdateAccessClient", mock.Anything, mock.AnythingOfType("models.ClientAccessMessage")).Return(nil)

		updated, err := svc.UpdateClient(context.Background(), &models.Client{
			UID:        clientUID,
			LicenseUID: licenseUID,
			Name:       "Fjordvik Regnskap AS",
		}, 0)
		require.NoError(t, err)
		assert.Equal(t, "Fjordvik Regnskap AS", updated.Name)
		assert.NotNil(t, updated.UpdatedAt)
		clientRepo.AssertExpectations(t)
		messageBuilder.AssertExpectations(t)
	})

	t.Run("missing UID", func(t *testing.T) {
		svc, _, _ := setupClientService()
		_, err := svc.UpdateClient(context.Background(), &models.Client{}, 0)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
	})

	t.Run("cross-license update reports not found", func(t *testing.T) {
		svc, clientRepo, _ := setupClientService()
		clientRepo.On("GetWithRevision", mock.Anything, clientUID).Return(&models.Client{
			UID:        clientUID,
			LicenseUID: uuid.New().String(),
		}, uint64(2), nil)

		_, err := svc.UpdateClient(context.Background(), &models.Client{
			UID:        clientUID,
			LicenseUID: licenseUID,
			Name:       "Fjordvik AS",
		}, 0)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})
}

func TestClientService_DeleteClient(t *testing.T) {
	clientUID := uuid.New().String()
	licenseUID := uuid.New().String()

	t.Run("deletes and publishes the cascade event", func(t *testing.T) {
		svc, clientRepo, messageBuilder := setupClientService()
		clientRepo.On("GetWithRevision", mock.Anything, clientUID).Return(&models.Client{
			UID:        clientUID,
			LicenseUID: licenseUID,
		}, uint64(4), nil)
		clientRepo.On("Delete", mock.Anything, clientUID, uint64(4)).Return(nil)
		messageBuilder.On("SendDeleteIndexClient", mock.Anything, clientUID).Return(nil)
		messageBuilder.On("SendDeleteAllAccessClient", mock.Anything, clientUID).Return(nil)
		messageBuilder.On("SendClientDeleted", mock.Anything, models.ClientDeletedMessage{
			ClientUID:  clientUID,
			LicenseUID: licenseUID,
		}).Return(nil)

		err := svc.DeleteClient(context.Background(), clientUID, licenseUID, 0)
		require.NoError(t, err)
		clientRepo.AssertExpectations(t)
		messageBuilder.AssertExpectations(t)
	})

	t.Run("cross-license delete reports not found", func(t *testing.T) {
		svc, clientRepo, _ := setupClientService()
		clientRepo.On("GetWithRevision", mock.Anything, clientUID).Return(&models.Client{
			UID:        clientUID,
			LicenseUID: uuid.New().String(),
		}, uint64(4), nil)

		err := svc.DeleteClient(context.Background(), clientUID, licenseUID, 0)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})

	t.Run("repository delete failure propagates", func(t *testing.T) {
		svc, clientRepo, _ := setupClientService()
		clientRepo.On("GetWithRevision", mock.Anything, clientUID).Return(&models.Client{
			UID:        clientUID,
			LicenseUID: licenseUID,
		}, uint64(4), nil)
		clientRepo.On("Delete", mock.Anything, clientUID, uint64(4)).Return(assert.AnError)

		err := svc.DeleteClient(context.Background(), clientUID, licenseUID, 0)
		require.Error(t, err)
	})
}

func TestClientService_ListClients(t *testing.T) {
	licenseUID := uuid.New().String()

	t.Run("lists clients of the license", func(t *testing.T) {
		svc, clientRepo, _ := setupClientService()
		clientRepo.On("ListByLicense", mock.Anything, licenseUID).Return([]*models.Client{
			{UID: uuid.New().String(), LicenseUID: licenseUID, Name: "Fjordvik AS"},
			{UID: uuid.New().String(), LicenseUID: licenseUID, Name: "Bergtun Eiendom AS"},
		}, nil)

		clients, err := svc.ListClients(context.Background(), licenseUID)
		require.NoError(t, err)
		assert.Len(t, clients, 2)
	})

	t.Run("missing license UID", func(t *testing.T) {
		svc, _, _ := setupClientService()
		_, err := svc.ListClients(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
	})
}
