// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/mocks"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/StianAK82/RegnskapSky-sub001/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTaskHandler() (*TaskHandler, *mocks.MockTaskRepository, *mocks.MockClientRepository, *mocks.MockMessageBuilder) {
	taskRepo := &mocks.MockTaskRepository{}
	clientRepo := &mocks.MockClientRepository{}
	messageBuilder := &mocks.MockMessageBuilder{}

	taskService := service.NewTaskService(
		taskRepo,
		clientRepo,
		messageBuilder,
		service.NewOccurrenceService(),
		service.ServiceConfig{SkipEtagValidation: true},
	)

	return NewTaskHandler(taskService, taskRepo), taskRepo, clientRepo, messageBuilder
}

func TestTaskHandler_HandlerReady(t *testing.T) {
	handler, _, _, _ := setupTaskHandler()
	assert.True(t, handler.HandlerReady())

	notReady := NewTaskHandler(service.NewTaskService(nil, nil, nil, nil, service.ServiceConfig{}), nil)
	assert.False(t, notReady.HandlerReady())
}

func TestTaskHandler_HandleTaskGetTitle(t *testing.T) {
	taskUID := uuid.New().String()

	tests := []struct {
		name         string
		data         []byte
		setupMocks   func(taskRepo *mocks.MockTaskRepository)
		wantResponse []byte
		wantErr      bool
	}{
		{
			name: "returns the task title",
			data: []byte(taskUID),
			setupMocks: func(taskRepo *mocks.MockTaskRepository) {
				taskRepo.On("Get", mock.Anything, taskUID).Return(&models.Task{
					UID:   taskUID,
					Title: "MVA-melding",
				}, nil)
			},
			wantResponse: []byte("MVA-melding"),
		},
		{
			name:    "invalid task UID",
			data:    []byte("not-a-uuid"),
			wantErr: true,
		},
		{
			name: "task not found",
			data: []byte(taskUID),
			setupMocks: func(taskRepo *mocks.MockTaskRepository) {
				taskRepo.On("Get", mock.Anything, taskUID).Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler, taskRepo, _, _ := setupTaskHandler()
			if tc.setupMocks != nil {
				tc.setupMocks(taskRepo)
			}

			msg := mocks.NewMockMessage(tc.data, models.TaskGetTitleSubject)

			response, err := handler.HandleTaskGetTitle(context.Background(), msg)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResponse, response)
			taskRepo.AssertExpectations(t)
		})
	}
}

func TestTaskHandler_HandleClientDeleted(t *testing.T) {
	clientUID := uuid.New().String()
	licenseUID := uuid.New().String()
	taskUID := uuid.New().String()

	validPayload, err := json.Marshal(models.ClientDeletedMessage{
		ClientUID:  clientUID,
		LicenseUID: licenseUID,
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		data       []byte
		setupMocks func(taskRepo *mocks.MockTaskRepository, messageBuilder *mocks.MockMessageBuilder)
		wantErr    bool
	}{
		{
			name: "deletes the client's tasks",
			data: validPayload,
			setupMocks: func(taskRepo *mocks.MockTaskRepository, messageBuilder *mocks.MockMessageBuilder) {
				task := &models.Task{
					UID:        taskUID,
					ClientUID:  clientUID,
					LicenseUID: licenseUID,
					Title:      "Lønnskjøring",
					StartDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				}
				taskRepo.On("ListByClient", mock.Anything, clientUID).Return([]*models.Task{task}, nil)
				taskRepo.On("GetWithRevision", mock.Anything, taskUID).Return(task, uint64(3), nil)
				taskRepo.On("Delete", mock.Anything, taskUID, uint64(3)).Return(nil)
				messageBuilder.On("SendDeleteIndexTask", mock.Anything, taskUID).Return(nil)
				messageBuilder.On("SendDeleteAllAccessTask", mock.Anything, taskUID).Return(nil)
			},
		},
		{
			name:    "invalid JSON payload",
			data:    []byte("{not json"),
			wantErr: true,
		},
		{
			name:    "missing client UID",
			data:    []byte(`{"license_uid":"abc"}`),
			wantErr: true,
		},
		{
			name: "list failure propagates",
			data: validPayload,
			setupMocks: func(taskRepo *mocks.MockTaskRepository, _ *mocks.MockMessageBuilder) {
				taskRepo.On("ListByClient", mock.Anything, clientUID).Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler, taskRepo, _, messageBuilder := setupTaskHandler()
			if tc.setupMocks != nil {
				tc.setupMocks(taskRepo, messageBuilder)
			}

			msg := mocks.NewMockMessage(tc.data, models.ClientDeletedSubject)

			response, err := handler.HandleClientDeleted(context.Background(), msg)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []byte("success"), response)
			taskRepo.AssertExpectations(t)
			messageBuilder.AssertExpectations(t)
		})
	}
}

func TestTaskHandler_HandleMessage(t *testing.T) {
	taskUID := uuid.New().String()

	t.Run("responds on known subject with reply", func(t *testing.T) {
		handler, taskRepo, _, _ := setupTaskHandler()
		taskRepo.On("Get", mock.Anything, taskUID).Return(&models.Task{
			UID:   taskUID,
			Title: "Årsregnskap",
		}, nil)

		msg := mocks.NewMockMessage([]byte(taskUID), models.TaskGetTitleSubject)
		msg.On("HasReply").Return(true)
		msg.On("Respond", []byte("Årsregnskap")).Return(nil)

		handler.HandleMessage(context.Background(), msg)

		msg.AssertExpectations(t)
		taskRepo.AssertExpectations(t)
	})

	t.Run("unknown subject responds with nil", func(t *testing.T) {
		handler, _, _, _ := setupTaskHandler()

		msg := mocks.NewMockMessage([]byte("data"), "regnskapsky.tasks-api.unknown")
		msg.On("HasReply").Return(true)
		msg.On("Respond", []byte(nil)).Return(nil)

		handler.HandleMessage(context.Background(), msg)

		msg.AssertExpectations(t)
	})

	t.Run("handler error responds with nil", func(t *testing.T) {
		handler, _, _, _ := setupTaskHandler()

		msg := mocks.NewMockMessage([]byte("bad-uid"), models.TaskGetTitleSubject)
		msg.On("HasReply").Return(true)
		msg.On("Respond", []byte(nil)).Return(nil)

		handler.HandleMessage(context.Background(), msg)

		msg.AssertExpectations(t)
	})
}
