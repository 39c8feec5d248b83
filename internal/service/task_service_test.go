// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/mocks"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTaskService() (*TaskService, *mocks.MockTaskRepository, *mocks.MockClientRepository, *mocks.MockMessageBuilder) {
	taskRepo := &mocks.MockTaskRepository{}
	clientRepo := &mocks.MockClientRepository{}
	messageBuilder := &mocks.MockMessageBuilder{}

	svc := NewTaskService(
		taskRepo,
		clientRepo,
		messageBuilder,
		NewOccurrenceService(),
		ServiceConfig{SkipEtagValidation: true},
	)

	return svc, taskRepo, clientRepo, messageBuilder
}

func TestTaskService_ServiceReady(t *testing.T) {
	svc, _, _, _ := setupTaskService()
	assert.True(t, svc.ServiceReady())

	assert.False(t, NewTaskService(nil, nil, nil, nil, ServiceConfig{}).ServiceReady())
}

func TestTaskService_CreateTask(t *testing.T) {
	licenseUID := uuid.New().String()
	clientUID := uuid.New().String()
	startDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		payload       *models.Task
		setupMocks    func(taskRepo *mocks.MockTaskRepository, clientRepo *mocks.MockClientRepository, messageBuilder *mocks.MockMessageBuilder)
		wantErrType   domain.ErrorType
		wantErr       bool
		checkTask     func(t *testing.T, task *models.Task)
	}{
		{
			name: "creates a task with normalized frequency",
			payload: &models.Task{
				LicenseUID:     licenseUID,
				ClientUID:      clientUID,
				Title:          "MVA-melding",
				FrequencyLabel: "annenhver måned",
				StartDate:      startDate,
				AssigneeEmail:  "kari@fjordvik.no",
			},
			setupMocks: func(taskRepo *mocks.MockTaskRepository, clientRepo *mocks.MockClientRepository, messageBuilder *mocks.MockMessageBuilder) {
				clientRepo.On("Get", mock.Anything, clientUID).Return(&models.Client{
					UID:        clientUID,
					LicenseUID: licenseUID,
					Name:       "Fjordvik AS",
				}, nil)
				taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Task")).Return(nil)
				messageBuilder.On("SendIndexTask", mock.Anything, models.ActionCreated, mock.AnythingOfType("models.Task")).Return(nil)
				messageBuilder.On("SendUpdateAccessTask", mock.Anything, mock.AnythingOfType("models.TaskAccessMessage")).Return(nil)
			},
			checkTask: func(t *testing.T, task *models.Task) {
				assert.NotEmpty(t, task.UID)
				assert.Equal(t, models.FrequencyBiMonthly, task.Frequency)
				assert.Equal(t, "annenhver måned", task.FrequencyLabel)
				assert.Equal(t, models.TaskStatusOpen, task.Status)
				require.NotNil(t, task.NextDue)
				assert.Equal(t, startDate, *task.NextDue)
				assert.NotNil(t, task.CreatedAt)
				assert.NotNil(t, task.UpdatedAt)
			},
		},
		{
			name:        "nil payload",
			payload:     nil,
			wantErr:     true,
			wantErrType: domain.ErrorTypeValidation,
		},
		{
			name: "missing title",
			payload: &models.Task{
				LicenseUID: licenseUID,
				ClientUID:  clientUID,
				Title:      "   ",
				StartDate:  startDate,
			},
			wantErr:     true,
			wantErrType: domain.ErrorTypeValidation,
		},
		{
			name: "missing start date",
			payload: &models.Task{
				LicenseUID: licenseUID,
				ClientUID:  clientUID,
				Title:      "Lønnskjøring",
			},
			wantErr:     true,
			wantErrType: domain.ErrorTypeValidation,
		},
		{
			name: "invalid status",
			payload: &models.Task{
				LicenseUID: licenseUID,
				ClientUID:  clientUID,
				Title:      "Lønnskjøring",
				StartDate:  startDate,
				Status:     "archived",
			},
			wantErr:     true,
			wantErrType: domain.ErrorTypeValidation,
		},
		{
			name: "client belongs to another license",
			payload: &models.Task{
				LicenseUID: licenseUID,
				ClientUID:  clientUID,
				Title:      "Lønnskjøring",
				StartDate:  startDate,
			},
			setupMocks: func(_ *mocks.MockTaskRepository, clientRepo *mocks.MockClientRepository, _ *mocks.MockMessageBuilder) {
				clientRepo.On("Get", mock.Anything, clientUID).Return(&models.Client{
					UID:        clientUID,
					LicenseUID: uuid.New().String(),
				}, nil)
			},
			wantErr:     true,
			wantErrType: domain.ErrorTypeNotFound,
		},
		{
			name: "repository create failure",
			payload: &models.Task{
				LicenseUID: licenseUID,
				ClientUID:  clientUID,
				Title:      "Lønnskjøring",
				StartDate:  startDate,
			},
			setupMocks: func(taskRepo *mocks.MockTaskRepository, clientRepo *mocks.MockClientRepository, _ *mocks.MockMessageBuilder) {
				clientRepo.On("Get", mock.Anything, clientUID).Return(&models.Client{
					UID:        clientUID,
					LicenseUID: licenseUID,
				}, nil)
				taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Task")).Return(assert.AnError)
			},
			wantErr:     true,
			wantErrType: domain.ErrorTypeInternal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, taskRepo, clientRepo, messageBuilder := setupTaskService()
			if tc.setupMocks != nil {
				tc.setupMocks(taskRepo, clientRepo, messageBuilder)
			}

			task, err := svc.CreateTask(context.Background(), tc.payload)
			if tc.wantErr {
				require.Error(t, err)
				if tc.wantErrType != domain.ErrorTypeInternal {
					assert.Equal(t, tc.wantErrType, domain.GetErrorType(err))
				}
				return
			}
			require.NoError(t, err)
			require.NotNil(t, task)
			if tc.checkTask != nil {
				tc.checkTask(t, task)
			}
			taskRepo.AssertExpectations(t)
			clientRepo.AssertExpectations(t)
			messageBuilder.AssertExpectations(t)
		})
	}
}

func TestTaskService_GetTask(t *testing.T) {
	taskUID := uuid.New().String()
	licenseUID := uuid.New().String()

	t.Run("returns task and etag", func(t *testing.T) {
		svc, taskRepo, _, _ := setupTaskService()
		taskRepo.On("GetWithRevision", mock.Anything, taskUID).Return(&models.Task{
			UID:        taskUID,
			LicenseUID: licenseUID,
			Title:      "Årsregnskap",
		}, uint64(42), nil)

		task, etag, err := svc.GetTask(context.Background(), taskUID, licenseUID)
		require.NoError(t, err)
		assert.Equal(t, "Årsregnskap", task.Title)
		assert.Equal(t, "42", etag)
	})

	t.Run("cross-license read reports not found", func(t *testing.T) {
		svc, taskRepo, _, _ := setupTaskService()
		taskRepo.On("GetWithRevision", mock.Anything, taskUID).Return(&models.Task{
			UID:        taskUID,
			LicenseUID: uuid.New().String(),
		}, uint64(1), nil)

		_, _, err := svc.GetTask(context.Background(), taskUID, licenseUID)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})

	t.Run("repository error propagates", func(t *testing.T) {
		svc, taskRepo, _, _ := setupTaskService()
		taskRepo.On("GetWithRevision", mock.Anything, taskUID).Return(nil, uint64(0), assert.AnError)

		_, _, err := svc.GetTask(context.Background(), taskUID, licenseUID)
		require.Error(t, err)
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	taskUID := uuid.New().String()
	licenseUID := uuid.New().String()
	clientUID := uuid.New().String()
	createdAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	existing := func() *models.Task {
		return &models.Task{
			UID:        taskUID,
			LicenseUID: licenseUID,
			ClientUID:  clientUID,
			Title:      "MVA-melding",
			Frequency:  models.FrequencyBiMonthly,
			StartDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:     models.TaskStatusOpen,
			CreatedAt:  &createdAt,
		}
	}

	t.Run("updates schedule from new frequency label", func(t *testing.T) {
		svc, taskRepo, _, messageBuilder := setupTaskService()
		taskRepo.On("GetWithRevision", mock.Anything, taskUID).Return(existing(), uint64(7), nil)
		taskRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Task"), uint64(7)).Return(nil)
		messageBuilder.On("SendIndexTask", mock.Anything, models.ActionUpdated, mock.AnythingOfType("models.Task")).Return(nil)
		messageBuilder.On("SendUpdateAccessTask", mock.Anything, mock.AnythingOfType("models.TaskAccessMessage")).Return(nil)

		updated, err := svc.UpdateTask(context.Background(), &models.Task{
			UID:            taskUID,
			LicenseUID:     licenseUID,
			ClientUID:      "attempted-change",
			Title:          "MVA-melding",
			FrequencyLabel: "kvartalsvis",
			StartDate:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:         models.TaskStatusOpen,
		}, 0)
		require.NoError(t, err)
		assert.Equal(t, models.FrequencyQuarterly, updated.Frequency)
		// Immutable fields come from the stored task.
		assert.Equal(t, clientUID, updated.ClientUID)
		assert.Equal(t, createdAt, *updated.CreatedAt)
		assert.NotNil(t, updated.UpdatedAt)

		taskRepo.AssertExpectations(t)
		messageBuilder.AssertExpectations(t)
	})

	t.Run("missing UID", func(t *testing.T) {
		svc, _, _, _ := setupTaskService()
		_, err := svc.UpdateTask(context.Background(), &models.Task{}, 0)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
	})

	t.Run("cross-license update reports not found", func(t *testing.T) {
		svc, taskRepo, _, _ := setupTaskService()
		taskRepo.On("GetWithRevision", mock.Anything, taskUID).Return(existing(), uint64(7), nil)

		_, err := svc.UpdateTask(context.Background(), &models.Task{
			UID:        taskUID,
			LicenseUID: uuid.New().String(),
			ClientUID:  clientUID,
			Title:      "MVA-melding",
			StartDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		}, 0)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	taskUID := uuid.New().String()
	licenseUID := uuid.New().String()

	t.Run("deletes and sends cleanup messages", func(t *testing.T) {
		svc, taskRepo, _, messageBuilder := setupTaskService()
		taskRepo.On("GetWithRevision", mock.Anything, taskUID).Return(&models.Task{
			UID:        taskUID,
			LicenseUID: licenseUID,
		}, uint64(5), nil)
		taskRepo.On("Delete", mock.Anything, taskUID, uint64(5)).Return(nil)
		messageBuilder.On("SendDeleteIndexTask", mock.Anything, taskUID).Return(nil)
		messageBuilder.On("SendDeleteAllAccessTask", mock.Anything, taskUID).Return(nil)

		err := svc.DeleteTask(context.Background(), taskUID, licenseUID, 0)
		require.NoError(t, err)
		taskRepo.AssertExpectations(t)
		messageBuilder.AssertExpectations(t)
	})

	t.Run("messaging failure doesn't fail the delete", func(t *testing.T) {
		svc, taskRepo, _, messageBuilder := setupTaskService()
		taskRepo.On("GetWithRevision", mock.Anything, taskUID).Return(&models.Task{
			UID:        taskUID,
			LicenseUID: licenseUID,
		}, uint64(5), nil)
		taskRepo.On("Delete", mock.Anything, taskUID, uint64(5)).Return(nil)
		messageBuilder.On("SendDeleteIndexTask", mock.Anything, taskUID).Return(assert.AnError)
		messageBuilder.On("SendDeleteAllAccessTask", mock.Anything, taskUID).Return(nil).Maybe()

		err := svc.DeleteTask(context.Background(), taskUID, licenseUID, 0)
		require.NoError(t, err)
	})

	t.Run("cross-license delete reports not found", func(t *testing.T) {
		svc, taskRepo, _, _ := setupTaskService()
		taskRepo.On("GetWithRevision", mock.Anything, taskUID).Return(&models.Task{
			UID:        taskUID,
			LicenseUID: uuid.New().String(),
		}, uint64(5), nil)

		err := svc.DeleteTask(context.Background(), taskUID, licenseUID, 0)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})
}

func TestTaskService_ListTasks(t *testing.T) {
	licenseUID := uuid.New().String()
	clientA := uuid.New().String()
	clientB := uuid.New().String()

	tasks := []*models.Task{
		{UID: uuid.New().String(), LicenseUID: licenseUID, ClientUID: clientA, Title: "MVA-melding"},
		{UID: uuid.New().String(), LicenseUID: licenseUID, ClientUID: clientB, Title: "Lønnskjøring"},
		{UID: uuid.New().String(), LicenseUID: licenseUID, ClientUID: clientA, Title: "Aksjonærregisteroppgave"},
	}

	t.Run("lists all tasks of the license", func(t *testing.T) {
		svc, taskRepo, _, _ := setupTaskService()
		taskRepo.On("ListByLicense", mock.Anything, licenseUID).Return(tasks, nil)

		got, err := svc.ListTasks(context.Background(), licenseUID, "")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("filters by client", func(t *testing.T) {
		svc, taskRepo, _, _ := setupTaskService()
		taskRepo.On("ListByLicense", mock.Anything, licenseUID).Return(tasks, nil)

		got, err := svc.ListTasks(context.Background(), licenseUID, clientA)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, task := range got {
			assert.Equal(t, clientA, task.ClientUID)
		}
	})

	t.Run("missing license UID", func(t *testing.T) {
		svc, _, _, _ := setupTaskService()
		_, err := svc.ListTasks(context.Background(), "", "")
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
	})
}

func TestTaskService_GetTaskSchedule(t *testing.T) {
	taskUID := uuid.New().String()
	licenseUID := uuid.New().String()

	task := &models.Task{
		UID:        taskUID,
		LicenseUID: licenseUID,
		Title:      "MVA-melding",
		Frequency:  models.FrequencyMonthly,
		StartDate:  time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:     models.TaskStatusOpen,
	}

	t.Run("returns occurrences with the default limit", func(t *testing.T) {
		svc, taskRepo, _, _ := setupTaskService()
		taskRepo.On("Get", mock.Anything, taskUID).Return(task, nil)

		occurrences, err := svc.GetTaskSchedule(context.Background(), taskUID, licenseUID,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 0)
		require.NoError(t, err)
		require.Len(t, occurrences, DefaultScheduleLimit)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), occurrences[0].DueDate)
		// January 31 plus one month lands on March 2 in a leap year.
		assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), occurrences[1].DueDate)
	})

	t.Run("respects the requested limit", func(t *testing.T) {
		svc, taskRepo, _, _ := setupTaskService()
		taskRepo.On("Get", mock.Anything, taskUID).Return(task, nil)

		occurrences, err := svc.GetTaskSchedule(context.Background(), taskUID, licenseUID,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 3)
		require.NoError(t, err)
		assert.Len(t, occurrences, 3)
	})

	t.Run("cross-license read reports not found", func(t *testing.T) {
		svc, taskRepo, _, _ := setupTaskService()
		taskRepo.On("Get", mock.Anything, taskUID).Return(task, nil)

		_, err := svc.GetTaskSchedule(context.Background(), taskUID, uuid.New().String(), time.Time{}, 0)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})
}

func TestTaskService_DeleteTasksByClient(t *testing.T) {
	clientUID := uuid.New().String()
	licenseUID := uuid.New().String()

	t.Run("deletes all tasks of the client", func(t *testing.T) {
		svc, taskRepo, _, messageBuilder := setupTaskService()

		taskA := &models.Task{UID: uuid.New().String(), ClientUID: clientUID, LicenseUID: licenseUID}
		taskB := &models.Task{UID: uuid.New().String(), ClientUID: clientUID, LicenseUID: licenseUID}

		taskRepo.On("ListByClient", mock.Anything, clientUID).Return([]*models.Task{taskA, taskB}, nil)
		for _, task := range []*models.Task{taskA, taskB} {
			taskRepo.On("GetWithRevision", mock.Anything, task.UID).Return(task, uint64(1), nil)
			taskRepo.On("Delete", mock.Anything, task.UID, uint64(1)).Return(nil)
			messageBuilder.On("SendDeleteIndexTask", mock.Anything, task.UID).Return(nil)
			messageBuilder.On("SendDeleteAllAccessTask", mock.Anything, task.UID).Return(nil)
		}

		err := svc.DeleteTasksByClient(context.Background(), clientUID, licenseUID)
		require.NoError(t, err)
		taskRepo.AssertExpectations(t)
		messageBuilder.AssertExpectations(t)
	})

	t.Run("skips tasks from other licenses", func(t *testing.T) {
		svc, taskRepo, _, _ := setupTaskService()

		taskRepo.On("ListByClient", mock.Anything, clientUID).Return([]*models.Task{
			{UID: uuid.New().String(), ClientUID: clientUID, LicenseUID: uuid.New().String()},
		}, nil)

		err := svc.DeleteTasksByClient(context.Background(), clientUID, licenseUID)
		require.NoError(t, err)
		taskRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing client UID", func(t *testing.T) {
		svc, _, _, _ := setupTaskService()
		err := svc.DeleteTasksByClient(context.Background(), "", licenseUID)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
	})

	t.Run("individual failure surfaces as internal error", func(t *testing.T) {
		svc, taskRepo, _, messageBuilder := setupTaskService()

		task := &models.Task{UID: uuid.New().String(), ClientUID: clientUID, LicenseUID: licenseUID}
		taskRepo.On("ListByClient", mock.Anything, clientUID).Return([]*models.Task{task}, nil)
		taskRepo.On("GetWithRevision", mock.Anything, task.UID).Return(task, uint64(1), nil)
		taskRepo.On("Delete", mock.Anything, task.UID, uint64(1)).Return(assert.AnError)

		err := svc.DeleteTasksByClient(context.Background(), clientUID, licenseUID)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeInternal, domain.GetErrorType(err))
		messageBuilder.AssertNotCalled(t, "SendDeleteIndexTask", mock.Anything, mock.Anything)
	})
}
