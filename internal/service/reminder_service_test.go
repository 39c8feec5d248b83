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
	"github.com/StianAK82/RegnskapSky-sub001/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupReminderService(config ReminderConfig) (*ReminderService, *mocks.MockTaskRepository, *mocks.MockClientRepository, *mocks.MockEmailService) {
	taskRepo := &mocks.MockTaskRepository{}
	clientRepo := &mocks.MockClientRepository{}
	emailService := &mocks.MockEmailService{}

	svc := NewReminderService(taskRepo, clientRepo, emailService, config)

	return svc, taskRepo, clientRepo, emailService
}

func TestNewReminderService_Defaults(t *testing.T) {
	svc, _, _, _ := setupReminderService(ReminderConfig{})
	assert.Equal(t, DefaultReminderSchedule, svc.config.Schedule)
	assert.Equal(t, DefaultReminderLookaheadDays, svc.config.LookaheadDays)

	svc, _, _, _ = setupReminderService(ReminderConfig{Schedule: "30 6 * * *", LookaheadDays: 7})
	assert.Equal(t, "30 6 * * *", svc.config.Schedule)
	assert.Equal(t, 7, svc.config.LookaheadDays)
}

func TestReminderService_StartStop(t *testing.T) {
	t.Run("starts and stops cleanly", func(t *testing.T) {
		svc, _, _, _ := setupReminderService(ReminderConfig{})

		err := svc.Start(context.Background())
		require.NoError(t, err)
		svc.Stop()
	})

	t.Run("invalid schedule", func(t *testing.T) {
		svc, _, _, _ := setupReminderService(ReminderConfig{Schedule: "not-a-cron-spec"})

		err := svc.Start(context.Background())
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeInternal, domain.GetErrorType(err))
	})

	t.Run("not ready", func(t *testing.T) {
		svc := NewReminderService(nil, nil, nil, ReminderConfig{})

		err := svc.Start(context.Background())
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeUnavailable, domain.GetErrorType(err))
	})
}

func TestReminderService_Sweep(t *testing.T) {
	clientUID := uuid.New().String()
	licenseUID := uuid.New().String()

	today := time.Now().UTC().Truncate(24 * time.Hour)

	openTask := func(due time.Time) *models.Task {
		return &models.Task{
			UID:           uuid.New().String(),
			LicenseUID:    licenseUID,
			ClientUID:     clientUID,
			Title:         "MVA-melding",
			Frequency:     models.FrequencyBiMonthly,
			StartDate:     today.AddDate(0, -2, 0),
			NextDue:       utils.TimePtr(due),
			AssigneeEmail: "kari@fjordvik.no",
			Status:        models.TaskStatusOpen,
		}
	}

	t.Run("sends reminders for tasks due inside the window", func(t *testing.T) {
		svc, taskRepo, clientRepo, emailService := setupReminderService(ReminderConfig{LookaheadDays: 3})

		dueTomorrow := openTask(today.AddDate(0, 0, 1))
		taskRepo.On("ListAll", mock.Anything).Return([]*models.Task{dueTomorrow}, nil)
		clientRepo.On("Get", mock.Anything, clientUID).Return(&models.Client{
			UID:  clientUID,
			Name: "Fjordvik AS",
		}, nil)
		emailService.On("SendTaskReminder", mock.Anything, mock.MatchedBy(func(reminder domain.EmailTaskReminder) bool {
			return reminder.TaskUID == dueTomorrow.UID &&
				reminder.RecipientEmail == "kari@fjordvik.no" &&
				reminder.ClientName == "Fjordvik AS"
		})).Return(nil)

		err := svc.Sweep(context.Background())
		require.NoError(t, err)
		taskRepo.AssertExpectations(t)
		clientRepo.AssertExpectations(t)
		emailService.AssertExpectations(t)
	})

	t.Run("skips tasks outside the window, closed tasks, and tasks without assignee", func(t *testing.T) {
		svc, taskRepo, _, emailService := setupReminderService(ReminderConfig{LookaheadDays: 3})

		dueFarAway := openTask(today.AddDate(0, 0, 10))
		overdue := openTask(today.AddDate(0, 0, -1))
		paused := openTask(today.AddDate(0, 0, 1))
		paused.Status = models.TaskStatusPaused
		noAssignee := openTask(today.AddDate(0, 0, 1))
		noAssignee.AssigneeEmail = ""
		noDueDate := openTask(today)
		noDueDate.NextDue = nil

		taskRepo.On("ListAll", mock.Anything).Return([]*models.Task{
			dueFarAway, overdue, paused, noAssignee, noDueDate,
		}, nil)

		err := svc.Sweep(context.Background())
		require.NoError(t, err)
		emailService.AssertNotCalled(t, "SendTaskReminder", mock.Anything, mock.Anything)
	})

	t.Run("client lookup is cached per client", func(t *testing.T) {
		svc, taskRepo, clientRepo, emailService := setupReminderService(ReminderConfig{LookaheadDays: 3})

		taskA := openTask(today)
		taskB := openTask(today.AddDate(0, 0, 2))
		taskRepo.On("ListAll", mock.Anything).Return([]*models.Task{taskA, taskB}, nil)
		clientRepo.On("Get", mock.Anything, clientUID).Return(&models.Client{
			UID:  clientUID,
			Name: "Fjordvik AS",
		}, nil).Once()
		emailService.On("SendTaskReminder", mock.Anything, mock.AnythingOfType("domain.EmailTaskReminder")).Return(nil).Times(2)

		err := svc.Sweep(context.Background())
		require.NoError(t, err)
		clientRepo.AssertExpectations(t)
		emailService.AssertExpectations(t)
	})

	t.Run("client lookup failure doesn't stop the reminder", func(t *testing.T) {
		svc, taskRepo, clientRepo, emailService := setupReminderService(ReminderConfig{LookaheadDays: 3})

		task := openTask(today)
		taskRepo.On("ListAll", mock.Anything).Return([]*models.Task{task}, nil)
		clientRepo.On("Get", mock.Anything, clientUID).Return(nil, assert.AnError)
		emailService.On("SendTaskReminder", mock.Anything, mock.MatchedBy(func(reminder domain.EmailTaskReminder) bool {
			return reminder.ClientName == ""
		})).Return(nil)

		err := svc.Sweep(context.Background())
		require.NoError(t, err)
		emailService.AssertExpectations(t)
	})

	t.Run("send failure doesn't fail the sweep", func(t *testing.T) {
		svc, taskRepo, clientRepo, emailService := setupReminderService(ReminderConfig{LookaheadDays: 3})

		task := openTask(today)
		taskRepo.On("ListAll", mock.Anything).Return([]*models.Task{task}, nil)
		clientRepo.On("Get", mock.Anything, clientUID).Return(&models.Client{UID: clientUID, Name: "Fjordvik AS"}, nil)
		emailService.On("SendTaskReminder", mock.Anything, mock.AnythingOfType("domain.EmailTaskReminder")).Return(assert.AnError)

		err := svc.Sweep(context.Background())
		require.NoError(t, err)
	})

	t.Run("list failure propagates", func(t *testing.T) {
		svc, taskRepo, _, _ := setupReminderService(ReminderConfig{LookaheadDays: 3})
		taskRepo.On("ListAll", mock.Anything).Return(nil, assert.AnError)

		err := svc.Sweep(context.Background())
		require.Error(t, err)
	})
}
