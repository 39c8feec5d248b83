// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/StianAK82/RegnskapSky-sub001/internal/logging"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/concurrent"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/utils"
	"github.com/google/uuid"
)

// DefaultScheduleLimit is the number of occurrences returned by a schedule
// preview when the caller doesn't ask for a specific count.
const DefaultScheduleLimit = 12

// TaskService implements the task CRUD operations and schedule previews.
type TaskService struct {
	taskRepository       domain.TaskRepository
	clientRepository     domain.ClientRepository
	messageSender        domain.TaskMessageSender
	occurrenceCalculator domain.OccurrenceCalculator
	config               ServiceConfig
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskRepository domain.TaskRepository,
	clientRepository domain.ClientRepository,
	messageSender domain.TaskMessageSender,
	occurrenceCalculator domain.OccurrenceCalculator,
	config ServiceConfig,
) *TaskService {
	return &TaskService{
		taskRepository:       taskRepository,
		clientRepository:     clientRepository,
		messageSender:        messageSender,
		occurrenceCalculator: occurrenceCalculator,
		config:               config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *TaskService) ServiceReady() bool {
	return s.taskRepository != nil &&
		s.clientRepository != nil &&
		s.messageSender != nil &&
		s.occurrenceCalculator != nil
}

func (s *TaskService) validateCreateTaskPayload(ctx context.Context, task *models.Task) error {
	if task == nil {
		return domain.NewValidationError("task payload is required")
	}
	if task.LicenseUID == "" {
		return domain.NewValidationError("license UID is required")
	}
	if task.ClientUID == "" {
		return domain.NewValidationError("client UID is required")
	}
	if strings.TrimSpace(task.Title) == "" {
		return domain.NewValidationError("title is required")
	}
	if task.StartDate.IsZero() {
		slog.WarnContext(ctx, "start date is missing from task payload")
		return domain.NewValidationError("start date is required")
	}
	if task.Status != "" && task.Status != models.TaskStatusOpen &&
		task.Status != models.TaskStatusPaused && task.Status != models.TaskStatusDone {
		return domain.NewValidationError("status must be one of open, paused, done")
	}

	return nil
}

// normalizeSchedule resolves the canonical frequency from the raw label and
// recomputes the next due date. The raw label is kept on the task so the
// user's original wording survives round trips.
func (s *TaskService) normalizeSchedule(task *models.Task) error {
	label := task.FrequencyLabel
	if label == "" {
		label = string(task.Frequency)
	}
	task.Frequency = models.NormalizeFrequency(label)

	nextDue, err := s.occurrenceCalculator.NextOccurrence(task.Frequency, task.StartDate, time.Time{})
	if err != nil {
		return err
	}
	task.NextDue = utils.TimePtr(nextDue)

	return nil
}

// guardLicense hides resources belonging to other licenses. Cross-tenant
// reads report not-found rather than forbidden so existence doesn't leak.
func guardLicense(resourceLicenseUID, callerLicenseUID, message string) error {
	if callerLicenseUID == "" || resourceLicenseUID != callerLicenseUID {
		return domain.NewNotFoundError(message)
	}
	return nil
}

// CreateTask creates a new recurring task for a client.
func (s *TaskService) CreateTask(ctx context.Context, taskReq *models.Task) (*models.Task, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if err := s.validateCreateTaskPayload(ctx, taskReq); err != nil {
		return nil, err
	}

	// The referenced client must exist and belong to the caller's license.
	client, err := s.clientRepository.Get(ctx, taskReq.ClientUID)
	if err != nil {
		slog.ErrorContext(ctx, "error getting client for task", logging.ErrKey, err)
		return nil, err
	}
	if err := guardLicense(client.LicenseUID, taskReq.LicenseUID, "client not found"); err != nil {
		slog.WarnContext(ctx, "client belongs to another license", "client_uid", taskReq.ClientUID)
		return nil, err
	}

	if err := s.normalizeSchedule(taskReq); err != nil {
		return nil, err
	}

	taskReq.UID = uuid.New().String()
	if taskReq.Status == "" {
		taskReq.Status = models.TaskStatusOpen
	}
	now := time.Now().UTC()
	taskReq.CreatedAt = utils.TimePtr(now)
	taskReq.UpdatedAt = utils.TimePtr(now)

	if err := s.taskRepository.Create(ctx, taskReq); err != nil {
		slog.ErrorContext(ctx, "error creating task", logging.ErrKey, err)
		return nil, err
	}

	// Use WorkerPool for concurrent NATS message sending
	pool := concurrent.NewWorkerPool(2) // 2 messages to send
	messages := []func() error{
		func() error {
			return s.messageSender.SendIndexTask(ctx, models.ActionCreated, *taskReq)
		},
		func() error {
			return s.messageSender.SendUpdateAccessTask(ctx, models.TaskAccessMessage{
				UID:        taskReq.UID,
				LicenseUID: taskReq.LicenseUID,
				ClientUID:  taskReq.ClientUID,
				Assignee:   taskReq.AssigneeEmail,
			})
		},
	}

	if err := pool.Run(ctx, messages...); err != nil {
		slog.ErrorContext(ctx, "failed to send NATS messages", logging.ErrKey, err)
		// Don't fail the operation if messaging fails
	}

	return taskReq, nil
}

// GetTask returns a task along with its revision for ETag purposes.
func (s *TaskService) GetTask(ctx context.Context, uid, licenseUID string) (*models.Task, string, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, "", domain.NewUnavailableError("service not initialized")
	}

	task, revision, err := s.taskRepository.GetWithRevision(ctx, uid)
	if err != nil {
		slog.ErrorContext(ctx, "error getting task", logging.ErrKey, err)
		return nil, "", err
	}
	if err := guardLicense(task.LicenseUID, licenseUID, "task not found"); err != nil {
		slog.WarnContext(ctx, "task belongs to another license", "task_uid", uid)
		return nil, "", err
	}

	return task, strconv.FormatUint(revision, 10), nil
}

// UpdateTask updates a task, re-resolving its schedule from the (possibly
// changed) frequency label and start date.
func (s *TaskService) UpdateTask(ctx context.Context, taskReq *models.Task, revision uint64) (*models.Task, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if taskReq == nil || taskReq.UID == "" {
		slog.WarnContext(ctx, "task UID is required")
		return nil, domain.NewValidationError("task UID is required for update")
	}

	existing, existingRevision, err := s.taskRepository.GetWithRevision(ctx, taskReq.UID)
	if err != nil {
		slog.ErrorContext(ctx, "error getting task from store", logging.ErrKey, err)
		return nil, err
	}
	if err := guardLicense(existing.LicenseUID, taskReq.LicenseUID, "task not found"); err != nil {
		slog.WarnContext(ctx, "task belongs to another license", "task_uid", taskReq.UID)
		return nil, err
	}

	if s.config.SkipEtagValidation {
		// If skipping the Etag validation, use the key revision from the store.
		revision = existingRevision
	}

	if err := s.validateCreateTaskPayload(ctx, taskReq); err != nil {
		return nil, err
	}

	// Immutable fields come from the stored task.
	taskReq.ClientUID = existing.ClientUID
	taskReq.CreatedAt = existing.CreatedAt

	if err := s.normalizeSchedule(taskReq); err != nil {
		return nil, err
	}
	taskReq.UpdatedAt = utils.TimePtr(time.Now().UTC())

	if err := s.taskRepository.Update(ctx, taskReq, revision); err != nil {
		slog.ErrorContext(ctx, "error updating task", logging.ErrKey, err)
		return nil, err
	}

	// Use WorkerPool for concurrent NATS message sending
	pool := concurrent.NewWorkerPool(2) // 2 messages to send
	messages := []func() error{
		func() error {
			return s.messageSender.SendIndexTask(ctx, models.ActionUpdated, *taskReq)
		},
		func() error {
			return s.messageSender.SendUpdateAccessTask(ctx, models.TaskAccessMessage{
				UID:        taskReq.UID,
				LicenseUID: taskReq.LicenseUID,
				ClientUID:  taskReq.ClientUID,
				Assignee:   taskReq.AssigneeEmail,
			})
		},
	}

	if err := pool.Run(ctx, messages...); err != nil {
		slog.ErrorContext(ctx, "failed to send NATS messages", logging.ErrKey, err)
		// Don't fail the operation if messaging fails
	}

	return taskReq, nil
}

// DeleteTask deletes a task.
func (s *TaskService) DeleteTask(ctx context.Context, uid, licenseUID string, revision uint64) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return domain.NewUnavailableError("service not initialized")
	}

	existing, existingRevision, err := s.taskRepository.GetWithRevision(ctx, uid)
	if err != nil {
		slog.ErrorContext(ctx, "error getting task from store", logging.ErrKey, err)
		return err
	}
	if err := guardLicense(existing.LicenseUID, licenseUID, "task not found"); err != nil {
		slog.WarnContext(ctx, "task belongs to another license", "task_uid", uid)
		return err
	}

	if s.config.SkipEtagValidation {
		revision = existingRevision
	}

	if err := s.taskRepository.Delete(ctx, uid, revision); err != nil {
		slog.ErrorContext(ctx, "error deleting task", logging.ErrKey, err)
		return err
	}

	// Use WorkerPool for concurrent NATS deletion message sending
	pool := concurrent.NewWorkerPool(2) // 2 messages to send
	messages := []func() error{
		func() error {
			return s.messageSender.SendDeleteIndexTask(ctx, uid)
		},
		func() error {
			return s.messageSender.SendDeleteAllAccessTask(ctx, uid)
		},
	}

	if err := pool.Run(ctx, messages...); err != nil {
		slog.ErrorContext(ctx, "failed to send NATS deletion messages", logging.ErrKey, err)
		// Don't fail the operation if messaging fails - the deletion already succeeded
	}

	return nil
}

// ListTasks returns the tasks of the caller's license, optionally filtered
// to a single client.
func (s *TaskService) ListTasks(ctx context.Context, licenseUID, clientUID string) ([]*models.Task, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if licenseUID == "" {
		return nil, domain.NewValidationError("license UID is required")
	}

	tasks, err := s.taskRepository.ListByLicense(ctx, licenseUID)
	if err != nil {
		slog.ErrorContext(ctx, "error listing tasks", logging.ErrKey, err)
		return nil, err
	}

	if clientUID == "" {
		return tasks, nil
	}

	filtered := make([]*models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ClientUID == clientUID {
			filtered = append(filtered, task)
		}
	}

	return filtered, nil
}

// GetTaskSchedule returns the next occurrences of a task from a reference
// date. A zero fromDate means "now"; a non-positive limit uses the default.
func (s *TaskService) GetTaskSchedule(ctx context.Context, uid, licenseUID string, fromDate time.Time, limit int) ([]models.TaskOccurrence, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	task, err := s.taskRepository.Get(ctx, uid)
	if err != nil {
		slog.ErrorContext(ctx, "error getting task", logging.ErrKey, err)
		return nil, err
	}
	if err := guardLicense(task.LicenseUID, licenseUID, "task not found"); err != nil {
		slog.WarnContext(ctx, "task belongs to another license", "task_uid", uid)
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultScheduleLimit
	}

	occurrences, err := s.occurrenceCalculator.OccurrencesFromDate(task, fromDate, limit)
	if err != nil {
		slog.ErrorContext(ctx, "error calculating task occurrences", logging.ErrKey, err)
		return nil, err
	}

	return occurrences, nil
}

// DeleteTasksByClient removes all tasks that belong to a client. It is used
// by the client-deleted cascade and keeps going past individual failures.
func (s *TaskService) DeleteTasksByClient(ctx context.Context, clientUID, licenseUID string) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return domain.NewUnavailableError("service not initialized")
	}

	if clientUID == "" {
		return domain.NewValidationError("client UID is required")
	}

	tasks, err := s.taskRepository.ListByClient(ctx, clientUID)
	if err != nil {
		slog.ErrorContext(ctx, "error listing tasks for client", logging.ErrKey, err)
		return err
	}

	var deletions []func() error
	for _, task := range tasks {
		if licenseUID != "" && task.LicenseUID != licenseUID {
			continue
		}
		deletions = append(deletions, func() error {
			_, revision, err := s.taskRepository.GetWithRevision(ctx, task.UID)
			if err != nil {
				return err
			}
			if err := s.taskRepository.Delete(ctx, task.UID, revision); err != nil {
				return err
			}

			pool := concurrent.NewWorkerPool(2)
			messages := []func() error{
				func() error {
					return s.messageSender.SendDeleteIndexTask(ctx, task.UID)
				},
				func() error {
					return s.messageSender.SendDeleteAllAccessTask(ctx, task.UID)
				},
			}
			if err := pool.Run(ctx, messages...); err != nil {
				slog.ErrorContext(ctx, "failed to send NATS deletion messages", logging.ErrKey, err,
					"task_uid", task.UID)
				// Don't fail the cascade if messaging fails
			}
			return nil
		})
	}

	if len(deletions) == 0 {
		return nil
	}

	pool := concurrent.NewWorkerPool(4)
	if errs := pool.RunAll(ctx, deletions...); len(errs) > 0 {
		for _, err := range errs {
			slog.ErrorContext(ctx, "error deleting task during client cascade", logging.ErrKey, err,
				"client_uid", clientUID)
		}
		return domain.NewInternalError("failed to delete all tasks for client", errs[0])
	}

	slog.InfoContext(ctx, "deleted tasks for client", "client_uid", clientUID, "count", len(deletions))

	return nil
}
