// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/cmd/task-api/service"
	tasksvc "github.com/StianAK82/RegnskapSky-sub001/gen/task_service"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/utils"
)

// CreateTask creates a new recurring task for a client.
func (s *TasksAPI) CreateTask(ctx context.Context, payload *tasksvc.CreateTaskPayload) (*tasksvc.Task, error) {
	if payload == nil {
		return nil, handleError(domain.NewValidationError("payload is empty"))
	}

	taskReq, err := service.ConvertCreateTaskPayloadToDomain(payload, licenseFromContext(ctx))
	if err != nil {
		return nil, handleError(err)
	}

	task, err := s.taskService.CreateTask(ctx, taskReq)
	if err != nil {
		return nil, handleError(err)
	}

	return service.ConvertTaskToResponse(task), nil
}

// GetTask gets a single task.
func (s *TasksAPI) GetTask(ctx context.Context, payload *tasksvc.GetTaskPayload) (*tasksvc.GetTaskResult, error) {
	if payload == nil || payload.UID == "" {
		return nil, handleError(domain.NewValidationError("validation failed"))
	}

	task, etag, err := s.taskService.GetTask(ctx, payload.UID, licenseFromContext(ctx))
	if err != nil {
		return nil, handleError(err)
	}

	return &tasksvc.GetTaskResult{
		Task: service.ConvertTaskToResponse(task),
		Etag: &etag,
	}, nil
}

// UpdateTask updates a task.
func (s *TasksAPI) UpdateTask(ctx context.Context, payload *tasksvc.UpdateTaskPayload) (*tasksvc.Task, error) {
	if payload == nil || payload.UID == "" {
		return nil, handleError(domain.NewValidationError("validation failed"))
	}

	var revision uint64
	if payload.Etag != nil {
		var err error
		revision, err = service.EtagValidator(payload.Etag)
		if err != nil {
			return nil, handleError(err)
		}
	}

	taskReq, err := service.ConvertUpdateTaskPayloadToDomain(payload, licenseFromContext(ctx))
	if err != nil {
		return nil, handleError(err)
	}

	task, err := s.taskService.UpdateTask(ctx, taskReq, revision)
	if err != nil {
		return nil, handleError(err)
	}

	return service.ConvertTaskToResponse(task), nil
}

// DeleteTask deletes a task.
func (s *TasksAPI) DeleteTask(ctx context.Context, payload *tasksvc.DeleteTaskPayload) error {
	if payload == nil || payload.UID == "" {
		return handleError(domain.NewValidationError("validation failed"))
	}

	var revision uint64
	if payload.Etag != nil {
		var err error
		revision, err = service.EtagValidator(payload.Etag)
		if err != nil {
			return handleError(err)
		}
	}

	err := s.taskService.DeleteTask(ctx, payload.UID, licenseFromContext(ctx), revision)
	if err != nil {
		return handleError(err)
	}

	return nil
}

// ListTasks lists the tasks of the caller's license.
func (s *TasksAPI) ListTasks(ctx context.Context, payload *tasksvc.ListTasksPayload) ([]*tasksvc.Task, error) {
	if payload == nil {
		return nil, handleError(domain.NewValidationError("payload is empty"))
	}

	tasks, err := s.taskService.ListTasks(ctx, licenseFromContext(ctx), utils.StringValue(payload.ClientUID))
	if err != nil {
		return nil, handleError(err)
	}

	return service.ConvertTasksToResponse(tasks), nil
}

// GetTaskSchedule gets the upcoming due dates of a task.
func (s *TasksAPI) GetTaskSchedule(ctx context.Context, payload *tasksvc.GetTaskSchedulePayload) ([]*tasksvc.TaskOccurrence, error) {
	if payload == nil || payload.UID == "" {
		return nil, handleError(domain.NewValidationError("validation failed"))
	}

	var fromDate time.Time
	if payload.FromDate != nil {
		parsed, err := time.Parse(time.RFC3339, *payload.FromDate)
		if err != nil {
			return nil, handleError(domain.NewValidationError("invalid date format, expected RFC3339", err))
		}
		fromDate = parsed
	}

	occurrences, err := s.taskService.GetTaskSchedule(ctx, payload.UID, licenseFromContext(ctx), fromDate, utils.IntValue(payload.Limit))
	if err != nil {
		return nil, handleError(err)
	}

	return service.ConvertOccurrencesToResponse(occurrences), nil
}
