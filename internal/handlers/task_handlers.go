// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

// Package handlers contains the NATS message handlers for the task service.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/StianAK82/RegnskapSky-sub001/internal/logging"
	"github.com/StianAK82/RegnskapSky-sub001/internal/service"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/utils"
	"github.com/google/uuid"
)

// TaskHandler handles task-related messages and events.
type TaskHandler struct {
	taskService    *service.TaskService
	taskRepository domain.TaskRepository
}

func NewTaskHandler(
	taskService *service.TaskService,
	taskRepository domain.TaskRepository,
) *TaskHandler {
	return &TaskHandler{
		taskService:    taskService,
		taskRepository: taskRepository,
	}
}

func (s *TaskHandler) HandlerReady() bool {
	return s.taskService.ServiceReady() &&
		s.taskRepository != nil
}

// HandleMessage implements domain.MessageHandler interface
func (s *TaskHandler) HandleMessage(ctx context.Context, msg domain.Message) {
	subject := msg.Subject()
	ctx = logging.AppendCtx(ctx, slog.String("subject", subject))
	slog.DebugContext(ctx, "handling NATS message")

	var response []byte
	var err error

	handlers := map[string]func(ctx context.Context, msg domain.Message) ([]byte, error){
		models.TaskGetTitleSubject:  s.HandleTaskGetTitle,
		models.ClientDeletedSubject: s.HandleClientDeleted,
	}

	handler, ok := handlers[subject]
	if !ok {
		slog.WarnContext(ctx, "unknown subject")
		if msg.HasReply() {
			err = msg.Respond(nil)
			if err != nil {
				slog.ErrorContext(ctx, "error responding to NATS message", logging.ErrKey, err)
			}
		}
		return
	}

	response, err = handler(ctx, msg)
	if err != nil {
		slog.ErrorContext(ctx, "error handling message",
			logging.ErrKey, err,
		)
		if msg.HasReply() {
			err = msg.Respond(nil)
			if err != nil {
				slog.ErrorContext(ctx, "error responding to NATS message", logging.ErrKey, err)
			}
		}
		return
	}

	if msg.HasReply() {
		err = msg.Respond(response)
		if err != nil {
			slog.ErrorContext(ctx, "error responding to NATS message", logging.ErrKey, err)
			return
		}
		slog.DebugContext(ctx, "responded to NATS message", "response", response)
	} else {
		slog.DebugContext(ctx, "handled NATS message (no reply expected)")
	}
}

func (s *TaskHandler) handleTaskGetAttribute(ctx context.Context, msg domain.Message, getAttribute string) ([]byte, error) {
	if !s.HandlerReady() {
		slog.ErrorContext(ctx, "NATS KV store not initialized")
		return nil, fmt.Errorf("NATS KV store not initialized")
	}

	taskUID := string(msg.Data())

	ctx = logging.AppendCtx(ctx, slog.String("task_uid", taskUID))

	// Validate that the task UID is a valid UUID.
	_, err := uuid.Parse(taskUID)
	if err != nil {
		slog.ErrorContext(ctx, "error parsing task UID", logging.ErrKey, err)
		return nil, err
	}

	task, err := s.taskRepository.Get(ctx, taskUID)
	if err != nil {
		slog.ErrorContext(ctx, "error getting task from NATS KV", logging.ErrKey, err)
		return nil, err
	}

	value, ok := utils.FieldByTag(task, "json", getAttribute)
	if !ok {
		slog.ErrorContext(ctx, "error getting task attribute", logging.ErrKey, fmt.Errorf("attribute %s not found", getAttribute))
		return nil, fmt.Errorf("attribute %s not found", getAttribute)
	}

	strValue, ok := value.(string)
	if !ok {
		slog.ErrorContext(ctx, "task attribute is not a string", logging.ErrKey, fmt.Errorf("attribute %s is not a string", getAttribute))
		return nil, fmt.Errorf("attribute %s is not a string", getAttribute)
	}

	return []byte(strValue), nil
}

// HandleTaskGetTitle is the message handler for the task-get-title subject.
func (s *TaskHandler) HandleTaskGetTitle(ctx context.Context, msg domain.Message) ([]byte, error) {
	return s.handleTaskGetAttribute(ctx, msg, "title")
}

// HandleClientDeleted is the message handler for the client-deleted subject.
// It cascade-deletes all tasks that belonged to the deleted client.
func (s *TaskHandler) HandleClientDeleted(ctx context.Context, msg domain.Message) ([]byte, error) {
	if !s.HandlerReady() {
		slog.ErrorContext(ctx, "service not ready")
		return nil, fmt.Errorf("service not ready")
	}

	var clientDeletedMsg models.ClientDeletedMessage
	err := json.Unmarshal(msg.Data(), &clientDeletedMsg)
	if err != nil {
		slog.ErrorContext(ctx, "error unmarshaling client deleted message", logging.ErrKey, err)
		return nil, err
	}

	if clientDeletedMsg.ClientUID == "" {
		slog.WarnContext(ctx, "client UID is empty in deletion message")
		return nil, fmt.Errorf("client UID is required")
	}

	ctx = logging.AppendCtx(ctx, slog.String("client_uid", clientDeletedMsg.ClientUID))
	slog.InfoContext(ctx, "processing client deletion, cleaning up tasks")

	err = s.taskService.DeleteTasksByClient(ctx, clientDeletedMsg.ClientUID, clientDeletedMsg.LicenseUID)
	if err != nil {
		slog.ErrorContext(ctx, "error cleaning up tasks for deleted client",
			logging.ErrKey, err,
			logging.PriorityCritical())
		return nil, err
	}

	slog.InfoContext(ctx, "successfully cleaned up tasks for deleted client")
	return []byte("success"), nil
}
