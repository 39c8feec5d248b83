// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/StianAK82/RegnskapSky-sub001/cmd/task-api/service"
	tasksvc "github.com/StianAK82/RegnskapSky-sub001/gen/task_service"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
)

// CreateClient creates a new client.
func (s *TasksAPI) CreateClient(ctx context.Context, payload *tasksvc.CreateClientPayload) (*tasksvc.Client, error) {
	if payload == nil {
		return nil, handleError(domain.NewValidationError("payload is empty"))
	}

	clientReq, err := service.ConvertCreateClientPayloadToDomain(payload, licenseFromContext(ctx))
	if err != nil {
		return nil, handleError(err)
	}

	client, err := s.clientService.CreateClient(ctx, clientReq)
	if err != nil {
		return nil, handleError(err)
	}

	return service.ConvertClientToResponse(client), nil
}

// GetClient gets a single client.
func (s *TasksAPI) GetClient(ctx context.Context, payload *tasksvc.GetClientPayload) (*tasksvc.GetClientResult, error) {
	if payload == nil || payload.UID == "" {
		return nil, handleError(domain.NewValidationError("validation failed"))
	}

	client, etag, err := s.clientService.GetClient(ctx, payload.UID, licenseFromContext(ctx))
	if err != nil {
		return nil, handleError(err)
	}

	return &tasksvc.GetClientResult{
		Client: service.ConvertClientToResponse(client),
		Etag:   &etag,
	}, nil
}

// UpdateClient updates a client.
func (s *TasksAPI) UpdateClient(ctx context.Context, payload *tasksvc.UpdateClientPayload) (*tasksvc.Client, error) {
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

	clientReq, err := service.ConvertUpdateClientPayloadToDomain(payload, licenseFromContext(ctx))
	if err != nil {
		return nil, handleError(err)
	}

	client, err := s.clientService.UpdateClient(ctx, clientReq, revision)
	if err != nil {
		return nil, handleError(err)
	}

	return service.ConvertClientToResponse(client), nil
}

// DeleteClient deletes a client and all of its tasks.
func (s *TasksAPI) DeleteClient(ctx context.Context, payload *tasksvc.DeleteClientPayload) error {
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

	err := s.clientService.DeleteClient(ctx, payload.UID, licenseFromContext(ctx), revision)
	if err != nil {
		return handleError(err)
	}

	return nil
}

// ListClients lists the clients of the caller's license.
func (s *TasksAPI) ListClients(ctx context.Context, _ *tasksvc.ListClientsPayload) ([]*tasksvc.Client, error) {
	clients, err := s.clientService.ListClients(ctx, licenseFromContext(ctx))
	if err != nil {
		return nil, handleError(err)
	}

	return service.ConvertClientsToResponse(clients), nil
}
