// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	tasksvc "github.com/StianAK82/RegnskapSky-sub001/gen/task_service"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/handlers"
	"github.com/StianAK82/RegnskapSky-sub001/internal/service"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/constants"
	"goa.design/goa/v3/security"
)

// TasksAPI implements the tasksvc.Service interface
type TasksAPI struct {
	authService   *service.AuthService
	taskService   *service.TaskService
	clientService *service.ClientService
	taskHandler   *handlers.TaskHandler
}

// NewTasksAPI creates a new TasksAPI.
func NewTasksAPI(
	authService *service.AuthService,
	taskService *service.TaskService,
	clientService *service.ClientService,
	taskHandler *handlers.TaskHandler,
) *TasksAPI {
	return &TasksAPI{
		authService:   authService,
		taskService:   taskService,
		clientService: clientService,
		taskHandler:   taskHandler,
	}
}

// ServiceReady checks if all the services are ready for use.
func (s *TasksAPI) ServiceReady() bool {
	return s.authService.ServiceReady() &&
		s.taskService.ServiceReady() &&
		s.clientService.ServiceReady()
}

// createResponse creates a response error based on the HTTP status code.
func createResponse(code int, err error) error {
	switch code {
	case http.StatusBadRequest:
		return &tasksvc.BadRequestError{
			Code:    strconv.Itoa(code),
			Message: err.Error(),
		}
	case http.StatusNotFound:
		return &tasksvc.NotFoundError{
			Code:    strconv.Itoa(code),
			Message: err.Error(),
		}
	case http.StatusConflict:
		return &tasksvc.ConflictError{
			Code:    strconv.Itoa(code),
			Message: err.Error(),
		}
	case http.StatusInternalServerError:
		return &tasksvc.InternalServerError{
			Code:    strconv.Itoa(code),
			Message: err.Error(),
		}
	case http.StatusServiceUnavailable:
		return &tasksvc.ServiceUnavailableError{
			Code:    strconv.Itoa(code),
			Message: err.Error(),
		}
	default:
		return nil
	}
}

// handleError converts a domain error into a response error.
func handleError(err error) error {
	switch domain.GetErrorType(err) {
	case domain.ErrorTypeValidation:
		return createResponse(http.StatusBadRequest, err)
	case domain.ErrorTypeNotFound:
		return createResponse(http.StatusNotFound, err)
	case domain.ErrorTypeConflict:
		return createResponse(http.StatusConflict, err)
	case domain.ErrorTypeUnavailable:
		return createResponse(http.StatusServiceUnavailable, err)
	default:
		return createResponse(http.StatusInternalServerError, err)
	}
}

// Readyz checks if the service is able to take inbound requests.
func (s *TasksAPI) Readyz(_ context.Context) ([]byte, error) {
	if !s.ServiceReady() {
		return nil, createResponse(http.StatusServiceUnavailable, domain.ErrServiceUnavailable)
	}
	return []byte("OK\n"), nil
}

// Livez checks if the service is alive.
func (s *TasksAPI) Livez(_ context.Context) ([]byte, error) {
	// This always returns as long as the service is still running. As this
	// endpoint is expected to be used as a Kubernetes liveness check, this
	// service must likewise self-detect non-recoverable errors and
	// self-terminate.
	return []byte("OK\n"), nil
}

// JWTAuth implements Auther interface for the JWT security scheme.
func (s *TasksAPI) JWTAuth(ctx context.Context, bearerToken string, _ *security.JWTScheme) (context.Context, error) {
	if !s.ServiceReady() {
		return nil, createResponse(http.StatusServiceUnavailable, domain.ErrServiceUnavailable)
	}

	// Parse the gateway-authorized principal from the token.
	principal, err := s.authService.ParsePrincipal(ctx, bearerToken, slog.Default())
	if err != nil {
		return ctx, err
	}

	// Return a new context containing the principal and license as values.
	ctx = context.WithValue(ctx, constants.PrincipalContextID, principal.Username)
	ctx = context.WithValue(ctx, constants.LicenseContextID, principal.LicenseUID)
	return ctx, nil
}

// licenseFromContext returns the license UID the JWTAuth handler stored in
// the request context.
func licenseFromContext(ctx context.Context) string {
	license, _ := ctx.Value(constants.LicenseContextID).(string)
	return license
}
