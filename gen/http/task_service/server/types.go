// Code generated by goa v3.23.1, DO NOT EDIT.
//
// Task Service HTTP server types
//
// Command:
// $ goa gen github.com/StianAK82/RegnskapSky-sub001/design

package server

import (
	"unicode/utf8"

	taskservice "github.com/StianAK82/RegnskapSky-sub001/gen/task_service"
	goa "goa.design/goa/v3/pkg"
)

// CreateTaskRequestBody is the type of the "Task Service" service
// "create-task" endpoint HTTP request body.
type CreateTaskRequestBody struct {
	// The unique identifier of the client
	ClientUID *string `form:"client_uid,omitempty" json:"client_uid,omitempty" xml:"client_uid,omitempty"`
	// The title of the task
	Title *string `form:"title,omitempty" json:"title,omitempty" xml:"title,omitempty"`
	// The description of the task
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// The frequency as written by the user, in Norwegian or English
	FrequencyLabel *string `form:"frequency_label,omitempty" json:"frequency_label,omitempty" xml:"frequency_label,omitempty"`
	// The start date anchoring the task schedule
	StartDate *string `form:"start_date,omitempty" json:"start_date,omitempty" xml:"start_date,omitempty"`
	// The email of the accountant responsible for the task
	AssigneeEmail *string `form:"assignee_email,omitempty" json:"assignee_email,omitempty" xml:"assignee_email,omitempty"`
	// The status of the task
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
}

// UpdateTaskRequestBody is the type of the "Task Service" service
// "update-task" endpoint HTTP request body.
type UpdateTaskRequestBody struct {
	// The unique identifier of the client
	ClientUID *string `form:"client_uid,omitempty" json:"client_uid,omitempty" xml:"client_uid,omitempty"`
	// The title of the task
	Title *string `form:"title,omitempty" json:"title,omitempty" xml:"title,omitempty"`
	// The description of the task
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// The frequency as written by the user, in Norwegian or English
	FrequencyLabel *string `form:"frequency_label,omitempty" json:"frequency_label,omitempty" xml:"frequency_label,omitempty"`
	// The start date anchoring the task schedule
	StartDate *string `form:"start_date,omitempty" json:"start_date,omitempty" xml:"start_date,omitempty"`
	// The email of the accountant responsible for the task
	AssigneeEmail *string `form:"assignee_email,omitempty" json:"assignee_email,omitempty" xml:"assignee_email,omitempty"`
	// The status of the task
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
}

// CreateClientRequestBody is the type of the "Task Service" service
// "create-client" endpoint HTTP request body.
type CreateClientRequestBody struct {
	// The name of the client
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// The Norwegian organization number of the client
	OrgNumber *string `form:"org_number,omitempty" json:"org_number,omitempty" xml:"org_number,omitempty"`
	// The contact person of the client
	ContactName *string `form:"contact_name,omitempty" json:"contact_name,omitempty" xml:"contact_name,omitempty"`
	// The contact email of the client
	ContactEmail *string `form:"contact_email,omitempty" json:"contact_email,omitempty" xml:"contact_email,omitempty"`
}

// UpdateClientRequestBody is the type of the "Task Service" service
// "update-client" endpoint HTTP request body.
type UpdateClientRequestBody struct {
	// The name of the client
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// The Norwegian organization number of the client
	OrgNumber *string `form:"org_number,omitempty" json:"org_number,omitempty" xml:"org_number,omitempty"`
	// The contact person of the client
	ContactName *string `form:"contact_name,omitempty" json:"contact_name,omitempty" xml:"contact_name,omitempty"`
	// The contact email of the client
	ContactEmail *string `form:"contact_email,omitempty" json:"contact_email,omitempty" xml:"contact_email,omitempty"`
}

// CreateTaskResponseBody is the type of the "Task Service" service
// "create-task" endpoint HTTP response body.
type CreateTaskResponseBody struct {
	// The unique identifier of the task
	UID *string `form:"uid,omitempty" json:"uid,omitempty" xml:"uid,omitempty"`
	// The unique identifier of the client
	ClientUID *string `form:"client_uid,omitempty" json:"client_uid,omitempty" xml:"client_uid,omitempty"`
	// The title of the task
	Title *string `form:"title,omitempty" json:"title,omitempty" xml:"title,omitempty"`
	// The description of the task
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// The frequency as written by the user, in Norwegian or English
	FrequencyLabel *string `form:"frequency_label,omitempty" json:"frequency_label,omitempty" xml:"frequency_label,omitempty"`
	// The canonical frequency of the task
	Frequency *string `form:"frequency,omitempty" json:"frequency,omitempty" xml:"frequency,omitempty"`
	// The start date anchoring the task schedule
	StartDate *string `form:"start_date,omitempty" json:"start_date,omitempty" xml:"start_date,omitempty"`
	// The next due date of the task
	NextDue *string `form:"next_due,omitempty" json:"next_due,omitempty" xml:"next_due,omitempty"`
	// The email of the accountant responsible for the task
	AssigneeEmail *string `form:"assignee_email,omitempty" json:"assignee_email,omitempty" xml:"assignee_email,omitempty"`
	// The status of the task
	Status string `form:"status" json:"status" xml:"status"`
	// The date and time the resource was created
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
	// The date and time the resource was last updated
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// GetTaskResponseBody is the type of the "Task Service" service "get-task"
// endpoint HTTP response body.
type GetTaskResponseBody TaskResponseBody

// UpdateTaskResponseBody is the type of the "Task Service" service
// "update-task" endpoint HTTP response body.
type UpdateTaskResponseBody struct {
	// The unique identifier of the task
	UID *string `form:"uid,omitempty" json:"uid,omitempty" xml:"uid,omitempty"`
	// The unique identifier of the client
	ClientUID *string `form:"client_uid,omitempty" json:"client_uid,omitempty" xml:"client_uid,omitempty"`
	// The title of the task
	Title *string `form:"title,omitempty" json:"title,omitempty" xml:"title,omitempty"`
	// The description of the task
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// The frequency as written by the user, in Norwegian or English
	FrequencyLabel *string `form:"frequency_label,omitempty" json:"frequency_label,omitempty" xml:"frequency_label,omitempty"`
	// The canonical frequency of the task
	Frequency *string `form:"frequency,omitempty" json:"frequency,omitempty" xml:"frequency,omitempty"`
	// The start date anchoring the task schedule
	StartDate *string `form:"start_date,omitempty" json:"start_date,omitempty" xml:"start_date,omitempty"`
	// The next due date of the task
	NextDue *string `form:"next_due,omitempty" json:"next_due,omitempty" xml:"next_due,omitempty"`
	// The email of the accountant responsible for the task
	AssigneeEmail *string `form:"assignee_email,omitempty" json:"assignee_email,omitempty" xml:"assignee_email,omitempty"`
	// The status of the task
	Status string `form:"status" json:"status" xml:"status"`
	// The date and time the resource was created
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
	// The date and time the resource was last updated
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// ListTasksResponseBody is the type of the "Task Service" service "list-tasks"
// endpoint HTTP response body.
type ListTasksResponseBody []*TaskResponse

// GetTaskScheduleResponseBody is the type of the "Task Service" service
// "get-task-schedule" endpoint HTTP response body.
type GetTaskScheduleResponseBody []*TaskOccurrenceResponse

// CreateClientResponseBody is the type of the "Task Service" service
// "create-client" endpoint HTTP response body.
type CreateClientResponseBody struct {
	// The unique identifier of the client
	UID *string `form:"uid,omitempty" json:"uid,omitempty" xml:"uid,omitempty"`
	// The name of the client
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// The Norwegian organization number of the client
	OrgNumber *string `form:"org_number,omitempty" json:"org_number,omitempty" xml:"org_number,omitempty"`
	// The contact person of the client
	ContactName *string `form:"contact_name,omitempty" json:"contact_name,omitempty" xml:"contact_name,omitempty"`
	// The contact email of the client
	ContactEmail *string `form:"contact_email,omitempty" json:"contact_email,omitempty" xml:"contact_email,omitempty"`
	// The date and time the resource was created
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
	// The date and time the resource was last updated
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// GetClientResponseBody is the type of the "Task Service" service "get-client"
// endpoint HTTP response body.
type GetClientResponseBody ClientResponseBody

// UpdateClientResponseBody is the type of the "Task Service" service
// "update-client" endpoint HTTP response body.
type UpdateClientResponseBody struct {
	// The unique identifier of the client
	UID *string `form:"uid,omitempty" json:"uid,omitempty" xml:"uid,omitempty"`
	// The name of the client
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// The Norwegian organization number of the client
	OrgNumber *string `form:"org_number,omitempty" json:"org_number,omitempty" xml:"org_number,omitempty"`
	// The contact person of the client
	ContactName *string `form:"contact_name,omitempty" json:"contact_name,omitempty" xml:"contact_name,omitempty"`
	// The contact email of the client
	ContactEmail *string `form:"contact_email,omitempty" json:"contact_email,omitempty" xml:"contact_email,omitempty"`
	// The date and time the resource was created
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
	// The date and time the resource was last updated
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// ListClientsResponseBody is the type of the "Task Service" service
// "list-clients" endpoint HTTP response body.
type ListClientsResponseBody []*ClientResponse

// ReadyzServiceUnavailableResponseBody is the type of the "Task Service"
// service "readyz" endpoint HTTP response body for the "ServiceUnavailable"
// error.
type ReadyzServiceUnavailableResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// CreateTaskBadRequestResponseBody is the type of the "Task Service" service
// "create-task" endpoint HTTP response body for the "BadRequest" error.
type CreateTaskBadRequestResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// CreateTaskInternalServerErrorResponseBody is the type of the "Task Service"
// service "create-task" endpoint HTTP response body for the
// "InternalServerError" error.
type CreateTaskInternalServerErrorResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// CreateTaskNotFoundResponseBody is the type of the "Task Service" service
// "create-task" endpoint HTTP response body for the "NotFound" error.
type CreateTaskNotFoundResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// CreateTaskServiceUnavailableResponseBody is the type of the "Task Service"
// service "create-task" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type CreateTaskServiceUnavailableResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// CreateTaskUnauthorizedResponseBody is the type of the "Task Service" service
// "create-task" endpoint HTTP response body for the "Unauthorized" error.
type CreateTaskUnauthorizedResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetTaskBadRequestResponseBody is the type of the "Task Service" service
// "get-task" endpoint HTTP response body for the "BadRequest" error.
type GetTaskBadRequestResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetTaskInternalServerErrorResponseBody is the type of the "Task Service"
// service "get-task" endpoint HTTP response body for the "InternalServerError"
// error.
type GetTaskInternalServerErrorResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetTaskNotFoundResponseBody is the type of the "Task Service" service
// "get-task" endpoint HTTP response body for the "NotFound" error.
type GetTaskNotFoundResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetTaskServiceUnavailableResponseBody is the type of the "Task Service"
// service "get-task" endpoint HTTP response body for the "ServiceUnavailable"
// error.
type GetTaskServiceUnavailableResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetTaskUnauthorizedResponseBody is the type of the "Task Service" service
// "get-task" endpoint HTTP response body for the "Unauthorized" error.
type GetTaskUnauthorizedResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// UpdateTaskBadRequestResponseBody is the type of the "Task Service" service
// "update-task" endpoint HTTP response body for the "BadRequest" error.
type UpdateTaskBadRequestResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// UpdateTaskConflictResponseBody is the type of the "Task Service" service
// "update-task" endpoint HTTP response body for the "Conflict" error.
type UpdateTaskConflictResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// UpdateTaskInternalServerErrorResponseBody is the type of the "Task Service"
// service "update-task" endpoint HTTP response body for the
// "InternalServerError" error.
type UpdateTaskInternalServerErrorResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// UpdateTaskNotFoundResponseBody is the type of the "Task Service" service
// "update-task" endpoint HTTP response body for the "NotFound" error.
type UpdateTaskNotFoundResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// UpdateTaskServiceUnavailableResponseBody is the type of the "Task Service"
// service "update-task" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type UpdateTaskServiceUnavailableResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// UpdateTaskUnauthorizedResponseBody is the type of the "Task Service" service
// "update-task" endpoint HTTP response body for the "Unauthorized" error.
type UpdateTaskUnauthorizedResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// DeleteTaskBadRequestResponseBody is the type of the "Task Service" service
// "delete-task" endpoint HTTP response body for the "BadRequest" error.
type DeleteTaskBadRequestResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// DeleteTaskConflictResponseBody is the type of the "Task Service" service
// "delete-task" endpoint HTTP response body for the "Conflict" error.
type DeleteTaskConflictResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// DeleteTaskInternalServerErrorResponseBody is the type of the "Task Service"
// service "delete-task" endpoint HTTP response body for the
// "InternalServerError" error.
type DeleteTaskInternalServerErrorResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// DeleteTaskNotFoundResponseBody is the type of the "Task Service" service
// "delete-task" endpoint HTTP response body for the "NotFound" error.
type DeleteTaskNotFoundResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// DeleteTaskServiceUnavailableResponseBody is the type of the "Task Service"
// service "delete-task" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type DeleteTaskServiceUnavailableResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// DeleteTaskUnauthorizedResponseBody is the type of the "Task Service" service
// "delete-task" endpoint HTTP response body for the "Unauthorized" error.
type DeleteTaskUnauthorizedResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// ListTasksBadRequestResponseBody is the type of the "Task Service" service
// "list-tasks" endpoint HTTP response body for the "BadRequest" error.
type ListTasksBadRequestResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// ListTasksInternalServerErrorResponseBody is the type of the "Task Service"
// service "list-tasks" endpoint HTTP response body for the
// "InternalServerError" error.
type ListTasksInternalServerErrorResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// ListTasksServiceUnavailableResponseBody is the type of the "Task Service"
// service "list-tasks" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type ListTasksServiceUnavailableResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// ListTasksUnauthorizedResponseBody is the type of the "Task Service" service
// "list-tasks" endpoint HTTP response body for the "Unauthorized" error.
type ListTasksUnauthorizedResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetTaskScheduleBadRequestResponseBody is the type of the "Task Service"
// service "get-task-schedule" endpoint HTTP response body for the "BadRequest"
// error.
type GetTaskScheduleBadRequestResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetTaskScheduleInternalServerErrorResponseBody is the type of the "Task
// Service" service "get-task-schedule" endpoint HTTP response body for the
// "InternalServerError" error.
type GetTaskScheduleInternalServerErrorResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetTaskScheduleNotFoundResponseBody is the type of the "Task Service"
// service "get-task-schedule" endpoint HTTP response body for the "NotFound"
// error.
type GetTaskScheduleNotFoundResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetTaskScheduleServiceUnavailableResponseBody is the type of the "Task
// Service" service "get-task-schedule" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type GetTaskScheduleServiceUnavailableResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetTaskScheduleUnauthorizedResponseBody is the type of the "Task Service"
// service "get-task-schedule" endpoint HTTP response body for the
// "Unauthorized" error.
type GetTaskScheduleUnauthorizedResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// CreateClientBadRequestResponseBody is the type of the "Task Service" service
// "create-client" endpoint HTTP response body for the "BadRequest" error.
type CreateClientBadRequestResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// CreateClientInternalServerErrorResponseBody is the type of the "Task
// Service" service "create-client" endpoint HTTP response body for the
// "InternalServerError" error.
type CreateClientInternalServerErrorResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// CreateClientServiceUnavailableResponseBody is the type of the "Task Service"
// service "create-client" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type CreateClientServiceUnavailableResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// CreateClientUnauthorizedResponseBody is the type of the "Task Service"
// service "create-client" endpoint HTTP response body for the "Unauthorized"
// error.
type CreateClientUnauthorizedResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetClientBadRequestResponseBody is the type of the "Task Service" service
// "get-client" endpoint HTTP response body for the "BadRequest" error.
type GetClientBadRequestResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetClientInternalServerErrorResponseBody is the type of the "Task Service"
// service "get-client" endpoint HTTP response body for the
// "InternalServerError" error.
type GetClientInternalServerErrorResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetClientNotFoundResponseBody is the type of the "Task Service" service
// "get-client" endpoint HTTP response body for the "NotFound" error.
type GetClientNotFoundResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetClientServiceUnavailableResponseBody is the type of the "Task Service"
// service "get-client" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type GetClientServiceUnavailableResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// GetClientUnauthorizedResponseBody is the type of the "Task Service" service
// "get-client" endpoint HTTP response body for the "Unauthorized" error.
type GetClientUnauthorizedResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// UpdateClientBadRequestResponseBody is the type of the "Task Service" service
// "update-client" endpoint HTTP response body for the "BadRequest" error.
type UpdateClientBadRequestResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// UpdateClientConflictResponseBody is the type of the "Task Service" service
// "update-client" endpoint HTTP response body for the "Conflict" error.
type UpdateClientConflictResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// UpdateClientInternalServerErrorResponseBody is the type of the "Task
// Service" service "update-client" endpoint HTTP response body for the
// "InternalServerError" error.
type UpdateClientInternalServerErrorResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// UpdateClientNotFoundResponseBody is the type of the "Task Service" service
// "update-client" endpoint HTTP response body for the "NotFound" error.
type UpdateClientNotFoundResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// UpdateClientServiceUnavailableResponseBody is the type of the "Task Service"
// service "update-client" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type UpdateClientServiceUnavailableResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// UpdateClientUnauthorizedResponseBody is the type of the "Task Service"
// service "update-client" endpoint HTTP response body for the "Unauthorized"
// error.
type UpdateClientUnauthorizedResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// DeleteClientBadRequestResponseBody is the type of the "Task Service" service
// "delete-client" endpoint HTTP response body for the "BadRequest" error.
type DeleteClientBadRequestResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// DeleteClientConflictResponseBody is the type of the "Task Service" service
// "delete-client" endpoint HTTP response body for the "Conflict" error.
type DeleteClientConflictResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// DeleteClientInternalServerErrorResponseBody is the type of the "Task
// Service" service "delete-client" endpoint HTTP response body for the
// "InternalServerError" error.
type DeleteClientInternalServerErrorResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// DeleteClientNotFoundResponseBody is the type of the "Task Service" service
// "delete-client" endpoint HTTP response body for the "NotFound" error.
type DeleteClientNotFoundResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// DeleteClientServiceUnavailableResponseBody is the type of the "Task Service"
// service "delete-client" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type DeleteClientServiceUnavailableResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// DeleteClientUnauthorizedResponseBody is the type of the "Task Service"
// service "delete-client" endpoint HTTP response body for the "Unauthorized"
// error.
type DeleteClientUnauthorizedResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// ListClientsBadRequestResponseBody is the type of the "Task Service" service
// "list-clients" endpoint HTTP response body for the "BadRequest" error.
type ListClientsBadRequestResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// ListClientsInternalServerErrorResponseBody is the type of the "Task Service"
// service "list-clients" endpoint HTTP response body for the
// "InternalServerError" error.
type ListClientsInternalServerErrorResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// ListClientsServiceUnavailableResponseBody is the type of the "Task Service"
// service "list-clients" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type ListClientsServiceUnavailableResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// ListClientsUnauthorizedResponseBody is the type of the "Task Service"
// service "list-clients" endpoint HTTP response body for the "Unauthorized"
// error.
type ListClientsUnauthorizedResponseBody struct {
	// HTTP status code
	Code string `form:"code" json:"code" xml:"code"`
	// Error message
	Message string `form:"message" json:"message" xml:"message"`
}

// TaskResponseBody is used to define fields on response body types.
type TaskResponseBody struct {
	// The unique identifier of the task
	UID *string `form:"uid,omitempty" json:"uid,omitempty" xml:"uid,omitempty"`
	// The unique identifier of the client
	ClientUID *string `form:"client_uid,omitempty" json:"client_uid,omitempty" xml:"client_uid,omitempty"`
	// The title of the task
	Title *string `form:"title,omitempty" json:"title,omitempty" xml:"title,omitempty"`
	// The description of the task
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// The frequency as written by the user, in Norwegian or English
	FrequencyLabel *string `form:"frequency_label,omitempty" json:"frequency_label,omitempty" xml:"frequency_label,omitempty"`
	// The canonical frequency of the task
	Frequency *string `form:"frequency,omitempty" json:"frequency,omitempty" xml:"frequency,omitempty"`
	// The start date anchoring the task schedule
	StartDate *string `form:"start_date,omitempty" json:"start_date,omitempty" xml:"start_date,omitempty"`
	// The next due date of the task
	NextDue *string `form:"next_due,omitempty" json:"next_due,omitempty" xml:"next_due,omitempty"`
	// The email of the accountant responsible for the task
	AssigneeEmail *string `form:"assignee_email,omitempty" json:"assignee_email,omitempty" xml:"assignee_email,omitempty"`
	// The status of the task
	Status string `form:"status" json:"status" xml:"status"`
	// The date and time the resource was created
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
	// The date and time the resource was last updated
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// TaskResponse is used to define fields on response body types.
type TaskResponse struct {
	// The unique identifier of the task
	UID *string `form:"uid,omitempty" json:"uid,omitempty" xml:"uid,omitempty"`
	// The unique identifier of the client
	ClientUID *string `form:"client_uid,omitempty" json:"client_uid,omitempty" xml:"client_uid,omitempty"`
	// The title of the task
	Title *string `form:"title,omitempty" json:"title,omitempty" xml:"title,omitempty"`
	// The description of the task
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// The frequency as written by the user, in Norwegian or English
	FrequencyLabel *string `form:"frequency_label,omitempty" json:"frequency_label,omitempty" xml:"frequency_label,omitempty"`
	// The canonical frequency of the task
	Frequency *string `form:"frequency,omitempty" json:"frequency,omitempty" xml:"frequency,omitempty"`
	// The start date anchoring the task schedule
	StartDate *string `form:"start_date,omitempty" json:"start_date,omitempty" xml:"start_date,omitempty"`
	// The next due date of the task
	NextDue *string `form:"next_due,omitempty" json:"next_due,omitempty" xml:"next_due,omitempty"`
	// The email of the accountant responsible for the task
	AssigneeEmail *string `form:"assignee_email,omitempty" json:"assignee_email,omitempty" xml:"assignee_email,omitempty"`
	// The status of the task
	Status string `form:"status" json:"status" xml:"status"`
	// The date and time the resource was created
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
	// The date and time the resource was last updated
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// TaskOccurrenceResponse is used to define fields on response body types.
type TaskOccurrenceResponse struct {
	// The unique identifier of the task
	TaskUID string `form:"task_uid" json:"task_uid" xml:"task_uid"`
	// The computed due date
	DueDate string `form:"due_date" json:"due_date" xml:"due_date"`
}

// ClientResponseBody is used to define fields on response body types.
type ClientResponseBody struct {
	// The unique identifier of the client
	UID *string `form:"uid,omitempty" json:"uid,omitempty" xml:"uid,omitempty"`
	// The name of the client
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// The Norwegian organization number of the client
	OrgNumber *string `form:"org_number,omitempty" json:"org_number,omitempty" xml:"org_number,omitempty"`
	// The contact person of the client
	ContactName *string `form:"contact_name,omitempty" json:"contact_name,omitempty" xml:"contact_name,omitempty"`
	// The contact email of the client
	ContactEmail *string `form:"contact_email,omitempty" json:"contact_email,omitempty" xml:"contact_email,omitempty"`
	// The date and time the resource was created
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
	// The date and time the resource was last updated
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// ClientResponse is used to define fields on response body types.
type ClientResponse struct {
	// The unique identifier of the client
	UID *string `form:"uid,omitempty" json:"uid,omitempty" xml:"uid,omitempty"`
	// The name of the client
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// The Norwegian organization number of the client
	OrgNumber *string `form:"org_number,omitempty" json:"org_number,omitempty" xml:"org_number,omitempty"`
	// The contact person of the client
	ContactName *string `form:"contact_name,omitempty" json:"contact_name,omitempty" xml:"contact_name,omitempty"`
	// The contact email of the client
	ContactEmail *string `form:"contact_email,omitempty" json:"contact_email,omitempty" xml:"contact_email,omitempty"`
	// The date and time the resource was created
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
	// The date and time the resource was last updated
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// NewCreateTaskResponseBody builds the HTTP response body from the result of
// the "create-task" endpoint of the "Task Service" service.
func NewCreateTaskResponseBody(res *taskservice.Task) *CreateTaskResponseBody {
	body := &CreateTaskResponseBody{
		UID:            res.UID,
		ClientUID:      res.ClientUID,
		Title:          res.Title,
		Description:    res.Description,
		FrequencyLabel: res.FrequencyLabel,
		Frequency:      res.Frequency,
		StartDate:      res.StartDate,
		NextDue:        res.NextDue,
		AssigneeEmail:  res.AssigneeEmail,
		Status:         res.Status,
		CreatedAt:      res.CreatedAt,
		UpdatedAt:      res.UpdatedAt,
	}
	{
		var zero string
		if body.Status == zero {
			body.Status = "open"
		}
	}
	return body
}

// NewGetTaskResponseBody builds the HTTP response body from the result of the
// "get-task" endpoint of the "Task Service" service.
func NewGetTaskResponseBody(res *taskservice.GetTaskResult) *GetTaskResponseBody {
	body := &GetTaskResponseBody{
		UID:            res.Task.UID,
		ClientUID:      res.Task.ClientUID,
		Title:          res.Task.Title,
		Description:    res.Task.Description,
		FrequencyLabel: res.Task.FrequencyLabel,
		Frequency:      res.Task.Frequency,
		StartDate:      res.Task.StartDate,
		NextDue:        res.Task.NextDue,
		AssigneeEmail:  res.Task.AssigneeEmail,
		Status:         res.Task.Status,
		CreatedAt:      res.Task.CreatedAt,
		UpdatedAt:      res.Task.UpdatedAt,
	}
	{
		var zero string
		if body.Status == zero {
			body.Status = "open"
		}
	}
	return body
}

// NewUpdateTaskResponseBody builds the HTTP response body from the result of
// the "update-task" endpoint of the "Task Service" service.
func NewUpdateTaskResponseBody(res *taskservice.Task) *UpdateTaskResponseBody {
	body := &UpdateTaskResponseBody{
		UID:            res.UID,
		ClientUID:      res.ClientUID,
		Title:          res.Title,
		Description:    res.Description,
		FrequencyLabel: res.FrequencyLabel,
		Frequency:      res.Frequency,
		StartDate:      res.StartDate,
		NextDue:        res.NextDue,
		AssigneeEmail:  res.AssigneeEmail,
		Status:         res.Status,
		CreatedAt:      res.CreatedAt,
		UpdatedAt:      res.UpdatedAt,
	}
	{
		var zero string
		if body.Status == zero {
			body.Status = "open"
		}
	}
	return body
}

// NewListTasksResponseBody builds the HTTP response body from the result of
// the "list-tasks" endpoint of the "Task Service" service.
func NewListTasksResponseBody(res []*taskservice.Task) ListTasksResponseBody {
	body := make([]*TaskResponse, len(res))
	for i, val := range res {
		if val == nil {
			body[i] = nil
			continue
		}
		body[i] = marshalTaskserviceTaskToTaskResponse(val)
	}
	return body
}

// NewGetTaskScheduleResponseBody builds the HTTP response body from the result
// of the "get-task-schedule" endpoint of the "Task Service" service.
func NewGetTaskScheduleResponseBody(res []*taskservice.TaskOccurrence) GetTaskScheduleResponseBody {
	body := make([]*TaskOccurrenceResponse, len(res))
	for i, val := range res {
		if val == nil {
			body[i] = nil
			continue
		}
		body[i] = marshalTaskserviceTaskOccurrenceToTaskOccurrenceResponse(val)
	}
	return body
}

// NewCreateClientResponseBody builds the HTTP response body from the result of
// the "create-client" endpoint of the "Task Service" service.
func NewCreateClientResponseBody(res *taskservice.Client) *CreateClientResponseBody {
	body := &CreateClientResponseBody{
		UID:          res.UID,
		Name:         res.Name,
		OrgNumber:    res.OrgNumber,
		ContactName:  res.ContactName,
		ContactEmail: res.ContactEmail,
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}
	return body
}

// NewGetClientResponseBody builds the HTTP response body from the result of
// the "get-client" endpoint of the "Task Service" service.
func NewGetClientResponseBody(res *taskservice.GetClientResult) *GetClientResponseBody {
	body := &GetClientResponseBody{
		UID:          res.Client.UID,
		Name:         res.Client.Name,
		OrgNumber:    res.Client.OrgNumber,
		ContactName:  res.Client.ContactName,
		ContactEmail: res.Client.ContactEmail,
		CreatedAt:    res.Client.CreatedAt,
		UpdatedAt:    res.Client.UpdatedAt,
	}
	return body
}

// NewUpdateClientResponseBody builds the HTTP response body from the result of
// the "update-client" endpoint of the "Task Service" service.
func NewUpdateClientResponseBody(res *taskservice.Client) *UpdateClientResponseBody {
	body := &UpdateClientResponseBody{
		UID:          res.UID,
		Name:         res.Name,
		OrgNumber:    res.OrgNumber,
		ContactName:  res.ContactName,
		ContactEmail: res.ContactEmail,
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}
	return body
}

// NewListClientsResponseBody builds the HTTP response body from the result of
// the "list-clients" endpoint of the "Task Service" service.
func NewListClientsResponseBody(res []*taskservice.Client) ListClientsResponseBody {
	body := make([]*ClientResponse, len(res))
	for i, val := range res {
		if val == nil {
			body[i] = nil
			continue
		}
		body[i] = marshalTaskserviceClientToClientResponse(val)
	}
	return body
}

// NewReadyzServiceUnavailableResponseBody builds the HTTP response body from
// the result of the "readyz" endpoint of the "Task Service" service.
func NewReadyzServiceUnavailableResponseBody(res *taskservice.ServiceUnavailableError) *ReadyzServiceUnavailableResponseBody {
	body := &ReadyzServiceUnavailableResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewCreateTaskBadRequestResponseBody builds the HTTP response body from the
// result of the "create-task" endpoint of the "Task Service" service.
func NewCreateTaskBadRequestResponseBody(res *taskservice.BadRequestError) *CreateTaskBadRequestResponseBody {
	body := &CreateTaskBadRequestResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewCreateTaskInternalServerErrorResponseBody builds the HTTP response body
// from the result of the "create-task" endpoint of the "Task Service" service.
func NewCreateTaskInternalServerErrorResponseBody(res *taskservice.InternalServerError) *CreateTaskInternalServerErrorResponseBody {
	body := &CreateTaskInternalServerErrorResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewCreateTaskNotFoundResponseBody builds the HTTP response body from the
// result of the "create-task" endpoint of the "Task Service" service.
func NewCreateTaskNotFoundResponseBody(res *taskservice.NotFoundError) *CreateTaskNotFoundResponseBody {
	body := &CreateTaskNotFoundResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewCreateTaskServiceUnavailableResponseBody builds the HTTP response body
// from the result of the "create-task" endpoint of the "Task Service" service.
func NewCreateTaskServiceUnavailableResponseBody(res *taskservice.ServiceUnavailableError) *CreateTaskServiceUnavailableResponseBody {
	body := &CreateTaskServiceUnavailableResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewCreateTaskUnauthorizedResponseBody builds the HTTP response body from the
// result of the "create-task" endpoint of the "Task Service" service.
func NewCreateTaskUnauthorizedResponseBody(res *taskservice.UnauthorizedError) *CreateTaskUnauthorizedResponseBody {
	body := &CreateTaskUnauthorizedResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetTaskBadRequestResponseBody builds the HTTP response body from the
// result of the "get-task" endpoint of the "Task Service" service.
func NewGetTaskBadRequestResponseBody(res *taskservice.BadRequestError) *GetTaskBadRequestResponseBody {
	body := &GetTaskBadRequestResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetTaskInternalServerErrorResponseBody builds the HTTP response body from
// the result of the "get-task" endpoint of the "Task Service" service.
func NewGetTaskInternalServerErrorResponseBody(res *taskservice.InternalServerError) *GetTaskInternalServerErrorResponseBody {
	body := &GetTaskInternalServerErrorResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetTaskNotFoundResponseBody builds the HTTP response body from the result
// of the "get-task" endpoint of the "Task Service" service.
func NewGetTaskNotFoundResponseBody(res *taskservice.NotFoundError) *GetTaskNotFoundResponseBody {
	body := &GetTaskNotFoundResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetTaskServiceUnavailableResponseBody builds the HTTP response body from
// the result of the "get-task" endpoint of the "Task Service" service.
func NewGetTaskServiceUnavailableResponseBody(res *taskservice.ServiceUnavailableError) *GetTaskServiceUnavailableResponseBody {
	body := &GetTaskServiceUnavailableResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetTaskUnauthorizedResponseBody builds the HTTP response body from the
// result of the "get-task" endpoint of the "Task Service" service.
func NewGetTaskUnauthorizedResponseBody(res *taskservice.UnauthorizedError) *GetTaskUnauthorizedResponseBody {
	body := &GetTaskUnauthorizedResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewUpdateTaskBadRequestResponseBody builds the HTTP response body from the
// result of the "update-task" endpoint of the "Task Service" service.
func NewUpdateTaskBadRequestResponseBody(res *taskservice.BadRequestError) *UpdateTaskBadRequestResponseBody {
	body := &UpdateTaskBadRequestResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewUpdateTaskConflictResponseBody builds the HTTP response body from the
// result of the "update-task" endpoint of the "Task Service" service.
func NewUpdateTaskConflictResponseBody(res *taskservice.ConflictError) *UpdateTaskConflictResponseBody {
	body := &UpdateTaskConflictResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewUpdateTaskInternalServerErrorResponseBody builds the HTTP response body
// from the result of the "update-task" endpoint of the "Task Service" service.
func NewUpdateTaskInternalServerErrorResponseBody(res *taskservice.InternalServerError) *UpdateTaskInternalServerErrorResponseBody {
	body := &UpdateTaskInternalServerErrorResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewUpdateTaskNotFoundResponseBody builds the HTTP response body from the
// result of the "update-task" endpoint of the "Task Service" service.
func NewUpdateTaskNotFoundResponseBody(res *taskservice.NotFoundError) *UpdateTaskNotFoundResponseBody {
	body := &UpdateTaskNotFoundResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewUpdateTaskServiceUnavailableResponseBody builds the HTTP response body
// from the result of the "update-task" endpoint of the "Task Service" service.
func NewUpdateTaskServiceUnavailableResponseBody(res *taskservice.ServiceUnavailableError) *UpdateTaskServiceUnavailableResponseBody {
	body := &UpdateTaskServiceUnavailableResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewUpdateTaskUnauthorizedResponseBody builds the HTTP response body from the
// result of the "update-task" endpoint of the "Task Service" service.
func NewUpdateTaskUnauthorizedResponseBody(res *taskservice.UnauthorizedError) *UpdateTaskUnauthorizedResponseBody {
	body := &UpdateTaskUnauthorizedResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewDeleteTaskBadRequestResponseBody builds the HTTP response body from the
// result of the "delete-task" endpoint of the "Task Service" service.
func NewDeleteTaskBadRequestResponseBody(res *taskservice.BadRequestError) *DeleteTaskBadRequestResponseBody {
	body := &DeleteTaskBadRequestResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewDeleteTaskConflictResponseBody builds the HTTP response body from the
// result of the "delete-task" endpoint of the "Task Service" service.
func NewDeleteTaskConflictResponseBody(res *taskservice.ConflictError) *DeleteTaskConflictResponseBody {
	body := &DeleteTaskConflictResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewDeleteTaskInternalServerErrorResponseBody builds the HTTP response body
// from the result of the "delete-task" endpoint of the "Task Service" service.
func NewDeleteTaskInternalServerErrorResponseBody(res *taskservice.InternalServerError) *DeleteTaskInternalServerErrorResponseBody {
	body := &DeleteTaskInternalServerErrorResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewDeleteTaskNotFoundResponseBody builds the HTTP response body from the
// result of the "delete-task" endpoint of the "Task Service" service.
func NewDeleteTaskNotFoundResponseBody(res *taskservice.NotFoundError) *DeleteTaskNotFoundResponseBody {
	body := &DeleteTaskNotFoundResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewDeleteTaskServiceUnavailableResponseBody builds the HTTP response body
// from the result of the "delete-task" endpoint of the "Task Service" service.
func NewDeleteTaskServiceUnavailableResponseBody(res *taskservice.ServiceUnavailableError) *DeleteTaskServiceUnavailableResponseBody {
	body := &DeleteTaskServiceUnavailableResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewDeleteTaskUnauthorizedResponseBody builds the HTTP response body from the
// result of the "delete-task" endpoint of the "Task Service" service.
func NewDeleteTaskUnauthorizedResponseBody(res *taskservice.UnauthorizedError) *DeleteTaskUnauthorizedResponseBody {
	body := &DeleteTaskUnauthorizedResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewListTasksBadRequestResponseBody builds the HTTP response body from the
// result of the "list-tasks" endpoint of the "Task Service" service.
func NewListTasksBadRequestResponseBody(res *taskservice.BadRequestError) *ListTasksBadRequestResponseBody {
	body := &ListTasksBadRequestResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewListTasksInternalServerErrorResponseBody builds the HTTP response body
// from the result of the "list-tasks" endpoint of the "Task Service" service.
func NewListTasksInternalServerErrorResponseBody(res *taskservice.InternalServerError) *ListTasksInternalServerErrorResponseBody {
	body := &ListTasksInternalServerErrorResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewListTasksServiceUnavailableResponseBody builds the HTTP response body
// from the result of the "list-tasks" endpoint of the "Task Service" service.
func NewListTasksServiceUnavailableResponseBody(res *taskservice.ServiceUnavailableError) *ListTasksServiceUnavailableResponseBody {
	body := &ListTasksServiceUnavailableResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewListTasksUnauthorizedResponseBody builds the HTTP response body from the
// result of the "list-tasks" endpoint of the "Task Service" service.
func NewListTasksUnauthorizedResponseBody(res *taskservice.UnauthorizedError) *ListTasksUnauthorizedResponseBody {
	body := &ListTasksUnauthorizedResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetTaskScheduleBadRequestResponseBody builds the HTTP response body from
// the result of the "get-task-schedule" endpoint of the "Task Service" service.
func NewGetTaskScheduleBadRequestResponseBody(res *taskservice.BadRequestError) *GetTaskScheduleBadRequestResponseBody {
	body := &GetTaskScheduleBadRequestResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetTaskScheduleInternalServerErrorResponseBody builds the HTTP response
// body from the result of the "get-task-schedule" endpoint of the "Task
// Service" service.
func NewGetTaskScheduleInternalServerErrorResponseBody(res *taskservice.InternalServerError) *GetTaskScheduleInternalServerErrorResponseBody {
	body := &GetTaskScheduleInternalServerErrorResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetTaskScheduleNotFoundResponseBody builds the HTTP response body from
// the result of the "get-task-schedule" endpoint of the "Task Service" service.
func NewGetTaskScheduleNotFoundResponseBody(res *taskservice.NotFoundError) *GetTaskScheduleNotFoundResponseBody {
	body := &GetTaskScheduleNotFoundResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetTaskScheduleServiceUnavailableResponseBody builds the HTTP response
// body from the result of the "get-task-schedule" endpoint of the "Task
// Service" service.
func NewGetTaskScheduleServiceUnavailableResponseBody(res *taskservice.ServiceUnavailableError) *GetTaskScheduleServiceUnavailableResponseBody {
	body := &GetTaskScheduleServiceUnavailableResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetTaskScheduleUnauthorizedResponseBody builds the HTTP response body
// from the result of the "get-task-schedule" endpoint of the "Task Service"
// service.
func NewGetTaskScheduleUnauthorizedResponseBody(res *taskservice.UnauthorizedError) *GetTaskScheduleUnauthorizedResponseBody {
	body := &GetTaskScheduleUnauthorizedResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewCreateClientBadRequestResponseBody builds the HTTP response body from the
// result of the "create-client" endpoint of the "Task Service" service.
func NewCreateClientBadRequestResponseBody(res *taskservice.BadRequestError) *CreateClientBadRequestResponseBody {
	body := &CreateClientBadRequestResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewCreateClientInternalServerErrorResponseBody builds the HTTP response body
// from the result of the "create-client" endpoint of the "Task Service"
// service.
func NewCreateClientInternalServerErrorResponseBody(res *taskservice.InternalServerError) *CreateClientInternalServerErrorResponseBody {
	body := &CreateClientInternalServerErrorResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewCreateClientServiceUnavailableResponseBody builds the HTTP response body
// from the result of the "create-client" endpoint of the "Task Service"
// service.
func NewCreateClientServiceUnavailableResponseBody(res *taskservice.ServiceUnavailableError) *CreateClientServiceUnavailableResponseBody {
	body := &CreateClientServiceUnavailableResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewCreateClientUnauthorizedResponseBody builds the HTTP response body from
// the result of the "create-client" endpoint of the "Task Service" service.
func NewCreateClientUnauthorizedResponseBody(res *taskservice.UnauthorizedError) *CreateClientUnauthorizedResponseBody {
	body := &CreateClientUnauthorizedResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetClientBadRequestResponseBody builds the HTTP response body from the
// result of the "get-client" endpoint of the "Task Service" service.
func NewGetClientBadRequestResponseBody(res *taskservice.BadRequestError) *GetClientBadRequestResponseBody {
	body := &GetClientBadRequestResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetClientInternalServerErrorResponseBody builds the HTTP response body
// from the result of the "get-client" endpoint of the "Task Service" service.
func NewGetClientInternalServerErrorResponseBody(res *taskservice.InternalServerError) *GetClientInternalServerErrorResponseBody {
	body := &GetClientInternalServerErrorResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetClientNotFoundResponseBody builds the HTTP response body from the
// result of the "get-client" endpoint of the "Task Service" service.
func NewGetClientNotFoundResponseBody(res *taskservice.NotFoundError) *GetClientNotFoundResponseBody {
	body := &GetClientNotFoundResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetClientServiceUnavailableResponseBody builds the HTTP response body
// from the result of the "get-client" endpoint of the "Task Service" service.
func NewGetClientServiceUnavailableResponseBody(res *taskservice.ServiceUnavailableError) *GetClientServiceUnavailableResponseBody {
	body := &GetClientServiceUnavailableResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewGetClientUnauthorizedResponseBody builds the HTTP response body from the
// result of the "get-client" endpoint of the "Task Service" service.
func NewGetClientUnauthorizedResponseBody(res *taskservice.UnauthorizedError) *GetClientUnauthorizedResponseBody {
	body := &GetClientUnauthorizedResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewUpdateClientBadRequestResponseBody builds the HTTP response body from the
// result of the "update-client" endpoint of the "Task Service" service.
func NewUpdateClientBadRequestResponseBody(res *taskservice.BadRequestError) *UpdateClientBadRequestResponseBody {
	body := &UpdateClientBadRequestResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewUpdateClientConflictResponseBody builds the HTTP response body from the
// result of the "update-client" endpoint of the "Task Service" service.
func NewUpdateClientConflictResponseBody(res *taskservice.ConflictError) *UpdateClientConflictResponseBody {
	body := &UpdateClientConflictResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewUpdateClientInternalServerErrorResponseBody builds the HTTP response body
// from the result of the "update-client" endpoint of the "Task Service"
// service.
func NewUpdateClientInternalServerErrorResponseBody(res *taskservice.InternalServerError) *UpdateClientInternalServerErrorResponseBody {
	body := &UpdateClientInternalServerErrorResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewUpdateClientNotFoundResponseBody builds the HTTP response body from the
// result of the "update-client" endpoint of the "Task Service" service.
func NewUpdateClientNotFoundResponseBody(res *taskservice.NotFoundError) *UpdateClientNotFoundResponseBody {
	body := &UpdateClientNotFoundResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewUpdateClientServiceUnavailableResponseBody builds the HTTP response body
// from the result of the "update-client" endpoint of the "Task Service"
// service.
func NewUpdateClientServiceUnavailableResponseBody(res *taskservice.ServiceUnavailableError) *UpdateClientServiceUnavailableResponseBody {
	body := &UpdateClientServiceUnavailableResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewUpdateClientUnauthorizedResponseBody builds the HTTP response body from
// the result of the "update-client" endpoint of the "Task Service" service.
func NewUpdateClientUnauthorizedResponseBody(res *taskservice.UnauthorizedError) *UpdateClientUnauthorizedResponseBody {
	body := &UpdateClientUnauthorizedResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewDeleteClientBadRequestResponseBody builds the HTTP response body from the
// result of the "delete-client" endpoint of the "Task Service" service.
func NewDeleteClientBadRequestResponseBody(res *taskservice.BadRequestError) *DeleteClientBadRequestResponseBody {
	body := &DeleteClientBadRequestResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewDeleteClientConflictResponseBody builds the HTTP response body from the
// result of the "delete-client" endpoint of the "Task Service" service.
func NewDeleteClientConflictResponseBody(res *taskservice.ConflictError) *DeleteClientConflictResponseBody {
	body := &DeleteClientConflictResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewDeleteClientInternalServerErrorResponseBody builds the HTTP response body
// from the result of the "delete-client" endpoint of the "Task Service"
// service.
func NewDeleteClientInternalServerErrorResponseBody(res *taskservice.InternalServerError) *DeleteClientInternalServerErrorResponseBody {
	body := &DeleteClientInternalServerErrorResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewDeleteClientNotFoundResponseBody builds the HTTP response body from the
// result of the "delete-client" endpoint of the "Task Service" service.
func NewDeleteClientNotFoundResponseBody(res *taskservice.NotFoundError) *DeleteClientNotFoundResponseBody {
	body := &DeleteClientNotFoundResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewDeleteClientServiceUnavailableResponseBody builds the HTTP response body
// from the result of the "delete-client" endpoint of the "Task Service"
// service.
func NewDeleteClientServiceUnavailableResponseBody(res *taskservice.ServiceUnavailableError) *DeleteClientServiceUnavailableResponseBody {
	body := &DeleteClientServiceUnavailableResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewDeleteClientUnauthorizedResponseBody builds the HTTP response body from
// the result of the "delete-client" endpoint of the "Task Service" service.
func NewDeleteClientUnauthorizedResponseBody(res *taskservice.UnauthorizedError) *DeleteClientUnauthorizedResponseBody {
	body := &DeleteClientUnauthorizedResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewListClientsBadRequestResponseBody builds the HTTP response body from the
// result of the "list-clients" endpoint of the "Task Service" service.
func NewListClientsBadRequestResponseBody(res *taskservice.BadRequestError) *ListClientsBadRequestResponseBody {
	body := &ListClientsBadRequestResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewListClientsInternalServerErrorResponseBody builds the HTTP response body
// from the result of the "list-clients" endpoint of the "Task Service" service.
func NewListClientsInternalServerErrorResponseBody(res *taskservice.InternalServerError) *ListClientsInternalServerErrorResponseBody {
	body := &ListClientsInternalServerErrorResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewListClientsServiceUnavailableResponseBody builds the HTTP response body
// from the result of the "list-clients" endpoint of the "Task Service" service.
func NewListClientsServiceUnavailableResponseBody(res *taskservice.ServiceUnavailableError) *ListClientsServiceUnavailableResponseBody {
	body := &ListClientsServiceUnavailableResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewListClientsUnauthorizedResponseBody builds the HTTP response body from
// the result of the "list-clients" endpoint of the "Task Service" service.
func NewListClientsUnauthorizedResponseBody(res *taskservice.UnauthorizedError) *ListClientsUnauthorizedResponseBody {
	body := &ListClientsUnauthorizedResponseBody{
		Code:    res.Code,
		Message: res.Message,
	}
	return body
}

// NewCreateTaskPayload builds a Task Service service create-task endpoint
// payload.
func NewCreateTaskPayload(body *CreateTaskRequestBody, version *string, bearerToken *string) *taskservice.CreateTaskPayload {
	v := &taskservice.CreateTaskPayload{
		ClientUID:      *body.ClientUID,
		Title:          *body.Title,
		Description:    body.Description,
		FrequencyLabel: body.FrequencyLabel,
		StartDate:      *body.StartDate,
		AssigneeEmail:  body.AssigneeEmail,
	}
	if body.Status != nil {
		v.Status = *body.Status
	}
	if body.Status == nil {
		v.Status = "open"
	}
	v.Version = version
	v.BearerToken = bearerToken

	return v
}

// NewGetTaskPayload builds a Task Service service get-task endpoint payload.
func NewGetTaskPayload(uid string, version *string, bearerToken *string) *taskservice.GetTaskPayload {
	v := &taskservice.GetTaskPayload{}
	v.UID = uid
	v.Version = version
	v.BearerToken = bearerToken

	return v
}

// NewUpdateTaskPayload builds a Task Service service update-task endpoint
// payload.
func NewUpdateTaskPayload(body *UpdateTaskRequestBody, uid string, version *string, bearerToken *string, etag *string) *taskservice.UpdateTaskPayload {
	v := &taskservice.UpdateTaskPayload{
		ClientUID:      *body.ClientUID,
		Title:          *body.Title,
		Description:    body.Description,
		FrequencyLabel: body.FrequencyLabel,
		StartDate:      *body.StartDate,
		AssigneeEmail:  body.AssigneeEmail,
	}
	if body.Status != nil {
		v.Status = *body.Status
	}
	if body.Status == nil {
		v.Status = "open"
	}
	v.UID = uid
	v.Version = version
	v.BearerToken = bearerToken
	v.Etag = etag

	return v
}

// NewDeleteTaskPayload builds a Task Service service delete-task endpoint
// payload.
func NewDeleteTaskPayload(uid string, version *string, bearerToken *string, etag *string) *taskservice.DeleteTaskPayload {
	v := &taskservice.DeleteTaskPayload{}
	v.UID = uid
	v.Version = version
	v.BearerToken = bearerToken
	v.Etag = etag

	return v
}

// NewListTasksPayload builds a Task Service service list-tasks endpoint
// payload.
func NewListTasksPayload(version *string, clientUID *string, bearerToken *string) *taskservice.ListTasksPayload {
	v := &taskservice.ListTasksPayload{}
	v.Version = version
	v.ClientUID = clientUID
	v.BearerToken = bearerToken

	return v
}

// NewGetTaskSchedulePayload builds a Task Service service get-task-schedule
// endpoint payload.
func NewGetTaskSchedulePayload(uid string, version *string, fromDate *string, limit *int, bearerToken *string) *taskservice.GetTaskSchedulePayload {
	v := &taskservice.GetTaskSchedulePayload{}
	v.UID = uid
	v.Version = version
	v.FromDate = fromDate
	v.Limit = limit
	v.BearerToken = bearerToken

	return v
}

// NewCreateClientPayload builds a Task Service service create-client endpoint
// payload.
func NewCreateClientPayload(body *CreateClientRequestBody, version *string, bearerToken *string) *taskservice.CreateClientPayload {
	v := &taskservice.CreateClientPayload{
		Name:         *body.Name,
		OrgNumber:    body.OrgNumber,
		ContactName:  body.ContactName,
		ContactEmail: body.ContactEmail,
	}
	v.Version = version
	v.BearerToken = bearerToken

	return v
}

// NewGetClientPayload builds a Task Service service get-client endpoint
// payload.
func NewGetClientPayload(uid string, version *string, bearerToken *string) *taskservice.GetClientPayload {
	v := &taskservice.GetClientPayload{}
	v.UID = uid
	v.Version = version
	v.BearerToken = bearerToken

	return v
}

// NewUpdateClientPayload builds a Task Service service update-client endpoint
// payload.
func NewUpdateClientPayload(body *UpdateClientRequestBody, uid string, version *string, bearerToken *string, etag *string) *taskservice.UpdateClientPayload {
	v := &taskservice.UpdateClientPayload{
		Name:         *body.Name,
		OrgNumber:    body.OrgNumber,
		ContactName:  body.ContactName,
		ContactEmail: body.ContactEmail,
	}
	v.UID = uid
	v.Version = version
	v.BearerToken = bearerToken
	v.Etag = etag

	return v
}

// NewDeleteClientPayload builds a Task Service service delete-client endpoint
// payload.
func NewDeleteClientPayload(uid string, version *string, bearerToken *string, etag *string) *taskservice.DeleteClientPayload {
	v := &taskservice.DeleteClientPayload{}
	v.UID = uid
	v.Version = version
	v.BearerToken = bearerToken
	v.Etag = etag

	return v
}

// NewListClientsPayload builds a Task Service service list-clients endpoint
// payload.
func NewListClientsPayload(version *string, bearerToken *string) *taskservice.ListClientsPayload {
	v := &taskservice.ListClientsPayload{}
	v.Version = version
	v.BearerToken = bearerToken

	return v
}

// ValidateCreateTaskRequestBody runs the validations defined on
// Create-TaskRequestBody
func ValidateCreateTaskRequestBody(body *CreateTaskRequestBody) (err error) {
	if body.ClientUID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("client_uid", "body"))
	}
	if body.Title == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("title", "body"))
	}
	if body.StartDate == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("start_date", "body"))
	}
	if body.ClientUID != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.client_uid", *body.ClientUID, goa.FormatUUID))
	}
	if body.Title != nil {
		if utf8.RuneCountInString(*body.Title) > 200 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.title", *body.Title, utf8.RuneCountInString(*body.Title), 200, false))
		}
	}
	if body.Description != nil {
		if utf8.RuneCountInString(*body.Description) > 2000 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.description", *body.Description, utf8.RuneCountInString(*body.Description), 2000, false))
		}
	}
	if body.StartDate != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.start_date", *body.StartDate, goa.FormatDateTime))
	}
	if body.AssigneeEmail != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.assignee_email", *body.AssigneeEmail, goa.FormatEmail))
	}
	if body.Status != nil {
		if !(*body.Status == "open" || *body.Status == "paused" || *body.Status == "done") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"open", "paused", "done"}))
		}
	}
	return
}

// ValidateUpdateTaskRequestBody runs the validations defined on
// Update-TaskRequestBody
func ValidateUpdateTaskRequestBody(body *UpdateTaskRequestBody) (err error) {
	if body.ClientUID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("client_uid", "body"))
	}
	if body.Title == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("title", "body"))
	}
	if body.StartDate == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("start_date", "body"))
	}
	if body.ClientUID != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.client_uid", *body.ClientUID, goa.FormatUUID))
	}
	if body.Title != nil {
		if utf8.RuneCountInString(*body.Title) > 200 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.title", *body.Title, utf8.RuneCountInString(*body.Title), 200, false))
		}
	}
	if body.Description != nil {
		if utf8.RuneCountInString(*body.Description) > 2000 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.description", *body.Description, utf8.RuneCountInString(*body.Description), 2000, false))
		}
	}
	if body.StartDate != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.start_date", *body.StartDate, goa.FormatDateTime))
	}
	if body.AssigneeEmail != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.assignee_email", *body.AssigneeEmail, goa.FormatEmail))
	}
	if body.Status != nil {
		if !(*body.Status == "open" || *body.Status == "paused" || *body.Status == "done") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"open", "paused", "done"}))
		}
	}
	return
}

// ValidateCreateClientRequestBody runs the validations defined on
// Create-ClientRequestBody
func ValidateCreateClientRequestBody(body *CreateClientRequestBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.Name != nil {
		if utf8.RuneCountInString(*body.Name) > 200 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", *body.Name, utf8.RuneCountInString(*body.Name), 200, false))
		}
	}
	if body.OrgNumber != nil {
		err = goa.MergeErrors(err, goa.ValidatePattern("body.org_number", *body.OrgNumber, "^\\d{9}$"))
	}
	if body.ContactEmail != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.contact_email", *body.ContactEmail, goa.FormatEmail))
	}
	return
}

// ValidateUpdateClientRequestBody runs the validations defined on
// Update-ClientRequestBody
func ValidateUpdateClientRequestBody(body *UpdateClientRequestBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.Name != nil {
		if utf8.RuneCountInString(*body.Name) > 200 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", *body.Name, utf8.RuneCountInString(*body.Name), 200, false))
		}
	}
	if body.OrgNumber != nil {
		err = goa.MergeErrors(err, goa.ValidatePattern("body.org_number", *body.OrgNumber, "^\\d{9}$"))
	}
	if body.ContactEmail != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.contact_email", *body.ContactEmail, goa.FormatEmail))
	}
	return
}
