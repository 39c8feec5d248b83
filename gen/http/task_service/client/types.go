// Code generated by goa v3.23.1, DO NOT EDIT.
//
// Task Service HTTP client types
//
// Command:
// $ goa gen github.com/StianAK82/RegnskapSky-sub001/design

package client

import (
	"unicode/utf8"

	taskservice "github.com/StianAK82/RegnskapSky-sub001/gen/task_service"
	goa "goa.design/goa/v3/pkg"
)

// CreateTaskRequestBody is the type of the "Task Service" service
// "create-task" endpoint HTTP request body.
type CreateTaskRequestBody struct {
	// The unique identifier of the client
	ClientUID string `form:"client_uid" json:"client_uid" xml:"client_uid"`
	// The title of the task
	Title string `form:"title" json:"title" xml:"title"`
	// The description of the task
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// The frequency as written by the user, in Norwegian or English
	FrequencyLabel *string `form:"frequency_label,omitempty" json:"frequency_label,omitempty" xml:"frequency_label,omitempty"`
	// The start date anchoring the task schedule
	StartDate string `form:"start_date" json:"start_date" xml:"start_date"`
	// The email of the accountant responsible for the task
	AssigneeEmail *string `form:"assignee_email,omitempty" json:"assignee_email,omitempty" xml:"assignee_email,omitempty"`
	// The status of the task
	Status string `form:"status" json:"status" xml:"status"`
}

// UpdateTaskRequestBody is the type of the "Task Service" service
// "update-task" endpoint HTTP request body.
type UpdateTaskRequestBody struct {
	// The unique identifier of the client
	ClientUID string `form:"client_uid" json:"client_uid" xml:"client_uid"`
	// The title of the task
	Title string `form:"title" json:"title" xml:"title"`
	// The description of the task
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// The frequency as written by the user, in Norwegian or English
	FrequencyLabel *string `form:"frequency_label,omitempty" json:"frequency_label,omitempty" xml:"frequency_label,omitempty"`
	// The start date anchoring the task schedule
	StartDate string `form:"start_date" json:"start_date" xml:"start_date"`
	// The email of the accountant responsible for the task
	AssigneeEmail *string `form:"assignee_email,omitempty" json:"assignee_email,omitempty" xml:"assignee_email,omitempty"`
	// The status of the task
	Status string `form:"status" json:"status" xml:"status"`
}

// CreateClientRequestBody is the type of the "Task Service" service
// "create-client" endpoint HTTP request body.
type CreateClientRequestBody struct {
	// The name of the client
	Name string `form:"name" json:"name" xml:"name"`
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
	Name string `form:"name" json:"name" xml:"name"`
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
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
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
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
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
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// CreateTaskBadRequestResponseBody is the type of the "Task Service" service
// "create-task" endpoint HTTP response body for the "BadRequest" error.
type CreateTaskBadRequestResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// CreateTaskInternalServerErrorResponseBody is the type of the "Task Service"
// service "create-task" endpoint HTTP response body for the
// "InternalServerError" error.
type CreateTaskInternalServerErrorResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// CreateTaskNotFoundResponseBody is the type of the "Task Service" service
// "create-task" endpoint HTTP response body for the "NotFound" error.
type CreateTaskNotFoundResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// CreateTaskServiceUnavailableResponseBody is the type of the "Task Service"
// service "create-task" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type CreateTaskServiceUnavailableResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// CreateTaskUnauthorizedResponseBody is the type of the "Task Service" service
// "create-task" endpoint HTTP response body for the "Unauthorized" error.
type CreateTaskUnauthorizedResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetTaskBadRequestResponseBody is the type of the "Task Service" service
// "get-task" endpoint HTTP response body for the "BadRequest" error.
type GetTaskBadRequestResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetTaskInternalServerErrorResponseBody is the type of the "Task Service"
// service "get-task" endpoint HTTP response body for the "InternalServerError"
// error.
type GetTaskInternalServerErrorResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetTaskNotFoundResponseBody is the type of the "Task Service" service
// "get-task" endpoint HTTP response body for the "NotFound" error.
type GetTaskNotFoundResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetTaskServiceUnavailableResponseBody is the type of the "Task Service"
// service "get-task" endpoint HTTP response body for the "ServiceUnavailable"
// error.
type GetTaskServiceUnavailableResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetTaskUnauthorizedResponseBody is the type of the "Task Service" service
// "get-task" endpoint HTTP response body for the "Unauthorized" error.
type GetTaskUnauthorizedResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// UpdateTaskBadRequestResponseBody is the type of the "Task Service" service
// "update-task" endpoint HTTP response body for the "BadRequest" error.
type UpdateTaskBadRequestResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// UpdateTaskConflictResponseBody is the type of the "Task Service" service
// "update-task" endpoint HTTP response body for the "Conflict" error.
type UpdateTaskConflictResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// UpdateTaskInternalServerErrorResponseBody is the type of the "Task Service"
// service "update-task" endpoint HTTP response body for the
// "InternalServerError" error.
type UpdateTaskInternalServerErrorResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// UpdateTaskNotFoundResponseBody is the type of the "Task Service" service
// "update-task" endpoint HTTP response body for the "NotFound" error.
type UpdateTaskNotFoundResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// UpdateTaskServiceUnavailableResponseBody is the type of the "Task Service"
// service "update-task" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type UpdateTaskServiceUnavailableResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// UpdateTaskUnauthorizedResponseBody is the type of the "Task Service" service
// "update-task" endpoint HTTP response body for the "Unauthorized" error.
type UpdateTaskUnauthorizedResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// DeleteTaskBadRequestResponseBody is the type of the "Task Service" service
// "delete-task" endpoint HTTP response body for the "BadRequest" error.
type DeleteTaskBadRequestResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// DeleteTaskConflictResponseBody is the type of the "Task Service" service
// "delete-task" endpoint HTTP response body for the "Conflict" error.
type DeleteTaskConflictResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// DeleteTaskInternalServerErrorResponseBody is the type of the "Task Service"
// service "delete-task" endpoint HTTP response body for the
// "InternalServerError" error.
type DeleteTaskInternalServerErrorResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// DeleteTaskNotFoundResponseBody is the type of the "Task Service" service
// "delete-task" endpoint HTTP response body for the "NotFound" error.
type DeleteTaskNotFoundResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// DeleteTaskServiceUnavailableResponseBody is the type of the "Task Service"
// service "delete-task" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type DeleteTaskServiceUnavailableResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// DeleteTaskUnauthorizedResponseBody is the type of the "Task Service" service
// "delete-task" endpoint HTTP response body for the "Unauthorized" error.
type DeleteTaskUnauthorizedResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// ListTasksBadRequestResponseBody is the type of the "Task Service" service
// "list-tasks" endpoint HTTP response body for the "BadRequest" error.
type ListTasksBadRequestResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// ListTasksInternalServerErrorResponseBody is the type of the "Task Service"
// service "list-tasks" endpoint HTTP response body for the
// "InternalServerError" error.
type ListTasksInternalServerErrorResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// ListTasksServiceUnavailableResponseBody is the type of the "Task Service"
// service "list-tasks" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type ListTasksServiceUnavailableResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// ListTasksUnauthorizedResponseBody is the type of the "Task Service" service
// "list-tasks" endpoint HTTP response body for the "Unauthorized" error.
type ListTasksUnauthorizedResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetTaskScheduleBadRequestResponseBody is the type of the "Task Service"
// service "get-task-schedule" endpoint HTTP response body for the "BadRequest"
// error.
type GetTaskScheduleBadRequestResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetTaskScheduleInternalServerErrorResponseBody is the type of the "Task
// Service" service "get-task-schedule" endpoint HTTP response body for the
// "InternalServerError" error.
type GetTaskScheduleInternalServerErrorResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetTaskScheduleNotFoundResponseBody is the type of the "Task Service"
// service "get-task-schedule" endpoint HTTP response body for the "NotFound"
// error.
type GetTaskScheduleNotFoundResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetTaskScheduleServiceUnavailableResponseBody is the type of the "Task
// Service" service "get-task-schedule" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type GetTaskScheduleServiceUnavailableResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetTaskScheduleUnauthorizedResponseBody is the type of the "Task Service"
// service "get-task-schedule" endpoint HTTP response body for the
// "Unauthorized" error.
type GetTaskScheduleUnauthorizedResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// CreateClientBadRequestResponseBody is the type of the "Task Service" service
// "create-client" endpoint HTTP response body for the "BadRequest" error.
type CreateClientBadRequestResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// CreateClientInternalServerErrorResponseBody is the type of the "Task
// Service" service "create-client" endpoint HTTP response body for the
// "InternalServerError" error.
type CreateClientInternalServerErrorResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// CreateClientServiceUnavailableResponseBody is the type of the "Task Service"
// service "create-client" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type CreateClientServiceUnavailableResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// CreateClientUnauthorizedResponseBody is the type of the "Task Service"
// service "create-client" endpoint HTTP response body for the "Unauthorized"
// error.
type CreateClientUnauthorizedResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetClientBadRequestResponseBody is the type of the "Task Service" service
// "get-client" endpoint HTTP response body for the "BadRequest" error.
type GetClientBadRequestResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetClientInternalServerErrorResponseBody is the type of the "Task Service"
// service "get-client" endpoint HTTP response body for the
// "InternalServerError" error.
type GetClientInternalServerErrorResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetClientNotFoundResponseBody is the type of the "Task Service" service
// "get-client" endpoint HTTP response body for the "NotFound" error.
type GetClientNotFoundResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetClientServiceUnavailableResponseBody is the type of the "Task Service"
// service "get-client" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type GetClientServiceUnavailableResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// GetClientUnauthorizedResponseBody is the type of the "Task Service" service
// "get-client" endpoint HTTP response body for the "Unauthorized" error.
type GetClientUnauthorizedResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// UpdateClientBadRequestResponseBody is the type of the "Task Service" service
// "update-client" endpoint HTTP response body for the "BadRequest" error.
type UpdateClientBadRequestResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// UpdateClientConflictResponseBody is the type of the "Task Service" service
// "update-client" endpoint HTTP response body for the "Conflict" error.
type UpdateClientConflictResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// UpdateClientInternalServerErrorResponseBody is the type of the "Task
// Service" service "update-client" endpoint HTTP response body for the
// "InternalServerError" error.
type UpdateClientInternalServerErrorResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// UpdateClientNotFoundResponseBody is the type of the "Task Service" service
// "update-client" endpoint HTTP response body for the "NotFound" error.
type UpdateClientNotFoundResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// UpdateClientServiceUnavailableResponseBody is the type of the "Task Service"
// service "update-client" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type UpdateClientServiceUnavailableResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// UpdateClientUnauthorizedResponseBody is the type of the "Task Service"
// service "update-client" endpoint HTTP response body for the "Unauthorized"
// error.
type UpdateClientUnauthorizedResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// DeleteClientBadRequestResponseBody is the type of the "Task Service" service
// "delete-client" endpoint HTTP response body for the "BadRequest" error.
type DeleteClientBadRequestResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// DeleteClientConflictResponseBody is the type of the "Task Service" service
// "delete-client" endpoint HTTP response body for the "Conflict" error.
type DeleteClientConflictResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// DeleteClientInternalServerErrorResponseBody is the type of the "Task
// Service" service "delete-client" endpoint HTTP response body for the
// "InternalServerError" error.
type DeleteClientInternalServerErrorResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// DeleteClientNotFoundResponseBody is the type of the "Task Service" service
// "delete-client" endpoint HTTP response body for the "NotFound" error.
type DeleteClientNotFoundResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// DeleteClientServiceUnavailableResponseBody is the type of the "Task Service"
// service "delete-client" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type DeleteClientServiceUnavailableResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// DeleteClientUnauthorizedResponseBody is the type of the "Task Service"
// service "delete-client" endpoint HTTP response body for the "Unauthorized"
// error.
type DeleteClientUnauthorizedResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// ListClientsBadRequestResponseBody is the type of the "Task Service" service
// "list-clients" endpoint HTTP response body for the "BadRequest" error.
type ListClientsBadRequestResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// ListClientsInternalServerErrorResponseBody is the type of the "Task Service"
// service "list-clients" endpoint HTTP response body for the
// "InternalServerError" error.
type ListClientsInternalServerErrorResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// ListClientsServiceUnavailableResponseBody is the type of the "Task Service"
// service "list-clients" endpoint HTTP response body for the
// "ServiceUnavailable" error.
type ListClientsServiceUnavailableResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// ListClientsUnauthorizedResponseBody is the type of the "Task Service"
// service "list-clients" endpoint HTTP response body for the "Unauthorized"
// error.
type ListClientsUnauthorizedResponseBody struct {
	// HTTP status code
	Code *string `form:"code,omitempty" json:"code,omitempty" xml:"code,omitempty"`
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
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
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
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
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
	// The date and time the resource was created
	CreatedAt *string `form:"created_at,omitempty" json:"created_at,omitempty" xml:"created_at,omitempty"`
	// The date and time the resource was last updated
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// TaskOccurrenceResponse is used to define fields on response body types.
type TaskOccurrenceResponse struct {
	// The unique identifier of the task
	TaskUID *string `form:"task_uid,omitempty" json:"task_uid,omitempty" xml:"task_uid,omitempty"`
	// The computed due date
	DueDate *string `form:"due_date,omitempty" json:"due_date,omitempty" xml:"due_date,omitempty"`
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

// NewCreateTaskRequestBody builds the HTTP request body from the payload of
// the "create-task" endpoint of the "Task Service" service.
func NewCreateTaskRequestBody(p *taskservice.CreateTaskPayload) *CreateTaskRequestBody {
	body := &CreateTaskRequestBody{
		ClientUID:      p.ClientUID,
		Title:          p.Title,
		Description:    p.Description,
		FrequencyLabel: p.FrequencyLabel,
		StartDate:      p.StartDate,
		AssigneeEmail:  p.AssigneeEmail,
		Status:         p.Status,
	}
	{
		var zero string
		if body.Status == zero {
			body.Status = "open"
		}
	}
	return body
}

// NewUpdateTaskRequestBody builds the HTTP request body from the payload of
// the "update-task" endpoint of the "Task Service" service.
func NewUpdateTaskRequestBody(p *taskservice.UpdateTaskPayload) *UpdateTaskRequestBody {
	body := &UpdateTaskRequestBody{
		ClientUID:      p.ClientUID,
		Title:          p.Title,
		Description:    p.Description,
		FrequencyLabel: p.FrequencyLabel,
		StartDate:      p.StartDate,
		AssigneeEmail:  p.AssigneeEmail,
		Status:         p.Status,
	}
	{
		var zero string
		if body.Status == zero {
			body.Status = "open"
		}
	}
	return body
}

// NewCreateClientRequestBody builds the HTTP request body from the payload of
// the "create-client" endpoint of the "Task Service" service.
func NewCreateClientRequestBody(p *taskservice.CreateClientPayload) *CreateClientRequestBody {
	body := &CreateClientRequestBody{
		Name:         p.Name,
		OrgNumber:    p.OrgNumber,
		ContactName:  p.ContactName,
		ContactEmail: p.ContactEmail,
	}
	return body
}

// NewUpdateClientRequestBody builds the HTTP request body from the payload of
// the "update-client" endpoint of the "Task Service" service.
func NewUpdateClientRequestBody(p *taskservice.UpdateClientPayload) *UpdateClientRequestBody {
	body := &UpdateClientRequestBody{
		Name:         p.Name,
		OrgNumber:    p.OrgNumber,
		ContactName:  p.ContactName,
		ContactEmail: p.ContactEmail,
	}
	return body
}

// NewReadyzServiceUnavailable builds a Task Service service readyz endpoint
// ServiceUnavailable error.
func NewReadyzServiceUnavailable(body *ReadyzServiceUnavailableResponseBody) *taskservice.ServiceUnavailableError {
	v := &taskservice.ServiceUnavailableError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewCreateTaskTaskCreated builds a "Task Service" service "create-task"
// endpoint result from a HTTP "Created" response.
func NewCreateTaskTaskCreated(body *CreateTaskResponseBody) *taskservice.Task {
	v := &taskservice.Task{
		UID:            body.UID,
		ClientUID:      body.ClientUID,
		Title:          body.Title,
		Description:    body.Description,
		FrequencyLabel: body.FrequencyLabel,
		Frequency:      body.Frequency,
		StartDate:      body.StartDate,
		NextDue:        body.NextDue,
		AssigneeEmail:  body.AssigneeEmail,
		CreatedAt:      body.CreatedAt,
		UpdatedAt:      body.UpdatedAt,
	}
	if body.Status != nil {
		v.Status = *body.Status
	}
	if body.Status == nil {
		v.Status = "open"
	}

	return v
}

// NewCreateTaskBadRequest builds a Task Service service create-task endpoint
// BadRequest error.
func NewCreateTaskBadRequest(body *CreateTaskBadRequestResponseBody) *taskservice.BadRequestError {
	v := &taskservice.BadRequestError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewCreateTaskInternalServerError builds a Task Service service create-task
// endpoint InternalServerError error.
func NewCreateTaskInternalServerError(body *CreateTaskInternalServerErrorResponseBody) *taskservice.InternalServerError {
	v := &taskservice.InternalServerError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewCreateTaskNotFound builds a Task Service service create-task endpoint
// NotFound error.
func NewCreateTaskNotFound(body *CreateTaskNotFoundResponseBody) *taskservice.NotFoundError {
	v := &taskservice.NotFoundError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewCreateTaskServiceUnavailable builds a Task Service service create-task
// endpoint ServiceUnavailable error.
func NewCreateTaskServiceUnavailable(body *CreateTaskServiceUnavailableResponseBody) *taskservice.ServiceUnavailableError {
	v := &taskservice.ServiceUnavailableError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewCreateTaskUnauthorized builds a Task Service service create-task endpoint
// Unauthorized error.
func NewCreateTaskUnauthorized(body *CreateTaskUnauthorizedResponseBody) *taskservice.UnauthorizedError {
	v := &taskservice.UnauthorizedError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetTaskResultOK builds a "Task Service" service "get-task" endpoint
// result from a HTTP "OK" response.
func NewGetTaskResultOK(body *GetTaskResponseBody, etag *string) *taskservice.GetTaskResult {
	v := &taskservice.Task{
		UID:            body.UID,
		ClientUID:      body.ClientUID,
		Title:          body.Title,
		Description:    body.Description,
		FrequencyLabel: body.FrequencyLabel,
		Frequency:      body.Frequency,
		StartDate:      body.StartDate,
		NextDue:        body.NextDue,
		AssigneeEmail:  body.AssigneeEmail,
		CreatedAt:      body.CreatedAt,
		UpdatedAt:      body.UpdatedAt,
	}
	if body.Status != nil {
		v.Status = *body.Status
	}
	if body.Status == nil {
		v.Status = "open"
	}
	res := &taskservice.GetTaskResult{
		Task: v,
	}
	res.Etag = etag

	return res
}

// NewGetTaskBadRequest builds a Task Service service get-task endpoint
// BadRequest error.
func NewGetTaskBadRequest(body *GetTaskBadRequestResponseBody) *taskservice.BadRequestError {
	v := &taskservice.BadRequestError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetTaskInternalServerError builds a Task Service service get-task
// endpoint InternalServerError error.
func NewGetTaskInternalServerError(body *GetTaskInternalServerErrorResponseBody) *taskservice.InternalServerError {
	v := &taskservice.InternalServerError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetTaskNotFound builds a Task Service service get-task endpoint NotFound
// error.
func NewGetTaskNotFound(body *GetTaskNotFoundResponseBody) *taskservice.NotFoundError {
	v := &taskservice.NotFoundError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetTaskServiceUnavailable builds a Task Service service get-task endpoint
// ServiceUnavailable error.
func NewGetTaskServiceUnavailable(body *GetTaskServiceUnavailableResponseBody) *taskservice.ServiceUnavailableError {
	v := &taskservice.ServiceUnavailableError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetTaskUnauthorized builds a Task Service service get-task endpoint
// Unauthorized error.
func NewGetTaskUnauthorized(body *GetTaskUnauthorizedResponseBody) *taskservice.UnauthorizedError {
	v := &taskservice.UnauthorizedError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewUpdateTaskTaskOK builds a "Task Service" service "update-task" endpoint
// result from a HTTP "OK" response.
func NewUpdateTaskTaskOK(body *UpdateTaskResponseBody) *taskservice.Task {
	v := &taskservice.Task{
		UID:            body.UID,
		ClientUID:      body.ClientUID,
		Title:          body.Title,
		Description:    body.Description,
		FrequencyLabel: body.FrequencyLabel,
		Frequency:      body.Frequency,
		StartDate:      body.StartDate,
		NextDue:        body.NextDue,
		AssigneeEmail:  body.AssigneeEmail,
		CreatedAt:      body.CreatedAt,
		UpdatedAt:      body.UpdatedAt,
	}
	if body.Status != nil {
		v.Status = *body.Status
	}
	if body.Status == nil {
		v.Status = "open"
	}

	return v
}

// NewUpdateTaskBadRequest builds a Task Service service update-task endpoint
// BadRequest error.
func NewUpdateTaskBadRequest(body *UpdateTaskBadRequestResponseBody) *taskservice.BadRequestError {
	v := &taskservice.BadRequestError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewUpdateTaskConflict builds a Task Service service update-task endpoint
// Conflict error.
func NewUpdateTaskConflict(body *UpdateTaskConflictResponseBody) *taskservice.ConflictError {
	v := &taskservice.ConflictError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewUpdateTaskInternalServerError builds a Task Service service update-task
// endpoint InternalServerError error.
func NewUpdateTaskInternalServerError(body *UpdateTaskInternalServerErrorResponseBody) *taskservice.InternalServerError {
	v := &taskservice.InternalServerError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewUpdateTaskNotFound builds a Task Service service update-task endpoint
// NotFound error.
func NewUpdateTaskNotFound(body *UpdateTaskNotFoundResponseBody) *taskservice.NotFoundError {
	v := &taskservice.NotFoundError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewUpdateTaskServiceUnavailable builds a Task Service service update-task
// endpoint ServiceUnavailable error.
func NewUpdateTaskServiceUnavailable(body *UpdateTaskServiceUnavailableResponseBody) *taskservice.ServiceUnavailableError {
	v := &taskservice.ServiceUnavailableError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewUpdateTaskUnauthorized builds a Task Service service update-task endpoint
// Unauthorized error.
func NewUpdateTaskUnauthorized(body *UpdateTaskUnauthorizedResponseBody) *taskservice.UnauthorizedError {
	v := &taskservice.UnauthorizedError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewDeleteTaskBadRequest builds a Task Service service delete-task endpoint
// BadRequest error.
func NewDeleteTaskBadRequest(body *DeleteTaskBadRequestResponseBody) *taskservice.BadRequestError {
	v := &taskservice.BadRequestError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewDeleteTaskConflict builds a Task Service service delete-task endpoint
// Conflict error.
func NewDeleteTaskConflict(body *DeleteTaskConflictResponseBody) *taskservice.ConflictError {
	v := &taskservice.ConflictError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewDeleteTaskInternalServerError builds a Task Service service delete-task
// endpoint InternalServerError error.
func NewDeleteTaskInternalServerError(body *DeleteTaskInternalServerErrorResponseBody) *taskservice.InternalServerError {
	v := &taskservice.InternalServerError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewDeleteTaskNotFound builds a Task Service service delete-task endpoint
// NotFound error.
func NewDeleteTaskNotFound(body *DeleteTaskNotFoundResponseBody) *taskservice.NotFoundError {
	v := &taskservice.NotFoundError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewDeleteTaskServiceUnavailable builds a Task Service service delete-task
// endpoint ServiceUnavailable error.
func NewDeleteTaskServiceUnavailable(body *DeleteTaskServiceUnavailableResponseBody) *taskservice.ServiceUnavailableError {
	v := &taskservice.ServiceUnavailableError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewDeleteTaskUnauthorized builds a Task Service service delete-task endpoint
// Unauthorized error.
func NewDeleteTaskUnauthorized(body *DeleteTaskUnauthorizedResponseBody) *taskservice.UnauthorizedError {
	v := &taskservice.UnauthorizedError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewListTasksTaskOK builds a "Task Service" service "list-tasks" endpoint
// result from a HTTP "OK" response.
func NewListTasksTaskOK(body []*TaskResponse) []*taskservice.Task {
	v := make([]*taskservice.Task, len(body))
	for i, val := range body {
		if val == nil {
			v[i] = nil
			continue
		}
		v[i] = unmarshalTaskResponseToTaskserviceTask(val)
	}

	return v
}

// NewListTasksBadRequest builds a Task Service service list-tasks endpoint
// BadRequest error.
func NewListTasksBadRequest(body *ListTasksBadRequestResponseBody) *taskservice.BadRequestError {
	v := &taskservice.BadRequestError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewListTasksInternalServerError builds a Task Service service list-tasks
// endpoint InternalServerError error.
func NewListTasksInternalServerError(body *ListTasksInternalServerErrorResponseBody) *taskservice.InternalServerError {
	v := &taskservice.InternalServerError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewListTasksServiceUnavailable builds a Task Service service list-tasks
// endpoint ServiceUnavailable error.
func NewListTasksServiceUnavailable(body *ListTasksServiceUnavailableResponseBody) *taskservice.ServiceUnavailableError {
	v := &taskservice.ServiceUnavailableError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewListTasksUnauthorized builds a Task Service service list-tasks endpoint
// Unauthorized error.
func NewListTasksUnauthorized(body *ListTasksUnauthorizedResponseBody) *taskservice.UnauthorizedError {
	v := &taskservice.UnauthorizedError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetTaskScheduleTaskOccurrenceOK builds a "Task Service" service
// "get-task-schedule" endpoint result from a HTTP "OK" response.
func NewGetTaskScheduleTaskOccurrenceOK(body []*TaskOccurrenceResponse) []*taskservice.TaskOccurrence {
	v := make([]*taskservice.TaskOccurrence, len(body))
	for i, val := range body {
		if val == nil {
			v[i] = nil
			continue
		}
		v[i] = unmarshalTaskOccurrenceResponseToTaskserviceTaskOccurrence(val)
	}

	return v
}

// NewGetTaskScheduleBadRequest builds a Task Service service get-task-schedule
// endpoint BadRequest error.
func NewGetTaskScheduleBadRequest(body *GetTaskScheduleBadRequestResponseBody) *taskservice.BadRequestError {
	v := &taskservice.BadRequestError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetTaskScheduleInternalServerError builds a Task Service service
// get-task-schedule endpoint InternalServerError error.
func NewGetTaskScheduleInternalServerError(body *GetTaskScheduleInternalServerErrorResponseBody) *taskservice.InternalServerError {
	v := &taskservice.InternalServerError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetTaskScheduleNotFound builds a Task Service service get-task-schedule
// endpoint NotFound error.
func NewGetTaskScheduleNotFound(body *GetTaskScheduleNotFoundResponseBody) *taskservice.NotFoundError {
	v := &taskservice.NotFoundError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetTaskScheduleServiceUnavailable builds a Task Service service
// get-task-schedule endpoint ServiceUnavailable error.
func NewGetTaskScheduleServiceUnavailable(body *GetTaskScheduleServiceUnavailableResponseBody) *taskservice.ServiceUnavailableError {
	v := &taskservice.ServiceUnavailableError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetTaskScheduleUnauthorized builds a Task Service service
// get-task-schedule endpoint Unauthorized error.
func NewGetTaskScheduleUnauthorized(body *GetTaskScheduleUnauthorizedResponseBody) *taskservice.UnauthorizedError {
	v := &taskservice.UnauthorizedError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewCreateClientClientCreated builds a "Task Service" service "create-client"
// endpoint result from a HTTP "Created" response.
func NewCreateClientClientCreated(body *CreateClientResponseBody) *taskservice.Client {
	v := &taskservice.Client{
		UID:          body.UID,
		Name:         body.Name,
		OrgNumber:    body.OrgNumber,
		ContactName:  body.ContactName,
		ContactEmail: body.ContactEmail,
		CreatedAt:    body.CreatedAt,
		UpdatedAt:    body.UpdatedAt,
	}

	return v
}

// NewCreateClientBadRequest builds a Task Service service create-client
// endpoint BadRequest error.
func NewCreateClientBadRequest(body *CreateClientBadRequestResponseBody) *taskservice.BadRequestError {
	v := &taskservice.BadRequestError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewCreateClientInternalServerError builds a Task Service service
// create-client endpoint InternalServerError error.
func NewCreateClientInternalServerError(body *CreateClientInternalServerErrorResponseBody) *taskservice.InternalServerError {
	v := &taskservice.InternalServerError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewCreateClientServiceUnavailable builds a Task Service service
// create-client endpoint ServiceUnavailable error.
func NewCreateClientServiceUnavailable(body *CreateClientServiceUnavailableResponseBody) *taskservice.ServiceUnavailableError {
	v := &taskservice.ServiceUnavailableError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewCreateClientUnauthorized builds a Task Service service create-client
// endpoint Unauthorized error.
func NewCreateClientUnauthorized(body *CreateClientUnauthorizedResponseBody) *taskservice.UnauthorizedError {
	v := &taskservice.UnauthorizedError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetClientResultOK builds a "Task Service" service "get-client" endpoint
// result from a HTTP "OK" response.
func NewGetClientResultOK(body *GetClientResponseBody, etag *string) *taskservice.GetClientResult {
	v := &taskservice.Client{
		UID:          body.UID,
		Name:         body.Name,
		OrgNumber:    body.OrgNumber,
		ContactName:  body.ContactName,
		ContactEmail: body.ContactEmail,
		CreatedAt:    body.CreatedAt,
		UpdatedAt:    body.UpdatedAt,
	}
	res := &taskservice.GetClientResult{
		Client: v,
	}
	res.Etag = etag

	return res
}

// NewGetClientBadRequest builds a Task Service service get-client endpoint
// BadRequest error.
func NewGetClientBadRequest(body *GetClientBadRequestResponseBody) *taskservice.BadRequestError {
	v := &taskservice.BadRequestError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetClientInternalServerError builds a Task Service service get-client
// endpoint InternalServerError error.
func NewGetClientInternalServerError(body *GetClientInternalServerErrorResponseBody) *taskservice.InternalServerError {
	v := &taskservice.InternalServerError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetClientNotFound builds a Task Service service get-client endpoint
// NotFound error.
func NewGetClientNotFound(body *GetClientNotFoundResponseBody) *taskservice.NotFoundError {
	v := &taskservice.NotFoundError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetClientServiceUnavailable builds a Task Service service get-client
// endpoint ServiceUnavailable error.
func NewGetClientServiceUnavailable(body *GetClientServiceUnavailableResponseBody) *taskservice.ServiceUnavailableError {
	v := &taskservice.ServiceUnavailableError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewGetClientUnauthorized builds a Task Service service get-client endpoint
// Unauthorized error.
func NewGetClientUnauthorized(body *GetClientUnauthorizedResponseBody) *taskservice.UnauthorizedError {
	v := &taskservice.UnauthorizedError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewUpdateClientClientOK builds a "Task Service" service "update-client"
// endpoint result from a HTTP "OK" response.
func NewUpdateClientClientOK(body *UpdateClientResponseBody) *taskservice.Client {
	v := &taskservice.Client{
		UID:          body.UID,
		Name:         body.Name,
		OrgNumber:    body.OrgNumber,
		ContactName:  body.ContactName,
		ContactEmail: body.ContactEmail,
		CreatedAt:    body.CreatedAt,
		UpdatedAt:    body.UpdatedAt,
	}

	return v
}

// NewUpdateClientBadRequest builds a Task Service service update-client
// endpoint BadRequest error.
func NewUpdateClientBadRequest(body *UpdateClientBadRequestResponseBody) *taskservice.BadRequestError {
	v := &taskservice.BadRequestError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewUpdateClientConflict builds a Task Service service update-client endpoint
// Conflict error.
func NewUpdateClientConflict(body *UpdateClientConflictResponseBody) *taskservice.ConflictError {
	v := &taskservice.ConflictError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewUpdateClientInternalServerError builds a Task Service service
// update-client endpoint InternalServerError error.
func NewUpdateClientInternalServerError(body *UpdateClientInternalServerErrorResponseBody) *taskservice.InternalServerError {
	v := &taskservice.InternalServerError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewUpdateClientNotFound builds a Task Service service update-client endpoint
// NotFound error.
func NewUpdateClientNotFound(body *UpdateClientNotFoundResponseBody) *taskservice.NotFoundError {
	v := &taskservice.NotFoundError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewUpdateClientServiceUnavailable builds a Task Service service
// update-client endpoint ServiceUnavailable error.
func NewUpdateClientServiceUnavailable(body *UpdateClientServiceUnavailableResponseBody) *taskservice.ServiceUnavailableError {
	v := &taskservice.ServiceUnavailableError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewUpdateClientUnauthorized builds a Task Service service update-client
// endpoint Unauthorized error.
func NewUpdateClientUnauthorized(body *UpdateClientUnauthorizedResponseBody) *taskservice.UnauthorizedError {
	v := &taskservice.UnauthorizedError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewDeleteClientBadRequest builds a Task Service service delete-client
// endpoint BadRequest error.
func NewDeleteClientBadRequest(body *DeleteClientBadRequestResponseBody) *taskservice.BadRequestError {
	v := &taskservice.BadRequestError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewDeleteClientConflict builds a Task Service service delete-client endpoint
// Conflict error.
func NewDeleteClientConflict(body *DeleteClientConflictResponseBody) *taskservice.ConflictError {
	v := &taskservice.ConflictError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewDeleteClientInternalServerError builds a Task Service service
// delete-client endpoint InternalServerError error.
func NewDeleteClientInternalServerError(body *DeleteClientInternalServerErrorResponseBody) *taskservice.InternalServerError {
	v := &taskservice.InternalServerError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewDeleteClientNotFound builds a Task Service service delete-client endpoint
// NotFound error.
func NewDeleteClientNotFound(body *DeleteClientNotFoundResponseBody) *taskservice.NotFoundError {
	v := &taskservice.NotFoundError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewDeleteClientServiceUnavailable builds a Task Service service
// delete-client endpoint ServiceUnavailable error.
func NewDeleteClientServiceUnavailable(body *DeleteClientServiceUnavailableResponseBody) *taskservice.ServiceUnavailableError {
	v := &taskservice.ServiceUnavailableError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewDeleteClientUnauthorized builds a Task Service service delete-client
// endpoint Unauthorized error.
func NewDeleteClientUnauthorized(body *DeleteClientUnauthorizedResponseBody) *taskservice.UnauthorizedError {
	v := &taskservice.UnauthorizedError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewListClientsClientOK builds a "Task Service" service "list-clients"
// endpoint result from a HTTP "OK" response.
func NewListClientsClientOK(body []*ClientResponse) []*taskservice.Client {
	v := make([]*taskservice.Client, len(body))
	for i, val := range body {
		if val == nil {
			v[i] = nil
			continue
		}
		v[i] = unmarshalClientResponseToTaskserviceClient(val)
	}

	return v
}

// NewListClientsBadRequest builds a Task Service service list-clients endpoint
// BadRequest error.
func NewListClientsBadRequest(body *ListClientsBadRequestResponseBody) *taskservice.BadRequestError {
	v := &taskservice.BadRequestError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewListClientsInternalServerError builds a Task Service service list-clients
// endpoint InternalServerError error.
func NewListClientsInternalServerError(body *ListClientsInternalServerErrorResponseBody) *taskservice.InternalServerError {
	v := &taskservice.InternalServerError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewListClientsServiceUnavailable builds a Task Service service list-clients
// endpoint ServiceUnavailable error.
func NewListClientsServiceUnavailable(body *ListClientsServiceUnavailableResponseBody) *taskservice.ServiceUnavailableError {
	v := &taskservice.ServiceUnavailableError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// NewListClientsUnauthorized builds a Task Service service list-clients
// endpoint Unauthorized error.
func NewListClientsUnauthorized(body *ListClientsUnauthorizedResponseBody) *taskservice.UnauthorizedError {
	v := &taskservice.UnauthorizedError{
		Code:    *body.Code,
		Message: *body.Message,
	}

	return v
}

// ValidateCreateTaskResponseBody runs the validations defined on
// Create-TaskResponseBody
func ValidateCreateTaskResponseBody(body *CreateTaskResponseBody) (err error) {
	if body.UID != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.uid", *body.UID, goa.FormatUUID))
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
	if body.Frequency != nil {
		if !(*body.Frequency == "daily" || *body.Frequency == "weekly" || *body.Frequency == "monthly" || *body.Frequency == "bi-monthly" || *body.Frequency == "quarterly" || *body.Frequency == "yearly" || *body.Frequency == "once") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.frequency", *body.Frequency, []any{"daily", "weekly", "monthly", "bi-monthly", "quarterly", "yearly", "once"}))
		}
	}
	if body.StartDate != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.start_date", *body.StartDate, goa.FormatDateTime))
	}
	if body.NextDue != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.next_due", *body.NextDue, goa.FormatDateTime))
	}
	if body.AssigneeEmail != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.assignee_email", *body.AssigneeEmail, goa.FormatEmail))
	}
	if body.Status != nil {
		if !(*body.Status == "open" || *body.Status == "paused" || *body.Status == "done") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"open", "paused", "done"}))
		}
	}
	if body.CreatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.created_at", *body.CreatedAt, goa.FormatDateTime))
	}
	if body.UpdatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.updated_at", *body.UpdatedAt, goa.FormatDateTime))
	}
	return
}

// ValidateGetTaskResponseBody runs the validations defined on
// Get-TaskResponseBody
func ValidateGetTaskResponseBody(body *GetTaskResponseBody) (err error) {
	if body.UID != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.uid", *body.UID, goa.FormatUUID))
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
	if body.Frequency != nil {
		if !(*body.Frequency == "daily" || *body.Frequency == "weekly" || *body.Frequency == "monthly" || *body.Frequency == "bi-monthly" || *body.Frequency == "quarterly" || *body.Frequency == "yearly" || *body.Frequency == "once") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.frequency", *body.Frequency, []any{"daily", "weekly", "monthly", "bi-monthly", "quarterly", "yearly", "once"}))
		}
	}
	if body.StartDate != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.start_date", *body.StartDate, goa.FormatDateTime))
	}
	if body.NextDue != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.next_due", *body.NextDue, goa.FormatDateTime))
	}
	if body.AssigneeEmail != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.assignee_email", *body.AssigneeEmail, goa.FormatEmail))
	}
	if body.Status != nil {
		if !(*body.Status == "open" || *body.Status == "paused" || *body.Status == "done") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"open", "paused", "done"}))
		}
	}
	if body.CreatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.created_at", *body.CreatedAt, goa.FormatDateTime))
	}
	if body.UpdatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.updated_at", *body.UpdatedAt, goa.FormatDateTime))
	}
	return
}

// ValidateUpdateTaskResponseBody runs the validations defined on
// Update-TaskResponseBody
func ValidateUpdateTaskResponseBody(body *UpdateTaskResponseBody) (err error) {
	if body.UID != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.uid", *body.UID, goa.FormatUUID))
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
	if body.Frequency != nil {
		if !(*body.Frequency == "daily" || *body.Frequency == "weekly" || *body.Frequency == "monthly" || *body.Frequency == "bi-monthly" || *body.Frequency == "quarterly" || *body.Frequency == "yearly" || *body.Frequency == "once") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.frequency", *body.Frequency, []any{"daily", "weekly", "monthly", "bi-monthly", "quarterly", "yearly", "once"}))
		}
	}
	if body.StartDate != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.start_date", *body.StartDate, goa.FormatDateTime))
	}
	if body.NextDue != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.next_due", *body.NextDue, goa.FormatDateTime))
	}
	if body.AssigneeEmail != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.assignee_email", *body.AssigneeEmail, goa.FormatEmail))
	}
	if body.Status != nil {
		if !(*body.Status == "open" || *body.Status == "paused" || *body.Status == "done") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"open", "paused", "done"}))
		}
	}
	if body.CreatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.created_at", *body.CreatedAt, goa.FormatDateTime))
	}
	if body.UpdatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.updated_at", *body.UpdatedAt, goa.FormatDateTime))
	}
	return
}

// ValidateCreateClientResponseBody runs the validations defined on
// Create-ClientResponseBody
func ValidateCreateClientResponseBody(body *CreateClientResponseBody) (err error) {
	if body.UID != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.uid", *body.UID, goa.FormatUUID))
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
	if body.CreatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.created_at", *body.CreatedAt, goa.FormatDateTime))
	}
	if body.UpdatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.updated_at", *body.UpdatedAt, goa.FormatDateTime))
	}
	return
}

// ValidateGetClientResponseBody runs the validations defined on
// Get-ClientResponseBody
func ValidateGetClientResponseBody(body *GetClientResponseBody) (err error) {
	if body.UID != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.uid", *body.UID, goa.FormatUUID))
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
	if body.CreatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.created_at", *body.CreatedAt, goa.FormatDateTime))
	}
	if body.UpdatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.updated_at", *body.UpdatedAt, goa.FormatDateTime))
	}
	return
}

// ValidateUpdateClientResponseBody runs the validations defined on
// Update-ClientResponseBody
func ValidateUpdateClientResponseBody(body *UpdateClientResponseBody) (err error) {
	if body.UID != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.uid", *body.UID, goa.FormatUUID))
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
	if body.CreatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.created_at", *body.CreatedAt, goa.FormatDateTime))
	}
	if body.UpdatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.updated_at", *body.UpdatedAt, goa.FormatDateTime))
	}
	return
}

// ValidateReadyzServiceUnavailableResponseBody runs the validations defined on
// readyz_ServiceUnavailable_response_body
func ValidateReadyzServiceUnavailableResponseBody(body *ReadyzServiceUnavailableResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateCreateTaskBadRequestResponseBody runs the validations defined on
// create-task_BadRequest_response_body
func ValidateCreateTaskBadRequestResponseBody(body *CreateTaskBadRequestResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateCreateTaskInternalServerErrorResponseBody runs the validations
// defined on create-task_InternalServerError_response_body
func ValidateCreateTaskInternalServerErrorResponseBody(body *CreateTaskInternalServerErrorResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateCreateTaskNotFoundResponseBody runs the validations defined on
// create-task_NotFound_response_body
func ValidateCreateTaskNotFoundResponseBody(body *CreateTaskNotFoundResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateCreateTaskServiceUnavailableResponseBody runs the validations
// defined on create-task_ServiceUnavailable_response_body
func ValidateCreateTaskServiceUnavailableResponseBody(body *CreateTaskServiceUnavailableResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateCreateTaskUnauthorizedResponseBody runs the validations defined on
// create-task_Unauthorized_response_body
func ValidateCreateTaskUnauthorizedResponseBody(body *CreateTaskUnauthorizedResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetTaskBadRequestResponseBody runs the validations defined on
// get-task_BadRequest_response_body
func ValidateGetTaskBadRequestResponseBody(body *GetTaskBadRequestResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetTaskInternalServerErrorResponseBody runs the validations defined
// on get-task_InternalServerError_response_body
func ValidateGetTaskInternalServerErrorResponseBody(body *GetTaskInternalServerErrorResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetTaskNotFoundResponseBody runs the validations defined on
// get-task_NotFound_response_body
func ValidateGetTaskNotFoundResponseBody(body *GetTaskNotFoundResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetTaskServiceUnavailableResponseBody runs the validations defined
// on get-task_ServiceUnavailable_response_body
func ValidateGetTaskServiceUnavailableResponseBody(body *GetTaskServiceUnavailableResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetTaskUnauthorizedResponseBody runs the validations defined on
// get-task_Unauthorized_response_body
func ValidateGetTaskUnauthorizedResponseBody(body *GetTaskUnauthorizedResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateUpdateTaskBadRequestResponseBody runs the validations defined on
// update-task_BadRequest_response_body
func ValidateUpdateTaskBadRequestResponseBody(body *UpdateTaskBadRequestResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateUpdateTaskConflictResponseBody runs the validations defined on
// update-task_Conflict_response_body
func ValidateUpdateTaskConflictResponseBody(body *UpdateTaskConflictResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateUpdateTaskInternalServerErrorResponseBody runs the validations
// defined on update-task_InternalServerError_response_body
func ValidateUpdateTaskInternalServerErrorResponseBody(body *UpdateTaskInternalServerErrorResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateUpdateTaskNotFoundResponseBody runs the validations defined on
// update-task_NotFound_response_body
func ValidateUpdateTaskNotFoundResponseBody(body *UpdateTaskNotFoundResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateUpdateTaskServiceUnavailableResponseBody runs the validations
// defined on update-task_ServiceUnavailable_response_body
func ValidateUpdateTaskServiceUnavailableResponseBody(body *UpdateTaskServiceUnavailableResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateUpdateTaskUnauthorizedResponseBody runs the validations defined on
// update-task_Unauthorized_response_body
func ValidateUpdateTaskUnauthorizedResponseBody(body *UpdateTaskUnauthorizedResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateDeleteTaskBadRequestResponseBody runs the validations defined on
// delete-task_BadRequest_response_body
func ValidateDeleteTaskBadRequestResponseBody(body *DeleteTaskBadRequestResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateDeleteTaskConflictResponseBody runs the validations defined on
// delete-task_Conflict_response_body
func ValidateDeleteTaskConflictResponseBody(body *DeleteTaskConflictResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateDeleteTaskInternalServerErrorResponseBody runs the validations
// defined on delete-task_InternalServerError_response_body
func ValidateDeleteTaskInternalServerErrorResponseBody(body *DeleteTaskInternalServerErrorResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateDeleteTaskNotFoundResponseBody runs the validations defined on
// delete-task_NotFound_response_body
func ValidateDeleteTaskNotFoundResponseBody(body *DeleteTaskNotFoundResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateDeleteTaskServiceUnavailableResponseBody runs the validations
// defined on delete-task_ServiceUnavailable_response_body
func ValidateDeleteTaskServiceUnavailableResponseBody(body *DeleteTaskServiceUnavailableResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateDeleteTaskUnauthorizedResponseBody runs the validations defined on
// delete-task_Unauthorized_response_body
func ValidateDeleteTaskUnauthorizedResponseBody(body *DeleteTaskUnauthorizedResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateListTasksBadRequestResponseBody runs the validations defined on
// list-tasks_BadRequest_response_body
func ValidateListTasksBadRequestResponseBody(body *ListTasksBadRequestResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateListTasksInternalServerErrorResponseBody runs the validations
// defined on list-tasks_InternalServerError_response_body
func ValidateListTasksInternalServerErrorResponseBody(body *ListTasksInternalServerErrorResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateListTasksServiceUnavailableResponseBody runs the validations defined
// on list-tasks_ServiceUnavailable_response_body
func ValidateListTasksServiceUnavailableResponseBody(body *ListTasksServiceUnavailableResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateListTasksUnauthorizedResponseBody runs the validations defined on
// list-tasks_Unauthorized_response_body
func ValidateListTasksUnauthorizedResponseBody(body *ListTasksUnauthorizedResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetTaskScheduleBadRequestResponseBody runs the validations defined
// on get-task-schedule_BadRequest_response_body
func ValidateGetTaskScheduleBadRequestResponseBody(body *GetTaskScheduleBadRequestResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetTaskScheduleInternalServerErrorResponseBody runs the validations
// defined on get-task-schedule_InternalServerError_response_body
func ValidateGetTaskScheduleInternalServerErrorResponseBody(body *GetTaskScheduleInternalServerErrorResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetTaskScheduleNotFoundResponseBody runs the validations defined on
// get-task-schedule_NotFound_response_body
func ValidateGetTaskScheduleNotFoundResponseBody(body *GetTaskScheduleNotFoundResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetTaskScheduleServiceUnavailableResponseBody runs the validations
// defined on get-task-schedule_ServiceUnavailable_response_body
func ValidateGetTaskScheduleServiceUnavailableResponseBody(body *GetTaskScheduleServiceUnavailableResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetTaskScheduleUnauthorizedResponseBody runs the validations defined
// on get-task-schedule_Unauthorized_response_body
func ValidateGetTaskScheduleUnauthorizedResponseBody(body *GetTaskScheduleUnauthorizedResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateCreateClientBadRequestResponseBody runs the validations defined on
// create-client_BadRequest_response_body
func ValidateCreateClientBadRequestResponseBody(body *CreateClientBadRequestResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateCreateClientInternalServerErrorResponseBody runs the validations
// defined on create-client_InternalServerError_response_body
func ValidateCreateClientInternalServerErrorResponseBody(body *CreateClientInternalServerErrorResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateCreateClientServiceUnavailableResponseBody runs the validations
// defined on create-client_ServiceUnavailable_response_body
func ValidateCreateClientServiceUnavailableResponseBody(body *CreateClientServiceUnavailableResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateCreateClientUnauthorizedResponseBody runs the validations defined on
// create-client_Unauthorized_response_body
func ValidateCreateClientUnauthorizedResponseBody(body *CreateClientUnauthorizedResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetClientBadRequestResponseBody runs the validations defined on
// get-client_BadRequest_response_body
func ValidateGetClientBadRequestResponseBody(body *GetClientBadRequestResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetClientInternalServerErrorResponseBody runs the validations
// defined on get-client_InternalServerError_response_body
func ValidateGetClientInternalServerErrorResponseBody(body *GetClientInternalServerErrorResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetClientNotFoundResponseBody runs the validations defined on
// get-client_NotFound_response_body
func ValidateGetClientNotFoundResponseBody(body *GetClientNotFoundResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetClientServiceUnavailableResponseBody runs the validations defined
// on get-client_ServiceUnavailable_response_body
func ValidateGetClientServiceUnavailableResponseBody(body *GetClientServiceUnavailableResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateGetClientUnauthorizedResponseBody runs the validations defined on
// get-client_Unauthorized_response_body
func ValidateGetClientUnauthorizedResponseBody(body *GetClientUnauthorizedResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateUpdateClientBadRequestResponseBody runs the validations defined on
// update-client_BadRequest_response_body
func ValidateUpdateClientBadRequestResponseBody(body *UpdateClientBadRequestResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateUpdateClientConflictResponseBody runs the validations defined on
// update-client_Conflict_response_body
func ValidateUpdateClientConflictResponseBody(body *UpdateClientConflictResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateUpdateClientInternalServerErrorResponseBody runs the validations
// defined on update-client_InternalServerError_response_body
func ValidateUpdateClientInternalServerErrorResponseBody(body *UpdateClientInternalServerErrorResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateUpdateClientNotFoundResponseBody runs the validations defined on
// update-client_NotFound_response_body
func ValidateUpdateClientNotFoundResponseBody(body *UpdateClientNotFoundResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateUpdateClientServiceUnavailableResponseBody runs the validations
// defined on update-client_ServiceUnavailable_response_body
func ValidateUpdateClientServiceUnavailableResponseBody(body *UpdateClientServiceUnavailableResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateUpdateClientUnauthorizedResponseBody runs the validations defined on
// update-client_Unauthorized_response_body
func ValidateUpdateClientUnauthorizedResponseBody(body *UpdateClientUnauthorizedResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateDeleteClientBadRequestResponseBody runs the validations defined on
// delete-client_BadRequest_response_body
func ValidateDeleteClientBadRequestResponseBody(body *DeleteClientBadRequestResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateDeleteClientConflictResponseBody runs the validations defined on
// delete-client_Conflict_response_body
func ValidateDeleteClientConflictResponseBody(body *DeleteClientConflictResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateDeleteClientInternalServerErrorResponseBody runs the validations
// defined on delete-client_InternalServerError_response_body
func ValidateDeleteClientInternalServerErrorResponseBody(body *DeleteClientInternalServerErrorResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateDeleteClientNotFoundResponseBody runs the validations defined on
// delete-client_NotFound_response_body
func ValidateDeleteClientNotFoundResponseBody(body *DeleteClientNotFoundResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateDeleteClientServiceUnavailableResponseBody runs the validations
// defined on delete-client_ServiceUnavailable_response_body
func ValidateDeleteClientServiceUnavailableResponseBody(body *DeleteClientServiceUnavailableResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateDeleteClientUnauthorizedResponseBody runs the validations defined on
// delete-client_Unauthorized_response_body
func ValidateDeleteClientUnauthorizedResponseBody(body *DeleteClientUnauthorizedResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateListClientsBadRequestResponseBody runs the validations defined on
// list-clients_BadRequest_response_body
func ValidateListClientsBadRequestResponseBody(body *ListClientsBadRequestResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateListClientsInternalServerErrorResponseBody runs the validations
// defined on list-clients_InternalServerError_response_body
func ValidateListClientsInternalServerErrorResponseBody(body *ListClientsInternalServerErrorResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateListClientsServiceUnavailableResponseBody runs the validations
// defined on list-clients_ServiceUnavailable_response_body
func ValidateListClientsServiceUnavailableResponseBody(body *ListClientsServiceUnavailableResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateListClientsUnauthorizedResponseBody runs the validations defined on
// list-clients_Unauthorized_response_body
func ValidateListClientsUnauthorizedResponseBody(body *ListClientsUnauthorizedResponseBody) (err error) {
	if body.Code == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("code", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	return
}

// ValidateTaskResponseBody runs the validations defined on TaskResponseBody
func ValidateTaskResponseBody(body *TaskResponseBody) (err error) {
	if body.UID != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.uid", *body.UID, goa.FormatUUID))
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
	if body.Frequency != nil {
		if !(*body.Frequency == "daily" || *body.Frequency == "weekly" || *body.Frequency == "monthly" || *body.Frequency == "bi-monthly" || *body.Frequency == "quarterly" || *body.Frequency == "yearly" || *body.Frequency == "once") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.frequency", *body.Frequency, []any{"daily", "weekly", "monthly", "bi-monthly", "quarterly", "yearly", "once"}))
		}
	}
	if body.StartDate != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.start_date", *body.StartDate, goa.FormatDateTime))
	}
	if body.NextDue != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.next_due", *body.NextDue, goa.FormatDateTime))
	}
	if body.AssigneeEmail != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.assignee_email", *body.AssigneeEmail, goa.FormatEmail))
	}
	if body.Status != nil {
		if !(*body.Status == "open" || *body.Status == "paused" || *body.Status == "done") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"open", "paused", "done"}))
		}
	}
	if body.CreatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.created_at", *body.CreatedAt, goa.FormatDateTime))
	}
	if body.UpdatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.updated_at", *body.UpdatedAt, goa.FormatDateTime))
	}
	return
}

// ValidateTaskResponse runs the validations defined on TaskResponse
func ValidateTaskResponse(body *TaskResponse) (err error) {
	if body.UID != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.uid", *body.UID, goa.FormatUUID))
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
	if body.Frequency != nil {
		if !(*body.Frequency == "daily" || *body.Frequency == "weekly" || *body.Frequency == "monthly" || *body.Frequency == "bi-monthly" || *body.Frequency == "quarterly" || *body.Frequency == "yearly" || *body.Frequency == "once") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.frequency", *body.Frequency, []any{"daily", "weekly", "monthly", "bi-monthly", "quarterly", "yearly", "once"}))
		}
	}
	if body.StartDate != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.start_date", *body.StartDate, goa.FormatDateTime))
	}
	if body.NextDue != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.next_due", *body.NextDue, goa.FormatDateTime))
	}
	if body.AssigneeEmail != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.assignee_email", *body.AssigneeEmail, goa.FormatEmail))
	}
	if body.Status != nil {
		if !(*body.Status == "open" || *body.Status == "paused" || *body.Status == "done") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"open", "paused", "done"}))
		}
	}
	if body.CreatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.created_at", *body.CreatedAt, goa.FormatDateTime))
	}
	if body.UpdatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.updated_at", *body.UpdatedAt, goa.FormatDateTime))
	}
	return
}

// ValidateTaskOccurrenceResponse runs the validations defined on
// TaskOccurrenceResponse
func ValidateTaskOccurrenceResponse(body *TaskOccurrenceResponse) (err error) {
	if body.TaskUID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("task_uid", "body"))
	}
	if body.DueDate == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("due_date", "body"))
	}
	if body.TaskUID != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.task_uid", *body.TaskUID, goa.FormatUUID))
	}
	if body.DueDate != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.due_date", *body.DueDate, goa.FormatDateTime))
	}
	return
}

// ValidateClientResponseBody runs the validations defined on ClientResponseBody
func ValidateClientResponseBody(body *ClientResponseBody) (err error) {
	if body.UID != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.uid", *body.UID, goa.FormatUUID))
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
	if body.CreatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.created_at", *body.CreatedAt, goa.FormatDateTime))
	}
	if body.UpdatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.updated_at", *body.UpdatedAt, goa.FormatDateTime))
	}
	return
}

// ValidateClientResponse runs the validations defined on ClientResponse
func ValidateClientResponse(body *ClientResponse) (err error) {
	if body.UID != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.uid", *body.UID, goa.FormatUUID))
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
	if body.CreatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.created_at", *body.CreatedAt, goa.FormatDateTime))
	}
	if body.UpdatedAt != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.updated_at", *body.UpdatedAt, goa.FormatDateTime))
	}
	return
}
