// Code generated by goa v3.23.1, DO NOT EDIT.
//
// Task Service service
//
// Command:
// $ goa gen github.com/StianAK82/RegnskapSky-sub001/design

package taskservice

import (
	"context"

	"goa.design/goa/v3/security"
)

// The RegnskapSky Task Service manages recurring back-office tasks for
// accounting-firm clients.
type Service interface {
	// Check if the service is able to take inbound requests.
	Readyz(context.Context) (res []byte, err error)
	// Check if the service is alive.
	Livez(context.Context) (res []byte, err error)
	// Create a recurring task for a client. The frequency label is normalized to a
	// canonical frequency and the next due date is computed from the start date.
	CreateTask(context.Context, *CreateTaskPayload) (res *Task, err error)
	// Get a single task. The response carries an ETag header for use with updates
	// and deletes.
	GetTask(context.Context, *GetTaskPayload) (res *GetTaskResult, err error)
	// Update a task. The client and creation timestamp are immutable; the schedule
	// is re-resolved from the frequency label and start date.
	UpdateTask(context.Context, *UpdateTaskPayload) (res *Task, err error)
	// Delete a task.
	DeleteTask(context.Context, *DeleteTaskPayload) (err error)
	// List the tasks of the caller's license, optionally filtered to a single
	// client.
	ListTasks(context.Context, *ListTasksPayload) (res []*Task, err error)
	// Get the upcoming due dates of a task from a reference date.
	GetTaskSchedule(context.Context, *GetTaskSchedulePayload) (res []*TaskOccurrence, err error)
	// Create a client in the caller's license.
	CreateClient(context.Context, *CreateClientPayload) (res *Client, err error)
	// Get a single client. The response carries an ETag header for use with
	// updates and deletes.
	GetClient(context.Context, *GetClientPayload) (res *GetClientResult, err error)
	// Update a client.
	UpdateClient(context.Context, *UpdateClientPayload) (res *Client, err error)
	// Delete a client. All tasks of the client are deleted as part of the cascade.
	DeleteClient(context.Context, *DeleteClientPayload) (err error)
	// List the clients of the caller's license.
	ListClients(context.Context, *ListClientsPayload) (res []*Client, err error)
}

// Auther defines the authorization functions to be implemented by the service.
type Auther interface {
	// JWTAuth implements the authorization logic for the JWT security scheme.
	JWTAuth(ctx context.Context, token string, schema *security.JWTScheme) (context.Context, error)
}

// APIName is the name of the API as defined in the design.
const APIName = "Task Service"

// APIVersion is the version of the API as defined in the design.
const APIVersion = "0.0.1"

// ServiceName is the name of the service as defined in the design. This is the
// same value that is set in the endpoint request contexts under the ServiceKey
// key.
const ServiceName = "Task Service"

// MethodNames lists the service method names as defined in the design. These
// are the same values that are set in the endpoint request contexts under the
// MethodKey key.
var MethodNames = [13]string{"readyz", "livez", "create-task", "get-task", "update-task", "delete-task", "list-tasks", "get-task-schedule", "create-client", "get-client", "update-client", "delete-client", "list-clients"}

type BadRequestError struct {
	// HTTP status code
	Code string
	// Error message
	Message string
}

// Client is the result type of the Task Service service create-client method.
type Client struct {
	// The unique identifier of the client
	UID *string
	// The name of the client
	Name *string
	// The Norwegian organization number of the client
	OrgNumber *string
	// The contact person of the client
	ContactName *string
	// The contact email of the client
	ContactEmail *string
	// The date and time the resource was created
	CreatedAt *string
	// The date and time the resource was last updated
	UpdatedAt *string
}

type ConflictError struct {
	// HTTP status code
	Code string
	// Error message
	Message string
}

// CreateClientPayload is the payload type of the Task Service service
// create-client method.
type CreateClientPayload struct {
	// JWT token issued by the RegnskapSky identity provider
	BearerToken *string
	// Version of the API
	Version *string
	// The name of the client
	Name string
	// The Norwegian organization number of the client
	OrgNumber *string
	// The contact person of the client
	ContactName *string
	// The contact email of the client
	ContactEmail *string
}

// CreateTaskPayload is the payload type of the Task Service service
// create-task method.
type CreateTaskPayload struct {
	// JWT token issued by the RegnskapSky identity provider
	BearerToken *string
	// Version of the API
	Version *string
	// The unique identifier of the client
	ClientUID string
	// The title of the task
	Title string
	// The description of the task
	Description *string
	// The frequency as written by the user, in Norwegian or English
	FrequencyLabel *string
	// The start date anchoring the task schedule
	StartDate string
	// The email of the accountant responsible for the task
	AssigneeEmail *string
	// The status of the task
	Status string
}

// DeleteClientPayload is the payload type of the Task Service service
// delete-client method.
type DeleteClientPayload struct {
	// JWT token issued by the RegnskapSky identity provider
	BearerToken *string
	// Version of the API
	Version *string
	// ETag header value
	Etag *string
	// The unique identifier of the client
	UID string
}

// DeleteTaskPayload is the payload type of the Task Service service
// delete-task method.
type DeleteTaskPayload struct {
	// JWT token issued by the RegnskapSky identity provider
	BearerToken *string
	// Version of the API
	Version *string
	// ETag header value
	Etag *string
	// The unique identifier of the task
	UID string
}

// GetClientPayload is the payload type of the Task Service service get-client
// method.
type GetClientPayload struct {
	// JWT token issued by the RegnskapSky identity provider
	BearerToken *string
	// Version of the API
	Version *string
	// The unique identifier of the client
	UID string
}

// GetClientResult is the result type of the Task Service service get-client
// method.
type GetClientResult struct {
	// The client
	Client *Client
	// ETag header value
	Etag *string
}

// GetTaskPayload is the payload type of the Task Service service get-task
// method.
type GetTaskPayload struct {
	// JWT token issued by the RegnskapSky identity provider
	BearerToken *string
	// Version of the API
	Version *string
	// The unique identifier of the task
	UID string
}

// GetTaskResult is the result type of the Task Service service get-task method.
type GetTaskResult struct {
	// The task
	Task *Task
	// ETag header value
	Etag *string
}

// GetTaskSchedulePayload is the payload type of the Task Service service
// get-task-schedule method.
type GetTaskSchedulePayload struct {
	// JWT token issued by the RegnskapSky identity provider
	BearerToken *string
	// Version of the API
	Version *string
	// The unique identifier of the task
	UID string
	// The reference date to compute occurrences from, defaults to now
	FromDate *string
	// The maximum number of occurrences to return
	Limit *int
}

type InternalServerError struct {
	// HTTP status code
	Code string
	// Error message
	Message string
}

// ListClientsPayload is the payload type of the Task Service service
// list-clients method.
type ListClientsPayload struct {
	// JWT token issued by the RegnskapSky identity provider
	BearerToken *string
	// Version of the API
	Version *string
}

// ListTasksPayload is the payload type of the Task Service service list-tasks
// method.
type ListTasksPayload struct {
	// JWT token issued by the RegnskapSky identity provider
	BearerToken *string
	// Version of the API
	Version *string
	// Only return tasks for this client
	ClientUID *string
}

type NotFoundError struct {
	// HTTP status code
	Code string
	// Error message
	Message string
}

type ServiceUnavailableError struct {
	// HTTP status code
	Code string
	// Error message
	Message string
}

// Task is the result type of the Task Service service create-task method.
type Task struct {
	// The unique identifier of the task
	UID *string
	// The unique identifier of the client
	ClientUID *string
	// The title of the task
	Title *string
	// The description of the task
	Description *string
	// The frequency as written by the user, in Norwegian or English
	FrequencyLabel *string
	// The canonical frequency of the task
	Frequency *string
	// The start date anchoring the task schedule
	StartDate *string
	// The next due date of the task
	NextDue *string
	// The email of the accountant responsible for the task
	AssigneeEmail *string
	// The status of the task
	Status string
	// The date and time the resource was created
	CreatedAt *string
	// The date and time the resource was last updated
	UpdatedAt *string
}

// A single computed due date of a recurring task.
type TaskOccurrence struct {
	// The unique identifier of the task
	TaskUID string
	// The computed due date
	DueDate string
}

type UnauthorizedError struct {
	// HTTP status code
	Code string
	// Error message
	Message string
}

// UpdateClientPayload is the payload type of the Task Service service
// update-client method.
type UpdateClientPayload struct {
	// JWT token issued by the RegnskapSky identity provider
	BearerToken *string
	// Version of the API
	Version *string
	// ETag header value
	Etag *string
	// The unique identifier of the client
	UID string
	// The name of the client
	Name string
	// The Norwegian organization number of the client
	OrgNumber *string
	// The contact person of the client
	ContactName *string
	// The contact email of the client
	ContactEmail *string
}

// UpdateTaskPayload is the payload type of the Task Service service
// update-task method.
type UpdateTaskPayload struct {
	// JWT token issued by the RegnskapSky identity provider
	BearerToken *string
	// Version of the API
	Version *string
	// ETag header value
	Etag *string
	// The unique identifier of the task
	UID string
	// The unique identifier of the client
	ClientUID string
	// The title of the task
	Title string
	// The description of the task
	Description *string
	// The frequency as written by the user, in Norwegian or English
	FrequencyLabel *string
	// The start date anchoring the task schedule
	StartDate string
	// The email of the accountant responsible for the task
	AssigneeEmail *string
	// The status of the task
	Status string
}

// Error returns an error description.
func (e *BadRequestError) Error() string {
	return ""
}

// ErrorName returns "BadRequestError".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *BadRequestError) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "BadRequestError".
func (e *BadRequestError) GoaErrorName() string {
	return "BadRequest"
}

// Error returns an error description.
func (e *ConflictError) Error() string {
	return ""
}

// ErrorName returns "ConflictError".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *ConflictError) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "ConflictError".
func (e *ConflictError) GoaErrorName() string {
	return "Conflict"
}

// Error returns an error description.
func (e *InternalServerError) Error() string {
	return ""
}

// ErrorName returns "InternalServerError".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *InternalServerError) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "InternalServerError".
func (e *InternalServerError) GoaErrorName() string {
	return "InternalServerError"
}

// Error returns an error description.
func (e *NotFoundError) Error() string {
	return ""
}

// ErrorName returns "NotFoundError".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *NotFoundError) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "NotFoundError".
func (e *NotFoundError) GoaErrorName() string {
	return "NotFound"
}

// Error returns an error description.
func (e *ServiceUnavailableError) Error() string {
	return ""
}

// ErrorName returns "ServiceUnavailableError".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *ServiceUnavailableError) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "ServiceUnavailableError".
func (e *ServiceUnavailableError) GoaErrorName() string {
	return "ServiceUnavailable"
}

// Error returns an error description.
func (e *UnauthorizedError) Error() string {
	return ""
}

// ErrorName returns "UnauthorizedError".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *UnauthorizedError) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "UnauthorizedError".
func (e *UnauthorizedError) GoaErrorName() string {
	return "Unauthorized"
}
