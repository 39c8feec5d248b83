// Code generated by goa v3.23.1, DO NOT EDIT.
//
// Task Service client
//
// Command:
// $ goa gen github.com/StianAK82/RegnskapSky-sub001/design

package taskservice

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// ServiceClient is the "Task Service" service client.
type ServiceClient struct {
	ReadyzEndpoint          goa.Endpoint
	LivezEndpoint           goa.Endpoint
	CreateTaskEndpoint      goa.Endpoint
	GetTaskEndpoint         goa.Endpoint
	UpdateTaskEndpoint      goa.Endpoint
	DeleteTaskEndpoint      goa.Endpoint
	ListTasksEndpoint       goa.Endpoint
	GetTaskScheduleEndpoint goa.Endpoint
	CreateClientEndpoint    goa.Endpoint
	GetClientEndpoint       goa.Endpoint
	UpdateClientEndpoint    goa.Endpoint
	DeleteClientEndpoint    goa.Endpoint
	ListClientsEndpoint     goa.Endpoint
}

// NewClient initializes a "Task Service" service client given the endpoints.
func NewClient(readyz, livez, createTask, getTask, updateTask, deleteTask, listTasks, getTaskSchedule, createClient, getClient, updateClient, deleteClient, listClients goa.Endpoint) *ServiceClient {
	return &ServiceClient{
		ReadyzEndpoint:          readyz,
		LivezEndpoint:           livez,
		CreateTaskEndpoint:      createTask,
		GetTaskEndpoint:         getTask,
		UpdateTaskEndpoint:      updateTask,
		DeleteTaskEndpoint:      deleteTask,
		ListTasksEndpoint:       listTasks,
		GetTaskScheduleEndpoint: getTaskSchedule,
		CreateClientEndpoint:    createClient,
		GetClientEndpoint:       getClient,
		UpdateClientEndpoint:    updateClient,
		DeleteClientEndpoint:    deleteClient,
		ListClientsEndpoint:     listClients,
	}
}

// Readyz calls the "readyz" endpoint of the "Task Service" service.
// Readyz may return the following errors:
//   - "ServiceUnavailable" (type *ServiceUnavailableError): Service is unavailable
//   - error: internal error
func (c *ServiceClient) Readyz(ctx context.Context) (res []byte, err error) {
	var ires any
	ires, err = c.ReadyzEndpoint(ctx, nil)
	if err != nil {
		return
	}
	return ires.([]byte), nil
}

// Livez calls the "livez" endpoint of the "Task Service" service.
func (c *ServiceClient) Livez(ctx context.Context) (res []byte, err error) {
	var ires any
	ires, err = c.LivezEndpoint(ctx, nil)
	if err != nil {
		return
	}
	return ires.([]byte), nil
}

// CreateTask calls the "create-task" endpoint of the "Task Service" service.
// CreateTask may return the following errors:
//   - "BadRequest" (type *BadRequestError): Bad request
//   - "Unauthorized" (type *UnauthorizedError): Unauthorized
//   - "NotFound" (type *NotFoundError): Client not found
//   - "InternalServerError" (type *InternalServerError): Internal server error
//   - "ServiceUnavailable" (type *ServiceUnavailableError): Service unavailable
//   - error: internal error
func (c *ServiceClient) CreateTask(ctx context.Context, p *CreateTaskPayload) (res *Task, err error) {
	var ires any
	ires, err = c.CreateTaskEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Task), nil
}

// GetTask calls the "get-task" endpoint of the "Task Service" service.
// GetTask may return the following errors:
//   - "BadRequest" (type *BadRequestError): Bad request
//   - "Unauthorized" (type *UnauthorizedError): Unauthorized
//   - "NotFound" (type *NotFoundError): Task not found
//   - "InternalServerError" (type *InternalServerError): Internal server error
//   - "ServiceUnavailable" (type *ServiceUnavailableError): Service unavailable
//   - error: internal error
func (c *ServiceClient) GetTask(ctx context.Context, p *GetTaskPayload) (res *GetTaskResult, err error) {
	var ires any
	ires, err = c.GetTaskEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*GetTaskResult), nil
}

// UpdateTask calls the "update-task" endpoint of the "Task Service" service.
// UpdateTask may return the following errors:
//   - "BadRequest" (type *BadRequestError): Bad request
//   - "Unauthorized" (type *UnauthorizedError): Unauthorized
//   - "NotFound" (type *NotFoundError): Task not found
//   - "Conflict" (type *ConflictError): ETag mismatch
//   - "InternalServerError" (type *InternalServerError): Internal server error
//   - "ServiceUnavailable" (type *ServiceUnavailableError): Service unavailable
//   - error: internal error
func (c *ServiceClient) UpdateTask(ctx context.Context, p *UpdateTaskPayload) (res *Task, err error) {
	var ires any
	ires, err = c.UpdateTaskEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Task), nil
}

// DeleteTask calls the "delete-task" endpoint of the "Task Service" service.
// DeleteTask may return the following errors:
//   - "BadRequest" (type *BadRequestError): Bad request
//   - "Unauthorized" (type *UnauthorizedError): Unauthorized
//   - "NotFound" (type *NotFoundError): Task not found
//   - "Conflict" (type *ConflictError): ETag mismatch
//   - "InternalServerError" (type *InternalServerError): Internal server error
//   - "ServiceUnavailable" (type *ServiceUnavailableError): Service unavailable
//   - error: internal error
func (c *ServiceClient) DeleteTask(ctx context.Context, p *DeleteTaskPayload) (err error) {
	_, err = c.DeleteTaskEndpoint(ctx, p)
	return
}

// ListTasks calls the "list-tasks" endpoint of the "Task Service" service.
// ListTasks may return the following errors:
//   - "BadRequest" (type *BadRequestError): Bad request
//   - "Unauthorized" (type *UnauthorizedError): Unauthorized
//   - "InternalServerError" (type *InternalServerError): Internal server error
//   - "ServiceUnavailable" (type *ServiceUnavailableError): Service unavailable
//   - error: internal error
func (c *ServiceClient) ListTasks(ctx context.Context, p *ListTasksPayload) (res []*Task, err error) {
	var ires any
	ires, err = c.ListTasksEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.([]*Task), nil
}

// GetTaskSchedule calls the "get-task-schedule" endpoint of the "Task Service"
// service.
// GetTaskSchedule may return the following errors:
//   - "BadRequest" (type *BadRequestError): Bad request
//   - "Unauthorized" (type *UnauthorizedError): Unauthorized
//   - "NotFound" (type *NotFoundError): Task not found
//   - "InternalServerError" (type *InternalServerError): Internal server error
//   - "ServiceUnavailable" (type *ServiceUnavailableError): Service unavailable
//   - error: internal error
func (c *ServiceClient) GetTaskSchedule(ctx context.Context, p *GetTaskSchedulePayload) (res []*TaskOccurrence, err error) {
	var ires any
	ires, err = c.GetTaskScheduleEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.([]*TaskOccurrence), nil
}

// CreateClient calls the "create-client" endpoint of the "Task Service"
// service.
// CreateClient may return the following errors:
//   - "BadRequest" (type *BadRequestError): Bad request
//   - "Unauthorized" (type *UnauthorizedError): Unauthorized
//   - "InternalServerError" (type *InternalServerError): Internal server error
//   - "ServiceUnavailable" (type *ServiceUnavailableError): Service unavailable
//   - error: internal error
func (c *ServiceClient) CreateClient(ctx context.Context, p *CreateClientPayload) (res *Client, err error) {
	var ires any
	ires, err = c.CreateClientEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Client), nil
}

// GetClient calls the "get-client" endpoint of the "Task Service" service.
// GetClient may return the following errors:
//   - "BadRequest" (type *BadRequestError): Bad request
//   - "Unauthorized" (type *UnauthorizedError): Unauthorized
//   - "NotFound" (type *NotFoundError): Client not found
//   - "InternalServerError" (type *InternalServerError): Internal server error
//   - "ServiceUnavailable" (type *ServiceUnavailableError): Service unavailable
//   - error: internal error
func (c *ServiceClient) GetClient(ctx context.Context, p *GetClientPayload) (res *GetClientResult, err error) {
	var ires any
	ires, err = c.GetClientEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*GetClientResult), nil
}

// UpdateClient calls the "update-client" endpoint of the "Task Service"
// service.
// UpdateClient may return the following errors:
//   - "BadRequest" (type *BadRequestError): Bad request
//   - "Unauthorized" (type *UnauthorizedError): Unauthorized
//   - "NotFound" (type *NotFoundError): Client not found
//   - "Conflict" (type *ConflictError): ETag mismatch
//   - "InternalServerError" (type *InternalServerError): Internal server error
//   - "ServiceUnavailable" (type *ServiceUnavailableError): Service unavailable
//   - error: internal error
func (c *ServiceClient) UpdateClient(ctx context.Context, p *UpdateClientPayload) (res *Client, err error) {
	var ires any
	ires, err = c.UpdateClientEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Client), nil
}

// DeleteClient calls the "delete-client" endpoint of the "Task Service"
// service.
// DeleteClient may return the following errors:
//   - "BadRequest" (type *BadRequestError): Bad request
//   - "Unauthorized" (type *UnauthorizedError): Unauthorized
//   - "NotFound" (type *NotFoundError): Client not found
//   - "Conflict" (type *ConflictError): ETag mismatch
//   - "InternalServerError" (type *InternalServerError): Internal server error
//   - "ServiceUnavailable" (type *ServiceUnavailableError): Service unavailable
//   - error: internal error
func (c *ServiceClient) DeleteClient(ctx context.Context, p *DeleteClientPayload) (err error) {
	_, err = c.DeleteClientEndpoint(ctx, p)
	return
}

// ListClients calls the "list-clients" endpoint of the "Task Service" service.
// ListClients may return the following errors:
//   - "BadRequest" (type *BadRequestError): Bad request
//   - "Unauthorized" (type *UnauthorizedError): Unauthorized
//   - "InternalServerError" (type *InternalServerError): Internal server error
//   - "ServiceUnavailable" (type *ServiceUnavailableError): Service unavailable
//   - error: internal error
func (c *ServiceClient) ListClients(ctx context.Context, p *ListClientsPayload) (res []*Client, err error) {
	var ires any
	ires, err = c.ListClientsEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.([]*Client), nil
}
