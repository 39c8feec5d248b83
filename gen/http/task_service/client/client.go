// Code generated by goa v3.23.1, DO NOT EDIT.
//
// Task Service client HTTP transport
//
// Command:
// $ goa gen github.com/StianAK82/RegnskapSky-sub001/design

package client

import (
	"context"
	"net/http"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// Client lists the Task Service service endpoint HTTP clients.
type Client struct {
	// Readyz Doer is the HTTP client used to make requests to the readyz endpoint.
	ReadyzDoer goahttp.Doer

	// Livez Doer is the HTTP client used to make requests to the livez endpoint.
	LivezDoer goahttp.Doer

	// CreateTask Doer is the HTTP client used to make requests to the create-task
	// endpoint.
	CreateTaskDoer goahttp.Doer

	// GetTask Doer is the HTTP client used to make requests to the get-task
	// endpoint.
	GetTaskDoer goahttp.Doer

	// UpdateTask Doer is the HTTP client used to make requests to the update-task
	// endpoint.
	UpdateTaskDoer goahttp.Doer

	// DeleteTask Doer is the HTTP client used to make requests to the delete-task
	// endpoint.
	DeleteTaskDoer goahttp.Doer

	// ListTasks Doer is the HTTP client used to make requests to the list-tasks
	// endpoint.
	ListTasksDoer goahttp.Doer

	// GetTaskSchedule Doer is the HTTP client used to make requests to the
	// get-task-schedule endpoint.
	GetTaskScheduleDoer goahttp.Doer

	// CreateClient Doer is the HTTP client used to make requests to the
	// create-client endpoint.
	CreateClientDoer goahttp.Doer

	// GetClient Doer is the HTTP client used to make requests to the get-client
	// endpoint.
	GetClientDoer goahttp.Doer

	// UpdateClient Doer is the HTTP client used to make requests to the
	// update-client endpoint.
	UpdateClientDoer goahttp.Doer

	// DeleteClient Doer is the HTTP client used to make requests to the
	// delete-client endpoint.
	DeleteClientDoer goahttp.Doer

	// ListClients Doer is the HTTP client used to make requests to the
	// list-clients endpoint.
	ListClientsDoer goahttp.Doer

	// RestoreResponseBody controls whether the response bodies are reset after
	// decoding so they can be read again.
	RestoreResponseBody bool

	scheme  string
	host    string
	encoder func(*http.Request) goahttp.Encoder
	decoder func(*http.Response) goahttp.Decoder
}

// NewClient instantiates HTTP clients for all the Task Service service servers.
func NewClient(
	scheme string,
	host string,
	doer goahttp.Doer,
	enc func(*http.Request) goahttp.Encoder,
	dec func(*http.Response) goahttp.Decoder,
	restoreBody bool,
) *Client {
	return &Client{
		ReadyzDoer:          doer,
		LivezDoer:           doer,
		CreateTaskDoer:      doer,
		GetTaskDoer:         doer,
		UpdateTaskDoer:      doer,
		DeleteTaskDoer:      doer,
		ListTasksDoer:       doer,
		GetTaskScheduleDoer: doer,
		CreateClientDoer:    doer,
		GetClientDoer:       doer,
		UpdateClientDoer:    doer,
		DeleteClientDoer:    doer,
		ListClientsDoer:     doer,
		RestoreResponseBody: restoreBody,
		scheme:              scheme,
		host:                host,
		decoder:             dec,
		encoder:             enc,
	}
}

// Readyz returns an endpoint that makes HTTP requests to the Task Service
// service readyz server.
func (c *Client) Readyz() goa.Endpoint {
	var (
		decodeResponse = DecodeReadyzResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildReadyzRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.ReadyzDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("Task Service", "readyz", err)
		}
		return decodeResponse(resp)
	}
}

// Livez returns an endpoint that makes HTTP requests to the Task Service
// service livez server.
func (c *Client) Livez() goa.Endpoint {
	var (
		decodeResponse = DecodeLivezResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildLivezRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.LivezDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("Task Service", "livez", err)
		}
		return decodeResponse(resp)
	}
}

// CreateTask returns an endpoint that makes HTTP requests to the Task Service
// service create-task server.
func (c *Client) CreateTask() goa.Endpoint {
	var (
		encodeRequest  = EncodeCreateTaskRequest(c.encoder)
		decodeResponse = DecodeCreateTaskResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildCreateTaskRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.CreateTaskDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("Task Service", "create-task", err)
		}
		return decodeResponse(resp)
	}
}

// GetTask returns an endpoint that makes HTTP requests to the Task Service
// service get-task server.
func (c *Client) GetTask() goa.Endpoint {
	var (
		encodeRequest  = EncodeGetTaskRequest(c.encoder)
		decodeResponse = DecodeGetTaskResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildGetTaskRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.GetTaskDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("Task Service", "get-task", err)
		}
		return decodeResponse(resp)
	}
}

// UpdateTask returns an endpoint that makes HTTP requests to the Task Service
// service update-task server.
func (c *Client) UpdateTask() goa.Endpoint {
	var (
		encodeRequest  = EncodeUpdateTaskRequest(c.encoder)
		decodeResponse = DecodeUpdateTaskResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildUpdateTaskRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.UpdateTaskDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("Task Service", "update-task", err)
		}
		return decodeResponse(resp)
	}
}

// DeleteTask returns an endpoint that makes HTTP requests to the Task Service
// service delete-task server.
func (c *Client) DeleteTask() goa.Endpoint {
	var (
		encodeRequest  = EncodeDeleteTaskRequest(c.encoder)
		decodeResponse = DecodeDeleteTaskResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildDeleteTaskRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.DeleteTaskDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("Task Service", "delete-task", err)
		}
		return decodeResponse(resp)
	}
}

// ListTasks returns an endpoint that makes HTTP requests to the Task Service
// service list-tasks server.
func (c *Client) ListTasks() goa.Endpoint {
	var (
		encodeRequest  = EncodeListTasksRequest(c.encoder)
		decodeResponse = DecodeListTasksResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildListTasksRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.ListTasksDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("Task Service", "list-tasks", err)
		}
		return decodeResponse(resp)
	}
}

// GetTaskSchedule returns an endpoint that makes HTTP requests to the Task
// Service service get-task-schedule server.
func (c *Client) GetTaskSchedule() goa.Endpoint {
	var (
		encodeRequest  = EncodeGetTaskScheduleRequest(c.encoder)
		decodeResponse = DecodeGetTaskScheduleResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildGetTaskScheduleRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.GetTaskScheduleDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("Task Service", "get-task-schedule", err)
		}
		return decodeResponse(resp)
	}
}

// CreateClient returns an endpoint that makes HTTP requests to the Task
// Service service create-client server.
func (c *Client) CreateClient() goa.Endpoint {
	var (
		encodeRequest  = EncodeCreateClientRequest(c.encoder)
		decodeResponse = DecodeCreateClientResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildCreateClientRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.CreateClientDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("Task Service", "create-client", err)
		}
		return decodeResponse(resp)
	}
}

// GetClient returns an endpoint that makes HTTP requests to the Task Service
// service get-client server.
func (c *Client) GetClient() goa.Endpoint {
	var (
		encodeRequest  = EncodeGetClientRequest(c.encoder)
		decodeResponse = DecodeGetClientResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildGetClientRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.GetClientDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("Task Service", "get-client", err)
		}
		return decodeResponse(resp)
	}
}

// UpdateClient returns an endpoint that makes HTTP requests to the Task
// Service service update-client server.
func (c *Client) UpdateClient() goa.Endpoint {
	var (
		encodeRequest  = EncodeUpdateClientRequest(c.encoder)
		decodeResponse = DecodeUpdateClientResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildUpdateClientRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.UpdateClientDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("Task Service", "update-client", err)
		}
		return decodeResponse(resp)
	}
}

// DeleteClient returns an endpoint that makes HTTP requests to the Task
// Service service delete-client server.
func (c *Client) DeleteClient() goa.Endpoint {
	var (
		encodeRequest  = EncodeDeleteClientRequest(c.encoder)
		decodeResponse = DecodeDeleteClientResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildDeleteClientRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.DeleteClientDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("Task Service", "delete-client", err)
		}
		return decodeResponse(resp)
	}
}

// ListClients returns an endpoint that makes HTTP requests to the Task Service
// service list-clients server.
func (c *Client) ListClients() goa.Endpoint {
	var (
		encodeRequest  = EncodeListClientsRequest(c.encoder)
		decodeResponse = DecodeListClientsResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildListClientsRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.ListClientsDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("Task Service", "list-clients", err)
		}
		return decodeResponse(resp)
	}
}
