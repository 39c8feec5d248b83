// Code generated by goa v3.23.1, DO NOT EDIT.
//
// Task Service endpoints
//
// Command:
// $ goa gen github.com/StianAK82/RegnskapSky-sub001/design

package taskservice

import (
	"context"

	goa "goa.design/goa/v3/pkg"
	"goa.design/goa/v3/security"
)

// Endpoints wraps the "Task Service" service endpoints.
type Endpoints struct {
	Readyz          goa.Endpoint
	Livez           goa.Endpoint
	CreateTask      goa.Endpoint
	GetTask         goa.Endpoint
	UpdateTask      goa.Endpoint
	DeleteTask      goa.Endpoint
	ListTasks       goa.Endpoint
	GetTaskSchedule goa.Endpoint
	CreateClient    goa.Endpoint
	GetClient       goa.Endpoint
	UpdateClient    goa.Endpoint
	DeleteClient    goa.Endpoint
	ListClients     goa.Endpoint
}

// NewEndpoints wraps the methods of the "Task Service" service with endpoints.
func NewEndpoints(s Service) *Endpoints {
	// Casting service to Auther interface
	a := s.(Auther)
	return &Endpoints{
		Readyz:          NewReadyzEndpoint(s),
		Livez:           NewLivezEndpoint(s),
		CreateTask:      NewCreateTaskEndpoint(s, a.JWTAuth),
		GetTask:         NewGetTaskEndpoint(s, a.JWTAuth),
		UpdateTask:      NewUpdateTaskEndpoint(s, a.JWTAuth),
		DeleteTask:      NewDeleteTaskEndpoint(s, a.JWTAuth),
		ListTasks:       NewListTasksEndpoint(s, a.JWTAuth),
		GetTaskSchedule: NewGetTaskScheduleEndpoint(s, a.JWTAuth),
		CreateClient:    NewCreateClientEndpoint(s, a.JWTAuth),
		GetClient:       NewGetClientEndpoint(s, a.JWTAuth),
		UpdateClient:    NewUpdateClientEndpoint(s, a.JWTAuth),
		DeleteClient:    NewDeleteClientEndpoint(s, a.JWTAuth),
		ListClients:     NewListClientsEndpoint(s, a.JWTAuth),
	}
}

// Use applies the given middleware to all the "Task Service" service endpoints.
func (e *Endpoints) Use(m func(goa.Endpoint) goa.Endpoint) {
	e.Readyz = m(e.Readyz)
	e.Livez = m(e.Livez)
	e.CreateTask = m(e.CreateTask)
	e.GetTask = m(e.GetTask)
	e.UpdateTask = m(e.UpdateTask)
	e.DeleteTask = m(e.DeleteTask)
	e.ListTasks = m(e.ListTasks)
	e.GetTaskSchedule = m(e.GetTaskSchedule)
	e.CreateClient = m(e.CreateClient)
	e.GetClient = m(e.GetClient)
	e.UpdateClient = m(e.UpdateClient)
	e.DeleteClient = m(e.DeleteClient)
	e.ListClients = m(e.ListClients)
}

// NewReadyzEndpoint returns an endpoint function that calls the method
// "readyz" of service "Task Service".
func NewReadyzEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		return s.Readyz(ctx)
	}
}

// NewLivezEndpoint returns an endpoint function that calls the method "livez"
// of service "Task Service".
func NewLivezEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		return s.Livez(ctx)
	}
}

// NewCreateTaskEndpoint returns an endpoint function that calls the method
// "create-task" of service "Task Service".
func NewCreateTaskEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*CreateTaskPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{},
			RequiredScopes: []string{},
		}
		var token string
		if p.BearerToken != nil {
			token = *p.BearerToken
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return s.CreateTask(ctx, p)
	}
}

// NewGetTaskEndpoint returns an endpoint function that calls the method
// "get-task" of service "Task Service".
func NewGetTaskEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*GetTaskPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{},
			RequiredScopes: []string{},
		}
		var token string
		if p.BearerToken != nil {
			token = *p.BearerToken
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return s.GetTask(ctx, p)
	}
}

// NewUpdateTaskEndpoint returns an endpoint function that calls the method
// "update-task" of service "Task Service".
func NewUpdateTaskEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*UpdateTaskPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{},
			RequiredScopes: []string{},
		}
		var token string
		if p.BearerToken != nil {
			token = *p.BearerToken
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return s.UpdateTask(ctx, p)
	}
}

// NewDeleteTaskEndpoint returns an endpoint function that calls the method
// "delete-task" of service "Task Service".
func NewDeleteTaskEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*DeleteTaskPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{},
			RequiredScopes: []string{},
		}
		var token string
		if p.BearerToken != nil {
			token = *p.BearerToken
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return nil, s.DeleteTask(ctx, p)
	}
}

// NewListTasksEndpoint returns an endpoint function that calls the method
// "list-tasks" of service "Task Service".
func NewListTasksEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*ListTasksPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{},
			RequiredScopes: []string{},
		}
		var token string
		if p.BearerToken != nil {
			token = *p.BearerToken
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return s.ListTasks(ctx, p)
	}
}

// NewGetTaskScheduleEndpoint returns an endpoint function that calls the
// method "get-task-schedule" of service "Task Service".
func NewGetTaskScheduleEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*GetTaskSchedulePayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{},
			RequiredScopes: []string{},
		}
		var token string
		if p.BearerToken != nil {
			token = *p.BearerToken
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return s.GetTaskSchedule(ctx, p)
	}
}

// NewCreateClientEndpoint returns an endpoint function that calls the method
// "create-client" of service "Task Service".
func NewCreateClientEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*CreateClientPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{},
			RequiredScopes: []string{},
		}
		var token string
		if p.BearerToken != nil {
			token = *p.BearerToken
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return s.CreateClient(ctx, p)
	}
}

// NewGetClientEndpoint returns an endpoint function that calls the method
// "get-client" of service "Task Service".
func NewGetClientEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*GetClientPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{},
			RequiredScopes: []string{},
		}
		var token string
		if p.BearerToken != nil {
			token = *p.BearerToken
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return s.GetClient(ctx, p)
	}
}

// NewUpdateClientEndpoint returns an endpoint function that calls the method
// "update-client" of service "Task Service".
func NewUpdateClientEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*UpdateClientPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{},
			RequiredScopes: []string{},
		}
		var token string
		if p.BearerToken != nil {
			token = *p.BearerToken
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return s.UpdateClient(ctx, p)
	}
}

// NewDeleteClientEndpoint returns an endpoint function that calls the method
// "delete-client" of service "Task Service".
func NewDeleteClientEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*DeleteClientPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{},
			RequiredScopes: []string{},
		}
		var token string
		if p.BearerToken != nil {
			token = *p.BearerToken
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return nil, s.DeleteClient(ctx, p)
	}
}

// NewListClientsEndpoint returns an endpoint function that calls the method
// "list-clients" of service "Task Service".
func NewListClientsEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*ListClientsPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{},
			RequiredScopes: []string{},
		}
		var token string
		if p.BearerToken != nil {
			token = *p.BearerToken
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return s.ListClients(ctx, p)
	}
}
