// Code generated by goa v3.23.1, DO NOT EDIT.
//
// Task Service HTTP server
//
// Command:
// $ goa gen github.com/StianAK82/RegnskapSky-sub001/design

package server

import (
	"context"
	"net/http"

	taskservice "github.com/StianAK82/RegnskapSky-sub001/gen/task_service"
	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// Server lists the Task Service service endpoint HTTP handlers.
type Server struct {
	Mounts          []*MountPoint
	Readyz          http.Handler
	Livez           http.Handler
	CreateTask      http.Handler
	GetTask         http.Handler
	UpdateTask      http.Handler
	DeleteTask      http.Handler
	ListTasks       http.Handler
	GetTaskSchedule http.Handler
	CreateClient    http.Handler
	GetClient       http.Handler
	UpdateClient    http.Handler
	DeleteClient    http.Handler
	ListClients     http.Handler
}

// MountPoint holds information about the mounted endpoints.
type MountPoint struct {
	// Method is the name of the service method served by the mounted HTTP handler.
	Method string
	// Verb is the HTTP method used to match requests to the mounted handler.
	Verb string
	// Pattern is the HTTP request path pattern used to match requests to the
	// mounted handler.
	Pattern string
}

// New instantiates HTTP handlers for all the Task Service service endpoints
// using the provided encoder and decoder. The handlers are mounted on the
// given mux using the HTTP verb and path defined in the design. errhandler is
// called whenever a response fails to be encoded. formatter is used to format
// errors returned by the service methods prior to encoding. Both errhandler
// and formatter are optional and can be nil.
func New(
	e *taskservice.Endpoints,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) *Server {
	return &Server{
		Mounts: []*MountPoint{
			{"Readyz", "GET", "/readyz"},
			{"Livez", "GET", "/livez"},
			{"CreateTask", "POST", "/tasks"},
			{"GetTask", "GET", "/tasks/{uid}"},
			{"UpdateTask", "PUT", "/tasks/{uid}"},
			{"DeleteTask", "DELETE", "/tasks/{uid}"},
			{"ListTasks", "GET", "/tasks"},
			{"GetTaskSchedule", "GET", "/tasks/{uid}/schedule"},
			{"CreateClient", "POST", "/clients"},
			{"GetClient", "GET", "/clients/{uid}"},
			{"UpdateClient", "PUT", "/clients/{uid}"},
			{"DeleteClient", "DELETE", "/clients/{uid}"},
			{"ListClients", "GET", "/clients"},
		},
		Readyz:          NewReadyzHandler(e.Readyz, mux, decoder, encoder, errhandler, formatter),
		Livez:           NewLivezHandler(e.Livez, mux, decoder, encoder, errhandler, formatter),
		CreateTask:      NewCreateTaskHandler(e.CreateTask, mux, decoder, encoder, errhandler, formatter),
		GetTask:         NewGetTaskHandler(e.GetTask, mux, decoder, encoder, errhandler, formatter),
		UpdateTask:      NewUpdateTaskHandler(e.UpdateTask, mux, decoder, encoder, errhandler, formatter),
		DeleteTask:      NewDeleteTaskHandler(e.DeleteTask, mux, decoder, encoder, errhandler, formatter),
		ListTasks:       NewListTasksHandler(e.ListTasks, mux, decoder, encoder, errhandler, formatter),
		GetTaskSchedule: NewGetTaskScheduleHandler(e.GetTaskSchedule, mux, decoder, encoder, errhandler, formatter),
		CreateClient:    NewCreateClientHandler(e.CreateClient, mux, decoder, encoder, errhandler, formatter),
		GetClient:       NewGetClientHandler(e.GetClient, mux, decoder, encoder, errhandler, formatter),
		UpdateClient:    NewUpdateClientHandler(e.UpdateClient, mux, decoder, encoder, errhandler, formatter),
		DeleteClient:    NewDeleteClientHandler(e.DeleteClient, mux, decoder, encoder, errhandler, formatter),
		ListClients:     NewListClientsHandler(e.ListClients, mux, decoder, encoder, errhandler, formatter),
	}
}

// Service returns the name of the service served.
func (s *Server) Service() string { return "Task Service" }

// Use wraps the server handlers with the given middleware.
func (s *Server) Use(m func(http.Handler) http.Handler) {
	s.Readyz = m(s.Readyz)
	s.Livez = m(s.Livez)
	s.CreateTask = m(s.CreateTask)
	s.GetTask = m(s.GetTask)
	s.UpdateTask = m(s.UpdateTask)
	s.DeleteTask = m(s.DeleteTask)
	s.ListTasks = m(s.ListTasks)
	s.GetTaskSchedule = m(s.GetTaskSchedule)
	s.CreateClient = m(s.CreateClient)
	s.GetClient = m(s.GetClient)
	s.UpdateClient = m(s.UpdateClient)
	s.DeleteClient = m(s.DeleteClient)
	s.ListClients = m(s.ListClients)
}

// MethodNames returns the methods served.
func (s *Server) MethodNames() []string { return taskservice.MethodNames[:] }

// Mount configures the mux to serve the Task Service endpoints.
func Mount(mux goahttp.Muxer, h *Server) {
	MountReadyzHandler(mux, h.Readyz)
	MountLivezHandler(mux, h.Livez)
	MountCreateTaskHandler(mux, h.CreateTask)
	MountGetTaskHandler(mux, h.GetTask)
	MountUpdateTaskHandler(mux, h.UpdateTask)
	MountDeleteTaskHandler(mux, h.DeleteTask)
	MountListTasksHandler(mux, h.ListTasks)
	MountGetTaskScheduleHandler(mux, h.GetTaskSchedule)
	MountCreateClientHandler(mux, h.CreateClient)
	MountGetClientHandler(mux, h.GetClient)
	MountUpdateClientHandler(mux, h.UpdateClient)
	MountDeleteClientHandler(mux, h.DeleteClient)
	MountListClientsHandler(mux, h.ListClients)
}

// Mount configures the mux to serve the Task Service endpoints.
func (s *Server) Mount(mux goahttp.Muxer) {
	Mount(mux, s)
}

// MountReadyzHandler configures the mux to serve the "Task Service" service
// "readyz" endpoint.
func MountReadyzHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("GET", "/readyz", f)
}

// NewReadyzHandler creates a HTTP handler which loads the HTTP request and
// calls the "Task Service" service "readyz" endpoint.
func NewReadyzHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		encodeResponse = EncodeReadyzResponse(encoder)
		encodeError    = EncodeReadyzError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "readyz")
		ctx = context.WithValue(ctx, goa.ServiceKey, "Task Service")
		var err error
		res, err := endpoint(ctx, nil)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountLivezHandler configures the mux to serve the "Task Service" service
// "livez" endpoint.
func MountLivezHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("GET", "/livez", f)
}

// NewLivezHandler creates a HTTP handler which loads the HTTP request and
// calls the "Task Service" service "livez" endpoint.
func NewLivezHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		encodeResponse = EncodeLivezResponse(encoder)
		encodeError    = goahttp.ErrorEncoder(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "livez")
		ctx = context.WithValue(ctx, goa.ServiceKey, "Task Service")
		var err error
		res, err := endpoint(ctx, nil)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountCreateTaskHandler configures the mux to serve the "Task Service"
// service "create-task" endpoint.
func MountCreateTaskHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("POST", "/tasks", f)
}

// NewCreateTaskHandler creates a HTTP handler which loads the HTTP request and
// calls the "Task Service" service "create-task" endpoint.
func NewCreateTaskHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeCreateTaskRequest(mux, decoder)
		encodeResponse = EncodeCreateTaskResponse(encoder)
		encodeError    = EncodeCreateTaskError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "create-task")
		ctx = context.WithValue(ctx, goa.ServiceKey, "Task Service")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountGetTaskHandler configures the mux to serve the "Task Service" service
// "get-task" endpoint.
func MountGetTaskHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("GET", "/tasks/{uid}", f)
}

// NewGetTaskHandler creates a HTTP handler which loads the HTTP request and
// calls the "Task Service" service "get-task" endpoint.
func NewGetTaskHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeGetTaskRequest(mux, decoder)
		encodeResponse = EncodeGetTaskResponse(encoder)
		encodeError    = EncodeGetTaskError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "get-task")
		ctx = context.WithValue(ctx, goa.ServiceKey, "Task Service")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountUpdateTaskHandler configures the mux to serve the "Task Service"
// service "update-task" endpoint.
func MountUpdateTaskHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("PUT", "/tasks/{uid}", f)
}

// NewUpdateTaskHandler creates a HTTP handler which loads the HTTP request and
// calls the "Task Service" service "update-task" endpoint.
func NewUpdateTaskHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeUpdateTaskRequest(mux, decoder)
		encodeResponse = EncodeUpdateTaskResponse(encoder)
		encodeError    = EncodeUpdateTaskError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "update-task")
		ctx = context.WithValue(ctx, goa.ServiceKey, "Task Service")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountDeleteTaskHandler configures the mux to serve the "Task Service"
// service "delete-task" endpoint.
func MountDeleteTaskHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("DELETE", "/tasks/{uid}", f)
}

// NewDeleteTaskHandler creates a HTTP handler which loads the HTTP request and
// calls the "Task Service" service "delete-task" endpoint.
func NewDeleteTaskHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeDeleteTaskRequest(mux, decoder)
		encodeResponse = EncodeDeleteTaskResponse(encoder)
		encodeError    = EncodeDeleteTaskError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "delete-task")
		ctx = context.WithValue(ctx, goa.ServiceKey, "Task Service")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountListTasksHandler configures the mux to serve the "Task Service" service
// "list-tasks" endpoint.
func MountListTasksHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("GET", "/tasks", f)
}

// NewListTasksHandler creates a HTTP handler which loads the HTTP request and
// calls the "Task Service" service "list-tasks" endpoint.
func NewListTasksHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeListTasksRequest(mux, decoder)
		encodeResponse = EncodeListTasksResponse(encoder)
		encodeError    = EncodeListTasksError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "list-tasks")
		ctx = context.WithValue(ctx, goa.ServiceKey, "Task Service")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountGetTaskScheduleHandler configures the mux to serve the "Task Service"
// service "get-task-schedule" endpoint.
func MountGetTaskScheduleHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("GET", "/tasks/{uid}/schedule", f)
}

// NewGetTaskScheduleHandler creates a HTTP handler which loads the HTTP
// request and calls the "Task Service" service "get-task-schedule" endpoint.
func NewGetTaskScheduleHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeGetTaskScheduleRequest(mux, decoder)
		encodeResponse = EncodeGetTaskScheduleResponse(encoder)
		encodeError    = EncodeGetTaskScheduleError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "get-task-schedule")
		ctx = context.WithValue(ctx, goa.ServiceKey, "Task Service")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountCreateClientHandler configures the mux to serve the "Task Service"
// service "create-client" endpoint.
func MountCreateClientHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("POST", "/clients", f)
}

// NewCreateClientHandler creates a HTTP handler which loads the HTTP request
// and calls the "Task Service" service "create-client" endpoint.
func NewCreateClientHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeCreateClientRequest(mux, decoder)
		encodeResponse = EncodeCreateClientResponse(encoder)
		encodeError    = EncodeCreateClientError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "create-client")
		ctx = context.WithValue(ctx, goa.ServiceKey, "Task Service")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountGetClientHandler configures the mux to serve the "Task Service" service
// "get-client" endpoint.
func MountGetClientHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("GET", "/clients/{uid}", f)
}

// NewGetClientHandler creates a HTTP handler which loads the HTTP request and
// calls the "Task Service" service "get-client" endpoint.
func NewGetClientHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeGetClientRequest(mux, decoder)
		encodeResponse = EncodeGetClientResponse(encoder)
		encodeError    = EncodeGetClientError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "get-client")
		ctx = context.WithValue(ctx, goa.ServiceKey, "Task Service")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountUpdateClientHandler configures the mux to serve the "Task Service"
// service "update-client" endpoint.
func MountUpdateClientHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("PUT", "/clients/{uid}", f)
}

// NewUpdateClientHandler creates a HTTP handler which loads the HTTP request
// and calls the "Task Service" service "update-client" endpoint.
func NewUpdateClientHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeUpdateClientRequest(mux, decoder)
		encodeResponse = EncodeUpdateClientResponse(encoder)
		encodeError    = EncodeUpdateClientError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "update-client")
		ctx = context.WithValue(ctx, goa.ServiceKey, "Task Service")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountDeleteClientHandler configures the mux to serve the "Task Service"
// service "delete-client" endpoint.
func MountDeleteClientHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("DELETE", "/clients/{uid}", f)
}

// NewDeleteClientHandler creates a HTTP handler which loads the HTTP request
// and calls the "Task Service" service "delete-client" endpoint.
func NewDeleteClientHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeDeleteClientRequest(mux, decoder)
		encodeResponse = EncodeDeleteClientResponse(encoder)
		encodeError    = EncodeDeleteClientError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "delete-client")
		ctx = context.WithValue(ctx, goa.ServiceKey, "Task Service")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}

// MountListClientsHandler configures the mux to serve the "Task Service"
// service "list-clients" endpoint.
func MountListClientsHandler(mux goahttp.Muxer, h http.Handler) {
	f, ok := h.(http.HandlerFunc)
	if !ok {
		f = func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
		}
	}
	mux.Handle("GET", "/clients", f)
}

// NewListClientsHandler creates a HTTP handler which loads the HTTP request
// and calls the "Task Service" service "list-clients" endpoint.
func NewListClientsHandler(
	endpoint goa.Endpoint,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler func(context.Context, http.ResponseWriter, error),
	formatter func(ctx context.Context, err error) goahttp.Statuser,
) http.Handler {
	var (
		decodeRequest  = DecodeListClientsRequest(mux, decoder)
		encodeResponse = EncodeListClientsResponse(encoder)
		encodeError    = EncodeListClientsError(encoder, formatter)
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, "list-clients")
		ctx = context.WithValue(ctx, goa.ServiceKey, "Task Service")
		payload, err := decodeRequest(r)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil && errhandler != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		if err := encodeResponse(ctx, w, res); err != nil {
			if errhandler != nil {
				errhandler(ctx, w, err)
			}
		}
	})
}
