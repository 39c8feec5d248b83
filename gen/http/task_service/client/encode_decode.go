// Code generated by goa v3.23.1, DO NOT EDIT.
//
// Task Service HTTP client encoders and decoders
//
// Command:
// $ goa gen github.com/StianAK82/RegnskapSky-sub001/design

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	taskservice "github.com/StianAK82/RegnskapSky-sub001/gen/task_service"
	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// BuildReadyzRequest instantiates a HTTP request object with method and path
// set to call the "Task Service" service "readyz" endpoint
func (c *Client) BuildReadyzRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: ReadyzTaskServicePath()}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("Task Service", "readyz", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// DecodeReadyzResponse returns a decoder for responses returned by the Task
// Service readyz endpoint. restoreBody controls whether the response body
// should be restored after having been read.
// DecodeReadyzResponse may return the following errors:
//   - "ServiceUnavailable" (type *taskservice.ServiceUnavailableError): http.StatusServiceUnavailable
//   - error: internal error
func DecodeReadyzResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body []byte
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "readyz", err)
			}
			return body, nil
		case http.StatusServiceUnavailable:
			var (
				body ReadyzServiceUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "readyz", err)
			}
			err = ValidateReadyzServiceUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "readyz", err)
			}
			return nil, NewReadyzServiceUnavailable(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("Task Service", "readyz", resp.StatusCode, string(body))
		}
	}
}

// BuildLivezRequest instantiates a HTTP request object with method and path
// set to call the "Task Service" service "livez" endpoint
func (c *Client) BuildLivezRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: LivezTaskServicePath()}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("Task Service", "livez", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// DecodeLivezResponse returns a decoder for responses returned by the Task
// Service livez endpoint. restoreBody controls whether the response body
// should be restored after having been read.
func DecodeLivezResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body []byte
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "livez", err)
			}
			return body, nil
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("Task Service", "livez", resp.StatusCode, string(body))
		}
	}
}

// BuildCreateTaskRequest instantiates a HTTP request object with method and
// path set to call the "Task Service" service "create-task" endpoint
func (c *Client) BuildCreateTaskRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: CreateTaskTaskServicePath()}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("Task Service", "create-task", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeCreateTaskRequest returns an encoder for requests sent to the Task
// Service create-task server.
func EncodeCreateTaskRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*taskservice.CreateTaskPayload)
		if !ok {
			return goahttp.ErrInvalidType("Task Service", "create-task", "*taskservice.CreateTaskPayload", v)
		}
		if p.BearerToken != nil {
			head := *p.BearerToken
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		values := req.URL.Query()
		if p.Version != nil {
			values.Add("v", *p.Version)
		}
		req.URL.RawQuery = values.Encode()
		body := NewCreateTaskRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("Task Service", "create-task", err)
		}
		return nil
	}
}

// DecodeCreateTaskResponse returns a decoder for responses returned by the
// Task Service create-task endpoint. restoreBody controls whether the response
// body should be restored after having been read.
// DecodeCreateTaskResponse may return the following errors:
//   - "BadRequest" (type *taskservice.BadRequestError): http.StatusBadRequest
//   - "InternalServerError" (type *taskservice.InternalServerError): http.StatusInternalServerError
//   - "NotFound" (type *taskservice.NotFoundError): http.StatusNotFound
//   - "ServiceUnavailable" (type *taskservice.ServiceUnavailableError): http.StatusServiceUnavailable
//   - "Unauthorized" (type *taskservice.UnauthorizedError): http.StatusUnauthorized
//   - error: internal error
func DecodeCreateTaskResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusCreated:
			var (
				body CreateTaskResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "create-task", err)
			}
			err = ValidateCreateTaskResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "create-task", err)
			}
			res := NewCreateTaskTaskCreated(&body)
			return res, nil
		case http.StatusBadRequest:
			var (
				body CreateTaskBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "create-task", err)
			}
			err = ValidateCreateTaskBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "create-task", err)
			}
			return nil, NewCreateTaskBadRequest(&body)
		case http.StatusInternalServerError:
			var (
				body CreateTaskInternalServerErrorResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "create-task", err)
			}
			err = ValidateCreateTaskInternalServerErrorResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "create-task", err)
			}
			return nil, NewCreateTaskInternalServerError(&body)
		case http.StatusNotFound:
			var (
				body CreateTaskNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "create-task", err)
			}
			err = ValidateCreateTaskNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "create-task", err)
			}
			return nil, NewCreateTaskNotFound(&body)
		case http.StatusServiceUnavailable:
			var (
				body CreateTaskServiceUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "create-task", err)
			}
			err = ValidateCreateTaskServiceUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "create-task", err)
			}
			return nil, NewCreateTaskServiceUnavailable(&body)
		case http.StatusUnauthorized:
			var (
				body CreateTaskUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "create-task", err)
			}
			err = ValidateCreateTaskUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "create-task", err)
			}
			return nil, NewCreateTaskUnauthorized(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("Task Service", "create-task", resp.StatusCode, string(body))
		}
	}
}

// BuildGetTaskRequest instantiates a HTTP request object with method and path
// set to call the "Task Service" service "get-task" endpoint
func (c *Client) BuildGetTaskRequest(ctx context.Context, v any) (*http.Request, error) {
	var (
		uid string
	)
	{
		p, ok := v.(*taskservice.GetTaskPayload)
		if !ok {
			return nil, goahttp.ErrInvalidType("Task Service", "get-task", "*taskservice.GetTaskPayload", v)
		}
		uid = p.UID
	}
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: GetTaskTaskServicePath(uid)}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("Task Service", "get-task", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeGetTaskRequest returns an encoder for requests sent to the Task
// Service get-task server.
func EncodeGetTaskRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*taskservice.GetTaskPayload)
		if !ok {
			return goahttp.ErrInvalidType("Task Service", "get-task", "*taskservice.GetTaskPayload", v)
		}
		if p.BearerToken != nil {
			head := *p.BearerToken
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		values := req.URL.Query()
		if p.Version != nil {
			values.Add("v", *p.Version)
		}
		req.URL.RawQuery = values.Encode()
		return nil
	}
}

// DecodeGetTaskResponse returns a decoder for responses returned by the Task
// Service get-task endpoint. restoreBody controls whether the response body
// should be restored after having been read.
// DecodeGetTaskResponse may return the following errors:
//   - "BadRequest" (type *taskservice.BadRequestError): http.StatusBadRequest
//   - "InternalServerError" (type *taskservice.InternalServerError): http.StatusInternalServerError
//   - "NotFound" (type *taskservice.NotFoundError): http.StatusNotFound
//   - "ServiceUnavailable" (type *taskservice.ServiceUnavailableError): http.StatusServiceUnavailable
//   - "Unauthorized" (type *taskservice.UnauthorizedError): http.StatusUnauthorized
//   - error: internal error
func DecodeGetTaskResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body GetTaskResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-task", err)
			}
			err = ValidateGetTaskResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-task", err)
			}
			var (
				etag *string
			)
			etagRaw := resp.Header.Get("Etag")
			if etagRaw != "" {
				etag = &etagRaw
			}
			res := NewGetTaskResultOK(&body, etag)
			return res, nil
		case http.StatusBadRequest:
			var (
				body GetTaskBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-task", err)
			}
			err = ValidateGetTaskBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-task", err)
			}
			return nil, NewGetTaskBadRequest(&body)
		case http.StatusInternalServerError:
			var (
				body GetTaskInternalServerErrorResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-task", err)
			}
			err = ValidateGetTaskInternalServerErrorResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-task", err)
			}
			return nil, NewGetTaskInternalServerError(&body)
		case http.StatusNotFound:
			var (
				body GetTaskNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-task", err)
			}
			err = ValidateGetTaskNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-task", err)
			}
			return nil, NewGetTaskNotFound(&body)
		case http.StatusServiceUnavailable:
			var (
				body GetTaskServiceUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-task", err)
			}
			err = ValidateGetTaskServiceUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-task", err)
			}
			return nil, NewGetTaskServiceUnavailable(&body)
		case http.StatusUnauthorized:
			var (
				body GetTaskUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-task", err)
			}
			err = ValidateGetTaskUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-task", err)
			}
			return nil, NewGetTaskUnauthorized(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("Task Service", "get-task", resp.StatusCode, string(body))
		}
	}
}

// BuildUpdateTaskRequest instantiates a HTTP request object with method and
// path set to call the "Task Service" service "update-task" endpoint
func (c *Client) BuildUpdateTaskRequest(ctx context.Context, v any) (*http.Request, error) {
	var (
		uid string
	)
	{
		p, ok := v.(*taskservice.UpdateTaskPayload)
		if !ok {
			return nil, goahttp.ErrInvalidType("Task Service", "update-task", "*taskservice.UpdateTaskPayload", v)
		}
		uid = p.UID
	}
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: UpdateTaskTaskServicePath(uid)}
	req, err := http.NewRequest("PUT", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("Task Service", "update-task", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeUpdateTaskRequest returns an encoder for requests sent to the Task
// Service update-task server.
func EncodeUpdateTaskRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*taskservice.UpdateTaskPayload)
		if !ok {
			return goahttp.ErrInvalidType("Task Service", "update-task", "*taskservice.UpdateTaskPayload", v)
		}
		if p.BearerToken != nil {
			head := *p.BearerToken
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		if p.Etag != nil {
			head := *p.Etag
			req.Header.Set("If-Match", head)
		}
		values := req.URL.Query()
		if p.Version != nil {
			values.Add("v", *p.Version)
		}
		req.URL.RawQuery = values.Encode()
		body := NewUpdateTaskRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("Task Service", "update-task", err)
		}
		return nil
	}
}

// DecodeUpdateTaskResponse returns a decoder for responses returned by the
// Task Service update-task endpoint. restoreBody controls whether the response
// body should be restored after having been read.
// DecodeUpdateTaskResponse may return the following errors:
//   - "BadRequest" (type *taskservice.BadRequestError): http.StatusBadRequest
//   - "Conflict" (type *taskservice.ConflictError): http.StatusConflict
//   - "InternalServerError" (type *taskservice.InternalServerError): http.StatusInternalServerError
//   - "NotFound" (type *taskservice.NotFoundError): http.StatusNotFound
//   - "ServiceUnavailable" (type *taskservice.ServiceUnavailableError): http.StatusServiceUnavailable
//   - "Unauthorized" (type *taskservice.UnauthorizedError): http.StatusUnauthorized
//   - error: internal error
func DecodeUpdateTaskResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body UpdateTaskResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-task", err)
			}
			err = ValidateUpdateTaskResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-task", err)
			}
			res := NewUpdateTaskTaskOK(&body)
			return res, nil
		case http.StatusBadRequest:
			var (
				body UpdateTaskBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-task", err)
			}
			err = ValidateUpdateTaskBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-task", err)
			}
			return nil, NewUpdateTaskBadRequest(&body)
		case http.StatusConflict:
			var (
				body UpdateTaskConflictResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-task", err)
			}
			err = ValidateUpdateTaskConflictResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-task", err)
			}
			return nil, NewUpdateTaskConflict(&body)
		case http.StatusInternalServerError:
			var (
				body UpdateTaskInternalServerErrorResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-task", err)
			}
			err = ValidateUpdateTaskInternalServerErrorResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-task", err)
			}
			return nil, NewUpdateTaskInternalServerError(&body)
		case http.StatusNotFound:
			var (
				body UpdateTaskNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-task", err)
			}
			err = ValidateUpdateTaskNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-task", err)
			}
			return nil, NewUpdateTaskNotFound(&body)
		case http.StatusServiceUnavailable:
			var (
				body UpdateTaskServiceUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-task", err)
			}
			err = ValidateUpdateTaskServiceUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-task", err)
			}
			return nil, NewUpdateTaskServiceUnavailable(&body)
		case http.StatusUnauthorized:
			var (
				body UpdateTaskUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-task", err)
			}
			err = ValidateUpdateTaskUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-task", err)
			}
			return nil, NewUpdateTaskUnauthorized(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("Task Service", "update-task", resp.StatusCode, string(body))
		}
	}
}

// BuildDeleteTaskRequest instantiates a HTTP request object with method and
// path set to call the "Task Service" service "delete-task" endpoint
func (c *Client) BuildDeleteTaskRequest(ctx context.Context, v any) (*http.Request, error) {
	var (
		uid string
	)
	{
		p, ok := v.(*taskservice.DeleteTaskPayload)
		if !ok {
			return nil, goahttp.ErrInvalidType("Task Service", "delete-task", "*taskservice.DeleteTaskPayload", v)
		}
		uid = p.UID
	}
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: DeleteTaskTaskServicePath(uid)}
	req, err := http.NewRequest("DELETE", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("Task Service", "delete-task", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeDeleteTaskRequest returns an encoder for requests sent to the Task
// Service delete-task server.
func EncodeDeleteTaskRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*taskservice.DeleteTaskPayload)
		if !ok {
			return goahttp.ErrInvalidType("Task Service", "delete-task", "*taskservice.DeleteTaskPayload", v)
		}
		if p.BearerToken != nil {
			head := *p.BearerToken
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		if p.Etag != nil {
			head := *p.Etag
			req.Header.Set("If-Match", head)
		}
		values := req.URL.Query()
		if p.Version != nil {
			values.Add("v", *p.Version)
		}
		req.URL.RawQuery = values.Encode()
		return nil
	}
}

// DecodeDeleteTaskResponse returns a decoder for responses returned by the
// Task Service delete-task endpoint. restoreBody controls whether the response
// body should be restored after having been read.
// DecodeDeleteTaskResponse may return the following errors:
//   - "BadRequest" (type *taskservice.BadRequestError): http.StatusBadRequest
//   - "Conflict" (type *taskservice.ConflictError): http.StatusConflict
//   - "InternalServerError" (type *taskservice.InternalServerError): http.StatusInternalServerError
//   - "NotFound" (type *taskservice.NotFoundError): http.StatusNotFound
//   - "ServiceUnavailable" (type *taskservice.ServiceUnavailableError): http.StatusServiceUnavailable
//   - "Unauthorized" (type *taskservice.UnauthorizedError): http.StatusUnauthorized
//   - error: internal error
func DecodeDeleteTaskResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusNoContent:
			return nil, nil
		case http.StatusBadRequest:
			var (
				body DeleteTaskBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "delete-task", err)
			}
			err = ValidateDeleteTaskBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "delete-task", err)
			}
			return nil, NewDeleteTaskBadRequest(&body)
		case http.StatusConflict:
			var (
				body DeleteTaskConflictResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "delete-task", err)
			}
			err = ValidateDeleteTaskConflictResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "delete-task", err)
			}
			return nil, NewDeleteTaskConflict(&body)
		case http.StatusInternalServerError:
			var (
				body DeleteTaskInternalServerErrorResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "delete-task", err)
			}
			err = ValidateDeleteTaskInternalServerErrorResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "delete-task", err)
			}
			return nil, NewDeleteTaskInternalServerError(&body)
		case http.StatusNotFound:
			var (
				body DeleteTaskNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "delete-task", err)
			}
			err = ValidateDeleteTaskNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "delete-task", err)
			}
			return nil, NewDeleteTaskNotFound(&body)
		case http.StatusServiceUnavailable:
			var (
				body DeleteTaskServiceUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "delete-task", err)
			}
			err = ValidateDeleteTaskServiceUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "delete-task", err)
			}
			return nil, NewDeleteTaskServiceUnavailable(&body)
		case http.StatusUnauthorized:
			var (
				body DeleteTaskUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "delete-task", err)
			}
			err = ValidateDeleteTaskUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "delete-task", err)
			}
			return nil, NewDeleteTaskUnauthorized(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("Task Service", "delete-task", resp.StatusCode, string(body))
		}
	}
}

// BuildListTasksRequest instantiates a HTTP request object with method and
// path set to call the "Task Service" service "list-tasks" endpoint
func (c *Client) BuildListTasksRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: ListTasksTaskServicePath()}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("Task Service", "list-tasks", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeListTasksRequest returns an encoder for requests sent to the Task
// Service list-tasks server.
func EncodeListTasksRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*taskservice.ListTasksPayload)
		if !ok {
			return goahttp.ErrInvalidType("Task Service", "list-tasks", "*taskservice.ListTasksPayload", v)
		}
		if p.BearerToken != nil {
			head := *p.BearerToken
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		values := req.URL.Query()
		if p.Version != nil {
			values.Add("v", *p.Version)
		}
		if p.ClientUID != nil {
			values.Add("client_uid", *p.ClientUID)
		}
		req.URL.RawQuery = values.Encode()
		return nil
	}
}

// DecodeListTasksResponse returns a decoder for responses returned by the Task
// Service list-tasks endpoint. restoreBody controls whether the response body
// should be restored after having been read.
// DecodeListTasksResponse may return the following errors:
//   - "BadRequest" (type *taskservice.BadRequestError): http.StatusBadRequest
//   - "InternalServerError" (type *taskservice.InternalServerError): http.StatusInternalServerError
//   - "ServiceUnavailable" (type *taskservice.ServiceUnavailableError): http.StatusServiceUnavailable
//   - "Unauthorized" (type *taskservice.UnauthorizedError): http.StatusUnauthorized
//   - error: internal error
func DecodeListTasksResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body ListTasksResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "list-tasks", err)
			}
			for _, e := range body {
				if e != nil {
					if err2 := ValidateTaskResponse(e); err2 != nil {
						err = goa.MergeErrors(err, err2)
					}
				}
			}
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "list-tasks", err)
			}
			res := NewListTasksTaskOK(body)
			return res, nil
		case http.StatusBadRequest:
			var (
				body ListTasksBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "list-tasks", err)
			}
			err = ValidateListTasksBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "list-tasks", err)
			}
			return nil, NewListTasksBadRequest(&body)
		case http.StatusInternalServerError:
			var (
				body ListTasksInternalServerErrorResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "list-tasks", err)
			}
			err = ValidateListTasksInternalServerErrorResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "list-tasks", err)
			}
			return nil, NewListTasksInternalServerError(&body)
		case http.StatusServiceUnavailable:
			var (
				body ListTasksServiceUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "list-tasks", err)
			}
			err = ValidateListTasksServiceUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "list-tasks", err)
			}
			return nil, NewListTasksServiceUnavailable(&body)
		case http.StatusUnauthorized:
			var (
				body ListTasksUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "list-tasks", err)
			}
			err = ValidateListTasksUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "list-tasks", err)
			}
			return nil, NewListTasksUnauthorized(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("Task Service", "list-tasks", resp.StatusCode, string(body))
		}
	}
}

// BuildGetTaskScheduleRequest instantiates a HTTP request object with method
// and path set to call the "Task Service" service "get-task-schedule" endpoint
func (c *Client) BuildGetTaskScheduleRequest(ctx context.Context, v any) (*http.Request, error) {
	var (
		uid string
	)
	{
		p, ok := v.(*taskservice.GetTaskSchedulePayload)
		if !ok {
			return nil, goahttp.ErrInvalidType("Task Service", "get-task-schedule", "*taskservice.GetTaskSchedulePayload", v)
		}
		uid = p.UID
	}
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: GetTaskScheduleTaskServicePath(uid)}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("Task Service", "get-task-schedule", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeGetTaskScheduleRequest returns an encoder for requests sent to the
// Task Service get-task-schedule server.
func EncodeGetTaskScheduleRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*taskservice.GetTaskSchedulePayload)
		if !ok {
			return goahttp.ErrInvalidType("Task Service", "get-task-schedule", "*taskservice.GetTaskSchedulePayload", v)
		}
		if p.BearerToken != nil {
			head := *p.BearerToken
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		values := req.URL.Query()
		if p.Version != nil {
			values.Add("v", *p.Version)
		}
		if p.FromDate != nil {
			values.Add("from_date", *p.FromDate)
		}
		if p.Limit != nil {
			values.Add("limit", fmt.Sprintf("%v", *p.Limit))
		}
		req.URL.RawQuery = values.Encode()
		return nil
	}
}

// DecodeGetTaskScheduleResponse returns a decoder for responses returned by
// the Task Service get-task-schedule endpoint. restoreBody controls whether
// the response body should be restored after having been read.
// DecodeGetTaskScheduleResponse may return the following errors:
//   - "BadRequest" (type *taskservice.BadRequestError): http.StatusBadRequest
//   - "InternalServerError" (type *taskservice.InternalServerError): http.StatusInternalServerError
//   - "NotFound" (type *taskservice.NotFoundError): http.StatusNotFound
//   - "ServiceUnavailable" (type *taskservice.ServiceUnavailableError): http.StatusServiceUnavailable
//   - "Unauthorized" (type *taskservice.UnauthorizedError): http.StatusUnauthorized
//   - error: internal error
func DecodeGetTaskScheduleResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body GetTaskScheduleResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-task-schedule", err)
			}
			for _, e := range body {
				if e != nil {
					if err2 := ValidateTaskOccurrenceResponse(e); err2 != nil {
						err = goa.MergeErrors(err, err2)
					}
				}
			}
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-task-schedule", err)
			}
			res := NewGetTaskScheduleTaskOccurrenceOK(body)
			return res, nil
		case http.StatusBadRequest:
			var (
				body GetTaskScheduleBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-task-schedule", err)
			}
			err = ValidateGetTaskScheduleBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-task-schedule", err)
			}
			return nil, NewGetTaskScheduleBadRequest(&body)
		case http.StatusInternalServerError:
			var (
				body GetTaskScheduleInternalServerErrorResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-task-schedule", err)
			}
			err = ValidateGetTaskScheduleInternalServerErrorResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-task-schedule", err)
			}
			return nil, NewGetTaskScheduleInternalServerError(&body)
		case http.StatusNotFound:
			var (
				body GetTaskScheduleNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-task-schedule", err)
			}
			err = ValidateGetTaskScheduleNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-task-schedule", err)
			}
			return nil, NewGetTaskScheduleNotFound(&body)
		case http.StatusServiceUnavailable:
			var (
				body GetTaskScheduleServiceUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-task-schedule", err)
			}
			err = ValidateGetTaskScheduleServiceUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-task-schedule", err)
			}
			return nil, NewGetTaskScheduleServiceUnavailable(&body)
		case http.StatusUnauthorized:
			var (
				body GetTaskScheduleUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-task-schedule", err)
			}
			err = ValidateGetTaskScheduleUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-task-schedule", err)
			}
			return nil, NewGetTaskScheduleUnauthorized(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("Task Service", "get-task-schedule", resp.StatusCode, string(body))
		}
	}
}

// BuildCreateClientRequest instantiates a HTTP request object with method and
// path set to call the "Task Service" service "create-client" endpoint
func (c *Client) BuildCreateClientRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: CreateClientTaskServicePath()}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("Task Service", "create-client", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeCreateClientRequest returns an encoder for requests sent to the Task
// Service create-client server.
func EncodeCreateClientRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*taskservice.CreateClientPayload)
		if !ok {
			return goahttp.ErrInvalidType("Task Service", "create-client", "*taskservice.CreateClientPayload", v)
		}
		if p.BearerToken != nil {
			head := *p.BearerToken
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		values := req.URL.Query()
		if p.Version != nil {
			values.Add("v", *p.Version)
		}
		req.URL.RawQuery = values.Encode()
		body := NewCreateClientRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("Task Service", "create-client", err)
		}
		return nil
	}
}

// DecodeCreateClientResponse returns a decoder for responses returned by the
// Task Service create-client endpoint. restoreBody controls whether the
// response body should be restored after having been read.
// DecodeCreateClientResponse may return the following errors:
//   - "BadRequest" (type *taskservice.BadRequestError): http.StatusBadRequest
//   - "InternalServerError" (type *taskservice.InternalServerError): http.StatusInternalServerError
//   - "ServiceUnavailable" (type *taskservice.ServiceUnavailableError): http.StatusServiceUnavailable
//   - "Unauthorized" (type *taskservice.UnauthorizedError): http.StatusUnauthorized
//   - error: internal error
func DecodeCreateClientResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusCreated:
			var (
				body CreateClientResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "create-client", err)
			}
			err = ValidateCreateClientResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "create-client", err)
			}
			res := NewCreateClientClientCreated(&body)
			return res, nil
		case http.StatusBadRequest:
			var (
				body CreateClientBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "create-client", err)
			}
			err = ValidateCreateClientBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "create-client", err)
			}
			return nil, NewCreateClientBadRequest(&body)
		case http.StatusInternalServerError:
			var (
				body CreateClientInternalServerErrorResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "create-client", err)
			}
			err = ValidateCreateClientInternalServerErrorResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "create-client", err)
			}
			return nil, NewCreateClientInternalServerError(&body)
		case http.StatusServiceUnavailable:
			var (
				body CreateClientServiceUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "create-client", err)
			}
			err = ValidateCreateClientServiceUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "create-client", err)
			}
			return nil, NewCreateClientServiceUnavailable(&body)
		case http.StatusUnauthorized:
			var (
				body CreateClientUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "create-client", err)
			}
			err = ValidateCreateClientUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "create-client", err)
			}
			return nil, NewCreateClientUnauthorized(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("Task Service", "create-client", resp.StatusCode, string(body))
		}
	}
}

// BuildGetClientRequest instantiates a HTTP request object with method and
// path set to call the "Task Service" service "get-client" endpoint
func (c *Client) BuildGetClientRequest(ctx context.Context, v any) (*http.Request, error) {
	var (
		uid string
	)
	{
		p, ok := v.(*taskservice.GetClientPayload)
		if !ok {
			return nil, goahttp.ErrInvalidType("Task Service", "get-client", "*taskservice.GetClientPayload", v)
		}
		uid = p.UID
	}
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: GetClientTaskServicePath(uid)}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("Task Service", "get-client", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeGetClientRequest returns an encoder for requests sent to the Task
// Service get-client server.
func EncodeGetClientRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*taskservice.GetClientPayload)
		if !ok {
			return goahttp.ErrInvalidType("Task Service", "get-client", "*taskservice.GetClientPayload", v)
		}
		if p.BearerToken != nil {
			head := *p.BearerToken
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		values := req.URL.Query()
		if p.Version != nil {
			values.Add("v", *p.Version)
		}
		req.URL.RawQuery = values.Encode()
		return nil
	}
}

// DecodeGetClientResponse returns a decoder for responses returned by the Task
// Service get-client endpoint. restoreBody controls whether the response body
// should be restored after having been read.
// DecodeGetClientResponse may return the following errors:
//   - "BadRequest" (type *taskservice.BadRequestError): http.StatusBadRequest
//   - "InternalServerError" (type *taskservice.InternalServerError): http.StatusInternalServerError
//   - "NotFound" (type *taskservice.NotFoundError): http.StatusNotFound
//   - "ServiceUnavailable" (type *taskservice.ServiceUnavailableError): http.StatusServiceUnavailable
//   - "Unauthorized" (type *taskservice.UnauthorizedError): http.StatusUnauthorized
//   - error: internal error
func DecodeGetClientResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body GetClientResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-client", err)
			}
			err = ValidateGetClientResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-client", err)
			}
			var (
				etag *string
			)
			etagRaw := resp.Header.Get("Etag")
			if etagRaw != "" {
				etag = &etagRaw
			}
			res := NewGetClientResultOK(&body, etag)
			return res, nil
		case http.StatusBadRequest:
			var (
				body GetClientBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-client", err)
			}
			err = ValidateGetClientBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-client", err)
			}
			return nil, NewGetClientBadRequest(&body)
		case http.StatusInternalServerError:
			var (
				body GetClientInternalServerErrorResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-client", err)
			}
			err = ValidateGetClientInternalServerErrorResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-client", err)
			}
			return nil, NewGetClientInternalServerError(&body)
		case http.StatusNotFound:
			var (
				body GetClientNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-client", err)
			}
			err = ValidateGetClientNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-client", err)
			}
			return nil, NewGetClientNotFound(&body)
		case http.StatusServiceUnavailable:
			var (
				body GetClientServiceUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-client", err)
			}
			err = ValidateGetClientServiceUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-client", err)
			}
			return nil, NewGetClientServiceUnavailable(&body)
		case http.StatusUnauthorized:
			var (
				body GetClientUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "get-client", err)
			}
			err = ValidateGetClientUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "get-client", err)
			}
			return nil, NewGetClientUnauthorized(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("Task Service", "get-client", resp.StatusCode, string(body))
		}
	}
}

// BuildUpdateClientRequest instantiates a HTTP request object with method and
// path set to call the "Task Service" service "update-client" endpoint
func (c *Client) BuildUpdateClientRequest(ctx context.Context, v any) (*http.Request, error) {
	var (
		uid string
	)
	{
		p, ok := v.(*taskservice.UpdateClientPayload)
		if !ok {
			return nil, goahttp.ErrInvalidType("Task Service", "update-client", "*taskservice.UpdateClientPayload", v)
		}
		uid = p.UID
	}
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: UpdateClientTaskServicePath(uid)}
	req, err := http.NewRequest("PUT", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("Task Service", "update-client", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeUpdateClientRequest returns an encoder for requests sent to the Task
// Service update-client server.
func EncodeUpdateClientRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*taskservice.UpdateClientPayload)
		if !ok {
			return goahttp.ErrInvalidType("Task Service", "update-client", "*taskservice.UpdateClientPayload", v)
		}
		if p.BearerToken != nil {
			head := *p.BearerToken
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		if p.Etag != nil {
			head := *p.Etag
			req.Header.Set("If-Match", head)
		}
		values := req.URL.Query()
		if p.Version != nil {
			values.Add("v", *p.Version)
		}
		req.URL.RawQuery = values.Encode()
		body := NewUpdateClientRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("Task Service", "update-client", err)
		}
		return nil
	}
}

// DecodeUpdateClientResponse returns a decoder for responses returned by the
// Task Service update-client endpoint. restoreBody controls whether the
// response body should be restored after having been read.
// DecodeUpdateClientResponse may return the following errors:
//   - "BadRequest" (type *taskservice.BadRequestError): http.StatusBadRequest
//   - "Conflict" (type *taskservice.ConflictError): http.StatusConflict
//   - "InternalServerError" (type *taskservice.InternalServerError): http.StatusInternalServerError
//   - "NotFound" (type *taskservice.NotFoundError): http.StatusNotFound
//   - "ServiceUnavailable" (type *taskservice.ServiceUnavailableError): http.StatusServiceUnavailable
//   - "Unauthorized" (type *taskservice.UnauthorizedError): http.StatusUnauthorized
//   - error: internal error
func DecodeUpdateClientResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body UpdateClientResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-client", err)
			}
			err = ValidateUpdateClientResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-client", err)
			}
			res := NewUpdateClientClientOK(&body)
			return res, nil
		case http.StatusBadRequest:
			var (
				body UpdateClientBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-client", err)
			}
			err = ValidateUpdateClientBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-client", err)
			}
			return nil, NewUpdateClientBadRequest(&body)
		case http.StatusConflict:
			var (
				body UpdateClientConflictResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-client", err)
			}
			err = ValidateUpdateClientConflictResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-client", err)
			}
			return nil, NewUpdateClientConflict(&body)
		case http.StatusInternalServerError:
			var (
				body UpdateClientInternalServerErrorResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-client", err)
			}
			err = ValidateUpdateClientInternalServerErrorResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-client", err)
			}
			return nil, NewUpdateClientInternalServerError(&body)
		case http.StatusNotFound:
			var (
				body UpdateClientNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-client", err)
			}
			err = ValidateUpdateClientNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-client", err)
			}
			return nil, NewUpdateClientNotFound(&body)
		case http.StatusServiceUnavailable:
			var (
				body UpdateClientServiceUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-client", err)
			}
			err = ValidateUpdateClientServiceUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-client", err)
			}
			return nil, NewUpdateClientServiceUnavailable(&body)
		case http.StatusUnauthorized:
			var (
				body UpdateClientUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "update-client", err)
			}
			err = ValidateUpdateClientUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "update-client", err)
			}
			return nil, NewUpdateClientUnauthorized(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("Task Service", "update-client", resp.StatusCode, string(body))
		}
	}
}

// BuildDeleteClientRequest instantiates a HTTP request object with method and
// path set to call the "Task Service" service "delete-client" endpoint
func (c *Client) BuildDeleteClientRequest(ctx context.Context, v any) (*http.Request, error) {
	var (
		uid string
	)
	{
		p, ok := v.(*taskservice.DeleteClientPayload)
		if !ok {
			return nil, goahttp.ErrInvalidType("Task Service", "delete-client", "*taskservice.DeleteClientPayload", v)
		}
		uid = p.UID
	}
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: DeleteClientTaskServicePath(uid)}
	req, err := http.NewRequest("DELETE", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("Task Service", "delete-client", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeDeleteClientRequest returns an encoder for requests sent to the Task
// Service delete-client server.
func EncodeDeleteClientRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*taskservice.DeleteClientPayload)
		if !ok {
			return goahttp.ErrInvalidType("Task Service", "delete-client", "*taskservice.DeleteClientPayload", v)
		}
		if p.BearerToken != nil {
			head := *p.BearerToken
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		if p.Etag != nil {
			head := *p.Etag
			req.Header.Set("If-Match", head)
		}
		values := req.URL.Query()
		if p.Version != nil {
			values.Add("v", *p.Version)
		}
		req.URL.RawQuery = values.Encode()
		return nil
	}
}

// DecodeDeleteClientResponse returns a decoder for responses returned by the
// Task Service delete-client endpoint. restoreBody controls whether the
// response body should be restored after having been read.
// DecodeDeleteClientResponse may return the following errors:
//   - "BadRequest" (type *taskservice.BadRequestError): http.StatusBadRequest
//   - "Conflict" (type *taskservice.ConflictError): http.StatusConflict
//   - "InternalServerError" (type *taskservice.InternalServerError): http.StatusInternalServerError
//   - "NotFound" (type *taskservice.NotFoundError): http.StatusNotFound
//   - "ServiceUnavailable" (type *taskservice.ServiceUnavailableError): http.StatusServiceUnavailable
//   - "Unauthorized" (type *taskservice.UnauthorizedError): http.StatusUnauthorized
//   - error: internal error
func DecodeDeleteClientResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusNoContent:
			return nil, nil
		case http.StatusBadRequest:
			var (
				body DeleteClientBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "delete-client", err)
			}
			err = ValidateDeleteClientBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "delete-client", err)
			}
			return nil, NewDeleteClientBadRequest(&body)
		case http.StatusConflict:
			var (
				body DeleteClientConflictResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "delete-client", err)
			}
			err = ValidateDeleteClientConflictResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "delete-client", err)
			}
			return nil, NewDeleteClientConflict(&body)
		case http.StatusInternalServerError:
			var (
				body DeleteClientInternalServerErrorResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "delete-client", err)
			}
			err = ValidateDeleteClientInternalServerErrorResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "delete-client", err)
			}
			return nil, NewDeleteClientInternalServerError(&body)
		case http.StatusNotFound:
			var (
				body DeleteClientNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "delete-client", err)
			}
			err = ValidateDeleteClientNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "delete-client", err)
			}
			return nil, NewDeleteClientNotFound(&body)
		case http.StatusServiceUnavailable:
			var (
				body DeleteClientServiceUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "delete-client", err)
			}
			err = ValidateDeleteClientServiceUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "delete-client", err)
			}
			return nil, NewDeleteClientServiceUnavailable(&body)
		case http.StatusUnauthorized:
			var (
				body DeleteClientUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "delete-client", err)
			}
			err = ValidateDeleteClientUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "delete-client", err)
			}
			return nil, NewDeleteClientUnauthorized(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("Task Service", "delete-client", resp.StatusCode, string(body))
		}
	}
}

// BuildListClientsRequest instantiates a HTTP request object with method and
// path set to call the "Task Service" service "list-clients" endpoint
func (c *Client) BuildListClientsRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: ListClientsTaskServicePath()}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("Task Service", "list-clients", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeListClientsRequest returns an encoder for requests sent to the Task
// Service list-clients server.
func EncodeListClientsRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*taskservice.ListClientsPayload)
		if !ok {
			return goahttp.ErrInvalidType("Task Service", "list-clients", "*taskservice.ListClientsPayload", v)
		}
		if p.BearerToken != nil {
			head := *p.BearerToken
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		values := req.URL.Query()
		if p.Version != nil {
			values.Add("v", *p.Version)
		}
		req.URL.RawQuery = values.Encode()
		return nil
	}
}

// DecodeListClientsResponse returns a decoder for responses returned by the
// Task Service list-clients endpoint. restoreBody controls whether the
// response body should be restored after having been read.
// DecodeListClientsResponse may return the following errors:
//   - "BadRequest" (type *taskservice.BadRequestError): http.StatusBadRequest
//   - "InternalServerError" (type *taskservice.InternalServerError): http.StatusInternalServerError
//   - "ServiceUnavailable" (type *taskservice.ServiceUnavailableError): http.StatusServiceUnavailable
//   - "Unauthorized" (type *taskservice.UnauthorizedError): http.StatusUnauthorized
//   - error: internal error
func DecodeListClientsResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body ListClientsResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "list-clients", err)
			}
			for _, e := range body {
				if e != nil {
					if err2 := ValidateClientResponse(e); err2 != nil {
						err = goa.MergeErrors(err, err2)
					}
				}
			}
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "list-clients", err)
			}
			res := NewListClientsClientOK(body)
			return res, nil
		case http.StatusBadRequest:
			var (
				body ListClientsBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "list-clients", err)
			}
			err = ValidateListClientsBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "list-clients", err)
			}
			return nil, NewListClientsBadRequest(&body)
		case http.StatusInternalServerError:
			var (
				body ListClientsInternalServerErrorResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "list-clients", err)
			}
			err = ValidateListClientsInternalServerErrorResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "list-clients", err)
			}
			return nil, NewListClientsInternalServerError(&body)
		case http.StatusServiceUnavailable:
			var (
				body ListClientsServiceUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "list-clients", err)
			}
			err = ValidateListClientsServiceUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "list-clients", err)
			}
			return nil, NewListClientsServiceUnavailable(&body)
		case http.StatusUnauthorized:
			var (
				body ListClientsUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("Task Service", "list-clients", err)
			}
			err = ValidateListClientsUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("Task Service", "list-clients", err)
			}
			return nil, NewListClientsUnauthorized(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("Task Service", "list-clients", resp.StatusCode, string(body))
		}
	}
}

// unmarshalTaskResponseToTaskserviceTask builds a value of type
// *taskservice.Task from a value of type *TaskResponse.
func unmarshalTaskResponseToTaskserviceTask(v *TaskResponse) *taskservice.Task {
	res := &taskservice.Task{
		UID:            v.UID,
		ClientUID:      v.ClientUID,
		Title:          v.Title,
		Description:    v.Description,
		FrequencyLabel: v.FrequencyLabel,
		Frequency:      v.Frequency,
		StartDate:      v.StartDate,
		NextDue:        v.NextDue,
		AssigneeEmail:  v.AssigneeEmail,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
	if v.Status != nil {
		res.Status = *v.Status
	}
	if v.Status == nil {
		res.Status = "open"
	}

	return res
}

// unmarshalTaskOccurrenceResponseToTaskserviceTaskOccurrence builds a value of
// type *taskservice.TaskOccurrence from a value of type
// *TaskOccurrenceResponse.
func unmarshalTaskOccurrenceResponseToTaskserviceTaskOccurrence(v *TaskOccurrenceResponse) *taskservice.TaskOccurrence {
	res := &taskservice.TaskOccurrence{
		TaskUID: *v.TaskUID,
		DueDate: *v.DueDate,
	}

	return res
}

// unmarshalClientResponseToTaskserviceClient builds a value of type
// *taskservice.Client from a value of type *ClientResponse.
func unmarshalClientResponseToTaskserviceClient(v *ClientResponse) *taskservice.Client {
	res := &taskservice.Client{
		UID:          v.UID,
		Name:         v.Name,
		OrgNumber:    v.OrgNumber,
		ContactName:  v.ContactName,
		ContactEmail: v.ContactEmail,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}

	return res
}
