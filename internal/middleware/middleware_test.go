// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StianAK82/RegnskapSky-sub001/pkg/constants"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name            string
		incomingHeader  string
		expectGenerated bool
	}{
		{
			name:           "reuses incoming request ID",
			incomingHeader: "incoming-request-id",
		},
		{
			name:            "generates a request ID when missing",
			expectGenerated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxRequestID string
			var ctxHasRequestID bool

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxRequestID, ctxHasRequestID = r.Context().Value(constants.RequestIDContextID).(string)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if tt.incomingHeader != "" {
				req.Header.Set(constants.RequestIDHeader, tt.incomingHeader)
			}
			rec := httptest.NewRecorder()

			RequestIDMiddleware()(handler).ServeHTTP(rec, req)

			require.True(t, ctxHasRequestID)
			assert.Equal(t, ctxRequestID, rec.Header().Get(constants.RequestIDHeader))
			if tt.expectGenerated {
				_, err := uuid.Parse(ctxRequestID)
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.incomingHeader, ctxRequestID)
			}
		})
	}
}

func TestAuthorizationMiddleware(t *testing.T) {
	t.Run("copies authorization headers into the context", func(t *testing.T) {
		var ctxAuthorization, ctxPrincipal string

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxAuthorization, _ = r.Context().Value(constants.AuthorizationContextID).(string)
			ctxPrincipal, _ = r.Context().Value(constants.PrincipalContextID).(string)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer token-123")
		req.Header.Set("X-On-Behalf-Of", "kari@fjordvik.no")
		rec := httptest.NewRecorder()

		AuthorizationMiddleware()(handler).ServeHTTP(rec, req)

		assert.Equal(t, "Bearer token-123", ctxAuthorization)
		assert.Equal(t, "kari@fjordvik.no", ctxPrincipal)
	})

	t.Run("missing headers leave the context empty", func(t *testing.T) {
		var hasAuthorization bool

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasAuthorization = r.Context().Value(constants.AuthorizationContextID).(string)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		rec := httptest.NewRecorder()

		AuthorizationMiddleware()(handler).ServeHTTP(rec, req)

		assert.False(t, hasAuthorization)
	})
}

func TestRequestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "regular request", path: "/tasks"},
		{name: "health check request", path: "/livez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var handlerCalled bool

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			RequestLoggerMiddleware()(handler).ServeHTTP(rec, req)

			assert.True(t, handlerCalled)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}
