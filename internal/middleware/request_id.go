// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

// Package middleware contains the HTTP middleware for the task service.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/StianAK82/RegnskapSky-sub001/internal/logging"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/constants"
	"github.com/google/uuid"
)

// RequestIDMiddleware creates a middleware that attaches a request ID to the
// request context and response. An incoming X-REQUEST-ID header is reused so
// request IDs propagate across services.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(constants.RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := context.WithValue(r.Context(), constants.RequestIDContextID, requestID)
			ctx = logging.AppendCtx(ctx, slog.String("request_id", requestID))

			w.Header().Set(constants.RequestIDHeader, requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
