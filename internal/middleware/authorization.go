// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package middleware

import (
	"context"
	"net/http"

	"github.com/StianAK82/RegnskapSky-sub001/pkg/constants"
)

// AuthorizationMiddleware creates a middleware that copies the authorization
// and on-behalf-of headers into the request context so that downstream NATS
// messages can forward them to the indexer.
func AuthorizationMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if authorization := r.Header.Get(constants.AuthorizationHeader); authorization != "" {
				ctx = context.WithValue(ctx, constants.AuthorizationContextID, authorization)
			}
			if principal := r.Header.Get(constants.XOnBehalfOfHeader); principal != "" {
				ctx = context.WithValue(ctx, constants.PrincipalContextID, principal)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
