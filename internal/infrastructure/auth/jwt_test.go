// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaims_Validate(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		wantErr   bool
	}{
		{
			name:      "valid principal",
			principal: "user123",
			wantErr:   false,
		},
		{
			name:      "empty principal returns error",
			principal: "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &Claims{Principal: tt.principal}
			err := claims.Validate(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "principal must be provided")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewJWTAuth(t *testing.T) {
	tests := []struct {
		name    string
		config  JWTAuthConfig
		wantErr bool
	}{
		{
			name:    "default configuration",
			config:  JWTAuthConfig{},
			wantErr: false,
		},
		{
			name: "explicit JWKS URL and audience",
			config: JWTAuthConfig{
				JWKSURL:  "http://localhost:4457/.well-known/jwks",
				Audience: "tasks-api",
			},
			wantErr: false,
		},
		{
			name: "mock principal skips validator setup",
			config: JWTAuthConfig{
				MockLocalPrincipal:  "local-dev",
				MockLocalLicenseUID: "license-1",
			},
			wantErr: false,
		},
		{
			name: "invalid JWKS URL",
			config: JWTAuthConfig{
				JWKSURL: "://not-a-url",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtAuth, err := NewJWTAuth(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, jwtAuth)
		})
	}
}

func TestParsePrincipal(t *testing.T) {
	t.Run("mock principal returns configured identity", func(t *testing.T) {
		jwtAuth, err := NewJWTAuth(JWTAuthConfig{
			MockLocalPrincipal:  "local-dev",
			MockLocalLicenseUID: "license-1",
		})
		require.NoError(t, err)

		principal, err := jwtAuth.ParsePrincipal(context.Background(), "any-token", slog.Default())
		require.NoError(t, err)
		assert.Equal(t, "local-dev", principal.Username)
		assert.Equal(t, "license-1", principal.LicenseUID)
	})

	t.Run("empty bearer token is rejected", func(t *testing.T) {
		jwtAuth, err := NewJWTAuth(JWTAuthConfig{})
		require.NoError(t, err)

		_, err = jwtAuth.ParsePrincipal(context.Background(), "", slog.Default())
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		jwtAuth, err := NewJWTAuth(JWTAuthConfig{})
		require.NoError(t, err)

		_, err = jwtAuth.ParsePrincipal(context.Background(), "not.a.jwt", slog.Default())
		assert.Error(t, err)
	})
}
