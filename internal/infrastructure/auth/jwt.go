// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

// Package auth validates bearer tokens issued by the API gateway and
// extracts the authenticated principal and license (tenant).
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

// Principal is the authenticated caller of the service.
type Principal struct {
	// Username is the subject the gateway authorized.
	Username string
	// LicenseUID is the tenant the caller belongs to.
	LicenseUID string
}

// Claims are the custom claims the gateway puts into the token.
type Claims struct {
	Principal  string `json:"principal"`
	LicenseUID string `json:"license_uid"`
}

// Validate implements validator.CustomClaims.
func (c *Claims) Validate(_ context.Context) error {
	if c.Principal == "" {
		return errors.New("principal must be provided")
	}
	return nil
}

// IJWTAuth is the interface the services use to parse bearer tokens.
type IJWTAuth interface {
	ParsePrincipal(ctx context.Context, bearerToken string, logger *slog.Logger) (Principal, error)
}

// JWTAuthConfig is the configuration for the JWT validator.
type JWTAuthConfig struct {
	// JWKSURL is the URL of the gateway's JSON Web Key Set.
	JWKSURL string
	// Audience is the expected token audience.
	Audience string
	// Issuer overrides the issuer derived from the JWKS URL host.
	Issuer string
	// MockLocalPrincipal disables validation and returns this principal.
	// Only for local development.
	MockLocalPrincipal string
	// MockLocalLicenseUID is the license returned with the mock principal.
	MockLocalLicenseUID string
}

// JWTAuth validates bearer tokens against the gateway's JWKS.
type JWTAuth struct {
	config    JWTAuthConfig
	validator *validator.Validator
}

var _ IJWTAuth = (*JWTAuth)(nil)

// NewJWTAuth creates a new JWTAuth from the given configuration.
func NewJWTAuth(config JWTAuthConfig) (*JWTAuth, error) {
	if config.MockLocalPrincipal != "" {
		return &JWTAuth{config: config}, nil
	}

	if config.JWKSURL == "" {
		config.JWKSURL = "http://heimdall:4457/.well-known/jwks"
	}
	if config.Audience == "" {
		config.Audience = "tasks-api"
	}

	jwksURL, err := url.Parse(config.JWKSURL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWKS URL %q: %w", config.JWKSURL, err)
	}

	issuer := config.Issuer
	if issuer == "" {
		issuer = "heimdall"
	}

	provider := jwks.NewCachingProvider(jwksURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.PS256,
		issuer,
		[]string{config.Audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &Claims{}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating JWT validator: %w", err)
	}

	return &JWTAuth{
		config:    config,
		validator: jwtValidator,
	}, nil
}

// ParsePrincipal validates the bearer token and returns the authorized
// principal along with the license it is scoped to.
func (a *JWTAuth) ParsePrincipal(ctx context.Context, bearerToken string, logger *slog.Logger) (Principal, error) {
	if a.config.MockLocalPrincipal != "" {
		logger.WarnContext(ctx, "JWT validation disabled, returning mock principal",
			"principal", a.config.MockLocalPrincipal,
		)
		return Principal{
			Username:   a.config.MockLocalPrincipal,
			LicenseUID: a.config.MockLocalLicenseUID,
		}, nil
	}

	if a.validator == nil {
		return Principal{}, errors.New("JWT validator is not configured")
	}
	if bearerToken == "" {
		return Principal{}, errors.New("bearer token is required")
	}

	parsed, err := a.validator.ValidateToken(ctx, bearerToken)
	if err != nil {
		logger.DebugContext(ctx, "token validation failed", "error", err)
		return Principal{}, fmt.Errorf("invalid token: %w", err)
	}

	validated, ok := parsed.(*validator.ValidatedClaims)
	if !ok {
		return Principal{}, errors.New("unexpected claims type")
	}

	claims, ok := validated.CustomClaims.(*Claims)
	if !ok || claims.Principal == "" {
		return Principal{}, errors.New("token is missing the principal claim")
	}

	return Principal{
		Username:   claims.Principal,
		LicenseUID: claims.LicenseUID,
	}, nil
}
