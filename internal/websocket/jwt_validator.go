package websocket

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

var (
	// ErrInvalidToken is returned when JWT validation fails
	ErrInvalidToken = errors.New("invalid token")
	// ErrWorkspaceNotFound is returned when the token's subject has no workspace
	ErrWorkspaceNotFound = errors.New("workspace not found")
)

// WorkspaceResolver maps an Auth0 subject to its workspace
type WorkspaceResolver interface {
	ResolveWorkspaceID(auth0ID string) (int32, error)
}

// CustomClaims holds the application claims carried by Auth0 tokens
type CustomClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Validate implements validator.CustomClaims
func (c CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// Auth0JWTValidator validates the token passed on the WebSocket query string.
// Browsers cannot set headers on the upgrade request, so the HTTP auth middleware can't be reused.
type Auth0JWTValidator struct {
	validator *validator.Validator
	resolver  WorkspaceResolver
}

// NewAuth0JWTValidator creates a new Auth0JWTValidator
func NewAuth0JWTValidator(domain, audience string, resolver WorkspaceResolver) (*Auth0JWTValidator, error) {
	issuerURL, err := url.Parse("https://" + domain + "/")
	if err != nil {
		return nil, err
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &CustomClaims{}
		}),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, err
	}

	return &Auth0JWTValidator{validator: jwtValidator, resolver: resolver}, nil
}

// ValidateToken validates a JWT and returns the workspace of its subject
func (v *Auth0JWTValidator) ValidateToken(token string) (int32, error) {
	claims, err := v.validator.ValidateToken(context.Background(), token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	validated, ok := claims.(*validator.ValidatedClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	return v.lookup(validated.RegisteredClaims.Subject)
}

func (v *Auth0JWTValidator) lookup(subject string) (int32, error) {
	if subject == "" {
		return 0, ErrInvalidToken
	}
	workspaceID, err := v.resolver.ResolveWorkspaceID(subject)
	if err != nil {
		return 0, ErrWorkspaceNotFound
	}
	return workspaceID, nil
}
