package crsdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// HeaderAuthorization is the header every authenticated Control Room call
// carries its bearer token in.
const HeaderAuthorization = "X-Authorization"

// AuthHeader is the bearer credential produced by authentication. It is
// immutable and safe to share across goroutines.
//
// No expiry is tracked client-side; the server is authoritative, and an
// expired token surfaces as an error on a later call.
type AuthHeader struct {
	Key   string
	Value string
}

// Session is an authenticated connection to one Control Room. All endpoint
// wrappers hang off it. Sessions are safe for concurrent use; the token is
// never mutated after login.
type Session struct {
	client *SDKClient
	header AuthHeader
}

func newSession(client *SDKClient, token string) *Session {
	return &Session{
		client: client,
		header: AuthHeader{Key: HeaderAuthorization, Value: token},
	}
}

// Header returns the bearer header this session attaches to every request.
func (s *Session) Header() AuthHeader { return s.header }

// Token returns the raw bearer token.
func (s *Session) Token() string { return s.header.Value }

// Logout invalidates the session token server-side via
// POST /v1/authentication/logout.
//
// A token the server already considers invalid comes back as an *AuthError;
// callers tearing down a session may choose to ignore it.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.client.doRequest(
		ctx, http.MethodPost, "/v1/authentication/logout", struct{}{}, &s.header,
	)
	if err != nil {
		return err
	}

	body, err := drain("POST /v1/authentication/logout", resp)
	if err != nil {
		return err
	}

	if !is2xx(resp.StatusCode) {
		return newAuthError(resp, body)
	}

	return nil
}

// TokenClaims are the JWT claims embedded in a Control Room bearer token.
type TokenClaims struct {
	jwt.RegisteredClaims

	Username string `json:"username,omitempty"`
	Domain   string `json:"domain,omitempty"`
	TenantID string `json:"tenantUuid,omitempty"`
}

// TokenClaims decodes the bearer token's claims without verifying the
// signature. Useful for display and diagnostics only; validity remains the
// server's call.
func (s *Session) TokenClaims() (*TokenClaims, error) {
	var claims TokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(s.header.Value, &claims); err != nil {
		return nil, fmt.Errorf("failed to decode token claims: %w", err)
	}
	return &claims, nil
}
