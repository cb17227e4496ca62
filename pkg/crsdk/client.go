package crsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for one Control Room instance. It holds no
// credentials itself; Authenticate produces a Session that carries the
// bearer header for subsequent calls.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a Control Room client against the given base URL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// AuthenticateWithPassword creates an authenticated session from a username
// and password. The username may be domain-qualified (`DOMAIN\user`).
func (c *SDKClient) AuthenticateWithPassword(ctx context.Context, username, password string) (*Session, error) {
	return c.Authenticate(ctx, NewPasswordCredential(username, password))
}

// AuthenticateWithAPIKey creates an authenticated session from a username
// and API key.
func (c *SDKClient) AuthenticateWithAPIKey(ctx context.Context, username, apiKey string) (*Session, error) {
	return c.Authenticate(ctx, NewAPIKeyCredential(username, apiKey))
}

// Authenticate exchanges cred for a bearer token via POST /v1/authentication
// and wraps it in a Session. The credential's secret is wiped on every exit
// path, success or failure, so cred is spent after this call.
//
// A non-2xx response yields *AuthError; a network failure yields
// *TransportError. No Session is produced on either.
func (c *SDKClient) Authenticate(ctx context.Context, cred *Credential) (*Session, error) {
	return c.AuthenticateAs(ctx, cred, "")
}

// AuthenticateAs is Authenticate with a username override: loginAs replaces
// the transmitted username while the credential still supplies the secret.
// An empty loginAs means no override.
func (c *SDKClient) AuthenticateAs(ctx context.Context, cred *Credential, loginAs string) (*Session, error) {
	defer cred.Wipe()

	username := cred.Username()
	if loginAs != "" {
		username = loginAs
	}

	// encoding/json escapes the domain separator on the wire, producing the
	// doubled-backslash form (`"DOMAIN\\user"`) the server requires.
	body := authRequest{Username: username}
	if cred.HasAPIKey() {
		body.APIKey = cred.secretValue()
	} else {
		body.Password = cred.secretValue()
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/authentication", body, nil)
	if err != nil {
		return nil, err
	}

	respBody, err := drain("POST /v1/authentication", resp)
	if err != nil {
		return nil, err
	}

	if !is2xx(resp.StatusCode) {
		return nil, newAuthError(resp, respBody)
	}

	var auth authResponse
	if err := unmarshalBody(respBody, &auth); err != nil {
		return nil, err
	}
	if auth.Token == "" {
		return nil, &AuthError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Details:    "response contained no token",
		}
	}

	return newSession(c, auth.Token), nil
}
