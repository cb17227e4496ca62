/*
Package crsdk is a client for the Control Room REST API: authentication,
audit querying, licensing, Bot Insight telemetry, device and workload
queries, user management and automation deployment.

# SDKClient vs Session

The package is organized around two types:

  - SDKClient: points at one Control Room and performs authentication
  - Session: carries the bearer header and performs every authenticated call

Create an SDKClient, authenticate, then work through the Session:

	client := crsdk.NewSDKClient("https://cr.example.com")

	session, err := client.AuthenticateWithAPIKey(ctx, "bob", apiKey)
	if err != nil {
		return err
	}
	defer session.Logout(ctx)

	devices, err := session.ListDevices(ctx)

Password logins work the same way and accept domain-qualified usernames:

	session, err := client.AuthenticateWithPassword(ctx, `CORP\alice`, password)

For full control over the credential lifecycle, build one explicitly. The
secret is wiped on every exit path, so a Credential is single-use:

	cred := crsdk.NewPasswordCredential(`CORP\alice`, password)
	session, err := client.Authenticate(ctx, cred)
	// cred's secret is now zeroed, success or not

# Date ranges

Audit and Bot Insight queries are bounded by a DateRange, produced by a
RangeResolver from either a symbolic shortcut or an explicit date pair:

	res := &crsdk.RangeResolver{}

	dr, err := res.Resolve(ctx, crsdk.RangeRequest{Shortcut: crsdk.ShortcutLast30Days})

	msgs, err := session.SearchAuditMessages(ctx, dr)

Explicit pairs are widened to whole days (00:00:00.000 through
23:59:59.999, UTC). Supplying only one of the pair is a ValidationError.
With neither a shortcut nor dates, the resolver falls back to its DatePicker
collaborator; a cancelled pick returns ErrCancelled and no request is made.

# Generic operations

Every endpoint is a static Operation catalog entry; the typed wrappers are
thin covers over Session.Invoke. Callers needing an endpoint variant the
wrappers don't expose can invoke catalog entries directly:

	var users []crsdk.User
	err := session.Invoke(ctx, crsdk.OpUserList, filterBody, nil, &users)

# Error handling

Failed operations return exactly one of four types, all carrying structured
detail for errors.As branching:

  - *AuthError: authentication or logout rejected by the server
  - *ValidationError: malformed caller input, caught before any request
  - *TransportError: network-level failure, wraps the underlying error
  - *APIError: non-2xx response from any other endpoint

ErrCancelled is a distinct non-error control outcome from interactive date
selection.

Requests are issued exactly once: no retries, no backoff, no response
caching. An expired token is not renewed client-side and surfaces as an
error on the call that hits it.

# Thread safety

A Session is safe for concurrent use; the bearer header is immutable after
login. A Credential is not: wiping mutates it, so never share one across
concurrent authentication attempts.
*/
package crsdk
