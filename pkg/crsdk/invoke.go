package crsdk

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// QueryParam is one optional query-string parameter. Invoke preserves the
// order params are supplied in and drops empty values entirely rather than
// sending them blank.
type QueryParam struct {
	Key   string
	Value string
}

// listEnvelope is the wrapper the /list endpoints put around results.
type listEnvelope struct {
	List json.RawMessage `json:"list"`
}

// Invoke runs one catalog operation against the session's Control Room and
// decodes the response into target (which may be nil to discard the body).
//
// POST operations with a nil body send a literal {}. GET operations append
// only the query parameters actually supplied. Failures map onto the uniform
// taxonomy: *APIError for non-2xx responses, *TransportError for network
// faults.
func (s *Session) Invoke(
	ctx context.Context,
	op Operation,
	body any,
	query []QueryParam,
	target any,
) error {
	path := op.Path
	if qs := encodeQuery(query); qs != "" {
		path += "?" + qs
	}

	if body == nil && op.HasBody {
		body = struct{}{}
	}

	resp, err := s.client.doRequest(ctx, op.Method, path, body, &s.header)
	if err != nil {
		return err
	}

	respBody, err := drain(op.Name, resp)
	if err != nil {
		return err
	}

	if !is2xx(resp.StatusCode) {
		return newAPIError(resp, respBody)
	}

	if target == nil {
		return nil
	}

	if op.ListEnvelope {
		var env listEnvelope
		if err := unmarshalBody(respBody, &env); err != nil {
			return err
		}
		if env.List == nil {
			return nil
		}
		return unmarshalBody(env.List, target)
	}

	return unmarshalBody(respBody, target)
}

// encodeQuery serializes the supplied parameters in order, skipping empty
// values.
func encodeQuery(params []QueryParam) string {
	var b strings.Builder
	for _, p := range params {
		if p.Value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
