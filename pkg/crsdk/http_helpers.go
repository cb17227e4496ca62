package crsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/opsbotics/controlroom/pkg/idx"
	"github.com/opsbotics/controlroom/pkg/slogx"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doRequest issues a single JSON request. hdr, when non-nil, is attached as
// the bearer header. Each request carries a fresh X-Request-ID so client and
// server logs can be correlated.
//
// Transport failures come back as *TransportError; HTTP-level failures are
// the caller's to classify from the returned response.
func (c *SDKClient) doRequest(
	ctx context.Context,
	method, path string,
	body any,
	hdr *AuthHeader,
) (*http.Response, error) {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if hdr != nil {
		req.Header.Set(hdr.Key, hdr.Value)
	}

	reqID := idx.New().String()
	req.Header.Set("X-Request-ID", reqID)

	slogx.FromContext(ctx).Debug("control room request",
		"method", method,
		"path", path,
		"req_id", reqID,
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	return resp, nil
}

// drain reads and closes the response body. Read failures are transport
// failures: the connection died mid-response.
func drain(op string, resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	return body, nil
}

func unmarshalBody(body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func is2xx(code int) bool {
	return code >= 200 && code < 300
}
