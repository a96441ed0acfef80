package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/nextread/nextread-cli/internal/logging"
)

// requestIDHeader correlates client log lines with server-side access logs.
const requestIDHeader = "X-Request-ID"

// HTTPClient is the concrete Client over the service's JSON API.
// The underlying http.Client carries no timeout; each call is a single
// best-effort attempt bounded only by the caller's context.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient returns a client rooted at baseURL (e.g. "http://localhost:8080/api").
func NewHTTPClient(baseURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
}

var _ Client = (*HTTPClient)(nil)

// doJSON issues one request and decodes a JSON response into out (out may be
// nil for callers that ignore the body). body, when non-nil, is JSON-encoded.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	data, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding %s %s: %v", ErrUnavailable, method, path, err)
	}
	return nil
}

// doText issues one request whose success acknowledgement is plain text
// (delete/cancel/return endpoints). The body content is discarded.
func (c *HTTPClient) doText(ctx context.Context, method, path string) error {
	_, err := c.do(ctx, method, path, nil)
	return err
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(data))
		if msg == "" {
			msg = "API request failed"
		}
		c.log.Warn(ctx, "api error", "method", method, "path", path,
			"status", resp.StatusCode, "request_id", requestID)
		return nil, &Error{Status: resp.StatusCode, Message: msg}
	}
	return data, nil
}
