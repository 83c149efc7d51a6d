// Package restjson provides a small client for JSON-over-HTTP APIs.
// It resolves paths against a base URL, encodes request bodies and decodes
// response bodies as JSON, and reports non-2xx responses as *StatusError.
//
// Retries and timeouts belong to the *http.Client passed to NewClient,
// typically the standard client of a transport/http retryable client.
package restjson

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// maxErrorBodySize bounds how much of an error response body is kept.
const maxErrorBodySize = 512

var (
	// ErrUnexpectedStatus is wrapped by every *StatusError.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrMalformedResponse indicates a response body that is not the expected JSON.
	ErrMalformedResponse = errors.New("malformed response body")
)

// StatusError reports a response with a non-2xx status code.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: [%d] %s", ErrUnexpectedStatus, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// Client performs JSON requests against a single API.
type Client interface {
	// Get fetches path and decodes the JSON response into out.
	Get(ctx context.Context, path string, out any) error

	// Post sends in as JSON to path and decodes the JSON response into out.
	// A nil out discards the response body.
	Post(ctx context.Context, path string, in, out any) error
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// NewClient creates a Client resolving paths against baseURL.
func NewClient(httpClient *http.Client, baseURL string) *client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Get implements Client.
func (c *client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post implements Client.
func (c *client) Post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
		return &StatusError{
			StatusCode: res.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}
