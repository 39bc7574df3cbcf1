// Package api provides the HTTP client for the skills API.
//
// This package handles all communication with the agent-ui backend,
// including request/response handling and error management. The skills
// API is a thin proxy in front of a Strapi collection, so response
// shapes vary; see skills.go for shape normalization.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is the skills API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client.
//
// Parameters:
//   - baseURL: The base URL for the API, including the path prefix
//     (e.g. http://localhost:3001/api/strapi)
//
// Returns:
//   - *Client: A new client instance
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// BaseURL returns the base URL used by this client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIError represents an error response from the API.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

// Error returns a human-readable error message.
//
// Returns:
//   - string: The error message, with fallback to HTTP status if no message available
func (e *APIError) Error() string {
	if e.Message != "" && e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ShapeError indicates a response body that parsed as JSON but did not
// match any accepted shape for the endpoint. It is distinct from a
// malformed-JSON parse failure so callers can tell the two apart.
type ShapeError struct {
	// Expected describes the accepted shapes.
	Expected string

	// Got describes the shape actually received.
	Got string
}

// Error returns a human-readable error message.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected response shape: expected %s, got %s", e.Expected, e.Got)
}

// doRequest performs an HTTP request against the API.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "skillctl/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

// errorFromResponse builds an APIError from a non-success response body.
// Supports multiple common error field names, falling back to the raw
// body text truncated at 200 characters.
func errorFromResponse(resp *http.Response) *APIError {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	json.Unmarshal(body, &errResp)

	message := errResp.Error
	if message == "" {
		message = errResp.Message
	}
	detail := errResp.Detail

	if message == "" && detail == "" {
		bodyStr := string(body)
		if len(bodyStr) > 200 {
			bodyStr = bodyStr[:200] + "..."
		}
		if bodyStr != "" {
			detail = bodyStr
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		Detail:     detail,
	}
}

// parseResponse parses the response body into the target struct.
func parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
