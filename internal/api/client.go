// Package api implements the HTTP collaborators of the planning engine:
// the authenticated JSON client, the plan load/save endpoints, and the
// organizational-unit directory. Failures are mapped onto the planning
// package's error kinds; nothing here retries automatically.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Kael-Dean/SKT-sub000/pkg/planning"
)

// DefaultTimeout bounds a single request when the config gives none.
const DefaultTimeout = 15 * time.Second

// Config holds the connection parameters for a Client.
type Config struct {
	// BaseURL is the backend root, without a trailing slash.
	BaseURL string

	// Token is the bearer credential attached to every request. Obtaining
	// and refreshing it belongs to the surrounding session layer, not here.
	Token string

	// Timeout bounds each request; zero means DefaultTimeout.
	Timeout time.Duration
}

// Client is a thin JSON client over the backend REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient returns a Client for the given config.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}
}

// request performs one JSON round trip. A non-nil body is encoded as the
// request payload; a non-nil out receives the decoded response. HTTP
// failures come back as the planning error kinds: 401/403 as ErrAuth, 404
// as ErrNotFound, 422 as ErrValidation, and transport errors or any other
// failing status as ErrNetwork.
func (c *Client) request(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", planning.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError maps a failing HTTP status onto the planning error taxonomy.
func statusError(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", planning.ErrAuth, status)
	case http.StatusNotFound:
		return fmt.Errorf("%w (status %d)", planning.ErrNotFound, status)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w (status %d)", planning.ErrValidation, status)
	default:
		return fmt.Errorf("%w (status %d)", planning.ErrNetwork, status)
	}
}
