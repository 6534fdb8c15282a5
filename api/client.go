// Package api provides a minimal JSON client for the Vessel platform API.
//
// Business operations (projects, deployments, machines, datasets) live in
// their own packages; this client carries only what credential commands
// need: authenticated requests, retries for transient failures, and the
// viewer endpoint used to verify a key at login.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/vesselhq/vessel/credentials"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.vessel.sh"

// EnvBaseURL is the environment variable overriding the API base URL.
const EnvBaseURL = "VESSEL_API_URL"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultMaxRetries is the default number of retry attempts.
const DefaultMaxRetries = 3

// DefaultRetryWait is the default initial wait between retries.
const DefaultRetryWait = 1 * time.Second

// Client talks to the Vessel API with a resolved credential.
type Client struct {
	client     *http.Client
	baseURL    string
	credential credentials.Resolved
	maxRetries int
	retryWait  time.Duration
}

// ClientConfig holds configuration for Client.
type ClientConfig struct {
	// Client is the underlying HTTP client. Defaults to one with
	// DefaultTimeout.
	Client *http.Client

	// BaseURL overrides the API endpoint. Defaults to EnvBaseURL when
	// set, DefaultBaseURL otherwise.
	BaseURL string

	// Credential authenticates every request.
	Credential credentials.Resolved

	MaxRetries int
	RetryWait  time.Duration
}

// NewClient creates a Client. The credential is passed in explicitly; the
// client never reads ambient process state for the key.
func NewClient(cfg ClientConfig) *Client {
	c := &Client{
		client:     cfg.Client,
		baseURL:    cfg.BaseURL,
		credential: cfg.Credential,
		maxRetries: cfg.MaxRetries,
		retryWait:  cfg.RetryWait,
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: DefaultTimeout}
	}
	if c.baseURL == "" {
		c.baseURL = BaseURL()
	}
	if c.maxRetries <= 0 {
		c.maxRetries = DefaultMaxRetries
	}
	if c.retryWait <= 0 {
		c.retryWait = DefaultRetryWait
	}

	return c
}

// BaseURL returns the effective API base URL for this process.
func BaseURL() string {
	if u := os.Getenv(EnvBaseURL); u != "" {
		return u
	}
	return DefaultBaseURL
}

// Viewer describes the identity behind a credential.
type Viewer struct {
	User string `json:"user"`
	Team string `json:"team"`
}

// Viewer fetches the identity the configured credential authenticates as.
// Used by 'auth login' to verify a key and by 'auth status'.
func (c *Client) Viewer(ctx context.Context) (*Viewer, error) {
	var v Viewer
	if err := c.get(ctx, "/v1/viewer", &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.handleResponse(resp, path, result)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	url := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.credential.APIKey)
		req.Header.Set("X-Request-ID", requestID())

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			if attempt < c.maxRetries-1 {
				if werr := c.wait(ctx, attempt); werr != nil {
					return nil, werr
				}
				continue
			}
			return nil, fmt.Errorf("vessel API request failed: %w", err)
		}

		if retryableStatus(resp.StatusCode) && attempt < c.maxRetries-1 {
			resp.Body.Close()
			if werr := c.wait(ctx, attempt); werr != nil {
				return nil, werr
			}
			continue
		}

		return resp, nil
	}

	return nil, lastErr
}

func (c *Client) wait(ctx context.Context, attempt int) error {
	// Exponential backoff
	d := c.retryWait * time.Duration(1<<attempt)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (c *Client) handleResponse(resp *http.Response, path string, result any) error {
	if resp.StatusCode >= 400 {
		return parseError(resp, path)
	}

	if result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode vessel API response: %w", err)
	}

	return nil
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// requestID generates a short unique ID sent as X-Request-ID so failures
// can be correlated with server logs.
func requestID() string {
	id, err := nanoid.New(16)
	if err != nil {
		return "unknown"
	}
	return id
}
