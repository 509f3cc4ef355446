// Package api is the gateway to the BinHarry backend. Every call goes through
// the same envelope contract: the server answers {success, data?, error?,
// message?}, transport failures surface as a coded connectivity error, and an
// authentication rejection fires the registered hook so the session layer can
// tear itself down.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/binharry/binharry-cli/internal/errors"
	"github.com/binharry/binharry-cli/internal/log"
)

// Client is the BinHarry platform API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger

	mu             sync.RWMutex
	token          string
	onAuthRejected func()
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRateLimit overrides the outgoing request rate limit
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(limit, burst) }
}

// NewClient creates a new platform API client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(10), 20),
		logger:  log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken sets the bearer credential attached to every request.
// An empty token demotes the client to anonymous calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the bearer credential
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the current bearer credential, or "" when anonymous
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// OnAuthRejected registers the hook fired whenever the server rejects the
// current token. The session layer uses it to clear itself; no other
// component may write the token.
func (c *Client) OnAuthRejected(fn func()) {
	c.mu.Lock()
	c.onAuthRejected = fn
	c.mu.Unlock()
}

// Envelope is the uniform response wrapper used by every endpoint
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Page is the paginated list wrapper used by the list endpoints
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// do performs a request against the backend and decodes the envelope.
//
// The returned error is always a coded error: connectivity failures map to
// API-001, an HTTP 401 maps to AUTH-002 (after firing the auth-rejected
// hook), and a successful transport with success=false maps to API-004
// carrying the server's message verbatim. When out is non-nil the envelope's
// data field is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (*Envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPIRequest, "request aborted", err)
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeAPIRequest, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPIRequest, "failed to create request", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			"method", method, "path", path, "request_id", requestID, "error", err.Error())
		return nil, errors.NewConnectivityError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewConnectivityError(err)
	}

	c.logger.Debug("request completed",
		"method", method, "path", path, "request_id", requestID,
		"status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode == http.StatusUnauthorized {
		c.fireAuthRejected()
		return nil, errors.NewAuthRejectedError()
	}

	var envelope Envelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPIDecode,
			fmt.Sprintf("failed to decode response (status %d)", resp.StatusCode), err)
	}

	if !envelope.Success {
		message := envelope.Error
		if message == "" {
			message = envelope.Message
		}
		if message == "" {
			message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &envelope, errors.NewBusinessError(message)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &envelope, errors.Wrap(errors.ErrCodeAPIDecode, "failed to decode response data", err)
		}
	}

	return &envelope, nil
}

func (c *Client) fireAuthRejected() {
	c.mu.RLock()
	fn := c.onAuthRejected
	c.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// get is a convenience wrapper for GET requests
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, query, nil, out)
	return err
}

// post is a convenience wrapper for POST requests
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, nil, body, out)
	return err
}

// patch is a convenience wrapper for PATCH requests
func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPatch, path, nil, body, out)
	return err
}

// delete is a convenience wrapper for DELETE requests
func (c *Client) delete(ctx context.Context, path string, query url.Values) error {
	_, err := c.do(ctx, http.MethodDelete, path, query, nil, nil)
	return err
}
