package api

// Package api is the typed client for the remote booking platform REST API.
// One call is one fire-and-await request: no retries, no caching. Failures map
// onto the application error taxonomy: a decodable non-2xx body becomes a
// remote error carrying the server's message verbatim, a missing or
// undecodable response becomes a transport error, and a 401 becomes a
// session-expired error so callers can clear the local session.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/classpoint/admin-ui/internal/errors"
)

const defaultTimeout = 15 * time.Second

// Config captures what the client needs to reach the platform API.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.example.com/api".
	BaseURL string
	// Timeout bounds each request. Zero means the default.
	Timeout time.Duration
	// HTTPClient overrides the underlying client. Optional.
	HTTPClient *http.Client
}

// Client issues typed requests against the booking platform API.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient builds an API client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse api base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: baseURL, hc: hc}, nil
}

// tokenKey is an unexported context key type for the bearer token.
type tokenKey struct{}

// WithToken returns a child context carrying the session's bearer token.
// Requests made with that context attach it as an Authorization header.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token carried by ctx, if any.
func TokenFromContext(ctx context.Context) string {
	if tok, ok := ctx.Value(tokenKey{}).(string); ok {
		return tok
	}
	return ""
}

// errorBody is the structured error shape every non-2xx response carries.
type errorBody struct {
	Message string `json:"message"`
}

// do performs one request. body (if non-nil) is JSON-encoded; out (if
// non-nil) receives the decoded 2xx response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := TokenFromContext(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return apperrors.TransportWrap(err, method+" "+path)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.TransportWrap(err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return apperrors.TransportWrap(err, "decode response body")
		}
	}
	return nil
}

// decodeError maps a non-2xx response onto the error taxonomy. A response
// without a parseable {message} body is a transport-layer failure, distinct
// from a remote rejection.
func (c *Client) decodeError(status int, data []byte) error {
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err != nil || eb.Message == "" {
		return apperrors.Transport(fmt.Sprintf("unexpected response (status %d)", status))
	}
	if status == http.StatusUnauthorized {
		sess := apperrors.SessionExpired(eb.Message)
		sess.StatusCode = status
		return sess
	}
	remote := apperrors.Remote(status, eb.Message)
	if status == http.StatusNotFound {
		remote.Code = apperrors.ErrCodeNotFound
	}
	return remote
}

// get issues a GET and decodes the body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post issues a POST with a JSON body and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}
