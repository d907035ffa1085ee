package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"blogctl/internal/logging"
)

// TokenStore is where the client reads the persisted bearer token from and
// where a 401 clears it. Implementations live in the session package; tests
// inject in-memory fakes.
type TokenStore interface {
	// Token returns the stored token, or "" when none is persisted.
	Token() string
	Save(token string) error
	Clear() error
}

// Client talks to the blog platform REST API.
//
// Ordinary calls carry no timeout; only the multipart image upload uses a
// dedicated client with an extended timeout.
type Client struct {
	baseURL string
	tokens  TokenStore
	http    *http.Client
	upload  *http.Client
	log     logging.Logger

	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport used for ordinary calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithUploadTimeout sets the timeout of the image-upload transport.
func WithUploadTimeout(d time.Duration) Option {
	return func(c *Client) { c.upload.Timeout = d }
}

// WithLogger replaces the no-op default logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a client bound to baseURL. tokens supplies the bearer token for
// every outgoing request.
func New(baseURL string, tokens TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{},
		upload:  &http.Client{Timeout: 30 * time.Second},
		log:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnUnauthorized registers a hook fired whenever any call receives a 401.
// The hook runs after the stored token has been cleared.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// statusError is a non-2xx response, carrying whatever message the body held.
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.status, e.message)
}

// errorBody is the error envelope the backend uses. Some endpoints report
// under "message", others under "error".
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func extractMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.Error
}

// getJSON issues a GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.roundTrip(ctx, c.http, http.MethodGet, path, query, nil, "", out)
}

// sendJSON issues a request with a JSON-encoded payload and decodes the
// response into out. A nil payload sends an empty body.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.roundTrip(ctx, c.http, method, path, nil, body, contentType, out)
}

// roundTrip performs one HTTP exchange: bearer injection, the global 401
// side effect, status checking and response decoding.
func (c *Client) roundTrip(ctx context.Context, hc *http.Client, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{status: resp.StatusCode, message: extractMessage(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn(ctx, "malformed response body", "method", method, "path", path, "error", err)
		return err
	}
	return nil
}

// handleUnauthorized clears the persisted token (once per 401 response) and
// fires the client-wide hook so the session can downgrade itself.
func (c *Client) handleUnauthorized(ctx context.Context) {
	if err := c.tokens.Clear(); err != nil {
		c.log.Warn(ctx, "clearing token after 401", "error", err)
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}
