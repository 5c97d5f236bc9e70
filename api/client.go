package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNoCredentials is returned when an authenticated call is attempted with
// no credential source wired.
var ErrNoCredentials = errors.New("no credential source configured")

const (
	defaultTimeout = 10 * time.Second

	// maxErrorBody bounds how much of an error response is read for message
	// extraction.
	maxErrorBody = 64 << 10
)

// CredentialSource supplies the bearer credential for authenticated calls.
// Implementations may refresh or tear down session state as a side effect;
// an error fails the request before anything is sent.
type CredentialSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Error is the normalized non-2xx response. Message is extracted from a JSON
// {"message"} or {"error"} body, falling back to the plain-text body and then
// to the status text.
type Error struct {
	Status    int
	Message   string
	RequestID string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// IsStatus reports whether err is an [*Error] with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Config configures the low-level API client.
type Config struct {
	// BaseURL is the fixed backend origin, e.g. "http://localhost:8000".
	BaseURL string
	// Timeout is the per-request deadline. Zero means the 10s default; calls
	// are never allowed to hang indefinitely.
	Timeout time.Duration
	// RetryAttempts is the number of extra attempts for idempotent GETs after
	// a transport failure or a 502/503. Writes are never retried.
	RetryAttempts int
	// HTTPClient defaults to a fresh http.Client.
	HTTPClient *http.Client
	// Credentials supplies bearer tokens for authenticated calls.
	Credentials CredentialSource
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Client is the low-level HTTP client the resource services are built on.
type Client struct {
	baseURL string
	timeout time.Duration
	retries int
	http    *http.Client
	creds   CredentialSource
	log     *slog.Logger
}

// NewClient validates cfg and builds a [Client].
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("api: base URL required")
	}
	if cfg.Timeout < 0 {
		return nil, errors.New("api: negative timeout")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryAttempts < 0 || cfg.RetryAttempts > 3 {
		return nil, errors.New("api: retry attempts out of range [0,3]")
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Client{
		baseURL: base,
		timeout: cfg.Timeout,
		retries: cfg.RetryAttempts,
		http:    cfg.HTTPClient,
		creds:   cfg.Credentials,
		log:     cfg.Logger,
	}, nil
}

// get runs an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, authFromSource, "", nil, out)
}

// send runs an authenticated write (POST/PATCH/DELETE).
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	return c.call(ctx, method, path, authFromSource, "", body, out)
}

// public runs an unauthenticated call (sign-in, sign-up, sign-out).
func (c *Client) public(ctx context.Context, method, path string, body, out any) error {
	return c.call(ctx, method, path, authNone, "", body, out)
}

// withBearer runs a call authenticated by an explicit bearer string. The
// refresh endpoint uses it: its credential is the refresh token, which the
// [CredentialSource] never hands out.
func (c *Client) withBearer(ctx context.Context, method, path, bearer string, body, out any) error {
	return c.call(ctx, method, path, authExplicit, bearer, body, out)
}

type authMode int

const (
	authNone authMode = iota
	authFromSource
	authExplicit
)

func (c *Client) call(ctx context.Context, method, path string, auth authMode, bearer string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
	}

	if auth == authFromSource {
		if c.creds == nil {
			return ErrNoCredentials
		}
		tok, err := c.creds.AccessToken(ctx)
		if err != nil {
			return err
		}
		bearer = tok
	}

	requestID := uuid.NewString()
	attempts := 1
	if method == http.MethodGet {
		attempts += c.retries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		err := c.once(ctx, method, path, bearer, requestID, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable(err) {
			return err
		}
		if attempt < attempts-1 {
			c.log.Warn("retrying request",
				"method", method,
				"path", path,
				"request_id", requestID,
				"error", err)
		}
	}
	return lastErr
}

// retryable limits retries to transport failures and upstream 502/503. A
// context cancellation or deadline is final.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusBadGateway || apiErr.Status == http.StatusServiceUnavailable
	}
	return true
}

func (c *Client) once(ctx context.Context, method, path, bearer, requestID string, payload []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &Error{
			Status:    resp.StatusCode,
			Message:   extractMessage(body, resp.StatusCode),
			RequestID: requestID,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

// extractMessage normalizes an error body into one human-readable string.
func extractMessage(body []byte, status int) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(status)
}
