package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type staticCreds string

func (s staticCreds) AccessToken(ctx context.Context) (string, error) {
	return string(s), nil
}

type failingCreds struct{ err error }

func (f failingCreds) AccessToken(ctx context.Context) (string, error) {
	return "", f.err
}

func newTestClient(t *testing.T, handler http.Handler, mutate func(*Config)) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := Config{
		BaseURL:     srv.URL,
		Credentials: staticCreds("access-token"),
	}
	if mutate != nil {
		mutate(&cfg)
	}

	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestErrorNormalization(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantMessage string
	}{
		{"json message field", "application/json", `{"message":"order not found"}`, "order not found"},
		{"json error field", "application/json", `{"error":"insufficient stock"}`, "insufficient stock"},
		{"plain text", "text/plain", "backend exploded\n", "backend exploded"},
		{"empty body", "text/plain", "", "Not Found"},
		{"json without known fields", "application/json", `{"detail":"x"}`, `{"detail":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(tt.body))
			}), nil)

			err := client.get(context.Background(), "/orders/missing", &struct{}{})

			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if apiErr.Status != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", apiErr.Status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Fatalf("message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
			if apiErr.RequestID == "" {
				t.Fatal("expected request id on normalized error")
			}
		})
	}
}

func TestBearerAndRequestIDHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	}), nil)

	var out []Order
	if err := client.get(context.Background(), "/orders", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotAuth != "Bearer access-token" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatal("expected X-Request-ID header")
	}
}

func TestCredentialSourceFailureSendsNothing(t *testing.T) {
	var calls atomic.Int64
	wantErr := errors.New("session torn down")
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}), func(cfg *Config) {
		cfg.Credentials = failingCreds{err: wantErr}
	})

	err := client.get(context.Background(), "/orders", &struct{}{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected credential error, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatal("request must not be sent without credentials")
	}
}

func TestGetRetriesOnceOn503(t *testing.T) {
	var calls atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}), func(cfg *Config) {
		cfg.RetryAttempts = 1
	})

	var out []Order
	if err := client.get(context.Background(), "/orders", &out); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("calls = %d, want 2", calls.Load())
	}
}

func TestWritesAreNeverRetried(t *testing.T) {
	var calls atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}), func(cfg *Config) {
		cfg.RetryAttempts = 3
	})

	err := client.send(context.Background(), http.MethodPost, "/orders", CreateOrderRequest{}, nil)
	if !IsStatus(err, http.StatusServiceUnavailable) {
		t.Fatalf("expected 503, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1 (no write retries)", calls.Load())
	}
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}), func(cfg *Config) {
		cfg.RetryAttempts = 3
	})

	err := client.get(context.Background(), "/orders", &struct{}{})
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1 (4xx is final)", calls.Load())
	}
}

func TestTimeoutFailsTheCall(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}), func(cfg *Config) {
		cfg.Timeout = 50 * time.Millisecond
	})

	start := time.Now()
	err := client.get(context.Background(), "/orders", &struct{}{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("call hung for %v despite deadline", elapsed)
	}
}

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BaseURL: "http://localhost:8000"}, false},
		{"trailing slash trimmed", Config{BaseURL: "http://localhost:8000/"}, false},
		{"missing base url", Config{}, true},
		{"negative timeout", Config{BaseURL: "http://x", Timeout: -time.Second}, true},
		{"retries out of range", Config{BaseURL: "http://x", RetryAttempts: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
