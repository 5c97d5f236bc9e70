package freshcart

import (
	"errors"
	"strings"
	"time"
)

// Config defines the client's tunables. Configure once, treat as immutable
// after [Builder.Build].
type Config struct {
	API     APIConfig
	Session SessionConfig
	Logging LoggingConfig
	Metrics MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig covers the HTTP transport policy. Timeout and RetryAttempts are
// deliberately explicit: no call may hang indefinitely and no call is retried
// beyond the stated bound.
type APIConfig struct {
	// BaseURL is the fixed backend origin, e.g. "http://localhost:8000".
	BaseURL string
	// Timeout is the per-request deadline. Zero selects the 10s default.
	Timeout time.Duration
	// RetryAttempts is the number of extra attempts for idempotent GETs after
	// transport failures or 502/503. Range [0,3]; writes are never retried.
	RetryAttempts int
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig covers durable session persistence.
type SessionConfig struct {
	// RedisPrefix namespaces the durable `auth` and `selectedStore` keys,
	// typically one prefix per browser/device context.
	RedisPrefix string
}

/*
====================================
LOGGING CONFIG
====================================
*/

// LoggingConfig selects the structured log level for the client's slog
// logger: "debug", "info", "warn", or "error".
type LoggingConfig struct {
	Level string
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig toggles the in-process counters exposed through
// [Client.MetricsSnapshot] and the metrics/export exporters.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the baseline configuration: 10s timeout, one GET
// retry, "fc" key prefix, info logging, metrics on.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout:       10 * time.Second,
			RetryAttempts: 1,
		},
		Session: SessionConfig{
			RedisPrefix: "fc",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks cross-field constraints before Build wires anything.
func (c Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("API.BaseURL is required")
	}
	if c.API.Timeout < 0 {
		return errors.New("API.Timeout must not be negative")
	}
	if c.API.RetryAttempts < 0 || c.API.RetryAttempts > 3 {
		return errors.New("API.RetryAttempts out of range [0,3]")
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("Logging.Level must be debug, info, warn, or error")
	}
	return nil
}
