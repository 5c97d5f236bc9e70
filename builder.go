package freshcart

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	"github.com/RivoltaAlpha/FreshCart-sub001/api"
)

// Builder assembles a [Client]. A builder is single-use: Build can only be
// called once.
type Builder struct {
	config Config
	redis  redis.UniversalClient
	http   *http.Client
	logger *slog.Logger

	built bool
}

// New starts a builder with [DefaultConfig].
func New() *Builder {
	return &Builder{config: DefaultConfig()}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithBaseURL sets the backend origin without replacing the rest of the
// configuration.
func (b *Builder) WithBaseURL(url string) *Builder {
	b.config.API.BaseURL = url
	return b
}

// WithRedis sets the Redis client backing the durable session store.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithHTTPClient overrides the transport used for API calls.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.http = client
	return b
}

// WithLogger overrides the default JSON slog logger.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build validates the configuration and wires the client. The returned
// [Client] still needs [Client.Initialize] to seed its reactive state from
// durable storage.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}
	if b.redis == nil {
		return nil, errors.New("redis client required for the durable session store")
	}

	logger := b.logger
	if logger == nil {
		logger = newLogger(b.config.Logging.Level)
	}

	client := newClient(b.config, b.redis, logger, validator.New())

	apiClient, err := api.NewClient(api.Config{
		BaseURL:       b.config.API.BaseURL,
		Timeout:       b.config.API.Timeout,
		RetryAttempts: b.config.API.RetryAttempts,
		HTTPClient:    b.http,
		Credentials:   &credentialSource{client: client},
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}
	client.attachAPI(apiClient)

	b.built = true
	return client, nil
}
