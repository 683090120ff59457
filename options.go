package theralink

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/theralink/client-go/internal/api"
)

// Environment selects one of the named TheraLink deployments.
type Environment string

const (
	// EnvDevelopment targets the development API.
	EnvDevelopment Environment = "development"
	// EnvStaging targets the staging API.
	EnvStaging Environment = "staging"
	// EnvProduction targets the production API.
	EnvProduction Environment = "production"
)

// Base URLs for the named environments.
const (
	developmentBaseURL = "https://api.dev.theralink.io"
	stagingBaseURL     = "https://api.staging.theralink.io"
	productionBaseURL  = "https://api.theralink.io"
)

// Defaults applied when no option overrides them.
const (
	defaultTimeout          = 30 * time.Second
	defaultMaxRetryAttempts = 3
	defaultRetryBaseDelay   = time.Second
)

// BaseURLFor returns the base URL for a named environment. Unknown
// environments fall back to production.
func BaseURLFor(env Environment) string {
	switch env {
	case EnvDevelopment:
		return developmentBaseURL
	case EnvStaging:
		return stagingBaseURL
	default:
		return productionBaseURL
	}
}

// Logger is the interface the SDK logs through when logging is enabled.
type Logger = api.Logger

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL          string
	httpClient       *http.Client
	timeout          time.Duration
	maxRetryAttempts int
	retryBaseDelay   time.Duration
	logger           Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithEnvironment selects a named deployment. Equivalent to calling
// WithBaseURL with the environment's base URL.
func WithEnvironment(env Environment) Option {
	return func(c *clientConfig) {
		c.baseURL = BaseURLFor(env)
	}
}

// WithBaseURL sets the API base URL, overriding any environment choice.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout. The timeout applies per attempt,
// not cumulatively across retries. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxRetryAttempts sets the number of retries after the initial
// attempt. Default: 3.
func WithMaxRetryAttempts(count int) Option {
	return func(c *clientConfig) {
		if count >= 0 {
			c.maxRetryAttempts = count
		}
	}
}

// WithRetryBaseDelay sets the initial backoff delay. Default: 1 second.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		if delay > 0 {
			c.retryBaseDelay = delay
		}
	}
}

// WithLogger enables request logging through the given logger.
func WithLogger(logger Logger) Option {
	return func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// ListOptions are the pagination and filter parameters accepted by list
// endpoints. Page starts at 1; Limit is clamped by the server to 1-100.
// Zero values are omitted and the server applies its defaults.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	return q
}
