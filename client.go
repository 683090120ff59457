package theralink

import (
	"context"
	"sync"

	"github.com/theralink/client-go/internal/api"
	"github.com/theralink/client-go/internal/apierrors"
)

// Client is the main TheraLink SDK client. It is safe for concurrent use;
// every call runs independently with its own retries and timers.
type Client struct {
	apiClient *api.Client

	auth     *AuthService
	users    *UsersService
	clients  *ClientsService
	programs *ProgramsService

	mu     sync.RWMutex
	closed bool
}

// New creates a new TheraLink client with the given API key. The client
// targets production unless WithEnvironment or WithBaseURL says otherwise.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:          productionBaseURL,
		timeout:          defaultTimeout,
		maxRetryAttempts: defaultMaxRetryAttempts,
		retryBaseDelay:   defaultRetryBaseDelay,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	retry := api.DefaultRetryConfig()
	retry.MaxAttempts = cfg.maxRetryAttempts + 1
	retry.BaseDelay = cfg.retryBaseDelay

	apiOpts := []api.Option{
		api.WithTimeout(cfg.timeout),
		api.WithRetryConfig(retry),
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}

	apiClient, err := api.New(apiKey, cfg.baseURL, apiOpts...)
	if err != nil {
		return nil, err
	}
	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	c := &Client{apiClient: apiClient}
	c.auth = &AuthService{client: c, api: apiClient}
	c.users = &UsersService{client: c, api: apiClient}
	c.clients = &ClientsService{client: c, api: apiClient}
	c.programs = &ProgramsService{client: c, api: apiClient}

	// Expired session tokens are refreshed through a singleflight gate so
	// concurrent calls share one refresh request.
	apiClient.SetRefreshFunc(c.auth.refreshToken)

	return c, nil
}

// Auth returns the authentication service.
func (c *Client) Auth() *AuthService { return c.auth }

// Users returns the users service.
func (c *Client) Users() *UsersService { return c.users }

// Clients returns the clients (patients) service.
func (c *Client) Clients() *ClientsService { return c.clients }

// Programs returns the rehabilitation programs service.
func (c *Client) Programs() *ProgramsService { return c.programs }

// LastRateLimit returns the most recent rate-limit snapshot the server
// reported, or nil if none was seen yet.
func (c *Client) LastRateLimit() *RateLimit {
	return c.apiClient.LastRateLimit()
}

// Ping verifies connectivity and credentials against the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	_, err := c.apiClient.Do(ctx, api.Request{Method: "GET", Path: "/health"}, nil)
	return err
}

// Close marks the client closed. Subsequent calls fail with ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return apierrors.ErrClientClosed
	}
	return nil
}
