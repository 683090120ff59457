package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/theralink/client-go/internal/apierrors"
)

// Default pipeline settings.
const (
	// DefaultTimeout applies per attempt, not cumulatively across retries.
	DefaultTimeout = 30 * time.Second
)

// Client is the HTTP API client. It orchestrates the transport, the
// response mapper, and the retry policy for each logical call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retry      *RetryConfig
	logger     Logger

	mu    sync.RWMutex
	token string

	// refresh obtains a replacement bearer token after a 401. Concurrent
	// calls share one in-flight refresh through the singleflight group.
	refresh   func(ctx context.Context) (string, error)
	refreshSF singleflight.Group

	rlMu          sync.Mutex
	lastRateLimit *RateLimit
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryConfig replaces the retry policy.
func WithRetryConfig(cfg *RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithLogger sets the request logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a new API client authenticating with the given API key.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	c := &Client{
		baseURL:    baseURL,
		token:      apiKey,
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		retry:      DefaultRetryConfig(),
		logger:     NoopLogger{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client. Any client-level timeout is
// cleared; the pipeline applies its own per-attempt timeout.
func (c *Client) SetHTTPClient(client *http.Client) {
	if client != nil {
		c.httpClient = client
	}
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetRefreshFunc installs the token refresh hook invoked after a 401.
func (c *Client) SetRefreshFunc(fn func(ctx context.Context) (string, error)) {
	c.refresh = fn
}

// LastRateLimit returns the most recent X-RateLimit-* snapshot observed
// on any response, or nil if the server never sent one. Informational
// only; the client never throttles itself.
func (c *Client) LastRateLimit() *RateLimit {
	c.rlMu.Lock()
	defer c.rlMu.Unlock()
	return c.lastRateLimit
}

// Do executes one logical API call: build the request, send it with
// retries per the retry policy, and decode the envelope's data into out
// (which may be nil for calls without a response body). The returned
// Page is non-nil only for list endpoints.
//
// Failures are reported as *apierrors.Error carrying the classification.
func (c *Client) Do(ctx context.Context, req Request, out any) (*Page, error) {
	var body []byte
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = data
	}

	url := c.baseURL + req.Path
	if len(req.Query) > 0 {
		url += "?" + req.Query.Encode()
	}

	authRetried := false
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, apierrors.Cancelled(err)
		}

		env, apiErr := c.attempt(ctx, req.Method, url, body)
		if apiErr == nil {
			return decodeData(env, out)
		}

		// One refresh per call; concurrent callers coalesce on the
		// singleflight group so a single refresh request is in flight.
		if apiErr.Kind == apierrors.KindAuthentication && c.refresh != nil &&
			!req.SkipAuthRefresh && !authRetried {
			if err := c.refreshToken(ctx); err == nil {
				authRetried = true
				continue
			}
			return nil, apiErr
		}

		decision := c.retry.Decide(attempt, apiErr.Kind, apiErr.RetryAfter)
		if !decision.ShouldRetry {
			return nil, apiErr
		}

		c.logger.Warnf("theralink: %s %s failed (%s), retrying in %s (attempt %d/%d)",
			req.Method, req.Path, apiErr.Kind, decision.Delay, attempt+1, c.retry.MaxAttempts)

		if err := c.retry.Wait(ctx, decision.Delay); err != nil {
			return nil, apierrors.Cancelled(err)
		}
	}
}

// attempt performs a single HTTP exchange and maps the outcome.
func (c *Client) attempt(ctx context.Context, method, url string, body []byte) (*Envelope, *apierrors.Error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(attemptCtx, method, url, reader)
	if err != nil {
		return nil, &apierrors.Error{Kind: apierrors.KindUnknown, Message: err.Error(), Err: err}
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.Token())
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debugf("theralink: %s %s", method, url)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// The caller's cancellation surfaces as Cancelled; a per-attempt
		// timeout is a transport failure and stays retryable.
		if ctx.Err() != nil {
			return nil, apierrors.Cancelled(ctx.Err())
		}
		return nil, apierrors.Network(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, apierrors.Cancelled(ctx.Err())
		}
		return nil, apierrors.Network(err)
	}

	if rl := parseRateLimit(resp.Header); rl != nil {
		c.rlMu.Lock()
		c.lastRateLimit = rl
		c.rlMu.Unlock()
	}

	return mapResponse(resp.StatusCode, resp.Header, respBody)
}

func (c *Client) refreshToken(ctx context.Context) error {
	token, err, _ := c.refreshSF.Do("token", func() (any, error) {
		return c.refresh(ctx)
	})
	if err != nil {
		return err
	}
	c.SetToken(token.(string))
	return nil
}

func decodeData(env *Envelope, out any) (*Page, error) {
	if out == nil || len(env.Data) == 0 {
		return env.Meta, nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return nil, fmt.Errorf("decode response data: %w", err)
	}
	return env.Meta, nil
}
