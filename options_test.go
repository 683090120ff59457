package theralink

import (
	"testing"
	"time"
)

func TestOptions_Defaults(t *testing.T) {
	cfg := &clientConfig{
		baseURL:          productionBaseURL,
		timeout:          defaultTimeout,
		maxRetryAttempts: defaultMaxRetryAttempts,
		retryBaseDelay:   defaultRetryBaseDelay,
	}

	if cfg.timeout != 30*time.Second {
		t.Errorf("default timeout = %v, want 30s", cfg.timeout)
	}
	if cfg.maxRetryAttempts != 3 {
		t.Errorf("default maxRetryAttempts = %d, want 3", cfg.maxRetryAttempts)
	}
	if cfg.retryBaseDelay != time.Second {
		t.Errorf("default retryBaseDelay = %v, want 1s", cfg.retryBaseDelay)
	}
}

func TestOptions_Apply(t *testing.T) {
	cfg := &clientConfig{}

	opts := []Option{
		WithEnvironment(EnvStaging),
		WithTimeout(10 * time.Second),
		WithMaxRetryAttempts(5),
		WithRetryBaseDelay(250 * time.Millisecond),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.baseURL != stagingBaseURL {
		t.Errorf("baseURL = %s", cfg.baseURL)
	}
	if cfg.timeout != 10*time.Second {
		t.Errorf("timeout = %v", cfg.timeout)
	}
	if cfg.maxRetryAttempts != 5 {
		t.Errorf("maxRetryAttempts = %d", cfg.maxRetryAttempts)
	}
	if cfg.retryBaseDelay != 250*time.Millisecond {
		t.Errorf("retryBaseDelay = %v", cfg.retryBaseDelay)
	}
}

func TestOptions_BaseURLOverridesEnvironment(t *testing.T) {
	cfg := &clientConfig{}
	WithEnvironment(EnvProduction)(cfg)
	WithBaseURL("http://localhost:8080")(cfg)

	if cfg.baseURL != "http://localhost:8080" {
		t.Errorf("baseURL = %s", cfg.baseURL)
	}
}

func TestOptions_InvalidValuesIgnored(t *testing.T) {
	cfg := &clientConfig{
		timeout:          defaultTimeout,
		maxRetryAttempts: defaultMaxRetryAttempts,
	}

	WithTimeout(-1)(cfg)
	WithMaxRetryAttempts(-1)(cfg)
	WithBaseURL("")(cfg)
	WithLogger(nil)(cfg)

	if cfg.timeout != defaultTimeout {
		t.Errorf("negative timeout applied: %v", cfg.timeout)
	}
	if cfg.maxRetryAttempts != defaultMaxRetryAttempts {
		t.Errorf("negative retry count applied: %d", cfg.maxRetryAttempts)
	}
	if cfg.logger != nil {
		t.Error("nil logger applied")
	}
}

func TestListOptions_Query(t *testing.T) {
	q := ListOptions{Page: 2, Limit: 50, Search: "knee"}.query()
	if q.Get("page") != "2" || q.Get("limit") != "50" || q.Get("search") != "knee" {
		t.Errorf("query = %v", q)
	}

	empty := ListOptions{}.query()
	if len(empty) != 0 {
		t.Errorf("zero options produced query %v", empty)
	}
}
