package theralink

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by NewFromEnv.
const (
	EnvAPIKey     = "THERALINK_API_KEY"
	EnvBaseURL    = "THERALINK_BASE_URL"
	EnvEnviron    = "THERALINK_ENV"
	EnvTimeout    = "THERALINK_TIMEOUT"
	EnvMaxRetries = "THERALINK_MAX_RETRIES"
	EnvLogging    = "THERALINK_LOGGING"
)

// NewFromEnv builds a client from environment variables, loading a .env
// file from the working directory first when one exists.
//
// THERALINK_API_KEY is required. THERALINK_ENV selects a named
// environment; THERALINK_BASE_URL overrides it. THERALINK_TIMEOUT takes a
// Go duration string, THERALINK_MAX_RETRIES an integer, and
// THERALINK_LOGGING a boolean enabling request logging to stderr.
// Explicit options are applied last and win over the environment.
func NewFromEnv(opts ...Option) (*Client, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable is required: %w", EnvAPIKey, ErrMissingAPIKey)
	}

	envOpts, err := optionsFromEnv()
	if err != nil {
		return nil, err
	}

	return New(apiKey, append(envOpts, opts...)...)
}

func optionsFromEnv() ([]Option, error) {
	var opts []Option

	if env := os.Getenv(EnvEnviron); env != "" {
		switch Environment(env) {
		case EnvDevelopment, EnvStaging, EnvProduction:
			opts = append(opts, WithEnvironment(Environment(env)))
		default:
			return nil, fmt.Errorf("invalid %s value %q", EnvEnviron, env)
		}
	}
	if baseURL := os.Getenv(EnvBaseURL); baseURL != "" {
		opts = append(opts, WithBaseURL(baseURL))
	}
	if raw := os.Getenv(EnvTimeout); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvTimeout, raw, err)
		}
		opts = append(opts, WithTimeout(timeout))
	}
	if raw := os.Getenv(EnvMaxRetries); raw != "" {
		retries, err := strconv.Atoi(raw)
		if err != nil || retries < 0 {
			return nil, fmt.Errorf("invalid %s value %q", EnvMaxRetries, raw)
		}
		opts = append(opts, WithMaxRetryAttempts(retries))
	}
	if raw := os.Getenv(EnvLogging); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", EnvLogging, raw)
		}
		if enabled {
			opts = append(opts, WithLogger(NewStdLogger()))
		}
	}

	return opts, nil
}

// StdLogger logs through the standard library logger. Use it with
// WithLogger for quick diagnostics without wiring a logging library.
type StdLogger struct {
	l *log.Logger
}

// NewStdLogger returns a StdLogger writing to stderr.
func NewStdLogger() *StdLogger {
	return &StdLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
}

func (s *StdLogger) Errorf(format string, v ...any) { s.l.Printf("ERROR "+format, v...) }
func (s *StdLogger) Warnf(format string, v ...any)  { s.l.Printf("WARN "+format, v...) }
func (s *StdLogger) Debugf(format string, v ...any) { s.l.Printf("DEBUG "+format, v...) }
