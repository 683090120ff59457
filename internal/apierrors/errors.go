// Package apierrors provides shared error types for the TheraLink client.
package apierrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrValidation is returned when the server rejects a request as invalid.
	ErrValidation = errors.New("request validation failed")

	// ErrUnauthorized is returned when the API key or session token is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired credentials")

	// ErrForbidden is returned when the authenticated principal lacks permission.
	ErrForbidden = errors.New("permission denied")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is returned when the API fails with a 5xx status.
	ErrServer = errors.New("server error")

	// ErrNotAuthenticated is returned when a session operation is attempted
	// before a successful login.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Kind classifies a failed API call. It drives both retry behavior inside
// the request pipeline and error matching at the call site.
type Kind string

const (
	// KindNetwork is a transport-level failure (connection refused, timeout).
	KindNetwork Kind = "NetworkError"
	// KindCancelled means the caller's context was cancelled or its deadline passed.
	KindCancelled Kind = "Cancelled"
	// KindValidation is an HTTP 400 with field-level details.
	KindValidation Kind = "ValidationError"
	// KindAuthentication is an HTTP 401.
	KindAuthentication Kind = "AuthenticationError"
	// KindAuthorization is an HTTP 403.
	KindAuthorization Kind = "AuthorizationError"
	// KindNotFound is an HTTP 404.
	KindNotFound Kind = "NotFoundError"
	// KindRateLimit is an HTTP 429.
	KindRateLimit Kind = "RateLimitError"
	// KindServer is an HTTP 5xx.
	KindServer Kind = "ServerError"
	// KindUnknown is any other non-2xx status.
	KindUnknown Kind = "UnknownError"
)

// Retryable reports whether the kind may be retried by the pipeline.
// Cancellation is never retryable.
func (k Kind) Retryable() bool {
	switch k {
	case KindNetwork, KindRateLimit, KindServer:
		return true
	default:
		return false
	}
}

// Error is the typed error returned for any failed API call.
//
// Kind is always set. StatusCode is zero for transport-level failures.
// Details carries field to messages mappings for validation errors.
// RetryAfter is the server-suggested delay for rate-limit errors, zero
// when the server gave no hint.
type Error struct {
	Kind       Kind
	StatusCode int
	Code       string
	Message    string
	Details    map[string][]string
	RetryAfter time.Duration

	// Err is the underlying cause for network and cancellation errors.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindValidation:
		return target == ErrValidation
	case KindAuthentication:
		return target == ErrUnauthorized
	case KindAuthorization:
		return target == ErrForbidden
	case KindNotFound:
		return target == ErrNotFound
	case KindRateLimit:
		return target == ErrRateLimited
	case KindServer:
		return target == ErrServer
	}
	return false
}

// Cancelled wraps a context error in a KindCancelled Error. The original
// context.Canceled or context.DeadlineExceeded stays reachable via errors.Is.
func Cancelled(err error) *Error {
	return &Error{Kind: KindCancelled, Err: err}
}

// Network wraps a transport-level failure in a KindNetwork Error.
func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

// KindOf extracts the classification from err. Errors that did not come
// from the pipeline report KindUnknown.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsCancelled reports whether err is, or wraps, a cancellation.
func IsCancelled(err error) bool {
	if KindOf(err) == KindCancelled {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
