// Package api provides HTTP client functionality for communicating with the
// TheraLink API. It implements the request pipeline: request serialization,
// envelope decoding, typed error mapping, and automatic retry with
// exponential backoff for transient failures.
//
// # Retry Behavior
//
// The client retries failed requests with exponential backoff. By default a
// call makes up to 4 attempts (1 initial + 3 retries) for these outcomes:
//
//   - transport-level network failures
//   - 429 Too Many Requests (honoring the server's Retry-After hint)
//   - any 5xx server error
//
// The retry delay doubles with each attempt (1s, 2s, 4s, ...), capped at 30s,
// with ±20% jitter. Cancellation is never retried. Configure retry behavior
// through [RetryConfig].
//
// # Error Handling
//
// Every failed call yields an *apierrors.Error carrying the classification,
// HTTP status, server error code, message, and field-level validation
// details. Use errors.Is with the apierrors sentinels to match conditions:
//
//	if errors.Is(err, apierrors.ErrNotFound) {
//	    // Handle missing resource
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Each logical call keeps its
// own attempt counter and timers; no lock is held across network or backoff
// waits.
package api
