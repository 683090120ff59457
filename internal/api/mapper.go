package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/theralink/client-go/internal/apierrors"
)

// mapResponse decodes a raw HTTP response into a success envelope or a
// typed error. The status table:
//
//	200-299 -> success envelope (204 and empty bodies yield an empty Data)
//	400     -> ValidationError with field details
//	401     -> AuthenticationError
//	403     -> AuthorizationError
//	404     -> NotFoundError
//	429     -> RateLimitError with the server's Retry-After hint
//	5xx     -> ServerError (retryable)
//	other   -> UnknownError (not retryable)
func mapResponse(statusCode int, header http.Header, body []byte) (*Envelope, *apierrors.Error) {
	if statusCode >= 200 && statusCode < 300 {
		return mapSuccess(statusCode, body)
	}

	kind := classifyStatus(statusCode)
	apiErr := &apierrors.Error{
		Kind:       kind,
		StatusCode: statusCode,
	}

	// An error body that is not valid JSON still produces a typed error
	// with the raw text as the message.
	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
		if kind == apierrors.KindValidation {
			apiErr.Details = env.Error.Details
		}
		if env.Error.RetryAfter > 0 {
			apiErr.RetryAfter = time.Duration(env.Error.RetryAfter) * time.Second
		}
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	if kind == apierrors.KindRateLimit {
		if d, ok := parseRetryAfter(header.Get("Retry-After")); ok {
			apiErr.RetryAfter = d
		}
	}

	return nil, apiErr
}

func mapSuccess(statusCode int, body []byte) (*Envelope, *apierrors.Error) {
	if statusCode == http.StatusNoContent || len(body) == 0 {
		return &Envelope{Success: true}, nil
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &apierrors.Error{
			Kind:       apierrors.KindUnknown,
			StatusCode: statusCode,
			Message:    "malformed response body: " + err.Error(),
			Err:        err,
		}
	}

	if !env.Success && env.Error != nil {
		// Server broke the envelope invariant; surface its error anyway.
		return nil, &apierrors.Error{
			Kind:       apierrors.KindUnknown,
			StatusCode: statusCode,
			Code:       env.Error.Code,
			Message:    env.Error.Message,
		}
	}

	env.Success = true
	return &env, nil
}

func classifyStatus(statusCode int) apierrors.Kind {
	switch {
	case statusCode == http.StatusBadRequest:
		return apierrors.KindValidation
	case statusCode == http.StatusUnauthorized:
		return apierrors.KindAuthentication
	case statusCode == http.StatusForbidden:
		return apierrors.KindAuthorization
	case statusCode == http.StatusNotFound:
		return apierrors.KindNotFound
	case statusCode == http.StatusTooManyRequests:
		return apierrors.KindRateLimit
	case statusCode >= 500 && statusCode < 600:
		return apierrors.KindServer
	default:
		return apierrors.KindUnknown
	}
}

// parseRetryAfter handles both forms of the Retry-After header:
// delay in seconds, or an HTTP-date.
func parseRetryAfter(value string) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(value); err == nil {
		if d := time.Until(t); d > 0 {
			return d, true
		}
		return 0, true
	}
	return 0, false
}

// parseRateLimit extracts the informational X-RateLimit-* headers.
// Returns nil when the server sent none.
func parseRateLimit(header http.Header) *RateLimit {
	limit := header.Get("X-RateLimit-Limit")
	remaining := header.Get("X-RateLimit-Remaining")
	reset := header.Get("X-RateLimit-Reset")
	if limit == "" && remaining == "" && reset == "" {
		return nil
	}

	rl := &RateLimit{}
	if n, err := strconv.Atoi(limit); err == nil {
		rl.Limit = n
	}
	if n, err := strconv.Atoi(remaining); err == nil {
		rl.Remaining = n
	}
	if unix, err := strconv.ParseInt(reset, 10, 64); err == nil {
		rl.Reset = time.Unix(unix, 0)
	}
	return rl
}
