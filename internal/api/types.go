package api

import (
	"encoding/json"
	"net/url"
	"time"
)

// Envelope is the standard success/error wrapper returned by every
// TheraLink endpoint.
//
// Invariant maintained by the server and checked by the mapper:
// Success true implies Data present and Error absent; Success false
// implies Error present.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Meta    *Page           `json:"meta,omitempty"`
}

// ErrorInfo is the error payload inside a failed envelope.
type ErrorInfo struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`

	// RetryAfter is a server-suggested delay in seconds, sent by some
	// rate-limited responses in place of the Retry-After header.
	RetryAfter int `json:"retryAfter,omitempty"`
}

// Page is the pagination metadata returned by list endpoints.
type Page struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// HasMore reports whether further pages exist beyond this one.
func (p *Page) HasMore() bool {
	if p == nil {
		return false
	}
	return p.Page < p.TotalPages
}

// Request describes one logical API call. It is built by a resource
// facade, consumed exactly once by Do, and discarded afterwards.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// SkipAuthRefresh disables the 401 token-refresh hook for this call.
	// Set on the refresh request itself to avoid recursion.
	SkipAuthRefresh bool
}

// RateLimit is the informational rate-limit state reported by the server
// through X-RateLimit-* response headers. It is never enforced client-side.
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
}
