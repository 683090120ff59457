package theralink

import (
	"github.com/theralink/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = apierrors.ErrClientClosed

	// ErrValidation is returned when the server rejects a request as invalid.
	ErrValidation = apierrors.ErrValidation

	// ErrUnauthorized is returned when credentials are invalid or expired.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrForbidden is returned when the authenticated principal lacks permission.
	ErrForbidden = apierrors.ErrForbidden

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServer is returned when the API fails with a 5xx status.
	ErrServer = apierrors.ErrServer

	// ErrNotAuthenticated is returned when a session operation is attempted
	// before a successful login.
	ErrNotAuthenticated = apierrors.ErrNotAuthenticated
)

// Error is the typed error returned for any failed API call.
type Error = apierrors.Error

// ErrorKind classifies a failed API call.
type ErrorKind = apierrors.Kind

// Error kinds carried by *Error.
const (
	KindNetwork        = apierrors.KindNetwork
	KindCancelled      = apierrors.KindCancelled
	KindValidation     = apierrors.KindValidation
	KindAuthentication = apierrors.KindAuthentication
	KindAuthorization  = apierrors.KindAuthorization
	KindNotFound       = apierrors.KindNotFound
	KindRateLimit      = apierrors.KindRateLimit
	KindServer         = apierrors.KindServer
	KindUnknown        = apierrors.KindUnknown
)

// KindOf extracts the classification from err. Errors that did not come
// from the SDK report KindUnknown.
func KindOf(err error) ErrorKind {
	return apierrors.KindOf(err)
}
