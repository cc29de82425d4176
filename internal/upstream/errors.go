package upstream

import (
	"errors"
	"net/http"
)

// ErrUnavailable wraps every transport-level failure: the request never
// reached the ticketing API or never returned a usable response. Pages
// surface it as a generic "unable to load" message and keep their
// previous state.
var ErrUnavailable = errors.New("ticketing service unavailable")

// APIError is a server-reported failure: the ticketing API answered
// with success=false and a message meant to be shown verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NotFound reports whether the error is a missing-entity response.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// AsAPIError unwraps err into an APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTransport reports whether err is a transport-level failure rather
// than a server-reported one.
func IsTransport(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsNotFound reports whether err is a server-reported missing entity.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.NotFound()
}
