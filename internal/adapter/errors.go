package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure kinds of [ServerAdapter.Request].
var (
	// ErrTransport wraps network, DNS, TLS, timeout and cancellation failures.
	ErrTransport = errors.New("transport failure")
	// ErrHTTPStatus matches every [*HTTPError].
	ErrHTTPStatus = errors.New("unexpected http status")
	// ErrMalformedResponse is returned when a 2xx body is not valid JSON.
	ErrMalformedResponse = errors.New("malformed response body")
)

// Per-status sentinels matched by [*HTTPError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrInvalidResponse is returned by typed operations when a well-formed
	// JSON body does not have the expected shape.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrFeatureDisabled is returned by operations switched off in config.
	ErrFeatureDisabled = errors.New("feature disabled")
	// ErrUploadRejected is returned before any network call when a file
	// violates the upload limits.
	ErrUploadRejected = errors.New("upload rejected")
	// ErrInvalidArgument is returned when a required argument is empty.
	ErrInvalidArgument = errors.New("invalid argument")
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// HTTPError is a non-2xx response. Body is the trimmed response text.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, body)
}

// Is reports a match against [ErrHTTPStatus] and the sentinel of the status.
func (e *HTTPError) Is(target error) bool {
	if target == ErrHTTPStatus {
		return true
	}
	sentinel, ok := statusSentinels[e.StatusCode]
	return ok && target == sentinel
}
