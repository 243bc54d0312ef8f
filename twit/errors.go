package twit

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid twit configuration")
	// ErrAuthenticationFailed indicates the app-id/app-key pair was rejected
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrResourceNotFound indicates the requested resource does not exist
	ErrResourceNotFound = errors.New("resource not found")
	// ErrUsageLimitExceeded indicates the plan's usage limits were hit
	ErrUsageLimitExceeded = errors.New("usage limits exceeded")
	// ErrServerError indicates a generic 500 from the API
	ErrServerError = errors.New("server error")
	// ErrUnexpectedResponse indicates a status code the client does not classify
	ErrUnexpectedResponse = errors.New("unexpected response")
	// ErrTransportFailure indicates the request never produced a response
	ErrTransportFailure = errors.New("transport failure")
	// ErrResponseParse indicates a 200 response whose body is not valid JSON
	ErrResponseParse = errors.New("response parse error")
)

// usageLimitMarker is matched literally against 500 bodies. It couples the
// classification to the API's exact wording.
const usageLimitMarker = "usage limits are exceeded"

// ErrorKind classifies an APIError
type ErrorKind int

const (
	// KindUnexpectedResponse is any status code without a dedicated kind
	KindUnexpectedResponse ErrorKind = iota
	// KindAuthenticationFailed is a 401 or 403
	KindAuthenticationFailed
	// KindResourceNotFound is a 404
	KindResourceNotFound
	// KindUsageLimitExceeded is a 500 reporting exceeded usage limits
	KindUsageLimitExceeded
	// KindServerError is any other 500
	KindServerError
	// KindTransportFailure is a network-level failure
	KindTransportFailure
)

// String returns the string representation of an ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindAuthenticationFailed:
		return "AuthenticationFailed"
	case KindResourceNotFound:
		return "ResourceNotFound"
	case KindUsageLimitExceeded:
		return "UsageLimitExceeded"
	case KindServerError:
		return "ServerError"
	case KindTransportFailure:
		return "TransportFailure"
	default:
		return "UnexpectedResponse"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindAuthenticationFailed:
		return ErrAuthenticationFailed
	case KindResourceNotFound:
		return ErrResourceNotFound
	case KindUsageLimitExceeded:
		return ErrUsageLimitExceeded
	case KindServerError:
		return ErrServerError
	case KindTransportFailure:
		return ErrTransportFailure
	default:
		return ErrUnexpectedResponse
	}
}

// APIError represents a failed TWiT API call. StatusCode is zero for
// transport failures and Body is only kept for server errors and
// unexpected responses.
type APIError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("twit API error: %s", e.Message)
	}
	return fmt.Sprintf("twit API error: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the underlying transport error, if any
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind
func (e *APIError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.Kind == KindResourceNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.Kind == KindAuthenticationFailed
}

// ResponseParseError is returned when a successful response carries a body
// that is not a JSON object.
type ResponseParseError struct {
	URL string
	Err error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("failed to parse response from %s: %v", e.URL, e.Err)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}

// Is matches ErrResponseParse
func (e *ResponseParseError) Is(target error) bool {
	return target == ErrResponseParse
}
