package remote

import (
	"errors"
	"fmt"
)

// ErrEmptyBody is returned when the endpoint answers 2xx with no data.
var ErrEmptyBody = errors.New("server returned no data")

// TransportError wraps a failure before any HTTP status was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("network request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-2xx response and carries the status code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned HTTP %d", e.Code)
}

// DecodeError wraps a body that did not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
