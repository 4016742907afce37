package models

import (
	"errors"
	"fmt"
)

// InvalidRequestError is a client-caused failure: bad input or an unsupported currency pair.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	return e.Message
}

// ProviderError is a provider-caused failure: upstream 5xx, transport error,
// or a provider reporting its own failure.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewInvalidRequestError creates an InvalidRequestError with a formatted message.
func NewInvalidRequestError(format string, args ...any) error {
	return &InvalidRequestError{Message: fmt.Sprintf(format, args...)}
}

// NewProviderError creates a ProviderError with the given message and optional cause.
func NewProviderError(message string, cause error) error {
	return &ProviderError{Message: message, Err: cause}
}

// IsInvalidRequest reports whether err is or wraps an InvalidRequestError.
func IsInvalidRequest(err error) bool {
	var target *InvalidRequestError
	return errors.As(err, &target)
}

// IsProviderError reports whether err is or wraps a ProviderError.
func IsProviderError(err error) bool {
	var target *ProviderError
	return errors.As(err, &target)
}
