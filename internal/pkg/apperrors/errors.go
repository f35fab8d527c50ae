package apperrors

import "fmt"

// ValidationError marks empty or malformed caller input; the HTTP layer
// maps it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a missing resource; the HTTP layer maps it to 404.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// RemoteProviderError wraps a failed embedding or generation call. It is
// not retried; the HTTP layer maps it to 502 unless the Q&A path has
// already swallowed it into a user-facing apology.
type RemoteProviderError struct {
	Op  string
	Err error
}

func (e *RemoteProviderError) Error() string {
	return fmt.Sprintf("remote provider %s: %v", e.Op, e.Err)
}

func (e *RemoteProviderError) Unwrap() error {
	return e.Err
}

func NewRemoteProvider(op string, err error) error {
	return &RemoteProviderError{Op: op, Err: err}
}
