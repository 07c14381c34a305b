package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport layer, which maps it to an
// HTTP status without inspecting the message.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// BadRequest marks input the caller can fix.
func BadRequest(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound marks a lookup that matched nothing.
func NotFound(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure. The cause is kept for logging but
// never sent to the client.
func Internal(err error, message string) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsBadRequest(err error) bool {
	return KindOf(err) == KindBadRequest
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
