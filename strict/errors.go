package strict

import (
	"errors"
	"fmt"
)

// DefaultContext labels a type check when the caller gives no context.
const DefaultContext = "type check"

// NoErrorMessage is used when a failed host primitive gave no message.
const NoErrorMessage = "(No error message provided)"

var (
	// ErrTypeMismatch is matched by every *TypeError.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidKey is matched by a *TypeError raised for a collection key.
	ErrInvalidKey = errors.New("invalid key")

	// ErrUnexpectedFailure is matched by every *UnexpectedFailureError.
	ErrUnexpectedFailure = errors.New("unexpected failure")

	// ErrInvalidArgument is the cause of failures detected before a host call.
	ErrInvalidArgument = errors.New("invalid argument")
)

// TypeError reports a value whose runtime type did not match the expectation.
type TypeError struct {
	Expected string
	Actual   string
	Preview  string
	Context  string
	Code     int
	Cause    error

	key bool
}

// NewTypeError builds a TypeError describing value. An empty context falls
// back to DefaultContext.
func NewTypeError(expected string, value any, context string) *TypeError {
	if context == "" {
		context = DefaultContext
	}

	return &TypeError{
		Expected: expected,
		Actual:   TypeName(value),
		Preview:  Preview(value),
		Context:  context,
	}
}

// NewKeyError builds a TypeError for a collection key. The result also
// matches ErrInvalidKey.
func NewKeyError(expected string, key any, context string) *TypeError {
	entry := NewTypeError(expected, key, context)
	entry.key = true

	return entry
}

// Error returns the formatted mismatch message.
func (entry *TypeError) Error() string {
	if entry == nil {
		return ErrTypeMismatch.Error()
	}

	return fmt.Sprintf("For %s: expected %s got %s (%s)", entry.Context, entry.Expected, entry.Actual, entry.Preview)
}

// Unwrap exposes the sentinels and the optional cause to errors.Is and errors.As.
func (entry *TypeError) Unwrap() []error {
	if entry == nil {
		return []error{ErrTypeMismatch}
	}

	errs := []error{ErrTypeMismatch}
	if entry.key {
		errs = append(errs, ErrInvalidKey)
	}

	if entry.Cause != nil {
		errs = append(errs, entry.Cause)
	}

	return errs
}

// IsKey reports whether the error was raised for a collection key.
func (entry *TypeError) IsKey() bool {
	return entry != nil && entry.key
}

// WithCode sets the numeric code and returns the same error.
func (entry *TypeError) WithCode(code int) *TypeError {
	entry.Code = code
	return entry
}

// WithCause sets the underlying cause and returns the same error.
func (entry *TypeError) WithCause(cause error) *TypeError {
	entry.Cause = cause
	return entry
}

// UnexpectedFailureError reports that a host primitive failed.
type UnexpectedFailureError struct {
	Operation string
	Message   string
	Code      int
	Cause     error
}

// NewUnexpectedFailure builds a failure for operation, taking the message
// from cause. A nil cause yields NoErrorMessage.
func NewUnexpectedFailure(operation string, cause error) *UnexpectedFailureError {
	message := ""
	if cause != nil {
		message = cause.Error()
	}

	entry := NewUnexpectedFailureMessage(operation, message)
	entry.Cause = cause

	return entry
}

// NewUnexpectedFailureMessage builds a failure with an explicit message.
func NewUnexpectedFailureMessage(operation, message string) *UnexpectedFailureError {
	if message == "" {
		message = NoErrorMessage
	}

	return &UnexpectedFailureError{
		Operation: operation,
		Message:   message,
	}
}

// NewInvalidArgument builds a failure for a precondition checked before the
// host call. The result matches ErrInvalidArgument.
func NewInvalidArgument(operation, message string) *UnexpectedFailureError {
	entry := NewUnexpectedFailureMessage(operation, message)
	entry.Cause = ErrInvalidArgument

	return entry
}

// Error returns the formatted failure message.
func (entry *UnexpectedFailureError) Error() string {
	if entry == nil {
		return ErrUnexpectedFailure.Error()
	}

	return entry.Operation + " failed unexpectedly: " + entry.Message
}

// Unwrap exposes the sentinel and the optional cause.
func (entry *UnexpectedFailureError) Unwrap() []error {
	if entry == nil || entry.Cause == nil {
		return []error{ErrUnexpectedFailure}
	}

	return []error{ErrUnexpectedFailure, entry.Cause}
}

// WithCode sets the numeric code and returns the same error.
func (entry *UnexpectedFailureError) WithCode(code int) *UnexpectedFailureError {
	entry.Code = code
	return entry
}

// WithCause sets the underlying cause and returns the same error.
func (entry *UnexpectedFailureError) WithCause(cause error) *UnexpectedFailureError {
	entry.Cause = cause
	return entry
}
