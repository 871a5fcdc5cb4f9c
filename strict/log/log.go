package log

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LerianStudio/lib-strict/strict"
)

// Logger is implemented by every logging backend.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Level is a log severity. Lower values are more severe, and a logger set to
// a level emits that level and every lower one:
//
//	LevelError (0) errors only
//	LevelWarn  (1) errors and warnings
//	LevelInfo  (2) adds info
//	LevelDebug (3) everything
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// String returns the lowercase level name.
func (level Level) String() string {
	switch level {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel accepts debug, info, warn (or warning) and error in any case.
func ParseLevel(lvl string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}

	return LevelError, fmt.Errorf("not a valid Level: %q", lvl)
}

// Field is a key/value attribute attached to a log event.
type Field struct {
	Key   string
	Value any
}

// Any creates a field with an arbitrary value. Prefer the typed
// constructors for anything that may carry user data.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// String builds a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int builds an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool builds a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates the conventional "error" field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Failure expands a lib-strict error into its diagnostic fields:
// expected/actual/preview/context for a type mismatch and
// operation/message for an unexpected failure. Other errors yield a single
// error field.
func Failure(err error) []Field {
	var typeErr *strict.TypeError
	if errors.As(err, &typeErr) {
		return []Field{
			String("expected", typeErr.Expected),
			String("actual", typeErr.Actual),
			String("preview", typeErr.Preview),
			String("context", typeErr.Context),
			Bool("invalid_key", typeErr.IsKey()),
		}
	}

	var failure *strict.UnexpectedFailureError
	if errors.As(err, &failure) {
		return []Field{
			String("operation", failure.Operation),
			String("message", failure.Message),
		}
	}

	return []Field{Err(err)}
}
