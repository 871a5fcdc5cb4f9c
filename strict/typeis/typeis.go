// Package typeis is a flat catalogue of type checks over the kinds defined in
// package kind. Every function returns the value narrowed to its Go type or a
// *strict.TypeError labelled with the optional context.
package typeis

import (
	"fmt"
	"io"
	"iter"
	"net"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-strict/strict/kind"
)

var (
	stringOrNull = kind.Nullable(kind.String)

	listInt             = kind.ListOf(kind.Int)
	listFloat           = kind.ListOf(kind.Float)
	listString          = kind.ListOf(kind.String)
	listNullableString  = kind.ListOf(stringOrNull)
	listStringy         = kind.ListOf(kind.Stringy)
	listNullableStringy = kind.ListOf(kind.StringyOrNull)
	listStringOrList    = kind.ListOf(stringOrListString)

	mapInt             = kind.MapOf(kind.Int)
	mapFloat           = kind.MapOf(kind.Float)
	mapString          = kind.MapOf(kind.String)
	mapNullableString  = kind.MapOf(stringOrNull)
	mapStringy         = kind.MapOf(kind.Stringy)
	mapNullableStringy = kind.MapOf(kind.StringyOrNull)
	mapStringOrList    = kind.MapOf(stringOrListString)
	mapStringOrMap     = kind.MapOf(stringOrMapString)

	stringOrListString = kind.OneOrList(kind.String)
	stringOrMapString  = kind.OneOrMap(kind.String)
	arrayOrNull        = kind.New("array or null", toArrayOrNull)
)

func toArrayOrNull(value any) ([]any, bool) {
	if value == nil {
		return nil, true
	}

	v, err := kind.Array.Narrow(value)

	return v, err == nil
}

// Is narrows value with an arbitrary kind.
func Is[T any](k kind.Kind[T], value any, context ...string) (T, error) {
	return k.Narrow(value, context...)
}

// Bool accepts a bool.
func Bool(value any, context ...string) (bool, error) {
	return kind.Bool.Narrow(value, context...)
}

// Int accepts an int.
func Int(value any, context ...string) (int, error) {
	return kind.Int.Narrow(value, context...)
}

// Float accepts floats and integers, widening integers to float64.
func Float(value any, context ...string) (float64, error) {
	return kind.Float.Narrow(value, context...)
}

// String accepts a string.
func String(value any, context ...string) (string, error) {
	return kind.String.Narrow(value, context...)
}

// StringOrNull returns nil for nil and a pointer to the string otherwise.
func StringOrNull(value any, context ...string) (*string, error) {
	return stringOrNull.Narrow(value, context...)
}

// Stringy accepts a string, returned as strict.Text, or a non-nil
// fmt.Stringer.
func Stringy(value any, context ...string) (fmt.Stringer, error) {
	return kind.Stringy.Narrow(value, context...)
}

// StringyOrNull accepts a string or fmt.Stringer, or nil.
func StringyOrNull(value any, context ...string) (fmt.Stringer, error) {
	return kind.StringyOrNull.Narrow(value, context...)
}

// True accepts only the literal true.
func True(value any, context ...string) (bool, error) {
	return kind.True.Narrow(value, context...)
}

// Callable accepts a non-nil func value.
func Callable(value any, context ...string) (any, error) {
	return kind.Callable.Narrow(value, context...)
}

// Object accepts a struct or a non-nil pointer to one.
func Object(value any, context ...string) (any, error) {
	return kind.Object.Narrow(value, context...)
}

// Handle accepts open files, connections and listeners.
func Handle(value any, context ...string) (io.Closer, error) {
	return kind.Handle.Narrow(value, context...)
}

// File accepts a non-nil *os.File.
func File(value any, context ...string) (*os.File, error) {
	return kind.File.Narrow(value, context...)
}

// Socket accepts a non-nil net.Conn.
func Socket(value any, context ...string) (net.Conn, error) {
	return kind.Socket.Narrow(value, context...)
}

// Array accepts any slice or array, copied to []any.
func Array(value any, context ...string) ([]any, error) {
	return kind.Array.Narrow(value, context...)
}

// ArrayOrNull returns a nil slice for nil.
func ArrayOrNull(value any, context ...string) ([]any, error) {
	return arrayOrNull.Narrow(value, context...)
}

// Map accepts any map with int or string keys, keys stringified.
func Map(value any, context ...string) (map[string]any, error) {
	return kind.Map.Narrow(value, context...)
}

// Iterable accepts any collection-shaped value.
func Iterable(value any, context ...string) (iter.Seq2[any, any], error) {
	return kind.Iterable.Narrow(value, context...)
}

// Decimal accepts a decimal, widening integers.
func Decimal(value any, context ...string) (decimal.Decimal, error) {
	return kind.Decimal.Narrow(value, context...)
}

// UUID accepts a uuid.UUID.
func UUID(value any, context ...string) (uuid.UUID, error) {
	return kind.UUID.Narrow(value, context...)
}
