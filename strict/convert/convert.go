// Package convert normalizes values that may be given either as a single item
// or as a collection of items.
package convert

import (
	"fmt"
	"reflect"

	"github.com/LerianStudio/lib-strict/strict"
	"github.com/LerianStudio/lib-strict/strict/cast"
	"github.com/LerianStudio/lib-strict/strict/kind"
)

// List returns the values of a collection renumbered from 0, or a
// one-element list holding value when it is not a collection. nil becomes
// [nil].
func List(value any) []any {
	entries, ok := strict.Entries(value)
	if !ok {
		return []any{value}
	}

	out := []any{}
	for _, elem := range entries {
		out = append(out, elem)
	}

	return out
}

// ListOr narrows value to T and wraps it in a list. A []T is copied and any
// other collection must hold only T values, which are renumbered from 0 with
// their keys dropped. Anything else fails with a *strict.TypeError.
func ListOr[T any](value any, context ...string) ([]T, error) {
	return listOr(kind.Of[T](reflect.TypeFor[T]().String()), value, context...)
}

// ListOrInt accepts an int or a collection of ints.
func ListOrInt(value any, context ...string) ([]int, error) {
	return listOr(kind.Int, value, context...)
}

// ListOrString accepts a string or a collection of strings.
func ListOrString(value any, context ...string) ([]string, error) {
	return listOr(kind.String, value, context...)
}

// ListOrStringy accepts a string, a fmt.Stringer or a list of either.
func ListOrStringy(value any, context ...string) ([]fmt.Stringer, error) {
	return listOr(kind.Stringy, value, context...)
}

func listOr[T any](k kind.Kind[T], value any, context ...string) ([]T, error) {
	if list, ok := value.([]T); ok && list != nil {
		out := make([]T, len(list))
		copy(out, list)

		return out, nil
	}

	if strict.IsCollection(value) {
		return cast.List(value, k, context...)
	}

	one, err := k.Narrow(value)
	if err != nil {
		return nil, strict.NewTypeError(k.Name()+" or list<"+k.Name()+">", value, kind.Label(context))
	}

	return []T{one}, nil
}
