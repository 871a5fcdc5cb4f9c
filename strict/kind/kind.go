package kind

import (
	"github.com/LerianStudio/lib-strict/strict"
)

// Kind describes a narrowing target: a name used in diagnostics and a
// function that either returns the value as T or fails with *strict.TypeError.
//
// The zero Kind rejects every value.
type Kind[T any] struct {
	name   string
	narrow func(value any, context string) (T, error)
}

// New builds a Kind from a match function. Values rejected by match fail with
// a *strict.TypeError naming the kind.
//
// Example:
//
//	port := kind.New("port", func(v any) (int, bool) {
//		p, ok := v.(int)
//		return p, ok && p > 0 && p < 65536
//	})
func New[T any](name string, match func(value any) (T, bool)) Kind[T] {
	return Kind[T]{
		name: name,
		narrow: func(value any, context string) (T, error) {
			if v, ok := match(value); ok {
				return v, nil
			}

			var zero T

			return zero, strict.NewTypeError(name, value, context)
		},
	}
}

// Of builds a Kind that accepts values whose dynamic type is exactly T, or
// implements T when T is an interface.
func Of[T any](name string) Kind[T] {
	return New(name, func(value any) (T, bool) {
		v, ok := value.(T)
		return v, ok
	})
}

// Name returns the name used in diagnostics.
func (k Kind[T]) Name() string {
	if k.name == "" {
		return "unknown"
	}

	return k.name
}

// Narrow returns value as T or a *strict.TypeError. The optional context
// labels what was being checked.
func (k Kind[T]) Narrow(value any, context ...string) (T, error) {
	return k.check(value, label(context))
}

// Is reports whether value narrows to T.
func (k Kind[T]) Is(value any) bool {
	_, err := k.check(value, "")
	return err == nil
}

func (k Kind[T]) check(value any, context string) (T, error) {
	if k.narrow == nil {
		var zero T
		return zero, strict.NewTypeError(k.Name(), value, context)
	}

	return k.narrow(value, context)
}

// Any erases the result type of k.
func Any[T any](k Kind[T]) Kind[any] {
	return Kind[any]{
		name: k.Name(),
		narrow: func(value any, context string) (any, error) {
			v, err := k.check(value, context)
			if err != nil {
				return nil, err
			}

			return v, nil
		},
	}
}

// Union accepts a value matching any of kinds, trying them in order.
func Union(name string, kinds ...Kind[any]) Kind[any] {
	return Kind[any]{
		name: name,
		narrow: func(value any, context string) (any, error) {
			for _, k := range kinds {
				if v, err := k.check(value, context); err == nil {
					return v, nil
				}
			}

			return nil, strict.NewTypeError(name, value, context)
		},
	}
}

// Label returns the first non-empty context, or "" for the default.
func Label(context []string) string {
	return label(context)
}

func label(context []string) string {
	for _, c := range context {
		if c != "" {
			return c
		}
	}

	return ""
}
