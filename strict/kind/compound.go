package kind

import (
	"errors"

	"github.com/LerianStudio/lib-strict/strict"
)

// OneOrMany holds either a single value or a flat list of values.
type OneOrMany[T any] struct {
	One    T
	Many   []T
	IsMany bool
}

// Values returns the list form: Many, or a one-element slice holding One.
func (o OneOrMany[T]) Values() []T {
	if o.IsMany {
		return o.Many
	}

	return []T{o.One}
}

// OneOrMapped holds either a single value or a flat string-keyed map of values.
type OneOrMapped[T any] struct {
	One   T
	Map   map[string]T
	IsMap bool
}

// Nullable accepts nil, returned as a nil pointer, or a value of k. A scalar
// mismatch names both forms; element errors from a collection are kept.
func Nullable[T any](k Kind[T]) Kind[*T] {
	name := k.Name() + " or null"

	return Kind[*T]{
		name: name,
		narrow: func(value any, context string) (*T, error) {
			if value == nil {
				return nil, nil
			}

			v, err := k.check(value, context)
			if err != nil {
				return nil, widenScalar(err, name, value, context)
			}

			return &v, nil
		},
	}
}

// ListOf accepts a collection whose keys are the indices 0..n-1 in order and
// whose values all narrow to k. Validation stops at the first bad element or
// key; a bad key fails with an error matching strict.ErrInvalidKey.
func ListOf[T any](k Kind[T]) Kind[[]T] {
	name := "list<" + k.Name() + ">"

	return Kind[[]T]{
		name: name,
		narrow: func(value any, context string) ([]T, error) {
			entries, ok := strict.Entries(value)
			if !ok {
				return nil, strict.NewTypeError(name, value, context)
			}

			out := []T{}
			next := 0

			for key, elem := range entries {
				v, err := k.check(elem, context)
				if err != nil {
					return nil, err
				}

				i, isInt := strict.Index(key)
				if !isInt {
					return nil, strict.NewKeyError("int key", key, context)
				}

				if i != next {
					return nil, strict.NewKeyError(formatIndex(next), key, context)
				}

				out = append(out, v)
				next++
			}

			return out, nil
		},
	}
}

// MapOf accepts a collection whose values all narrow to k. Keys are
// stringified; a key that is neither a string nor an integer fails with an
// error matching strict.ErrInvalidKey.
func MapOf[T any](k Kind[T]) Kind[map[string]T] {
	name := "map<" + k.Name() + ">"

	return Kind[map[string]T]{
		name: name,
		narrow: func(value any, context string) (map[string]T, error) {
			entries, ok := strict.Entries(value)
			if !ok {
				return nil, strict.NewTypeError(name, value, context)
			}

			out := make(map[string]T)

			for key, elem := range entries {
				v, err := k.check(elem, context)
				if err != nil {
					return nil, err
				}

				s, ok := strict.KeyString(key)
				if !ok {
					return nil, strict.NewKeyError("int or string key", key, context)
				}

				out[s] = v
			}

			return out, nil
		},
	}
}

// OneOrList accepts a single value of k or a flat ListOf(k). Nested lists are
// rejected.
func OneOrList[T any](k Kind[T]) Kind[OneOrMany[T]] {
	list := ListOf(k)
	name := k.Name() + " or " + list.Name()

	return Kind[OneOrMany[T]]{
		name: name,
		narrow: func(value any, context string) (OneOrMany[T], error) {
			if strict.IsCollection(value) {
				many, err := list.check(value, context)
				if err != nil {
					return OneOrMany[T]{}, err
				}

				return OneOrMany[T]{Many: many, IsMany: true}, nil
			}

			one, err := k.check(value, context)
			if err != nil {
				return OneOrMany[T]{}, widen(err, name, value, context)
			}

			return OneOrMany[T]{One: one}, nil
		},
	}
}

// OneOrMap accepts a single value of k or a flat MapOf(k).
func OneOrMap[T any](k Kind[T]) Kind[OneOrMapped[T]] {
	mapKind := MapOf(k)
	name := k.Name() + " or " + mapKind.Name()

	return Kind[OneOrMapped[T]]{
		name: name,
		narrow: func(value any, context string) (OneOrMapped[T], error) {
			if strict.IsCollection(value) {
				m, err := mapKind.check(value, context)
				if err != nil {
					return OneOrMapped[T]{}, err
				}

				return OneOrMapped[T]{Map: m, IsMap: true}, nil
			}

			one, err := k.check(value, context)
			if err != nil {
				return OneOrMapped[T]{}, widen(err, name, value, context)
			}

			return OneOrMapped[T]{One: one}, nil
		},
	}
}

// widen renames a top-level mismatch so the message lists both accepted forms.
func widen(err error, name string, value any, context string) error {
	var typeErr *strict.TypeError
	if errors.As(err, &typeErr) && !typeErr.IsKey() {
		return strict.NewTypeError(name, value, context)
	}

	return err
}

// widenScalar widens err only when value is not a collection.
func widenScalar(err error, name string, value any, context string) error {
	if strict.IsCollection(value) {
		return err
	}

	return widen(err, name, value, context)
}
