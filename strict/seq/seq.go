// Package seq validates collections lazily: each element is narrowed only when
// the consumer reaches it.
package seq

import (
	"iter"
	"sync"

	"github.com/LerianStudio/lib-strict/strict"
	"github.com/LerianStudio/lib-strict/strict/kind"
)

// Iterator is a single-pass validated view of a collection. Ranging over All
// stops at the first invalid element; Err then reports it.
type Iterator[K comparable, V any] struct {
	mu   sync.Mutex
	seq  iter.Seq2[K, V]
	err  error
	used bool
}

// All returns the validated sequence. A second call yields nothing, and so
// does a nil or zero Iterator.
func (it *Iterator[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if it == nil || it.seq == nil {
			return
		}

		it.mu.Lock()
		if it.used {
			it.mu.Unlock()
			return
		}

		it.used = true
		it.mu.Unlock()

		it.seq(yield)
	}
}

// Err returns the error that stopped iteration, if any.
func (it *Iterator[K, V]) Err() error {
	if it == nil {
		return nil
	}

	it.mu.Lock()
	defer it.mu.Unlock()

	return it.err
}

func (it *Iterator[K, V]) fail(err error) {
	it.mu.Lock()
	it.err = err
	it.mu.Unlock()
}

// List validates src as a sequence of k values and renumbers it from 0,
// whatever the source keys were.
func List[T any](src any, k kind.Kind[T], context ...string) *Iterator[int, T] {
	label := kind.Label(context)
	it := &Iterator[int, T]{}

	it.seq = func(yield func(int, T) bool) {
		entries, ok := strict.Entries(src)
		if !ok {
			it.fail(strict.NewTypeError("iterable<"+k.Name()+">", src, label))
			return
		}

		i := 0

		for _, elem := range entries {
			v, err := k.Narrow(elem, label)
			if err != nil {
				it.fail(err)
				return
			}

			if !yield(i, v) {
				return
			}

			i++
		}
	}

	return it
}

// Map validates src as a keyed collection of k values. Keys are stringified;
// a key that is neither a string nor an integer stops iteration with an error
// matching strict.ErrInvalidKey. Duplicate keys after stringification are
// yielded as they come.
func Map[T any](src any, k kind.Kind[T], context ...string) *Iterator[string, T] {
	label := kind.Label(context)
	it := &Iterator[string, T]{}

	it.seq = func(yield func(string, T) bool) {
		entries, ok := strict.Entries(src)
		if !ok {
			it.fail(strict.NewTypeError("iterable<"+k.Name()+">", src, label))
			return
		}

		for key, elem := range entries {
			v, err := k.Narrow(elem, label)
			if err != nil {
				it.fail(err)
				return
			}

			s, ok := strict.KeyString(key)
			if !ok {
				it.fail(strict.NewKeyError("int or string key", key, label))
				return
			}

			if !yield(s, v) {
				return
			}
		}
	}

	return it
}
