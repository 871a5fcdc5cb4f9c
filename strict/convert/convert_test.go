//go:build unit

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-strict/strict"
)

func TestList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  []any
	}{
		{name: "scalar", value: "a", want: []any{"a"}},
		{name: "nil", value: nil, want: []any{nil}},
		{name: "slice", value: []any{1, 2}, want: []any{1, 2}},
		{name: "typed slice", value: []string{"x"}, want: []any{"x"}},
		{name: "map values in key order", value: map[string]any{"b": 2, "a": 1}, want: []any{1, 2}},
		{name: "empty", value: []any{}, want: []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, List(tt.value))
		})
	}
}

func TestListOrInt(t *testing.T) {
	t.Parallel()

	got, err := ListOrInt(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got)

	src := []int{1, 2}
	got, err = ListOrInt(src)
	require.NoError(t, err)
	assert.Equal(t, src, got)

	got[0] = 99
	assert.Equal(t, 1, src[0])

	got, err = ListOrInt([]any{4, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, got)

	_, err = ListOrInt("3", "retries")
	require.ErrorIs(t, err, strict.ErrTypeMismatch)
	assert.EqualError(t, err, `For retries: expected int or list<int> got string ("3")`)

	_, err = ListOrInt([]any{1, "2"})
	assert.EqualError(t, err, `For type check: expected int got string ("2")`)
}

func TestListOrString(t *testing.T) {
	t.Parallel()

	got, err := ListOrString("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)

	got, err = ListOrString([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestListOrString_DropsKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{name: "string keys", value: map[string]any{"b": "y", "a": "x"}, want: []string{"x", "y"}},
		{name: "sparse int keys", value: map[int]any{0: "a", 2: "b"}, want: []string{"a", "b"}},
		{name: "mixed keys", value: map[any]any{5: "c", "foo": "b", 0: "a"}, want: []string{"a", "c", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ListOrString(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ListOrString(map[string]any{"a": "x", "b": 2}, "names")
	require.ErrorIs(t, err, strict.ErrTypeMismatch)
	assert.NotErrorIs(t, err, strict.ErrInvalidKey)
	assert.EqualError(t, err, "For names: expected string got int (2)")
}

func TestListOrStringy(t *testing.T) {
	t.Parallel()

	got, err := ListOrStringy("a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].String())

	got, err = ListOrStringy([]string{"b", "c"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListOr_Generic(t *testing.T) {
	t.Parallel()

	got, err := ListOr[bool](true)
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, got)

	_, err = ListOr[bool](1)
	assert.EqualError(t, err, "For type check: expected bool or list<bool> got int (1)")
}
