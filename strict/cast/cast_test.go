//go:build unit

package cast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/LerianStudio/lib-strict/strict"
	"github.com/LerianStudio/lib-strict/strict/kind"
	"github.com/LerianStudio/lib-strict/strict/seq"
)

func keysOf[V any](m *orderedmap.OrderedMap[string, V]) []string {
	var keys []string
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

func TestList_Renumbers(t *testing.T) {
	t.Parallel()

	src := orderedmap.New[string, any]()
	src.Set("0", "a")
	src.Set("foo", "b")
	src.Set("5", "c")

	got, err := ListString(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestList_Empty(t *testing.T) {
	t.Parallel()

	got, err := ListInt([]any{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_Failure(t *testing.T) {
	t.Parallel()

	got, err := ListInt([]any{1, nil}, "ids")
	assert.Nil(t, got)
	assert.EqualError(t, err, "For ids: expected int got nil (null)")

	_, err = ListString("abc")
	require.ErrorIs(t, err, strict.ErrTypeMismatch)
	assert.EqualError(t, err, `For type check: expected iterable<string> got string ("abc")`)
}

func TestMap_KeyCollision(t *testing.T) {
	t.Parallel()

	src := func(yield func(any, any) bool) {
		_ = yield("foo", "Foo!") && yield(1, "One!") && yield("1", "Uno!")
	}

	got, err := MapString(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "1"}, keysOf(got))

	one, ok := got.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Uno!", one)
}

func TestMap_Stringifies(t *testing.T) {
	t.Parallel()

	src := func(yield func(any, any) bool) {
		_ = yield("foo", "Foo!") && yield(1, "One!")
	}

	got, err := MapString(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "1"}, keysOf(got))
	assert.Equal(t, 2, got.Len())
}

func TestMap_Failure(t *testing.T) {
	t.Parallel()

	_, err := MapInt(map[bool]any{true: 1})
	require.ErrorIs(t, err, strict.ErrInvalidKey)

	_, err = MapFloat(map[string]any{"a": "1.5"}, "rates")
	assert.EqualError(t, err, `For rates: expected float got string ("1.5")`)
}

func TestEagerMatchesLazy(t *testing.T) {
	t.Parallel()

	inputs := []any{
		[]any{1, 2, 3},
		map[string]any{"b": 2, "a": 1},
		map[int]any{3: 30, 1: 10},
		[3]int{7, 8, 9},
	}

	for _, input := range inputs {
		eager, err := List(input, kind.Int)
		require.NoError(t, err)

		var lazy []int
		it := seq.List(input, kind.Int)
		for _, v := range it.All() {
			lazy = append(lazy, v)
		}

		require.NoError(t, it.Err())
		assert.Equal(t, eager, lazy)

		eagerMap, err := Map(input, kind.Int)
		require.NoError(t, err)

		var lazyKeys []string
		lazyMap := seq.Map(input, kind.Int)
		for k := range lazyMap.All() {
			lazyKeys = append(lazyKeys, k)
		}

		assert.Equal(t, keysOf(eagerMap), lazyKeys)
	}
}

func TestHelpers(t *testing.T) {
	t.Parallel()

	values, err := Values(map[string]any{"x": 1, "y": "z"})
	require.NoError(t, err)
	assert.Equal(t, []any{1, "z"}, values)

	pairs, err := Pairs([]any{"a"})
	require.NoError(t, err)
	v, _ := pairs.Get("0")
	assert.Equal(t, "a", v)

	nullable, err := ListNullableString([]any{nil})
	require.NoError(t, err)
	assert.Equal(t, []*string{nil}, nullable)

	stringers, err := ListStringy([]any{"s"})
	require.NoError(t, err)
	assert.Equal(t, "s", stringers[0].String())

	nullStringers, err := ListNullableStringy([]any{nil})
	require.NoError(t, err)
	assert.Nil(t, nullStringers[0])

	floats, err := ListFloat([]any{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, floats)

	mixed, err := ListStringOrListString([]any{"a", []any{"b"}})
	require.NoError(t, err)
	assert.True(t, mixed[1].IsMany)

	m, err := MapStringOrListString(map[string]any{"k": []any{"v"}})
	require.NoError(t, err)
	entry, _ := m.Get("k")
	assert.Equal(t, []string{"v"}, entry.Values())

	ns, err := MapNullableString(map[string]any{"k": nil})
	require.NoError(t, err)
	nv, _ := ns.Get("k")
	assert.Nil(t, nv)

	sm, err := MapStringy(map[string]any{"k": "v"})
	require.NoError(t, err)
	sv, _ := sm.Get("k")
	assert.Equal(t, "v", sv.String())

	nsm, err := MapNullableStringy(map[string]any{"k": nil})
	require.NoError(t, err)
	nsv, _ := nsm.Get("k")
	assert.Nil(t, nsv)
}
