package jsonget

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) any {
	t.Helper()
	v, err := Parse([]byte(src))
	require.NoError(t, err)
	return v
}

func TestParsePath(t *testing.T) {
	cases := []struct {
		expr string
		want Path
	}{
		{"a", Path{"a"}},
		{"a.b.c", Path{"a", "b", "c"}},
		{"", Path{""}},
		{"a..b", Path{"a", "", "b"}},
		{".a", Path{"", "a"}},
	}
	for _, tc := range cases {
		t.Run("expr "+tc.expr, func(t *testing.T) {
			p := ParsePath(tc.expr)
			require.Equal(t, tc.want, p)
			assert.Equal(t, tc.expr, p.String())
		})
	}
}

func TestWalk(t *testing.T) {
	root := parse(t, `{"a": {"b": 42, "s": "hello", "n": null}, "x": [1,2,3], "": {"e": true}}`)

	t.Run("nested key resolves", func(t *testing.T) {
		v, err := Get(root, "a.b")
		require.NoError(t, err)
		assert.Equal(t, Number("42"), v)
	})

	t.Run("composite value resolves", func(t *testing.T) {
		v, err := Get(root, "x")
		require.NoError(t, err)
		assert.Equal(t, Array{Number("1"), Number("2"), Number("3")}, v)
	})

	t.Run("null value resolves", func(t *testing.T) {
		v, err := Get(root, "a.n")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("empty expression looks up empty key", func(t *testing.T) {
		v, err := Get(root, "")
		require.NoError(t, err)
		assert.Equal(t, Document{{Key: "e", Value: true}}, v)
	})

	t.Run("empty path returns root", func(t *testing.T) {
		v, err := Walk(root, Path{})
		require.NoError(t, err)
		assert.Equal(t, root, v)
	})

	t.Run("missing key fails", func(t *testing.T) {
		v, err := Get(root, "a.missing")
		require.Error(t, err)
		assert.Nil(t, v)
		assert.ErrorIs(t, err, ErrKeyNotFound)

		var pe *PathError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 1, pe.Index)
		assert.Equal(t, `key "missing" at "a.missing": key not found`, pe.Error())
	})

	t.Run("string key into array fails", func(t *testing.T) {
		_, err := Get(root, "x.y")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotObject)
		assert.Contains(t, err.Error(), "array")
	})

	t.Run("key into scalar fails", func(t *testing.T) {
		for _, expr := range []string{"a.b.c", "a.s.len", "a.n.x"} {
			_, err := Get(root, expr)
			require.Error(t, err, "expr %s", expr)
			assert.ErrorIs(t, err, ErrNotObject, "expr %s", expr)
			assert.False(t, errors.Is(err, ErrKeyNotFound), "expr %s", expr)
		}
	})

	t.Run("scalar root fails", func(t *testing.T) {
		_, err := Get(parse(t, `7`), "a")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotObject)
	})

	t.Run("plain map values are walked", func(t *testing.T) {
		m := map[string]any{"a": map[string]any{"b": "c"}}
		v, err := Get(m, "a.b")
		require.NoError(t, err)
		assert.Equal(t, "c", v)
	})
}

func TestLookup(t *testing.T) {
	t.Run("file lookup resolves", func(t *testing.T) {
		v, err := Lookup(writeFile(t, `{"a": "hello"}`), "a")
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})

	t.Run("file errors propagate", func(t *testing.T) {
		_, err := Lookup(writeFile(t, `{"a":`), "a")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSyntax)
	})
}
