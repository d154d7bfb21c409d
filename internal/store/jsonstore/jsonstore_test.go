package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissing(t *testing.T) {
	s := New(t.TempDir())
	b, ok, err := s.Get("cart")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, b)
}

func TestPutThenGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := New(dir)

	require.NoError(t, s.Put("cart", []byte(`[{"id":1,"quantity":2}]`)))

	raw, err := os.ReadFile(filepath.Join(dir, "cart.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  ")

	b, ok, err := s.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1,"quantity":2}]`, string(b))
}

func TestPutOverwrites(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Put("cart", []byte(`[1,2,3]`)))
	require.NoError(t, s.Put("cart", []byte(`[]`)))

	b, ok, err := s.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[]`, string(b))
}

func TestPutKeepsNonJSONBytes(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Put("cart", []byte("not json")))

	b, _, err := s.Get("cart")
	require.NoError(t, err)
	assert.Equal(t, "not json", string(b))
}
