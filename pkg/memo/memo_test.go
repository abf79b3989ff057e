package memo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	cache, err := NewLRU[string, int](2)
	require.NoError(t, err)

	cache.Add("a", 1)
	cache.Add("b", 2)

	// "a" становится самым свежим
	v, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	cache.Add("c", 3)

	_, ok = cache.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, cache.Len())

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestNew(t *testing.T) {
	disabled, err := New[string, int](0)
	require.NoError(t, err)
	disabled.Add("a", 1)
	_, ok := disabled.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, disabled.Len())

	enabled, err := New[string, int](8)
	require.NoError(t, err)
	enabled.Add("a", 1)
	v, ok := enabled.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}
