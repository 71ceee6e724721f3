package lru_test

import (
	"testing"

	"github.com/KimNorgaard/go-ssml/lru"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := lru.New[string, int](capacity)
		require.Error(t, err)
		require.Contains(t, err.Error(), "capacity must be a positive integer")
	}
}

func TestCache_SetGet(t *testing.T) {
	c, err := lru.New[string, int](2)
	require.NoError(t, err)

	_, ok := c.Get("a")
	require.False(t, ok)
	require.False(t, c.Has("a"))

	c.Set("a", 1)
	require.True(t, c.Has("a"))
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	c.Set("a", 2)
	v, _ = c.Get("a")
	require.Equal(t, 2, v)
	require.Equal(t, 1, c.Len())
	require.Equal(t, 2, c.Cap())
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, err := lru.New[string, int](2)
	require.NoError(t, err)

	c.Set("a", 1)
	c.Set("b", 2)

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", 3)
	require.False(t, c.Has("b"))
	require.True(t, c.Has("a"))
	require.True(t, c.Has("c"))
	require.Equal(t, 2, c.Len())
}

func TestCache_HasRefreshesRecency(t *testing.T) {
	c, err := lru.New[string, int](2)
	require.NoError(t, err)

	c.Set("a", 1)
	c.Set("b", 2)
	require.True(t, c.Has("a"))

	c.Set("c", 3)
	require.True(t, c.Has("a"))
	require.False(t, c.Has("b"))
}

func TestCache_OverwriteRefreshesRecency(t *testing.T) {
	c, err := lru.New[string, int](2)
	require.NoError(t, err)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 10)

	c.Set("c", 3)
	require.False(t, c.Has("b"))
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 10, v)
}

func TestCache_CapacityOne(t *testing.T) {
	c, err := lru.New[int, string](1)
	require.NoError(t, err)

	c.Set(1, "one")
	c.Set(2, "two")
	require.False(t, c.Has(1))
	v, ok := c.Get(2)
	require.True(t, ok)
	require.Equal(t, "two", v)
	require.Equal(t, 1, c.Len())
}
