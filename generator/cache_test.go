package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_ComputesOnce(t *testing.T) {
	c := NewCache[string]()
	calls := 0
	compute := func() (string, error) {
		calls++
		return "value", nil
	}

	v1, err := c.GetOrCompute("/a", compute)
	require.NoError(t, err)
	v2, err := c.GetOrCompute("/a", compute)
	require.NoError(t, err)

	assert.Equal(t, "value", v1)
	assert.Equal(t, "value", v2)
	assert.Equal(t, 1, calls)
	assert.True(t, c.Has("/a"))
	assert.Equal(t, 1, c.Len())
}

func TestCache_EmptyValueIsCached(t *testing.T) {
	c := NewCache[string]()
	calls := 0
	for i := 0; i < 3; i++ {
		_, err := c.GetOrCompute("/empty", func() (string, error) {
			calls++
			return "", nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, calls)
}

func TestCache_ErrorsNotCached(t *testing.T) {
	c := NewCache[int]()
	boom := errors.New("boom")

	_, err := c.GetOrCompute("/a", func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, c.Has("/a"))

	v, err := c.GetOrCompute("/a", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
