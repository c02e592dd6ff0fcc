package cache

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCache_PutGet(t *testing.T) {
	c, err := NewResourceCache(8)
	require.NoError(t, err)

	payload := json.RawMessage(`{"objects": [{"id": 7}]}`)
	c.Put("sketches/7", payload)

	got, ok := c.Get("sketches/7")
	assert.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestResourceCache_Miss(t *testing.T) {
	c, err := NewResourceCache(8)
	require.NoError(t, err)

	got, ok := c.Get("sketches/404")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestResourceCache_Eviction(t *testing.T) {
	c, err := NewResourceCache(2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		c.Put(fmt.Sprintf("sketches/%d", i), json.RawMessage(`{}`))
	}

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("sketches/0")
	assert.False(t, ok, "oldest entry should have been evicted")
}

func TestResourceCache_InvalidSize(t *testing.T) {
	_, err := NewResourceCache(0)
	assert.Error(t, err)
}
