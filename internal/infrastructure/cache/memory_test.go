package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_AddOnlyOnce(t *testing.T) {
	s := NewMemoryStore(time.Minute, time.Minute)

	assert.True(t, s.Add("10.0.0.1", 1, time.Minute))
	assert.False(t, s.Add("10.0.0.1", 2, time.Minute))

	v, ok := s.Get("10.0.0.1")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore(time.Minute, time.Minute)

	s.Set("10.0.0.2", "x", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := s.Get("10.0.0.2")
	assert.False(t, ok)
	// expired but not yet evicted entries can be replaced with Add
	assert.True(t, s.Add("10.0.0.2", "y", time.Minute))
}
