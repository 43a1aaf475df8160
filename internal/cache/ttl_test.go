package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTL_GetSet(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("occupancy:abc", []byte(`{"total":1}`))

	data, ok := c.Get("occupancy:abc")
	require.True(t, ok)
	assert.JSONEq(t, `{"total":1}`, string(data))
}

func TestTTL_Expiration(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("payroll:1", []byte("x"))

	now = now.Add(2 * time.Minute)
	_, ok := c.Get("payroll:1")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.evictExpired()
	assert.Zero(t, c.Len())
}

func TestTTL_StopIsIdempotent(t *testing.T) {
	c := New(time.Minute)
	c.Stop()
	assert.NotPanics(t, c.Stop)
}
