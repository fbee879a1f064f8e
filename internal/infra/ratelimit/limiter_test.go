package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AllowWithinLimit(t *testing.T) {
	t.Parallel()

	limiter := New(3, time.Minute, 10)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("caller-a"))
	}
	assert.False(t, limiter.Allow("caller-a"))

	// A different key has its own budget.
	assert.True(t, limiter.Allow("caller-b"))
}

func TestLimiter_WindowResets(t *testing.T) {
	t.Parallel()

	current := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	limiter := New(2, time.Minute, 10, WithClock(func() time.Time { return current }))

	assert.True(t, limiter.Allow("caller"))
	assert.True(t, limiter.Allow("caller"))
	assert.False(t, limiter.Allow("caller"))

	current = current.Add(time.Minute)

	assert.True(t, limiter.Allow("caller"))
}

func TestLimiter_EvictsExpiredKeysAtCapacity(t *testing.T) {
	t.Parallel()

	current := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	limiter := New(5, time.Minute, 2, WithClock(func() time.Time { return current }))

	assert.True(t, limiter.Allow("old-1"))
	assert.True(t, limiter.Allow("old-2"))

	// Capacity reached and no window has expired yet, new keys fail closed.
	assert.False(t, limiter.Allow("new-1"))

	current = current.Add(2 * time.Minute)

	assert.True(t, limiter.Allow("new-1"))
}
