package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_WithinBurst(t *testing.T) {
	l := NewLimiter(Config{RequestsPerMinute: 60, Burst: 5})
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("client-a")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 5, info.Limit)
	}
}

func TestAllow_ExhaustedBucket(t *testing.T) {
	l := NewLimiter(Config{RequestsPerMinute: 60, Burst: 2})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.True(t, allowed)

	allowed, info := l.Allow("client-a")
	assert.False(t, allowed)
	assert.Positive(t, info.RetryAfter)
}

func TestAllow_ClientsIsolated(t *testing.T) {
	l := NewLimiter(Config{RequestsPerMinute: 60, Burst: 1})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	allowed, _ = l.Allow("client-b")
	assert.True(t, allowed, "another client must have its own bucket")
}

func TestAllow_RemainingDecreases(t *testing.T) {
	l := NewLimiter(Config{RequestsPerMinute: 60, Burst: 3})
	defer l.Stop()

	_, info := l.Allow("client-a")
	first := info.Remaining
	_, info = l.Allow("client-a")
	assert.Less(t, info.Remaining, first)
}

func TestNewLimiter_ZeroConfigFallsBackToDefaults(t *testing.T) {
	l := NewLimiter(Config{})
	defer l.Stop()

	allowed, info := l.Allow("client-a")
	assert.True(t, allowed)
	assert.Equal(t, DefaultConfig().Burst, info.Limit)
}
