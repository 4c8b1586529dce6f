package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	limiter := NewLimiter(1.0, 3)

	assert.True(t, limiter.Allow("api.example.com"))
	assert.True(t, limiter.Allow("api.example.com"))
	assert.True(t, limiter.Allow("api.example.com"))
	assert.False(t, limiter.Allow("api.example.com"), "fourth request should be throttled")
}

func TestLimiter_HostsAreIndependent(t *testing.T) {
	limiter := NewLimiter(1.0, 1)

	assert.True(t, limiter.Allow("host-a"))
	assert.False(t, limiter.Allow("host-a"))
	assert.True(t, limiter.Allow("host-b"), "host-b has its own bucket")
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	limiter := NewLimiter(0.1, 1) // one token per 10s
	require.True(t, limiter.Allow("slow-host"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx, "slow-host")
	assert.Error(t, err, "wait should abort when the context expires")
}

func TestLimiter_Reset(t *testing.T) {
	limiter := NewLimiter(1.0, 1)
	require.True(t, limiter.Allow("host"))
	require.False(t, limiter.Allow("host"))

	limiter.Reset()
	assert.True(t, limiter.Allow("host"), "reset should refill the bucket")
}
