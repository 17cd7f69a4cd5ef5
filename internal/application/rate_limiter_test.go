package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		ok, err := rl.Allow("1.2.3.4")
		assert.True(t, ok)
		assert.NoError(t, err)
	}

	ok, err := rl.Allow("1.2.3.4")
	assert.False(t, ok)
	assert.Error(t, err)

	// Other identifiers are unaffected.
	ok, _ = rl.Allow("5.6.7.8")
	assert.True(t, ok)
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := NewRateLimiter(30*time.Millisecond, 1)

	ok, _ := rl.Allow("ip")
	assert.True(t, ok)
	ok, _ = rl.Allow("ip")
	assert.False(t, ok)

	time.Sleep(50 * time.Millisecond)
	ok, _ = rl.Allow("ip")
	assert.True(t, ok)
}

func TestRateLimiterReset(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 1)

	rl.Allow("ip")
	rl.Reset("ip")

	ok, _ := rl.Allow("ip")
	assert.True(t, ok)
	assert.Equal(t, 1, rl.Size())
}
