package watcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDoublesAndCaps(t *testing.T) {
	// Zero jitter makes delays exact.
	b := NewBackoffWithConfig(BackoffConfig{})

	var got []time.Duration
	for range BackoffSequence() {
		got = append(got, b.Next())
	}
	assert.Equal(t, BackoffSequence(), got)

	// Stays at the cap from here on.
	assert.Equal(t, MaxBackoff, b.Next())
	assert.Equal(t, MaxBackoff, b.Next())
}

func TestBackoffReset(t *testing.T) {
	b := NewBackoffWithConfig(BackoffConfig{})

	b.Next()
	b.Next()
	b.Next()
	assert.Equal(t, 3, b.Attempts())
	assert.Equal(t, 8*time.Second, b.Current())

	b.Reset()
	assert.Equal(t, 0, b.Attempts())
	assert.Equal(t, InitialBackoff, b.Current())
	assert.Equal(t, InitialBackoff, b.Next())
}

func TestBackoffPeekDoesNotAdvance(t *testing.T) {
	b := NewBackoffWithConfig(BackoffConfig{})

	assert.Equal(t, InitialBackoff, b.Peek())
	assert.Equal(t, InitialBackoff, b.Peek())
	assert.Equal(t, 0, b.Attempts())
}

func TestBackoffJitterBounds(t *testing.T) {
	b := NewBackoffWithConfig(BackoffConfig{Jitter: JitterFactor})

	for i := 0; i < 50; i++ {
		base := b.Current()
		delay := b.Next()
		assert.GreaterOrEqual(t, delay, base)
		assert.LessOrEqual(t, delay, base+time.Duration(float64(base)*JitterFactor))
	}
}

func TestBackoffCustomConfig(t *testing.T) {
	b := NewBackoffWithConfig(BackoffConfig{
		Initial:    Duration(10 * time.Millisecond),
		Max:        Duration(40 * time.Millisecond),
		Multiplier: 2,
	})

	assert.Equal(t, 10*time.Millisecond, b.Next())
	assert.Equal(t, 20*time.Millisecond, b.Next())
	assert.Equal(t, 40*time.Millisecond, b.Next())
	assert.Equal(t, 40*time.Millisecond, b.Next())
}
