package jitter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_WithinBounds(t *testing.T) {
	base := time.Second

	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestDurationWithSeed_Deterministic(t *testing.T) {
	rngA := rand.New(rand.NewSource(1))
	rngB := rand.New(rand.NewSource(1))

	assert.Equal(t,
		DurationWithSeed(time.Second, DefaultJitter, rngA),
		DurationWithSeed(time.Second, DefaultJitter, rngB),
	)
}

func TestExponentialBackoff_GrowsAndCaps(t *testing.T) {
	base := 100 * time.Millisecond
	max := time.Second

	// attempt=0 остается около базы
	first := ExponentialBackoff(base, max, 0, 0)
	assert.Equal(t, base, first)

	// большое число попыток упирается в max (плюс джиттер)
	capped := ExponentialBackoff(base, max, 20, DefaultJitter)
	assert.GreaterOrEqual(t, capped, max)
	assert.LessOrEqual(t, capped, max+max/2)
}
