package worker

import (
	"math"
	"math/rand"
	"time"
)

// ExponentialBackoff doubles base per attempt, capped, plus up to 50ms jitter.
// attempt=0 => base, attempt=1 => 2*base, ...
func ExponentialBackoff(attempt int, base, capDelay time.Duration) time.Duration {
	if base <= 0 {
		base = 200 * time.Millisecond
	}
	if capDelay <= 0 {
		capDelay = 10 * time.Second
	}
	if attempt < 0 {
		attempt = 0
	}

	multiple := math.Pow(2, float64(attempt))
	delay := time.Duration(float64(base) * multiple)

	if delay > capDelay || delay <= 0 {
		delay = capDelay
	}

	delay += time.Duration(rand.Intn(50)) * time.Millisecond
	return delay
}
