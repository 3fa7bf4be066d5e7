// Package random provides the seedable sampling and sleeping helpers used by
// the activity profiles.
package random

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Rand draws integers, probabilities and delays from a single seeded source.
// It is not safe for concurrent use; each profile loop owns its own Rand.
type Rand struct {
	rnd   *rand.Rand
	clock Clock
}

// New returns a Rand seeded with seed that sleeps through clock.
func New(seed int64, clock Clock) *Rand {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Rand{
		rnd:   rand.New(rand.NewSource(seed)),
		clock: clock,
	}
}

// NewFromTime seeds from the clock's current time.
func NewFromTime(clock Clock) *Rand {
	if clock == nil {
		clock = SystemClock{}
	}
	return New(clock.Now().UnixNano(), clock)
}

// Source exposes the underlying generator for helpers that take a *rand.Rand.
func (r *Rand) Source() *rand.Rand { return r.rnd }

// Clock returns the clock used by Sleep.
func (r *Rand) Clock() Clock { return r.clock }

// Int returns an integer uniformly distributed in [min, max].
// It panics if min > max.
func (r *Rand) Int(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("random: invalid range [%d, %d]", min, max))
	}
	return min + r.rnd.Intn(max-min+1)
}

// Chance reports true with probability p. p <= 0 is always false and
// p >= 1 is always true.
func (r *Rand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.rnd.Float64() < p
}

// Duration returns a whole number of milliseconds in [minMs, maxMs].
func (r *Rand) Duration(minMs, maxMs int) time.Duration {
	return time.Duration(r.Int(minMs, maxMs)) * time.Millisecond
}

// Sleep suspends for Duration(minMs, maxMs). It returns early with ctx.Err()
// if ctx is cancelled.
func (r *Rand) Sleep(ctx context.Context, minMs, maxMs int) error {
	return r.clock.Sleep(ctx, r.Duration(minMs, maxMs))
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](r *Rand, items []T) T {
	return items[r.Int(0, len(items)-1)]
}
