// Package delay simulates network latency for the in-memory data sources.
package delay

import (
	"context"
	"time"
)

// Simulator waits for a scaled duration. A zero Scale disables waiting.
type Simulator struct {
	Scale float64
}

// None never waits.
var None = Simulator{}

// Wait blocks for d*Scale or until ctx is done.
func (s Simulator) Wait(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * s.Scale)
	if scaled <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
