package feed

import (
	"context"
	"time"
)

// Scheduler emits one regenerate tick per interval. A single timer drives
// it, so ticks never overlap; emission is decoupled from reduction by the
// feed's ordered event channel.
type Scheduler struct {
	// Interval is the period between ticks.
	Interval time.Duration

	// MaxTicks bounds the number of ticks when positive; zero means run
	// until the context is cancelled. Fixed at construction: there is no
	// runtime switch.
	MaxTicks int
}

// Run blocks, emitting ticks until the context is cancelled, the tick budget
// is exhausted, or emit reports the feed is closed.
func (s Scheduler) Run(ctx context.Context, emit func() error) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	ticks := 0
	for {
		select {
		case <-ticker.C:
			if err := emit(); err != nil {
				return
			}
			ticks++
			if s.MaxTicks > 0 && ticks >= s.MaxTicks {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
