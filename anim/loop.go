package anim

import (
	"context"
	"time"

	"github.com/sourceful-energy/pixelgrid/pattern"
)

// DefaultInterval is the tick interval Loop uses when none is configured.
const DefaultInterval = 16 * time.Millisecond

// LoopConfig configures Loop.
type LoopConfig struct {
	// Interval between clock reads. Frame advances are derived from elapsed
	// wall time, so the interval only bounds latency.
	Interval time.Duration

	// Control carries mutations (pause, pattern switches, redraw requests)
	// that must run on the loop goroutine. Each received function is applied
	// to the animator and followed by an OnFrame call.
	Control <-chan func(*Animator)

	// OnFrame is called once at start, after every frame change and after
	// every control function.
	OnFrame func(index int, active pattern.Bitmap)
}

// Loop drives a until ctx is cancelled or a is disposed. The ticker it
// acquires is released before Loop returns, and OnFrame is never called
// after that. Loop returns ctx.Err() on cancellation and nil on disposal.
func Loop(ctx context.Context, a *Animator, cfg LoopConfig) error {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	emit := func() {
		if cfg.OnFrame != nil {
			cfg.OnFrame(a.Index(), a.Active())
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	emit()
	last := time.Now()
	for {
		if a.Disposed() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn, ok := <-cfg.Control:
			if !ok {
				cfg.Control = nil
				continue
			}
			fn(a)
			if !a.Disposed() {
				emit()
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if a.Update(dt) {
				emit()
			}
		}
	}
}
