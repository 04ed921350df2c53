// Package anim is the headless timing state machine behind every pixel grid.
//
// An [Animator] owns the frame counter for one grid. It has no clock of its
// own: callers feed it elapsed time through [Animator.Update], either from a
// game loop (the ebiten renderer) or from [Loop], which acquires a ticker and
// releases it when its context ends. Each Animator is independent; there is
// no shared scheduler.
package anim

import (
	"time"

	"github.com/sourceful-energy/pixelgrid/pattern"
)

// Options configures an Animator. The zero value animates at normal speed.
type Options struct {
	Speed  pattern.Speed
	Static bool // show the fullest frame and never advance
	Paused bool
}

// Animator steps through the frames of one pattern. It is not safe for
// concurrent use; drive it from a single goroutine.
type Animator struct {
	pat      pattern.Pattern
	dim      pattern.Dimension
	opts     Options
	index    int
	elapsed  time.Duration
	active   pattern.Bitmap
	disposed bool
}

// New returns an Animator positioned on the first frame, or on the fullest
// frame when opts.Static is set.
func New(p pattern.Pattern, dim pattern.Dimension, opts Options) *Animator {
	a := &Animator{dim: dim, opts: opts}
	a.SetPattern(p)
	return a
}

// SetPattern replaces the pattern and restarts timing from the first frame.
// Any partially elapsed interval of the previous pattern is discarded.
func (a *Animator) SetPattern(p pattern.Pattern) {
	a.pat = p
	a.restart()
}

// SetDimension changes the grid the active bitmap is sized for and restarts
// timing.
func (a *Animator) SetDimension(dim pattern.Dimension) {
	a.dim = dim
	a.restart()
}

// SetSpeed changes the default cycle used for patterns without their own
// CycleDuration. The frame index is kept.
func (a *Animator) SetSpeed(s pattern.Speed) {
	a.opts.Speed = s
	a.elapsed = 0
}

// SetStatic switches between animated and static display.
func (a *Animator) SetStatic(static bool) {
	a.opts.Static = static
	a.restart()
}

func (a *Animator) restart() {
	a.elapsed = 0
	a.index = 0
	if a.opts.Static {
		if i := a.pat.Fullest(); i >= 0 {
			a.index = i
		}
	}
	a.publish()
}

// Pause stops frame advancement. The current frame stays visible and any
// time already elapsed towards the next frame is dropped.
func (a *Animator) Pause() {
	a.opts.Paused = true
	a.elapsed = 0
}

// Resume continues from the frame that was showing when Pause was called.
// The partial interval from before the pause is not restored, so the next
// advance happens one full frame duration after Resume.
func (a *Animator) Resume() {
	a.opts.Paused = false
	a.elapsed = 0
}

// Paused reports whether the animator is paused.
func (a *Animator) Paused() bool { return a.opts.Paused }

// Static reports whether the animator shows a single fixed frame.
func (a *Animator) Static() bool { return a.opts.Static }

// Dispose stops the animator permanently. Update becomes a no-op.
func (a *Animator) Dispose() {
	a.disposed = true
}

// Disposed reports whether Dispose has been called.
func (a *Animator) Disposed() bool { return a.disposed }

// Pattern returns the current pattern.
func (a *Animator) Pattern() pattern.Pattern { return a.pat }

// Index returns the current frame index.
func (a *Animator) Index() int { return a.index }

// Active returns the lit pixels of the current frame as a bitmap of length
// dim². The returned slice must not be modified.
func (a *Animator) Active() pattern.Bitmap { return a.active }

// FrameDuration returns the interval between frame advances.
func (a *Animator) FrameDuration() time.Duration {
	return a.pat.FrameDuration(a.opts.Speed)
}

// Running reports whether Update can advance the frame.
func (a *Animator) Running() bool {
	return !a.disposed && !a.opts.Paused && !a.opts.Static && len(a.pat.Frames) > 1
}

// Update advances the clock by dt and returns true if the visible frame
// changed. Large steps advance several frames so the animation keeps phase
// with wall time.
func (a *Animator) Update(dt time.Duration) bool {
	if !a.Running() || dt <= 0 {
		return false
	}
	fd := a.FrameDuration()
	if fd <= 0 {
		return false
	}
	a.elapsed += dt
	if a.elapsed < fd {
		return false
	}
	steps := int(a.elapsed / fd)
	a.elapsed -= time.Duration(steps) * fd
	a.index = (a.index + steps) % len(a.pat.Frames)
	a.publish()
	return true
}

func (a *Animator) publish() {
	if a.index < len(a.pat.Frames) {
		a.active = a.pat.Frames[a.index].Bitmap(a.dim)
		return
	}
	a.active = make(pattern.Bitmap, a.dim.Cells())
}
