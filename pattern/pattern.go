// Package pattern defines the frame-based LED pattern model shared by the
// pixel grid renderer and the code generator.
//
// A [Pattern] is an ordered list of [Frame] values. Each frame lists the
// pixels that are lit at that instant; every other pixel is off. Colour is
// never stored in a frame, it is applied uniformly at render or generation
// time from the three-entry palette (see [ColorName]).
//
// Patterns live in immutable [Catalog] values, one per grid dimension, and
// catalogs are grouped into a [Library] that renderers and generators receive
// as a read-only dependency.
package pattern

import (
	"fmt"
	"time"
)

// PixelIndex identifies one cell of a row-major N×N grid: index = y*N + x.
type PixelIndex int

// Frame is one instant of an animation.
type Frame struct {
	// Active lists the lit pixels. Order is irrelevant and duplicates are
	// tolerated; consumers treat it as a set.
	Active []PixelIndex

	// Duration is an optional per-frame override in milliseconds. The
	// renderer and generator always slice the cycle uniformly and ignore it.
	Duration int
}

// Pattern is a named, looping sequence of frames.
type Pattern struct {
	Name        string
	Description string
	Frames      []Frame

	// CycleDuration is the length of one full loop. Zero means the caller
	// supplies a default (see Speed.Cycle).
	CycleDuration time.Duration
}

// Len returns the number of frames.
func (p Pattern) Len() int {
	return len(p.Frames)
}

// Cycle returns the effective loop duration: the pattern's own
// CycleDuration when set, otherwise the default for speed.
func (p Pattern) Cycle(speed Speed) time.Duration {
	if p.CycleDuration > 0 {
		return p.CycleDuration
	}
	return speed.Cycle()
}

// FrameDuration returns Cycle(speed) divided evenly across all frames.
// Returns 0 for a pattern with no frames.
func (p Pattern) FrameDuration(speed Speed) time.Duration {
	if len(p.Frames) == 0 {
		return 0
	}
	return p.Cycle(speed) / time.Duration(len(p.Frames))
}

// Fullest returns the index of the frame with the most active pixels. Ties
// resolve to the earliest frame, so the result is stable across calls.
// Returns -1 for a pattern with no frames.
func (p Pattern) Fullest() int {
	best := -1
	for i, f := range p.Frames {
		if best < 0 || len(f.Active) > len(p.Frames[best].Active) {
			best = i
		}
	}
	return best
}

// Validate reports whether the pattern is renderable on a grid of the given
// dimension: it must have at least one frame and every active pixel must be
// inside the grid.
func (p Pattern) Validate(dim Dimension) error {
	if !dim.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDimension, int(dim))
	}
	if len(p.Frames) == 0 {
		return ErrEmptyPattern
	}
	cells := PixelIndex(dim.Cells())
	for i, f := range p.Frames {
		for _, px := range f.Active {
			if px < 0 || px >= cells {
				return fmt.Errorf("frame %d: %w: %d not in [0, %d)", i, ErrPixelOutOfRange, px, cells)
			}
		}
	}
	return nil
}
