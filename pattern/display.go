package pattern

import (
	"fmt"
	"time"
)

// Speed selects the default cycle duration for patterns that do not carry
// their own. The zero value is SpeedNormal.
type Speed uint8

const (
	SpeedNormal Speed = iota
	SpeedSlow
	SpeedFast
)

var speedNames = [...]string{"normal", "slow", "fast"}

// Cycle returns the default cycle duration for the speed.
func (s Speed) Cycle() time.Duration {
	switch s {
	case SpeedSlow:
		return 2000 * time.Millisecond
	case SpeedFast:
		return 1000 * time.Millisecond
	default:
		return DefaultCycle
	}
}

// DefaultCycle is the cycle length at normal speed.
const DefaultCycle = 1500 * time.Millisecond

func (s Speed) String() string {
	if int(s) < len(speedNames) {
		return speedNames[s]
	}
	return fmt.Sprintf("Speed(%d)", uint8(s))
}

// ParseSpeed accepts "slow", "normal" or "fast".
func ParseSpeed(s string) (Speed, error) {
	for i, n := range speedNames {
		if s == n {
			return Speed(i), nil
		}
	}
	return 0, fmt.Errorf("pattern: unknown speed %q", s)
}

// Size selects the on-screen pixel size and gap. The zero value is SizeMedium.
type Size uint8

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
)

var sizeNames = [...]string{"md", "sm", "lg"}

// Sizes lists every size in comparison order: sm, md, lg.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

func (s Size) String() string {
	if int(s) < len(sizeNames) {
		return sizeNames[s]
	}
	return fmt.Sprintf("Size(%d)", uint8(s))
}

// ParseSize accepts "sm", "md" or "lg".
func ParseSize(s string) (Size, error) {
	for i, n := range sizeNames {
		if s == n {
			return Size(i), nil
		}
	}
	return 0, fmt.Errorf("pattern: unknown size %q", s)
}

// Geometry is the cell layout for a size.
type Geometry struct {
	Pixel int // side of one cell in pixels
	Gap   int // space between adjacent cells
}

// Geometry returns the pixel and gap sizes for s.
func (s Size) Geometry() Geometry {
	switch s {
	case SizeSmall:
		return Geometry{Pixel: 6, Gap: 2}
	case SizeLarge:
		return Geometry{Pixel: 14, Gap: 4}
	default:
		return Geometry{Pixel: 10, Gap: 3}
	}
}

// Extent returns the total side length of a dim×dim grid:
// Pixel*dim + Gap*(dim-1).
func (g Geometry) Extent(dim Dimension) int {
	d := int(dim)
	if d <= 0 {
		return 0
	}
	return g.Pixel*d + g.Gap*(d-1)
}

// CellOrigin returns the top-left corner of cell i in grid-local pixels.
func (g Geometry) CellOrigin(dim Dimension, i PixelIndex) (x, y int) {
	cx, cy := dim.XY(i)
	step := g.Pixel + g.Gap
	return cx * step, cy * step
}
