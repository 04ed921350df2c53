package pattern

import (
	"fmt"
	"strconv"
)

// Dimension is the side length of a square grid.
type Dimension int

const (
	Dim3 Dimension = 3
	Dim4 Dimension = 4
	Dim5 Dimension = 5
	Dim6 Dimension = 6
)

// Dimensions lists every supported grid dimension in ascending order.
var Dimensions = []Dimension{Dim3, Dim4, Dim5, Dim6}

// Valid reports whether d is one of the supported dimensions.
func (d Dimension) Valid() bool {
	return d >= Dim3 && d <= Dim6
}

// Cells returns the number of pixels in the grid (d²).
func (d Dimension) Cells() int {
	return int(d) * int(d)
}

// Index converts grid coordinates to a row-major pixel index.
func (d Dimension) Index(x, y int) PixelIndex {
	return PixelIndex(y*int(d) + x)
}

// XY converts a pixel index back to grid coordinates.
func (d Dimension) XY(i PixelIndex) (x, y int) {
	return int(i) % int(d), int(i) / int(d)
}

// String returns the "NxN" form, e.g. "4x4".
func (d Dimension) String() string {
	n := strconv.Itoa(int(d))
	return n + "x" + n
}

// ParseDimension accepts "4", "4x4" or "4×4".
func ParseDimension(s string) (Dimension, error) {
	for _, d := range Dimensions {
		n := strconv.Itoa(int(d))
		if s == n || s == d.String() || s == n+"×"+n {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDimension, s)
}
