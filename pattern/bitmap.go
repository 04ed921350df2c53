package pattern

import "sort"

// Bitmap is the flattened form of a frame: one byte per pixel, 1 = on,
// 0 = off. Its length is always Dimension.Cells(). It is the canonical
// intermediate shared by the renderer's active set and every generator
// backend.
type Bitmap []uint8

// Bitmap converts the frame's active set to a Bitmap for the given grid.
// Indices outside the grid are dropped; catalogs are validated on load so
// this only matters for hand-built frames.
func (f Frame) Bitmap(dim Dimension) Bitmap {
	b := make(Bitmap, dim.Cells())
	for _, px := range f.Active {
		if px >= 0 && int(px) < len(b) {
			b[px] = 1
		}
	}
	return b
}

// Bitmaps converts every frame of p, in order.
func (p Pattern) Bitmaps(dim Dimension) []Bitmap {
	out := make([]Bitmap, len(p.Frames))
	for i, f := range p.Frames {
		out[i] = f.Bitmap(dim)
	}
	return out
}

// On reports whether pixel i is lit. Out-of-range indices are off.
func (b Bitmap) On(i PixelIndex) bool {
	return i >= 0 && int(i) < len(b) && b[i] != 0
}

// Count returns the number of lit pixels.
func (b Bitmap) Count() int {
	n := 0
	for _, v := range b {
		if v != 0 {
			n++
		}
	}
	return n
}

// Indices returns the lit pixels in ascending order.
func (b Bitmap) Indices() []PixelIndex {
	out := make([]PixelIndex, 0, len(b))
	for i, v := range b {
		if v != 0 {
			out = append(out, PixelIndex(i))
		}
	}
	return out
}

// Equal reports whether a and b have the same length and lit pixels.
func (b Bitmap) Equal(other Bitmap) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if (b[i] != 0) != (other[i] != 0) {
			return false
		}
	}
	return true
}

// SortedSet returns the distinct pixels of a frame in ascending order.
func (f Frame) SortedSet() []PixelIndex {
	seen := make(map[PixelIndex]struct{}, len(f.Active))
	out := make([]PixelIndex, 0, len(f.Active))
	for _, px := range f.Active {
		if _, ok := seen[px]; ok {
			continue
		}
		seen[px] = struct{}{}
		out = append(out, px)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
