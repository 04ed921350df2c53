// Package term renders pixel grids in a terminal.
//
// [Preview] animates one pattern on a tcell screen and takes keyboard
// control (pause, next, previous, colour, quit). [RenderStatic] and
// [RenderPattern] return lipgloss-styled strings for plain output such as
// `zapgen show`.
//
// Every cell is two columns wide so the grid looks square in most fonts.
// Lit cells use the full palette colour; off cells use a dimmer glyph in the
// colour blended 10% over the background, like the ebiten renderer.
package term

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sourceful-energy/pixelgrid/pattern"
)

const (
	onGlyph  = '█'
	offGlyph = '░'

	// CellWidth is the number of terminal columns per grid cell.
	CellWidth = 2

	offOpacity = 0.1
)

var background = colorful.Color{}

// cellColors returns the lit and unlit colours for c over a black
// background.
func cellColors(c pattern.ColorName) (on, off colorful.Color) {
	on = c.Resolve().Colorful()
	off = background.BlendRgb(on, offOpacity).Clamped()
	return on, off
}

// GridSize returns the terminal columns and rows a grid occupies.
func GridSize(dim pattern.Dimension) (cols, rows int) {
	return int(dim) * CellWidth, int(dim)
}
