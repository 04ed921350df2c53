package pattern

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorName is one of the three logical display colours. The zero value is
// Green.
type ColorName uint8

const (
	Green ColorName = iota
	Blue
	Pink
)

// Colors lists the palette in comparison order: blue, pink, green.
var Colors = []ColorName{Blue, Pink, Green}

// palette is the single colour table shared by the renderer and every
// generator backend. Values are bit-exact.
var palette = [...]struct {
	name string
	hex  string
}{
	Green: {"green", "#16a34a"},
	Blue:  {"blue", "#0ea5e9"},
	Pink:  {"pink", "#ec4899"},
}

func (c ColorName) String() string {
	if int(c) < len(palette) {
		return palette[c].name
	}
	return fmt.Sprintf("ColorName(%d)", uint8(c))
}

// ParseColor accepts "green", "blue" or "pink".
func ParseColor(s string) (ColorName, error) {
	for i, p := range palette {
		if s == p.name {
			return ColorName(i), nil
		}
	}
	return 0, fmt.Errorf("pattern: %w %q", ErrUnknownColor, s)
}

// Valid reports whether c names a palette entry.
func (c ColorName) Valid() bool { return int(c) < len(palette) }

// RGB is an 8-bit colour triple.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Swatch is a resolved palette entry.
type Swatch struct {
	Name ColorName
	Hex  string // lower-case "#rrggbb"
	RGB  RGB
}

// HexDigits returns the six upper-case hex digits without the leading '#'.
func (s Swatch) HexDigits() string {
	return fmt.Sprintf("%02X%02X%02X", s.RGB.R, s.RGB.G, s.RGB.B)
}

// Colorful returns the swatch as a go-colorful colour for blending.
func (s Swatch) Colorful() colorful.Color {
	c, _ := colorful.Hex(s.Hex)
	return c
}

// Glow returns a lightened variant of the swatch used for the dark-mode neon
// halo. It blends toward white in Lab space so the hue is preserved.
func (s Swatch) Glow() RGB {
	white := colorful.Color{R: 1, G: 1, B: 1}
	r, g, b := s.Colorful().BlendLab(white, 0.35).Clamped().RGB255()
	return RGB{r, g, b}
}

// Resolve returns the swatch for c. Out-of-range names fall back to Green;
// callers that must not substitute a colour check Valid first.
func (c ColorName) Resolve() Swatch {
	if !c.Valid() {
		c = Green
	}
	hex := palette[c].hex
	col, err := colorful.Hex(hex)
	if err != nil {
		panic("pattern: bad palette entry " + hex)
	}
	r, g, b := col.RGB255()
	return Swatch{Name: c, Hex: hex, RGB: RGB{r, g, b}}
}
