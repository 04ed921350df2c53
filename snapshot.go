package pixelgrid

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Snapshot rasterises the current scene into a w×h straight-alpha image in
// software. It uses the same traversal and command ordering as Draw, so it
// reflects exactly what a frame would show, but needs no GPU and no running
// game loop. Labels are not rasterised.
//
// The background is composited as opaque.
func (s *Scene) Snapshot(w, h int, background Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	bg := colorful.Color{R: clamp01(background.R), G: clamp01(background.G), B: clamp01(background.B)}
	fill := toNRGBA(bg)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = fill.R, fill.G, fill.B, 255
	}

	s.buildCommands()
	for i := range s.commands {
		cmd := &s.commands[i]
		if cmd.Type == CommandSprite {
			rasterSprite(img, cmd)
		}
	}
	return img
}

// rasterSprite fills the unit square mapped through cmd.Transform. Pixels
// are sampled at their centres through the inverse transform, so rotated
// sprites work as well as axis-aligned ones.
func rasterSprite(img *image.NRGBA, cmd *RenderCommand) {
	m := [6]float64{
		float64(cmd.Transform[0]), float64(cmd.Transform[1]),
		float64(cmd.Transform[2]), float64(cmd.Transform[3]),
		float64(cmd.Transform[4]), float64(cmd.Transform[5]),
	}
	inv := invertAffine(m)

	// Bounding box of the transformed unit square.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		x, y := transformPoint(m, c[0], c[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	b := img.Bounds()
	x0 := max(int(math.Floor(minX)), b.Min.X)
	y0 := max(int(math.Floor(minY)), b.Min.Y)
	x1 := min(int(math.Ceil(maxX)), b.Max.X)
	y1 := min(int(math.Ceil(maxY)), b.Max.Y)

	src := colorful.Color{R: float64(cmd.Color.R), G: float64(cmd.Color.G), B: float64(cmd.Color.B)}
	alpha := clamp01(float64(cmd.Color.A))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			u, v := transformPoint(inv, float64(x)+0.5, float64(y)+0.5)
			if u < 0 || u >= 1 || v < 0 || v >= 1 {
				continue
			}
			off := img.PixOffset(x, y)
			dst := colorful.Color{
				R: float64(img.Pix[off]) / 255,
				G: float64(img.Pix[off+1]) / 255,
				B: float64(img.Pix[off+2]) / 255,
			}
			var out colorful.Color
			switch cmd.BlendMode {
			case BlendAdd:
				out = colorful.Color{R: dst.R + src.R*alpha, G: dst.G + src.G*alpha, B: dst.B + src.B*alpha}.Clamped()
			default:
				out = dst.BlendRgb(src, alpha).Clamped()
			}
			c := toNRGBA(out)
			img.Pix[off], img.Pix[off+1], img.Pix[off+2] = c.R, c.G, c.B
		}
	}
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
