package pixelgrid

import (
	"image/color"
	"math"
	"testing"

	"github.com/sourceful-energy/pixelgrid/pattern"
)

func pixelAt(t *testing.T, s *Scene, w, h, x, y int) color.NRGBA {
	t.Helper()
	img := s.Snapshot(w, h, ColorBlack)
	return img.NRGBAAt(x, y)
}

// --- Background and plain rects ---

func TestSnapshotBackground(t *testing.T) {
	s := NewScene()
	img := s.Snapshot(3, 2, Color{1, 0, 0, 0.2})
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := img.NRGBAAt(x, y); got != (color.NRGBA{255, 0, 0, 255}) {
				t.Fatalf("(%d,%d) = %v, want opaque red", x, y, got)
			}
		}
	}
}

func TestSnapshotRectCoverage(t *testing.T) {
	s := NewScene()
	r := NewRect("r", 3, 2, ColorWhite)
	r.SetPosition(1, 1)
	s.Root().AddChild(r)
	img := s.Snapshot(6, 5, ColorBlack)

	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x < 4 && y >= 1 && y < 3
			got := img.NRGBAAt(x, y).R
			if inside && got != 255 {
				t.Errorf("(%d,%d) = %d, want 255", x, y, got)
			}
			if !inside && got != 0 {
				t.Errorf("(%d,%d) = %d, want 0", x, y, got)
			}
		}
	}
}

func TestSnapshotAlphaBlend(t *testing.T) {
	s := NewScene()
	s.Root().AddChild(NewRect("r", 1, 1, Color{1, 1, 1, 0.5}))
	if got := pixelAt(t, s, 1, 1, 0, 0); got.R != 128 {
		t.Errorf("R = %d, want 128", got.R)
	}
}

func TestSnapshotAdditiveClamps(t *testing.T) {
	s := NewScene()
	for i := 0; i < 2; i++ {
		r := NewRect("glow", 1, 1, Color{1, 0.25, 0, 0.6})
		r.BlendMode = BlendAdd
		s.Root().AddChild(r)
	}
	got := pixelAt(t, s, 1, 1, 0, 0)
	if got.R != 255 {
		t.Errorf("R = %d, want clamped 255", got.R)
	}
	// 38 after the first draw, then 38 + 38.25 after the second
	if got.G != 76 {
		t.Errorf("G = %d, want 76", got.G)
	}
}

func TestSnapshotRotatedRect(t *testing.T) {
	s := NewScene()
	r := NewRect("r", 4, 2, ColorWhite)
	r.SetPivot(0.5, 0.5)
	r.SetPosition(5, 5)
	r.SetRotation(math.Pi / 2)
	s.Root().AddChild(r)
	img := s.Snapshot(10, 10, ColorBlack)

	// A 4x2 bar rotated a quarter turn about (5,5) is 2 wide and 4 tall.
	if img.NRGBAAt(4, 3).R != 255 || img.NRGBAAt(5, 6).R != 255 {
		t.Error("rotated bar missing inside pixels")
	}
	if img.NRGBAAt(3, 5).R != 0 || img.NRGBAAt(6, 5).R != 0 {
		t.Error("rotated bar covers pixels outside its width")
	}
}

// --- Grids ---

func TestSnapshotGridCells(t *testing.T) {
	s := NewScene()
	g := NewGrid(testLibrary(t), "blink", GridOptions{})
	s.Root().AddChild(g.Node())
	img := s.Snapshot(36, 36, ColorBlack)

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"lit cell 0", 5, 5, color.NRGBA{22, 163, 74, 255}},
		{"unlit cell 1", 18, 5, color.NRGBA{2, 16, 7, 255}},
		{"gap", 11, 5, color.NRGBA{0, 0, 0, 255}},
		{"lit cell 8", 30, 30, color.NRGBA{22, 163, 74, 255}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSnapshotMissingPatternIsBlank(t *testing.T) {
	s := NewScene()
	g := NewGrid(testLibrary(t), "nope", GridOptions{})
	s.Root().AddChild(g.Node())
	img := s.Snapshot(36, 36, ColorBlack)
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			t.Fatalf("pixel %d not background", i/4)
		}
	}
}

func TestSnapshotDarkModeGlowsIntoGap(t *testing.T) {
	render := func(dark bool) color.NRGBA {
		s := NewScene()
		g := NewGrid(testLibrary(t), "blink", GridOptions{DarkMode: dark})
		g.Node().SetPosition(10, 10)
		s.Root().AddChild(g.Node())
		return s.Snapshot(60, 60, ColorBlack).NRGBAAt(21, 15)
	}
	if got := render(false); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("light mode gap = %v, want black", got)
	}
	got := render(true)
	if got.G == 0 {
		t.Errorf("dark mode gap = %v, want a green halo", got)
	}
	glow := pattern.Green.Resolve().Glow()
	if want := uint8(float64(glow.G)*GlowAlpha + 0.5); absDiff(got.G, want) > 1 {
		t.Errorf("halo G = %d, want ~%d", got.G, want)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
