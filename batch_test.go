package pixelgrid

import (
	"math"
	"testing"
)

func TestCommandGeoMMatchesTransform(t *testing.T) {
	n := NewRect("cell", 10, 10, ColorWhite)
	n.SetPosition(13, 26)
	n.SetRotation(math.Pi / 6)
	updateWorldTransform(n, identityTransform, 1, false)

	cmd := RenderCommand{Transform: affine32(n.worldTransform)}
	m := commandGeoM(&cmd)

	for _, p := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		gx, gy := m.Apply(p[0], p[1])
		wx, wy := n.LocalToWorld(p[0], p[1])
		if math.Abs(gx-wx) > 1e-4 || math.Abs(gy-wy) > 1e-4 {
			t.Errorf("GeoM(%v) = (%v, %v), want (%v, %v)", p, gx, gy, wx, wy)
		}
	}
}

func TestAffine32(t *testing.T) {
	got := affine32([6]float64{1, 2, 3, 4, 5.5, -6})
	want := [6]float32{1, 2, 3, 4, 5.5, -6}
	if got != want {
		t.Errorf("affine32 = %v, want %v", got, want)
	}
}
