package pixelgrid

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewContainer("test")
	assertMatrix(t, "identity", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 0, 0})
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewContainer("test")
	n.X, n.Y = 10, 20
	assertMatrix(t, "translation", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewContainer("test")
	n.ScaleX, n.ScaleY = 2, 3
	assertMatrix(t, "scale", computeLocalTransform(n), [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewContainer("test")
	n.Rotation = math.Pi / 2
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", computeLocalTransform(n), [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformPivot(t *testing.T) {
	n := NewContainer("test")
	n.X, n.Y = 100, 50
	n.PivotX, n.PivotY = 5, 5
	n.ScaleX, n.ScaleY = 2, 2
	assertMatrix(t, "pivot", computeLocalTransform(n), [6]float64{2, 0, 0, 2, 90, 40})
}

func TestLocalTransformRotationMatchesGeneralPath(t *testing.T) {
	n := NewContainer("test")
	n.X, n.Y = 7, 3
	n.PivotX, n.PivotY = 2, 1
	n.ScaleX, n.ScaleY = 4, 5
	n.Rotation = 1e-300 // forces the rotation branch with sin≈0
	flat := *n
	flat.Rotation = 0
	assertMatrix(t, "near-zero rotation", computeLocalTransform(n), computeLocalTransform(&flat))
}

// --- Matrix helpers ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0.5, -1, 3, 10, 20}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestInvertAffineRoundTrip(t *testing.T) {
	m := [6]float64{2, 0.5, -1, 3, 10, 20}
	assertMatrix(t, "m*inv", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertSingularReturnsIdentity(t *testing.T) {
	assertMatrix(t, "singular", invertAffine([6]float64{0, 0, 0, 0, 5, 5}), identityTransform)
}

// --- World transforms ---

func TestWorldTransformInheritsParent(t *testing.T) {
	parent := NewContainer("p")
	parent.SetPosition(100, 50)
	child := NewRect("c", 10, 10, ColorWhite)
	child.SetPosition(13, 26)
	parent.AddChild(child)

	updateWorldTransform(parent, identityTransform, 1, false)

	x, y := child.LocalToWorld(0, 0)
	assertNear(t, "x", x, 113)
	assertNear(t, "y", y, 76)
	x, y = child.LocalToWorld(1, 1)
	assertNear(t, "x", x, 123)
	assertNear(t, "y", y, 86)
}

func TestWorldAlphaMultiplies(t *testing.T) {
	parent := NewContainer("p")
	parent.SetAlpha(0.5)
	child := NewRect("c", 1, 1, ColorWhite)
	child.SetAlpha(0.2)
	parent.AddChild(child)
	updateWorldTransform(parent, identityTransform, 1, false)
	assertNear(t, "worldAlpha", child.worldAlpha, 0.1)
}

func TestWorldToLocal(t *testing.T) {
	n := NewContainer("n")
	n.SetPosition(10, 10)
	n.SetScale(2, 2)
	updateWorldTransform(n, identityTransform, 1, false)
	lx, ly := n.WorldToLocal(30, 50)
	assertNear(t, "lx", lx, 10)
	assertNear(t, "ly", ly, 20)
}
