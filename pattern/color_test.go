package pattern

import (
	"errors"
	"testing"
)

func TestPaletteBitExact(t *testing.T) {
	tests := []struct {
		name ColorName
		hex  string
		rgb  RGB
	}{
		{Green, "#16a34a", RGB{22, 163, 74}},
		{Blue, "#0ea5e9", RGB{14, 165, 233}},
		{Pink, "#ec4899", RGB{236, 72, 153}},
	}
	for _, tt := range tests {
		s := tt.name.Resolve()
		if s.Hex != tt.hex {
			t.Errorf("%v hex = %s, want %s", tt.name, s.Hex, tt.hex)
		}
		if s.RGB != tt.rgb {
			t.Errorf("%v rgb = %v, want %v", tt.name, s.RGB, tt.rgb)
		}
	}
}

func TestHexDigits(t *testing.T) {
	if got := Blue.Resolve().HexDigits(); got != "0EA5E9" {
		t.Errorf("HexDigits = %s, want 0EA5E9", got)
	}
}

func TestGlowIsLighter(t *testing.T) {
	for _, c := range Colors {
		s := c.Resolve()
		g := s.Glow()
		sum := func(r RGB) int { return int(r.R) + int(r.G) + int(r.B) }
		if sum(g) <= sum(s.RGB) {
			t.Errorf("%v glow %v not lighter than %v", c, g, s.RGB)
		}
	}
}

func TestResolveUnknownFallsBackToGreen(t *testing.T) {
	if got := ColorName(42).Resolve().Name; got != Green {
		t.Errorf("Resolve(42).Name = %v, want green", got)
	}
}

func TestColorValid(t *testing.T) {
	for _, c := range Colors {
		if !c.Valid() {
			t.Errorf("%v.Valid() = false, want true", c)
		}
	}
	if ColorName(3).Valid() {
		t.Error("ColorName(3).Valid() = true, want false")
	}
}

func TestParseColorUnknownWrapsSentinel(t *testing.T) {
	if _, err := ParseColor("red"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("ParseColor(red) err = %v, want ErrUnknownColor", err)
	}
}

func TestColorsComparisonOrder(t *testing.T) {
	want := []ColorName{Blue, Pink, Green}
	for i, c := range Colors {
		if c != want[i] {
			t.Errorf("Colors[%d] = %v, want %v", i, c, want[i])
		}
	}
}
