package pattern

import (
	"errors"
	"testing"
	"time"
)

func framesOf(sets ...[]PixelIndex) []Frame {
	out := make([]Frame, len(sets))
	for i, s := range sets {
		out[i] = Frame{Active: s}
	}
	return out
}

// --- Timing ---

func TestCycleUsesPatternDurationWhenSet(t *testing.T) {
	p := Pattern{Frames: framesOf(nil, nil), CycleDuration: 2400 * time.Millisecond}
	for _, s := range []Speed{SpeedSlow, SpeedNormal, SpeedFast} {
		if got := p.Cycle(s); got != 2400*time.Millisecond {
			t.Errorf("Cycle(%v) = %v, want 2.4s", s, got)
		}
	}
}

func TestCycleFallsBackToSpeed(t *testing.T) {
	p := Pattern{Frames: framesOf(nil)}
	tests := []struct {
		speed Speed
		want  time.Duration
	}{
		{SpeedSlow, 2000 * time.Millisecond},
		{SpeedNormal, 1500 * time.Millisecond},
		{SpeedFast, 1000 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := p.Cycle(tt.speed); got != tt.want {
			t.Errorf("Cycle(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestFrameDurationUniform(t *testing.T) {
	p := Pattern{Frames: framesOf(nil, []PixelIndex{0, 2, 6, 8}, []PixelIndex{0, 2, 6, 8}, nil)}
	if got := p.FrameDuration(SpeedNormal); got != 375*time.Millisecond {
		t.Errorf("FrameDuration = %v, want 375ms", got)
	}
}

func TestFrameDurationIgnoresPerFrameOverride(t *testing.T) {
	p := Pattern{
		Frames:        []Frame{{Duration: 900}, {Duration: 100}},
		CycleDuration: time.Second,
	}
	if got := p.FrameDuration(SpeedNormal); got != 500*time.Millisecond {
		t.Errorf("FrameDuration = %v, want 500ms", got)
	}
}

func TestFrameDurationEmpty(t *testing.T) {
	if got := (Pattern{}).FrameDuration(SpeedNormal); got != 0 {
		t.Errorf("FrameDuration = %v, want 0", got)
	}
}

// --- Fullest ---

func TestFullestPicksFirstMaximum(t *testing.T) {
	p := Pattern{Frames: framesOf(
		[]PixelIndex{0},
		[]PixelIndex{0, 1, 2},
		[]PixelIndex{3, 4},
		[]PixelIndex{5, 6, 7},
	)}
	if got := p.Fullest(); got != 1 {
		t.Errorf("Fullest = %d, want 1", got)
	}
}

func TestFullestEmpty(t *testing.T) {
	if got := (Pattern{}).Fullest(); got != -1 {
		t.Errorf("Fullest = %d, want -1", got)
	}
}

// --- Validation ---

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Pattern
		dim  Dimension
		want error
	}{
		{"ok", Pattern{Frames: framesOf([]PixelIndex{0, 8})}, Dim3, nil},
		{"empty", Pattern{}, Dim3, ErrEmptyPattern},
		{"too high", Pattern{Frames: framesOf([]PixelIndex{9})}, Dim3, ErrPixelOutOfRange},
		{"negative", Pattern{Frames: framesOf([]PixelIndex{-1})}, Dim4, ErrPixelOutOfRange},
		{"bad dimension", Pattern{Frames: framesOf(nil)}, 7, ErrInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate(tt.dim)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate = %v, want %v", err, tt.want)
			}
		})
	}
}

// --- Dimension ---

func TestDimensionIndexRoundTrip(t *testing.T) {
	for _, d := range Dimensions {
		for i := 0; i < d.Cells(); i++ {
			x, y := d.XY(PixelIndex(i))
			if got := d.Index(x, y); got != PixelIndex(i) {
				t.Errorf("%v: Index(XY(%d)) = %d", d, i, got)
			}
		}
	}
}

func TestParseDimension(t *testing.T) {
	for _, s := range []string{"4", "4x4", "4×4"} {
		d, err := ParseDimension(s)
		if err != nil || d != Dim4 {
			t.Errorf("ParseDimension(%q) = %v, %v", s, d, err)
		}
	}
	if _, err := ParseDimension("7"); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("ParseDimension(7) err = %v, want ErrInvalidDimension", err)
	}
}

// --- Display enums ---

func TestGeometryExtent(t *testing.T) {
	tests := []struct {
		size Size
		dim  Dimension
		want int
	}{
		{SizeSmall, Dim3, 6*3 + 2*2},
		{SizeMedium, Dim3, 10*3 + 3*2},
		{SizeLarge, Dim5, 14*5 + 4*4},
		{SizeMedium, Dim6, 10*6 + 3*5},
	}
	for _, tt := range tests {
		if got := tt.size.Geometry().Extent(tt.dim); got != tt.want {
			t.Errorf("%v %v extent = %d, want %d", tt.size, tt.dim, got, tt.want)
		}
	}
}

func TestCellOrigin(t *testing.T) {
	g := SizeMedium.Geometry()
	x, y := g.CellOrigin(Dim3, 5)
	if x != 26 || y != 13 {
		t.Errorf("CellOrigin(5) = (%d, %d), want (26, 13)", x, y)
	}
}

func TestZeroValuesAreDefaults(t *testing.T) {
	var (
		c  ColorName
		sz Size
		sp Speed
	)
	if c != Green || sz != SizeMedium || sp != SpeedNormal {
		t.Errorf("zero values = %v %v %v, want green md normal", c, sz, sp)
	}
}

func TestParseEnums(t *testing.T) {
	if s, err := ParseSpeed("fast"); err != nil || s != SpeedFast {
		t.Errorf("ParseSpeed(fast) = %v, %v", s, err)
	}
	if s, err := ParseSize("lg"); err != nil || s != SizeLarge {
		t.Errorf("ParseSize(lg) = %v, %v", s, err)
	}
	if c, err := ParseColor("pink"); err != nil || c != Pink {
		t.Errorf("ParseColor(pink) = %v, %v", c, err)
	}
	if _, err := ParseColor("red"); err == nil {
		t.Error("ParseColor(red) should fail")
	}
}
