package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/sourceful-energy/pixelgrid/pattern"
)

func allCatalogs(t *testing.T) []*pattern.Catalog {
	t.Helper()
	var out []*pattern.Catalog
	for _, id := range pattern.CatalogIDs {
		c, err := Default().Catalog(id)
		if err != nil {
			t.Fatalf("Catalog(%s): %v", id, err)
		}
		out = append(out, c)
	}
	return out
}

func TestCatalogSizes(t *testing.T) {
	want := map[pattern.CatalogID]int{
		pattern.Catalog3x3: 31,
		pattern.Catalog4x4: 20,
		pattern.Catalog5x5: 23,
		pattern.CatalogZap: 86,
		pattern.Catalog6x6: 21,
	}
	for _, c := range allCatalogs(t) {
		if c.Len() != want[c.ID()] {
			t.Errorf("%s: Len = %d, want %d", c.ID(), c.Len(), want[c.ID()])
		}
	}
}

func TestEveryIndexInBounds(t *testing.T) {
	for _, c := range allCatalogs(t) {
		cells := pattern.PixelIndex(c.Dimension().Cells())
		for _, id := range c.Names() {
			p, _ := c.Lookup(id)
			if len(p.Frames) == 0 {
				t.Errorf("%s/%s: no frames", c.ID(), id)
			}
			for fi, f := range p.Frames {
				for _, px := range f.Active {
					if px < 0 || px >= cells {
						t.Errorf("%s/%s frame %d: index %d out of [0, %d)", c.ID(), id, fi, px, cells)
					}
				}
			}
		}
	}
}

func TestBitmapRoundTripAllCatalogs(t *testing.T) {
	for _, c := range allCatalogs(t) {
		for _, id := range c.Names() {
			p, _ := c.Lookup(id)
			for fi, f := range p.Frames {
				b := f.Bitmap(c.Dimension())
				if len(b) != c.Dimension().Cells() {
					t.Fatalf("%s/%s: bitmap length %d", c.ID(), id, len(b))
				}
				if got, want := b.Indices(), f.SortedSet(); !reflect.DeepEqual(got, want) {
					t.Errorf("%s/%s frame %d: round trip %v, want %v", c.ID(), id, fi, got, want)
				}
			}
		}
	}
}

func TestCategoriesCoverCatalog(t *testing.T) {
	for _, c := range allCatalogs(t) {
		seen := map[string]bool{}
		for _, cat := range c.Categories() {
			for _, id := range cat.IDs {
				seen[id] = true
			}
		}
		for _, id := range c.Names() {
			if !seen[id] {
				t.Errorf("%s/%s: not in any category", c.ID(), id)
			}
		}
	}
}

func TestZapColorsComplete(t *testing.T) {
	for _, id := range Zap().Names() {
		if _, ok := Zap().Color(id); !ok {
			t.Errorf("%s: no recommended colour", id)
		}
	}
	if col, _ := Zap().Color("zap-ready"); col != pattern.Green {
		t.Errorf("zap-ready colour = %v, want green", col)
	}
}

func TestCornersSync(t *testing.T) {
	p, err := Default().Lookup(pattern.Ref{Catalog: pattern.Catalog3x3, ID: "corners-sync"})
	if err != nil {
		t.Fatal(err)
	}
	corners := []pattern.PixelIndex{0, 2, 6, 8}
	want := [][]pattern.PixelIndex{nil, corners, corners, nil}
	if len(p.Frames) != len(want) {
		t.Fatalf("frames = %d, want %d", len(p.Frames), len(want))
	}
	for i, f := range p.Frames {
		if len(f.Active) == 0 && len(want[i]) == 0 {
			continue
		}
		if !reflect.DeepEqual(f.SortedSet(), want[i]) {
			t.Errorf("frame %d = %v, want %v", i, f.Active, want[i])
		}
	}
	if p.CycleDuration != 0 {
		t.Errorf("CycleDuration = %v, want unset", p.CycleDuration)
	}
	if got := p.FrameDuration(pattern.SpeedNormal); got != 375*time.Millisecond {
		t.Errorf("FrameDuration = %v, want 375ms", got)
	}
}

func TestSquareInnerNotIn6x6(t *testing.T) {
	if _, _, err := Default().Resolve(pattern.Dim4, "square-inner"); err != nil {
		t.Fatalf("4x4 square-inner: %v", err)
	}
	_, _, err := Default().Resolve(pattern.Dim6, "square-inner")
	if !errors.Is(err, pattern.ErrPatternNotFound) {
		t.Errorf("6x6 square-inner err = %v, want ErrPatternNotFound", err)
	}
}

func TestCommonIDsInComparisonDimensions(t *testing.T) {
	got := Default().Common(CommonIDs, ComparisonDimensions...)
	if !reflect.DeepEqual(got, CommonIDs) {
		t.Errorf("Common = %v, want %v", got, CommonIDs)
	}
}

func TestFiveByFiveSeesZap(t *testing.T) {
	_, ref, err := Default().Resolve(pattern.Dim5, "zap-ready")
	if err != nil {
		t.Fatal(err)
	}
	if ref.Catalog != pattern.CatalogZap {
		t.Errorf("ref = %v, want zap catalog", ref)
	}
}

func ExampleDefault() {
	lib := Default()
	p, err := lib.Lookup(pattern.Ref{Catalog: pattern.Catalog3x3, ID: "corners-sync"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Name, len(p.Frames), p.FrameDuration(pattern.SpeedNormal))
	// Output: Corners Sync 4 375ms
}
