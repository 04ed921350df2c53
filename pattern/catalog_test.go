package pattern

import (
	"errors"
	"reflect"
	"testing"
)

func testCatalog(t *testing.T, id CatalogID, ids ...string) *Catalog {
	t.Helper()
	entries := make([]Entry, len(ids))
	for i, name := range ids {
		entries[i] = Entry{ID: name, Pattern: Pattern{Name: name, Frames: framesOf([]PixelIndex{0})}}
	}
	c, err := NewCatalog(CatalogSpec{ID: id, Entries: entries})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

// --- Catalog ---

func TestCatalogLookup(t *testing.T) {
	c := testCatalog(t, Catalog3x3, "a", "b")
	p, err := c.Lookup("b")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if p.Name != "b" {
		t.Errorf("Name = %q, want b", p.Name)
	}
}

func TestCatalogLookupMissing(t *testing.T) {
	c := testCatalog(t, Catalog6x6, "a")
	_, err := c.Lookup("square-inner")
	if !errors.Is(err, ErrPatternNotFound) {
		t.Fatalf("err = %v, want ErrPatternNotFound", err)
	}
	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("err = %T, want *LookupError", err)
	}
	if le.Ref != (Ref{Catalog: Catalog6x6, ID: "square-inner"}) {
		t.Errorf("Ref = %v", le.Ref)
	}
}

func TestCatalogNamesPreserveOrder(t *testing.T) {
	c := testCatalog(t, Catalog4x4, "z", "a", "m")
	if got := c.Names(); !reflect.DeepEqual(got, []string{"z", "a", "m"}) {
		t.Errorf("Names = %v", got)
	}
	names := c.Names()
	names[0] = "mutated"
	if c.Names()[0] != "z" {
		t.Error("Names returned an aliased slice")
	}
}

func TestNewCatalogRejects(t *testing.T) {
	ok := Pattern{Frames: framesOf([]PixelIndex{0})}
	tests := []struct {
		name string
		spec CatalogSpec
		want error
	}{
		{"out of range", CatalogSpec{ID: Catalog3x3, Entries: []Entry{{ID: "x", Pattern: Pattern{Frames: framesOf([]PixelIndex{9})}}}}, ErrPixelOutOfRange},
		{"empty", CatalogSpec{ID: Catalog3x3, Entries: []Entry{{ID: "x"}}}, ErrEmptyPattern},
		{"bad category", CatalogSpec{ID: Catalog3x3, Entries: []Entry{{ID: "x", Pattern: ok}}, Categories: []Category{{Label: "L", IDs: []string{"y"}}}}, ErrPatternNotFound},
		{"bad color", CatalogSpec{ID: CatalogZap, Entries: []Entry{{ID: "x", Pattern: ok}}, Colors: map[string]ColorName{"y": Blue}}, ErrPatternNotFound},
		{"unknown catalog", CatalogSpec{ID: "9x9"}, ErrInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewCatalogRejectsDuplicate(t *testing.T) {
	ok := Pattern{Frames: framesOf(nil)}
	_, err := NewCatalog(CatalogSpec{ID: Catalog3x3, Entries: []Entry{{ID: "x", Pattern: ok}, {ID: "x", Pattern: ok}}})
	if err == nil {
		t.Error("duplicate identifier accepted")
	}
}

func TestCatalogColor(t *testing.T) {
	ok := Pattern{Frames: framesOf(nil)}
	c := MustCatalog(CatalogSpec{
		ID:      CatalogZap,
		Entries: []Entry{{ID: "a", Pattern: ok}, {ID: "b", Pattern: ok}},
		Colors:  map[string]ColorName{"a": Pink},
	})
	if col, found := c.Color("a"); !found || col != Pink {
		t.Errorf("Color(a) = %v, %v", col, found)
	}
	if col, found := c.Color("b"); found || col != Green {
		t.Errorf("Color(b) = %v, %v, want green false", col, found)
	}
}

// --- References ---

func TestParseRef(t *testing.T) {
	tests := []struct {
		in   string
		want Ref
		ok   bool
	}{
		{"5x5-zap/zap-ready", Ref{CatalogZap, "zap-ready"}, true},
		{"zap/zap-ready", Ref{CatalogZap, "zap-ready"}, true},
		{"3x3/solo-center", Ref{Catalog3x3, "solo-center"}, true},
		{"solo-center", Ref{}, false},
		{"7x7/a", Ref{}, false},
		{"3x3/", Ref{}, false},
	}
	for _, tt := range tests {
		got, err := ParseRef(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseRef(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRef(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if tt.ok && got.String() != string(got.Catalog)+"/"+got.ID {
			t.Errorf("String = %q", got.String())
		}
	}
}

// --- Library ---

func TestLibraryResolveFiveSearchesZap(t *testing.T) {
	gen := testCatalog(t, Catalog5x5, "wave")
	zap := testCatalog(t, CatalogZap, "zap-ready", "wave")
	lib, err := NewLibrary(gen, zap)
	if err != nil {
		t.Fatal(err)
	}
	_, ref, err := lib.Resolve(Dim5, "zap-ready")
	if err != nil || ref.Catalog != CatalogZap {
		t.Errorf("Resolve(zap-ready) = %v, %v", ref, err)
	}
	_, ref, err = lib.Resolve(Dim5, "wave")
	if err != nil || ref.Catalog != Catalog5x5 {
		t.Errorf("Resolve(wave) = %v, %v; general catalog should win", ref, err)
	}
}

func TestLibraryResolveMissing(t *testing.T) {
	lib, _ := NewLibrary(testCatalog(t, Catalog4x4, "square-inner"), testCatalog(t, Catalog6x6, "frame"))
	_, ref, err := lib.Resolve(Dim6, "square-inner")
	if !errors.Is(err, ErrPatternNotFound) {
		t.Fatalf("err = %v, want ErrPatternNotFound", err)
	}
	if ref.Catalog != Catalog6x6 {
		t.Errorf("ref = %v, want 6x6 catalog", ref)
	}
	if _, _, err := lib.Resolve(9, "x"); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("Resolve(9) err = %v", err)
	}
}

func TestLibraryLookupUnknownCatalog(t *testing.T) {
	lib, _ := NewLibrary(testCatalog(t, Catalog3x3, "a"))
	_, err := lib.Lookup(Ref{Catalog: CatalogZap, ID: "a"})
	if !errors.Is(err, ErrUnknownCatalog) {
		t.Errorf("err = %v, want ErrUnknownCatalog", err)
	}
	if _, err := lib.Catalog(Catalog6x6); !errors.Is(err, ErrUnknownCatalog) {
		t.Errorf("Catalog err = %v", err)
	}
}

func TestLibraryDuplicate(t *testing.T) {
	if _, err := NewLibrary(testCatalog(t, Catalog3x3, "a"), testCatalog(t, Catalog3x3, "b")); err == nil {
		t.Error("duplicate catalog accepted")
	}
}

func TestLibraryCommon(t *testing.T) {
	lib, _ := NewLibrary(
		testCatalog(t, Catalog3x3, "a", "b", "c"),
		testCatalog(t, Catalog4x4, "a", "c"),
		testCatalog(t, Catalog6x6, "c", "a"),
	)
	got := lib.Common([]string{"a", "b", "c"}, Dim3, Dim4, Dim6)
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Common = %v, want [a c]", got)
	}
}
