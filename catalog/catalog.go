// Package catalog holds the hand-authored pattern catalogs for 3x3, 4x4, 5x5
// and 6x6 grids plus the 5x5 Zap hardware-state catalog.
//
// Every catalog is validated once at package initialisation; a bad index in
// the tables fails the program at start-up rather than at render time.
// Consumers should take the [pattern.Library] returned by [Default] as a
// dependency instead of calling into this package from deep inside their own
// code.
package catalog

import "github.com/sourceful-energy/pixelgrid/pattern"

var (
	grid3 = pattern.MustCatalog(pattern.CatalogSpec{
		ID:         pattern.Catalog3x3,
		Entries:    grid3Patterns,
		Categories: grid3Categories,
	})
	grid4 = pattern.MustCatalog(pattern.CatalogSpec{
		ID:         pattern.Catalog4x4,
		Entries:    grid4Patterns,
		Categories: grid4Categories,
	})
	grid5 = pattern.MustCatalog(pattern.CatalogSpec{
		ID:         pattern.Catalog5x5,
		Entries:    grid5Patterns,
		Categories: grid5Categories,
	})
	zap = pattern.MustCatalog(pattern.CatalogSpec{
		ID:         pattern.CatalogZap,
		Entries:    zapPatterns,
		Categories: zapCategories,
		Colors:     zapColors,
	})
	grid6 = pattern.MustCatalog(pattern.CatalogSpec{
		ID:         pattern.Catalog6x6,
		Entries:    grid6Patterns,
		Categories: grid6Categories,
	})

	library = mustLibrary(grid3, grid4, grid5, zap, grid6)
)

// CommonIDs are the identifiers present in the 3x3, 4x4 and 6x6 catalogs.
// Dimension comparisons must only use these.
var CommonIDs = []string{
	"solo-center",
	"solo-tl",
	"solo-br",
	"corners-sync",
	"corners-only",
	"frame",
	"frame-sync",
	"plus-hollow",
}

// ComparisonDimensions are the grid sizes shown side by side in a dimension
// comparison.
var ComparisonDimensions = []pattern.Dimension{pattern.Dim3, pattern.Dim4, pattern.Dim6}

// Default returns the library holding all five built-in catalogs.
func Default() *pattern.Library {
	return library
}

// Zap returns the 5x5 Zap catalog. It is the only catalog with a
// recommended colour per pattern and the one the code generator exports.
func Zap() *pattern.Catalog {
	return zap
}

func mustLibrary(cs ...*pattern.Catalog) *pattern.Library {
	l, err := pattern.NewLibrary(cs...)
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return l
}

// on builds a frame from its lit pixels.
func on(px ...pattern.PixelIndex) pattern.Frame {
	return pattern.Frame{Active: px}
}

func frames(f ...pattern.Frame) []pattern.Frame {
	return f
}
