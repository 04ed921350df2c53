package pattern

import (
	"fmt"
	"strings"
)

// CatalogID names one of the five pattern catalogs.
type CatalogID string

const (
	Catalog3x3 CatalogID = "3x3"
	Catalog4x4 CatalogID = "4x4"
	Catalog5x5 CatalogID = "5x5"
	CatalogZap CatalogID = "5x5-zap"
	Catalog6x6 CatalogID = "6x6"
)

// CatalogIDs lists every catalog in display order.
var CatalogIDs = []CatalogID{Catalog3x3, Catalog4x4, Catalog5x5, CatalogZap, Catalog6x6}

// Dimension returns the grid dimension the catalog is authored for, or 0 for
// an unknown catalog.
func (c CatalogID) Dimension() Dimension {
	switch c {
	case Catalog3x3:
		return Dim3
	case Catalog4x4:
		return Dim4
	case Catalog5x5, CatalogZap:
		return Dim5
	case Catalog6x6:
		return Dim6
	}
	return 0
}

// ParseCatalogID accepts a catalog name ("4x4", "5x5-zap") or the alias "zap".
func ParseCatalogID(s string) (CatalogID, error) {
	if s == "zap" {
		return CatalogZap, nil
	}
	for _, id := range CatalogIDs {
		if CatalogID(s) == id {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCatalog, s)
}

// Ref is a catalog-qualified pattern identifier. Identifiers are not portable
// between catalogs, so every lookup names the catalog explicitly.
type Ref struct {
	Catalog CatalogID
	ID      string
}

func (r Ref) String() string {
	return string(r.Catalog) + "/" + r.ID
}

// ParseRef parses "catalog/id", e.g. "5x5-zap/zap-ready".
func ParseRef(s string) (Ref, error) {
	cat, id, ok := strings.Cut(s, "/")
	if !ok || id == "" {
		return Ref{}, fmt.Errorf("pattern: malformed reference %q (want catalog/id)", s)
	}
	c, err := ParseCatalogID(cat)
	if err != nil {
		return Ref{}, err
	}
	return Ref{Catalog: c, ID: id}, nil
}

// Entry pairs a pattern with its identifier. Catalogs are built from ordered
// entry lists so authoring order survives.
type Entry struct {
	ID      string
	Pattern Pattern
}

// Category is a labelled, ordered group of identifiers within one catalog.
// Categories are organizational only.
type Category struct {
	Label string
	IDs   []string
}

// Catalog is an immutable table of patterns for one grid dimension.
type Catalog struct {
	id         CatalogID
	dim        Dimension
	order      []string
	patterns   map[string]Pattern
	categories []Category
	colors     map[string]ColorName
}

// CatalogSpec describes a catalog to be built by NewCatalog.
type CatalogSpec struct {
	ID         CatalogID
	Dimension  Dimension // defaults to ID.Dimension()
	Entries    []Entry
	Categories []Category
	Colors     map[string]ColorName // recommended display colour per id
}

// NewCatalog validates spec and returns the catalog. Every pattern must be
// non-empty with all pixels inside the grid, identifiers must be unique, and
// categories and colours may only name identifiers present in the catalog.
func NewCatalog(spec CatalogSpec) (*Catalog, error) {
	dim := spec.Dimension
	if dim == 0 {
		dim = spec.ID.Dimension()
	}
	if !dim.Valid() {
		return nil, fmt.Errorf("catalog %s: %w: %d", spec.ID, ErrInvalidDimension, int(dim))
	}
	c := &Catalog{
		id:       spec.ID,
		dim:      dim,
		order:    make([]string, 0, len(spec.Entries)),
		patterns: make(map[string]Pattern, len(spec.Entries)),
		colors:   make(map[string]ColorName, len(spec.Colors)),
	}
	for _, e := range spec.Entries {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog %s: empty pattern identifier", spec.ID)
		}
		if _, dup := c.patterns[e.ID]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate pattern %q", spec.ID, e.ID)
		}
		if err := e.Pattern.Validate(dim); err != nil {
			return nil, fmt.Errorf("catalog %s: pattern %q: %w", spec.ID, e.ID, err)
		}
		c.order = append(c.order, e.ID)
		c.patterns[e.ID] = e.Pattern
	}
	for _, cat := range spec.Categories {
		for _, id := range cat.IDs {
			if _, ok := c.patterns[id]; !ok {
				return nil, fmt.Errorf("catalog %s: category %q: %w: %q", spec.ID, cat.Label, ErrPatternNotFound, id)
			}
		}
		c.categories = append(c.categories, Category{Label: cat.Label, IDs: append([]string(nil), cat.IDs...)})
	}
	for id, col := range spec.Colors {
		if _, ok := c.patterns[id]; !ok {
			return nil, fmt.Errorf("catalog %s: color table: %w: %q", spec.ID, ErrPatternNotFound, id)
		}
		c.colors[id] = col
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. It is intended for
// package-level tables that are known to be valid.
func MustCatalog(spec CatalogSpec) *Catalog {
	c, err := NewCatalog(spec)
	if err != nil {
		panic("pattern: " + err.Error())
	}
	return c
}

// ID returns the catalog identifier.
func (c *Catalog) ID() CatalogID { return c.id }

// Dimension returns the grid dimension every pattern in c fits.
func (c *Catalog) Dimension() Dimension { return c.dim }

// Len returns the number of patterns.
func (c *Catalog) Len() int { return len(c.order) }

// Lookup returns the pattern with the given identifier. A missing identifier
// yields a *LookupError wrapping ErrPatternNotFound.
func (c *Catalog) Lookup(id string) (Pattern, error) {
	p, ok := c.patterns[id]
	if !ok {
		return Pattern{}, &LookupError{Ref: Ref{Catalog: c.id, ID: id}, Err: ErrPatternNotFound}
	}
	return p, nil
}

// Has reports whether id is present.
func (c *Catalog) Has(id string) bool {
	_, ok := c.patterns[id]
	return ok
}

// Names returns every identifier in authoring order. The slice is a copy.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Categories returns the category groupings in authoring order. The
// returned slices are copies.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{Label: cat.Label, IDs: append([]string(nil), cat.IDs...)}
	}
	return out
}

// Category returns the identifiers under label, or nil.
func (c *Catalog) Category(label string) []string {
	for _, cat := range c.categories {
		if cat.Label == label {
			return append([]string(nil), cat.IDs...)
		}
	}
	return nil
}

// Color returns the recommended display colour for id. Catalogs without a
// colour table, and ids missing from it, report Green with ok == false.
func (c *Catalog) Color(id string) (ColorName, bool) {
	col, ok := c.colors[id]
	if !ok {
		return Green, false
	}
	return col, true
}
