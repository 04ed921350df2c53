package pattern

import "fmt"

// Library is a read-only set of catalogs keyed by CatalogID. Renderers and
// generators receive a Library instead of reaching for package-level state,
// so tests can hand them fabricated catalogs.
type Library struct {
	catalogs map[CatalogID]*Catalog
}

// NewLibrary groups catalogs. Two catalogs with the same ID are an error.
func NewLibrary(catalogs ...*Catalog) (*Library, error) {
	l := &Library{catalogs: make(map[CatalogID]*Catalog, len(catalogs))}
	for _, c := range catalogs {
		if c == nil {
			return nil, fmt.Errorf("pattern: nil catalog")
		}
		if _, dup := l.catalogs[c.ID()]; dup {
			return nil, fmt.Errorf("pattern: duplicate catalog %s", c.ID())
		}
		l.catalogs[c.ID()] = c
	}
	return l, nil
}

// Catalog returns the catalog with the given id.
func (l *Library) Catalog(id CatalogID) (*Catalog, error) {
	c, ok := l.catalogs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCatalog, string(id))
	}
	return c, nil
}

// Lookup resolves a catalog-qualified reference.
func (l *Library) Lookup(ref Ref) (Pattern, error) {
	c, ok := l.catalogs[ref.Catalog]
	if !ok {
		return Pattern{}, &LookupError{Ref: ref, Err: ErrUnknownCatalog}
	}
	return c.Lookup(ref.ID)
}

// ForDimension returns the catalogs searched when a grid of the given
// dimension asks for an identifier. A 5x5 grid sees the general 5x5 catalog
// first and then the Zap catalog.
func (l *Library) ForDimension(dim Dimension) []*Catalog {
	var out []*Catalog
	for _, id := range CatalogIDs {
		if id.Dimension() != dim {
			continue
		}
		if c, ok := l.catalogs[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Resolve finds id in the catalogs for dim and returns the pattern together
// with the reference of the catalog that served it.
func (l *Library) Resolve(dim Dimension, id string) (Pattern, Ref, error) {
	if !dim.Valid() {
		return Pattern{}, Ref{}, fmt.Errorf("%w: %d", ErrInvalidDimension, int(dim))
	}
	for _, c := range l.ForDimension(dim) {
		if p, err := c.Lookup(id); err == nil {
			return p, Ref{Catalog: c.ID(), ID: id}, nil
		}
	}
	ref := Ref{Catalog: primaryCatalog(dim), ID: id}
	return Pattern{}, ref, &LookupError{Ref: ref, Err: ErrPatternNotFound}
}

// Common returns the identifiers of ids present in every catalog for each of
// dims, preserving the order of ids.
func (l *Library) Common(ids []string, dims ...Dimension) []string {
	var out []string
	for _, id := range ids {
		ok := true
		for _, d := range dims {
			if _, _, err := l.Resolve(d, id); err != nil {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, id)
		}
	}
	return out
}

func primaryCatalog(dim Dimension) CatalogID {
	for _, id := range CatalogIDs {
		if id.Dimension() == dim {
			return id
		}
	}
	return CatalogID(dim.String())
}
