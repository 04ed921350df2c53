package pixelgrid

import (
	"fmt"

	"github.com/sourceful-energy/pixelgrid/pattern"
)

const (
	showcaseGap      = 24
	headerHeight     = labelLineHeight + 8
	captionGap       = 8
	defaultRowWidth  = 640
	sectionSeparator = 32
)

// ShowcaseOptions configures NewShowcase.
type ShowcaseOptions struct {
	// Grid holds the options shared by every grid. Dimension is taken from
	// the catalog and ShowLabel is always on.
	Grid GridOptions

	// Flat lays every pattern out in one flowing block instead of one block
	// per category with a header.
	Flat bool

	// Categories restricts the showcase to these category labels, in
	// catalog order. Empty means all; a label the catalog lacks is an error.
	Categories []string

	// RecommendedColors uses the catalog's per-pattern colour (Zap) instead
	// of Grid.Color where one exists.
	RecommendedColors bool

	// RowWidth is the width at which grids wrap to the next row.
	RowWidth float64
}

// Showcase is a laid-out group of grids sharing one root node.
type Showcase struct {
	node  *Node
	grids []*Grid
	w, h  float64
}

// Node returns the showcase root node.
func (s *Showcase) Node() *Node { return s.node }

// Grids returns the grids in layout order.
func (s *Showcase) Grids() []*Grid { return s.grids }

// Bounds returns the laid-out width and height.
func (s *Showcase) Bounds() (w, h float64) { return s.w, s.h }

// Grid returns the first grid showing id, or nil.
func (s *Showcase) Grid(id string) *Grid {
	for _, g := range s.grids {
		if g.ID() == id {
			return g
		}
	}
	return nil
}

// GridAt returns the grid whose laid-out bounds contain the world point
// (x, y), or nil. World transforms must be current, as they are after any
// scene update.
func (s *Showcase) GridAt(x, y float64) *Grid {
	for _, g := range s.grids {
		w, h := g.Bounds()
		lx, ly := g.Node().WorldToLocal(x, y)
		if (Rect{Width: w, Height: h}).Contains(lx, ly) {
			return g
		}
	}
	return nil
}

// Each calls fn for every grid, e.g. to pause them all.
func (s *Showcase) Each(fn func(*Grid)) {
	for _, g := range s.grids {
		fn(g)
	}
}

// Dispose disposes every grid and the root node.
func (s *Showcase) Dispose() {
	for _, g := range s.grids {
		g.Dispose()
	}
	s.grids = nil
	s.node.Dispose()
}

// NewShowcase lays out the patterns of one catalog, grouped by category.
func NewShowcase(lib *pattern.Library, id pattern.CatalogID, opts ShowcaseOptions) (*Showcase, error) {
	cat, err := lib.Catalog(id)
	if err != nil {
		return nil, err
	}
	rowWidth := opts.RowWidth
	if rowWidth <= 0 {
		rowWidth = defaultRowWidth
	}
	gopts := opts.Grid
	gopts.Dimension = cat.Dimension()
	gopts.ShowLabel = true

	var wanted map[string]bool
	if len(opts.Categories) > 0 {
		known := make(map[string]bool)
		for _, c := range cat.Categories() {
			known[c.Label] = true
		}
		wanted = make(map[string]bool, len(opts.Categories))
		for _, c := range opts.Categories {
			if !known[c] {
				return nil, fmt.Errorf("showcase %s: %w %q", id, pattern.ErrUnknownCategory, c)
			}
			wanted[c] = true
		}
	}

	sc := &Showcase{node: NewContainer("showcase:" + string(id))}
	flow := newFlow(rowWidth)
	for _, category := range cat.Categories() {
		if wanted != nil && !wanted[category.Label] {
			continue
		}
		if !opts.Flat {
			if len(sc.grids) > 0 {
				flow.breakLine(sectionSeparator)
			}
			header := NewLabel("header", category.Label)
			header.SetPosition(0, flow.y)
			sc.node.AddChild(header)
			flow.y += headerHeight
		}
		for _, pid := range category.IDs {
			o := gopts
			if opts.RecommendedColors {
				if c, ok := cat.Color(pid); ok {
					o.Color = c
				}
			}
			g := NewGrid(lib, pid, o)
			w, h := g.Bounds()
			x, y := flow.place(w, h)
			g.Node().SetPosition(x, y)
			sc.node.AddChild(g.Node())
			sc.grids = append(sc.grids, g)
		}
		if !opts.Flat {
			flow.breakLine(0)
		}
	}
	sc.w, sc.h = flow.size()
	return sc, nil
}

// CompareColors shows id once per palette colour (blue, pink, green), each
// captioned with the colour name.
func CompareColors(lib *pattern.Library, id string, opts GridOptions) *Showcase {
	items := make([]comparisonItem, len(pattern.Colors))
	for i, c := range pattern.Colors {
		o := opts
		o.Color = c
		items[i] = comparisonItem{caption: c.String(), opts: o}
	}
	return compare(lib, id, "compare:colors", items)
}

// CompareSizes shows id once per size (sm, md, lg), bottom-aligned and
// captioned with the size name.
func CompareSizes(lib *pattern.Library, id string, opts GridOptions) *Showcase {
	items := make([]comparisonItem, len(pattern.Sizes))
	for i, s := range pattern.Sizes {
		o := opts
		o.Size = s
		items[i] = comparisonItem{caption: s.String(), opts: o}
	}
	return compare(lib, id, "compare:sizes", items)
}

// CompareDimensions shows id once per dimension. id must exist in every
// dimension given; a dimension without it logs a warning and shows an empty
// area rather than failing the whole comparison.
func CompareDimensions(lib *pattern.Library, id string, opts GridOptions, dims ...pattern.Dimension) *Showcase {
	items := make([]comparisonItem, len(dims))
	for i, d := range dims {
		o := opts
		o.Dimension = d
		items[i] = comparisonItem{caption: d.String(), opts: o}
	}
	return compare(lib, id, "compare:dimensions", items)
}

type comparisonItem struct {
	caption string
	opts    GridOptions
}

// compare lays items out in one row, grids bottom-aligned with a caption
// centred underneath.
func compare(lib *pattern.Library, id, name string, items []comparisonItem) *Showcase {
	sc := &Showcase{node: NewContainer(name)}
	tallest := 0.0
	for _, it := range items {
		it.opts.ShowLabel = false
		g := NewGrid(lib, id, it.opts)
		sc.grids = append(sc.grids, g)
		if _, h := g.Bounds(); h > tallest {
			tallest = h
		}
	}
	x := 0.0
	for i, g := range sc.grids {
		w, h := g.Bounds()
		capW := float64(len(items[i].caption) * labelCharWidth)
		colW := max(w, capW)
		g.Node().SetPosition(x+(colW-w)/2, tallest-h)
		sc.node.AddChild(g.Node())

		caption := NewLabel(fmt.Sprintf("caption:%d", i), items[i].caption)
		caption.SetPosition(x+(colW-capW)/2, tallest+captionGap)
		sc.node.AddChild(caption)

		x += colW + showcaseGap
	}
	if len(sc.grids) > 0 {
		x -= showcaseGap
	}
	sc.w, sc.h = x, tallest+captionGap+labelLineHeight
	return sc
}

// flow places boxes left to right, wrapping at a fixed width.
type flow struct {
	width      float64
	x, y       float64
	lineHeight float64
	maxX       float64
}

func newFlow(width float64) *flow {
	return &flow{width: width}
}

func (f *flow) place(w, h float64) (x, y float64) {
	if f.x > 0 && f.x+w > f.width {
		f.breakLine(showcaseGap)
	}
	x, y = f.x, f.y
	f.x += w + showcaseGap
	f.maxX = max(f.maxX, x+w)
	f.lineHeight = max(f.lineHeight, h)
	return x, y
}

func (f *flow) breakLine(gap float64) {
	if f.x == 0 && f.lineHeight == 0 {
		f.y += gap
		return
	}
	f.y += f.lineHeight + gap
	f.x = 0
	f.lineHeight = 0
}

func (f *flow) size() (w, h float64) {
	h = f.y
	if f.x > 0 {
		h += f.lineHeight
	}
	return f.maxX, h
}
