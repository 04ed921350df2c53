package pixelgrid

import (
	"log"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/sourceful-energy/pixelgrid/anim"
	"github.com/sourceful-energy/pixelgrid/pattern"
)

const (
	// OffAlpha is the opacity of an unlit cell relative to the lit colour.
	OffAlpha = 0.1

	// GlowAlpha is the opacity of the dark-mode halo behind a lit cell.
	GlowAlpha = 0.45

	// DefaultTransition is the fade time between on and off.
	DefaultTransition = 150 * time.Millisecond

	labelGap        = 4
	labelLineHeight = 16
	labelCharWidth  = 6
)

// GridOptions configures a Grid. The zero value is a 3x3, green, medium,
// normal-speed, animated grid without a label.
type GridOptions struct {
	Dimension pattern.Dimension // 0 means 3
	Color     pattern.ColorName
	Size      pattern.Size
	Speed     pattern.Speed
	Static    bool // show the fullest frame instead of animating
	Paused    bool
	ShowLabel bool // print the pattern id below the grid

	// DarkMode adds an additive halo in a lighter tint behind lit cells.
	DarkMode bool

	// ReducedMotion switches cells on and off instantly instead of fading.
	ReducedMotion bool

	// Transition overrides DefaultTransition. Negative disables fades.
	Transition time.Duration

	// Events receives lifecycle and frame events. Optional.
	Events EventSink
}

// Grid is an N×N pixel grid widget playing one pattern. Add Node() to a
// scene; the grid advances itself from the node's OnUpdate hook.
type Grid struct {
	lib  *pattern.Library
	id   string
	ref  pattern.Ref
	opts GridOptions

	found    bool
	disposed bool

	anim  *anim.Animator
	node  *Node
	body  *Node
	cells []*Node
	glows []*Node
	label *Node
	lit   []bool
	fades []*TweenGroup // cells first, then glows; nil when idle
	hue   *TweenGroup
}

// NewGrid creates a grid showing pattern id from lib. A missing id is not an
// error: the grid logs a warning, renders nothing and reports Found() false.
func NewGrid(lib *pattern.Library, id string, opts GridOptions) *Grid {
	if opts.Dimension == 0 {
		opts.Dimension = pattern.Dim3
	}
	g := &Grid{lib: lib, opts: opts}
	g.node = NewContainer("grid")
	g.node.UserData = g
	g.node.OnUpdate = func(dt float64) { g.Update(float32(dt)) }
	g.anim = anim.New(pattern.Pattern{}, opts.Dimension, anim.Options{
		Speed:  opts.Speed,
		Static: opts.Static,
		Paused: opts.Paused,
	})
	g.build()
	g.SetPattern(id)
	return g
}

// Node returns the grid's root node.
func (g *Grid) Node() *Node { return g.node }

// ID returns the requested pattern identifier.
func (g *Grid) ID() string { return g.id }

// Ref returns the catalog-qualified reference of the loaded pattern. For a
// missing pattern it names the dimension's primary catalog.
func (g *Grid) Ref() pattern.Ref { return g.ref }

// Found reports whether the requested pattern exists for the grid's
// dimension.
func (g *Grid) Found() bool { return g.found }

// Options returns the current options.
func (g *Grid) Options() GridOptions { return g.opts }

// Pattern returns the loaded pattern, or the zero Pattern if none.
func (g *Grid) Pattern() pattern.Pattern { return g.anim.Pattern() }

// Index returns the current frame index.
func (g *Grid) Index() int { return g.anim.Index() }

// Active returns the lit pixels of the current frame as a bitmap.
func (g *Grid) Active() pattern.Bitmap { return g.anim.Active() }

// Paused reports whether the grid is paused.
func (g *Grid) Paused() bool { return g.anim.Paused() }

// AriaLabel returns the accessible description of the grid, e.g.
// "Animated pixel grid: Corners Sync". It is empty when the pattern is
// missing.
func (g *Grid) AriaLabel() string {
	if !g.found {
		return ""
	}
	mode := "Animated"
	if g.opts.Static {
		mode = "Static"
	}
	return mode + " pixel grid: " + g.anim.Pattern().Name
}

// Extent returns the side length of the cell area in pixels.
func (g *Grid) Extent() int {
	return g.opts.Size.Geometry().Extent(g.opts.Dimension)
}

// Bounds returns the width and height the grid occupies including its
// label. A missing pattern still occupies its area.
func (g *Grid) Bounds() (w, h float64) {
	ext := float64(g.Extent())
	w, h = ext, ext
	if g.opts.ShowLabel {
		h += labelGap + labelLineHeight
		if lw := float64(len(g.id) * labelCharWidth); lw > w {
			w = lw
		}
	}
	return w, h
}

// SetPattern switches to another identifier. Timing restarts from the first
// frame. The returned error is informational; a missing pattern leaves the
// grid empty.
func (g *Grid) SetPattern(id string) error {
	if g.disposed {
		return nil
	}
	g.id = id
	if g.label != nil {
		g.label.Text = id
	}
	p, ref, err := g.lib.Resolve(g.opts.Dimension, id)
	g.ref = ref
	if err != nil {
		g.found = false
		log.Printf("pixelgrid: pattern %q not found for %s grid", id, g.opts.Dimension)
		g.anim.SetPattern(pattern.Pattern{})
		g.body.Visible = false
		g.emit(GridPatternMissing)
		return err
	}
	g.found = true
	g.body.Visible = true
	g.anim.SetPattern(p)
	g.applyFrame(true)
	g.emit(GridPatternChanged)
	return nil
}

// SetDimension changes the grid size and re-resolves the current id in the
// new dimension's catalogs.
func (g *Grid) SetDimension(dim pattern.Dimension) error {
	if g.disposed || dim == g.opts.Dimension {
		return nil
	}
	g.opts.Dimension = dim
	g.anim.SetDimension(dim)
	g.build()
	return g.SetPattern(g.id)
}

// SetSize changes the cell size and gap.
func (g *Grid) SetSize(s pattern.Size) {
	if g.disposed || s == g.opts.Size {
		return
	}
	g.opts.Size = s
	g.build()
	g.applyFrame(true)
}

// SetColor changes the colour family. Lit cells fade to the new colour
// unless reduced motion is on.
func (g *Grid) SetColor(c pattern.ColorName) {
	if g.disposed || c == g.opts.Color {
		return
	}
	g.opts.Color = c
	sw := c.Resolve()
	to := RGBColor(sw.RGB, 1)
	if d := g.transition(); d > 0 {
		g.hue = g.tweenCells(to, d)
	} else {
		for _, cell := range g.cells {
			cell.Color = to
		}
	}
	glow := RGBColor(sw.Glow(), 1)
	for _, gl := range g.glows {
		gl.Color = glow
	}
}

// tweenCells fades every cell to colour to. The returned group drives the
// first cell; the others follow from its values in Update.
func (g *Grid) tweenCells(to Color, d float32) *TweenGroup {
	if len(g.cells) == 0 {
		return nil
	}
	return TweenColor(g.cells[0], to, d, ease.OutQuad)
}

// SetSpeed changes the default cycle for patterns without their own.
func (g *Grid) SetSpeed(s pattern.Speed) {
	g.opts.Speed = s
	g.anim.SetSpeed(s)
}

// SetStatic switches between animated and static display.
func (g *Grid) SetStatic(static bool) {
	if g.disposed || static == g.opts.Static {
		return
	}
	g.opts.Static = static
	g.anim.SetStatic(static)
	g.applyFrame(false)
}

// SetShowLabel shows or hides the pattern id below the grid.
func (g *Grid) SetShowLabel(show bool) {
	g.opts.ShowLabel = show
	if g.label != nil {
		g.label.Visible = show
	}
}

// SetDarkMode toggles the glow halos.
func (g *Grid) SetDarkMode(dark bool) {
	if g.disposed || dark == g.opts.DarkMode {
		return
	}
	g.opts.DarkMode = dark
	g.build()
	g.applyFrame(true)
}

// SetReducedMotion toggles fades. Running fades finish immediately.
func (g *Grid) SetReducedMotion(reduced bool) {
	g.opts.ReducedMotion = reduced
	if reduced {
		g.finishFades()
	}
}

// Pause stops frame advancement and keeps the current frame visible.
func (g *Grid) Pause() {
	if g.disposed || g.anim.Paused() {
		return
	}
	g.opts.Paused = true
	g.anim.Pause()
	g.emit(GridPaused)
}

// Resume continues from the paused frame after one full frame duration.
func (g *Grid) Resume() {
	if g.disposed || !g.anim.Paused() {
		return
	}
	g.opts.Paused = false
	g.anim.Resume()
	g.emit(GridResumed)
}

// TogglePause pauses a running grid and resumes a paused one.
func (g *Grid) TogglePause() {
	if g.anim.Paused() {
		g.Resume()
	} else {
		g.Pause()
	}
}

// Update advances timing and fades by dt seconds. It is called from the
// node's OnUpdate; call it directly only for grids not attached to a scene.
func (g *Grid) Update(dt float32) {
	if g.disposed {
		return
	}
	for i, f := range g.fades {
		if f == nil {
			continue
		}
		f.Update(dt)
		if f.Done {
			g.fades[i] = nil
		}
	}
	if g.hue != nil {
		g.hue.Update(dt)
		c := g.cells[0].Color
		for _, cell := range g.cells[1:] {
			cell.Color = c
		}
		if g.hue.Done {
			g.hue = nil
		}
	}
	// Fades started by a frame change begin on the next tick.
	if g.anim.Update(time.Duration(float64(dt) * float64(time.Second))) {
		g.applyFrame(false)
		g.emit(GridFrameAdvanced)
	}
}

// Dispose stops the animation and releases the grid's nodes.
func (g *Grid) Dispose() {
	if g.disposed {
		return
	}
	g.emit(GridDisposed)
	g.disposed = true
	g.anim.Dispose()
	g.node.Dispose()
	g.cells, g.glows, g.fades, g.hue = nil, nil, nil, nil
}

// --- Internals ---

func (g *Grid) transition() float32 {
	if g.opts.ReducedMotion || g.opts.Transition < 0 {
		return 0
	}
	d := g.opts.Transition
	if d == 0 {
		d = DefaultTransition
	}
	return float32(d.Seconds())
}

// build (re)creates the cell nodes for the current dimension, size and
// dark mode.
func (g *Grid) build() {
	for _, c := range g.node.Children() {
		c.dispose()
	}
	g.node.RemoveChildren()

	dim := g.opts.Dimension
	geo := g.opts.Size.Geometry()
	sw := g.opts.Color.Resolve()
	cellColor := RGBColor(sw.RGB, 1)
	glowColor := RGBColor(sw.Glow(), 1)
	spread := float64(geo.Gap)

	g.body = NewContainer("cells")
	g.body.Visible = g.found
	g.node.AddChild(g.body)

	n := dim.Cells()
	g.cells = make([]*Node, n)
	g.lit = make([]bool, n)
	g.glows = nil
	if g.opts.DarkMode {
		g.glows = make([]*Node, n)
	}
	g.fades = make([]*TweenGroup, n+len(g.glows))
	g.hue = nil

	for i := 0; i < n; i++ {
		x, y := geo.CellOrigin(dim, pattern.PixelIndex(i))
		if g.opts.DarkMode {
			gl := NewRect("glow", float64(geo.Pixel)+2*spread, float64(geo.Pixel)+2*spread, glowColor)
			gl.SetPosition(float64(x)-spread, float64(y)-spread)
			gl.BlendMode = BlendAdd
			gl.Alpha = 0
			gl.ZIndex = -1
			g.glows[i] = gl
			g.body.AddChild(gl)
		}
		cell := NewRect("cell", float64(geo.Pixel), float64(geo.Pixel), cellColor)
		cell.SetPosition(float64(x), float64(y))
		cell.Alpha = OffAlpha
		g.cells[i] = cell
		g.body.AddChild(cell)
	}

	g.label = NewLabel("label", g.id)
	g.label.SetPosition(0, float64(geo.Extent(dim)+labelGap))
	g.label.Visible = g.opts.ShowLabel
	g.node.AddChild(g.label)
}

// applyFrame brings cell alphas in line with the animator's active bitmap.
// instant skips fades.
func (g *Grid) applyFrame(instant bool) {
	active := g.anim.Active()
	d := g.transition()
	for i, cell := range g.cells {
		on := active.On(pattern.PixelIndex(i))
		if on == g.lit[i] && !instant {
			continue
		}
		g.lit[i] = on
		g.setCell(i, cell, on, instant || d == 0, d)
	}
}

func (g *Grid) setCell(i int, cell *Node, on, instant bool, d float32) {
	alpha, glow := OffAlpha, 0.0
	if on {
		alpha, glow = 1, GlowAlpha
	}
	if instant {
		g.fades[i] = nil
		cell.SetAlpha(alpha)
		if g.glows != nil {
			g.fades[len(g.cells)+i] = nil
			g.glows[i].SetAlpha(glow)
		}
		return
	}
	g.fades[i] = TweenAlpha(cell, alpha, d, ease.OutQuad)
	if g.glows != nil {
		g.fades[len(g.cells)+i] = TweenAlpha(g.glows[i], glow, d, ease.OutQuad)
	}
}

func (g *Grid) finishFades() {
	for i, f := range g.fades {
		if f != nil {
			f.Finish()
			g.fades[i] = nil
		}
	}
	if g.hue != nil {
		g.hue.Finish()
		c := g.cells[0].Color
		for _, cell := range g.cells[1:] {
			cell.Color = c
		}
		g.hue = nil
	}
}

func (g *Grid) emit(t GridEventType) {
	if g.opts.Events == nil {
		return
	}
	ev := GridEvent{
		Type:      t,
		NodeID:    g.node.ID,
		Ref:       g.ref,
		Dimension: g.opts.Dimension,
		Frame:     g.anim.Index(),
	}
	if t == GridFrameAdvanced || t == GridPatternChanged {
		ev.Active = g.anim.Active().Indices()
	}
	g.opts.Events.EmitGridEvent(ev)
}
