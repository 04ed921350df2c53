package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sourceful-energy/pixelgrid/anim"
	"github.com/sourceful-energy/pixelgrid/pattern"
)

// PreviewOptions configures Preview.
type PreviewOptions struct {
	Speed  pattern.Speed
	Static bool

	// Color is used for patterns without a recommended colour, and for
	// every pattern when FixedColor is set.
	Color      pattern.ColorName
	FixedColor bool

	// Interval is the animation tick. Zero uses anim.DefaultInterval.
	Interval time.Duration
}

// Help is the key summary printed under the preview.
const Help = "space pause · n/→ next · p/← prev · c colour · q quit"

// Preview animates pattern id from cat on screen until the user quits or
// ctx ends. The caller owns screen: it must be initialised and is not
// finalised here. A user quit returns nil; cancellation returns ctx.Err().
func Preview(ctx context.Context, screen tcell.Screen, cat *pattern.Catalog, id string, opts PreviewOptions) error {
	p, err := cat.Lookup(id)
	if err != nil {
		return err
	}

	pv := &preview{
		screen:  screen,
		cat:     cat,
		ids:     cat.Names(),
		opts:    opts,
		control: make(chan func(*anim.Animator)),
	}
	for i, n := range pv.ids {
		if n == id {
			pv.idx = i
		}
	}
	pv.color = pv.colorFor(id)
	a := anim.New(p, cat.Dimension(), anim.Options{Speed: opts.Speed, Static: opts.Static})
	pv.anim = a

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- anim.Loop(loopCtx, a, anim.LoopConfig{
			Interval: opts.Interval,
			Control:  pv.control,
			OnFrame:  pv.draw,
		})
	}()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		select {
		case err := <-done:
			return err
		case ev, ok := <-events:
			if !ok || !pv.handle(loopCtx, ev) {
				cancel()
				<-done
				return nil
			}
		}
	}
}

// preview is the state of one Preview call. Everything except control is
// touched only from the loop goroutine, through control functions and draw.
type preview struct {
	screen  tcell.Screen
	cat     *pattern.Catalog
	ids     []string
	idx     int
	color   pattern.ColorName
	opts    PreviewOptions
	anim    *anim.Animator
	control chan func(*anim.Animator)
}

func (pv *preview) colorFor(id string) pattern.ColorName {
	if pv.opts.FixedColor {
		return pv.opts.Color
	}
	if c, ok := pv.cat.Color(id); ok {
		return c
	}
	return pv.opts.Color
}

// handle turns one input event into a control function. It returns false
// when the preview should end.
func (pv *preview) handle(ctx context.Context, ev tcell.Event) bool {
	var fn func(*anim.Animator)
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight:
			fn = pv.step(1)
		case tcell.KeyLeft:
			fn = pv.step(-1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				fn = togglePause
			case 'n':
				fn = pv.step(1)
			case 'p':
				fn = pv.step(-1)
			case 'c':
				fn = pv.nextColor
			}
		}
	case *tcell.EventResize:
		fn = func(*anim.Animator) { pv.screen.Sync() }
	}
	if fn != nil {
		select {
		case pv.control <- fn:
		case <-ctx.Done():
			return false
		}
	}
	return true
}

func togglePause(a *anim.Animator) {
	if a.Paused() {
		a.Resume()
	} else {
		a.Pause()
	}
}

// step moves to the pattern delta places away in catalog order, wrapping.
// Pause state is kept.
func (pv *preview) step(delta int) func(*anim.Animator) {
	return func(a *anim.Animator) {
		n := len(pv.ids)
		pv.idx = ((pv.idx+delta)%n + n) % n
		id := pv.ids[pv.idx]
		p, err := pv.cat.Lookup(id)
		if err != nil {
			return
		}
		pv.color = pv.colorFor(id)
		a.SetPattern(p)
	}
}

func (pv *preview) nextColor(*anim.Animator) {
	pv.opts.FixedColor = true
	for i, c := range pattern.Colors {
		if c == pv.color {
			pv.color = pattern.Colors[(i+1)%len(pattern.Colors)]
			pv.opts.Color = pv.color
			return
		}
	}
}

// draw repaints the whole screen: grid at (2,1), then status and help.
func (pv *preview) draw(index int, active pattern.Bitmap) {
	s := pv.screen
	s.Clear()

	dim := pv.cat.Dimension()
	on, off := cellColors(pv.color)
	DrawGrid(s, 2, 1, dim, active, on, off)

	id := pv.ids[pv.idx]
	p, _ := pv.cat.Lookup(id)
	_, rows := GridSize(dim)
	y := 1 + rows + 1
	drawText(s, 2, y, tcell.StyleDefault.Bold(true), p.Name)
	drawText(s, 2, y+1, tcell.StyleDefault, StatusLine(id, index, p.Len(), pv.color, pv.anim.Paused(), pv.opts.Static))
	drawText(s, 2, y+3, tcell.StyleDefault.Dim(true), Help)
	s.Show()
}

// StatusLine formats the line under the preview grid.
func StatusLine(id string, index, frames int, c pattern.ColorName, paused, static bool) string {
	state := "playing"
	switch {
	case static:
		state = "static"
	case paused:
		state = "paused"
	}
	return fmt.Sprintf("%s · frame %d/%d · %s · %s", id, index+1, frames, c, state)
}

// DrawGrid paints a dim×dim grid with its top-left cell at (x, y).
func DrawGrid(s tcell.Screen, x, y int, dim pattern.Dimension, active pattern.Bitmap, on, off colorful.Color) {
	onStyle := tcell.StyleDefault.Foreground(tcellColor(on))
	offStyle := tcell.StyleDefault.Foreground(tcellColor(off))
	n := int(dim)
	for i := 0; i < dim.Cells(); i++ {
		cx, cy := x+(i%n)*CellWidth, y+i/n
		glyph, style := offGlyph, offStyle
		if active.On(pattern.PixelIndex(i)) {
			glyph, style = onGlyph, onStyle
		}
		for k := 0; k < CellWidth; k++ {
			s.SetContent(cx+k, cy, glyph, nil, style)
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
