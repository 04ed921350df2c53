// Package codegen turns Zap catalog patterns into standalone source for four
// targets: Arduino/FastLED sketches, ESP-IDF C firmware, Flutter widgets and
// React usage snippets.
//
// Every backend renders the same view: the pattern's frames flattened to
// 0/1 bitmaps, one rounded frame duration and one RGB triple from the shared
// palette. Two outputs generated for the same pattern and colour therefore
// encode identical frames, timing and colour.
package codegen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"

	"github.com/sourceful-energy/pixelgrid/pattern"
)

// ErrUnsupportedFormat is returned for a format name that has no backend.
var ErrUnsupportedFormat = errors.New("unsupported format")

// DefaultCycle is the cycle assumed for patterns without their own. The
// generator has no speed setting, so it is always the normal speed.
const DefaultCycle = 1500 * time.Millisecond

// Target hardware written into firmware headers.
const (
	Hardware   = "M5Stack Atom Matrix (5x5 WS2812C)"
	DataPin    = 27
	Brightness = 20
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("codegen").Funcs(template.FuncMap{
	"rows":    rows,
	"comment": comment,
	"dart":    dartString,
	"ts":      tsString,
}).ParseFS(templateFS, "templates/*.tmpl"))

// Generator renders patterns from one catalog.
type Generator struct {
	cat *pattern.Catalog
}

// New returns a generator for cat.
func New(cat *pattern.Catalog) *Generator {
	return &Generator{cat: cat}
}

// Catalog returns the catalog the generator reads from.
func (g *Generator) Catalog() *pattern.Catalog { return g.cat }

// Option adjusts a single Generate call.
type Option func(*settings)

type settings struct {
	color    pattern.ColorName
	override bool
}

// WithColor replaces the pattern's recommended colour.
func WithColor(c pattern.ColorName) Option {
	return func(s *settings) {
		s.color = c
		s.override = true
	}
}

// Generate renders pattern id in format f. It fails with a
// *pattern.LookupError for an unknown id, ErrUnsupportedFormat for an
// unknown format and pattern.ErrUnknownColor for a colour outside the
// palette; it never returns partial output.
func (g *Generator) Generate(f Format, id string, opts ...Option) (string, error) {
	if !f.Valid() {
		return "", fmt.Errorf("generate %s: %w: %q", id, ErrUnsupportedFormat, string(f))
	}
	v, err := g.view(id, opts)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, f.template(), v); err != nil {
		return "", fmt.Errorf("generate %s %s: %w", f, id, err)
	}
	return buf.String(), nil
}

// view is the data every template renders from.
type view struct {
	ID          string
	Name        string
	Description string

	FuncName      string // zap_ready
	MacroName     string // ZAP_READY
	ClassName     string // ZapReady
	ComponentName string // zapReady

	Color     pattern.ColorName
	RGB       pattern.RGB
	HexDigits string

	Frames        []pattern.Bitmap
	FrameCount    int
	FrameDuration int64 // ms
	CycleDuration int64 // ms

	Side       int
	Cells      int
	OffOpacity string

	Hardware   string
	DataPin    int
	Brightness int
}

func (g *Generator) view(id string, opts []Option) (view, error) {
	p, err := g.cat.Lookup(id)
	if err != nil {
		return view{}, err
	}
	var s settings
	for _, o := range opts {
		o(&s)
	}
	color := s.color
	if !s.override {
		color, _ = g.cat.Color(id)
	}
	if !color.Valid() {
		return view{}, fmt.Errorf("%s: %w: %v", id, pattern.ErrUnknownColor, color)
	}
	sw := color.Resolve()
	dim := g.cat.Dimension()
	cycle, frame := Timing(p)

	return view{
		ID:            id,
		Name:          p.Name,
		Description:   p.Description,
		FuncName:      FuncName(id),
		MacroName:     strings.ToUpper(FuncName(id)),
		ClassName:     ClassName(id),
		ComponentName: ComponentName(id),
		Color:         sw.Name,
		RGB:           sw.RGB,
		HexDigits:     sw.HexDigits(),
		Frames:        p.Bitmaps(dim),
		FrameCount:    p.Len(),
		FrameDuration: frame,
		CycleDuration: cycle,
		Side:          int(dim),
		Cells:         dim.Cells(),
		OffOpacity:    "0.1",
		Hardware:      Hardware,
		DataPin:       DataPin,
		Brightness:    Brightness,
	}, nil
}

// Timing returns the cycle and the rounded per-frame duration of p in
// milliseconds, using DefaultCycle when p has no cycle of its own.
func Timing(p pattern.Pattern) (cycleMS, frameMS int64) {
	cycle := p.CycleDuration
	if cycle <= 0 {
		cycle = DefaultCycle
	}
	cycleMS = cycle.Milliseconds()
	if n := p.Len(); n > 0 {
		frameMS = int64(math.Round(float64(cycleMS) / float64(n)))
	}
	return cycleMS, frameMS
}

// --- Identifiers ---

// FuncName is the C identifier for id: "zap-ready" becomes "zap_ready".
func FuncName(id string) string {
	return strings.ReplaceAll(id, "-", "_")
}

// ClassName is the Dart class prefix for id: "zap-ready" becomes "ZapReady".
func ClassName(id string) string {
	var b strings.Builder
	for _, word := range strings.Split(id, "-") {
		if word == "" {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}

// ComponentName is the React function prefix for id: "zap-ready" becomes
// "zapReady". Each dash is dropped and the character after it upper-cased.
func ComponentName(id string) string {
	var b strings.Builder
	for i := 0; i < len(id); i++ {
		if id[i] == '-' && i+1 < len(id) {
			b.WriteString(strings.ToUpper(id[i+1 : i+2]))
			i++
			continue
		}
		b.WriteByte(id[i])
	}
	return b.String()
}

// --- Template helpers ---

// rows renders each bitmap as a comma-separated row wrapped in open and
// close, one per line.
func rows(frames []pattern.Bitmap, open, close string) string {
	lines := make([]string, len(frames))
	for i, f := range frames {
		cells := make([]string, len(f))
		for j, v := range f {
			if v != 0 {
				cells[j] = "1"
			} else {
				cells[j] = "0"
			}
		}
		lines[i] = open + strings.Join(cells, ",") + close
	}
	return strings.Join(lines, ",\n")
}

// comment flattens s onto one line and breaks any block-comment terminator.
func comment(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
	return strings.ReplaceAll(s, "*/", "* /")
}

var dartEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `$`, `\$`, "\n", `\n`, "\r", `\r`)

// dartString escapes s for a single-quoted Dart literal.
func dartString(s string) string { return dartEscaper.Replace(s) }

var tsEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)

// tsString escapes s for a double-quoted TypeScript literal.
func tsString(s string) string { return tsEscaper.Replace(s) }
