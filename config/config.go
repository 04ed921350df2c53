// Package config loads showcase and preview settings from TOML.
//
// A file only needs the keys it changes; everything else takes the value
// from [Default]. Unknown keys are an error so typos do not silently fall
// back to defaults.
//
//	catalog = "zap"
//	color = "pink"
//	dark_mode = true
//
//	[window]
//	title = "Zap animations"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sourceful-energy/pixelgrid"
	"github.com/sourceful-energy/pixelgrid/catalog"
	"github.com/sourceful-energy/pixelgrid/pattern"
)

// ErrUnknownKey is wrapped by Parse when the document has keys Showcase
// does not define.
var ErrUnknownKey = errors.New("unknown config key")

// Window sizes the ebiten window.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Showcase is the on-disk form of a showcase or preview session. Enum
// fields hold their text names; use the accessor methods for typed values.
type Showcase struct {
	Catalog           string   `toml:"catalog"`
	Categories        []string `toml:"categories"`
	Flat              bool     `toml:"flat"`
	Color             string   `toml:"color"`
	RecommendedColors bool     `toml:"recommended_colors"`
	Size              string   `toml:"size"`
	Speed             string   `toml:"speed"`
	Static            bool     `toml:"static"`
	ShowLabels        bool     `toml:"show_labels"`
	DarkMode          bool     `toml:"dark_mode"`
	ReducedMotion     bool     `toml:"reduced_motion"`
	Window            Window   `toml:"window"`
}

// Default returns the settings used for keys a file leaves out.
func Default() Showcase {
	return Showcase{
		Catalog:    string(pattern.Catalog3x3),
		Color:      pattern.Green.String(),
		Size:       pattern.SizeMedium.String(),
		Speed:      pattern.SpeedNormal.String(),
		ShowLabels: true,
		Window: Window{
			Title:  "pixelgrid showcase",
			Width:  960,
			Height: 720,
		},
	}
}

// Load reads and parses the file at path over Default.
func Load(path string) (Showcase, error) {
	return LoadOver(path, Default())
}

// LoadOver reads the file at path and decodes it over base, so keys the
// file leaves out keep base's values.
func LoadOver(path string, base Showcase) (Showcase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Showcase{}, fmt.Errorf("config: %w", err)
	}
	s, err := ParseOver(data, base)
	if err != nil {
		return Showcase{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a TOML document over Default and validates the result.
func Parse(data []byte) (Showcase, error) {
	return ParseOver(data, Default())
}

// ParseOver decodes a TOML document over base and validates the result.
func ParseOver(data []byte, base Showcase) (Showcase, error) {
	s := base
	s.Categories = append([]string(nil), base.Categories...)
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return Showcase{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Showcase{}, fmt.Errorf("config: %w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Showcase{}, err
	}
	return s, nil
}

// Validate checks every enum name, the window size and that each category
// label exists in the selected catalog of catalog.Default.
func (s Showcase) Validate() error {
	var errs []error
	if id, err := pattern.ParseCatalogID(s.Catalog); err != nil {
		errs = append(errs, err)
	} else if cat, err := catalog.Default().Catalog(id); err != nil {
		errs = append(errs, err)
	} else {
		known := make(map[string]bool)
		for _, c := range cat.Categories() {
			known[c.Label] = true
		}
		for _, label := range s.Categories {
			if !known[label] {
				errs = append(errs, fmt.Errorf("%w %q in %s", pattern.ErrUnknownCategory, label, id))
			}
		}
	}
	if _, err := pattern.ParseColor(s.Color); err != nil {
		errs = append(errs, err)
	}
	if _, err := pattern.ParseSize(s.Size); err != nil {
		errs = append(errs, err)
	}
	if _, err := pattern.ParseSpeed(s.Speed); err != nil {
		errs = append(errs, err)
	}
	if s.Window.Width < 0 || s.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("negative window size %dx%d", s.Window.Width, s.Window.Height))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// CatalogID returns the selected catalog. It assumes a validated Showcase.
func (s Showcase) CatalogID() pattern.CatalogID {
	id, _ := pattern.ParseCatalogID(s.Catalog)
	return id
}

// GridOptions converts the shared grid settings.
func (s Showcase) GridOptions() pixelgrid.GridOptions {
	color, _ := pattern.ParseColor(s.Color)
	size, _ := pattern.ParseSize(s.Size)
	speed, _ := pattern.ParseSpeed(s.Speed)
	return pixelgrid.GridOptions{
		Dimension:     s.CatalogID().Dimension(),
		Color:         color,
		Size:          size,
		Speed:         speed,
		Static:        s.Static,
		ShowLabel:     s.ShowLabels,
		DarkMode:      s.DarkMode,
		ReducedMotion: s.ReducedMotion,
	}
}

// ShowcaseOptions converts the settings for pixelgrid.NewShowcase. Row
// width follows the window width.
func (s Showcase) ShowcaseOptions() pixelgrid.ShowcaseOptions {
	return pixelgrid.ShowcaseOptions{
		Grid:              s.GridOptions(),
		Flat:              s.Flat,
		Categories:        s.Categories,
		RecommendedColors: s.RecommendedColors,
		RowWidth:          float64(s.Window.Width),
	}
}

// RunConfig converts the window settings. Dark mode clears to black and
// light mode to white.
func (s Showcase) RunConfig() pixelgrid.RunConfig {
	bg := pixelgrid.ColorWhite
	if s.DarkMode {
		bg = pixelgrid.ColorBlack
	}
	return pixelgrid.RunConfig{
		Title:      s.Window.Title,
		Width:      s.Window.Width,
		Height:     s.Window.Height,
		ClearColor: bg,
	}
}
