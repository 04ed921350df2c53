package codegen

import (
	"fmt"
	"strings"
)

// Separator joins patterns in an aggregate export.
var Separator = "\n\n// " + strings.Repeat("=", 70) + "\n\n"

// Export is one downloadable file.
type Export struct {
	Content  string
	Filename string
	MIMEType string
}

// ExportAll renders every pattern of the catalog, in authoring order, with
// its recommended colour, joined by Separator.
func (g *Generator) ExportAll(f Format) (Export, error) {
	if !f.Valid() {
		return Export{}, fmt.Errorf("export: %w: %q", ErrUnsupportedFormat, string(f))
	}
	names := g.cat.Names()
	parts := make([]string, len(names))
	for i, id := range names {
		src, err := g.Generate(f, id)
		if err != nil {
			return Export{}, fmt.Errorf("export %s: %w", f, err)
		}
		parts[i] = src
	}
	return Export{
		Content:  strings.Join(parts, Separator),
		Filename: f.Filename(),
		MIMEType: f.MIMEType(),
	}, nil
}

// Card summarises a pattern for listings.
type Card struct {
	ID          string
	Name        string
	Description string
	Frames      int
	CycleMS     int64
	FrameMS     int64
	Color       string
}

// Describe returns the listing card for id.
func (g *Generator) Describe(id string) (Card, error) {
	p, err := g.cat.Lookup(id)
	if err != nil {
		return Card{}, err
	}
	c, _ := g.cat.Color(id)
	cycle, frame := Timing(p)
	return Card{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Frames:      p.Len(),
		CycleMS:     cycle,
		FrameMS:     frame,
		Color:       c.String(),
	}, nil
}

// Cards describes every pattern in catalog order.
func (g *Generator) Cards() []Card {
	names := g.cat.Names()
	cards := make([]Card, 0, len(names))
	for _, id := range names {
		if c, err := g.Describe(id); err == nil {
			cards = append(cards, c)
		}
	}
	return cards
}
