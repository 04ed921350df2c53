package catalog

import (
	"time"

	"github.com/sourceful-energy/pixelgrid/pattern"
)

// grid3Patterns is the default 3x3 catalog.
//
// Grid position reference (3x3, index = y*3 + x):
//
//	 0  1  2
//	 3  4  5
//	 6  7  8
var grid3Patterns = []pattern.Entry{
	{ID: "solo-center", Pattern: pattern.Pattern{
		Name:        "Solo Center",
		Description: "Center pixel pulses",
		Frames: frames(
			on(),
			on(4),
			on(4),
			on(),
		),
	}},
	{ID: "solo-tl", Pattern: pattern.Pattern{
		Name:        "Solo Top-Left",
		Description: "Top left pixel pulses",
		Frames: frames(
			on(),
			on(0),
			on(0),
			on(),
		),
	}},
	{ID: "solo-tr", Pattern: pattern.Pattern{
		Name:        "Solo Top-Right",
		Description: "Top right pixel pulses",
		Frames: frames(
			on(),
			on(2),
			on(2),
			on(),
		),
	}},
	{ID: "solo-bl", Pattern: pattern.Pattern{
		Name:        "Solo Bottom-Left",
		Description: "Bottom left pixel pulses",
		Frames: frames(
			on(),
			on(6),
			on(6),
			on(),
		),
	}},
	{ID: "solo-br", Pattern: pattern.Pattern{
		Name:        "Solo Bottom-Right",
		Description: "Bottom right pixel pulses",
		Frames: frames(
			on(),
			on(8),
			on(8),
			on(),
		),
	}},
	{ID: "line-h-top", Pattern: pattern.Pattern{
		Name:        "Horizontal Top",
		Description: "Top row lights up left to right",
		Frames: frames(
			on(),
			on(0),
			on(0, 1),
			on(0, 1, 2),
			on(1, 2),
			on(2),
			on(),
		),
	}},
	{ID: "line-h-mid", Pattern: pattern.Pattern{
		Name:        "Horizontal Middle",
		Description: "Middle row lights up left to right",
		Frames: frames(
			on(),
			on(3),
			on(3, 4),
			on(3, 4, 5),
			on(4, 5),
			on(5),
			on(),
		),
	}},
	{ID: "line-h-bot", Pattern: pattern.Pattern{
		Name:        "Horizontal Bottom",
		Description: "Bottom row lights up left to right",
		Frames: frames(
			on(),
			on(6),
			on(6, 7),
			on(6, 7, 8),
			on(7, 8),
			on(8),
			on(),
		),
	}},
	{ID: "line-v-left", Pattern: pattern.Pattern{
		Name:        "Vertical Left",
		Description: "Left column lights up top to bottom",
		Frames: frames(
			on(),
			on(0),
			on(0, 3),
			on(0, 3, 6),
			on(3, 6),
			on(6),
			on(),
		),
	}},
	{ID: "line-v-mid", Pattern: pattern.Pattern{
		Name:        "Vertical Middle",
		Description: "Middle column lights up top to bottom",
		Frames: frames(
			on(),
			on(1),
			on(1, 4),
			on(1, 4, 7),
			on(4, 7),
			on(7),
			on(),
		),
	}},
	{ID: "line-v-right", Pattern: pattern.Pattern{
		Name:        "Vertical Right",
		Description: "Right column lights up top to bottom",
		Frames: frames(
			on(),
			on(2),
			on(2, 5),
			on(2, 5, 8),
			on(5, 8),
			on(8),
			on(),
		),
	}},
	{ID: "line-diag-1", Pattern: pattern.Pattern{
		Name:        "Diagonal TL-BR",
		Description: "Diagonal from top-left to bottom-right",
		Frames: frames(
			on(),
			on(0),
			on(0, 4),
			on(0, 4, 8),
			on(4, 8),
			on(8),
			on(),
		),
	}},
	{ID: "line-diag-2", Pattern: pattern.Pattern{
		Name:        "Diagonal TR-BL",
		Description: "Diagonal from top-right to bottom-left",
		Frames: frames(
			on(),
			on(2),
			on(2, 4),
			on(2, 4, 6),
			on(4, 6),
			on(6),
			on(),
		),
	}},
	{ID: "corners-sync", Pattern: pattern.Pattern{
		Name:        "Corners Sync",
		Description: "All corners pulse together",
		Frames: frames(
			on(),
			on(0, 2, 6, 8),
			on(0, 2, 6, 8),
			on(),
		),
	}},
	{ID: "corners-only", Pattern: pattern.Pattern{
		Name:        "Corners Clockwise",
		Description: "Corners light up clockwise",
		Frames: frames(
			on(),
			on(0),
			on(0, 2),
			on(2),
			on(2, 8),
			on(8),
			on(8, 6),
			on(6),
			on(6, 0),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "corners-alt", Pattern: pattern.Pattern{
		Name:        "Corners Alternate",
		Description: "Opposite corner pairs alternate",
		Frames: frames(
			on(0, 8),
			on(0, 8),
			on(2, 6),
			on(2, 6),
		),
	}},
	{ID: "frame", Pattern: pattern.Pattern{
		Name:        "Frame",
		Description: "Outer pixels light up clockwise",
		Frames: frames(
			on(),
			on(0),
			on(0, 1),
			on(1, 2),
			on(2, 5),
			on(5, 8),
			on(8, 7),
			on(7, 6),
			on(6, 3),
			on(3, 0),
			on(0),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "frame-sync", Pattern: pattern.Pattern{
		Name:        "Frame Sync",
		Description: "All outer pixels pulse together",
		Frames: frames(
			on(),
			on(0, 1, 2, 3, 5, 6, 7, 8),
			on(0, 1, 2, 3, 5, 6, 7, 8),
			on(),
		),
	}},
	{ID: "frame-reverse", Pattern: pattern.Pattern{
		Name:        "Frame Reverse",
		Description: "Outer pixels light up counter-clockwise",
		Frames: frames(
			on(),
			on(0),
			on(0, 3),
			on(3, 6),
			on(6, 7),
			on(7, 8),
			on(8, 5),
			on(5, 2),
			on(2, 1),
			on(1, 0),
			on(0),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "plus-hollow", Pattern: pattern.Pattern{
		Name:        "Plus",
		Description: "Plus arms pulse around a dark center",
		Frames: frames(
			on(),
			on(1, 3, 5, 7),
			on(1, 3, 5, 7),
			on(),
		),
	}},
	{ID: "plus-full", Pattern: pattern.Pattern{
		Name:        "Plus Full",
		Description: "Plus grows out from the center",
		Frames: frames(
			on(),
			on(4),
			on(1, 3, 4, 5, 7),
			on(1, 3, 4, 5, 7),
			on(4),
			on(),
		),
	}},
	{ID: "x-pattern", Pattern: pattern.Pattern{
		Name:        "X Pattern",
		Description: "Diagonal cross grows out from the center",
		Frames: frames(
			on(),
			on(4),
			on(0, 2, 4, 6, 8),
			on(0, 2, 4, 6, 8),
			on(4),
			on(),
		),
	}},
	{ID: "cross-spin", Pattern: pattern.Pattern{
		Name:        "Cross Spin",
		Description: "A bar rotates around the center",
		Frames: frames(
			on(1, 4, 7),
			on(2, 4, 6),
			on(3, 4, 5),
			on(0, 4, 8),
		),
		CycleDuration: 1200 * time.Millisecond,
	}},
	{ID: "wave-lr", Pattern: pattern.Pattern{
		Name:        "Wave Left-Right",
		Description: "A column sweeps left to right",
		Frames: frames(
			on(),
			on(0, 3, 6),
			on(1, 4, 7),
			on(2, 5, 8),
			on(),
		),
	}},
	{ID: "wave-tb", Pattern: pattern.Pattern{
		Name:        "Wave Top-Bottom",
		Description: "A row sweeps top to bottom",
		Frames: frames(
			on(),
			on(0, 1, 2),
			on(3, 4, 5),
			on(6, 7, 8),
			on(),
		),
	}},
	{ID: "fill-lr", Pattern: pattern.Pattern{
		Name:        "Fill Left-Right",
		Description: "Grid fills column by column",
		Frames: frames(
			on(),
			on(0, 3, 6),
			on(0, 1, 3, 4, 6, 7),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8),
			on(),
		),
	}},
	{ID: "fill-tb", Pattern: pattern.Pattern{
		Name:        "Fill Top-Bottom",
		Description: "Grid fills row by row",
		Frames: frames(
			on(),
			on(0, 1, 2),
			on(0, 1, 2, 3, 4, 5),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8),
			on(),
		),
	}},
	{ID: "fill-spiral", Pattern: pattern.Pattern{
		Name:        "Fill Spiral",
		Description: "Grid fills in a clockwise spiral",
		Frames: frames(
			on(),
			on(0),
			on(0, 1),
			on(0, 1, 2),
			on(0, 1, 2, 5),
			on(0, 1, 2, 5, 8),
			on(0, 1, 2, 5, 7, 8),
			on(0, 1, 2, 5, 6, 7, 8),
			on(0, 1, 2, 3, 5, 6, 7, 8),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8),
			on(),
		),
		CycleDuration: 2500 * time.Millisecond,
	}},
	{ID: "checkerboard", Pattern: pattern.Pattern{
		Name:        "Checkerboard",
		Description: "Alternating checkerboard",
		Frames: frames(
			on(0, 2, 4, 6, 8),
			on(1, 3, 5, 7),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "snake", Pattern: pattern.Pattern{
		Name:        "Snake",
		Description: "A three-pixel snake zigzags through the grid",
		Frames: frames(
			on(0),
			on(0, 1),
			on(0, 1, 2),
			on(1, 2, 5),
			on(2, 5, 4),
			on(5, 4, 3),
			on(4, 3, 6),
			on(3, 6, 7),
			on(6, 7, 8),
			on(7, 8),
			on(8),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "rain", Pattern: pattern.Pattern{
		Name:        "Rain",
		Description: "Drops fall down the columns",
		Frames: frames(
			on(1),
			on(1, 4),
			on(0, 4, 7),
			on(0, 3, 7),
			on(2, 3, 6),
			on(2, 5, 6),
			on(5, 8),
			on(8),
			on(),
		),
	}},
}

var grid3Categories = []pattern.Category{
	{Label: "Solo", IDs: []string{"solo-center", "solo-tl", "solo-tr", "solo-bl", "solo-br"}},
	{Label: "Horizontal Lines", IDs: []string{"line-h-top", "line-h-mid", "line-h-bot"}},
	{Label: "Vertical Lines", IDs: []string{"line-v-left", "line-v-mid", "line-v-right"}},
	{Label: "Diagonal Lines", IDs: []string{"line-diag-1", "line-diag-2"}},
	{Label: "Corners", IDs: []string{"corners-sync", "corners-only", "corners-alt"}},
	{Label: "Frame", IDs: []string{"frame", "frame-sync", "frame-reverse"}},
	{Label: "Plus", IDs: []string{"plus-hollow", "plus-full"}},
	{Label: "Cross", IDs: []string{"x-pattern", "cross-spin"}},
	{Label: "Waves", IDs: []string{"wave-lr", "wave-tb"}},
	{Label: "Fill", IDs: []string{"fill-lr", "fill-tb", "fill-spiral"}},
	{Label: "Special", IDs: []string{"checkerboard", "snake", "rain"}},
}
