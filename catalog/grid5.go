package catalog

import (
	"time"

	"github.com/sourceful-energy/pixelgrid/pattern"
)

// grid5Patterns is the general-purpose 5x5 catalog.
//
// Grid position reference (5x5, index = y*5 + x):
//
//	 0  1  2  3  4
//	 5  6  7  8  9
//	10 11 12 13 14
//	15 16 17 18 19
//	20 21 22 23 24
var grid5Patterns = []pattern.Entry{
	{ID: "solo-center", Pattern: pattern.Pattern{
		Name:        "Solo Center",
		Description: "Center pixel pulses",
		Frames: frames(
			on(),
			on(12),
			on(12),
			on(),
		),
	}},
	{ID: "solo-tl", Pattern: pattern.Pattern{
		Name:        "Solo Top-Left",
		Description: "Top-left pixel pulses",
		Frames: frames(
			on(),
			on(0),
			on(0),
			on(),
		),
	}},
	{ID: "solo-br", Pattern: pattern.Pattern{
		Name:        "Solo Bottom-Right",
		Description: "Bottom-right pixel pulses",
		Frames: frames(
			on(),
			on(24),
			on(24),
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
			on(0, 1, 2, 3),
			on(0, 1, 2, 3, 4),
			on(1, 2, 3, 4),
			on(2, 3, 4),
			on(3, 4),
			on(4),
			on(),
		),
	}},
	{ID: "line-h-mid", Pattern: pattern.Pattern{
		Name:        "Horizontal Middle",
		Description: "Middle row lights up left to right",
		Frames: frames(
			on(),
			on(10),
			on(10, 11),
			on(10, 11, 12),
			on(10, 11, 12, 13),
			on(10, 11, 12, 13, 14),
			on(11, 12, 13, 14),
			on(12, 13, 14),
			on(13, 14),
			on(14),
			on(),
		),
	}},
	{ID: "line-h-bot", Pattern: pattern.Pattern{
		Name:        "Horizontal Bottom",
		Description: "Bottom row lights up left to right",
		Frames: frames(
			on(),
			on(20),
			on(20, 21),
			on(20, 21, 22),
			on(20, 21, 22, 23),
			on(20, 21, 22, 23, 24),
			on(21, 22, 23, 24),
			on(22, 23, 24),
			on(23, 24),
			on(24),
			on(),
		),
	}},
	{ID: "line-v-left", Pattern: pattern.Pattern{
		Name:        "Vertical Left",
		Description: "Left column lights up top to bottom",
		Frames: frames(
			on(),
			on(0),
			on(0, 5),
			on(0, 5, 10),
			on(0, 5, 10, 15),
			on(0, 5, 10, 15, 20),
			on(5, 10, 15, 20),
			on(10, 15, 20),
			on(15, 20),
			on(20),
			on(),
		),
	}},
	{ID: "line-v-mid", Pattern: pattern.Pattern{
		Name:        "Vertical Middle",
		Description: "Middle column lights up top to bottom",
		Frames: frames(
			on(),
			on(2),
			on(2, 7),
			on(2, 7, 12),
			on(2, 7, 12, 17),
			on(2, 7, 12, 17, 22),
			on(7, 12, 17, 22),
			on(12, 17, 22),
			on(17, 22),
			on(22),
			on(),
		),
	}},
	{ID: "line-v-right", Pattern: pattern.Pattern{
		Name:        "Vertical Right",
		Description: "Right column lights up top to bottom",
		Frames: frames(
			on(),
			on(4),
			on(4, 9),
			on(4, 9, 14),
			on(4, 9, 14, 19),
			on(4, 9, 14, 19, 24),
			on(9, 14, 19, 24),
			on(14, 19, 24),
			on(19, 24),
			on(24),
			on(),
		),
	}},
	{ID: "line-diag-1", Pattern: pattern.Pattern{
		Name:        "Diagonal TL-BR",
		Description: "Diagonal from top-left to bottom-right",
		Frames: frames(
			on(),
			on(0),
			on(0, 6),
			on(0, 6, 12),
			on(0, 6, 12, 18),
			on(0, 6, 12, 18, 24),
			on(6, 12, 18, 24),
			on(12, 18, 24),
			on(18, 24),
			on(24),
			on(),
		),
	}},
	{ID: "line-diag-2", Pattern: pattern.Pattern{
		Name:        "Diagonal TR-BL",
		Description: "Diagonal from top-right to bottom-left",
		Frames: frames(
			on(),
			on(4),
			on(4, 8),
			on(4, 8, 12),
			on(4, 8, 12, 16),
			on(4, 8, 12, 16, 20),
			on(8, 12, 16, 20),
			on(12, 16, 20),
			on(16, 20),
			on(20),
			on(),
		),
	}},
	{ID: "corners-sync", Pattern: pattern.Pattern{
		Name:        "Corners Sync",
		Description: "All corners pulse together",
		Frames: frames(
			on(),
			on(0, 4, 20, 24),
			on(0, 4, 20, 24),
			on(),
		),
	}},
	{ID: "corners-only", Pattern: pattern.Pattern{
		Name:        "Corners Clockwise",
		Description: "Corners light up clockwise",
		Frames: frames(
			on(),
			on(0),
			on(0, 4),
			on(4),
			on(4, 24),
			on(24),
			on(24, 20),
			on(20),
			on(20, 0),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "frame", Pattern: pattern.Pattern{
		Name:        "Frame",
		Description: "Outer pixels light up clockwise",
		Frames: frames(
			on(),
			on(0),
			on(0, 1),
			on(1, 2),
			on(2, 3),
			on(3, 4),
			on(4, 9),
			on(9, 14),
			on(14, 19),
			on(19, 24),
			on(24, 23),
			on(23, 22),
			on(22, 21),
			on(21, 20),
			on(20, 15),
			on(15, 10),
			on(10, 5),
			on(5, 0),
			on(0),
			on(),
		),
		CycleDuration: 3000 * time.Millisecond,
	}},
	{ID: "frame-sync", Pattern: pattern.Pattern{
		Name:        "Frame Sync",
		Description: "All outer pixels pulse together",
		Frames: frames(
			on(),
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
			on(),
		),
	}},
	{ID: "plus-hollow", Pattern: pattern.Pattern{
		Name:        "Plus",
		Description: "Plus/cross shape lights up",
		Frames: frames(
			on(),
			on(12),
			on(7, 12, 17),
			on(2, 7, 12, 17, 22),
			on(2, 7, 11, 12, 13, 17, 22),
			on(2, 7, 10, 11, 12, 13, 14, 17, 22),
			on(2, 7, 10, 11, 12, 13, 14, 17, 22),
			on(2, 7, 11, 12, 13, 17, 22),
			on(7, 12, 17),
			on(12),
			on(),
		),
	}},
	{ID: "diamond", Pattern: pattern.Pattern{
		Name:        "Diamond",
		Description: "Diamond shape expands from center",
		Frames: frames(
			on(),
			on(12),
			on(7, 11, 12, 13, 17),
			on(2, 6, 7, 8, 11, 12, 13, 16, 17, 18, 22),
			on(2, 6, 7, 8, 11, 12, 13, 16, 17, 18, 22),
			on(7, 11, 12, 13, 17),
			on(12),
			on(),
		),
	}},
	{ID: "diamond-fill", Pattern: pattern.Pattern{
		Name:        "Diamond Fill",
		Description: "Filled diamond pulses",
		Frames: frames(
			on(),
			on(2, 6, 7, 8, 10, 11, 12, 13, 14, 16, 17, 18, 22),
			on(2, 6, 7, 8, 10, 11, 12, 13, 14, 16, 17, 18, 22),
			on(),
		),
	}},
	{ID: "spiral", Pattern: pattern.Pattern{
		Name:        "Spiral",
		Description: "Spiral pattern from outside to center",
		Frames: frames(
			on(),
			on(0),
			on(0, 1, 2, 3, 4),
			on(0, 1, 2, 3, 4, 9, 14, 19, 24),
			on(0, 1, 2, 3, 4, 9, 14, 19, 24, 23, 22, 21, 20),
			on(0, 1, 2, 3, 4, 9, 14, 19, 24, 23, 22, 21, 20, 15, 10, 5),
			on(0, 1, 2, 3, 4, 9, 14, 19, 24, 23, 22, 21, 20, 15, 10, 5, 6, 7, 8),
			on(0, 1, 2, 3, 4, 9, 14, 19, 24, 23, 22, 21, 20, 15, 10, 5, 6, 7, 8, 18, 17, 16),
			on(0, 1, 2, 3, 4, 9, 14, 19, 24, 23, 22, 21, 20, 15, 10, 5, 6, 7, 8, 18, 17, 16, 11, 12, 13),
			on(0, 1, 2, 3, 4, 9, 14, 19, 24, 23, 22, 21, 20, 15, 10, 5, 6, 7, 8, 18, 17, 16, 11, 12, 13),
			on(),
		),
		CycleDuration: 3000 * time.Millisecond,
	}},
	{ID: "x-pattern", Pattern: pattern.Pattern{
		Name:        "X Pattern",
		Description: "X shape lights up",
		Frames: frames(
			on(),
			on(12),
			on(6, 12, 18, 8, 16),
			on(0, 6, 12, 18, 24, 4, 8, 16, 20),
			on(0, 6, 12, 18, 24, 4, 8, 16, 20),
			on(6, 12, 18, 8, 16),
			on(12),
			on(),
		),
	}},
	{ID: "ring-inner", Pattern: pattern.Pattern{
		Name:        "Inner Ring",
		Description: "Inner ring of pixels pulses",
		Frames: frames(
			on(),
			on(6, 7, 8, 16, 17, 18, 11, 13),
			on(6, 7, 8, 16, 17, 18, 11, 13),
			on(),
		),
	}},
	{ID: "ring-outer", Pattern: pattern.Pattern{
		Name:        "Rings",
		Description: "Alternating rings expand",
		Frames: frames(
			on(),
			on(12),
			on(6, 7, 8, 11, 13, 16, 17, 18),
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
			on(6, 7, 8, 11, 13, 16, 17, 18),
			on(12),
			on(),
		),
	}},
	{ID: "checkerboard", Pattern: pattern.Pattern{
		Name:        "Checkerboard",
		Description: "Alternating checkerboard pattern",
		Frames: frames(
			on(),
			on(0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24),
			on(0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24),
			on(),
			on(1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23),
			on(1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
}

var grid5Categories = []pattern.Category{
	{Label: "Solo", IDs: []string{"solo-center", "solo-tl", "solo-br"}},
	{Label: "Horizontal Lines", IDs: []string{"line-h-top", "line-h-mid", "line-h-bot"}},
	{Label: "Vertical Lines", IDs: []string{"line-v-left", "line-v-mid", "line-v-right"}},
	{Label: "Diagonal Lines", IDs: []string{"line-diag-1", "line-diag-2"}},
	{Label: "Corners", IDs: []string{"corners-sync", "corners-only"}},
	{Label: "Frame", IDs: []string{"frame", "frame-sync"}},
	{Label: "Plus", IDs: []string{"plus-hollow"}},
	{Label: "Diamond", IDs: []string{"diamond", "diamond-fill"}},
	{Label: "Rings", IDs: []string{"ring-inner", "ring-outer"}},
	{Label: "Shapes", IDs: []string{"x-pattern", "spiral", "checkerboard"}},
}
