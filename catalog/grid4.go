package catalog

import (
	"time"

	"github.com/sourceful-energy/pixelgrid/pattern"
)

// grid4Patterns is the 4x4 catalog. square-inner and square-outer only exist here.
//
// Grid position reference (4x4, index = y*4 + x):
//
//	 0  1  2  3
//	 4  5  6  7
//	 8  9 10 11
//	12 13 14 15
var grid4Patterns = []pattern.Entry{
	{ID: "solo-center", Pattern: pattern.Pattern{
		Name:        "Solo Center",
		Description: "Center pixels pulse",
		Frames: frames(
			on(),
			on(5, 6, 9, 10),
			on(5, 6, 9, 10),
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
			on(15),
			on(15),
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
			on(1, 2, 3),
			on(2, 3),
			on(3),
			on(),
		),
	}},
	{ID: "line-h-mid", Pattern: pattern.Pattern{
		Name:        "Horizontal Middle",
		Description: "Middle rows light up left to right",
		Frames: frames(
			on(),
			on(4, 8),
			on(4, 8, 5, 9),
			on(4, 8, 5, 9, 6, 10),
			on(4, 8, 5, 9, 6, 10, 7, 11),
			on(5, 9, 6, 10, 7, 11),
			on(6, 10, 7, 11),
			on(7, 11),
			on(),
		),
	}},
	{ID: "line-h-bot", Pattern: pattern.Pattern{
		Name:        "Horizontal Bottom",
		Description: "Bottom row lights up left to right",
		Frames: frames(
			on(),
			on(12),
			on(12, 13),
			on(12, 13, 14),
			on(12, 13, 14, 15),
			on(13, 14, 15),
			on(14, 15),
			on(15),
			on(),
		),
	}},
	{ID: "line-v-left", Pattern: pattern.Pattern{
		Name:        "Vertical Left",
		Description: "Left column lights up top to bottom",
		Frames: frames(
			on(),
			on(0),
			on(0, 4),
			on(0, 4, 8),
			on(0, 4, 8, 12),
			on(4, 8, 12),
			on(8, 12),
			on(12),
			on(),
		),
	}},
	{ID: "line-v-mid", Pattern: pattern.Pattern{
		Name:        "Vertical Middle",
		Description: "Middle columns light up top to bottom",
		Frames: frames(
			on(),
			on(1, 2),
			on(1, 2, 5, 6),
			on(1, 2, 5, 6, 9, 10),
			on(1, 2, 5, 6, 9, 10, 13, 14),
			on(5, 6, 9, 10, 13, 14),
			on(9, 10, 13, 14),
			on(13, 14),
			on(),
		),
	}},
	{ID: "line-v-right", Pattern: pattern.Pattern{
		Name:        "Vertical Right",
		Description: "Right column lights up top to bottom",
		Frames: frames(
			on(),
			on(3),
			on(3, 7),
			on(3, 7, 11),
			on(3, 7, 11, 15),
			on(7, 11, 15),
			on(11, 15),
			on(15),
			on(),
		),
	}},
	{ID: "line-diag-1", Pattern: pattern.Pattern{
		Name:        "Diagonal TL-BR",
		Description: "Diagonal from top-left to bottom-right",
		Frames: frames(
			on(),
			on(0),
			on(0, 5),
			on(0, 5, 10),
			on(0, 5, 10, 15),
			on(5, 10, 15),
			on(10, 15),
			on(15),
			on(),
		),
	}},
	{ID: "line-diag-2", Pattern: pattern.Pattern{
		Name:        "Diagonal TR-BL",
		Description: "Diagonal from top-right to bottom-left",
		Frames: frames(
			on(),
			on(3),
			on(3, 6),
			on(3, 6, 9),
			on(3, 6, 9, 12),
			on(6, 9, 12),
			on(9, 12),
			on(12),
			on(),
		),
	}},
	{ID: "corners-sync", Pattern: pattern.Pattern{
		Name:        "Corners Sync",
		Description: "All corners pulse together",
		Frames: frames(
			on(),
			on(0, 3, 12, 15),
			on(0, 3, 12, 15),
			on(),
		),
	}},
	{ID: "corners-only", Pattern: pattern.Pattern{
		Name:        "Corners Clockwise",
		Description: "Corners light up clockwise",
		Frames: frames(
			on(),
			on(0),
			on(0, 3),
			on(3),
			on(3, 15),
			on(15),
			on(15, 12),
			on(12),
			on(12, 0),
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
			on(3, 7),
			on(7, 11),
			on(11, 15),
			on(15, 14),
			on(14, 13),
			on(13, 12),
			on(12, 8),
			on(8, 4),
			on(4, 0),
			on(0),
			on(),
		),
		CycleDuration: 2500 * time.Millisecond,
	}},
	{ID: "frame-sync", Pattern: pattern.Pattern{
		Name:        "Frame Sync",
		Description: "All outer pixels pulse together",
		Frames: frames(
			on(),
			on(0, 1, 2, 3, 4, 7, 8, 11, 12, 13, 14, 15),
			on(0, 1, 2, 3, 4, 7, 8, 11, 12, 13, 14, 15),
			on(),
		),
	}},
	{ID: "plus-hollow", Pattern: pattern.Pattern{
		Name:        "Plus",
		Description: "Plus/cross shape lights up",
		Frames: frames(
			on(),
			on(5, 6, 9, 10),
			on(1, 2, 5, 6, 9, 10, 13, 14),
			on(1, 2, 4, 8, 5, 6, 9, 10, 7, 11, 13, 14),
			on(1, 2, 4, 8, 5, 6, 9, 10, 7, 11, 13, 14),
			on(1, 2, 5, 6, 9, 10, 13, 14),
			on(5, 6, 9, 10),
			on(),
		),
	}},
	{ID: "square-inner", Pattern: pattern.Pattern{
		Name:        "Inner Square",
		Description: "Inner 2x2 square pulses",
		Frames: frames(
			on(),
			on(5),
			on(5, 6),
			on(5, 6, 10),
			on(5, 6, 9, 10),
			on(5, 6, 9, 10),
			on(6, 9, 10),
			on(9, 10),
			on(10),
			on(),
		),
	}},
	{ID: "square-outer", Pattern: pattern.Pattern{
		Name:        "Outer Square",
		Description: "Outer frame expands from center",
		Frames: frames(
			on(),
			on(5, 6, 9, 10),
			on(1, 2, 4, 5, 6, 7, 8, 9, 10, 11, 13, 14),
			on(0, 1, 2, 3, 4, 7, 8, 11, 12, 13, 14, 15),
			on(0, 1, 2, 3, 4, 7, 8, 11, 12, 13, 14, 15),
			on(1, 2, 4, 5, 6, 7, 8, 9, 10, 11, 13, 14),
			on(5, 6, 9, 10),
			on(),
		),
	}},
	{ID: "cross-full", Pattern: pattern.Pattern{
		Name:        "Cross Full",
		Description: "Full cross pattern",
		Frames: frames(
			on(),
			on(1, 2, 5, 6, 9, 10, 13, 14, 4, 8, 7, 11),
			on(1, 2, 5, 6, 9, 10, 13, 14, 4, 8, 7, 11),
			on(),
		),
	}},
	{ID: "cross-spin", Pattern: pattern.Pattern{
		Name:        "Cross Spin",
		Description: "Cross pattern rotates",
		Frames: frames(
			on(1, 2, 13, 14),
			on(1, 2, 13, 14, 3, 15),
			on(4, 8, 7, 11),
			on(4, 8, 7, 11, 0, 12),
			on(1, 2, 13, 14),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
}

var grid4Categories = []pattern.Category{
	{Label: "Solo", IDs: []string{"solo-center", "solo-tl", "solo-br"}},
	{Label: "Horizontal Lines", IDs: []string{"line-h-top", "line-h-mid", "line-h-bot"}},
	{Label: "Vertical Lines", IDs: []string{"line-v-left", "line-v-mid", "line-v-right"}},
	{Label: "Diagonal Lines", IDs: []string{"line-diag-1", "line-diag-2"}},
	{Label: "Corners", IDs: []string{"corners-sync", "corners-only"}},
	{Label: "Frame", IDs: []string{"frame", "frame-sync"}},
	{Label: "Plus", IDs: []string{"plus-hollow"}},
	{Label: "Squares", IDs: []string{"square-inner", "square-outer"}},
	{Label: "Cross", IDs: []string{"cross-full", "cross-spin"}},
}
