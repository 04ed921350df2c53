package catalog

import (
	"time"

	"github.com/sourceful-energy/pixelgrid/pattern"
)

// grid6Patterns is the 6x6 catalog.
//
// Grid position reference (6x6, index = y*6 + x):
//
//	 0  1  2  3  4  5
//	 6  7  8  9 10 11
//	12 13 14 15 16 17
//	18 19 20 21 22 23
//	24 25 26 27 28 29
//	30 31 32 33 34 35
var grid6Patterns = []pattern.Entry{
	{ID: "solo-center", Pattern: pattern.Pattern{
		Name:        "Solo Center",
		Description: "Center 2x2 pixels pulse",
		Frames: frames(
			on(),
			on(14, 15, 20, 21),
			on(14, 15, 20, 21),
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
			on(35),
			on(35),
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
			on(0, 1, 2, 3, 4, 5),
			on(1, 2, 3, 4, 5),
			on(2, 3, 4, 5),
			on(3, 4, 5),
			on(4, 5),
			on(5),
			on(),
		),
	}},
	{ID: "line-h-mid", Pattern: pattern.Pattern{
		Name:        "Horizontal Middle",
		Description: "Middle rows light up",
		Frames: frames(
			on(),
			on(12, 18),
			on(12, 13, 18, 19),
			on(12, 13, 14, 18, 19, 20),
			on(12, 13, 14, 15, 18, 19, 20, 21),
			on(12, 13, 14, 15, 16, 18, 19, 20, 21, 22),
			on(12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23),
			on(13, 14, 15, 16, 17, 19, 20, 21, 22, 23),
			on(14, 15, 16, 17, 20, 21, 22, 23),
			on(15, 16, 17, 21, 22, 23),
			on(16, 17, 22, 23),
			on(17, 23),
			on(),
		),
	}},
	{ID: "line-h-bot", Pattern: pattern.Pattern{
		Name:        "Horizontal Bottom",
		Description: "Bottom row lights up left to right",
		Frames: frames(
			on(),
			on(30),
			on(30, 31),
			on(30, 31, 32),
			on(30, 31, 32, 33),
			on(30, 31, 32, 33, 34),
			on(30, 31, 32, 33, 34, 35),
			on(31, 32, 33, 34, 35),
			on(32, 33, 34, 35),
			on(33, 34, 35),
			on(34, 35),
			on(35),
			on(),
		),
	}},
	{ID: "line-v-left", Pattern: pattern.Pattern{
		Name:        "Vertical Left",
		Description: "Left column lights up",
		Frames: frames(
			on(),
			on(0),
			on(0, 6),
			on(0, 6, 12),
			on(0, 6, 12, 18),
			on(0, 6, 12, 18, 24),
			on(0, 6, 12, 18, 24, 30),
			on(6, 12, 18, 24, 30),
			on(12, 18, 24, 30),
			on(18, 24, 30),
			on(24, 30),
			on(30),
			on(),
		),
	}},
	{ID: "line-v-mid", Pattern: pattern.Pattern{
		Name:        "Vertical Middle",
		Description: "Middle columns light up",
		Frames: frames(
			on(),
			on(2, 3),
			on(2, 3, 8, 9),
			on(2, 3, 8, 9, 14, 15),
			on(2, 3, 8, 9, 14, 15, 20, 21),
			on(2, 3, 8, 9, 14, 15, 20, 21, 26, 27),
			on(2, 3, 8, 9, 14, 15, 20, 21, 26, 27, 32, 33),
			on(8, 9, 14, 15, 20, 21, 26, 27, 32, 33),
			on(14, 15, 20, 21, 26, 27, 32, 33),
			on(20, 21, 26, 27, 32, 33),
			on(26, 27, 32, 33),
			on(32, 33),
			on(),
		),
	}},
	{ID: "line-v-right", Pattern: pattern.Pattern{
		Name:        "Vertical Right",
		Description: "Right column lights up",
		Frames: frames(
			on(),
			on(5),
			on(5, 11),
			on(5, 11, 17),
			on(5, 11, 17, 23),
			on(5, 11, 17, 23, 29),
			on(5, 11, 17, 23, 29, 35),
			on(11, 17, 23, 29, 35),
			on(17, 23, 29, 35),
			on(23, 29, 35),
			on(29, 35),
			on(35),
			on(),
		),
	}},
	{ID: "line-diag-1", Pattern: pattern.Pattern{
		Name:        "Diagonal TL-BR",
		Description: "Diagonal from top-left to bottom-right",
		Frames: frames(
			on(),
			on(0),
			on(0, 7),
			on(0, 7, 14),
			on(0, 7, 14, 21),
			on(0, 7, 14, 21, 28),
			on(0, 7, 14, 21, 28, 35),
			on(7, 14, 21, 28, 35),
			on(14, 21, 28, 35),
			on(21, 28, 35),
			on(28, 35),
			on(35),
			on(),
		),
	}},
	{ID: "line-diag-2", Pattern: pattern.Pattern{
		Name:        "Diagonal TR-BL",
		Description: "Diagonal from top-right to bottom-left",
		Frames: frames(
			on(),
			on(5),
			on(5, 10),
			on(5, 10, 15),
			on(5, 10, 15, 20),
			on(5, 10, 15, 20, 25),
			on(5, 10, 15, 20, 25, 30),
			on(10, 15, 20, 25, 30),
			on(15, 20, 25, 30),
			on(20, 25, 30),
			on(25, 30),
			on(30),
			on(),
		),
	}},
	{ID: "corners-sync", Pattern: pattern.Pattern{
		Name:        "Corners Sync",
		Description: "All corners pulse together",
		Frames: frames(
			on(),
			on(0, 5, 30, 35),
			on(0, 5, 30, 35),
			on(),
		),
	}},
	{ID: "corners-only", Pattern: pattern.Pattern{
		Name:        "Corners Clockwise",
		Description: "Corners light up clockwise",
		Frames: frames(
			on(),
			on(0),
			on(0, 5),
			on(5),
			on(5, 35),
			on(35),
			on(35, 30),
			on(30),
			on(30, 0),
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
			on(4, 5),
			on(5, 11),
			on(11, 17),
			on(17, 23),
			on(23, 29),
			on(29, 35),
			on(35, 34),
			on(34, 33),
			on(33, 32),
			on(32, 31),
			on(31, 30),
			on(30, 24),
			on(24, 18),
			on(18, 12),
			on(12, 6),
			on(6, 0),
			on(),
		),
		CycleDuration: 3000 * time.Millisecond,
	}},
	{ID: "frame-sync", Pattern: pattern.Pattern{
		Name:        "Frame Sync",
		Description: "All outer pixels pulse together",
		Frames: frames(
			on(),
			on(0, 1, 2, 3, 4, 5, 30, 31, 32, 33, 34, 35, 6, 12, 18, 24, 11, 17, 23, 29),
			on(0, 1, 2, 3, 4, 5, 30, 31, 32, 33, 34, 35, 6, 12, 18, 24, 11, 17, 23, 29),
			on(),
		),
	}},
	{ID: "plus-hollow", Pattern: pattern.Pattern{
		Name:        "Plus",
		Description: "Plus/cross shape lights up",
		Frames: frames(
			on(),
			on(14, 15, 20, 21),
			on(14, 15, 20, 21, 8, 9, 26, 27, 13, 16, 19, 22),
			on(14, 15, 20, 21, 2, 3, 8, 9, 26, 27, 32, 33, 12, 17, 13, 16, 19, 22, 18, 23),
			on(14, 15, 20, 21, 2, 3, 8, 9, 26, 27, 32, 33, 12, 17, 13, 16, 19, 22, 18, 23),
			on(14, 15, 20, 21, 8, 9, 26, 27, 13, 16, 19, 22),
			on(14, 15, 20, 21),
			on(),
		),
	}},
	{ID: "ripple", Pattern: pattern.Pattern{
		Name:        "Ripple",
		Description: "Expanding ripple from center",
		Frames: frames(
			on(),
			on(14, 15, 20, 21),
			on(7, 8, 9, 10, 25, 26, 27, 28, 13, 19, 16, 22),
			on(0, 1, 2, 3, 4, 5, 30, 31, 32, 33, 34, 35, 6, 12, 18, 24, 11, 17, 23, 29),
			on(0, 1, 2, 3, 4, 5, 30, 31, 32, 33, 34, 35, 6, 12, 18, 24, 11, 17, 23, 29),
			on(7, 8, 9, 10, 25, 26, 27, 28, 13, 19, 16, 22),
			on(14, 15, 20, 21),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "spiral", Pattern: pattern.Pattern{
		Name:        "Spiral",
		Description: "Spiral from outside to center",
		Frames: frames(
			on(),
			on(0),
			on(0, 1, 2, 3, 4, 5),
			on(0, 1, 2, 3, 4, 5, 11, 17, 23, 29, 35),
			on(0, 1, 2, 3, 4, 5, 11, 17, 23, 29, 35, 34, 33, 32, 31, 30),
			on(0, 1, 2, 3, 4, 5, 11, 17, 23, 29, 35, 34, 33, 32, 31, 30, 24, 18, 12, 6),
			on(7, 8, 9, 10, 16, 22, 28, 27, 26, 25, 19, 13),
			on(14, 15, 21, 20),
			on(14, 15, 21, 20),
			on(),
		),
		CycleDuration: 3000 * time.Millisecond,
	}},
	{ID: "checkerboard", Pattern: pattern.Pattern{
		Name:        "Checkerboard",
		Description: "Alternating checkerboard pattern",
		Frames: frames(
			on(),
			on(0, 2, 4, 7, 9, 11, 12, 14, 16, 19, 21, 23, 24, 26, 28, 31, 33, 35),
			on(0, 2, 4, 7, 9, 11, 12, 14, 16, 19, 21, 23, 24, 26, 28, 31, 33, 35),
			on(1, 3, 5, 6, 8, 10, 13, 15, 17, 18, 20, 22, 25, 27, 29, 30, 32, 34),
			on(1, 3, 5, 6, 8, 10, 13, 15, 17, 18, 20, 22, 25, 27, 29, 30, 32, 34),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "diamond", Pattern: pattern.Pattern{
		Name:        "Diamond",
		Description: "Diamond shape expands",
		Frames: frames(
			on(),
			on(14, 15, 20, 21),
			on(8, 9, 13, 16, 19, 22, 26, 27),
			on(2, 3, 7, 10, 12, 17, 18, 23, 25, 28, 32, 33),
			on(2, 3, 7, 10, 12, 17, 18, 23, 25, 28, 32, 33),
			on(8, 9, 13, 16, 19, 22, 26, 27),
			on(14, 15, 20, 21),
			on(),
		),
	}},
	{ID: "wave", Pattern: pattern.Pattern{
		Name:        "Wave",
		Description: "Wave moving across grid",
		Frames: frames(
			on(0, 6, 12, 18, 24, 30),
			on(0, 1, 6, 7, 12, 13, 18, 19, 24, 25, 30, 31),
			on(1, 2, 7, 8, 13, 14, 19, 20, 25, 26, 31, 32),
			on(2, 3, 8, 9, 14, 15, 20, 21, 26, 27, 32, 33),
			on(3, 4, 9, 10, 15, 16, 21, 22, 27, 28, 33, 34),
			on(4, 5, 10, 11, 16, 17, 22, 23, 28, 29, 34, 35),
			on(5, 11, 17, 23, 29, 35),
			on(),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
}

var grid6Categories = []pattern.Category{
	{Label: "Solo", IDs: []string{"solo-center", "solo-tl", "solo-br"}},
	{Label: "Horizontal Lines", IDs: []string{"line-h-top", "line-h-mid", "line-h-bot"}},
	{Label: "Vertical Lines", IDs: []string{"line-v-left", "line-v-mid", "line-v-right"}},
	{Label: "Diagonal Lines", IDs: []string{"line-diag-1", "line-diag-2"}},
	{Label: "Corners", IDs: []string{"corners-sync", "corners-only"}},
	{Label: "Frame", IDs: []string{"frame", "frame-sync"}},
	{Label: "Plus", IDs: []string{"plus-hollow"}},
	{Label: "6x6 Special", IDs: []string{"ripple", "spiral", "checkerboard", "diamond", "wave"}},
}
