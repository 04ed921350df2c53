package catalog

import (
	"time"

	"github.com/sourceful-energy/pixelgrid/pattern"
)

// zapPatterns holds the hardware-state animations for the M5Stack Atom Matrix
// (5x5 WS2812C, ESP32-PICO-D4). Identifiers share the zap- prefix and never
// collide with the general 5x5 catalog.
//
// Grid position reference (5x5, index = y*5 + x):
//
//	 0  1  2  3  4
//	 5  6  7  8  9
//	10 11 12 13 14
//	15 16 17 18 19
//	20 21 22 23 24
var zapPatterns = []pattern.Entry{
	{ID: "zap-boot", Pattern: pattern.Pattern{
		Name:        "Boot/Power On",
		Description: "Spiral expanding from center - indicates device powering up",
		Frames: frames(
			on(),
			on(12),
			on(12, 7, 11, 13, 17),
			on(7, 11, 13, 17, 6, 8, 16, 18),
			on(6, 7, 8, 11, 13, 16, 17, 18, 2, 10, 14, 22),
			on(2, 10, 14, 22, 0, 1, 3, 4, 5, 9, 15, 19, 20, 21, 23, 24),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(12),
			on(),
		),
		CycleDuration: 2500 * time.Millisecond,
	}},
	{ID: "zap-ready", Pattern: pattern.Pattern{
		Name:        "Ready/Hello",
		Description: "Diamond pulse - indicates device is ready for operation",
		Frames: frames(
			on(),
			on(12),
			on(12, 7, 11, 13, 17),
			on(2, 6, 7, 8, 11, 12, 13, 16, 17, 18, 22),
			on(2, 6, 7, 8, 10, 11, 12, 13, 14, 16, 17, 18, 22),
			on(2, 6, 7, 8, 10, 11, 12, 13, 14, 16, 17, 18, 22),
			on(2, 6, 7, 8, 11, 12, 13, 16, 17, 18, 22),
			on(12, 7, 11, 13, 17),
			on(12),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-logo", Pattern: pattern.Pattern{
		Name:        "Lightning Bolt",
		Description: "Custom lightning bolt shape - Zap brand identity",
		Frames: frames(
			on(),
			on(3),
			on(3, 8),
			on(3, 8, 7, 11),
			on(3, 8, 7, 11, 12, 13),
			on(3, 8, 7, 11, 12, 13, 17, 16),
			on(3, 8, 7, 11, 12, 13, 17, 16, 21),
			on(3, 8, 7, 11, 12, 13, 17, 16, 21),
			on(3, 8, 7, 11, 12, 13, 17, 16, 21),
			on(3, 8, 7, 11, 12, 13, 17, 16, 21),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(3, 8, 7, 11, 12, 13, 17, 16, 21),
			on(),
		),
		CycleDuration: 2500 * time.Millisecond,
	}},
	{ID: "zap-pairing", Pattern: pattern.Pattern{
		Name:        "Pairing/WiFi Setup",
		Description: "Checkerboard alternating - indicates pairing mode active",
		Frames: frames(
			on(0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24),
			on(0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24),
			on(),
			on(1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23),
			on(1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23),
			on(),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-connecting", Pattern: pattern.Pattern{
		Name:        "Connecting",
		Description: "Expanding rings from center - indicates connection attempt",
		Frames: frames(
			on(),
			on(12),
			on(12),
			on(6, 7, 8, 11, 13, 16, 17, 18),
			on(6, 7, 8, 11, 13, 16, 17, 18),
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
			on(),
		),
		CycleDuration: 1800 * time.Millisecond,
	}},
	{ID: "zap-connected", Pattern: pattern.Pattern{
		Name:        "Connected",
		Description: "Quick pulse then steady center - indicates successful connection",
		Frames: frames(
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(12),
			on(12),
			on(12),
			on(12),
			on(12),
			on(12),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-no-network", Pattern: pattern.Pattern{
		Name:        "No Network",
		Description: "Frame blink warning (orange->red suggested) - indicates network loss",
		Frames: frames(
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
			on(),
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
			on(),
			on(),
			on(),
		),
		CycleDuration: 1200 * time.Millisecond,
	}},
	{ID: "zap-active", Pattern: pattern.Pattern{
		Name:        "Active",
		Description: "Gentle center heartbeat - indicates active operation",
		Frames: frames(
			on(12),
			on(12, 7, 11, 13, 17),
			on(12, 7, 11, 13, 17),
			on(12),
			on(12),
			on(),
			on(12),
			on(12),
		),
		CycleDuration: 2500 * time.Millisecond,
	}},
	{ID: "zap-standby", Pattern: pattern.Pattern{
		Name:        "Standby/Idle",
		Description: "Slow corners pulse - indicates standby mode",
		Frames: frames(
			on(),
			on(),
			on(0, 4, 20, 24),
			on(0, 4, 20, 24),
			on(0, 4, 20, 24),
			on(),
			on(),
			on(),
		),
		CycleDuration: 3000 * time.Millisecond,
	}},
	{ID: "zap-offline", Pattern: pattern.Pattern{
		Name:        "Offline",
		Description: "Single pixel breathing (gray suggested) - indicates offline mode",
		Frames: frames(
			on(),
			on(),
			on(),
			on(12),
			on(12),
			on(12),
			on(),
			on(),
		),
		CycleDuration: 4000 * time.Millisecond,
	}},
	{ID: "zap-data-tx", Pattern: pattern.Pattern{
		Name:        "Data Transferring",
		Description: "Spiral flow - indicates data transmission",
		Frames: frames(
			on(0),
			on(1, 2),
			on(3, 4),
			on(9, 14),
			on(19, 24),
			on(23, 22),
			on(21, 20),
			on(15, 10),
			on(5, 0),
		),
		CycleDuration: 1200 * time.Millisecond,
	}},
	{ID: "zap-syncing", Pattern: pattern.Pattern{
		Name:        "Syncing",
		Description: "Frame rotation - indicates sync in progress",
		Frames: frames(
			on(0, 1),
			on(2, 3),
			on(4, 9),
			on(14, 19),
			on(24, 23),
			on(22, 21),
			on(20, 15),
			on(10, 5),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "zap-no-data", Pattern: pattern.Pattern{
		Name:        "No Data",
		Description: "X pattern pulse (yellow suggested) - indicates no data received",
		Frames: frames(
			on(),
			on(0, 4, 12, 20, 24),
			on(0, 6, 4, 8, 12, 16, 20, 18, 24),
			on(0, 6, 4, 8, 12, 16, 20, 18, 24),
			on(0, 4, 12, 20, 24),
			on(),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-importing", Pattern: pattern.Pattern{
		Name:        "Grid Import",
		Description: "Lines flowing inward (yellow suggested) - indicates power import from grid",
		Frames: frames(
			on(0, 1, 2, 3, 4),
			on(5, 6, 7, 8, 9),
			on(10, 11, 12, 13, 14),
			on(15, 16, 17, 18, 19),
			on(20, 21, 22, 23, 24),
			on(15, 16, 17, 18, 19),
			on(10, 11, 12, 13, 14),
			on(5, 6, 7, 8, 9),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "zap-exporting", Pattern: pattern.Pattern{
		Name:        "Grid Export",
		Description: "Lines flowing outward (green) - indicates power export to grid",
		Frames: frames(
			on(10, 11, 12, 13, 14),
			on(5, 6, 7, 8, 9),
			on(0, 1, 2, 3, 4),
			on(5, 6, 7, 8, 9),
			on(10, 11, 12, 13, 14),
			on(15, 16, 17, 18, 19),
			on(20, 21, 22, 23, 24),
			on(15, 16, 17, 18, 19),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "zap-charging", Pattern: pattern.Pattern{
		Name:        "Battery Charging",
		Description: "Fill from bottom up (blue->green) - indicates battery charging",
		Frames: frames(
			on(),
			on(20, 21, 22, 23, 24),
			on(20, 21, 22, 23, 24, 15, 16, 17, 18, 19),
			on(20, 21, 22, 23, 24, 15, 16, 17, 18, 19, 10, 11, 12, 13, 14),
			on(20, 21, 22, 23, 24, 15, 16, 17, 18, 19, 10, 11, 12, 13, 14, 5, 6, 7, 8, 9),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(),
		),
		CycleDuration: 2500 * time.Millisecond,
	}},
	{ID: "zap-discharging", Pattern: pattern.Pattern{
		Name:        "Battery Discharging",
		Description: "Drain from top (green->yellow) - indicates battery discharging",
		Frames: frames(
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(20, 21, 22, 23, 24),
			on(),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
		),
		CycleDuration: 2500 * time.Millisecond,
	}},
	{ID: "zap-peak-alert", Pattern: pattern.Pattern{
		Name:        "Peak Approaching",
		Description: "Fast frame pulse (orange) - indicates peak pricing/demand approaching",
		Frames: frames(
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
			on(),
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
			on(),
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19, 20, 21, 22, 23, 24),
		),
		CycleDuration: 800 * time.Millisecond,
	}},
	{ID: "zap-grid-event", Pattern: pattern.Pattern{
		Name:        "Grid Event Active",
		Description: "Rapid corners sync (bright green) - indicates grid event participation",
		Frames: frames(
			on(0, 4, 20, 24),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(0, 4, 20, 24),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
		),
		CycleDuration: 600 * time.Millisecond,
	}},
	{ID: "zap-local", Pattern: pattern.Pattern{
		Name:        "Local Control",
		Description: "L shape indicator (green) - indicates local control mode",
		Frames: frames(
			on(),
			on(0),
			on(0, 5),
			on(0, 5, 10),
			on(0, 5, 10, 15),
			on(0, 5, 10, 15, 20, 21, 22),
			on(0, 5, 10, 15, 20, 21, 22),
			on(0, 5, 10, 15, 20, 21, 22),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-remote", Pattern: pattern.Pattern{
		Name:        "Remote Control",
		Description: "Cloud-like pattern (blue) - indicates remote/cloud control mode",
		Frames: frames(
			on(),
			on(6, 7, 8),
			on(1, 2, 3, 6, 7, 8, 11, 13),
			on(1, 2, 3, 6, 7, 8, 11, 12, 13),
			on(1, 2, 3, 6, 7, 8, 11, 12, 13),
			on(1, 2, 3, 6, 7, 8, 11, 13),
			on(6, 7, 8),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-scheduled", Pattern: pattern.Pattern{
		Name:        "Scheduled Mode",
		Description: "Clock rotation (purple suggested) - indicates scheduled/timer mode",
		Frames: frames(
			on(2, 12),
			on(8, 12),
			on(14, 12),
			on(18, 12),
			on(22, 12),
			on(16, 12),
			on(10, 12),
			on(6, 12),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-error", Pattern: pattern.Pattern{
		Name:        "Error",
		Description: "X pattern (red) - indicates error state",
		Frames: frames(
			on(),
			on(0, 4, 12, 20, 24),
			on(0, 6, 4, 8, 12, 16, 20, 18, 24),
			on(0, 6, 4, 8, 12, 16, 20, 18, 24),
			on(0, 6, 4, 8, 12, 16, 20, 18, 24),
			on(),
			on(0, 6, 4, 8, 12, 16, 20, 18, 24),
			on(),
		),
		CycleDuration: 1200 * time.Millisecond,
	}},
	{ID: "zap-warning", Pattern: pattern.Pattern{
		Name:        "Warning",
		Description: "Triangle blink (orange) - indicates warning state",
		Frames: frames(
			on(),
			on(2),
			on(2, 6, 8),
			on(2, 6, 8, 10, 14),
			on(2, 6, 8, 10, 14, 20, 21, 22, 23, 24),
			on(2, 6, 8, 10, 14, 20, 21, 22, 23, 24),
			on(),
			on(2, 6, 8, 10, 14, 20, 21, 22, 23, 24),
			on(),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-updating", Pattern: pattern.Pattern{
		Name:        "Firmware Update",
		Description: "Progress bar fill (blue) - indicates firmware update in progress",
		Frames: frames(
			on(10),
			on(10, 11),
			on(10, 11, 12),
			on(10, 11, 12, 13),
			on(10, 11, 12, 13, 14),
			on(10, 11, 12, 13, 14),
			on(10, 11, 12, 13, 14),
			on(),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-ev-connected", Pattern: pattern.Pattern{
		Name:        "Vehicle Connected",
		Description: "Plug icon pattern (blue) - indicates EV connected",
		Frames: frames(
			on(),
			on(1, 3),
			on(1, 6, 8, 3),
			on(1, 6, 7, 8, 3),
			on(1, 6, 7, 8, 3, 12),
			on(1, 6, 7, 8, 3, 12, 17),
			on(1, 6, 7, 8, 3, 12, 17, 22),
			on(1, 6, 7, 8, 3, 12, 17, 22),
			on(1, 6, 7, 8, 3, 12, 17, 22),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-ev-charging", Pattern: pattern.Pattern{
		Name:        "EV Charging",
		Description: "Upward flow (blue->green) - indicates EV is charging",
		Frames: frames(
			on(22),
			on(17),
			on(12),
			on(7),
			on(2),
			on(),
		),
		CycleDuration: 800 * time.Millisecond,
	}},
	{ID: "zap-v2x-active", Pattern: pattern.Pattern{
		Name:        "V2X Bidirectional",
		Description: "Alternating flow (green+blue) - indicates V2X bidirectional mode",
		Frames: frames(
			on(2, 7),
			on(12),
			on(17, 22),
			on(12),
		),
		CycleDuration: 600 * time.Millisecond,
	}},
	{ID: "zap-ev-complete", Pattern: pattern.Pattern{
		Name:        "Charge Complete",
		Description: "Checkmark/success (green) - indicates charging complete",
		Frames: frames(
			on(),
			on(16),
			on(16, 20),
			on(16, 20, 12),
			on(16, 20, 12, 8),
			on(16, 20, 12, 8, 4),
			on(16, 20, 12, 8, 4),
			on(16, 20, 12, 8, 4),
			on(16, 20, 12, 8, 4),
			on(16, 20, 12, 8, 4),
			on(),
		),
		CycleDuration: 2500 * time.Millisecond,
	}},
	{ID: "zap-meter-reading", Pattern: pattern.Pattern{
		Name:        "Meter Reading",
		Description: "Horizontal scan (cyan) - indicates meter reading in progress",
		Frames: frames(
			on(0, 5, 10, 15, 20),
			on(1, 6, 11, 16, 21),
			on(2, 7, 12, 17, 22),
			on(3, 8, 13, 18, 23),
			on(4, 9, 14, 19, 24),
			on(3, 8, 13, 18, 23),
			on(2, 7, 12, 17, 22),
			on(1, 6, 11, 16, 21),
		),
		CycleDuration: 1200 * time.Millisecond,
	}},
	{ID: "zap-meter-connected", Pattern: pattern.Pattern{
		Name:        "P1 Connected",
		Description: "P indicator (green) - indicates P1 meter connected",
		Frames: frames(
			on(),
			on(1, 5, 6, 7, 10, 11, 15, 20),
			on(1, 5, 6, 7, 10, 11, 15, 20),
			on(1, 5, 6, 7, 10, 11, 15, 20),
			on(1, 5, 6, 7, 10, 11, 15, 20),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-phase-balance", Pattern: pattern.Pattern{
		Name:        "Phase Indicator",
		Description: "3 vertical columns (RGB suggested) - indicates 3-phase balance",
		Frames: frames(
			on(),
			on(1, 6, 11, 16, 21),
			on(1, 6, 11, 16, 21, 2, 7, 12, 17, 22),
			on(1, 6, 11, 16, 21, 2, 7, 12, 17, 22, 3, 8, 13, 18, 23),
			on(1, 6, 11, 16, 21, 2, 7, 12, 17, 22, 3, 8, 13, 18, 23),
			on(1, 6, 11, 16, 21, 2, 7, 12, 17, 22, 3, 8, 13, 18, 23),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-soc-0", Pattern: pattern.Pattern{
		Name:        "SoC 0-20%",
		Description: "1 row lit (red) - indicates critical battery level",
		Frames: frames(
			on(),
			on(20, 21, 22, 23, 24),
			on(20, 21, 22, 23, 24),
			on(),
			on(20, 21, 22, 23, 24),
			on(20, 21, 22, 23, 24),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "zap-soc-25", Pattern: pattern.Pattern{
		Name:        "SoC 20-40%",
		Description: "2 rows lit (orange) - indicates low battery level",
		Frames: frames(
			on(20, 21, 22, 23, 24, 15, 16, 17, 18, 19),
			on(20, 21, 22, 23, 24, 15, 16, 17, 18, 19),
			on(20, 21, 22, 23, 24, 15, 16, 17, 18, 19),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-soc-50", Pattern: pattern.Pattern{
		Name:        "SoC 40-60%",
		Description: "3 rows lit (yellow) - indicates medium battery level",
		Frames: frames(
			on(20, 21, 22, 23, 24, 15, 16, 17, 18, 19, 10, 11, 12, 13, 14),
			on(20, 21, 22, 23, 24, 15, 16, 17, 18, 19, 10, 11, 12, 13, 14),
			on(20, 21, 22, 23, 24, 15, 16, 17, 18, 19, 10, 11, 12, 13, 14),
			on(),
		),
		CycleDuration: 3000 * time.Millisecond,
	}},
	{ID: "zap-soc-75", Pattern: pattern.Pattern{
		Name:        "SoC 60-80%",
		Description: "4 rows lit (light green) - indicates good battery level",
		Frames: frames(
			on(20, 21, 22, 23, 24, 15, 16, 17, 18, 19, 10, 11, 12, 13, 14, 5, 6, 7, 8, 9),
			on(20, 21, 22, 23, 24, 15, 16, 17, 18, 19, 10, 11, 12, 13, 14, 5, 6, 7, 8, 9),
			on(20, 21, 22, 23, 24, 15, 16, 17, 18, 19, 10, 11, 12, 13, 14, 5, 6, 7, 8, 9),
			on(),
		),
		CycleDuration: 4000 * time.Millisecond,
	}},
	{ID: "zap-soc-100", Pattern: pattern.Pattern{
		Name:        "SoC 80-100%",
		Description: "5 rows lit (green) - indicates full battery",
		Frames: frames(
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24),
		),
		CycleDuration: 5000 * time.Millisecond,
	}},
	{ID: "zap-smiley", Pattern: pattern.Pattern{
		Name:        "Smiley Face",
		Description: "Happy face - for success or celebration",
		Frames: frames(
			on(),
			on(6, 8, 15, 16, 17, 18, 19),
			on(6, 8, 15, 16, 17, 18, 19),
			on(6, 8, 15, 16, 17, 18, 19),
			on(6, 8, 15, 16, 17, 18, 19),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-smiley-wink", Pattern: pattern.Pattern{
		Name:        "Winking Smiley",
		Description: "Playful winking face animation",
		Frames: frames(
			on(6, 8, 15, 16, 17, 18, 19),
			on(6, 8, 15, 16, 17, 18, 19),
			on(11, 8, 15, 16, 17, 18, 19),
			on(11, 8, 15, 16, 17, 18, 19),
			on(6, 8, 15, 16, 17, 18, 19),
			on(6, 8, 15, 16, 17, 18, 19),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-heart", Pattern: pattern.Pattern{
		Name:        "Heart",
		Description: "Heart shape - for love and favorites",
		Frames: frames(
			on(),
			on(1, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 16, 17, 18, 22),
			on(1, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 16, 17, 18, 22),
			on(1, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 16, 17, 18, 22),
			on(),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-heart-beat", Pattern: pattern.Pattern{
		Name:        "Heart Beat",
		Description: "Pulsing heart - for health or love",
		Frames: frames(
			on(7, 11, 12, 13, 17),
			on(1, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 16, 17, 18, 22),
			on(1, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 16, 17, 18, 22),
			on(7, 11, 12, 13, 17),
			on(7, 11, 12, 13, 17),
			on(1, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 16, 17, 18, 22),
		),
		CycleDuration: 1200 * time.Millisecond,
	}},
	{ID: "zap-star", Pattern: pattern.Pattern{
		Name:        "Star",
		Description: "Star shape - for ratings and favorites",
		Frames: frames(
			on(),
			on(2, 6, 7, 8, 10, 11, 12, 13, 14, 16, 18, 20, 24),
			on(2, 6, 7, 8, 10, 11, 12, 13, 14, 16, 18, 20, 24),
			on(2, 6, 7, 8, 10, 11, 12, 13, 14, 16, 18, 20, 24),
			on(),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-star-spin", Pattern: pattern.Pattern{
		Name:        "Spinning Star",
		Description: "Rotating star animation",
		Frames: frames(
			on(2, 12, 22),
			on(8, 12, 16),
			on(10, 12, 14),
			on(6, 12, 18),
			on(2, 12, 22),
		),
		CycleDuration: 800 * time.Millisecond,
	}},
	{ID: "zap-fireworks", Pattern: pattern.Pattern{
		Name:        "Fireworks",
		Description: "Explosive celebration animation",
		Frames: frames(
			on(22),
			on(12),
			on(2, 7),
			on(0, 2, 4, 6, 8),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9),
			on(0, 4, 5, 9, 10, 14),
			on(0, 4, 20, 24),
			on(),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-confetti", Pattern: pattern.Pattern{
		Name:        "Confetti",
		Description: "Random celebration sparkles",
		Frames: frames(
			on(0, 8, 11, 19, 22),
			on(1, 6, 14, 16, 23),
			on(2, 5, 12, 18, 20),
			on(3, 9, 13, 15, 21),
			on(4, 7, 10, 17, 24),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "zap-flower", Pattern: pattern.Pattern{
		Name:        "Flower",
		Description: "Blooming flower animation",
		Frames: frames(
			on(),
			on(12),
			on(12, 7, 11, 13, 17),
			on(2, 6, 7, 8, 11, 12, 13, 16, 17, 18, 22),
			on(2, 6, 7, 8, 10, 11, 12, 13, 14, 16, 17, 18, 22),
			on(2, 6, 7, 8, 10, 11, 12, 13, 14, 16, 17, 18, 22),
			on(12, 7, 11, 13, 17),
			on(),
		),
		CycleDuration: 2500 * time.Millisecond,
	}},
	{ID: "zap-sun", Pattern: pattern.Pattern{
		Name:        "Sun",
		Description: "Radiating sun - for solar energy",
		Frames: frames(
			on(6, 7, 8, 11, 12, 13, 16, 17, 18),
			on(2, 6, 7, 8, 10, 11, 12, 13, 14, 16, 17, 18, 22),
			on(0, 2, 4, 6, 7, 8, 10, 11, 12, 13, 14, 16, 17, 18, 20, 22, 24),
			on(2, 6, 7, 8, 10, 11, 12, 13, 14, 16, 17, 18, 22),
			on(6, 7, 8, 11, 12, 13, 16, 17, 18),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-moon", Pattern: pattern.Pattern{
		Name:        "Moon",
		Description: "Crescent moon - for night mode",
		Frames: frames(
			on(),
			on(1, 2, 3, 5, 8, 9, 10, 14, 15, 19, 21, 22, 23),
			on(1, 2, 5, 10, 15, 21, 22),
			on(1, 2, 5, 10, 15, 21, 22),
			on(1, 2, 3, 5, 8, 9, 10, 14, 15, 19, 21, 22, 23),
			on(),
		),
		CycleDuration: 3000 * time.Millisecond,
	}},
	{ID: "zap-cloud", Pattern: pattern.Pattern{
		Name:        "Cloud",
		Description: "Fluffy cloud shape",
		Frames: frames(
			on(),
			on(1, 2, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14),
			on(1, 2, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14),
			on(1, 2, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-rain", Pattern: pattern.Pattern{
		Name:        "Rain",
		Description: "Falling raindrops animation",
		Frames: frames(
			on(1, 3, 6, 8),
			on(6, 8, 11, 13),
			on(11, 13, 16, 18),
			on(16, 18, 21, 23),
			on(21, 23, 2, 7),
			on(2, 7, 6, 8),
		),
		CycleDuration: 900 * time.Millisecond,
	}},
	{ID: "zap-snow", Pattern: pattern.Pattern{
		Name:        "Snow",
		Description: "Falling snowflakes",
		Frames: frames(
			on(0, 2, 4),
			on(5, 7, 9),
			on(0, 10, 12, 14, 4),
			on(15, 17, 19),
			on(20, 22, 24),
			on(16, 18),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-waves", Pattern: pattern.Pattern{
		Name:        "Waves",
		Description: "Ocean wave animation",
		Frames: frames(
			on(0, 2, 4, 6, 8),
			on(1, 3, 5, 7, 9, 6, 8),
			on(0, 2, 4, 6, 7, 8),
			on(1, 3, 5, 9, 6, 8),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "zap-fire", Pattern: pattern.Pattern{
		Name:        "Fire",
		Description: "Flickering flames",
		Frames: frames(
			on(12, 16, 17, 18, 20, 21, 22, 23, 24),
			on(7, 11, 12, 13, 16, 17, 18, 21, 22, 23),
			on(2, 6, 7, 8, 11, 12, 13, 17, 22),
			on(7, 12, 17, 16, 18, 21, 22, 23),
			on(11, 12, 13, 16, 17, 18, 20, 21, 22, 23, 24),
		),
		CycleDuration: 600 * time.Millisecond,
	}},
	{ID: "zap-tree", Pattern: pattern.Pattern{
		Name:        "Tree",
		Description: "Simple tree shape - for nature/eco",
		Frames: frames(
			on(),
			on(2, 6, 7, 8, 11, 12, 13, 17, 22),
			on(2, 6, 7, 8, 11, 12, 13, 17, 22),
			on(2, 6, 7, 8, 11, 12, 13, 17, 22),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-house", Pattern: pattern.Pattern{
		Name:        "House",
		Description: "Home icon - for home automation",
		Frames: frames(
			on(),
			on(2, 6, 8, 10, 11, 12, 13, 14, 15, 16, 18, 19, 20, 21, 23, 24),
			on(2, 6, 8, 10, 11, 12, 13, 14, 15, 16, 18, 19, 20, 21, 23, 24),
			on(2, 6, 8, 10, 11, 12, 13, 14, 15, 16, 18, 19, 20, 21, 23, 24),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-car", Pattern: pattern.Pattern{
		Name:        "Car",
		Description: "Simple car shape - side view",
		Frames: frames(
			on(6, 7, 8, 10, 11, 12, 13, 14, 16, 18),
			on(6, 7, 8, 10, 11, 12, 13, 14, 16, 18),
			on(6, 7, 8, 10, 11, 12, 13, 14, 15, 19),
			on(6, 7, 8, 10, 11, 12, 13, 14, 15, 19),
		),
		CycleDuration: 800 * time.Millisecond,
	}},
	{ID: "zap-rocket", Pattern: pattern.Pattern{
		Name:        "Rocket",
		Description: "Rocket launch animation",
		Frames: frames(
			on(2, 6, 7, 8, 11, 12, 13, 15, 17, 19, 22),
			on(2, 6, 7, 8, 11, 12, 13, 15, 17, 19, 21, 22, 23),
			on(2, 6, 7, 8, 11, 12, 13, 15, 17, 19, 20, 21, 22, 23, 24),
			on(2, 6, 7, 8, 11, 12, 13, 15, 17, 19, 21, 22, 23),
		),
		CycleDuration: 600 * time.Millisecond,
	}},
	{ID: "zap-ghost", Pattern: pattern.Pattern{
		Name:        "Ghost",
		Description: "Spooky ghost animation",
		Frames: frames(
			on(1, 2, 3, 5, 6, 8, 9, 10, 11, 12, 13, 14, 15, 16, 18, 19, 20, 22, 24),
			on(1, 2, 3, 5, 6, 8, 9, 10, 11, 12, 13, 14, 15, 16, 18, 19, 21, 23),
			on(1, 2, 3, 5, 6, 8, 9, 10, 11, 12, 13, 14, 15, 16, 18, 19, 20, 22, 24),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "zap-skull", Pattern: pattern.Pattern{
		Name:        "Skull",
		Description: "Skull icon - for danger/death",
		Frames: frames(
			on(),
			on(1, 2, 3, 5, 6, 8, 9, 10, 12, 14, 16, 17, 18),
			on(1, 2, 3, 5, 6, 8, 9, 10, 12, 14, 16, 17, 18),
			on(),
			on(1, 2, 3, 5, 6, 8, 9, 10, 12, 14, 16, 17, 18),
			on(),
		),
		CycleDuration: 1200 * time.Millisecond,
	}},
	{ID: "zap-cat", Pattern: pattern.Pattern{
		Name:        "Cat",
		Description: "Cat face with animated ears",
		Frames: frames(
			on(0, 4, 6, 8, 10, 12, 14, 16, 18),
			on(0, 4, 6, 8, 10, 12, 14, 16, 18),
			on(5, 9, 6, 8, 10, 12, 14, 16, 18),
			on(0, 4, 6, 8, 10, 12, 14, 16, 18),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-fish", Pattern: pattern.Pattern{
		Name:        "Fish",
		Description: "Swimming fish animation",
		Frames: frames(
			on(6, 11, 12, 13, 14, 19, 17),
			on(6, 7, 11, 12, 13, 18, 17),
			on(5, 7, 10, 11, 12, 13, 17),
			on(6, 7, 11, 12, 13, 18, 17),
		),
		CycleDuration: 800 * time.Millisecond,
	}},
	{ID: "zap-music", Pattern: pattern.Pattern{
		Name:        "Music Note",
		Description: "Musical note animation",
		Frames: frames(
			on(),
			on(3, 4, 8, 9, 14, 19, 18, 23),
			on(3, 4, 8, 9, 14, 19, 18, 23),
			on(3, 4, 8, 9, 14, 19, 18, 23),
			on(),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-checkmark", Pattern: pattern.Pattern{
		Name:        "Checkmark",
		Description: "Success/done indicator",
		Frames: frames(
			on(),
			on(16),
			on(16, 20),
			on(16, 20, 12),
			on(16, 20, 12, 8),
			on(16, 20, 12, 8, 4),
			on(16, 20, 12, 8, 4),
			on(16, 20, 12, 8, 4),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-cross", Pattern: pattern.Pattern{
		Name:        "Cross/X",
		Description: "Cancel/error indicator",
		Frames: frames(
			on(),
			on(0, 4, 12, 20, 24),
			on(0, 6, 4, 8, 12, 16, 20, 18, 24),
			on(0, 6, 4, 8, 12, 16, 20, 18, 24),
			on(),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "zap-question", Pattern: pattern.Pattern{
		Name:        "Question Mark",
		Description: "Help/unknown indicator",
		Frames: frames(
			on(),
			on(1, 2, 3, 9, 8, 12, 22),
			on(1, 2, 3, 9, 8, 12, 22),
			on(1, 2, 3, 9, 8, 12),
			on(1, 2, 3, 9, 8, 12, 22),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-exclaim", Pattern: pattern.Pattern{
		Name:        "Exclamation Mark",
		Description: "Alert/important indicator",
		Frames: frames(
			on(),
			on(2, 7, 12, 22),
			on(2, 7, 12, 22),
			on(2, 7, 12),
			on(2, 7, 12, 22),
			on(),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "zap-arrow-up", Pattern: pattern.Pattern{
		Name:        "Arrow Up",
		Description: "Upward direction indicator",
		Frames: frames(
			on(2, 6, 7, 8, 12, 17, 22),
			on(2, 6, 7, 8, 12, 17, 22),
			on(),
			on(2, 6, 7, 8, 12, 17, 22),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "zap-arrow-down", Pattern: pattern.Pattern{
		Name:        "Arrow Down",
		Description: "Downward direction indicator",
		Frames: frames(
			on(2, 7, 12, 16, 17, 18, 22),
			on(2, 7, 12, 16, 17, 18, 22),
			on(),
			on(2, 7, 12, 16, 17, 18, 22),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "zap-arrow-left", Pattern: pattern.Pattern{
		Name:        "Arrow Left",
		Description: "Leftward direction indicator",
		Frames: frames(
			on(7, 10, 11, 12, 13, 17),
			on(7, 10, 11, 12, 13, 17),
			on(),
			on(7, 10, 11, 12, 13, 17),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "zap-arrow-right", Pattern: pattern.Pattern{
		Name:        "Arrow Right",
		Description: "Rightward direction indicator",
		Frames: frames(
			on(7, 11, 12, 13, 14, 17),
			on(7, 11, 12, 13, 14, 17),
			on(),
			on(7, 11, 12, 13, 14, 17),
		),
		CycleDuration: 1000 * time.Millisecond,
	}},
	{ID: "zap-play", Pattern: pattern.Pattern{
		Name:        "Play",
		Description: "Media play button",
		Frames: frames(
			on(),
			on(6, 11, 12, 16, 17),
			on(6, 7, 11, 12, 13, 16, 17, 18),
			on(6, 7, 8, 11, 12, 13, 14, 16, 17, 18),
			on(6, 7, 8, 11, 12, 13, 14, 16, 17, 18),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-pause", Pattern: pattern.Pattern{
		Name:        "Pause",
		Description: "Media pause button",
		Frames: frames(
			on(),
			on(6, 8, 11, 13, 16, 18),
			on(6, 8, 11, 13, 16, 18),
			on(6, 8, 11, 13, 16, 18),
			on(),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-stop", Pattern: pattern.Pattern{
		Name:        "Stop",
		Description: "Media stop button",
		Frames: frames(
			on(),
			on(6, 7, 8, 11, 12, 13, 16, 17, 18),
			on(6, 7, 8, 11, 12, 13, 16, 17, 18),
			on(6, 7, 8, 11, 12, 13, 16, 17, 18),
			on(),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-power", Pattern: pattern.Pattern{
		Name:        "Power",
		Description: "Power button symbol",
		Frames: frames(
			on(),
			on(2, 7, 5, 9, 10, 12, 14, 15, 19, 21, 22, 23),
			on(2, 7, 5, 9, 10, 12, 14, 15, 19, 21, 22, 23),
			on(2, 7, 5, 9, 10, 12, 14, 15, 19, 21, 22, 23),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-wifi-bars", Pattern: pattern.Pattern{
		Name:        "WiFi Bars",
		Description: "WiFi signal strength animation",
		Frames: frames(
			on(22),
			on(22, 16, 17, 18),
			on(22, 16, 17, 18, 11, 12, 13),
			on(22, 16, 17, 18, 11, 12, 13, 6, 7, 8),
			on(22, 16, 17, 18, 11, 12, 13, 6, 7, 8, 2),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-signal", Pattern: pattern.Pattern{
		Name:        "Signal Bars",
		Description: "Cellular signal strength",
		Frames: frames(
			on(20),
			on(20, 15, 21),
			on(20, 15, 21, 10, 16, 22),
			on(20, 15, 21, 10, 16, 22, 5, 17, 23),
			on(20, 15, 21, 10, 16, 22, 5, 17, 23, 0, 18, 24),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-hourglass", Pattern: pattern.Pattern{
		Name:        "Hourglass",
		Description: "Loading/waiting animation",
		Frames: frames(
			on(0, 1, 2, 3, 4, 6, 8, 12, 16, 18, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 12, 16, 18, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 16, 17, 18, 20, 21, 22, 23, 24),
			on(0, 1, 2, 3, 4, 6, 8, 12, 16, 18, 20, 21, 22, 23, 24),
		),
		CycleDuration: 1200 * time.Millisecond,
	}},
	{ID: "zap-clock", Pattern: pattern.Pattern{
		Name:        "Clock",
		Description: "Time/clock face animation",
		Frames: frames(
			on(1, 2, 3, 5, 12, 9, 10, 14, 15, 19, 21, 22, 23, 7),
			on(1, 2, 3, 5, 12, 9, 10, 14, 15, 19, 21, 22, 23, 8),
			on(1, 2, 3, 5, 12, 9, 10, 14, 15, 19, 21, 22, 23, 17),
			on(1, 2, 3, 5, 12, 9, 10, 14, 15, 19, 21, 22, 23, 16),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-bell", Pattern: pattern.Pattern{
		Name:        "Bell",
		Description: "Notification bell animation",
		Frames: frames(
			on(2, 6, 7, 8, 11, 12, 13, 16, 17, 18, 22),
			on(2, 6, 7, 8, 11, 12, 13, 16, 17, 18, 21),
			on(2, 6, 7, 8, 11, 12, 13, 16, 17, 18, 22),
			on(2, 6, 7, 8, 11, 12, 13, 16, 17, 18, 23),
		),
		CycleDuration: 800 * time.Millisecond,
	}},
	{ID: "zap-mail", Pattern: pattern.Pattern{
		Name:        "Mail/Envelope",
		Description: "Message/email indicator",
		Frames: frames(
			on(),
			on(0, 2, 4, 5, 6, 8, 9, 10, 11, 13, 14, 15, 16, 17, 18, 19),
			on(0, 2, 4, 5, 6, 8, 9, 10, 11, 13, 14, 15, 16, 17, 18, 19),
			on(0, 2, 4, 5, 6, 8, 9, 10, 11, 13, 14, 15, 16, 17, 18, 19),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-pacman", Pattern: pattern.Pattern{
		Name:        "Pac-Man",
		Description: "Classic arcade chomping animation",
		Frames: frames(
			on(1, 2, 3, 5, 6, 7, 8, 10, 11, 12, 15, 16, 17, 18, 21, 22, 23),
			on(1, 2, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 21, 22, 23),
		),
		CycleDuration: 500 * time.Millisecond,
	}},
	{ID: "zap-space-invader", Pattern: pattern.Pattern{
		Name:        "Space Invader",
		Description: "Classic arcade alien animation",
		Frames: frames(
			on(1, 3, 6, 7, 8, 0, 2, 4, 10, 11, 12, 13, 14, 16, 18),
			on(1, 3, 6, 7, 8, 0, 2, 4, 10, 11, 12, 13, 14, 15, 19),
		),
		CycleDuration: 800 * time.Millisecond,
	}},
	{ID: "zap-tetris", Pattern: pattern.Pattern{
		Name:        "Tetris",
		Description: "Falling tetris blocks",
		Frames: frames(
			on(1, 2, 3, 4),
			on(6, 7, 8, 9),
			on(11, 12, 13, 14),
			on(16, 17, 18, 19),
			on(21, 22, 23, 24, 16, 17, 18, 19),
			on(21, 22, 23, 24, 16, 17, 18, 19),
		),
		CycleDuration: 1500 * time.Millisecond,
	}},
	{ID: "zap-dice", Pattern: pattern.Pattern{
		Name:        "Dice",
		Description: "Rolling dice animation",
		Frames: frames(
			on(12),
			on(6, 18),
			on(6, 12, 18),
			on(6, 8, 16, 18),
			on(6, 8, 12, 16, 18),
			on(6, 8, 11, 13, 16, 18),
		),
		CycleDuration: 1800 * time.Millisecond,
	}},
	{ID: "zap-crown", Pattern: pattern.Pattern{
		Name:        "Crown",
		Description: "Royal crown icon",
		Frames: frames(
			on(),
			on(0, 2, 4, 6, 7, 8, 10, 11, 12, 13, 14),
			on(0, 2, 4, 6, 7, 8, 10, 11, 12, 13, 14),
			on(0, 2, 4, 6, 7, 8, 10, 11, 12, 13, 14),
			on(),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
	{ID: "zap-trophy", Pattern: pattern.Pattern{
		Name:        "Trophy",
		Description: "Winner trophy icon",
		Frames: frames(
			on(),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 6, 8, 16, 17, 18, 22),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 6, 8, 16, 17, 18, 22),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 6, 8, 16, 17, 18, 22, 10, 14, 20, 24),
			on(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 6, 8, 16, 17, 18, 22),
		),
		CycleDuration: 2000 * time.Millisecond,
	}},
}

var zapCategories = []pattern.Category{
	{Label: "Startup & Identity", IDs: []string{"zap-boot", "zap-ready", "zap-logo"}},
	{Label: "Connection", IDs: []string{"zap-pairing", "zap-connecting", "zap-connected", "zap-no-network"}},
	{Label: "Operational", IDs: []string{"zap-active", "zap-standby", "zap-offline"}},
	{Label: "Data", IDs: []string{"zap-data-tx", "zap-syncing", "zap-no-data"}},
	{Label: "Energy Flow", IDs: []string{"zap-importing", "zap-exporting", "zap-charging", "zap-discharging", "zap-peak-alert", "zap-grid-event"}},
	{Label: "Control Mode", IDs: []string{"zap-local", "zap-remote", "zap-scheduled"}},
	{Label: "Error", IDs: []string{"zap-error", "zap-warning", "zap-updating"}},
	{Label: "V2X/EV", IDs: []string{"zap-ev-connected", "zap-ev-charging", "zap-v2x-active", "zap-ev-complete"}},
	{Label: "P1 Meter", IDs: []string{"zap-meter-reading", "zap-meter-connected", "zap-phase-balance"}},
	{Label: "Battery SoC", IDs: []string{"zap-soc-0", "zap-soc-25", "zap-soc-50", "zap-soc-75", "zap-soc-100"}},
	{Label: "Fun & Decorative", IDs: []string{"zap-smiley", "zap-smiley-wink", "zap-heart", "zap-heart-beat", "zap-star", "zap-star-spin", "zap-fireworks", "zap-confetti", "zap-flower", "zap-sun", "zap-moon", "zap-cloud", "zap-rain", "zap-snow", "zap-waves", "zap-fire", "zap-tree", "zap-house", "zap-car", "zap-rocket", "zap-ghost", "zap-skull", "zap-cat", "zap-fish", "zap-music"}},
	{Label: "Emojis & Symbols", IDs: []string{"zap-checkmark", "zap-cross", "zap-question", "zap-exclaim", "zap-arrow-up", "zap-arrow-down", "zap-arrow-left", "zap-arrow-right", "zap-play", "zap-pause", "zap-stop", "zap-power", "zap-wifi-bars", "zap-signal", "zap-hourglass", "zap-clock", "zap-bell", "zap-mail"}},
	{Label: "Games & Fun", IDs: []string{"zap-pacman", "zap-space-invader", "zap-tetris", "zap-dice", "zap-crown", "zap-trophy"}},
}

// zapColors maps each Zap pattern to its recommended display colour.
var zapColors = map[string]pattern.ColorName{
	"zap-boot":            pattern.Green,
	"zap-ready":           pattern.Green,
	"zap-logo":            pattern.Green,
	"zap-pairing":         pattern.Blue,
	"zap-connecting":      pattern.Blue,
	"zap-connected":       pattern.Green,
	"zap-no-network":      pattern.Pink,
	"zap-active":          pattern.Green,
	"zap-standby":         pattern.Green,
	"zap-offline":         pattern.Blue,
	"zap-data-tx":         pattern.Blue,
	"zap-syncing":         pattern.Blue,
	"zap-no-data":         pattern.Pink,
	"zap-importing":       pattern.Pink,
	"zap-exporting":       pattern.Green,
	"zap-charging":        pattern.Blue,
	"zap-discharging":     pattern.Green,
	"zap-peak-alert":      pattern.Pink,
	"zap-grid-event":      pattern.Green,
	"zap-local":           pattern.Green,
	"zap-remote":          pattern.Blue,
	"zap-scheduled":       pattern.Blue,
	"zap-error":           pattern.Pink,
	"zap-warning":         pattern.Pink,
	"zap-updating":        pattern.Blue,
	"zap-ev-connected":    pattern.Blue,
	"zap-ev-charging":     pattern.Blue,
	"zap-v2x-active":      pattern.Green,
	"zap-ev-complete":     pattern.Green,
	"zap-meter-reading":   pattern.Blue,
	"zap-meter-connected": pattern.Green,
	"zap-phase-balance":   pattern.Blue,
	"zap-soc-0":           pattern.Pink,
	"zap-soc-25":          pattern.Pink,
	"zap-soc-50":          pattern.Pink,
	"zap-soc-75":          pattern.Green,
	"zap-soc-100":         pattern.Green,
	"zap-smiley":          pattern.Green,
	"zap-smiley-wink":     pattern.Green,
	"zap-heart":           pattern.Pink,
	"zap-heart-beat":      pattern.Pink,
	"zap-star":            pattern.Pink,
	"zap-star-spin":       pattern.Pink,
	"zap-fireworks":       pattern.Pink,
	"zap-confetti":        pattern.Blue,
	"zap-flower":          pattern.Pink,
	"zap-sun":             pattern.Pink,
	"zap-moon":            pattern.Blue,
	"zap-cloud":           pattern.Blue,
	"zap-rain":            pattern.Blue,
	"zap-snow":            pattern.Blue,
	"zap-waves":           pattern.Blue,
	"zap-fire":            pattern.Pink,
	"zap-tree":            pattern.Green,
	"zap-house":           pattern.Green,
	"zap-car":             pattern.Blue,
	"zap-rocket":          pattern.Pink,
	"zap-ghost":           pattern.Blue,
	"zap-skull":           pattern.Pink,
	"zap-cat":             pattern.Pink,
	"zap-fish":            pattern.Blue,
	"zap-music":           pattern.Blue,
	"zap-checkmark":       pattern.Green,
	"zap-cross":           pattern.Pink,
	"zap-question":        pattern.Blue,
	"zap-exclaim":         pattern.Pink,
	"zap-arrow-up":        pattern.Green,
	"zap-arrow-down":      pattern.Green,
	"zap-arrow-left":      pattern.Green,
	"zap-arrow-right":     pattern.Green,
	"zap-play":            pattern.Green,
	"zap-pause":           pattern.Blue,
	"zap-stop":            pattern.Pink,
	"zap-power":           pattern.Green,
	"zap-wifi-bars":       pattern.Blue,
	"zap-signal":          pattern.Green,
	"zap-hourglass":       pattern.Blue,
	"zap-clock":           pattern.Blue,
	"zap-bell":            pattern.Pink,
	"zap-mail":            pattern.Blue,
	"zap-pacman":          pattern.Pink,
	"zap-space-invader":   pattern.Green,
	"zap-tetris":          pattern.Blue,
	"zap-dice":            pattern.Blue,
	"zap-crown":           pattern.Pink,
	"zap-trophy":          pattern.Pink,
}
