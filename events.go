package pixelgrid

import "github.com/sourceful-energy/pixelgrid/pattern"

// EventSink is the interface for optional ECS integration.
// When set on a Grid, lifecycle and frame events are forwarded to it.
type EventSink interface {
	EmitGridEvent(event GridEvent)
}

// GridEventType identifies a kind of grid event.
type GridEventType uint8

const (
	GridPatternChanged GridEventType = iota // a pattern was resolved and loaded
	GridPatternMissing                      // the requested id is not in the grid's catalogs
	GridFrameAdvanced                       // the visible frame changed
	GridPaused                              // frame advancement stopped
	GridResumed                             // frame advancement continued
	GridDisposed                            // the grid released its nodes
)

func (t GridEventType) String() string {
	switch t {
	case GridPatternChanged:
		return "pattern-changed"
	case GridPatternMissing:
		return "pattern-missing"
	case GridFrameAdvanced:
		return "frame-advanced"
	case GridPaused:
		return "paused"
	case GridResumed:
		return "resumed"
	case GridDisposed:
		return "disposed"
	}
	return "unknown"
}

// GridEvent carries grid state for the ECS bridge.
type GridEvent struct {
	Type      GridEventType
	NodeID    uint32 // ID of the grid's root node
	Ref       pattern.Ref
	Dimension pattern.Dimension
	Frame     int
	Active    []pattern.PixelIndex // lit pixels, ascending; FrameAdvanced and PatternChanged only
}
