package ecs

import (
	"testing"
	"time"

	"github.com/sourceful-energy/pixelgrid"
	"github.com/sourceful-energy/pixelgrid/pattern"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func blinkLibrary(t *testing.T) *pattern.Library {
	t.Helper()
	lib, err := pattern.NewLibrary(pattern.MustCatalog(pattern.CatalogSpec{
		ID: pattern.Catalog3x3,
		Entries: []pattern.Entry{{ID: "blink", Pattern: pattern.Pattern{
			Name:          "Blink",
			CycleDuration: time.Second,
			Frames: []pattern.Frame{
				{Active: []pattern.PixelIndex{0, 2, 6, 8}},
				{Active: []pattern.PixelIndex{4}},
			},
		}}},
	}))
	if err != nil {
		t.Fatal(err)
	}
	return lib
}

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitGridEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []pixelgrid.GridEvent
	GridEventType.Subscribe(world, func(w donburi.World, e pixelgrid.GridEvent) {
		received = append(received, e)
	})

	sink.EmitGridEvent(pixelgrid.GridEvent{
		Type:      pixelgrid.GridFrameAdvanced,
		NodeID:    42,
		Ref:       pattern.Ref{Catalog: pattern.CatalogZap, ID: "zap-ready"},
		Dimension: pattern.Dim5,
		Frame:     3,
		Active:    []pattern.PixelIndex{7, 12},
	})
	sink.EmitGridEvent(pixelgrid.GridEvent{Type: pixelgrid.GridPaused, NodeID: 42})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before processing", len(received))
	}
	GridEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != pixelgrid.GridFrameAdvanced || e0.NodeID != 42 || e0.Frame != 3 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Ref.ID != "zap-ready" || len(e0.Active) != 2 {
		t.Errorf("event 0 payload: %+v", e0)
	}
	if received[1].Type != pixelgrid.GridPaused {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink pixelgrid.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_GridLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	var got []pixelgrid.GridEventType
	GridEventType.Subscribe(world, func(w donburi.World, e pixelgrid.GridEvent) {
		got = append(got, e.Type)
	})

	g := pixelgrid.NewGrid(blinkLibrary(t), "blink", pixelgrid.GridOptions{Events: NewDonburiSink(world)})
	g.Update(0.5)
	g.Pause()
	g.Resume()
	g.Dispose()
	events.ProcessAllEvents(world)

	want := []pixelgrid.GridEventType{
		pixelgrid.GridPatternChanged,
		pixelgrid.GridFrameAdvanced,
		pixelgrid.GridPaused,
		pixelgrid.GridResumed,
		pixelgrid.GridDisposed,
	}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDonburiSink_MissingPattern(t *testing.T) {
	world := donburi.NewWorld()
	var got []pixelgrid.GridEvent
	GridEventType.Subscribe(world, func(w donburi.World, e pixelgrid.GridEvent) {
		got = append(got, e)
	})

	pixelgrid.NewGrid(blinkLibrary(t), "nope", pixelgrid.GridOptions{Events: NewDonburiSink(world)})
	GridEventType.ProcessEvents(world)

	if len(got) != 1 || got[0].Type != pixelgrid.GridPatternMissing {
		t.Fatalf("events = %+v, want one pattern-missing", got)
	}
	if got[0].Ref.ID != "nope" {
		t.Errorf("Ref = %v", got[0].Ref)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	GridEventType.Subscribe(world, func(w donburi.World, e pixelgrid.GridEvent) {
		count1++
	})
	GridEventType.Subscribe(world, func(w donburi.World, e pixelgrid.GridEvent) {
		count2++
	})

	sink.EmitGridEvent(pixelgrid.GridEvent{Type: pixelgrid.GridResumed})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
