package ecs

import (
	"github.com/sourceful-energy/pixelgrid"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GridEventType is the Donburi event type for pixelgrid grid events.
var GridEventType = events.NewEventType[pixelgrid.GridEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Grid events are published to GridEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) pixelgrid.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitGridEvent(event pixelgrid.GridEvent) {
	GridEventType.Publish(s.world, event)
}
