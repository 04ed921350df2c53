// Package ecs provides ECS adapters for pixelgrid's grid event stream.
//
// The primary adapter is [NewDonburiSink], which forwards grid lifecycle and
// frame events (pattern changed or missing, frame advanced, paused, resumed,
// disposed) into a [Donburi] world as typed events. Subscribe to
// [GridEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	grid := pixelgrid.NewGrid(lib, "zap-ready", pixelgrid.GridOptions{Events: sink})
//
// [Tracker] subscribes to the same events and keeps one entity per grid with
// a [GridStateComponent], removed again when the grid is disposed:
//
//	tracker := ecs.NewTracker(world)
//	// once per tick
//	tracker.Process()
//	grids, paused, missing, advances := tracker.Totals()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
