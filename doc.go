// Package pixelgrid renders animated LED-style pixel grids with [Ebitengine].
//
// A grid is a square of N×N cells (N = 3, 4, 5 or 6) that plays one pattern
// from a [pattern.Library]. Patterns are ordered frames of lit pixels; the
// grid advances through them at a uniform rate derived from the pattern's
// cycle duration or the chosen speed.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := pixelgrid.NewScene()
//	grid := pixelgrid.NewGrid(catalog.Default(), "corners-sync", pixelgrid.GridOptions{
//		Size: pattern.SizeLarge,
//	})
//	scene.Root().AddChild(grid.Node())
//	pixelgrid.Run(scene, pixelgrid.RunConfig{
//		Title: "Pixel grid", Width: 320, Height: 240,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly:
//
//	type Game struct{ scene *pixelgrid.Scene }
//
//	func (g *Game) Update() error         { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Scene graph
//
// Every visual element is a [Node]. Nodes form a tree rooted at
// [Scene.Root]. Children inherit their parent's transform and alpha. A
// [Grid] owns a container node with one sprite per cell, an optional glow
// sprite per cell for dark mode, and an optional label.
//
// # Missing patterns
//
// Pattern identifiers are not portable between dimensions. Asking a grid for
// an identifier its dimension's catalogs do not hold logs a warning and
// leaves the grid empty; it never panics. [Grid.Found] reports the outcome.
//
// # Comparison views
//
// [NewShowcase], [CompareColors], [CompareSizes] and [CompareDimensions]
// lay out many grids at once. Dimension comparisons only accept identifiers
// present in every compared dimension; see catalog.CommonIDs.
//
// A showcase taller than the window can be wrapped in a [ScrollView], which
// eases its content towards a clamped scroll offset. [Showcase.GridAt] maps a
// pointer position back to the grid under it.
//
// # Headless rendering
//
// [Scene.Snapshot] rasterises the current frame in software into an
// [image.NRGBA] without a running game loop, and [Scene.Screenshot] writes
// PNG files from a live window. Scripts loaded with [LoadScript] drive
// pattern changes, pauses and screenshots frame by frame.
//
// [Ebitengine]: https://ebitengine.org
package pixelgrid
