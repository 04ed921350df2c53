package pixelgrid

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// Scene is the top-level object that owns the node tree and render buffers.
type Scene struct {
	root  *Node
	debug bool

	// ScreenshotDir is where Screenshot writes PNG files. Defaults to
	// "screenshots".
	ScreenshotDir string

	updateFunc      func() error
	script          *Script
	screenshotQueue []string

	// Render state
	commands []RenderCommand
	sortBuf  []RenderCommand
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:          NewContainer("root"),
		ScreenshotDir: "screenshots",
		commands:      make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:       make([]RenderCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUpdateFunc registers a callback run at the start of every Update. A
// non-nil error returned from it stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the scene by one tick at the current ebiten TPS.
func (s *Scene) Update() error {
	return s.UpdateDelta(1.0 / float64(ebiten.TPS()))
}

// UpdateDelta advances the scene by dt seconds: it runs the update callback,
// steps an attached script, calls every node's OnUpdate and refreshes world
// transforms.
func (s *Scene) UpdateDelta(dt float64) error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	if s.script != nil {
		s.script.step(s)
	}
	updateNodes(s.root, dt)
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	return nil
}

// Draw traverses the scene tree, emits render commands, sorts them, and submits
// them to the given screen image.
func (s *Scene) Draw(screen *ebiten.Image) {
	var stats debugStats
	var t0 time.Time

	if s.debug {
		t0 = time.Now()
	}

	s.buildCommands()

	if s.debug {
		stats.traverseTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		t0 = time.Now()
	}

	s.submitCommands(screen)

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.drawCallCount = countDrawCalls(s.commands)
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

// buildCommands fills s.commands with the sorted draw list for the current
// tree.
func (s *Scene) buildCommands() {
	s.commands = s.commands[:0]
	treeOrder := 0
	s.traverse(s.root, identityTransform, 1.0, false, &treeOrder)
	s.mergeSort()
}

// FindNode returns the first node named name in depth-first order, or nil.
func (s *Scene) FindNode(name string) *Node {
	return findNode(s.root, name)
}

func findNode(n *Node, name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := findNode(c, name); found != nil {
			return found
		}
	}
	return nil
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and per-frame
// timing stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
