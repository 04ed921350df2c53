package pixelgrid

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// NewFPSWidget creates a label node that displays the current FPS and TPS.
// The text is refreshed every ~0.5 seconds from the node's OnUpdate.
func NewFPSWidget() *Node {
	node := NewLabel("fps_widget", "")
	node.RenderLayer = 255 // Draw on top

	var lastUpdate float64
	refresh := func() {
		node.Text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	refresh()

	node.OnUpdate = func(dt float64) {
		lastUpdate += dt
		if lastUpdate < 0.5 {
			return
		}
		lastUpdate = 0
		refresh()
	}

	return node
}
