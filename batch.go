package pixelgrid

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// submitCommands walks the sorted commands and issues one draw call each.
func (s *Scene) submitCommands(target *ebiten.Image) {
	if len(s.commands) == 0 {
		return
	}

	var op ebiten.DrawImageOptions

	for i := range s.commands {
		cmd := &s.commands[i]

		switch cmd.Type {
		case CommandSprite:
			submitSprite(target, cmd, &op)
		case CommandLabel:
			submitLabel(target, cmd)
		}
	}
}

// submitSprite draws a single sprite command using DrawImage.
func submitSprite(target *ebiten.Image, cmd *RenderCommand, op *ebiten.DrawImageOptions) {
	op.GeoM.Reset()
	op.GeoM.Concat(commandGeoM(cmd))

	// Apply premultiplied color scale
	op.ColorScale.Reset()
	a := cmd.Color.A
	op.ColorScale.Scale(cmd.Color.R*a, cmd.Color.G*a, cmd.Color.B*a, a)

	op.Blend = cmd.BlendMode.EbitenBlend()

	target.DrawImage(ensureWhitePixel(), op)
}

// submitLabel prints the command text at its translated origin. The debug
// font ignores scale, rotation and tint.
func submitLabel(target *ebiten.Image, cmd *RenderCommand) {
	ebitenutil.DebugPrintAt(target, cmd.Text, int(cmd.Transform[4]), int(cmd.Transform[5]))
}

func commandGeoM(cmd *RenderCommand) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, float64(cmd.Transform[0]))
	m.SetElement(1, 0, float64(cmd.Transform[1]))
	m.SetElement(0, 1, float64(cmd.Transform[2]))
	m.SetElement(1, 1, float64(cmd.Transform[3]))
	m.SetElement(0, 2, float64(cmd.Transform[4]))
	m.SetElement(1, 2, float64(cmd.Transform[5]))
	return m
}
