package pixelgrid

import "testing"

// helper to build a scene's command list without an ebiten.Image
func traverseScene(s *Scene) {
	s.buildCommands()
}

// --- Command emission ---

func TestSingleRectEmitsOneCommand(t *testing.T) {
	s := NewScene()
	s.Root().AddChild(NewRect("r", 10, 10, ColorWhite))
	traverseScene(s)
	if len(s.commands) != 1 {
		t.Fatalf("commands = %d, want 1", len(s.commands))
	}
	if s.commands[0].Type != CommandSprite {
		t.Errorf("Type = %d, want CommandSprite", s.commands[0].Type)
	}
}

func TestInvisibleSubtreeSkipped(t *testing.T) {
	s := NewScene()
	parent := NewContainer("parent")
	parent.Visible = false
	parent.AddChild(NewRect("child", 1, 1, ColorWhite))
	s.Root().AddChild(parent)
	traverseScene(s)
	if len(s.commands) != 0 {
		t.Errorf("commands = %d, want 0 for invisible subtree", len(s.commands))
	}
}

func TestTransparentRectSkipped(t *testing.T) {
	s := NewScene()
	r := NewRect("r", 1, 1, ColorWhite)
	r.Alpha = 0
	s.Root().AddChild(r)
	traverseScene(s)
	if len(s.commands) != 0 {
		t.Errorf("commands = %d, want 0 for zero alpha", len(s.commands))
	}
}

func TestNonRenderableParentStillTraversesChildren(t *testing.T) {
	s := NewScene()
	parent := NewRect("parent", 1, 1, ColorWhite)
	parent.Renderable = false
	parent.AddChild(NewRect("child", 1, 1, ColorWhite))
	s.Root().AddChild(parent)
	traverseScene(s)
	if len(s.commands) != 1 {
		t.Errorf("commands = %d, want 1", len(s.commands))
	}
}

func TestLabelCommand(t *testing.T) {
	s := NewScene()
	l := NewLabel("l", "frame")
	l.SetPosition(4, 40)
	s.Root().AddChild(l)
	traverseScene(s)
	if len(s.commands) != 1 || s.commands[0].Type != CommandLabel {
		t.Fatalf("commands = %+v", s.commands)
	}
	if s.commands[0].Text != "frame" || s.commands[0].Transform[4] != 4 || s.commands[0].Transform[5] != 40 {
		t.Errorf("label command = %+v", s.commands[0])
	}
}

func TestEmptyLabelSkipped(t *testing.T) {
	s := NewScene()
	s.Root().AddChild(NewLabel("l", ""))
	traverseScene(s)
	if len(s.commands) != 0 {
		t.Errorf("commands = %d, want 0", len(s.commands))
	}
}

func TestCommandColorCarriesWorldAlpha(t *testing.T) {
	s := NewScene()
	p := NewContainer("p")
	p.Alpha = 0.5
	r := NewRect("r", 1, 1, Color{1, 0, 0, 0.5})
	p.AddChild(r)
	s.Root().AddChild(p)
	traverseScene(s)
	if got := s.commands[0].Color.A; got != 0.25 {
		t.Errorf("A = %v, want 0.25", got)
	}
}

// --- Ordering ---

func TestZIndexOrdersSiblings(t *testing.T) {
	s := NewScene()
	a := NewRect("a", 1, 1, ColorWhite)
	a.SetPosition(5, 0)
	b := NewRect("b", 1, 1, ColorWhite)
	b.SetZIndex(-1)
	s.Root().AddChild(a)
	s.Root().AddChild(b)
	traverseScene(s)
	if len(s.commands) != 2 {
		t.Fatalf("commands = %d", len(s.commands))
	}
	if s.commands[0].Transform[4] != 0 || s.commands[1].Transform[4] != 5 {
		t.Errorf("draw order tx = [%v %v], want [0 5]", s.commands[0].Transform[4], s.commands[1].Transform[4])
	}
}

func TestRenderLayerSortsAfterTreeOrder(t *testing.T) {
	s := NewScene()
	top := NewRect("top", 1, 1, Color{1, 0, 0, 1})
	top.RenderLayer = 1
	bottom := NewRect("bottom", 1, 1, Color{0, 0, 1, 1})
	s.Root().AddChild(top)
	s.Root().AddChild(bottom)
	traverseScene(s)
	if s.commands[0].Color.B != 1 || s.commands[1].Color.R != 1 {
		t.Errorf("layer order wrong: %+v", s.commands)
	}
}

func TestMergeSortStable(t *testing.T) {
	s := NewScene()
	for i := 0; i < 37; i++ {
		s.commands = append(s.commands, RenderCommand{RenderLayer: uint8(i % 3), treeOrder: i})
	}
	s.mergeSort()
	for i := 1; i < len(s.commands); i++ {
		a, b := s.commands[i-1], s.commands[i]
		if a.RenderLayer > b.RenderLayer || (a.RenderLayer == b.RenderLayer && a.treeOrder > b.treeOrder) {
			t.Fatalf("unsorted at %d: %+v then %+v", i, a, b)
		}
	}
}
