package pixelgrid

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sourceful-energy/pixelgrid/pattern"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action    string `json:"action"`
	Grid      string `json:"grid,omitempty"` // node name; empty means the first grid
	Pattern   string `json:"pattern,omitempty"`
	Dimension int    `json:"dimension,omitempty"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Speed     string `json:"speed,omitempty"`
	Static    bool   `json:"static,omitempty"`
	Label     string `json:"label,omitempty"`
	Path      string `json:"path,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Frames    int    `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences grid changes, waits and screenshots across frames, for
// demos and automated visual checks. Attach to a Scene via SetScript.
//
// Actions: pattern, dimension, color, size, speed, static, pause, resume,
// wait, screenshot, snapshot.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and validates every step up front so a
// typo fails at load time rather than halfway through a run.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if err := validateStep(st); err != nil {
			return nil, fmt.Errorf("parse script: step %d (%s): %w", i, st.Action, err)
		}
	}
	return &Script{steps: f.Steps}, nil
}

func validateStep(st scriptStep) error {
	switch st.Action {
	case "pattern":
		if st.Pattern == "" {
			return fmt.Errorf("missing pattern")
		}
	case "dimension":
		if !pattern.Dimension(st.Dimension).Valid() {
			return fmt.Errorf("%w: %d", pattern.ErrInvalidDimension, st.Dimension)
		}
	case "color":
		_, err := pattern.ParseColor(st.Color)
		return err
	case "size":
		_, err := pattern.ParseSize(st.Size)
		return err
	case "speed":
		_, err := pattern.ParseSpeed(st.Speed)
		return err
	case "snapshot":
		if st.Path == "" || st.Width <= 0 || st.Height <= 0 {
			return fmt.Errorf("snapshot needs path, width and height")
		}
	case "static", "pause", "resume", "wait", "screenshot":
	default:
		return fmt.Errorf("unknown action")
	}
	return nil
}

// SetScript attaches a Script to the scene. Its step method is called from
// Scene.Update before node updates each frame.
func (s *Scene) SetScript(script *Script) {
	s.script = script
}

// Done reports whether all steps have been executed.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame. Called from Scene.Update.
func (r *Script) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "snapshot":
		if err := s.SaveSnapshot(st.Path, st.Width, st.Height, ColorBlack); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[pixelgrid] script: %v\n", err)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		g := findGrid(s.root, st.Grid)
		if g == nil {
			_, _ = fmt.Fprintf(os.Stderr, "[pixelgrid] script: no grid %q for %s\n", st.Grid, st.Action)
			break
		}
		applyStep(g, st)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func applyStep(g *Grid, st scriptStep) {
	switch st.Action {
	case "pattern":
		_ = g.SetPattern(st.Pattern)
	case "dimension":
		_ = g.SetDimension(pattern.Dimension(st.Dimension))
	case "color":
		c, _ := pattern.ParseColor(st.Color)
		g.SetColor(c)
	case "size":
		sz, _ := pattern.ParseSize(st.Size)
		g.SetSize(sz)
	case "speed":
		sp, _ := pattern.ParseSpeed(st.Speed)
		g.SetSpeed(sp)
	case "static":
		g.SetStatic(st.Static)
	case "pause":
		g.Pause()
	case "resume":
		g.Resume()
	}
}

// findGrid returns the first grid below n whose node is named name, or the
// first grid at all when name is empty.
func findGrid(n *Node, name string) *Grid {
	if g, ok := n.UserData.(*Grid); ok && (name == "" || n.Name == name) {
		return g
	}
	for _, c := range n.children {
		if g := findGrid(c, name); g != nil {
			return g
		}
	}
	return nil
}
