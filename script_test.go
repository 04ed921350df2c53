package pixelgrid

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sourceful-energy/pixelgrid/pattern"
)

// --- LoadScript ---

func TestLoadScript(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "pattern", "pattern": "dot"},
		{"action": "color", "color": "pink"},
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "after-pink"}
	]}`)
	script, err := LoadScript(data)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(script.steps) != 4 {
		t.Errorf("steps = %d, want 4", len(script.steps))
	}
	if script.Done() {
		t.Error("fresh script should not be done")
	}
}

func TestLoadScriptRejects(t *testing.T) {
	tests := []struct {
		name, json, wantErr string
	}{
		{"invalid json", `{not json`, "parse script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "explode"}]}`, "unknown action"},
		{"missing pattern", `{"steps": [{"action": "pattern"}]}`, "missing pattern"},
		{"bad dimension", `{"steps": [{"action": "dimension", "dimension": 7}]}`, "dimension"},
		{"bad color", `{"steps": [{"action": "color", "color": "mauve"}]}`, "step 0"},
		{"bad size", `{"steps": [{"action": "size", "size": "xl"}]}`, "step 0"},
		{"bad speed", `{"steps": [{"action": "speed", "speed": "warp"}]}`, "step 0"},
		{"snapshot without path", `{"steps": [{"action": "snapshot", "width": 4, "height": 4}]}`, "snapshot needs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

// --- Stepping ---

func scriptScene(t *testing.T, script string) (*Scene, *Grid) {
	t.Helper()
	s := NewScene()
	g := NewGrid(testLibrary(t), "blink", GridOptions{ReducedMotion: true})
	s.Root().AddChild(g.Node())
	sc, err := LoadScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(sc)
	return s, g
}

func TestScriptAppliesGridActions(t *testing.T) {
	s, g := scriptScene(t, `{"steps": [
		{"action": "pattern", "pattern": "dot"},
		{"action": "color", "color": "blue"},
		{"action": "size", "size": "lg"},
		{"action": "speed", "speed": "fast"},
		{"action": "static", "static": true},
		{"action": "dimension", "dimension": 5}
	]}`)
	for i := 0; i < 6; i++ {
		_ = s.UpdateDelta(0)
	}
	o := g.Options()
	if g.ID() != "dot" {
		t.Errorf("ID = %q, want dot", g.ID())
	}
	if o.Color != pattern.Blue || o.Size != pattern.SizeLarge || o.Speed != pattern.SpeedFast || !o.Static {
		t.Errorf("options = %+v", o)
	}
	if o.Dimension != pattern.Dim5 || !g.Found() {
		t.Errorf("Dimension = %v found = %v", o.Dimension, g.Found())
	}
	if !s.script.Done() {
		t.Error("script should be done")
	}
}

func TestScriptWaitHoldsFrames(t *testing.T) {
	s, g := scriptScene(t, `{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "pause"}
	]}`)
	for i := 0; i < 3; i++ {
		_ = s.UpdateDelta(0)
		if g.Paused() {
			t.Fatalf("paused after %d frames", i+1)
		}
	}
	_ = s.UpdateDelta(0)
	if !g.Paused() {
		t.Error("pause should run on the fourth frame")
	}
	if !s.script.Done() {
		t.Error("script should be done")
	}
}

func TestScriptResume(t *testing.T) {
	s, g := scriptScene(t, `{"steps": [{"action": "pause"}, {"action": "resume"}]}`)
	_ = s.UpdateDelta(0)
	if !g.Paused() {
		t.Fatal("not paused")
	}
	_ = s.UpdateDelta(0)
	if g.Paused() {
		t.Error("not resumed")
	}
}

func TestScriptTargetsNamedGrid(t *testing.T) {
	s := NewScene()
	lib := testLibrary(t)
	a := NewGrid(lib, "blink", GridOptions{})
	b := NewGrid(lib, "blink", GridOptions{})
	b.Node().Name = "second"
	s.Root().AddChild(a.Node())
	s.Root().AddChild(b.Node())
	sc, err := LoadScript([]byte(`{"steps": [{"action": "pause", "grid": "second"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(sc)
	_ = s.UpdateDelta(0)
	if a.Paused() || !b.Paused() {
		t.Errorf("paused a=%v b=%v, want only b", a.Paused(), b.Paused())
	}
}

func TestScriptScreenshotQueues(t *testing.T) {
	s, _ := scriptScene(t, `{"steps": [{"action": "screenshot", "label": "first"}]}`)
	_ = s.UpdateDelta(0)
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "first" {
		t.Errorf("queue = %v, want [first]", s.screenshotQueue)
	}
}

func TestScriptSnapshotWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	s, _ := scriptScene(t, `{"steps": [{"action": "snapshot", "path": "`+filepath.ToSlash(path)+`", "width": 36, "height": 36}]}`)
	_ = s.UpdateDelta(0)
	if _, err := os.Stat(path); err != nil {
		t.Errorf("snapshot not written: %v", err)
	}
}

func TestScriptDoneIsSticky(t *testing.T) {
	s, _ := scriptScene(t, `{"steps": [{"action": "wait", "frames": 1}]}`)
	for i := 0; i < 5; i++ {
		_ = s.UpdateDelta(0)
	}
	if !s.script.Done() {
		t.Error("script should be done")
	}
}
