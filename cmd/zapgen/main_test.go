package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sourceful-energy/pixelgrid/catalog"
	"github.com/sourceful-energy/pixelgrid/codegen"
)

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// --- Logging ---

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	if f := setupLogging(false); f != nil {
		t.Error("expected nil log file when debug=false")
		f.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())
	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected a log file when debug=true")
	}
	defer func() {
		f.Close()
		setupLogging(false)
	}()

	log.Println("test message")
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "test message") {
		t.Errorf("log file = %q", data)
	}
}

// --- Dispatch ---

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"frobnicate"}},
		{"bad global flag", []string{"-nope", "list"}},
		{"gen without format", []string{"gen", "zap-ready"}},
		{"gen without id", []string{"gen", "-format", "arduino"}},
		{"export with extra arg", []string{"export", "-format", "react", "x"}},
	}
	for _, tt := range tests {
		code, _, stderr := runArgs(t, tt.args...)
		if code != 2 {
			t.Errorf("%s: code = %d, want 2", tt.name, code)
		}
		if stderr == "" {
			t.Errorf("%s: no usage on stderr", tt.name)
		}
	}
}

// --- list / show ---

func TestList(t *testing.T) {
	code, out, _ := runArgs(t, "list")
	if code != 0 {
		t.Fatalf("code = %d", code)
	}
	for _, want := range []string{"zap-ready", "Ready/Hello", "2000ms", "200ms", "green"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
	if !strings.Contains(out, "patterns in 5x5-zap") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestListOtherCatalog(t *testing.T) {
	code, out, _ := runArgs(t, "list", "-catalog", "3x3")
	if code != 0 || !strings.Contains(out, "corners-sync") {
		t.Errorf("code = %d, output:\n%s", code, out)
	}
}

func TestListUnknownCatalog(t *testing.T) {
	code, _, stderr := runArgs(t, "list", "-catalog", "9x9")
	if code != 1 || !strings.Contains(stderr, "unknown catalog") {
		t.Errorf("code = %d, stderr = %q", code, stderr)
	}
}

func TestShow(t *testing.T) {
	code, out, _ := runArgs(t, "show", "-color", "pink", "zap-ready")
	if code != 0 {
		t.Fatalf("code = %d", code)
	}
	if !strings.Contains(out, "Ready/Hello (zap-ready)") || !strings.Contains(out, "pink") {
		t.Errorf("show output:\n%s", out)
	}
}

func TestShowMissingPattern(t *testing.T) {
	code, _, stderr := runArgs(t, "show", "zap-nope")
	if code != 1 || !strings.Contains(stderr, "pattern not found") {
		t.Errorf("code = %d, stderr = %q", code, stderr)
	}
}

// --- gen / export ---

func TestGenMatchesLibrary(t *testing.T) {
	code, out, _ := runArgs(t, "gen", "-format", "espidf", "-color", "blue", "zap-pairing")
	if code != 0 {
		t.Fatalf("code = %d", code)
	}
	want, err := codegen.New(catalog.Zap()).Generate(codegen.ESPIDF, "zap-pairing")
	if err != nil {
		t.Fatal(err)
	}
	// zap-pairing recommends blue, so the override changes nothing
	if out != want {
		t.Error("CLI output differs from Generate")
	}
}

func TestGenToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ready.ino")
	code, out, _ := runArgs(t, "gen", "-format", "arduino", "-o", path, "zap-ready")
	if code != 0 || out != "" {
		t.Fatalf("code = %d, stdout = %q", code, out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "void zap_ready() {") {
		t.Error("file does not hold the sketch")
	}
}

func TestGenErrors(t *testing.T) {
	code, out, stderr := runArgs(t, "gen", "-format", "flutter", "zap-nope")
	if code != 1 || out != "" {
		t.Errorf("unknown id: code = %d, stdout = %q", code, out)
	}
	if !strings.Contains(stderr, "could not generate code for this pattern/format") {
		t.Errorf("stderr = %q", stderr)
	}
	if code, _, _ := runArgs(t, "gen", "-format", "cobol", "zap-ready"); code != 2 {
		t.Errorf("bad format: code = %d, want 2", code)
	}
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	code, out, _ := runArgs(t, "export", "-format", "react", "-dir", dir)
	if code != 0 {
		t.Fatalf("code = %d", code)
	}
	path := filepath.Join(dir, "zap_animations.tsx")
	if !strings.Contains(out, path) || !strings.Contains(out, "text/typescript") {
		t.Errorf("stdout = %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), codegen.Separator); n != catalog.Zap().Len()-1 {
		t.Errorf("separators = %d, want %d", n, catalog.Zap().Len()-1)
	}
}

// --- preview ---

// quitWhenShown presses q once text appears on sim. GetContent copies each
// cell under the screen lock while the preview keeps drawing.
func quitWhenShown(sim tcell.SimulationScreen, text string) {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w, h := sim.Size()
		var sb strings.Builder
		for y := range h {
			for x := range w {
				r, _, _, _ := sim.GetContent(x, y)
				sb.WriteRune(r)
			}
		}
		if strings.Contains(sb.String(), text) {
			sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func runPreview(t *testing.T, show string, args ...string) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	old := newScreen
	newScreen = func() (tcell.Screen, error) { return sim, nil }
	defer func() { newScreen = old }()

	go quitWhenShown(sim, show)

	type result struct {
		code   int
		stderr string
	}
	done := make(chan result, 1)
	go func() {
		var out, errOut bytes.Buffer
		code := run(append([]string{"preview"}, args...), &out, &errOut)
		done <- result{code, errOut.String()}
	}()
	select {
	case r := <-done:
		if r.code != 0 {
			t.Errorf("preview %v: code = %d, stderr = %q", args, r.code, r.stderr)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("preview %v did not quit", args)
	}
}

func TestPreviewQuits(t *testing.T) {
	runPreview(t, "Ready/Hello", "-static", "zap-ready")
}

func TestPreviewConfigWithoutCatalogKeepsZap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fast.toml")
	if err := os.WriteFile(path, []byte(`speed = "fast"`), 0o644); err != nil {
		t.Fatal(err)
	}
	runPreview(t, "Ready/Hello", "-config", path, "zap-ready")
}

func TestPreviewFlagBeatsConfigCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid3.toml")
	if err := os.WriteFile(path, []byte(`catalog = "3x3"`), 0o644); err != nil {
		t.Fatal(err)
	}
	runPreview(t, "Inner Square", "-config", path, "-catalog", "4x4", "square-inner")
}

func TestPreviewConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte(`colour = "blue"`), 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, stderr := runArgs(t, "preview", "-config", path, "zap-ready")
	if code != 1 || !strings.Contains(stderr, "unknown config key") {
		t.Errorf("code = %d, stderr = %q", code, stderr)
	}
	code, _, _ = runArgs(t, "preview", "-speed", "warp", "zap-ready")
	if code != 1 {
		t.Errorf("bad speed: code = %d, want 1", code)
	}
}
