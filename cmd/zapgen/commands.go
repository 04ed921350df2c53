package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gdamore/tcell/v2"
	"github.com/sourceful-energy/pixelgrid/catalog"
	"github.com/sourceful-energy/pixelgrid/codegen"
	"github.com/sourceful-energy/pixelgrid/config"
	"github.com/sourceful-energy/pixelgrid/pattern"
	"github.com/sourceful-energy/pixelgrid/term"
)

type command func(args []string, stdout, stderr io.Writer) error

var commands = map[string]command{
	"list":    listCmd,
	"show":    showCmd,
	"preview": previewCmd,
	"gen":     genCmd,
	"export":  exportCmd,
}

// newScreen opens the terminal for preview.
var newScreen = func() (tcell.Screen, error) { return tcell.NewScreen() }

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// newFlags returns a flag set that reports errors to stderr and never exits.
func newFlags(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("zapgen "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func parse(fs *flag.FlagSet, args []string, positional int) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != positional {
		fmt.Fprintf(fs.Output(), "%s: expected %d argument(s), got %d\n", fs.Name(), positional, fs.NArg())
		fs.Usage()
		return errUsage
	}
	return nil
}

func loadCatalog(name string) (*pattern.Catalog, error) {
	id, err := pattern.ParseCatalogID(name)
	if err != nil {
		return nil, err
	}
	return catalog.Default().Catalog(id)
}

// colorFlag is a flag.Value for pattern colours that remembers whether it
// was set.
type colorFlag struct {
	c   pattern.ColorName
	set bool
}

func (f *colorFlag) String() string { return f.c.String() }

func (f *colorFlag) Set(s string) error {
	c, err := pattern.ParseColor(s)
	if err != nil {
		return err
	}
	f.c, f.set = c, true
	return nil
}

func (f *colorFlag) options() []codegen.Option {
	if !f.set {
		return nil
	}
	return []codegen.Option{codegen.WithColor(f.c)}
}

// pick returns the flag colour if set, else the catalog's recommendation.
func (f *colorFlag) pick(cat *pattern.Catalog, id string) pattern.ColorName {
	if f.set {
		return f.c
	}
	c, _ := cat.Color(id)
	return c
}

type formatFlag struct{ f codegen.Format }

func (f *formatFlag) String() string { return string(f.f) }

func (f *formatFlag) Set(s string) error {
	v, err := codegen.ParseFormat(s)
	if err != nil {
		return err
	}
	f.f = v
	return nil
}

// --- list / show ---

func listCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlags("list", stderr)
	name := fs.String("catalog", "zap", "catalog: 3x3, 4x4, 5x5, zap or 6x6")
	if err := parse(fs, args, 0); err != nil {
		return err
	}
	cat, err := loadCatalog(*name)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "FRAMES", "CYCLE", "FRAME", "COLOR").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, c := range codegen.New(cat).Cards() {
		t.Row(c.ID, c.Name, strconv.Itoa(c.Frames), fmt.Sprintf("%dms", c.CycleMS), fmt.Sprintf("%dms", c.FrameMS), c.Color)
	}
	fmt.Fprintln(stdout, t.Render())
	fmt.Fprintf(stdout, "%d patterns in %s\n", cat.Len(), cat.ID())
	return nil
}

func showCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlags("show", stderr)
	name := fs.String("catalog", "zap", "catalog: 3x3, 4x4, 5x5, zap or 6x6")
	var color colorFlag
	fs.Var(&color, "color", "green, blue or pink (default: the pattern's recommendation)")
	if err := parse(fs, args, 1); err != nil {
		return err
	}
	cat, err := loadCatalog(*name)
	if err != nil {
		return err
	}
	id := fs.Arg(0)
	p, err := cat.Lookup(id)
	if err != nil {
		return err
	}
	cycle, frame := codegen.Timing(p)
	fmt.Fprintln(stdout, term.RenderPattern(id, p, cat.Dimension(), color.pick(cat, id), cycle, frame))
	return nil
}

// --- preview ---

func previewCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlags("preview", stderr)
	cfgPath := fs.String("config", "", "TOML file with defaults for the flags below; flags win over the file")
	name := fs.String("catalog", "", "catalog: 3x3, 4x4, 5x5, zap or 6x6 (default zap, unless the config file sets one)")
	var color colorFlag
	fs.Var(&color, "color", "green, blue or pink")
	speed := fs.String("speed", "", "slow, normal or fast")
	static := fs.Bool("static", false, "show the fullest frame without animating")
	if err := parse(fs, args, 1); err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Catalog = string(pattern.CatalogZap)
	if *cfgPath != "" {
		var err error
		if cfg, err = config.LoadOver(*cfgPath, cfg); err != nil {
			return err
		}
	}
	if *name != "" {
		cfg.Catalog = *name
	}
	if *speed != "" {
		cfg.Speed = *speed
	}
	if *static {
		cfg.Static = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	opts := cfg.GridOptions()
	if color.set {
		opts.Color = color.c
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = term.Preview(ctx, screen, cat, fs.Arg(0), term.PreviewOptions{
		Speed:      opts.Speed,
		Static:     opts.Static,
		Color:      opts.Color,
		FixedColor: color.set,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// --- gen / export ---

func genCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlags("gen", stderr)
	var format formatFlag
	fs.Var(&format, "format", "arduino, espidf, flutter or react")
	var color colorFlag
	fs.Var(&color, "color", "green, blue or pink (default: the pattern's recommendation)")
	out := fs.String("o", "", "write to this file instead of stdout")
	if err := parse(fs, args, 1); err != nil {
		return err
	}
	if format.f == "" {
		fmt.Fprintln(stderr, "gen: -format is required")
		return errUsage
	}

	src, err := codegen.New(catalog.Zap()).Generate(format.f, fs.Arg(0), color.options()...)
	if err != nil {
		return fmt.Errorf("could not generate code for this pattern/format: %w", err)
	}
	if *out == "" {
		_, err := io.WriteString(stdout, src)
		return err
	}
	return os.WriteFile(*out, []byte(src), 0o644)
}

func exportCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlags("export", stderr)
	var format formatFlag
	fs.Var(&format, "format", "arduino, espidf, flutter or react")
	dir := fs.String("dir", ".", "output directory")
	if err := parse(fs, args, 0); err != nil {
		return err
	}
	if format.f == "" {
		fmt.Fprintln(stderr, "export: -format is required")
		return errUsage
	}

	ex, err := codegen.New(catalog.Zap()).ExportAll(format.f)
	if err != nil {
		return fmt.Errorf("could not generate code for this pattern/format: %w", err)
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(*dir, ex.Filename)
	if err := os.WriteFile(path, []byte(ex.Content), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s (%s, %d bytes)\n", path, ex.MIMEType, len(ex.Content))
	return nil
}
