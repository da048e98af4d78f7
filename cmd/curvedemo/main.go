// Command curvedemo renders parametric curves to PNG.
//
//	curvedemo -shape starfish -output starfish.png
//	curvedemo -all -cols 3 -output gallery.png
//	curvedemo -preset curve.toml -watch
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/curves"
	"github.com/gogpu/curves/preset"
)

type config struct {
	shape     string
	scale     float64
	interval  float64
	steps     int
	mode      string
	width     int
	height    int
	lineWidth float64
	caption   bool
	all       bool
	cols      int
	preset    string
	watch     bool
	output    string
	verbose   bool

	// set records flags given explicitly on the command line.
	set map[string]bool
}

func main() {
	cfg := parseFlags()

	if cfg.verbose {
		curves.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("curvedemo: %v", err)
	}
}

func parseFlags() *config {
	cfg := &config{}
	flag.StringVar(&cfg.shape, "shape", "astroid", "shape to draw")
	flag.Float64Var(&cfg.scale, "scale", 0, "pixels per curve unit (0: shape default)")
	flag.Float64Var(&cfg.interval, "interval", 0, "parameter interval length in radians (0: shape default)")
	flag.IntVar(&cfg.steps, "steps", 0, "number of sample steps (0: shape default)")
	flag.StringVar(&cfg.mode, "mode", "lines", "lines or points")
	flag.IntVar(&cfg.width, "width", 400, "image width")
	flag.IntVar(&cfg.height, "height", 400, "image height")
	flag.Float64Var(&cfg.lineWidth, "line-width", 1, "stroke width in pixels")
	flag.BoolVar(&cfg.caption, "caption", false, "draw the shape name")
	flag.BoolVar(&cfg.all, "all", false, "render every shape into a gallery")
	flag.IntVar(&cfg.cols, "cols", 3, "gallery columns")
	flag.StringVar(&cfg.preset, "preset", "", "TOML preset file")
	flag.BoolVar(&cfg.watch, "watch", false, "re-render whenever the preset file changes")
	flag.StringVar(&cfg.output, "output", "curve.png", "output file")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	cfg.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { cfg.set[f.Name] = true })
	return cfg
}

func run(cfg *config) error {
	if cfg.all {
		mode, ok := curves.ParseMode(cfg.mode)
		if !ok {
			return fmt.Errorf("unknown mode %q", cfg.mode)
		}
		opts := []curves.RenderOption{
			curves.WithMode(mode),
			curves.WithLineWidth(cfg.lineWidth),
			curves.WithCaption(cfg.caption),
		}
		pm, err := curves.Gallery(cfg.cols, cfg.width, cfg.height, opts...)
		if err != nil {
			return err
		}
		return save(pm, cfg.output)
	}

	if cfg.watch && cfg.preset == "" {
		return errors.New("-watch needs -preset")
	}

	var p *preset.Preset
	if cfg.preset != "" {
		var err error
		if p, err = preset.Load(cfg.preset); err != nil {
			return err
		}
	}
	if err := renderOnce(cfg, p); err != nil {
		return err
	}
	if !cfg.watch {
		return nil
	}

	w, err := preset.NewWatcher(cfg.preset)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	log.Printf("watching %s, Ctrl-C to stop", w.Path())
	return w.Run(ctx, func(p *preset.Preset) error {
		if err := renderOnce(cfg, p); err != nil {
			// Keep watching; the next save may fix it.
			log.Printf("render: %v", err)
		}
		return nil
	})
}

// renderOnce builds the area and writes the PNG.
func renderOnce(cfg *config, p *preset.Preset) error {
	area, width, height, err := buildArea(cfg, p)
	if err != nil {
		return err
	}
	pm, err := area.Snapshot(width, height)
	if err != nil {
		return err
	}
	curves.Logger().Debug("curvedemo: view",
		"shape", area.Shape(),
		"min", area.CurvePoint(pm, curves.Pt(0, 0)),
		"max", area.CurvePoint(pm, curves.Pt(float64(pm.Width()), float64(pm.Height()))))
	return save(pm, cfg.output)
}

// buildArea configures an area from the preset (if any) and lets explicitly
// set flags override it. It also returns the image size.
func buildArea(cfg *config, p *preset.Preset) (*curves.Area, int, int, error) {
	shape, err := curves.ParseShape(cfg.shape)
	if err != nil {
		return nil, 0, 0, err
	}
	mode, ok := curves.ParseMode(cfg.mode)
	if !ok {
		return nil, 0, 0, fmt.Errorf("unknown mode %q", cfg.mode)
	}

	area := curves.NewArea()
	width, height := cfg.width, cfg.height
	var opts []curves.RenderOption
	if p != nil {
		// Selecting a shape loads its defaults, so an explicit -shape has to
		// replace the preset's shape before the preset's parameters go in.
		pc := *p
		if cfg.set["shape"] {
			pc.Shape = shape.String()
		}
		pc.Apply(area)
		opts = pc.RenderOptions()
		width, height = pc.Size(width, height)
	} else {
		area.SetShape(shape)
	}
	override := func(name string) bool { return p == nil || cfg.set[name] }

	if cfg.set["scale"] {
		area.SetScale(cfg.scale)
	}
	if cfg.set["interval"] {
		area.SetInterval(cfg.interval)
	}
	if cfg.set["steps"] {
		area.SetStepCount(cfg.steps)
	}
	if override("mode") {
		opts = append(opts, curves.WithMode(mode))
	}
	if override("line-width") {
		opts = append(opts, curves.WithLineWidth(cfg.lineWidth))
	}
	if override("caption") {
		opts = append(opts, curves.WithCaption(cfg.caption))
	}
	if override("width") {
		width = cfg.width
	}
	if override("height") {
		height = cfg.height
	}
	area.SetOptions(opts...)
	return area, width, height, nil
}

func save(pm *curves.Pixmap, path string) error {
	if err := pm.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	log.Printf("saved %s (%dx%d)", path, pm.Width(), pm.Height())
	return nil
}
