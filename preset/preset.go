// Package preset loads curve rendering settings from TOML files and
// watches them for changes.
//
// A preset looks like:
//
//	shape = "starfish"
//	scale = 30
//	interval = 18.85
//	steps = 512
//	width = 600
//	height = 600
//	mode = "lines"
//	line_width = 2
//	background = "#001040"
//	foreground = "#ffd000"
//	caption = true
//
// Every key is optional. A missing shape keeps the current one; missing
// sampling parameters fall back to the shape's defaults.
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/curves"
)

// ErrInvalidPreset wraps every validation failure of a decoded preset.
var ErrInvalidPreset = errors.New("preset: invalid preset")

// Preset is the decoded form of a preset file. Zero values mean "not set".
type Preset struct {
	Shape      string  `toml:"shape"`
	Scale      float64 `toml:"scale"`
	Interval   float64 `toml:"interval"`
	Steps      int     `toml:"steps"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Mode       string  `toml:"mode"`
	LineWidth  float64 `toml:"line_width"`
	Background string  `toml:"background"`
	Foreground string  `toml:"foreground"`
	Caption    bool    `toml:"caption"`
}

// Load reads and parses the preset file at path.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a TOML preset. Unknown keys are rejected.
func Parse(data []byte) (*Preset, error) {
	var p Preset
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Preset) validate() error {
	if p.Shape != "" {
		if _, err := curves.ParseShape(p.Shape); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPreset, err)
		}
	}
	if p.Mode != "" {
		if _, ok := curves.ParseMode(p.Mode); !ok {
			return fmt.Errorf("%w: unknown mode %q", ErrInvalidPreset, p.Mode)
		}
	}
	if p.Scale < 0 || p.Interval < 0 || p.Steps < 0 {
		return fmt.Errorf("%w: scale, interval and steps must not be negative", ErrInvalidPreset)
	}
	if p.Steps > curves.MaxSteps {
		return fmt.Errorf("%w: steps %d exceed %d", ErrInvalidPreset, p.Steps, curves.MaxSteps)
	}
	if p.Width < 0 || p.Height < 0 || p.LineWidth < 0 {
		return fmt.Errorf("%w: width, height and line_width must not be negative", ErrInvalidPreset)
	}
	for _, c := range []string{p.Background, p.Foreground} {
		if c == "" {
			continue
		}
		if _, err := curves.Hex(c); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPreset, err)
		}
	}
	return nil
}

// Apply copies the preset's settings onto area. A shape switch happens
// first, so explicit sampling parameters override the shape's defaults.
func (p *Preset) Apply(area *curves.Area) {
	if p.Shape != "" {
		// Validated on parse.
		s, _ := curves.ParseShape(p.Shape)
		area.SetShape(s)
	}
	if p.Scale > 0 {
		area.SetScale(p.Scale)
	}
	if p.Interval > 0 {
		area.SetInterval(p.Interval)
	}
	if p.Steps > 0 {
		area.SetStepCount(p.Steps)
	}
	if c, err := curves.Hex(p.Background); err == nil && p.Background != "" {
		area.SetBackgroundColor(c)
	}
	if c, err := curves.Hex(p.Foreground); err == nil && p.Foreground != "" {
		area.SetShapeColor(c)
	}
	area.SetOptions(p.RenderOptions()...)
}

// RenderOptions returns the renderer settings of the preset.
func (p *Preset) RenderOptions() []curves.RenderOption {
	var opts []curves.RenderOption
	if m, ok := curves.ParseMode(p.Mode); ok {
		opts = append(opts, curves.WithMode(m))
	}
	if p.LineWidth > 0 {
		opts = append(opts, curves.WithLineWidth(p.LineWidth))
	}
	if p.Caption {
		opts = append(opts, curves.WithCaption(true))
	}
	return opts
}

// Size returns the preset's canvas size, with zero dimensions replaced by
// the given fallbacks.
func (p *Preset) Size(fallbackW, fallbackH int) (int, int) {
	w, h := p.Width, p.Height
	if w == 0 {
		w = fallbackW
	}
	if h == 0 {
		h = fallbackH
	}
	return w, h
}
