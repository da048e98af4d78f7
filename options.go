package curves

import "github.com/gogpu/curves/text"

// Mode selects how sampled points are drawn.
type Mode int

const (
	// ModeLines connects consecutive points with straight segments.
	ModeLines Mode = iota
	// ModePoints draws every sampled point as an isolated dot.
	ModePoints
)

// String returns "lines" or "points".
func (m Mode) String() string {
	switch m {
	case ModeLines:
		return "lines"
	case ModePoints:
		return "points"
	default:
		return "unknown"
	}
}

// ParseMode parses "lines" or "points".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "lines", "line", "":
		return ModeLines, true
	case "points", "point", "dots":
		return ModePoints, true
	}
	return ModeLines, false
}

// RenderOption configures a Renderer.
//
// Example:
//
//	r := curves.NewRenderer(
//	    curves.WithMode(curves.ModePoints),
//	    curves.WithColors(curves.Black, curves.Yellow),
//	)
type RenderOption func(*renderOptions)

type renderOptions struct {
	mode       Mode
	lineWidth  float64
	background RGBA
	foreground RGBA
	caption    bool
	face       *text.Face
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		mode:       ModeLines,
		lineWidth:  1,
		background: Blue,
		foreground: White,
	}
}

// WithMode selects lines or points.
func WithMode(m Mode) RenderOption {
	return func(o *renderOptions) {
		o.mode = m
	}
}

// WithLineWidth sets the stroke width (or dot diameter) in pixels.
// Non-positive widths are ignored.
func WithLineWidth(w float64) RenderOption {
	return func(o *renderOptions) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithColors sets the background fill and the curve color.
func WithColors(background, foreground RGBA) RenderOption {
	return func(o *renderOptions) {
		o.background = background
		o.foreground = foreground
	}
}

// WithCaption enables drawing the shape title in the top-left corner.
func WithCaption(on bool) RenderOption {
	return func(o *renderOptions) {
		o.caption = on
	}
}

// WithCaptionFace sets the face used for captions and enables them.
func WithCaptionFace(f *text.Face) RenderOption {
	return func(o *renderOptions) {
		o.face = f
		o.caption = f != nil
	}
}
