package curves

import (
	"fmt"
	"image"
)

// Size hints of the render area, in pixels.
var (
	minimumSizeHint = image.Pt(100, 100)
	sizeHint        = image.Pt(400, 200)
)

// Area is the state behind a curve view: the selected shape, its sampling
// parameters and colors. Paint draws that state into a pixmap.
//
// Area is not safe for concurrent use.
type Area struct {
	shape      Shape
	params     Params
	background RGBA
	foreground RGBA
	opts       []RenderOption
}

// NewArea returns an area showing an Astroid with its default parameters,
// white on blue. opts are applied to every Paint after the area's colors.
func NewArea(opts ...RenderOption) *Area {
	return &Area{
		shape:      Astroid,
		params:     DefaultParams(Astroid),
		background: Blue,
		foreground: White,
		opts:       opts,
	}
}

// MinimumSizeHint returns the smallest useful size of the area.
func (a *Area) MinimumSizeHint() image.Point { return minimumSizeHint }

// SizeHint returns the preferred size of the area.
func (a *Area) SizeHint() image.Point { return sizeHint }

// Shape returns the current shape.
func (a *Area) Shape() Shape { return a.shape }

// SetShape selects a shape and loads its default scale, interval and step
// count.
func (a *Area) SetShape(s Shape) {
	a.shape = s
	a.params = DefaultParams(s)
}

// Params returns the current sampling parameters.
func (a *Area) Params() Params { return a.params }

// Scale returns the current scale.
func (a *Area) Scale() float64 { return a.params.Scale }

// SetScale sets the scale. Invalid values are reported by Paint.
func (a *Area) SetScale(s float64) { a.params.Scale = s }

// Interval returns the current parameter interval length.
func (a *Area) Interval() float64 { return a.params.Interval }

// SetInterval sets the parameter interval length.
func (a *Area) SetInterval(l float64) { a.params.Interval = l }

// StepCount returns the current step count.
func (a *Area) StepCount() int { return a.params.Steps }

// SetStepCount sets the step count.
func (a *Area) SetStepCount(n int) { a.params.Steps = n }

// BackgroundColor returns the fill color.
func (a *Area) BackgroundColor() RGBA { return a.background }

// SetBackgroundColor sets the fill color.
func (a *Area) SetBackgroundColor(c RGBA) { a.background = c }

// ShapeColor returns the curve color.
func (a *Area) ShapeColor() RGBA { return a.foreground }

// SetShapeColor sets the curve color.
func (a *Area) SetShapeColor(c RGBA) { a.foreground = c }

// SetOptions replaces the extra render options applied on Paint.
func (a *Area) SetOptions(opts ...RenderOption) { a.opts = opts }

// Renderer builds the renderer Paint uses for the current state.
func (a *Area) Renderer() *Renderer {
	opts := make([]RenderOption, 0, len(a.opts)+1)
	opts = append(opts, WithColors(a.background, a.foreground))
	opts = append(opts, a.opts...)
	return NewRenderer(opts...)
}

// Paint renders the current state centered in pm.
func (a *Area) Paint(pm *Pixmap) error {
	if pm.Width() <= 0 || pm.Height() <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, pm.Width(), pm.Height())
	}
	if err := a.Renderer().Render(pm, a.shape, a.params, pm.Center()); err != nil {
		return fmt.Errorf("curves: paint %s: %w", a.shape, err)
	}
	return nil
}

// CurvePoint maps a pixel of pm back to curve coordinates, undoing the
// mapping Paint draws with. A zero scale yields the pixel unchanged.
func (a *Area) CurvePoint(pm *Pixmap, pixel Point) Point {
	return PixelMatrix(a.params.Scale, pm.Center()).Invert().TransformPoint(pixel)
}

// Snapshot paints into a new width x height pixmap. A zero dimension takes
// the size hint.
func (a *Area) Snapshot(width, height int) (*Pixmap, error) {
	if width == 0 {
		width = sizeHint.X
	}
	if height == 0 {
		height = sizeHint.Y
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	pm := NewPixmap(width, height)
	if err := a.Paint(pm); err != nil {
		return nil, err
	}
	return pm, nil
}
