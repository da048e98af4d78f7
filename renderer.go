package curves

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/gogpu/curves/text"
	"golang.org/x/image/vector"
)

const (
	// dotSides is the polygon resolution used for round dots.
	dotSides = 12
	// joinThreshold is the stroke width above which vertices get round joins.
	joinThreshold = 1.5

	captionSize   = 14
	captionMargin = 6
)

// Renderer draws sampled curves into a Pixmap.
//
// A Renderer is immutable after construction and safe for concurrent use
// on distinct pixmaps.
type Renderer struct {
	opts renderOptions
}

// NewRenderer creates a renderer. Defaults: lines, 1px wide, white on blue,
// no caption.
func NewRenderer(opts ...RenderOption) *Renderer {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Mode returns the configured drawing mode.
func (r *Renderer) Mode() Mode {
	return r.opts.mode
}

// Render clears pm to the background color and draws shape s sampled with
// p, mapped by pixel = point*p.Scale + center.
func (r *Renderer) Render(pm *Pixmap, s Shape, p Params, center Point) error {
	if err := p.Validate(); err != nil {
		return err
	}
	points, err := Sample(s, p.Interval, p.Steps)
	if err != nil {
		return err
	}
	pixels := MapPoints(points, PixelMatrix(p.Scale, center))

	pm.Clear(r.opts.background)
	r.DrawPolyline(pm, pixels)

	Logger().Debug("curves: render",
		"shape", s.String(),
		"scale", p.Scale,
		"interval", p.Interval,
		"steps", p.Steps,
		"points", len(pixels),
		"mode", r.opts.mode.String())

	if r.opts.caption {
		if err := r.drawCaption(pm, s.Title()); err != nil {
			// The curve is already drawn; a missing caption is not fatal.
			Logger().Warn("curves: caption failed", "shape", s.String(), "err", err)
		}
	}
	return nil
}

// DrawPolyline draws already mapped pixel coordinates onto pm in the
// configured mode and foreground color, without clearing.
func (r *Renderer) DrawPolyline(pm *Pixmap, pixels []Point) {
	w, h := pm.Width(), pm.Height()
	if w <= 0 || h <= 0 || len(pixels) == 0 {
		return
	}

	z := vector.NewRasterizer(w, h)
	half := r.opts.lineWidth / 2
	// Anything within this margin of the canvas can still touch a pixel.
	bounds := rect{min: Pt(-half-1, -half-1), max: Pt(float64(w)+half+1, float64(h)+half+1)}

	filled := false
	switch r.opts.mode {
	case ModePoints:
		radius := math.Max(half, 0.75)
		for _, p := range pixels {
			if p.IsFinite() && bounds.expand(radius).contains(p) {
				addDot(z, p, radius)
				filled = true
			}
		}
	default:
		join := r.opts.lineWidth > joinThreshold
		for i := 1; i < len(pixels); i++ {
			a, b, ok := bounds.clipSegment(pixels[i-1], pixels[i])
			if !ok {
				continue
			}
			addSegment(z, a, b, half)
			if join {
				addDot(z, a, half)
			}
			filled = true
		}
		if join && filled {
			if last := pixels[len(pixels)-1]; last.IsFinite() && bounds.contains(last) {
				addDot(z, last, half)
			}
		}
	}

	if filled {
		z.Draw(pm.Image(), pm.Bounds(), image.NewUniform(r.opts.foreground.Color()), image.Point{})
	}
}

func (r *Renderer) drawCaption(pm *Pixmap, title string) error {
	face := r.opts.face
	if face == nil {
		var err error
		face, err = defaultCaptionFace()
		if err != nil {
			return err
		}
	}
	return face.Draw(pm.Image(), title, captionMargin, captionMargin+face.Ascent(), r.opts.foreground.Color())
}

// defaultCaptionFace parses the built-in font on first use.
var defaultCaptionFace = sync.OnceValues(func() (*text.Face, error) {
	face, err := text.DefaultFace(captionSize)
	if err != nil {
		return nil, fmt.Errorf("curves: load caption font: %w", err)
	}
	return face, nil
})

// addSegment appends the quad covering segment a-b with the given half width.
// All quads share one orientation, so overlaps never cancel coverage.
func addSegment(z *vector.Rasterizer, a, b Point, half float64) {
	n := b.Sub(a).Perp(half)
	if n == (Point{}) {
		return
	}
	p0, p1 := a.Add(n), b.Add(n)
	p2, p3 := b.Sub(n), a.Sub(n)
	z.MoveTo(float32(p0.X), float32(p0.Y))
	z.LineTo(float32(p1.X), float32(p1.Y))
	z.LineTo(float32(p2.X), float32(p2.Y))
	z.LineTo(float32(p3.X), float32(p3.Y))
	z.ClosePath()
}

// addDot appends a regular polygon approximating a disc, wound the same way
// as addSegment quads.
func addDot(z *vector.Rasterizer, c Point, radius float64) {
	for i := 0; i <= dotSides; i++ {
		a := -2 * math.Pi * float64(i) / dotSides
		x := float32(c.X + radius*math.Cos(a))
		y := float32(c.Y + radius*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}
