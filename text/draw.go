package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Draw renders s onto dst with its baseline origin at (x, y) in dst's
// coordinate space. Glyphs falling outside dst are clipped.
func (f *Face) Draw(dst draw.Image, s string, x, y float64, c color.Color) error {
	glyphs := f.layout(s)
	if len(glyphs) == 0 {
		return nil
	}

	b := dst.Bounds()
	if b.Empty() {
		return nil
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	ox := x - float64(b.Min.X)
	oy := y - float64(b.Min.Y)

	if err := f.appendOutlines(z, glyphs, ox, oy); err != nil {
		return err
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
	return nil
}

// appendOutlines adds the filled outline of every glyph to z.
func (f *Face) appendOutlines(z *vector.Rasterizer, glyphs []glyph, ox, oy float64) error {
	ppem := floatToFixed(f.size)

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, g := range glyphs {
		segs, err := f.outlineFont.LoadGlyph(&f.buf, g.id, ppem, nil)
		if err != nil {
			return fmt.Errorf("text: load glyph %d: %w", g.id, err)
		}
		gx, gy := float32(ox+g.x), float32(oy+g.y)
		pt := func(p fixed.Point26_6) (float32, float32) {
			return gx + float32(p.X)/64, gy + float32(p.Y)/64
		}

		open := false
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					z.ClosePath()
				}
				z.MoveTo(pt(seg.Args[0]))
				open = true
			case sfnt.SegmentOpLineTo:
				z.LineTo(pt(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				bx, by := pt(seg.Args[0])
				cx, cy := pt(seg.Args[1])
				z.QuadTo(bx, by, cx, cy)
			case sfnt.SegmentOpCubeTo:
				bx, by := pt(seg.Args[0])
				cx, cy := pt(seg.Args[1])
				dx, dy := pt(seg.Args[2])
				z.CubeTo(bx, by, cx, cy, dx, dy)
			}
		}
		if open {
			z.ClosePath()
		}
	}
	return nil
}
