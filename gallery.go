package curves

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Gallery paints every shape with its default parameters into a grid of
// cellW x cellH cells, cols cells per row, in Shapes() order. opts are
// passed to each cell's renderer.
func Gallery(cols, cellW, cellH int, opts ...RenderOption) (*Pixmap, error) {
	if cols <= 0 || cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("%w: %d columns of %dx%d", ErrInvalidSize, cols, cellW, cellH)
	}
	shapes := Shapes()
	rows := (len(shapes) + cols - 1) / cols
	out := NewPixmap(cols*cellW, rows*cellH)

	r := NewRenderer(opts...)
	out.Clear(r.opts.background)

	cell := NewPixmap(cellW, cellH)
	for i, s := range shapes {
		if err := r.Render(cell, s, DefaultParams(s), cell.Center()); err != nil {
			return nil, fmt.Errorf("curves: gallery %s: %w", s, err)
		}
		at := image.Pt((i%cols)*cellW, (i/cols)*cellH)
		draw.Draw(out.Image(), cell.Bounds().Add(at), cell.Image(), image.Point{}, draw.Src)
	}
	Logger().Debug("curves: gallery", "shapes", len(shapes), "cols", cols, "rows", rows)
	return out, nil
}
