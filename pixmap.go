package curves

import (
	"bufio"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Pixmap is a rectangular RGBA pixel buffer. It implements draw.Image so
// rasterisers can composite into it directly.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Center returns the geometric center of the pixmap.
func (p *Pixmap) Center() Point {
	return Pt(float64(p.Width())/2, float64(p.Height())/2)
}

// Data returns the raw premultiplied RGBA bytes, 4 per pixel.
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// Image returns the backing image. Writes to it are visible in the pixmap.
func (p *Pixmap) Image() *image.RGBA {
	return p.img
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	p.img.Set(x, y, c.Color())
}

// GetPixel returns the color of a single pixel, or Transparent when out of bounds.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return Transparent
	}
	return FromColor(p.img.RGBAAt(x, y))
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	px := color.RGBAModel.Convert(c.Color()).(color.RGBA)
	data := p.img.Pix
	for i := 0; i < len(data); i += 4 {
		data[i+0] = px.R
		data[i+1] = px.G
		data[i+2] = px.B
		data[i+3] = px.A
	}
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := p.EncodePNG(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.img.Set(x, y, c)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
