package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a font at a fixed pixel size.
//
// Face is safe for concurrent use. The parsed fonts are read-only; the
// HarfBuzz shaper and the sfnt glyph buffer carry mutable state and are
// guarded by mu.
type Face struct {
	size float64

	// shapingFont is parsed by go-text/typesetting and drives glyph selection.
	shapingFont *font.Font
	// outlineFont is the same TTF parsed by x/image/font/sfnt; it supplies
	// the vector outlines. Both parsers agree on glyph indices.
	outlineFont *sfnt.Font

	mu     sync.Mutex
	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer
}

// glyph is a shaped glyph positioned relative to the pen origin.
type glyph struct {
	id   sfnt.GlyphIndex
	x, y float64
}

// NewFace parses TrueType/OpenType data for use at the given pixel size.
func NewFace(ttf []byte, size float64) (*Face, error) {
	if len(ttf) == 0 {
		return nil, ErrEmptyFontData
	}
	if !(size > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	parsed, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	outline, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("text: parse outlines: %w", err)
	}

	return &Face{
		size:        size,
		shapingFont: parsed.Font,
		outlineFont: outline,
	}, nil
}

// DefaultFace returns the Go Regular font at the given pixel size.
func DefaultFace(size float64) (*Face, error) {
	return NewFace(goregular.TTF, size)
}

// Size returns the pixel size of the face.
func (f *Face) Size() float64 {
	return f.size
}

// Ascent returns the distance from the baseline to the top of the line, in pixels.
func (f *Face) Ascent() float64 {
	out := f.shapeRun("")
	return fixedToFloat(out.LineBounds.Ascent)
}

// Measure returns the advance width and the line height of s in pixels.
func (f *Face) Measure(s string) (width, height float64) {
	out := f.shapeRun(s)
	lb := out.LineBounds
	return fixedToFloat(out.Advance), fixedToFloat(lb.Ascent - lb.Descent + lb.Gap)
}

// shapeRun shapes s as a single left-to-right run.
// An empty string still yields the line metrics of the face.
func (f *Face) shapeRun(s string) shaping.Output {
	runes := []rune(s)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		// font.Face is cheap and not safe for concurrent use, so one per call.
		Face:     font.NewFace(f.shapingFont),
		Size:     floatToFixed(f.size),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shaper.Shape(input)
}

// layout converts the shaper output into pen-relative glyph positions.
func (f *Face) layout(s string) []glyph {
	out := f.shapeRun(s)
	if len(out.Glyphs) == 0 {
		return nil
	}

	result := make([]glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		result[i] = glyph{
			id: sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // TrueType glyph indices are 16-bit
			x:  x + fixedToFloat(g.XOffset),
			// typesetting offsets grow up, the raster grows down.
			y: -fixedToFloat(g.YOffset),
		}
		x += fixedToFloat(g.Advance)
	}
	return result
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
