// Package text draws short single-line captions.
//
// Shaping (glyph selection, kerning) is done by go-text/typesetting's
// HarfBuzz port; glyph outlines come from golang.org/x/image/font/sfnt and
// are filled with golang.org/x/image/vector, so no glyph bitmaps are cached.
//
// # Example usage
//
//	face, err := text.DefaultFace(14)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img := image.NewRGBA(image.Rect(0, 0, 200, 40))
//	_ = face.Draw(img, "Astroid", 4, face.Ascent()+4, color.White)
package text
