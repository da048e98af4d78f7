package curves

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"
)

func TestPixmapBasics(t *testing.T) {
	pm := NewPixmap(10, 6)
	if pm.Width() != 10 || pm.Height() != 6 {
		t.Fatalf("size = %dx%d, want 10x6", pm.Width(), pm.Height())
	}
	if c := pm.Center(); c != Pt(5, 3) {
		t.Errorf("Center() = %v, want (5, 3)", c)
	}
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("new pixmap pixel = %+v, want transparent", got)
	}

	pm.Clear(Blue)
	if got := pm.GetPixel(9, 5); got != Blue {
		t.Errorf("after Clear pixel = %+v, want blue", got)
	}

	pm.SetPixel(2, 3, Yellow)
	if got := pm.GetPixel(2, 3); got != Yellow {
		t.Errorf("SetPixel/GetPixel = %+v, want yellow", got)
	}

	// Out of bounds is ignored.
	pm.SetPixel(-1, 0, Red)
	pm.SetPixel(10, 6, Red)
	if got := pm.GetPixel(10, 0); got != Transparent {
		t.Errorf("out of bounds GetPixel = %+v, want transparent", got)
	}
}

func TestPixmapPNG(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.Clear(Green)

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("decoded bounds = %v", b)
	}
	if got := FromColor(img.At(1, 1)); got != Green {
		t.Errorf("decoded pixel = %+v, want green", got)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}
