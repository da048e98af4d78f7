package text

import (
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFace(t *testing.T, size float64) *Face {
	t.Helper()
	f, err := NewFace(goregular.TTF, size)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	return f
}

func litPixels(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			n++
		}
	}
	return n
}

func TestNewFaceErrors(t *testing.T) {
	if _, err := NewFace(nil, 12); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("nil data err = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFace(goregular.TTF, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero size err = %v, want ErrInvalidSize", err)
	}
	if _, err := NewFace([]byte("not a font"), 12); err == nil {
		t.Error("garbage data should fail to parse")
	}
}

func TestFaceMetrics(t *testing.T) {
	tests := []struct {
		name string
		size float64
	}{
		{"size 12", 12},
		{"size 16", 16},
		{"size 24", 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := loadTestFace(t, tt.size)
			if f.Size() != tt.size {
				t.Errorf("Size() = %v, want %v", f.Size(), tt.size)
			}
			asc := f.Ascent()
			if asc <= 0 || asc > tt.size*1.5 {
				t.Errorf("Ascent() = %v, out of range for size %v", asc, tt.size)
			}
			w, h := f.Measure("Astroid")
			if w <= 0 || h < asc {
				t.Errorf("Measure() = %v x %v", w, h)
			}
			wide, _ := f.Measure("Astroid Astroid")
			if wide <= w {
				t.Errorf("longer text measured %v, want more than %v", wide, w)
			}
		})
	}
}

func TestFaceDraw(t *testing.T) {
	f := loadTestFace(t, 16)
	img := image.NewRGBA(image.Rect(0, 0, 120, 30))

	if err := f.Draw(img, "", 2, 20, color.White); err != nil {
		t.Fatalf("Draw empty: %v", err)
	}
	if n := litPixels(img); n != 0 {
		t.Fatalf("empty string lit %d pixels", n)
	}

	if err := f.Draw(img, "Starfish", 2, 2+f.Ascent(), color.White); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if n := litPixels(img); n < 20 {
		t.Errorf("Draw lit %d pixels, want a visible word", n)
	}

	// Nothing below the descender line.
	for x := 0; x < 120; x++ {
		if img.RGBAAt(x, 29).A != 0 {
			t.Fatalf("pixel (%d, 29) lit, text should end above it", x)
		}
	}
}

func TestFaceDrawOffset(t *testing.T) {
	// A sub-image with a non-zero origin must be addressed in its own coordinates.
	f := loadTestFace(t, 14)
	base := image.NewRGBA(image.Rect(0, 0, 200, 100))
	sub := base.SubImage(image.Rect(100, 50, 200, 100)).(*image.RGBA)

	if err := f.Draw(sub, "Line", 104, 50+f.Ascent(), color.White); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 50; y++ {
		for x := 0; x < 200; x++ {
			if base.RGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d, %d) outside the sub-image was drawn", x, y)
			}
		}
	}
	if litPixels(base) == 0 {
		t.Error("nothing drawn into the sub-image")
	}
}

func TestFaceConcurrent(t *testing.T) {
	f := loadTestFace(t, 12)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			img := image.NewRGBA(image.Rect(0, 0, 80, 20))
			if err := f.Draw(img, "Ellipse", 1, 14, color.Black); err != nil {
				t.Errorf("Draw: %v", err)
			}
		}()
	}
	wg.Wait()
}
