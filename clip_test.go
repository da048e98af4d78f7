package curves

import (
	"math"
	"testing"
)

func TestClipSegment(t *testing.T) {
	r := rect{min: Pt(0, 0), max: Pt(10, 10)}
	tests := []struct {
		name   string
		a, b   Point
		ok     bool
		wa, wb Point
	}{
		{"inside", Pt(1, 1), Pt(9, 9), true, Pt(1, 1), Pt(9, 9)},
		{"crosses left", Pt(-5, 5), Pt(5, 5), true, Pt(0, 5), Pt(5, 5)},
		{"crosses both", Pt(-10, 5), Pt(20, 5), true, Pt(0, 5), Pt(10, 5)},
		{"diagonal through corner region", Pt(-5, -5), Pt(15, 15), true, Pt(0, 0), Pt(10, 10)},
		{"fully left", Pt(-5, 1), Pt(-1, 9), false, Point{}, Point{}},
		{"fully below", Pt(1, 11), Pt(9, 20), false, Point{}, Point{}},
		{"vertical outside", Pt(11, 0), Pt(11, 10), false, Point{}, Point{}},
		{"NaN", Pt(math.NaN(), 1), Pt(2, 2), false, Point{}, Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, ok := r.clipSegment(tt.a, tt.b)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if !near(a, tt.wa, 1e-9) || !near(b, tt.wb, 1e-9) {
				t.Errorf("clipped to %v-%v, want %v-%v", a, b, tt.wa, tt.wb)
			}
		})
	}
}
