package curves

// rect is an axis-aligned rectangle in pixel space.
type rect struct {
	min, max Point
}

func (r rect) contains(p Point) bool {
	return p.X >= r.min.X && p.X <= r.max.X && p.Y >= r.min.Y && p.Y <= r.max.Y
}

func (r rect) expand(d float64) rect {
	return rect{min: Pt(r.min.X-d, r.min.Y-d), max: Pt(r.max.X+d, r.max.Y+d)}
}

// clipSegment clips segment a-b to r using the Liang-Barsky algorithm.
// It reports false when nothing of the segment lies inside r or when an
// endpoint is not finite.
func (r rect) clipSegment(a, b Point) (Point, Point, bool) {
	if !a.IsFinite() || !b.IsFinite() {
		return a, b, false
	}
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X - r.min.X},
		{d.X, r.max.X - a.X},
		{-d.Y, a.Y - r.min.Y},
		{d.Y, r.max.Y - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return a.Lerp(b, t0), a.Lerp(b, t1), true
}
