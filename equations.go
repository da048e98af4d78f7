package curves

import "math"

// CurveFunc evaluates a parametric curve at t (radians).
type CurveFunc func(t float64) Point

// Curve constants.
const (
	ellipseA = 2.0
	ellipseB = 1.1

	starfishR = 5.0
	starfishr = 3.0
	starfishD = 5.0

	fancyV1 = 15.0
	fancyV2 = 4.0
)

// Func returns the closed-form function of the shape. Unknown shapes map
// every t to the origin.
func (s Shape) Func() CurveFunc {
	switch s {
	case Astroid:
		return astroid
	case Cycloid:
		return cycloid
	case HuygensCycloid:
		return huygens
	case HypoCycloid:
		return hypocycloid
	case Line:
		return line
	case Circle:
		return circle
	case Ellipse:
		return ellipse
	case Fancy:
		return fancy
	case Starfish:
		return starfish
	default:
		return func(float64) Point { return Point{} }
	}
}

// Compute evaluates shape s at parameter t.
func Compute(s Shape, t float64) Point {
	return s.Func()(t)
}

func astroid(t float64) Point {
	cos, sin := math.Cos(t), math.Sin(t)
	return Pt(2*cos*cos*cos, 2*sin*sin*sin)
}

func cycloid(t float64) Point {
	return Pt(1.5*(1-math.Cos(t)), 1.5*(t-math.Sin(t)))
}

func huygens(t float64) Point {
	return Pt(
		4*(3*math.Cos(t)-math.Cos(3*t)),
		4*(3*math.Sin(t)-math.Sin(3*t)),
	)
}

func hypocycloid(t float64) Point {
	return Pt(
		1.5*(2*math.Cos(t)+math.Cos(2*t)),
		1.5*(2*math.Sin(t)-math.Sin(2*t)),
	)
}

func line(t float64) Point {
	return Pt(1-t, 1-t)
}

func circle(t float64) Point {
	return Pt(math.Cos(t), math.Sin(t))
}

func ellipse(t float64) Point {
	return Pt(ellipseA*math.Cos(t), ellipseB*math.Sin(t))
}

func starfish(t float64) Point {
	k := starfishR - starfishr
	return Pt(
		k*math.Cos(t)+starfishD*math.Cos(t*k/starfishr),
		k*math.Sin(t)-starfishD*math.Sin(t*k/starfishr),
	)
}

func fancy(t float64) Point {
	return Pt(
		fancyV1*math.Cos(t)-fancyV2*math.Cos(fancyV1*t/fancyV2),
		fancyV1*math.Sin(t)-fancyV2*math.Sin(fancyV1*t/fancyV2),
	)
}
