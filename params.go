package curves

import (
	"fmt"
	"math"
)

// MaxSteps is the largest step count accepted by the sampler.
const MaxSteps = 1 << 20

// Params holds the rendering parameters of a curve.
type Params struct {
	// Scale is the number of pixels per curve unit.
	Scale float64
	// Interval is the length L of the parameter range [0, L], in radians.
	Interval float64
	// Steps is the number of segments the interval is divided into.
	Steps int
}

var defaultParams = [numShapes]Params{
	Astroid:        {Scale: 40, Interval: 2 * math.Pi, Steps: 256},
	Cycloid:        {Scale: 4, Interval: 6 * math.Pi, Steps: 128},
	HuygensCycloid: {Scale: 4, Interval: 4 * math.Pi, Steps: 256},
	HypoCycloid:    {Scale: 15, Interval: 2 * math.Pi, Steps: 256},
	Line:           {Scale: 100, Interval: 1, Steps: 128},
	Circle:         {Scale: 165, Interval: 2 * math.Pi, Steps: 128},
	Ellipse:        {Scale: 75, Interval: 2 * math.Pi, Steps: 256},
	Fancy:          {Scale: 10, Interval: 12 * math.Pi, Steps: 512},
	Starfish:       {Scale: 25, Interval: 6 * math.Pi, Steps: 256},
}

// DefaultParams returns the parameters a shape is shown with when first
// selected. Unknown shapes get the Astroid defaults.
func DefaultParams(s Shape) Params {
	if !s.Valid() {
		return defaultParams[Astroid]
	}
	return defaultParams[s]
}

// Validate checks that scale and interval are positive finite numbers and
// that the step count is in [1, MaxSteps].
func (p Params) Validate() error {
	if !(p.Scale > 0) || math.IsInf(p.Scale, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, p.Scale)
	}
	if err := validateSampling(p.Interval, p.Steps); err != nil {
		return err
	}
	return nil
}

func validateSampling(interval float64, steps int) error {
	if !(interval > 0) || math.IsInf(interval, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}
	if steps <= 0 || steps > MaxSteps {
		return fmt.Errorf("%w: %d", ErrInvalidSteps, steps)
	}
	return nil
}
