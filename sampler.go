package curves

// Sample evaluates shape s at steps+1 evenly spaced parameter values
// covering [0, interval], both ends included.
func Sample(s Shape, interval float64, steps int) ([]Point, error) {
	return SampleFunc(s.Func(), interval, steps)
}

// SampleFunc is Sample for an arbitrary curve function.
func SampleFunc(fn CurveFunc, interval float64, steps int) ([]Point, error) {
	if err := validateSampling(interval, steps); err != nil {
		return nil, err
	}
	points := make([]Point, steps+1)
	for i := 0; i < steps; i++ {
		points[i] = fn(float64(i) * interval / float64(steps))
	}
	// Computed separately so the last sample sits exactly on the interval end.
	points[steps] = fn(interval)
	return points, nil
}
