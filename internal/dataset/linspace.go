package dataset

import "math"

// Linspace returns n evenly spaced samples over the closed interval [x1, x2].
// The first element is exactly x1; the last equals x2 up to rounding.
func Linspace(x1, x2 float64, n int) ([]float64, error) {
	if !(x1 < x2) || math.IsInf(x1, 0) || math.IsInf(x2, 0) {
		return nil, paramError("linspace", "interval", [2]float64{x1, x2}, ErrInvalidInterval)
	}
	if n < 2 {
		return nil, paramError("linspace", "n", n, ErrTooFewSamples)
	}

	y := make([]float64, n)
	span := x2 - x1
	if math.IsInf(span, 0) {
		// x2 - x1 overflows; interpolate between the bounds instead.
		last := float64(n - 1)
		for i := range y {
			t := float64(i) / last
			y[i] = x1*(1-t) + x2*t
		}
		return y, nil
	}

	step := span / float64(n-1)
	for i := range y {
		y[i] = x1 + step*float64(i)
	}
	y[0] = x1
	return y, nil
}

// Angles returns the angle sweep over [0, 2π] used to place n moon samples.
func Angles(n int) ([]float64, error) {
	return Linspace(0, 2*math.Pi, n)
}
