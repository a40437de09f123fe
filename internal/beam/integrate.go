package beam

import "math"

// CumTrapz returns the cumulative integral of y over x using the composite
// trapezoidal rule: out[0] = 0 and
// out[k] = out[k-1] + 0.5*(y[k]+y[k-1])*(x[k]-x[k-1]).
// This is the single numerical primitive both solvers build on (running
// load, running first moment, running curvature, running twist rate).
func CumTrapz(x, y []float64) []float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	for i := 1; i < n; i++ {
		out[i] = out[i-1] + 0.5*(y[i]+y[i-1])*(x[i]-x[i-1])
	}
	return out
}

// MaxAbs returns the largest absolute value in v, or 0 for an empty slice.
func MaxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}
