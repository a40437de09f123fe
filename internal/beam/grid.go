package beam

// GridPoints is the fixed number of stations the span is discretized into.
// Diagrams are sampled at these stations; the trapezoidal integrator bounds
// the discretization error for the spans and load counts this tool targets.
const GridPoints = 240

// NewGrid returns GridPoints uniformly spaced positions from 0 to length
// inclusive. A fresh slice is built per solve call and never mutated after
// construction.
func NewGrid(length float64) []float64 {
	step := length / float64(GridPoints-1)
	x := make([]float64, GridPoints)
	for i := range x {
		x[i] = float64(i) * step
	}
	return x
}
