package beam

// Span mirroring lets the right-fixed cantilever reuse the left-fixed
// formulation: reflect the loads about midspan, solve the mirrored problem,
// then reverse the resulting arrays. Shear, moment and deflection come back
// in original orientation without an extra sign change.

// MirrorPointLoads reflects point loads about the midspan of a beam of the
// given length (x -> L-x). Input is not modified.
func MirrorPointLoads(length float64, points []PointLoad) []PointLoad {
	if points == nil {
		return nil
	}
	out := make([]PointLoad, len(points))
	for i, p := range points {
		out[i] = PointLoad{Magnitude: p.Magnitude, Position: length - p.Position}
	}
	return out
}

// MirrorZonalLoads reflects zonal loads about the midspan; the zone
// [x1, x2] becomes [L-x2, L-x1]. Input is not modified.
func MirrorZonalLoads(length float64, zones []ZonalLoad) []ZonalLoad {
	if zones == nil {
		return nil
	}
	out := make([]ZonalLoad, len(zones))
	for i, z := range zones {
		out[i] = ZonalLoad{Total: z.Total, Start: length - z.End, End: length - z.Start}
	}
	return out
}

// Reversed returns a copy of v in reverse order.
func Reversed(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}
	return out
}
