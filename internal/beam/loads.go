package beam

import "fmt"

// PointLoad is a concentrated action applied at one position along the span.
// For bending the magnitude is a force in N; for torsion it is a torque in
// N·mm. The sign encodes direction.
type PointLoad struct {
	Magnitude float64 // N (bending) or N·mm (torsion)
	Position  float64 // mm from the left end
}

// ZonalLoad is a distributed action whose total magnitude is spread over a
// sub-interval of the span. It is converted to an intensity
// (Total / (End-Start)) during evaluation.
type ZonalLoad struct {
	Total float64 // N or N·mm, total over the zone
	Start float64 // mm
	End   float64 // mm
}

// LoadModel is the validated load collection for one solve call. Positions
// are guaranteed inside [0, L], zero-magnitude entries are dropped, and
// every zone has End > Start.
type LoadModel struct {
	length   float64
	baseRate float64 // uniform intensity from the whole-span total
	points   []PointLoad
	zones    []ZonalLoad
}

// NewLoadModel validates raw load descriptions against the span length.
// baseTotal is a load given as a total over the whole span; it becomes a
// uniform intensity baseTotal/L.
func NewLoadModel(length, baseTotal float64, points []PointLoad, zones []ZonalLoad) (*LoadModel, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: span length must be positive, got %.4g", ErrInvalidLoad, length)
	}

	m := &LoadModel{
		length:   length,
		baseRate: baseTotal / length,
	}

	for i, p := range points {
		if p.Position < 0 || p.Position > length {
			return nil, fmt.Errorf("%w: point load %d at x=%.4g lies outside the span [0, %.4g]", ErrInvalidLoad, i+1, p.Position, length)
		}
		if p.Magnitude == 0 {
			continue
		}
		m.points = append(m.points, p)
	}

	for i, z := range zones {
		if z.Start < 0 || z.End < 0 || z.Start > length || z.End > length {
			return nil, fmt.Errorf("%w: zonal load %d [%.4g, %.4g] lies outside the span [0, %.4g]", ErrInvalidLoad, i+1, z.Start, z.End, length)
		}
		if z.End <= z.Start {
			return nil, fmt.Errorf("%w: zonal load %d must end past its start (start=%.4g, end=%.4g)", ErrInvalidLoad, i+1, z.Start, z.End)
		}
		if z.Total == 0 {
			continue
		}
		m.zones = append(m.zones, z)
	}

	return m, nil
}

// Length returns the span length in mm.
func (m *LoadModel) Length() float64 { return m.length }

// BaseRate returns the uniform whole-span intensity.
func (m *LoadModel) BaseRate() float64 { return m.baseRate }

// Points returns the retained point loads.
func (m *LoadModel) Points() []PointLoad { return m.points }

// Zones returns the retained zonal loads.
func (m *LoadModel) Zones() []ZonalLoad { return m.zones }

// IntensityAt evaluates the distributed intensity at position x: the base
// rate plus the rate of every zone covering x. Zone boundaries are inclusive
// on both ends.
func (m *LoadModel) IntensityAt(x float64) float64 {
	w := m.baseRate
	for _, z := range m.zones {
		if x >= z.Start && x <= z.End {
			w += z.Total / (z.End - z.Start)
		}
	}
	return w
}

// TotalZonal returns the sum of all zonal totals.
func (m *LoadModel) TotalZonal() float64 {
	var sum float64
	for _, z := range m.zones {
		sum += z.Total
	}
	return sum
}

// TotalPoint returns the sum of all point magnitudes.
func (m *LoadModel) TotalPoint() float64 {
	var sum float64
	for _, p := range m.points {
		sum += p.Magnitude
	}
	return sum
}

// IsEmpty reports whether no load survived validation.
func (m *LoadModel) IsEmpty() bool {
	return m.baseRate == 0 && len(m.points) == 0 && len(m.zones) == 0
}
