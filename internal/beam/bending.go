package beam

import (
	"fmt"
	"math"
)

// BendingInput collects everything one bending solve needs. Section and
// material properties arrive already resolved to numbers; the solver never
// touches a catalog.
type BendingInput struct {
	Length         float64 // span L (mm)
	ElasticModulus float64 // E (MPa)
	Inertia        float64 // second moment of area I (mm⁴)

	BaseTotal float64     // load given as a total over the whole span (N)
	Points    []PointLoad // concentrated forces (N at mm)
	Zones     []ZonalLoad // distributed zone totals (N over [mm, mm])

	Supports SupportPair
}

// BendingReactions holds the support reactions. A simply supported beam
// fills ForceLeft/ForceRight; a cantilever fills the force and clamping
// moment of its fixed end.
type BendingReactions struct {
	ForceLeft   float64 // N
	ForceRight  float64 // N
	MomentLeft  float64 // N·mm, left fixed end only
	MomentRight float64 // N·mm, right fixed end only
}

// BendingResult is the diagram produced by one solve call: parallel
// sequences over the position grid plus the reactions. It is never mutated
// after SolveBending returns.
type BendingResult struct {
	X          []float64 // mm
	Shear      []float64 // V (N)
	Moment     []float64 // M (N·mm)
	Deflection []float64 // y (mm)

	Reactions BendingReactions
	Supports  SupportPair
}

// MaxShear returns |V|max in N.
func (r *BendingResult) MaxShear() float64 { return MaxAbs(r.Shear) }

// MaxMoment returns |M|max in N·mm.
func (r *BendingResult) MaxMoment() float64 { return MaxAbs(r.Moment) }

// MaxDeflection returns |y|max in mm.
func (r *BendingResult) MaxDeflection() float64 { return MaxAbs(r.Deflection) }

// SolveBending validates the input, dispatches on the support pair and
// builds shear, moment and deflection diagrams over a fresh 240-point grid.
// Either the full diagram is produced or an error is returned; there is no
// partial result.
func SolveBending(in BendingInput) (*BendingResult, error) {
	loads, err := NewLoadModel(in.Length, in.BaseTotal, in.Points, in.Zones)
	if err != nil {
		return nil, err
	}
	ei := in.ElasticModulus * in.Inertia
	if ei <= 0 {
		return nil, fmt.Errorf("%w: E·I = %.4g must be positive", ErrDegenerateRigidity, ei)
	}

	scheme, err := in.Supports.bendingScheme()
	if err != nil {
		return nil, err
	}

	var res *BendingResult
	switch scheme {
	case simplySupported:
		res = bendSimplySupported(loads, ei)
	case cantileverLeftFixed:
		res = bendCantileverLeftFixed(loads, ei)
	case cantileverRightFixed:
		res = bendCantileverRightFixed(loads, ei, in.BaseTotal)
	}
	res.Supports = in.Supports
	return res, nil
}

// runningLoad samples the distributed intensity on the grid and returns its
// cumulative integral together with the cumulative first moment about the
// origin.
func runningLoad(x []float64, loads *LoadModel) (wInt, wxInt []float64) {
	w := make([]float64, len(x))
	wx := make([]float64, len(x))
	for i, xi := range x {
		w[i] = loads.IntensityAt(xi)
		wx[i] = w[i] * xi
	}
	return CumTrapz(x, w), CumTrapz(x, wx)
}

// bendSimplySupported handles the pinned-pinned beam. Reactions follow from
// global equilibrium: moments about the right support give Ra, force balance
// gives Rb. Deflection is the double integral of M/EI with a linear
// correction so y(L) returns to zero (y(0) is zero by construction).
func bendSimplySupported(loads *LoadModel, ei float64) *BendingResult {
	x := NewGrid(loads.Length())
	wInt, wxInt := runningLoad(x, loads)
	n := len(x)
	length := loads.Length()

	wTot := wInt[n-1]
	mwTot := wxInt[n-1]
	pTot := loads.TotalPoint()
	var mpTot float64
	for _, p := range loads.Points() {
		mpTot += p.Magnitude * p.Position
	}
	rb := (mwTot + mpTot) / length
	ra := (wTot + pTot) - rb

	shear := make([]float64, n)
	moment := make([]float64, n)
	for i, xi := range x {
		var pLeft, mpLeft float64
		for _, p := range loads.Points() {
			if p.Position <= xi {
				pLeft += p.Magnitude
				mpLeft += p.Magnitude * (xi - p.Position)
			}
		}
		shear[i] = ra - wInt[i] - pLeft
		moment[i] = ra*xi - (xi*wInt[i] - wxInt[i]) - mpLeft
	}

	curvature := make([]float64, n)
	for i, m := range moment {
		curvature[i] = m / ei
	}
	slope := CumTrapz(x, curvature)
	yRaw := CumTrapz(x, slope)
	c1 := -yRaw[n-1] / length
	deflection := make([]float64, n)
	for i, xi := range x {
		deflection[i] = yRaw[i] + c1*xi
	}

	return &BendingResult{
		X:          x,
		Shear:      shear,
		Moment:     moment,
		Deflection: deflection,
		Reactions:  BendingReactions{ForceLeft: ra, ForceRight: rb},
	}
}

// bendCantileverLeftFixed handles the beam clamped at x=0. Internal actions
// are found by cutting and summing the load to the right of the cut; the
// clamped end enforces zero deflection and zero slope at x=0, which the
// forward cumulative integration satisfies with no correction term.
func bendCantileverLeftFixed(loads *LoadModel, ei float64) *BendingResult {
	x := NewGrid(loads.Length())
	wInt, wxInt := runningLoad(x, loads)
	n := len(x)

	wTot := wInt[n-1]
	wxTot := wxInt[n-1]

	shear := make([]float64, n)
	moment := make([]float64, n)
	for i, xi := range x {
		wRight := wTot - wInt[i]
		wxRight := wxTot - wxInt[i]
		var pRight, mpRight float64
		for _, p := range loads.Points() {
			if p.Position >= xi {
				pRight += p.Magnitude
				mpRight += p.Magnitude * (p.Position - xi)
			}
		}
		shear[i] = -wRight - pRight
		moment[i] = -((wxRight - xi*wRight) + mpRight)
	}

	curvature := make([]float64, n)
	for i, m := range moment {
		curvature[i] = m / ei
	}
	slope := CumTrapz(x, curvature)
	deflection := CumTrapz(x, slope)

	var mpTot float64
	for _, p := range loads.Points() {
		mpTot += p.Magnitude * p.Position
	}
	rFixed := wTot + loads.TotalPoint()
	mFixed := wxTot + mpTot

	return &BendingResult{
		X:          x,
		Shear:      shear,
		Moment:     moment,
		Deflection: deflection,
		Reactions:  BendingReactions{ForceLeft: rFixed, MomentLeft: mFixed},
	}
}

// bendCantileverRightFixed handles the beam clamped at x=L by mirroring the
// loads about midspan, solving the left-fixed layout, and mapping the
// diagrams back. Array order is reversed; values carry over without a sign
// change.
func bendCantileverRightFixed(loads *LoadModel, ei, baseTotal float64) *BendingResult {
	length := loads.Length()
	mirrored, err := NewLoadModel(length, baseTotal,
		MirrorPointLoads(length, loads.Points()),
		MirrorZonalLoads(length, loads.Zones()))
	if err != nil {
		// loads already passed validation; mirroring keeps every position
		// inside [0, L].
		panic(fmt.Sprintf("beam: mirrored loads failed validation: %v", err))
	}

	local := bendCantileverLeftFixed(mirrored, ei)

	n := len(local.X)
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = length - local.X[n-1-i]
	}

	return &BendingResult{
		X:          x,
		Shear:      Reversed(local.Shear),
		Moment:     Reversed(local.Moment),
		Deflection: Reversed(local.Deflection),
		Reactions: BendingReactions{
			ForceRight:  local.Reactions.ForceLeft,
			MomentRight: local.Reactions.MomentLeft,
		},
	}
}

// EquivalentStiffness relates the governing applied load (largest point
// magnitude plus the overall distributed total) to the peak deflection.
// Below a negligible deflection the stiffness is reported as infinite.
func EquivalentStiffness(points []PointLoad, totalDistributed, maxDeflection float64) float64 {
	if maxDeflection <= 1e-12 {
		return math.Inf(1)
	}
	var pMax float64
	for _, p := range points {
		if a := math.Abs(p.Magnitude); a > pMax {
			pMax = a
		}
	}
	return (pMax + math.Abs(totalDistributed)) / maxDeflection
}
