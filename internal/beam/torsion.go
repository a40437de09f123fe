package beam

import (
	"fmt"
	"math"
)

// TorsionInput collects everything one torsion solve needs. All torque
// magnitudes are in N·mm; unit conversion from N·m happens at the boundary
// that gathers the input.
type TorsionInput struct {
	Length          float64 // span L (mm)
	ShearModulus    float64 // G (MPa)
	TorsionConstant float64 // J_t (mm⁴)

	BaseTotal float64     // distributed torque given as a whole-span total (N·mm)
	Points    []PointLoad // concentrated torques (N·mm at mm)
	Zones     []ZonalLoad // distributed zone totals (N·mm over [mm, mm])

	Supports SupportPair
}

// TorsionReactions holds the reaction torque at each fixed end, N·mm.
// Only the fixed end(s) of the layout are populated.
type TorsionReactions struct {
	Left  float64
	Right float64
}

// TorsionResult is the torsion diagram over the position grid: internal
// torque and twist angle, plus reactions. Immutable after the solve.
type TorsionResult struct {
	X      []float64 // mm
	Torque []float64 // T (N·mm)
	Twist  []float64 // θ (rad)

	Reactions TorsionReactions
	Supports  SupportPair
}

// MaxTorque returns |T|max in N·mm.
func (r *TorsionResult) MaxTorque() float64 { return MaxAbs(r.Torque) }

// MaxTwist returns |θ|max in rad.
func (r *TorsionResult) MaxTwist() float64 { return MaxAbs(r.Twist) }

// EndRotation returns the absolute twist difference between the two span
// ends, in rad.
func (r *TorsionResult) EndRotation() float64 {
	if len(r.Twist) < 2 {
		return 0
	}
	return math.Abs(r.Twist[len(r.Twist)-1] - r.Twist[0])
}

// SolveTorsion validates the input, dispatches on the support pair and
// builds the internal torque and twist diagrams over a fresh 240-point grid.
func SolveTorsion(in TorsionInput) (*TorsionResult, error) {
	loads, err := NewLoadModel(in.Length, in.BaseTotal, in.Points, in.Zones)
	if err != nil {
		return nil, err
	}
	gj := in.ShearModulus * in.TorsionConstant
	if gj <= 0 {
		return nil, fmt.Errorf("%w: G·J = %.4g must be positive", ErrDegenerateRigidity, gj)
	}

	scheme, err := in.Supports.torsionScheme()
	if err != nil {
		return nil, err
	}

	var res *TorsionResult
	switch scheme {
	case torsionLeftFixed:
		res = twistLeftFixed(loads, gj)
	case torsionRightFixed:
		res = twistRightFixed(loads, gj, in.BaseTotal)
	case torsionBothFixed:
		res = twistBothFixed(loads, gj)
	}
	res.Supports = in.Supports
	return res, nil
}

// appliedFromLeft returns, at every grid station, the total applied torque
// between the left end and that station (distributed integral plus point
// torques at or before it), along with the grand total over the span.
func appliedFromLeft(loads *LoadModel) (x, leftApplied []float64, totalExternal float64) {
	x = NewGrid(loads.Length())
	mt := make([]float64, len(x))
	for i, xi := range x {
		mt[i] = loads.IntensityAt(xi)
	}
	mtInt := CumTrapz(x, mt)

	leftApplied = make([]float64, len(x))
	for i, xi := range x {
		sum := mtInt[i]
		for _, p := range loads.Points() {
			if p.Position <= xi {
				sum += p.Magnitude
			}
		}
		leftApplied[i] = sum
	}

	totalExternal = mtInt[len(mtInt)-1] + loads.TotalPoint()
	return x, leftApplied, totalExternal
}

// twistLeftFixed handles the shaft clamped at x=0. The reaction torque
// balances the total applied torque; twist accumulates from the clamped end,
// so θ(0)=0 holds by construction.
func twistLeftFixed(loads *LoadModel, gj float64) *TorsionResult {
	x, leftApplied, totalExternal := appliedFromLeft(loads)

	rFixed := -totalExternal
	torque := make([]float64, len(x))
	rate := make([]float64, len(x))
	for i, m := range leftApplied {
		torque[i] = rFixed + m
		rate[i] = torque[i] / gj
	}
	twist := CumTrapz(x, rate)

	return &TorsionResult{
		X:         x,
		Torque:    torque,
		Twist:     twist,
		Reactions: TorsionReactions{Left: rFixed},
	}
}

// twistRightFixed mirrors the loads, solves the left-fixed layout and maps
// the diagrams back, exactly as the bending solver does for its right-fixed
// cantilever.
func twistRightFixed(loads *LoadModel, gj, baseTotal float64) *TorsionResult {
	length := loads.Length()
	mirrored, err := NewLoadModel(length, baseTotal,
		MirrorPointLoads(length, loads.Points()),
		MirrorZonalLoads(length, loads.Zones()))
	if err != nil {
		panic(fmt.Sprintf("beam: mirrored torques failed validation: %v", err))
	}

	local := twistLeftFixed(mirrored, gj)

	n := len(local.X)
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = length - local.X[n-1-i]
	}

	return &TorsionResult{
		X:         x,
		Torque:    Reversed(local.Torque),
		Twist:     Reversed(local.Twist),
		Reactions: TorsionReactions{Right: local.Reactions.Left},
	}
}

// twistBothFixed handles the statically indeterminate fixed-fixed shaft.
// The left reaction comes from the compatibility condition that the net
// twist over the span is zero: R_left = -(∫ leftApplied dx)/L. The right
// reaction closes global torque equilibrium. The raw twist integral
// generally does not return to zero at x=L, so the linear drift (x/L)·θ_raw(L)
// is subtracted pointwise.
func twistBothFixed(loads *LoadModel, gj float64) *TorsionResult {
	x, leftApplied, totalExternal := appliedFromLeft(loads)
	length := loads.Length()
	n := len(x)

	intLeft := CumTrapz(x, leftApplied)[n-1]
	rLeft := -(intLeft / length)
	rRight := -(rLeft + totalExternal)

	torque := make([]float64, n)
	rate := make([]float64, n)
	for i, m := range leftApplied {
		torque[i] = rLeft + m
		rate[i] = torque[i] / gj
	}
	twistRaw := CumTrapz(x, rate)
	drift := twistRaw[n-1]
	twist := make([]float64, n)
	for i, xi := range x {
		twist[i] = twistRaw[i] - (xi/length)*drift
	}

	return &TorsionResult{
		X:         x,
		Torque:    torque,
		Twist:     twist,
		Reactions: TorsionReactions{Left: rLeft, Right: rRight},
	}
}
