package beam

import "fmt"

// Support is the boundary condition at one end of the span.
type Support int

const (
	// Pinned covers both pins and rollers; it restrains translation only.
	Pinned Support = iota
	// Fixed restrains translation and rotation (a clamped end).
	Fixed
	// Free leaves the end unrestrained.
	Free
)

func (s Support) String() string {
	switch s {
	case Pinned:
		return "pinned"
	case Fixed:
		return "fixed"
	case Free:
		return "free"
	}
	return fmt.Sprintf("Support(%d)", int(s))
}

// SupportPair is the ordered (left, right) boundary condition of the span.
type SupportPair struct {
	Left  Support
	Right Support
}

func (p SupportPair) String() string {
	return p.Left.String() + "-" + p.Right.String()
}

// bendingScheme enumerates the bending layouts the solver can handle.
type bendingScheme int

const (
	simplySupported bendingScheme = iota
	cantileverLeftFixed
	cantileverRightFixed
)

// bendingScheme classifies the pair for the bending solver. Unstable pairs
// (free-free, free with pinned) and statically indeterminate pairs are
// rejected.
func (p SupportPair) bendingScheme() (bendingScheme, error) {
	switch {
	case p.Left == Free && p.Right == Free:
		return 0, fmt.Errorf("%w: free-free span has no restraint", ErrUnsupportedSupports)
	case p.Left == Free && p.Right == Pinned,
		p.Left == Pinned && p.Right == Free:
		return 0, fmt.Errorf("%w: %s is unstable (a pinned end cannot carry a free end)", ErrUnsupportedSupports, p)
	case p.Left == Pinned && p.Right == Pinned:
		return simplySupported, nil
	case p.Left == Fixed && p.Right == Free:
		return cantileverLeftFixed, nil
	case p.Left == Free && p.Right == Fixed:
		return cantileverRightFixed, nil
	}
	return 0, fmt.Errorf("%w: %s is statically indeterminate for bending", ErrUnsupportedSupports, p)
}

// torsionScheme enumerates the torsion layouts the solver can handle.
type torsionScheme int

const (
	torsionLeftFixed torsionScheme = iota
	torsionRightFixed
	torsionBothFixed
)

// torsionScheme classifies the pair for the torsion solver. Only fixed and
// free ends are meaningful in torsion; a pinned end does not restrain twist.
func (p SupportPair) torsionScheme() (torsionScheme, error) {
	switch {
	case p.Left == Fixed && p.Right == Free:
		return torsionLeftFixed, nil
	case p.Left == Free && p.Right == Fixed:
		return torsionRightFixed, nil
	case p.Left == Fixed && p.Right == Fixed:
		return torsionBothFixed, nil
	}
	return 0, fmt.Errorf("%w: torsion accepts fixed-free, free-fixed or fixed-fixed, got %s", ErrUnsupportedSupports, p)
}
