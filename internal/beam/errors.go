package beam

import "errors"

// Sentinel errors for the solver input taxonomy. Every failure is detected
// during input normalization, before any diagram value is produced.
var (
	// ErrInvalidLoad reports a load positioned outside the span or a
	// distributed zone whose end does not lie past its start.
	ErrInvalidLoad = errors.New("invalid load")

	// ErrUnsupportedSupports reports a boundary-condition pair outside
	// the solvable set.
	ErrUnsupportedSupports = errors.New("unsupported support combination")

	// ErrDegenerateRigidity reports a non-positive E·I or G·J product.
	ErrDegenerateRigidity = errors.New("degenerate rigidity")
)
