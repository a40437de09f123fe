// Package section resolves cross-section descriptions into the derived
// quantities the solvers consume: area, second moment of area or torsion
// constant, and section modulus or extreme fiber radius.
package section

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry reports a non-positive dimension or a structurally
// impossible combination (e.g. wall thickness swallowing the interior).
var ErrInvalidGeometry = errors.New("invalid section geometry")

// Kind is the closed set of supported cross-section shapes.
type Kind int

const (
	Round    Kind = iota // solid circle
	Tube                 // hollow circle
	Rect                 // solid rectangle
	RectTube             // hollow rectangle with uniform wall
	Standard             // catalog profile with pre-resolved properties
)

func (k Kind) String() string {
	switch k {
	case Round:
		return "round"
	case Tube:
		return "tube"
	case Rect:
		return "rectangular"
	case RectTube:
		return "rectangular tube"
	case Standard:
		return "standard profile"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Section is a tagged variant over the supported shapes. Dimensions are in
// mm; only the fields of the active variant are meaningful.
type Section struct {
	Kind Kind

	Diameter  float64 // round, tube: outer diameter d or D
	Width     float64 // rect, rect tube: b
	Height    float64 // rect, rect tube: h
	Thickness float64 // tube: wall t; rect tube: wall s

	// Standard profiles arrive with their properties already resolved by
	// the catalog; the resolver never performs the lookup itself.
	Name        string
	StdArea     float64 // mm²
	StdInertia  float64 // Ix, mm⁴
	StdModulus  float64 // Wx, mm³
	Description string
}

// NewRound describes a solid circular section of diameter d.
func NewRound(d float64) Section {
	return Section{Kind: Round, Diameter: d}
}

// NewTube describes a hollow circular section with outer diameter d and
// wall thickness t.
func NewTube(d, t float64) Section {
	return Section{Kind: Tube, Diameter: d, Thickness: t}
}

// NewRect describes a solid rectangular section b wide and h tall.
func NewRect(b, h float64) Section {
	return Section{Kind: Rect, Width: b, Height: h}
}

// NewRectTube describes a hollow rectangular section with uniform wall s.
func NewRectTube(b, h, s float64) Section {
	return Section{Kind: RectTube, Width: b, Height: h, Thickness: s}
}

// NewStandard describes a catalog profile whose properties were resolved
// upstream (area in mm², Ix in mm⁴, Wx in mm³).
func NewStandard(name string, area, inertia, modulus float64, description string) Section {
	return Section{
		Kind:        Standard,
		Name:        name,
		StdArea:     area,
		StdInertia:  inertia,
		StdModulus:  modulus,
		Description: description,
	}
}

// BendingProperties are the derived quantities feeding the bending solver.
type BendingProperties struct {
	Area    float64 // mm²
	Inertia float64 // I, mm⁴
	Modulus float64 // W, mm³
	Desc    string
}

// TorsionProperties are the derived quantities feeding the torsion solver.
// ExtremeRadius is the true radius for round shapes and half the diagonal
// for rectangular ones, an approximation that ignores warping.
type TorsionProperties struct {
	Area          float64 // mm²
	Constant      float64 // J_t, mm⁴
	ExtremeRadius float64 // r_max, mm
	Desc          string
}

func requirePositive(label string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %.4g", ErrInvalidGeometry, label, v)
	}
	return nil
}

// Bending resolves the section's area, second moment of area and section
// modulus.
func (s Section) Bending() (BendingProperties, error) {
	switch s.Kind {
	case Round:
		d := s.Diameter
		if err := requirePositive("round diameter d", d); err != nil {
			return BendingProperties{}, err
		}
		inertia := math.Pi * math.Pow(d, 4) / 64
		return BendingProperties{
			Area:    math.Pi * d * d / 4,
			Inertia: inertia,
			Modulus: inertia / (d / 2),
			Desc:    fmt.Sprintf("d=%.4g mm", d),
		}, nil

	case Tube:
		d, t := s.Diameter, s.Thickness
		if err := requirePositive("tube outer diameter D", d); err != nil {
			return BendingProperties{}, err
		}
		if err := requirePositive("tube wall thickness t", t); err != nil {
			return BendingProperties{}, err
		}
		di := d - 2*t
		if di <= 0 {
			return BendingProperties{}, fmt.Errorf("%w: wall thickness %.4g leaves no bore (inner diameter <= 0)", ErrInvalidGeometry, t)
		}
		inertia := math.Pi * (math.Pow(d, 4) - math.Pow(di, 4)) / 64
		return BendingProperties{
			Area:    math.Pi * (d*d - di*di) / 4,
			Inertia: inertia,
			Modulus: inertia / (d / 2),
			Desc:    fmt.Sprintf("D=%.4g mm, t=%.4g mm", d, t),
		}, nil

	case Rect:
		b, h := s.Width, s.Height
		if err := requirePositive("rectangle width b", b); err != nil {
			return BendingProperties{}, err
		}
		if err := requirePositive("rectangle height h", h); err != nil {
			return BendingProperties{}, err
		}
		inertia := b * math.Pow(h, 3) / 12
		return BendingProperties{
			Area:    b * h,
			Inertia: inertia,
			Modulus: inertia / (h / 2),
			Desc:    fmt.Sprintf("b=%.4g mm, h=%.4g mm", b, h),
		}, nil

	case RectTube:
		b, h, w := s.Width, s.Height, s.Thickness
		if err := requirePositive("rectangular tube width b", b); err != nil {
			return BendingProperties{}, err
		}
		if err := requirePositive("rectangular tube height h", h); err != nil {
			return BendingProperties{}, err
		}
		if err := requirePositive("rectangular tube wall s", w); err != nil {
			return BendingProperties{}, err
		}
		bi, hi := b-2*w, h-2*w
		if bi <= 0 || hi <= 0 {
			return BendingProperties{}, fmt.Errorf("%w: wall thickness %.4g leaves no interior (inner dimensions <= 0)", ErrInvalidGeometry, w)
		}
		inertia := (b*math.Pow(h, 3) - bi*math.Pow(hi, 3)) / 12
		return BendingProperties{
			Area:    b*h - bi*hi,
			Inertia: inertia,
			Modulus: inertia / (h / 2),
			Desc:    fmt.Sprintf("b=%.4g mm, h=%.4g mm, s=%.4g mm", b, h, w),
		}, nil

	case Standard:
		if err := requirePositive("profile area", s.StdArea); err != nil {
			return BendingProperties{}, err
		}
		if err := requirePositive("profile inertia Ix", s.StdInertia); err != nil {
			return BendingProperties{}, err
		}
		if err := requirePositive("profile modulus Wx", s.StdModulus); err != nil {
			return BendingProperties{}, err
		}
		return BendingProperties{
			Area:    s.StdArea,
			Inertia: s.StdInertia,
			Modulus: s.StdModulus,
			Desc:    s.Description,
		}, nil
	}
	return BendingProperties{}, fmt.Errorf("%w: unknown section kind %v", ErrInvalidGeometry, s.Kind)
}

// Torsion resolves the section's area, torsion constant and extreme fiber
// radius. Catalog profiles are not supported in torsion: their open
// thin-walled behavior is not covered by the analytic shapes here.
func (s Section) Torsion() (TorsionProperties, error) {
	switch s.Kind {
	case Round:
		d := s.Diameter
		if err := requirePositive("round diameter d", d); err != nil {
			return TorsionProperties{}, err
		}
		return TorsionProperties{
			Area:          math.Pi * d * d / 4,
			Constant:      math.Pi * math.Pow(d, 4) / 32,
			ExtremeRadius: d / 2,
			Desc:          fmt.Sprintf("d=%.4g mm", d),
		}, nil

	case Tube:
		d, t := s.Diameter, s.Thickness
		if err := requirePositive("tube outer diameter D", d); err != nil {
			return TorsionProperties{}, err
		}
		if err := requirePositive("tube wall thickness t", t); err != nil {
			return TorsionProperties{}, err
		}
		di := d - 2*t
		if di <= 0 {
			return TorsionProperties{}, fmt.Errorf("%w: wall thickness %.4g leaves no bore (inner diameter <= 0)", ErrInvalidGeometry, t)
		}
		return TorsionProperties{
			Area:          math.Pi * (d*d - di*di) / 4,
			Constant:      math.Pi * (math.Pow(d, 4) - math.Pow(di, 4)) / 32,
			ExtremeRadius: d / 2,
			Desc:          fmt.Sprintf("D=%.4g mm, t=%.4g mm", d, t),
		}, nil

	case Rect:
		b, h := s.Width, s.Height
		if err := requirePositive("rectangle width b", b); err != nil {
			return TorsionProperties{}, err
		}
		if err := requirePositive("rectangle height h", h); err != nil {
			return TorsionProperties{}, err
		}
		// Saint-Venant approximation for a solid rectangle.
		long := math.Max(b, h)
		short := math.Min(b, h)
		beta := short / long
		jt := long * math.Pow(short, 3) * (1.0/3.0 - 0.21*beta*(1-math.Pow(beta, 4)/12))
		return TorsionProperties{
			Area:          b * h,
			Constant:      jt,
			ExtremeRadius: 0.5 * math.Hypot(b, h),
			Desc:          fmt.Sprintf("b=%.4g mm, h=%.4g mm", b, h),
		}, nil

	case RectTube:
		b, h, w := s.Width, s.Height, s.Thickness
		if err := requirePositive("rectangular tube width b", b); err != nil {
			return TorsionProperties{}, err
		}
		if err := requirePositive("rectangular tube height h", h); err != nil {
			return TorsionProperties{}, err
		}
		if err := requirePositive("rectangular tube wall s", w); err != nil {
			return TorsionProperties{}, err
		}
		bi, hi := b-2*w, h-2*w
		if bi <= 0 || hi <= 0 {
			return TorsionProperties{}, fmt.Errorf("%w: wall thickness %.4g leaves no interior (inner dimensions <= 0)", ErrInvalidGeometry, w)
		}
		// Thin-walled closed-section approximation over the midline
		// perimeter: J_t = 4·Am² / Σ(length/thickness).
		bm, hm := b-w, h-w
		am := bm * hm
		sumLoverT := 2 * (bm/w + hm/w)
		return TorsionProperties{
			Area:          b*h - bi*hi,
			Constant:      4 * am * am / sumLoverT,
			ExtremeRadius: 0.5 * math.Hypot(b, h),
			Desc:          fmt.Sprintf("b=%.4g mm, h=%.4g mm, s=%.4g mm", b, h, w),
		}, nil

	case Standard:
		return TorsionProperties{}, fmt.Errorf("%w: torsion accepts round, tube, rectangular and rectangular tube sections only", ErrInvalidGeometry)
	}
	return TorsionProperties{}, fmt.Errorf("%w: unknown section kind %v", ErrInvalidGeometry, s.Kind)
}
