package beam

import (
	"fmt"
	"math"
)

// negligibleStress is the threshold below which a working stress is treated
// as no load at all.
const negligibleStress = 1e-12

// StressCheck compares a working stress against the material's admissible
// limit. The same check serves bending (σ against σ_adm) and torsion
// (τ against τ_adm).
type StressCheck struct {
	Stress       float64 // MPa
	Admissible   float64 // MPa
	Utilization  float64 // percent of the admissible limit
	SafetyFactor float64 // admissible/stress, +Inf under negligible stress
	OK           bool
}

// CheckStress evaluates a working stress against an admissible limit.
// The limit must be positive; it comes from material data, not from loads,
// so a non-positive value is a configuration error.
func CheckStress(stress, admissible float64) (StressCheck, error) {
	if admissible <= 0 {
		return StressCheck{}, fmt.Errorf("admissible stress must be positive, got %.4g MPa", admissible)
	}
	if stress <= negligibleStress {
		return StressCheck{
			Stress:       stress,
			Admissible:   admissible,
			SafetyFactor: math.Inf(1),
			OK:           true,
		}, nil
	}
	return StressCheck{
		Stress:       stress,
		Admissible:   admissible,
		Utilization:  stress / admissible * 100,
		SafetyFactor: admissible / stress,
		OK:           stress <= admissible,
	}, nil
}

// BendingStress converts the extreme bending moment (N·mm) into a normal
// stress via the section modulus W (mm³).
func BendingStress(maxMoment, sectionModulus float64) float64 {
	if maxMoment == 0 {
		return 0
	}
	return maxMoment / sectionModulus
}

// TorsionStress converts the extreme internal torque (N·mm) into a shear
// stress via the extreme fiber radius r (mm) and torsion constant J_t (mm⁴).
func TorsionStress(maxTorque, extremeRadius, torsionConstant float64) float64 {
	if maxTorque == 0 {
		return 0
	}
	return maxTorque * extremeRadius / torsionConstant
}
