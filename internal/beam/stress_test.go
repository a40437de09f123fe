package beam

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStress_WithinLimit(t *testing.T) {
	check, err := CheckStress(80, 160)
	require.NoError(t, err)

	assert.True(t, check.OK)
	assert.InDelta(t, 50, check.Utilization, 1e-12)
	assert.InDelta(t, 2, check.SafetyFactor, 1e-12)
}

func TestCheckStress_OverLimit(t *testing.T) {
	check, err := CheckStress(200, 160)
	require.NoError(t, err)

	assert.False(t, check.OK)
	assert.InDelta(t, 125, check.Utilization, 1e-12)
	assert.InDelta(t, 0.8, check.SafetyFactor, 1e-12)
}

func TestCheckStress_AtTheLimitPasses(t *testing.T) {
	check, err := CheckStress(160, 160)
	require.NoError(t, err)

	assert.True(t, check.OK)
	assert.InDelta(t, 100, check.Utilization, 1e-12)
}

func TestCheckStress_NegligibleStressGivesInfiniteSafety(t *testing.T) {
	check, err := CheckStress(0, 160)
	require.NoError(t, err)

	assert.True(t, check.OK)
	assert.Zero(t, check.Utilization)
	assert.True(t, math.IsInf(check.SafetyFactor, 1))
}

func TestCheckStress_RejectsNonPositiveAdmissible(t *testing.T) {
	_, err := CheckStress(50, 0)
	assert.Error(t, err)

	_, err = CheckStress(50, -160)
	assert.Error(t, err)
}

func TestBendingStress(t *testing.T) {
	// σ = M/W for a 500 kN·mm moment on W = 6283.19 mm³.
	assert.InEpsilon(t, 79.577, BendingStress(500000, 6283.19), 1e-4)
	assert.Zero(t, BendingStress(0, 6283.19))
}

func TestTorsionStress(t *testing.T) {
	// τ = T·r/J_t for a round bar: r = d/2, J_t = πd⁴/32.
	d := 40.0
	j := math.Pi * d * d * d * d / 32
	assert.InEpsilon(t, 60000*(d/2)/j, TorsionStress(60000, d/2, j), 1e-12)
	assert.Zero(t, TorsionStress(0, d/2, j))
}
