package beam

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCumTrapz_ConstantIntegrand(t *testing.T) {
	x := NewGrid(1000)
	y := make([]float64, len(x))
	for i := range y {
		y[i] = 3
	}

	out := CumTrapz(x, y)

	assert.Zero(t, out[0])
	// Linear integrands are integrated exactly by the trapezoidal rule.
	for i, xi := range x {
		assert.InDelta(t, 3*xi, out[i], 1e-9)
	}
}

func TestCumTrapz_LinearIntegrand(t *testing.T) {
	x := NewGrid(800)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 2 * xi
	}

	out := CumTrapz(x, y)

	for i, xi := range x {
		assert.InDelta(t, xi*xi, out[i], 1e-6)
	}
}

func TestCumTrapz_QuadraticIntegrandConverges(t *testing.T) {
	x := NewGrid(1000)
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = xi * xi
	}

	out := CumTrapz(x, y)

	exact := 1000.0 * 1000.0 * 1000.0 / 3.0
	assert.InEpsilon(t, exact, out[len(out)-1], 1e-4)
}

func TestCumTrapz_UnequalLengthsAndEmpty(t *testing.T) {
	assert.Nil(t, CumTrapz(nil, nil))
	assert.Nil(t, CumTrapz([]float64{1, 2}, nil))

	// The shorter slice wins.
	out := CumTrapz([]float64{0, 1, 2, 3}, []float64{1, 1})
	assert.Len(t, out, 2)
	assert.InDelta(t, 1, out[1], 1e-12)
}

func TestMaxAbs(t *testing.T) {
	assert.Zero(t, MaxAbs(nil))
	assert.Zero(t, MaxAbs([]float64{}))
	assert.Equal(t, 7.5, MaxAbs([]float64{3, -7.5, 2}))
	assert.Equal(t, 4.0, MaxAbs([]float64{4, -4}))
	assert.True(t, math.IsInf(MaxAbs([]float64{1, math.Inf(-1)}), 1))
}
