package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundBending(t *testing.T) {
	props, err := NewRound(40).Bending()
	require.NoError(t, err)

	assert.InEpsilon(t, 1256.637, props.Area, 1e-4)
	assert.InEpsilon(t, 125663.7, props.Inertia, 1e-4)
	assert.InEpsilon(t, 6283.185, props.Modulus, 1e-4)
	assert.NotEmpty(t, props.Desc)
}

func TestTubeBending(t *testing.T) {
	props, err := NewTube(60, 5).Bending()
	require.NoError(t, err)

	assert.InEpsilon(t, math.Pi*(3600-2500)/4, props.Area, 1e-9)
	assert.InEpsilon(t, 329376.35, props.Inertia, 1e-4)
	assert.InEpsilon(t, 329376.35/30, props.Modulus, 1e-4)
}

func TestRectBending(t *testing.T) {
	props, err := NewRect(30, 60).Bending()
	require.NoError(t, err)

	assert.InEpsilon(t, 1800, props.Area, 1e-12)
	assert.InEpsilon(t, 540000, props.Inertia, 1e-12)
	assert.InEpsilon(t, 18000, props.Modulus, 1e-12)
}

func TestRectTubeBending(t *testing.T) {
	props, err := NewRectTube(40, 60, 5).Bending()
	require.NoError(t, err)

	assert.InEpsilon(t, 900, props.Area, 1e-12)
	assert.InEpsilon(t, 407500, props.Inertia, 1e-12)
	assert.InEpsilon(t, 407500.0/30, props.Modulus, 1e-9)
}

func TestStandardBending(t *testing.T) {
	props, err := NewStandard("IPE100", 1030, 17.1e6, 34.2e3, "IPE 100 profile").Bending()
	require.NoError(t, err)

	assert.Equal(t, 1030.0, props.Area)
	assert.Equal(t, 17.1e6, props.Inertia)
	assert.Equal(t, 34.2e3, props.Modulus)
	assert.Equal(t, "IPE 100 profile", props.Desc)

	_, err = NewStandard("BAD", 0, 17.1e6, 34.2e3, "").Bending()
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestRoundTorsion(t *testing.T) {
	props, err := NewRound(40).Torsion()
	require.NoError(t, err)

	assert.InEpsilon(t, math.Pi*math.Pow(40, 4)/32, props.Constant, 1e-12)
	assert.InEpsilon(t, 20, props.ExtremeRadius, 1e-12)
}

func TestTubeTorsion(t *testing.T) {
	props, err := NewTube(60, 5).Torsion()
	require.NoError(t, err)

	assert.InEpsilon(t, math.Pi*(math.Pow(60, 4)-math.Pow(50, 4))/32, props.Constant, 1e-12)
	assert.InEpsilon(t, 30, props.ExtremeRadius, 1e-12)
}

func TestRectTorsion(t *testing.T) {
	props, err := NewRect(30, 60).Torsion()
	require.NoError(t, err)

	// β = 0.5 → J_t = 60·30³·(1/3 − 0.105·(1 − 0.0625/12)).
	assert.InEpsilon(t, 370786, props.Constant, 1e-4)
	assert.InEpsilon(t, 0.5*math.Hypot(30, 60), props.ExtremeRadius, 1e-12)
}

func TestRectTorsionIsOrientationInvariant(t *testing.T) {
	tall, err := NewRect(30, 60).Torsion()
	require.NoError(t, err)
	wide, err := NewRect(60, 30).Torsion()
	require.NoError(t, err)

	assert.InEpsilon(t, tall.Constant, wide.Constant, 1e-12)
	assert.InEpsilon(t, tall.ExtremeRadius, wide.ExtremeRadius, 1e-12)
}

func TestRectTubeTorsion(t *testing.T) {
	props, err := NewRectTube(40, 60, 5).Torsion()
	require.NoError(t, err)

	// Midline 35×55, Σ(l/t) = 2·(7+11) = 36 → J_t = 4·1925²/36.
	assert.InEpsilon(t, 411736.1, props.Constant, 1e-4)
	assert.InEpsilon(t, 0.5*math.Hypot(40, 60), props.ExtremeRadius, 1e-12)
}

func TestBendingRejectsBadGeometry(t *testing.T) {
	cases := []Section{
		NewRound(0),
		NewRound(-10),
		NewTube(0, 5),
		NewTube(60, 0),
		NewTube(60, 30), // wall swallows the bore
		NewRect(0, 60),
		NewRect(30, 0),
		NewRectTube(40, 60, 0),
		NewRectTube(40, 60, 20), // wall swallows the interior
	}
	for _, s := range cases {
		_, err := s.Bending()
		assert.ErrorIs(t, err, ErrInvalidGeometry, "%+v", s)
	}
}

func TestTorsionRejectsBadGeometry(t *testing.T) {
	cases := []Section{
		NewRound(0),
		NewTube(60, 30),
		NewRect(-30, 60),
		NewRectTube(40, 60, 25),
	}
	for _, s := range cases {
		_, err := s.Torsion()
		assert.ErrorIs(t, err, ErrInvalidGeometry, "%+v", s)
	}
}

func TestTorsionRejectsStandardProfiles(t *testing.T) {
	_, err := NewStandard("IPE100", 1030, 17.1e6, 34.2e3, "").Torsion()
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "round", Round.String())
	assert.Equal(t, "tube", Tube.String())
	assert.Equal(t, "rectangular", Rect.String())
	assert.Equal(t, "rectangular tube", RectTube.String())
	assert.Equal(t, "standard profile", Standard.String())
}
