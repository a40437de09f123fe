package beam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoadModel_RejectsNonPositiveLength(t *testing.T) {
	_, err := NewLoadModel(0, 1000, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidLoad)

	_, err = NewLoadModel(-500, 0, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidLoad)
}

func TestNewLoadModel_RejectsPointOutsideSpan(t *testing.T) {
	_, err := NewLoadModel(1000, 0, []PointLoad{{Magnitude: 500, Position: 1000.5}}, nil)
	assert.ErrorIs(t, err, ErrInvalidLoad)

	_, err = NewLoadModel(1000, 0, []PointLoad{{Magnitude: 500, Position: -1}}, nil)
	assert.ErrorIs(t, err, ErrInvalidLoad)
}

func TestNewLoadModel_RejectsBadZones(t *testing.T) {
	cases := []ZonalLoad{
		{Total: 100, Start: -10, End: 200},
		{Total: 100, Start: 900, End: 1100},
		{Total: 100, Start: 600, End: 600},
		{Total: 100, Start: 700, End: 300},
	}
	for _, z := range cases {
		_, err := NewLoadModel(1000, 0, nil, []ZonalLoad{z})
		assert.ErrorIs(t, err, ErrInvalidLoad, "zone [%g, %g]", z.Start, z.End)
	}
}

func TestNewLoadModel_DropsZeroMagnitudes(t *testing.T) {
	m, err := NewLoadModel(1000, 0,
		[]PointLoad{{Magnitude: 0, Position: 200}, {Magnitude: 800, Position: 600}},
		[]ZonalLoad{{Total: 0, Start: 100, End: 300}})
	require.NoError(t, err)

	assert.Len(t, m.Points(), 1)
	assert.Empty(t, m.Zones())
	assert.Equal(t, 800.0, m.TotalPoint())
	assert.Zero(t, m.TotalZonal())
}

func TestLoadModel_IntensityAt(t *testing.T) {
	m, err := NewLoadModel(1000, 2000, nil,
		[]ZonalLoad{{Total: 600, Start: 200, End: 500}})
	require.NoError(t, err)

	base := 2000.0 / 1000.0
	rate := 600.0 / 300.0

	assert.InDelta(t, base, m.IntensityAt(100), 1e-12)
	assert.InDelta(t, base+rate, m.IntensityAt(350), 1e-12)
	assert.InDelta(t, base, m.IntensityAt(700), 1e-12)

	// Zone boundaries count as covered on both ends.
	assert.InDelta(t, base+rate, m.IntensityAt(200), 1e-12)
	assert.InDelta(t, base+rate, m.IntensityAt(500), 1e-12)
}

func TestLoadModel_OverlappingZonesAdd(t *testing.T) {
	m, err := NewLoadModel(1000, 0, nil, []ZonalLoad{
		{Total: 400, Start: 100, End: 500},
		{Total: 300, Start: 300, End: 900},
	})
	require.NoError(t, err)

	assert.InDelta(t, 400.0/400.0, m.IntensityAt(200), 1e-12)
	assert.InDelta(t, 400.0/400.0+300.0/600.0, m.IntensityAt(400), 1e-12)
	assert.InDelta(t, 300.0/600.0, m.IntensityAt(700), 1e-12)
	assert.Equal(t, 700.0, m.TotalZonal())
}

func TestLoadModel_IsEmpty(t *testing.T) {
	empty, err := NewLoadModel(1000, 0, nil, nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	// Loads that validate to nothing still count as empty.
	zeroed, err := NewLoadModel(1000, 0, []PointLoad{{Magnitude: 0, Position: 500}}, nil)
	require.NoError(t, err)
	assert.True(t, zeroed.IsEmpty())

	loaded, err := NewLoadModel(1000, 1500, nil, nil)
	require.NoError(t, err)
	assert.False(t, loaded.IsEmpty())
	assert.InDelta(t, 1.5, loaded.BaseRate(), 1e-12)
}
