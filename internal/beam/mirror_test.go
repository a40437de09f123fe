package beam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMirrorPointLoads(t *testing.T) {
	in := []PointLoad{
		{Magnitude: 500, Position: 100},
		{Magnitude: -200, Position: 750},
	}

	out := MirrorPointLoads(1000, in)

	assert.Equal(t, []PointLoad{
		{Magnitude: 500, Position: 900},
		{Magnitude: -200, Position: 250},
	}, out)
	// Input stays untouched.
	assert.Equal(t, 100.0, in[0].Position)

	assert.Nil(t, MirrorPointLoads(1000, nil))
}

func TestMirrorZonalLoads(t *testing.T) {
	in := []ZonalLoad{{Total: 900, Start: 200, End: 600}}

	out := MirrorZonalLoads(1000, in)

	assert.Equal(t, []ZonalLoad{{Total: 900, Start: 400, End: 800}}, out)
	assert.Equal(t, 200.0, in[0].Start)

	assert.Nil(t, MirrorZonalLoads(1000, nil))
}

func TestMirrorIsAnInvolution(t *testing.T) {
	points := []PointLoad{{Magnitude: 1200, Position: 330}}
	zones := []ZonalLoad{{Total: 450, Start: 50, End: 480}}

	assert.Equal(t, points, MirrorPointLoads(900, MirrorPointLoads(900, points)))
	assert.Equal(t, zones, MirrorZonalLoads(900, MirrorZonalLoads(900, zones)))
}

func TestReversed(t *testing.T) {
	v := []float64{1, 2, 3, 4}

	assert.Equal(t, []float64{4, 3, 2, 1}, Reversed(v))
	assert.Equal(t, []float64{1, 2, 3, 4}, v)
	assert.Equal(t, []float64{5}, Reversed([]float64{5}))
	assert.Empty(t, Reversed(nil))
}
