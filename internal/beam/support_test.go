package beam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportString(t *testing.T) {
	assert.Equal(t, "pinned", Pinned.String())
	assert.Equal(t, "fixed", Fixed.String())
	assert.Equal(t, "free", Free.String())
	assert.Equal(t, "pinned-fixed", SupportPair{Left: Pinned, Right: Fixed}.String())
}

func TestBendingScheme(t *testing.T) {
	accepted := map[SupportPair]bendingScheme{
		{Left: Pinned, Right: Pinned}: simplySupported,
		{Left: Fixed, Right: Free}:    cantileverLeftFixed,
		{Left: Free, Right: Fixed}:    cantileverRightFixed,
	}
	for pair, want := range accepted {
		got, err := pair.bendingScheme()
		require.NoError(t, err, pair)
		assert.Equal(t, want, got, pair)
	}

	rejected := []SupportPair{
		{Left: Free, Right: Free},
		{Left: Free, Right: Pinned},
		{Left: Pinned, Right: Free},
		{Left: Fixed, Right: Fixed},
		{Left: Fixed, Right: Pinned},
		{Left: Pinned, Right: Fixed},
	}
	for _, pair := range rejected {
		_, err := pair.bendingScheme()
		assert.ErrorIs(t, err, ErrUnsupportedSupports, pair)
	}
}

func TestTorsionScheme(t *testing.T) {
	accepted := map[SupportPair]torsionScheme{
		{Left: Fixed, Right: Free}:  torsionLeftFixed,
		{Left: Free, Right: Fixed}:  torsionRightFixed,
		{Left: Fixed, Right: Fixed}: torsionBothFixed,
	}
	for pair, want := range accepted {
		got, err := pair.torsionScheme()
		require.NoError(t, err, pair)
		assert.Equal(t, want, got, pair)
	}

	rejected := []SupportPair{
		{Left: Free, Right: Free},
		{Left: Pinned, Right: Pinned},
		{Left: Pinned, Right: Fixed},
		{Left: Fixed, Right: Pinned},
		{Left: Pinned, Right: Free},
	}
	for _, pair := range rejected {
		_, err := pair.torsionScheme()
		assert.ErrorIs(t, err, ErrUnsupportedSupports, pair)
	}
}
