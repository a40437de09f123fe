package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_LoadsEmbeddedTables(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	assert.Len(t, store.Materials(), 13)
	assert.Len(t, store.Profiles(), 5)
}

func TestStore_MaterialLookup(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	m, err := store.Material("S235JR")
	require.NoError(t, err)
	assert.Equal(t, 210000.0, m.ElasticModulus)
	assert.Equal(t, 81000.0, m.ShearModulus)
	assert.Equal(t, 160.0, m.AdmissibleBending)
	assert.Equal(t, 95.0, m.AdmissibleShear)

	// Codes match regardless of case.
	lower, err := store.Material("s235jr")
	require.NoError(t, err)
	assert.Equal(t, m, lower)

	_, err = store.Material("UNOBTAINIUM")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ProfileLookup(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	p, err := store.Profile("IPE100")
	require.NoError(t, err)
	assert.Equal(t, 100.0, p.Height)
	assert.Equal(t, 17.1e6, p.Inertia)
	assert.Positive(t, p.Area)
	assert.Positive(t, p.Modulus)

	mixed, err := store.Profile("ipe100")
	require.NoError(t, err)
	assert.Equal(t, p, mixed)

	_, err = store.Profile("HEB900")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_EveryMaterialIsComplete(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	for _, m := range store.Materials() {
		assert.NotEmpty(t, m.Code)
		assert.Positive(t, m.ElasticModulus, m.Code)
		assert.Positive(t, m.ShearModulus, m.Code)
		assert.Positive(t, m.AdmissibleBending, m.Code)
		assert.Positive(t, m.AdmissibleShear, m.Code)
	}
}
