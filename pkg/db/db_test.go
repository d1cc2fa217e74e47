package db_test

import (
	"testing"

	"github.com/acorg/acorgdb/pkg/db"
	"github.com/acorg/acorgdb/pkg/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() ([]*ent.Antigen, []*ent.Serum, []*ent.Experiment) {
	antigens := []*ent.Antigen{
		{
			ID:    "ROOT",
			Genes: []ent.Gene{{Gene: "HA", Sequence: "NKTRG"}},
		},
		{
			ID:       "CHILD",
			ParentID: "ROOT",
			Alterations: []ent.Alteration{
				{Gene: "HA", Substitutions: []string{"K2T"}},
			},
		},
	}
	sera := []*ent.Serum{
		{ID: "SR1", Species: "FERRET", AntigenID: "ROOT"},
	}
	experiments := []*ent.Experiment{
		{
			ID:    "EXP1",
			Assay: "HI",
			Titers: []ent.Titer{
				{AntigenID: "ROOT", SerumID: "SR1", Titer: "1280"},
			},
		},
	}
	return antigens, sera, experiments
}

func TestNew(t *testing.T) {
	database, err := db.New(testRecords())
	require.NoError(t, err)

	t.Run("lookups", func(t *testing.T) {
		ag, ok := database.Antigen("CHILD")
		require.True(t, ok)
		assert.Equal(t, "ROOT", ag.ParentID)

		sr, ok := database.Serum("SR1")
		require.True(t, ok)
		assert.Equal(t, "FERRET", sr.Species)

		ex, ok := database.Experiment("EXP1")
		require.True(t, ok)
		assert.Equal(t, "HI", ex.Assay)

		_, ok = database.Antigen("GHOST")
		assert.False(t, ok)
	})

	t.Run("iteration keeps load order", func(t *testing.T) {
		ags := database.Antigens()
		require.Len(t, ags, 2)
		assert.Equal(t, "ROOT", ags[0].ID)
		assert.Equal(t, "CHILD", ags[1].ID)
		assert.Len(t, database.Sera(), 1)
		assert.Len(t, database.Experiments(), 1)
	})
}

func TestNewDuplicateID(t *testing.T) {
	antigens := []*ent.Antigen{{ID: "AG1"}, {ID: "AG1"}}
	_, err := db.New(antigens, nil, nil)
	var dupErr *db.DuplicateIDError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "antigens", dupErr.Collection)
	assert.Equal(t, "AG1", dupErr.ID)
	assert.Equal(t, "duplicate ID AG1 in antigens", err.Error())
}

func TestSequence(t *testing.T) {
	database, err := db.New(testRecords())
	require.NoError(t, err)

	seq, err := database.Sequence("CHILD", "HA")
	require.NoError(t, err)
	assert.Equal(t, "NTTRG", seq)

	// derivation is memoized, the second call hits the cache
	seq, err = database.Sequence("CHILD", "HA")
	require.NoError(t, err)
	assert.Equal(t, "NTTRG", seq)
}

func TestSequenceUnknownAntigen(t *testing.T) {
	database, err := db.New(testRecords())
	require.NoError(t, err)

	_, err = database.Sequence("GHOST", "HA")
	var unkErr *db.UnknownRecordError
	require.ErrorAs(t, err, &unkErr)
	assert.Equal(t, "no record GHOST in antigens", err.Error())
}
