package ent_test

import (
	"testing"

	"github.com/acorg/acorgdb/pkg/ent"
	"github.com/gnames/gnfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAntigenGeneSequence(t *testing.T) {
	ag := &ent.Antigen{
		ID: "AG1",
		Genes: []ent.Gene{
			{Gene: "HA", Sequence: "NKTRG"},
			{Gene: "NA", Sequence: "MNPNQK"},
		},
	}

	seq, ok := ag.GeneSequence("NA")
	assert.True(t, ok)
	assert.Equal(t, "MNPNQK", seq)

	_, ok = ag.GeneSequence("PB1")
	assert.False(t, ok)
}

func TestAntigenSubstitutions(t *testing.T) {
	ag := &ent.Antigen{
		ID: "AG1",
		Alterations: []ent.Alteration{
			{Gene: "HA", Substitutions: []string{"K140R", "S155P"}},
			{Gene: "NA"},
		},
	}

	assert.Equal(t, []string{"K140R", "S155P"}, ag.Substitutions("HA"))
	assert.Nil(t, ag.Substitutions("NA"))
	assert.Nil(t, ag.Substitutions("PB1"))
}

func TestAntigenAltParentID(t *testing.T) {
	ag := &ent.Antigen{
		ID:       "AG1",
		ParentID: "RECORD_PARENT",
		Alterations: []ent.Alteration{
			{Gene: "HA", ParentID: "ALT_PARENT"},
			{Gene: "NA"},
		},
	}

	assert.Equal(t, "ALT_PARENT", ag.AltParentID("HA"))
	assert.Equal(t, "", ag.AltParentID("NA"))
	assert.Equal(t, "", ag.AltParentID("PB1"))
}

func TestAntigenDecode(t *testing.T) {
	raw := []byte(`{
	  "id": "CHILD8",
	  "long": "A/DUCK/ALBERTA/35/76-HA-K1D/T6G",
	  "parent_id": "ROOT",
	  "alterations": [
	    {"gene": "HA", "substitutions": ["K1D", "T6G"], "parent_id": "ALT"}
	  ],
	  "genes": [{"gene": "NA", "sequence": "MNPNQK"}]
	}`)

	var ag ent.Antigen
	require.NoError(t, gnfmt.GNjson{}.Decode(raw, &ag))

	assert.Equal(t, "CHILD8", ag.ID)
	assert.Equal(t, "ROOT", ag.ParentID)
	assert.False(t, ag.Wildtype)
	require.Len(t, ag.Alterations, 1)
	assert.Equal(t, "ALT", ag.Alterations[0].ParentID)
	require.Len(t, ag.Genes, 1)
	assert.Equal(t, "MNPNQK", ag.Genes[0].Sequence)
	assert.Empty(t, ag.Dataset, "dataset comes from the loader, not JSON")
}
