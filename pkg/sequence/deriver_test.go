package sequence_test

import (
	"testing"

	"github.com/acorg/acorgdb/pkg/ent"
	"github.com/acorg/acorgdb/pkg/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriverSequence(t *testing.T) {
	parent := &ent.Antigen{
		ID:    "PARENT",
		Genes: []ent.Gene{{Gene: "HA", Sequence: "NKTRG"}},
	}
	child := &ent.Antigen{
		ID:       "CHILD",
		ParentID: "PARENT",
		Alterations: []ent.Alteration{
			{Gene: "HA", Substitutions: []string{"K2T"}},
		},
	}
	d := sequence.NewDeriver(newLookup(parent, child))

	seq, err := d.Sequence(child, "HA")
	require.NoError(t, err)
	assert.Equal(t, "NTTRG", seq)
}

func TestDeriverMemoizes(t *testing.T) {
	parent := &ent.Antigen{
		ID:    "PARENT",
		Genes: []ent.Gene{{Gene: "HA", Sequence: "NKTRG"}},
	}
	child := &ent.Antigen{
		ID:       "CHILD",
		ParentID: "PARENT",
		Alterations: []ent.Alteration{
			{Gene: "HA", Substitutions: []string{"K2T"}},
		},
	}
	l := newLookup(parent, child)
	d := sequence.NewDeriver(l)

	seq, err := d.Sequence(child, "HA")
	require.NoError(t, err)
	assert.Equal(t, "NTTRG", seq)

	// the second call never touches the record store
	delete(l, "PARENT")
	seq, err = d.Sequence(child, "HA")
	require.NoError(t, err)
	assert.Equal(t, "NTTRG", seq)
}

func TestDeriverErrorNotMemoized(t *testing.T) {
	child := &ent.Antigen{ID: "CHILD", ParentID: "PARENT"}
	l := newLookup(child)
	d := sequence.NewDeriver(l)

	_, err := d.Sequence(child, "HA")
	var missErr *sequence.MissingRecordError
	require.ErrorAs(t, err, &missErr)

	// once the dangling parent appears, derivation succeeds
	l["PARENT"] = &ent.Antigen{
		ID:    "PARENT",
		Genes: []ent.Gene{{Gene: "HA", Sequence: "NKTRG"}},
	}
	seq, err := d.Sequence(child, "HA")
	require.NoError(t, err)
	assert.Equal(t, "NKTRG", seq)
}
