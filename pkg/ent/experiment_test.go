package ent_test

import (
	"testing"

	"github.com/acorg/acorgdb/pkg/ent"
	"github.com/stretchr/testify/assert"
)

func TestTitersWide(t *testing.T) {
	exp := &ent.Experiment{
		ID:         "EXP1",
		AntigenIDs: []string{"AG1", "AG2"},
		SerumIDs:   []string{"SR1", "SR2"},
		Titers: []ent.Titer{
			{AntigenID: "AG1", SerumID: "SR1", Titer: "1280"},
			{AntigenID: "AG1", SerumID: "SR2", Titer: "<10"},
			{AntigenID: "AG2", SerumID: "SR2", Titer: "640"},
		},
	}

	want := [][]string{
		{"antigen", "SR1", "SR2"},
		{"AG1", "1280", "<10"},
		{"AG2", "*", "640"},
	}
	assert.Equal(t, want, exp.TitersWide())
}

func TestTitersWideAppearanceOrder(t *testing.T) {
	// without explicit ID lists, rows and columns follow first
	// appearance in the titer list
	exp := &ent.Experiment{
		ID: "EXP1",
		Titers: []ent.Titer{
			{AntigenID: "AG2", SerumID: "SR2", Titer: "640"},
			{AntigenID: "AG1", SerumID: "SR1", Titer: "1280"},
			{AntigenID: "AG2", SerumID: "SR1", Titer: "320"},
		},
	}

	want := [][]string{
		{"antigen", "SR2", "SR1"},
		{"AG2", "640", "320"},
		{"AG1", "*", "1280"},
	}
	assert.Equal(t, want, exp.TitersWide())
}

func TestTitersWideEmpty(t *testing.T) {
	exp := &ent.Experiment{ID: "EXP1"}
	assert.Equal(t, [][]string{{"antigen"}}, exp.TitersWide())
}
