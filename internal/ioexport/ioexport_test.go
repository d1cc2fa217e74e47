package ioexport_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/acorg/acorgdb/internal/ioexport"
	"github.com/acorg/acorgdb/pkg/db"
	"github.com/acorg/acorgdb/pkg/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func testDatabase(t *testing.T) *db.Database {
	t.Helper()
	antigens := []*ent.Antigen{
		{
			ID:      "ROOT",
			Dataset: "h5",
			Genes:   []ent.Gene{{Gene: "HA", Sequence: "NKTRG"}},
		},
		{
			ID:       "CHILD",
			Dataset:  "h5",
			ParentID: "ROOT",
			Alterations: []ent.Alteration{
				{Gene: "HA", Substitutions: []string{"K2T", "G5A"}},
			},
		},
	}
	sera := []*ent.Serum{
		{ID: "SR1", Dataset: "h5", Species: "FERRET", AntigenID: "ROOT"},
	}
	experiments := []*ent.Experiment{
		{
			ID:      "EXP1",
			Dataset: "h5",
			Assay:   "HI",
			Titers: []ent.Titer{
				{AntigenID: "ROOT", SerumID: "SR1", Titer: "1280"},
				{AntigenID: "CHILD", SerumID: "SR1", Titer: "<10"},
			},
		},
	}
	database, err := db.New(antigens, sera, experiments)
	require.NoError(t, err)
	return database
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acorg.sqlite")
	require.NoError(t,
		ioexport.Export(context.Background(), testDatabase(t), path))

	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer conn.Close()

	counts := map[string]int{
		"meta":        1,
		"antigens":    2,
		"alterations": 1,
		"genes":       1,
		"sera":        1,
		"experiments": 1,
		"titers":      2,
	}
	for table, want := range counts {
		var got int
		err := conn.QueryRow("SELECT count(*) FROM " + table).Scan(&got)
		require.NoError(t, err, table)
		assert.Equal(t, want, got, table)
	}

	var subs string
	err = conn.QueryRow(
		"SELECT substitutions FROM alterations WHERE antigen_id = ?",
		"CHILD",
	).Scan(&subs)
	require.NoError(t, err)
	assert.Equal(t, "K2T/G5A", subs)

	var agUUID string
	err = conn.QueryRow(
		"SELECT uuid FROM antigens WHERE id = ?", "ROOT",
	).Scan(&agUUID)
	require.NoError(t, err)
	assert.NotEmpty(t, agUUID)
}

func TestExportStableUUIDs(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "one.sqlite"),
		filepath.Join(dir, "two.sqlite"),
	}

	uuids := make([]string, 0, 2)
	for _, path := range paths {
		require.NoError(t,
			ioexport.Export(context.Background(), testDatabase(t), path))

		conn, err := sql.Open("sqlite", path)
		require.NoError(t, err)

		var agUUID string
		err = conn.QueryRow(
			"SELECT uuid FROM antigens WHERE id = ?", "ROOT",
		).Scan(&agUUID)
		require.NoError(t, err)
		require.NoError(t, conn.Close())
		uuids = append(uuids, agUUID)
	}

	assert.Equal(t, uuids[0], uuids[1],
		"record UUIDs derive from dataset and ID")
}
