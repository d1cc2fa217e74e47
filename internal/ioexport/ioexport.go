// Package ioexport writes the raw records of a loaded database into a
// SQLite file for ad-hoc SQL queries. Only recorded data is exported;
// derived sequences are never persisted.
package ioexport

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/acorg/acorgdb/pkg/db"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

const schema = `
CREATE TABLE meta (
  export_id   TEXT NOT NULL,
  exported_at TEXT NOT NULL
);
CREATE TABLE antigens (
  uuid      TEXT NOT NULL,
  dataset   TEXT NOT NULL,
  id        TEXT PRIMARY KEY,
  long      TEXT,
  parent_id TEXT,
  wildtype  INTEGER NOT NULL
);
CREATE TABLE alterations (
  antigen_id    TEXT NOT NULL REFERENCES antigens (id),
  gene          TEXT NOT NULL,
  substitutions TEXT,
  parent_id     TEXT
);
CREATE TABLE genes (
  antigen_id TEXT NOT NULL REFERENCES antigens (id),
  gene       TEXT NOT NULL,
  sequence   TEXT NOT NULL
);
CREATE TABLE sera (
  uuid       TEXT NOT NULL,
  dataset    TEXT NOT NULL,
  id         TEXT PRIMARY KEY,
  long       TEXT,
  species    TEXT,
  antigen_id TEXT
);
CREATE TABLE experiments (
  uuid    TEXT NOT NULL,
  dataset TEXT NOT NULL,
  id      TEXT PRIMARY KEY,
  name    TEXT,
  assay   TEXT
);
CREATE TABLE titers (
  experiment_id TEXT NOT NULL REFERENCES experiments (id),
  antigen_id    TEXT NOT NULL,
  serum_id      TEXT NOT NULL,
  titer         TEXT NOT NULL
);
`

// Export writes the database's records to a new SQLite file at path.
// The meta table carries a random export run ID; each record gets a
// deterministic UUID v5 of "<dataset>/<id>" so exports of the same
// data stay comparable.
func Export(ctx context.Context, database *db.Database, path string) error {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return CreateError(path, err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return CreateError(path, err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return WriteError(path, err)
	}
	defer tx.Rollback()

	exportID := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO meta (export_id, exported_at) VALUES (?, ?)",
		exportID, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return WriteError(path, err)
	}

	if err := insertAntigens(ctx, tx, database); err != nil {
		return WriteError(path, err)
	}
	if err := insertSera(ctx, tx, database); err != nil {
		return WriteError(path, err)
	}
	if err := insertExperiments(ctx, tx, database); err != nil {
		return WriteError(path, err)
	}

	if err := tx.Commit(); err != nil {
		return WriteError(path, err)
	}

	slog.Info("Exported database",
		"path", path,
		"export_id", exportID,
		"antigens", len(database.Antigens()),
		"sera", len(database.Sera()),
		"experiments", len(database.Experiments()),
	)
	return nil
}

// recordUUID derives a stable UUID for a record from its dataset and
// ID.
func recordUUID(dataset, id string) string {
	return gnuuid.New(dataset + "/" + id).String()
}

func insertAntigens(ctx context.Context, tx *sql.Tx, database *db.Database) error {
	agStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO antigens (uuid, dataset, id, long, parent_id, wildtype)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer agStmt.Close()

	altStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO alterations (antigen_id, gene, substitutions, parent_id)
		 VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer altStmt.Close()

	geneStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO genes (antigen_id, gene, sequence) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer geneStmt.Close()

	for _, ag := range database.Antigens() {
		_, err := agStmt.ExecContext(ctx,
			recordUUID(ag.Dataset, ag.ID), ag.Dataset, ag.ID,
			ag.Long, ag.ParentID, ag.Wildtype,
		)
		if err != nil {
			return err
		}
		for _, alt := range ag.Alterations {
			_, err := altStmt.ExecContext(ctx,
				ag.ID, alt.Gene,
				strings.Join(alt.Substitutions, "/"), alt.ParentID,
			)
			if err != nil {
				return err
			}
		}
		for _, g := range ag.Genes {
			if _, err := geneStmt.ExecContext(ctx, ag.ID, g.Gene, g.Sequence); err != nil {
				return err
			}
		}
	}
	return nil
}

func insertSera(ctx context.Context, tx *sql.Tx, database *db.Database) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sera (uuid, dataset, id, long, species, antigen_id)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, sr := range database.Sera() {
		_, err := stmt.ExecContext(ctx,
			recordUUID(sr.Dataset, sr.ID), sr.Dataset, sr.ID,
			sr.Long, sr.Species, sr.AntigenID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertExperiments(ctx context.Context, tx *sql.Tx, database *db.Database) error {
	expStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO experiments (uuid, dataset, id, name, assay)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer expStmt.Close()

	titerStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO titers (experiment_id, antigen_id, serum_id, titer)
		 VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer titerStmt.Close()

	for _, ex := range database.Experiments() {
		_, err := expStmt.ExecContext(ctx,
			recordUUID(ex.Dataset, ex.ID), ex.Dataset, ex.ID,
			ex.Name, ex.Assay,
		)
		if err != nil {
			return err
		}
		for _, t := range ex.Titers {
			_, err := titerStmt.ExecContext(ctx,
				ex.ID, t.AntigenID, t.SerumID, t.Titer,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
