// Package iorecords is the flat-file record store: it reads antigen,
// serum, and experiment records from JSON files in the configured data
// directory and assembles them into the in-memory database. This is an
// impure package that handles file system operations.
package iorecords

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/acorg/acorgdb/pkg/config"
	"github.com/acorg/acorgdb/pkg/db"
	"github.com/acorg/acorgdb/pkg/ent"
	"github.com/gnames/gnfmt"
	"golang.org/x/sync/errgroup"
)

const (
	antigensFile    = "antigens.json"
	seraFile        = "sera.json"
	experimentsFile = "experiments.json"
)

type iorecords struct {
	cfg *config.Config
}

// New returns a Loader reading datasets from cfg.Data.Dir.
func New(cfg *config.Config) db.Loader {
	res := iorecords{cfg: cfg}
	return &res
}

// Datasets lists the datasets available in the data directory, from
// datasets.yaml when present, otherwise from its subdirectories.
func (r *iorecords) Datasets() ([]db.Dataset, error) {
	return listDatasets(r.cfg.Data.Dir)
}

// Load reads the configured datasets and merges them into a Database.
// A dataset's three collection files are read concurrently; a missing
// file is an empty collection.
func (r *iorecords) Load() (*db.Database, error) {
	names := r.cfg.Data.Datasets
	if len(names) == 0 {
		datasets, err := listDatasets(r.cfg.Data.Dir)
		if err != nil {
			return nil, err
		}
		for _, ds := range datasets {
			names = append(names, ds.Name)
		}
	}

	var antigens []*ent.Antigen
	var sera []*ent.Serum
	var experiments []*ent.Experiment

	for _, name := range names {
		dir := filepath.Join(r.cfg.Data.Dir, name)
		if _, err := os.Stat(dir); err != nil {
			return nil, DatasetMissingError(name, dir, err)
		}

		var ags []*ent.Antigen
		var srs []*ent.Serum
		var exps []*ent.Experiment

		var g errgroup.Group
		g.Go(func() error {
			return readRecords(filepath.Join(dir, antigensFile), &ags)
		})
		g.Go(func() error {
			return readRecords(filepath.Join(dir, seraFile), &srs)
		})
		g.Go(func() error {
			return readRecords(filepath.Join(dir, experimentsFile), &exps)
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, ag := range ags {
			ag.Dataset = name
		}
		for _, sr := range srs {
			sr.Dataset = name
		}
		for _, ex := range exps {
			ex.Dataset = name
		}

		slog.Info("Loaded dataset",
			"dataset", name,
			"antigens", len(ags),
			"sera", len(srs),
			"experiments", len(exps),
		)

		antigens = append(antigens, ags...)
		sera = append(sera, srs...)
		experiments = append(experiments, exps...)
	}

	res, err := db.New(antigens, sera, experiments)
	if err != nil {
		return nil, DuplicateRecordError(err)
	}
	return res, nil
}

// readRecords decodes one collection file into out. A missing file
// leaves out empty.
func readRecords[T any](path string, out *[]T) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return RecordsReadError(path, err)
	}
	enc := gnfmt.GNjson{}
	if err := enc.Decode(data, out); err != nil {
		return RecordsDecodeError(path, err)
	}
	return nil
}
