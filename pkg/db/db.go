// Package db assembles antigen, serum, and experiment records into a
// read-only in-memory database and exposes lookups plus sequence
// derivation. Records are supplied by a Loader (the flat-file record
// store lives in internal/iorecords) and never change after assembly;
// the only mutable state is the lazily filled sequence cache.
package db

import (
	"github.com/acorg/acorgdb/pkg/ent"
	"github.com/acorg/acorgdb/pkg/sequence"
)

// Loader assembles a Database from an external source of records.
type Loader interface {
	// Load reads all configured datasets and returns the merged
	// database.
	Load() (*Database, error)

	// Datasets lists the datasets available to Load.
	Datasets() ([]Dataset, error)
}

// Dataset describes one named record collection available in the data
// directory.
type Dataset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Database is the in-memory record store. It is immutable once built
// and safe for concurrent readers.
type Database struct {
	antigens    map[string]*ent.Antigen
	sera        map[string]*ent.Serum
	experiments map[string]*ent.Experiment

	// iteration in load order keeps output deterministic
	antigenIDs    []string
	serumIDs      []string
	experimentIDs []string

	deriver *sequence.Deriver
}

// New builds a Database from record slices. Records keep their slice
// order for iteration. A repeated ID within a collection is a
// DuplicateIDError.
func New(
	antigens []*ent.Antigen,
	sera []*ent.Serum,
	experiments []*ent.Experiment,
) (*Database, error) {
	d := &Database{
		antigens:    make(map[string]*ent.Antigen, len(antigens)),
		sera:        make(map[string]*ent.Serum, len(sera)),
		experiments: make(map[string]*ent.Experiment, len(experiments)),
	}
	for _, ag := range antigens {
		if _, ok := d.antigens[ag.ID]; ok {
			return nil, &DuplicateIDError{Collection: "antigens", ID: ag.ID}
		}
		d.antigens[ag.ID] = ag
		d.antigenIDs = append(d.antigenIDs, ag.ID)
	}
	for _, sr := range sera {
		if _, ok := d.sera[sr.ID]; ok {
			return nil, &DuplicateIDError{Collection: "sera", ID: sr.ID}
		}
		d.sera[sr.ID] = sr
		d.serumIDs = append(d.serumIDs, sr.ID)
	}
	for _, ex := range experiments {
		if _, ok := d.experiments[ex.ID]; ok {
			return nil, &DuplicateIDError{
				Collection: "experiments", ID: ex.ID,
			}
		}
		d.experiments[ex.ID] = ex
		d.experimentIDs = append(d.experimentIDs, ex.ID)
	}
	d.deriver = sequence.NewDeriver(d)
	return d, nil
}

// Antigen looks an antigen up by ID.
func (d *Database) Antigen(id string) (*ent.Antigen, bool) {
	ag, ok := d.antigens[id]
	return ag, ok
}

// Serum looks a serum up by ID.
func (d *Database) Serum(id string) (*ent.Serum, bool) {
	sr, ok := d.sera[id]
	return sr, ok
}

// Experiment looks an experiment up by ID.
func (d *Database) Experiment(id string) (*ent.Experiment, bool) {
	ex, ok := d.experiments[id]
	return ex, ok
}

// Antigens returns all antigens in load order.
func (d *Database) Antigens() []*ent.Antigen {
	res := make([]*ent.Antigen, len(d.antigenIDs))
	for i, id := range d.antigenIDs {
		res[i] = d.antigens[id]
	}
	return res
}

// Sera returns all sera in load order.
func (d *Database) Sera() []*ent.Serum {
	res := make([]*ent.Serum, len(d.serumIDs))
	for i, id := range d.serumIDs {
		res[i] = d.sera[id]
	}
	return res
}

// Experiments returns all experiments in load order.
func (d *Database) Experiments() []*ent.Experiment {
	res := make([]*ent.Experiment, len(d.experimentIDs))
	for i, id := range d.experimentIDs {
		res[i] = d.experiments[id]
	}
	return res
}

// Sequence derives the sequence of gene for the antigen with the given
// ID, caching the result. Failures are UnknownRecordError for an
// absent antigen, or the sequence package's typed errors.
func (d *Database) Sequence(antigenID, gene string) (string, error) {
	ag, ok := d.antigens[antigenID]
	if !ok {
		return "", &UnknownRecordError{Collection: "antigens", ID: antigenID}
	}
	return d.deriver.Sequence(ag, gene)
}
