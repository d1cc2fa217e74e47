package iorecords

import (
	"fmt"

	"github.com/acorg/acorgdb/pkg/errcode"
	"github.com/gnames/gn"
)

// DatasetConfigError creates an error for when the datasets of a data
// directory cannot be determined.
func DatasetConfigError(path string, err error) error {
	msg := `Cannot read datasets from <em>%s</em>

<em>Possible causes:</em>
  - Data directory does not exist
  - Invalid YAML in datasets.yaml
  - Permission denied

<em>How to fix:</em>
  1. Check the data directory: <em>ls -l %s</em>
  2. Validate datasets.yaml syntax`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.DatasetConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to list datasets: %w", err),
	}
}

// DatasetMissingError creates an error for a requested dataset whose
// directory does not exist.
func DatasetMissingError(name, dir string, err error) error {
	msg := `Dataset <em>%s</em> is not present at %s

<em>How to fix:</em>
  1. Check available datasets: <em>acorgdb datasets</em>
  2. Check the configured data directory`

	vars := []any{name, dir}

	return &gn.Error{
		Code: errcode.DatasetMissingError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("dataset %s not found: %w", name, err),
	}
}

// RecordsReadError creates an error for an unreadable collection file.
func RecordsReadError(path string, err error) error {
	msg := "Cannot read records from <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.RecordsReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read records: %w", err),
	}
}

// RecordsDecodeError creates an error for a collection file that is
// not valid JSON.
func RecordsDecodeError(path string, err error) error {
	msg := `Cannot decode records in <em>%s</em>

The file must contain a JSON array of records.`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.RecordsDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to decode records: %w", err),
	}
}

// DuplicateRecordError wraps a duplicate-ID failure from database
// assembly.
func DuplicateRecordError(err error) error {
	msg := `Loaded datasets share record IDs: %v

<em>How to fix:</em>
  Load fewer datasets, or deduplicate the offending records.`
	vars := []any{err}
	return &gn.Error{
		Code: errcode.DuplicateRecordError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to assemble database: %w", err),
	}
}
