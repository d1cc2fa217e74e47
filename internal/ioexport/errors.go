package ioexport

import (
	"fmt"

	"github.com/acorg/acorgdb/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateError creates an error for when the export file cannot be
// created or its schema cannot be set up.
func CreateError(path string, err error) error {
	msg := `Cannot create export file <em>%s</em>

<em>Possible causes:</em>
  - Directory does not exist
  - File already holds a database
  - Permission denied`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ExportCreateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to create export: %w", err),
	}
}

// WriteError creates an error for a failure while writing records to
// the export file.
func WriteError(path string, err error) error {
	msg := "Cannot write records to <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to write export: %w", err),
	}
}
