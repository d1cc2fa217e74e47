package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Record store errors
	DatasetConfigError
	DatasetMissingError
	RecordsReadError
	RecordsDecodeError
	DuplicateRecordError

	// Database errors
	UnknownRecordError
	SequenceError

	// Export errors
	ExportCreateError
	ExportWriteError
)
