package convert

import "errors"

// Sentinel errors for conversion operations.
var (
	// ErrUnknownFormat indicates no registered format matches a name or file extension.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrCannotRead indicates the format has no reader for the requested document kind.
	ErrCannotRead = errors.New("format cannot read this document")
	// ErrCannotWrite indicates the format has no writer for the document's kind.
	ErrCannotWrite = errors.New("format cannot write this document")
	// ErrExists indicates the target file exists and overwriting was not allowed.
	ErrExists = errors.New("target file already exists")
	// ErrEmptyDocument indicates a Document holding neither a rocket nor a motor.
	ErrEmptyDocument = errors.New("document is empty")
)
