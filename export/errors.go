package export

import "errors"

// Common errors
var (
	// ErrAlreadyExists indicates the output file exists and force overwrite was not requested
	ErrAlreadyExists = errors.New("output file already exists")
	// ErrUnsupportedLibrary indicates the library kind has no exporter
	ErrUnsupportedLibrary = errors.New("unsupported library kind")
)
