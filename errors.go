package lutmap

import "errors"

var (
	// ErrInvalidArgument is returned for out of range parameters such as a
	// sample count or cube resolution below 2, or a table of the wrong size.
	ErrInvalidArgument = errors.New("lutmap: invalid argument")

	// ErrInvalidFormat is returned when a map image is not 4096x4096.
	ErrInvalidFormat = errors.New("lutmap: invalid map image")

	// ErrIO wraps failures to open, create, write or rename a file.
	ErrIO = errors.New("lutmap: i/o error")

	// ErrCorruptCache means a cache file is shorter than a full table.
	ErrCorruptCache = errors.New("lutmap: corrupt cache")
)
