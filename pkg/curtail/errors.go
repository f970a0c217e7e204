package curtail

import "errors"

// Errors returned by this package. They are wrapped with the underlying
// cause and can be checked with errors.Is.
var (
	// ErrFileOpen is returned when the target file cannot be opened or created.
	ErrFileOpen = errors.New("curtail: open log file")

	// ErrBlockSizeQuery is returned when the filesystem block size cannot be determined.
	ErrBlockSizeQuery = errors.New("curtail: query block size")

	// ErrCollapseFailed is returned when the head of the file could not be
	// removed. The pending chunk is not written.
	ErrCollapseFailed = errors.New("curtail: collapse range")

	// ErrWrite is returned on a short or failed write.
	ErrWrite = errors.New("curtail: write")

	// ErrInvalidConfig is returned for a non-positive block size,
	// a negative capacity or an unknown strategy.
	ErrInvalidConfig = errors.New("curtail: invalid configuration")

	// ErrUnsupported is returned when the collapse strategy is not
	// available on this platform.
	ErrUnsupported = errors.New("curtail: unsupported on this platform")
)
