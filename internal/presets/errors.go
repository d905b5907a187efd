package presets

import "errors"

// Sentinel errors for preset operations.
var (
	// ErrPresetNotFound indicates the requested preset does not exist.
	ErrPresetNotFound = errors.New("preset not found")

	// ErrInvalidPresetName indicates the name contains path separators,
	// dots or other characters unsafe in a filename.
	ErrInvalidPresetName = errors.New("invalid preset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrPresetRead indicates an I/O error occurred while reading a preset file.
	ErrPresetRead = errors.New("failed to read preset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
