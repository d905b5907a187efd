package main

import (
	"errors"
	"os"

	"github.com/alnah/go-brandkit"
	"github.com/alnah/go-brandkit/internal/config"
	"github.com/alnah/go-brandkit/internal/fileutil"
	"github.com/alnah/go-brandkit/internal/presets"
)

// Exit codes for brandkit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Command succeeded
	ExitGeneral  = 1 // General/unexpected error, failed contrast audit
	ExitUsage    = 2 // Invalid flags, config, or document
	ExitIO       = 3 // File not found, permission denied
	ExitNotFound = 4 // Theme, color, preset or token missing
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Lookup misses (exit 4)
	if errors.Is(err, brandkit.ErrNotFound) ||
		errors.Is(err, presets.ErrPresetNotFound) ||
		errors.Is(err, ErrColorNotFound) {
		return ExitNotFound
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, brandkit.ErrDocumentNotFound) ||
		errors.Is(err, presets.ErrPresetRead) ||
		errors.Is(err, fileutil.ErrFileExists) ||
		errors.Is(err, fileutil.ErrPathIsDir) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, brandkit.ErrDocumentParse) ||
		errors.Is(err, brandkit.ErrUnsupportedFormat) ||
		errors.Is(err, brandkit.ErrInvalidColor) ||
		errors.Is(err, presets.ErrInvalidPresetName) ||
		errors.Is(err, presets.ErrInvalidBasePath) ||
		errors.Is(err, presets.ErrPathTraversal) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
