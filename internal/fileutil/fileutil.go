// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrPathEmpty    = errors.New("path cannot be empty")
	ErrPathIsDir    = errors.New("path is a directory")
	ErrFileExists   = errors.New("file already exists")
	ErrPathNullByte = errors.New("path contains null byte")
)

// WriteOptions controls WriteFileAtomic.
type WriteOptions struct {
	Perm      os.FileMode // Zero means 0o644
	Overwrite bool        // Replace an existing file
}

// WriteFileAtomic writes data to a temporary file in the target directory,
// then renames it over path. Readers never observe a partial file.
func WriteFileAtomic(path string, data []byte, opts WriteOptions) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%w: %s", ErrPathIsDir, path)
		}
		if !opts.Overwrite {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
	}

	perm := opts.Perm
	if perm == 0 {
		perm = 0o644
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmpFile, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ValidatePath rejects empty paths and paths with null bytes.
func ValidatePath(path string) error {
	if path == "" {
		return ErrPathEmpty
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrPathNullByte
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "brandkit" -> false (name)
//   - "./brand.yaml" -> true (relative path)
//   - "../shared/brand.json" -> true (parent path)
//   - "/absolute/brand.toml" -> true (absolute)
//   - "C:\brand\tokens.json" -> true (Windows)
//   - "house-style" -> false (hyphenated name)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
