package presets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed data/*
var data embed.FS

// EmbeddedLoader loads presets compiled into the binary.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load returns a built-in preset by name.
func (e *EmbeddedLoader) Load(name string) (*Preset, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	for _, ext := range extensions {
		filename := name + ext
		content, err := data.ReadFile("data/" + filename)
		if err == nil {
			return &Preset{Name: name, Filename: filename, Data: content}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
}

// Names lists the built-in presets.
func (e *EmbeddedLoader) Names() ([]string, error) {
	entries, err := fs.ReadDir(data, "data")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPresetRead, err)
	}
	var names []string
	for _, entry := range entries {
		if name, ok := presetName(entry.Name()); ok && !entry.IsDir() {
			names = append(names, name)
		}
	}
	return sortedUnique(names), nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
