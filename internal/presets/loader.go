package presets

import (
	"slices"
	"strings"
)

// DefaultPresetName is the built-in preset used by "brandkit init".
const DefaultPresetName = "default"

// extensions lists accepted preset file extensions in lookup order.
var extensions = []string{".json", ".yaml", ".yml", ".toml"}

// Preset is a raw branding document and the name of the file it came from.
// Filename carries the extension, which selects the parser.
type Preset struct {
	Name     string
	Filename string
	Data     []byte
}

// Loader defines the contract for loading presets.
type Loader interface {
	// Load returns the preset with the given name (no extension).
	// Returns ErrPresetNotFound if it doesn't exist.
	// Returns ErrInvalidPresetName if the name contains invalid characters.
	Load(name string) (*Preset, error)

	// Names lists available preset names, sorted and without duplicates.
	Names() ([]string, error)
}

// presetName strips a known extension from filename.
func presetName(filename string) (string, bool) {
	for _, ext := range extensions {
		if name, ok := strings.CutSuffix(filename, ext); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

func sortedUnique(names []string) []string {
	slices.Sort(names)
	return slices.Compact(names)
}
