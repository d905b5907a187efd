// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-brandkit/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-brandkit) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-brandkit") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForDocumentFormat returns a hint listing accepted document extensions.
func ForDocumentFormat() string {
	return format("supported extensions: .json, .yaml, .yml, .toml")
}

// ForThemeNotFound returns hints for unknown theme names.
func ForThemeNotFound(available []string) string {
	return forAvailable(available)
}

// ForPresetNotFound returns hints for unknown preset names.
func ForPresetNotFound(available []string) string {
	return forAvailable(available)
}

// ForInvalidColor returns a hint describing the accepted color syntax.
func ForInvalidColor() string {
	return format("colors are six hex digits, e.g. #1A73E8 or 1A73E8")
}

// ForOutputFile returns hints for output file write errors.
func ForOutputFile(exists bool) string {
	if exists {
		return format("use --force to overwrite")
	}
	return format("check parent directory exists and is writable")
}

func forAvailable(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
