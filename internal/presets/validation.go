package presets

import (
	"fmt"
	"strings"
)

// ValidateName checks that a preset name is safe for use as a filename.
// Returns ErrInvalidPresetName if the name is empty or contains path
// separators, dots (which could allow extension manipulation), or NUL.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPresetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidPresetName, name)
	}
	return nil
}
