package presets

import "errors"

// Resolver combines custom and embedded loaders with fallback logic.
// When a custom directory is configured, it is tried first and the embedded
// presets fill in names it does not have.
type Resolver struct {
	custom   Loader // nil if no custom path configured
	embedded Loader
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only embedded presets are used.
// Returns an error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}
	return resolver, nil
}

// Load returns the custom preset when present, else the embedded one.
// Only ErrPresetNotFound falls back; validation and I/O errors do not.
func (r *Resolver) Load(name string) (*Preset, error) {
	if r.custom == nil {
		return r.embedded.Load(name)
	}

	preset, err := r.custom.Load(name)
	if err == nil {
		return preset, nil
	}
	if !errors.Is(err, ErrPresetNotFound) {
		return nil, err
	}
	return r.embedded.Load(name)
}

// Names lists presets from both loaders.
func (r *Resolver) Names() ([]string, error) {
	names, err := r.embedded.Names()
	if err != nil {
		return nil, err
	}
	if r.custom != nil {
		custom, err := r.custom.Names()
		if err != nil {
			return nil, err
		}
		names = append(names, custom...)
	}
	return sortedUnique(names), nil
}

// HasCustomLoader returns true if a custom preset directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
