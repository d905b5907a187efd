// Package presets provides starter branding documents.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in presets)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// A preset is a complete branding document stored as {name}.json,
// {name}.yaml, {name}.yml or {name}.toml. Extensions are tried in that
// order, so a directory may hold several formats of the same name and the
// first match wins.
//
// # Security
//
// Preset names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within its
// base directory.
package presets
