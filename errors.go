package brandkit

import "errors"

// Sentinel errors for library operations.
var (
	// ErrNotFound reports a required key that is absent: a theme name, the
	// primary text color used as fallback, or the "0" spacing fallback.
	// Optional lookups report absence with a false/empty result instead.
	ErrNotFound = errors.New("not found")

	// Document loading errors.
	ErrDocumentNotFound  = errors.New("document file not found")
	ErrDocumentParse     = errors.New("failed to parse document")
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// Serialization errors.
	ErrUnsupportedValue = errors.New("value cannot be serialized")

	// ErrInvalidColor is the cause recorded in ContrastResult.Error.
	ErrInvalidColor = errors.New("invalid color format")
)
