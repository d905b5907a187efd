package brandkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-brandkit/internal/jsonutil"
	"github.com/alnah/go-brandkit/internal/tomlutil"
	"github.com/alnah/go-brandkit/internal/tree"
	"github.com/alnah/go-brandkit/internal/yamlutil"
)

// Format identifies the interchange format of a branding document.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Top-level document keys.
const (
	keyThemes          = "themes"
	keyColorPalettes   = "colorPalettes"
	keyTypography      = "typography"
	keySpacing         = "spacing"
	keyLayout          = "layout"
	keyHyperlinks      = "hyperlinks"
	keyNumbering       = "numbering"
	keyImagery         = "imagery"
	keyTopicChronology = "topicChronology"
)

// Document is a parsed branding document. The known top-level subtrees are
// exposed through typed accessors; unknown keys are kept for export.
//
// A Document is treated as immutable once handed to a Resolver.
type Document struct {
	root *Map
}

// Theme is a named bundle of colors. Colors may contain nested mappings,
// such as the role-keyed "text" colors.
type Theme struct {
	Name   string
	Colors *Map
}

// NewDocument wraps an already-built mapping. A nil root yields an empty
// document.
func NewDocument(root *Map) *Document {
	if root == nil {
		root = NewMap()
	}
	return &Document{root: root}
}

// Parse decodes data in the given format. Mapping key order is preserved.
func Parse(data []byte, format Format) (*Document, error) {
	var (
		root tree.Mapping
		err  error
	)
	switch format {
	case FormatJSON:
		root, err = jsonutil.UnmarshalOrdered(data)
	case FormatYAML:
		root, err = yamlutil.UnmarshalOrdered(data)
	case FormatTOML:
		root, err = tomlutil.UnmarshalOrdered(data)
	default:
		return nil, fmt.Errorf("%w: %q (supported: json, yaml, toml)", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	return NewDocument(fromTree(root)), nil
}

// LoadFile reads and parses a document, choosing the format from the file
// extension (.json, .yaml, .yml, .toml).
func LoadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- document path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return nil, fmt.Errorf("reading document: %w", err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: .json, .yaml, .yml, .toml)", ErrUnsupportedFormat, ext)
	}
}

// Root returns the underlying mapping. It is shared, not copied.
func (d *Document) Root() *Map { return d.root }

func (d *Document) Themes() *Map          { return d.root.Child(keyThemes) }
func (d *Document) ColorPalettes() *Map   { return d.root.Child(keyColorPalettes) }
func (d *Document) Typography() *Map      { return d.root.Child(keyTypography) }
func (d *Document) Spacing() *Map         { return d.root.Child(keySpacing) }
func (d *Document) Layout() *Map          { return d.root.Child(keyLayout) }
func (d *Document) Hyperlinks() *Map      { return d.root.Child(keyHyperlinks) }
func (d *Document) Numbering() *Map       { return d.root.Child(keyNumbering) }
func (d *Document) Imagery() *Map         { return d.root.Child(keyImagery) }
func (d *Document) TopicChronology() *Map { return d.root.Child(keyTopicChronology) }

// Theme returns the named theme, or ErrNotFound.
// A theme entry that is not a mapping resolves to a theme without colors.
func (d *Document) Theme(name string) (*Theme, error) {
	v, ok := d.Themes().Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: theme %q", ErrNotFound, name)
	}
	theme := &Theme{Name: name, Colors: NewMap()}
	if body, ok := v.(*Map); ok {
		theme.Colors = body.Child("colors")
	}
	return theme, nil
}

// HasTheme reports whether name is a key of themes.
func (d *Document) HasTheme(name string) bool {
	_, ok := d.Themes().Get(name)
	return ok
}
