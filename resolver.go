package brandkit

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Defaults applied when an optional argument is left empty.
const (
	DefaultTheme          = "light"
	DefaultTextRole       = "primary"
	DefaultFontFamily     = "primary"
	DefaultContainer      = "xl"
	DefaultLinkState      = "style"
	DefaultImageryVariant = "standard"
	DefaultShade          = 2
)

// spacingFallback is the scale step used when a requested step is missing.
const spacingFallback = "0"

// Resolver answers named lookups over a Document and tracks the active
// theme.
//
// Every theme-dependent method takes a theme name; an empty name means the
// active theme. The active theme is guarded by a lock, so a Resolver may be
// shared, but callers that share one across requests should pass explicit
// theme names rather than calling SetTheme.
type Resolver struct {
	doc *Document

	mu     sync.RWMutex
	active string
}

// NewResolver creates a resolver over doc with "light" as the active theme.
// The document is not validated; a missing theme surfaces on first lookup.
func NewResolver(doc *Document) *Resolver {
	if doc == nil {
		doc = NewDocument(nil)
	}
	return &Resolver{doc: doc, active: DefaultTheme}
}

// Document returns the underlying document. It is shared, not copied;
// mutating it while the resolver is in use is undefined.
func (r *Resolver) Document() *Document { return r.doc }

// ActiveTheme returns the name used when a theme argument is empty.
func (r *Resolver) ActiveTheme() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// SetTheme makes name the active theme. The active theme is left unchanged
// when name is not a key of themes.
func (r *Resolver) SetTheme(name string) error {
	if !r.doc.HasTheme(name) {
		return fmt.Errorf("%w: theme %q", ErrNotFound, name)
	}
	r.mu.Lock()
	r.active = name
	r.mu.Unlock()
	return nil
}

// Theme returns the named theme, or the active theme when name is empty.
func (r *Resolver) Theme(name string) (*Theme, error) {
	if name == "" {
		name = r.ActiveTheme()
	}
	return r.doc.Theme(name)
}

// Themes lists theme names in document order.
func (r *Resolver) Themes() []string {
	return r.doc.Themes().Keys()
}

// Color returns colors[name] of the theme. A missing theme is an error; a
// missing color, or one holding a nested mapping, reports false.
func (r *Resolver) Color(name, themeName string) (string, bool, error) {
	theme, err := r.Theme(themeName)
	if err != nil {
		return "", false, err
	}
	color, ok := theme.Colors.Text(name)
	return color, ok, nil
}

// TextColor returns colors.text[role], falling back to colors.text.primary.
// An empty role means "primary". ErrNotFound is returned when neither exists.
func (r *Resolver) TextColor(role, themeName string) (string, error) {
	theme, err := r.Theme(themeName)
	if err != nil {
		return "", err
	}
	if role == "" {
		role = DefaultTextRole
	}

	text := theme.Colors.Child("text")
	if color, ok := text.Text(role); ok {
		return color, nil
	}
	if color, ok := text.Text(DefaultTextRole); ok {
		return color, nil
	}
	return "", fmt.Errorf("%w: text color %q in theme %q (no %q fallback)", ErrNotFound, role, theme.Name, DefaultTextRole)
}

// PaletteColor returns shade number shade of colorPalettes[palette][color].
// A shade outside [0, len) selects the first shade; there is no wraparound
// for negative values. Missing or empty sequences report false.
func (r *Resolver) PaletteColor(palette, color string, shade int) (string, bool) {
	shades, ok := r.doc.ColorPalettes().Child(palette).List(color)
	if !ok || len(shades) == 0 {
		return "", false
	}
	if shade < 0 || shade >= len(shades) {
		shade = 0
	}
	return scalarText(shades[shade])
}

// Typography returns typography.headings[element] for heading shorthands
// ("h1", "h2", ...), otherwise the whole typography subtree.
func (r *Resolver) Typography(element string) *Map {
	typography := r.doc.Typography()
	if strings.HasPrefix(element, "h") {
		return typography.Child("headings").Child(element)
	}
	return typography
}

// FontFamily returns typography.fontFamilies[kind], or "" when absent.
// An empty kind means "primary".
func (r *Resolver) FontFamily(kind string) string {
	if kind == "" {
		kind = DefaultFontFamily
	}
	family, _ := r.doc.Typography().Child("fontFamilies").Text(kind)
	return family
}

// Spacing returns spacing.scale[scale], falling back to spacing.scale["0"].
// ErrNotFound is returned only when the fallback is missing too.
func (r *Resolver) Spacing(scale string) (string, error) {
	steps := r.doc.Spacing().Child("scale")
	if value, ok := steps.Text(scale); ok {
		return value, nil
	}
	if value, ok := steps.Text(spacingFallback); ok {
		return value, nil
	}
	return "", fmt.Errorf("%w: spacing scale %q (no %q fallback)", ErrNotFound, scale, spacingFallback)
}

// SpacingStep is Spacing for a numeric step.
func (r *Resolver) SpacingStep(step int) (string, error) {
	return r.Spacing(strconv.Itoa(step))
}

// Layout returns layout[kind] (containers, margins, header, ...).
func (r *Resolver) Layout(kind string) *Map {
	return r.doc.Layout().Child(kind)
}

// Container returns layout.containers[size], or "" when absent.
// An empty size means "xl".
func (r *Resolver) Container(size string) string {
	if size == "" {
		size = DefaultContainer
	}
	width, _ := r.doc.Layout().Child("containers").Text(size)
	return width
}

// HyperlinkStyle returns hyperlinks[state]. An empty state means "style".
func (r *Resolver) HyperlinkStyle(state string) *Map {
	if state == "" {
		state = DefaultLinkState
	}
	return r.doc.Hyperlinks().Child(state)
}

// Numbering returns numbering[kind] (lists, headings, figures, tables).
func (r *Resolver) Numbering(kind string) *Map {
	return r.doc.Numbering().Child(kind)
}

// ImageryParameters returns imagery.parameters[category][variant].
// Unlike the other projections, a miss reports false instead of an empty
// mapping. An empty variant means "standard".
func (r *Resolver) ImageryParameters(category, variant string) (*Map, bool) {
	if variant == "" {
		variant = DefaultImageryVariant
	}
	return r.doc.Imagery().Child("parameters").Child(category).Map(variant)
}

// ImageryGuidelines returns imagery.guidelines[kind].
func (r *Resolver) ImageryGuidelines(kind string) *Map {
	return r.doc.Imagery().Child("guidelines").Child(kind)
}

// BrandStyle returns imagery.brandStyle.
func (r *Resolver) BrandStyle() *Map {
	return r.doc.Imagery().Child("brandStyle")
}

// TopicStructure returns the topicChronology subtree.
func (r *Resolver) TopicStructure() *Map {
	return r.doc.TopicChronology()
}
