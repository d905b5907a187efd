// Package brandkit resolves design tokens from a branding document.
//
// # Quick Start
//
// Load a document, create a resolver, and query it:
//
//	doc, err := brandkit.LoadFile("branding-config.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := brandkit.NewResolver(doc)
//
//	primary, ok, err := r.Color("primary", "")  // active theme
//	text, err := r.TextColor("secondary", "dark")
//	shade, ok := r.PaletteColor("brand", "primary", brandkit.DefaultShade)
//
// JSON, YAML and TOML documents are accepted; the format is chosen from the
// file extension. Use Parse for in-memory data.
//
// # Document Layout
//
// A branding document is a mapping with these optional top-level keys:
//
//	themes           name -> {colors: {...}}; colors may nest ("text")
//	colorPalettes    palette -> color -> [shade, ...]
//	typography       fontFamilies, headings (h1..h6), body, ...
//	spacing          scale: step -> CSS length
//	layout           containers, margins, header, ...
//	hyperlinks       style, hover, visited, ...
//	numbering        lists, headings, figures, tables
//	imagery          brandStyle, parameters, guidelines
//	topicChronology  free-form
//
// Key order is preserved everywhere. It drives Themes, CSSVariables and
// both exports.
//
// # Lookups
//
// Required keys fail with ErrNotFound: a missing theme, a missing
// colors.text.primary fallback in TextColor, and a missing spacing "0"
// fallback in Spacing. Everything else is a soft miss reported as false,
// "" or an empty *Map. A nil *Map reads as empty.
//
// # Themes
//
// The active theme starts as "light" and changes with SetTheme. Every
// theme-dependent method also takes a theme name; pass "" to use the
// active theme. Resolvers shared between goroutines should pass explicit
// names.
//
// # Output
//
// CSSVariables renders a theme as custom properties:
//
//	:root {
//	  --color-primary: #0066CC;
//	  --color-text-primary: #1A1A1A;
//	  --spacing-0: 0;
//	}
//
// CheckContrast computes WCAG 2.x contrast ratios and AuditContrast runs it
// over a theme's text colors. Export and ExportYAML serialize the whole
// document.
package brandkit
