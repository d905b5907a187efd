package brandkit

import (
	"fmt"
	"strings"
)

// CSSVariables renders the theme's colors and the spacing scale as CSS
// custom properties inside a :root block.
//
// Colors come first, in the theme's key order; a nested mapping such as
// "text" expands to one --color-<key>-<sub> property per entry. Spacing
// steps follow as --spacing-<step>. Lines are joined with "\n" and the
// output has no trailing newline. The result is deterministic.
func (r *Resolver) CSSVariables(themeName string) (string, error) {
	theme, err := r.Theme(themeName)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	buf.WriteString(":root {")

	for key, value := range theme.Colors.All() {
		if nested, ok := value.(*Map); ok {
			for sub, v := range nested.All() {
				writeProperty(&buf, "color-"+key+"-"+sub, v)
			}
			continue
		}
		writeProperty(&buf, "color-"+key, value)
	}

	for step, value := range r.doc.Spacing().Child("scale").All() {
		writeProperty(&buf, "spacing-"+step, value)
	}

	buf.WriteString("\n}")
	return buf.String(), nil
}

func writeProperty(buf *strings.Builder, name string, value any) {
	fmt.Fprintf(buf, "\n  --%s: %s;", name, cssValue(value))
}

// cssValue renders scalars verbatim and anything else as compact JSON.
func cssValue(v any) string {
	if s, ok := scalarText(v); ok {
		return s
	}
	data, err := encodeJSON(v)
	if err != nil {
		return ""
	}
	return string(data)
}
