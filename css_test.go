package brandkit

// Notes:
// - CSSVariables: exact output for the fixture themes, nested color
//   expansion, spacing order, non-string values and determinism.
// - Output never ends with a newline.

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestCSSVariables - Custom property rendering
// ---------------------------------------------------------------------------

const fixtureSpacingCSS = "  --spacing-0: 0;\n" +
	"  --spacing-1: 0.25rem;\n" +
	"  --spacing-2: 0.5rem;\n" +
	"  --spacing-3: 0.75rem;\n" +
	"  --spacing-4: 1rem;\n" +
	"  --spacing-6: 1.5rem;\n" +
	"  --spacing-8: 2rem;\n"

func TestCSSVariables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		theme    string
		expected string
	}{
		{
			name:  "active theme is light",
			theme: "",
			expected: ":root {\n" +
				"  --color-primary: #0066CC;\n" +
				"  --color-secondary: #6C757D;\n" +
				"  --color-accent: #FF6B35;\n" +
				"  --color-background: #FFFFFF;\n" +
				"  --color-surface: #F8F9FA;\n" +
				"  --color-border: #DEE2E6;\n" +
				"  --color-text-primary: #1A1A1A;\n" +
				"  --color-text-secondary: #5A5A5A;\n" +
				"  --color-text-disabled: #999999;\n" +
				"  --color-text-inverse: #FFFFFF;\n" +
				"  --color-success: #28A745;\n" +
				"  --color-warning: #FFC107;\n" +
				"  --color-error: #DC3545;\n" +
				fixtureSpacingCSS +
				"}",
		},
		{
			name:  "dark",
			theme: "dark",
			expected: ":root {\n" +
				"  --color-primary: #4D9FFF;\n" +
				"  --color-secondary: #ADB5BD;\n" +
				"  --color-accent: #FF8C5A;\n" +
				"  --color-background: #121212;\n" +
				"  --color-surface: #1E1E1E;\n" +
				"  --color-border: #2D2D2D;\n" +
				"  --color-text-primary: #E0E0E0;\n" +
				"  --color-text-secondary: #B0B0B0;\n" +
				"  --color-text-disabled: #6B6B6B;\n" +
				"  --color-text-inverse: #121212;\n" +
				"  --color-success: #48C774;\n" +
				"  --color-warning: #FFD54F;\n" +
				"  --color-error: #FF6B6B;\n" +
				fixtureSpacingCSS +
				"}",
		},
		{
			name:  "sparse theme",
			theme: "custom",
			expected: ":root {\n" +
				"  --color-primary: #7B2CBF;\n" +
				"  --color-background: #FDFBFF;\n" +
				"  --color-text-primary: #240046;\n" +
				"  --color-text-secondary: #5A189A;\n" +
				fixtureSpacingCSS +
				"}",
		},
	}

	r := newFixtureResolver(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.CSSVariables(tt.theme)
			if err != nil {
				t.Fatalf("CSSVariables(%q): %v", tt.theme, err)
			}
			if got != tt.expected {
				t.Errorf("CSSVariables(%q) =\n%s\nwant\n%s", tt.theme, got, tt.expected)
			}
		})
	}
}

func TestCSSVariables_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		expected string
	}{
		{
			name:     "no colors and no spacing",
			document: `{"themes": {"light": {}}}`,
			expected: ":root {\n}",
		},
		{
			name:     "spacing without colors",
			document: `{"themes": {"light": {"colors": {}}}, "spacing": {"scale": {"0": "0", "2": "8px"}}}`,
			expected: ":root {\n  --spacing-0: 0;\n  --spacing-2: 8px;\n}",
		},
		{
			name:     "document order is kept",
			document: `{"themes": {"light": {"colors": {"zeta": "#000000", "alpha": "#FFFFFF"}}}}`,
			expected: ":root {\n  --color-zeta: #000000;\n  --color-alpha: #FFFFFF;\n}",
		},
		{
			name:     "nested mapping between scalars",
			document: `{"themes": {"light": {"colors": {"a": "#111111", "link": {"idle": "#222222", "hover": "#333333"}, "b": "#444444"}}}}`,
			expected: ":root {\n  --color-a: #111111;\n  --color-link-idle: #222222;\n  --color-link-hover: #333333;\n  --color-b: #444444;\n}",
		},
		{
			name:     "numbers and booleans render verbatim",
			document: `{"themes": {"light": {"colors": {"opacity": 0.5, "weight": 4, "on": true}}}}`,
			expected: ":root {\n  --color-opacity: 0.5;\n  --color-weight: 4;\n  --color-on: true;\n}",
		},
		{
			name:     "sequences render as JSON",
			document: `{"themes": {"light": {"colors": {"stops": ["#000000", "#FFFFFF"]}}}}`,
			expected: ":root {\n  --color-stops: [\"#000000\",\"#FFFFFF\"];\n}",
		},
		{
			name:     "null renders as null",
			document: `{"themes": {"light": {"colors": {"unset": null}}}}`,
			expected: ":root {\n  --color-unset: null;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := mustParse(t, tt.document)
			got, err := r.CSSVariables("")
			if err != nil {
				t.Fatalf("CSSVariables: %v", err)
			}
			if got != tt.expected {
				t.Errorf("CSSVariables =\n%q\nwant\n%q", got, tt.expected)
			}
		})
	}
}

func TestCSSVariables_Errors(t *testing.T) {
	t.Parallel()

	r := newFixtureResolver(t)
	got, err := r.CSSVariables("neon")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("CSSVariables(neon) error = %v, want ErrNotFound", err)
	}
	if got != "" {
		t.Errorf("CSSVariables(neon) = %q, want empty", got)
	}
}

func TestCSSVariables_Deterministic(t *testing.T) {
	t.Parallel()

	r := newFixtureResolver(t)
	first, err := r.CSSVariables("dark")
	if err != nil {
		t.Fatalf("CSSVariables: %v", err)
	}
	for range 20 {
		got, err := r.CSSVariables("dark")
		if err != nil {
			t.Fatalf("CSSVariables: %v", err)
		}
		if got != first {
			t.Fatal("CSSVariables output changed between calls")
		}
	}
	if strings.HasSuffix(first, "\n") {
		t.Error("output ends with a newline")
	}
	if !strings.HasPrefix(first, ":root {\n") {
		t.Errorf("output does not open a :root block: %q", first[:10])
	}
}

func TestCSSVariables_ActiveTheme(t *testing.T) {
	t.Parallel()

	r := newFixtureResolver(t)
	if err := r.SetTheme("dark"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	active, err := r.CSSVariables("")
	if err != nil {
		t.Fatalf("CSSVariables: %v", err)
	}
	explicit, err := r.CSSVariables("dark")
	if err != nil {
		t.Fatalf("CSSVariables: %v", err)
	}
	if active != explicit {
		t.Error("active theme output differs from explicit theme output")
	}
}
