package brandkit

// Notes:
// - Export: round trip through Parse yields an equal tree, pretty output
//   uses two-space indentation, compact output has no whitespace.
// - ExportYAML: round trip through the YAML decoder keeps order.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestExport - JSON serialization of the whole document
// ---------------------------------------------------------------------------

func TestExport(t *testing.T) {
	t.Parallel()

	r := newFixtureResolver(t)

	for _, pretty := range []bool{true, false} {
		out, err := r.Export(pretty)
		if err != nil {
			t.Fatalf("Export(%v): %v", pretty, err)
		}
		doc, err := Parse([]byte(out), FormatJSON)
		if err != nil {
			t.Fatalf("Parse(Export(%v)): %v", pretty, err)
		}
		if !doc.Root().Equal(r.Document().Root()) {
			t.Errorf("Export(%v) round trip changed the document", pretty)
		}
	}
}

func TestExport_Layout(t *testing.T) {
	t.Parallel()

	r := mustParse(t, `{"version": "1.0", "themes": {"light": {"colors": {"primary": "#0066CC"}}}, "weight": 700}`)

	t.Run("pretty", func(t *testing.T) {
		t.Parallel()

		got, err := r.Export(true)
		if err != nil {
			t.Fatalf("Export: %v", err)
		}
		expected := "{\n" +
			"  \"version\": \"1.0\",\n" +
			"  \"themes\": {\n" +
			"    \"light\": {\n" +
			"      \"colors\": {\n" +
			"        \"primary\": \"#0066CC\"\n" +
			"      }\n" +
			"    }\n" +
			"  },\n" +
			"  \"weight\": 700\n" +
			"}"
		if got != expected {
			t.Errorf("Export(true) =\n%s\nwant\n%s", got, expected)
		}
	})

	t.Run("compact", func(t *testing.T) {
		t.Parallel()

		got, err := r.Export(false)
		if err != nil {
			t.Fatalf("Export: %v", err)
		}
		expected := `{"version":"1.0","themes":{"light":{"colors":{"primary":"#0066CC"}}},"weight":700}`
		if got != expected {
			t.Errorf("Export(false) = %s, want %s", got, expected)
		}
	})
}

func TestExport_Empty(t *testing.T) {
	t.Parallel()

	got, err := NewResolver(nil).Export(true)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if got != "{}" {
		t.Errorf("Export of empty document = %q, want {}", got)
	}
}

// ---------------------------------------------------------------------------
// TestExportYAML - YAML serialization of the whole document
// ---------------------------------------------------------------------------

func TestExportYAML(t *testing.T) {
	t.Parallel()

	r := newFixtureResolver(t)
	out, err := r.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML: %v", err)
	}

	if !strings.HasPrefix(out, "version:") {
		t.Errorf("ExportYAML does not start with the first document key:\n%.80s", out)
	}

	doc, err := Parse([]byte(out), FormatYAML)
	if err != nil {
		t.Fatalf("Parse(ExportYAML): %v\n%s", err, out)
	}
	if !doc.Root().Equal(r.Document().Root()) {
		t.Error("ExportYAML round trip changed the document")
	}
}
