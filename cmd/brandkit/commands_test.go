package main

// Notes:
// - Every command runs against the shared fixture document through runCLI.
// - Exact outputs are asserted for machine-readable commands (css, get,
//   export, contrast --json); table layouts only for their content.

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-brandkit"
	"github.com/alnah/go-brandkit/internal/presets"
)

// ---------------------------------------------------------------------------
// TestCSS - CSS custom properties
// ---------------------------------------------------------------------------

func TestCSS(t *testing.T) {
	t.Parallel()

	expected := ":root {\n" +
		"  --color-primary: #7B2CBF;\n" +
		"  --color-background: #FDFBFF;\n" +
		"  --color-text-primary: #240046;\n" +
		"  --color-text-secondary: #5A189A;\n" +
		"  --spacing-0: 0;\n" +
		"  --spacing-1: 0.25rem;\n" +
		"  --spacing-2: 0.5rem;\n" +
		"  --spacing-3: 0.75rem;\n" +
		"  --spacing-4: 1rem;\n" +
		"  --spacing-6: 1.5rem;\n" +
		"  --spacing-8: 2rem;\n" +
		"}\n"

	t.Run("stdout", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "css", "-d", fixturePath, "-t", "custom")
		if res.code != ExitSuccess {
			t.Fatalf("exit code = %d\nstderr: %s", res.code, res.stderr)
		}
		if diff := cmp.Diff(expected, res.stdout); diff != "" {
			t.Errorf("css mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("output file", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "tokens.css")
		res := runCLI(t, nil, "css", "-d", fixturePath, "-t", "custom", "-o", out)
		if res.code != ExitSuccess {
			t.Fatalf("exit code = %d\nstderr: %s", res.code, res.stderr)
		}
		if res.stdout != "" {
			t.Errorf("stdout = %q, want empty when writing a file", res.stdout)
		}
		got, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != expected {
			t.Errorf("file content = %q, want %q", got, expected)
		}
	})
}

// ---------------------------------------------------------------------------
// TestGet - Token lookups
// ---------------------------------------------------------------------------

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		expected string
	}{
		// Colors
		{"color", []string{"color", "primary"}, ExitSuccess, "#0066CC\n"},
		{"color in dark theme", []string{"color", "primary", "-t", "dark"}, ExitSuccess, "#4D9FFF\n"},
		{"nested color is not a color", []string{"color", "text"}, ExitNotFound, ""},
		{"missing color", []string{"color", "brand"}, ExitNotFound, ""},
		{"text default role", []string{"text"}, ExitSuccess, "#1A1A1A\n"},
		{"text role", []string{"text", "secondary"}, ExitSuccess, "#5A5A5A\n"},
		{"text falls back to primary", []string{"text", "headline"}, ExitSuccess, "#1A1A1A\n"},
		{"palette default shade", []string{"palette", "brand", "primary"}, ExitSuccess, "#0066CC\n"},
		{"palette shade", []string{"palette", "brand", "primary", "4"}, ExitSuccess, "#003366\n"},
		{"palette shade out of range", []string{"palette", "brand", "primary", "9"}, ExitSuccess, "#E6F0FA\n"},
		{"palette negative shade", []string{"palette", "brand", "accent", "--", "-1"}, ExitSuccess, "#FFE8DF\n"},
		{"palette bad shade", []string{"palette", "brand", "primary", "dark"}, ExitUsage, ""},
		{"palette empty", []string{"palette", "semantic", "empty"}, ExitNotFound, ""},
		{"palette missing", []string{"palette", "brand", "neon"}, ExitNotFound, ""},

		// Typography and spacing
		{"font default", []string{"font"}, ExitSuccess, "'Inter', -apple-system, BlinkMacSystemFont, sans-serif\n"},
		{"font kind", []string{"font", "secondary"}, ExitSuccess, "'Merriweather', Georgia, serif\n"},
		{"font missing", []string{"font", "display"}, ExitNotFound, ""},
		{"spacing", []string{"spacing", "4"}, ExitSuccess, "1rem\n"},
		{"spacing fallback", []string{"spacing", "5"}, ExitSuccess, "0\n"},
		{"container default", []string{"container"}, ExitSuccess, "1280px\n"},
		{"container size", []string{"container", "2xl"}, ExitSuccess, "1536px\n"},
		{"container missing", []string{"container", "3xl"}, ExitNotFound, ""},
		{
			"heading",
			[]string{"heading", "h1"},
			ExitSuccess,
			"{\n  \"fontSize\": \"2.5rem\",\n  \"fontWeight\": \"700\",\n  \"lineHeight\": \"1.2\",\n  \"marginBottom\": \"1.5rem\"\n}\n",
		},
		{
			"link default state",
			[]string{"link"},
			ExitSuccess,
			"{\n  \"color\": \"#0066CC\",\n  \"textDecoration\": \"none\",\n  \"fontWeight\": \"500\"\n}\n",
		},
		{
			"layout keeps document order",
			[]string{"layout", "containers"},
			ExitSuccess,
			"{\n  \"sm\": \"640px\",\n  \"md\": \"768px\",\n  \"lg\": \"1024px\",\n  \"xl\": \"1280px\",\n  \"2xl\": \"1536px\"\n}\n",
		},
		{"missing group is empty", []string{"numbering", "tables"}, ExitSuccess, "{}\n"},
		{"imagery missing", []string{"imagery", "drone"}, ExitNotFound, ""},

		// Usage errors
		{"no kind", nil, ExitUsage, ""},
		{"unknown kind", []string{"shadow"}, ExitUsage, ""},
		{"missing argument", []string{"color"}, ExitUsage, ""},
		{"extra argument", []string{"spacing", "1", "2"}, ExitUsage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"get", "-d", fixturePath}, tt.args...)
			res := runCLI(t, nil, args...)
			if res.code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d\nstderr: %s", res.code, tt.wantCode, res.stderr)
			}
			if res.stdout != tt.expected {
				t.Errorf("stdout = %q, want %q", res.stdout, tt.expected)
			}
		})
	}
}

func TestGet_ImageryParameters(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "get", "-d", fixturePath, "imagery", "lens", "wide")
	if res.code != ExitSuccess {
		t.Fatalf("exit code = %d\nstderr: %s", res.code, res.stderr)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
	}
	if len(got) == 0 {
		t.Error("expected wide lens parameters")
	}
}

// ---------------------------------------------------------------------------
// TestContrast - Literal color checks
// ---------------------------------------------------------------------------

func TestContrast(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "contrast", "#000000", "#FFFFFF", "--json")
		expected := "{\n  \"ratio\": 21,\n  \"AA\": true,\n  \"AAA\": true,\n  \"AA_large\": true,\n  \"AAA_large\": true\n}\n"
		if res.code != ExitSuccess || res.stdout != expected {
			t.Errorf("got code %d stdout %q, want %q\nstderr: %s", res.code, res.stdout, expected, res.stderr)
		}
	})

	t.Run("quiet prints the level", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "contrast", "-q", "#777777", "#FFFFFF")
		if res.stdout != "AA large\n" {
			t.Errorf("stdout = %q, want AA large", res.stdout)
		}
	})

	t.Run("hash is optional", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "contrast", "-q", "333333", "FFFFFF")
		if res.stdout != "AAA\n" {
			t.Errorf("stdout = %q, want AAA", res.stdout)
		}
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "contrast", "#0066CC", "#FFFFFF")
		if res.code != ExitSuccess {
			t.Fatalf("exit code = %d\nstderr: %s", res.code, res.stderr)
		}
		for _, want := range []string{"Aa", "#0066CC on #FFFFFF", "Ratio: 5.57:1 (AA)", "AAA large", "4.5:1", "pass", "fail"} {
			if !strings.Contains(res.stdout, want) {
				t.Errorf("stdout should contain %q, got:\n%s", want, res.stdout)
			}
		}
		if strings.Contains(res.stdout, "\x1b[") {
			t.Error("expected no ANSI escapes when stdout is not a terminal")
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "contrast", "#FFF", "#000000")
		if res.code != ExitUsage {
			t.Errorf("exit code = %d, want %d", res.code, ExitUsage)
		}
		if !strings.Contains(res.stderr, "invalid color format") || !strings.Contains(res.stderr, "hint:") {
			t.Errorf("stderr = %q", res.stderr)
		}
	})

	t.Run("wrong argument count", func(t *testing.T) {
		t.Parallel()

		if res := runCLI(t, nil, "contrast", "#000000"); res.code != ExitUsage {
			t.Errorf("exit code = %d, want %d", res.code, ExitUsage)
		}
	})
}

// ---------------------------------------------------------------------------
// TestAudit - Theme contrast audit
// ---------------------------------------------------------------------------

func TestAudit(t *testing.T) {
	t.Parallel()

	t.Run("table lists every text role", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "audit", "-d", fixturePath)
		if res.code != ExitSuccess {
			t.Fatalf("exit code = %d\nstderr: %s", res.code, res.stderr)
		}
		for _, want := range []string{"Theme light, background #FFFFFF", "primary", "17.40", "AAA", "secondary", "6.90", "disabled", "2.85", "inverse", "1.00", "fail"} {
			if !strings.Contains(res.stdout, want) {
				t.Errorf("stdout should contain %q, got:\n%s", want, res.stdout)
			}
		}
	})

	t.Run("strict fails below AA", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "audit", "-d", fixturePath, "--strict")
		if res.code != ExitGeneral {
			t.Errorf("exit code = %d, want %d", res.code, ExitGeneral)
		}
		if !strings.Contains(res.stderr, "2 of 4 roles below AA") {
			t.Errorf("stderr = %q", res.stderr)
		}
	})

	t.Run("strict passes for selected roles", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "audit", "-d", fixturePath, "--strict", "-r", "primary", "-r", "secondary")
		if res.code != ExitSuccess {
			t.Errorf("exit code = %d\nstderr: %s", res.code, res.stderr)
		}
		if strings.Contains(res.stdout, "disabled") {
			t.Errorf("unselected role audited:\n%s", res.stdout)
		}
	})

	t.Run("roles from environment", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, []string{"BRANDKIT_AUDIT_ROLES=primary"}, "audit", "-d", fixturePath, "--strict")
		if res.code != ExitSuccess {
			t.Errorf("exit code = %d\nstderr: %s", res.code, res.stderr)
		}
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "audit", "-d", fixturePath, "-t", "dark", "--json", "-b", "surface", "-r", "primary", "-r", "headline")
		if res.code != ExitSuccess {
			t.Fatalf("exit code = %d\nstderr: %s", res.code, res.stderr)
		}

		var got []struct {
			Theme      string         `json:"theme"`
			Role       string         `json:"role"`
			Foreground string         `json:"foreground"`
			Background string         `json:"background"`
			Result     map[string]any `json:"result"`
		}
		if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
			t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
		}
		if len(got) != 2 {
			t.Fatalf("got %d entries, want 2", len(got))
		}
		if got[0].Theme != "dark" || got[0].Role != "primary" || got[0].Foreground != "#E0E0E0" || got[0].Background != "#1E1E1E" {
			t.Errorf("entry 0 = %+v", got[0])
		}
		if got[0].Result["AA"] != true {
			t.Errorf("entry 0 result = %v, want AA", got[0].Result)
		}
		if _, ok := got[1].Result["error"]; !ok || got[1].Foreground != "" {
			t.Errorf("entry 1 = %+v, want an error result for the missing role", got[1])
		}
	})

	t.Run("missing background", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "audit", "-d", fixturePath, "-b", "canvas")
		if res.code != ExitNotFound {
			t.Errorf("exit code = %d, want %d", res.code, ExitNotFound)
		}
	})
}

// ---------------------------------------------------------------------------
// TestExport - Document export
// ---------------------------------------------------------------------------

func TestExport(t *testing.T) {
	t.Parallel()

	doc, err := brandkit.LoadFile(fixturePath)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	r := brandkit.NewResolver(doc)
	pretty, _ := r.Export(true)
	compact, _ := r.Export(false)
	yamlOut, _ := r.ExportYAML()

	tests := []struct {
		name     string
		environ  []string
		args     []string
		expected string
	}{
		{"pretty by default", nil, []string{"export"}, pretty + "\n"},
		{"compact", nil, []string{"export", "--pretty=false"}, compact + "\n"},
		{"yaml flag", nil, []string{"export", "--format", "yaml"}, strings.TrimSuffix(yamlOut, "\n") + "\n"},
		{"yaml from environment", []string{"BRANDKIT_FORMAT=yaml"}, []string{"export"}, strings.TrimSuffix(yamlOut, "\n") + "\n"},
		{"flag overrides environment", []string{"BRANDKIT_FORMAT=yaml"}, []string{"export", "--format", "json"}, pretty + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append(tt.args, "-d", fixturePath)
			res := runCLI(t, tt.environ, args...)
			if res.code != ExitSuccess {
				t.Fatalf("exit code = %d\nstderr: %s", res.code, res.stderr)
			}
			if diff := cmp.Diff(tt.expected, res.stdout); diff != "" {
				t.Errorf("export mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		if res := runCLI(t, nil, "export", "-d", fixturePath, "--format", "xml"); res.code != ExitUsage {
			t.Errorf("exit code = %d, want %d", res.code, ExitUsage)
		}
	})

	t.Run("output file and overwrite protection", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "brand.json")

		if res := runCLI(t, nil, "export", "-d", fixturePath, "-o", out); res.code != ExitSuccess {
			t.Fatalf("first export: exit code = %d\nstderr: %s", res.code, res.stderr)
		}
		got, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != pretty+"\n" {
			t.Error("written file differs from stdout export")
		}

		res := runCLI(t, nil, "export", "-d", fixturePath, "-o", out)
		if res.code != ExitIO || !strings.Contains(res.stderr, "--force") {
			t.Errorf("second export: code %d stderr %q, want ExitIO with --force hint", res.code, res.stderr)
		}

		if res := runCLI(t, nil, "export", "-d", fixturePath, "-o", out, "--force", "--pretty=false"); res.code != ExitSuccess {
			t.Fatalf("forced export: exit code = %d\nstderr: %s", res.code, res.stderr)
		}
		got, _ = os.ReadFile(out)
		if string(got) != compact+"\n" {
			t.Error("forced export did not replace the file")
		}
	})
}

// ---------------------------------------------------------------------------
// TestPresetsAndInit - Preset listing and scaffolding
// ---------------------------------------------------------------------------

func TestPresets(t *testing.T) {
	t.Parallel()

	t.Run("built-in", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "presets")
		if res.stdout != "default\nminimal\n" {
			t.Errorf("stdout = %q", res.stdout)
		}
	})

	t.Run("custom directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeTestFile(t, dir, "house.yaml", "themes:\n  light:\n    colors:\n      primary: \"#000000\"\n")

		res := runCLI(t, []string{"BRANDKIT_PRESETS_DIR=" + dir}, "presets")
		if res.stdout != "default\nhouse\nminimal\n" {
			t.Errorf("stdout = %q", res.stdout)
		}

		res = runCLI(t, nil, "get", "--presets-dir", dir, "--preset", "house", "color", "primary")
		if res.code != ExitSuccess || res.stdout != "#000000\n" {
			t.Errorf("get from custom preset: code %d stdout %q stderr %q", res.code, res.stdout, res.stderr)
		}
	})
}

func TestInit(t *testing.T) {
	t.Parallel()

	embedded := presets.NewEmbeddedLoader()

	t.Run("default preset", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "brand.json")
		res := runCLI(t, nil, "init", "-o", out)
		if res.code != ExitSuccess {
			t.Fatalf("exit code = %d\nstderr: %s", res.code, res.stderr)
		}
		if !strings.Contains(res.stdout, "Created "+out) {
			t.Errorf("stdout = %q", res.stdout)
		}

		want, err := embedded.Load(presets.DefaultPresetName)
		if err != nil {
			t.Fatal(err)
		}
		got, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if strings.TrimSuffix(string(got), "\n") != strings.TrimSuffix(string(want.Data), "\n") {
			t.Error("written document differs from the preset")
		}

		if _, err := brandkit.LoadFile(out); err != nil {
			t.Errorf("written document does not load: %v", err)
		}
	})

	t.Run("named preset keeps its format", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "site.yaml")
		res := runCLI(t, nil, "init", "minimal", "-q", "-o", out)
		if res.code != ExitSuccess {
			t.Fatalf("exit code = %d\nstderr: %s", res.code, res.stderr)
		}
		if res.stdout != "" {
			t.Errorf("stdout = %q, want empty with --quiet", res.stdout)
		}

		res = runCLI(t, nil, "themes", "-d", out)
		if res.stdout != "* light\n  dark\n" {
			t.Errorf("themes of written document = %q", res.stdout)
		}
	})

	t.Run("existing file", func(t *testing.T) {
		t.Parallel()

		out := writeTestFile(t, t.TempDir(), "brand.json", "{}")
		res := runCLI(t, nil, "init", "-o", out)
		if res.code != ExitIO {
			t.Errorf("exit code = %d, want %d", res.code, ExitIO)
		}
		got, _ := os.ReadFile(out)
		if string(got) != "{}" {
			t.Error("existing file was modified")
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "init", "neon", "-o", filepath.Join(t.TempDir(), "brand.json"))
		if res.code != ExitNotFound || !strings.Contains(res.stderr, "available: default, minimal") {
			t.Errorf("code %d stderr %q", res.code, res.stderr)
		}
	})

	t.Run("too many arguments", func(t *testing.T) {
		t.Parallel()

		if res := runCLI(t, nil, "init", "default", "minimal"); res.code != ExitUsage {
			t.Errorf("exit code = %d, want %d", res.code, ExitUsage)
		}
	})
}
