package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alnah/go-brandkit"
	"github.com/alnah/go-brandkit/internal/hints"
)

// runContrast checks two literal colors against the WCAG thresholds.
func runContrast(args []string, env *Environment) error {
	var f contrastFlags
	fs := newContrastFlagSet(&f)
	positional, err := parseArgs(fs, args, env, func() { printContrastUsage(env.Stderr) })
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return fmt.Errorf("%w: contrast takes <foreground> <background>", ErrUsage)
	}

	fg, bg := positional[0], positional[1]
	for _, c := range positional {
		if err := brandkit.ValidateColor(c); err != nil {
			return fmt.Errorf("%w%s", err, hints.ForInvalidColor())
		}
	}

	result := brandkit.CheckContrast(fg, bg)
	switch {
	case f.json:
		return writeJSON(env.Stdout, result)
	case f.quiet:
		_, err := fmt.Fprintln(env.Stdout, result.Level())
		return err
	}

	re := lipgloss.NewRenderer(env.Stdout)
	fmt.Fprintf(env.Stdout, "%s  %s on %s\n", swatch(re, fg, bg), fg, bg)
	fmt.Fprintf(env.Stdout, "Ratio: %.2f:1 (%s)\n", result.Ratio, result.Level())

	t := newTable(re, "LEVEL", "MINIMUM", "RESULT").
		Row("AA", ratioText(brandkit.ThresholdAA), passFail(result.AA)).
		Row("AAA", ratioText(brandkit.ThresholdAAA), passFail(result.AAA)).
		Row("AA large", ratioText(brandkit.ThresholdAALarge), passFail(result.AALarge)).
		Row("AAA large", ratioText(brandkit.ThresholdAAALarge), passFail(result.AAALarge))
	_, err = fmt.Fprintln(env.Stdout, t.Render())
	return err
}

// auditEntry is the JSON shape of one audited role.
type auditEntry struct {
	Theme      string                  `json:"theme"`
	Role       string                  `json:"role"`
	Foreground string                  `json:"foreground,omitempty"`
	Background string                  `json:"background"`
	Result     brandkit.ContrastResult `json:"result"`
}

// runAudit checks the theme's text colors against its background.
func runAudit(args []string, env *Environment) error {
	var f auditFlags
	fs := newAuditFlagSet(&f)
	if _, err := parseArgs(fs, args, env, func() { printAuditUsage(env.Stderr) }); err != nil {
		return err
	}

	layer := f.common.layer()
	layer.Audit.Background = f.background
	layer.Audit.Roles = f.roles

	s, err := loadSettings(&f.common, layer, env)
	if err != nil {
		return err
	}
	r, err := s.openResolver()
	if err != nil {
		return err
	}

	checks, err := r.AuditContrast("", s.cfg.Audit.Background, s.cfg.Audit.Roles...)
	if err != nil {
		return err
	}

	if f.json {
		entries := make([]auditEntry, 0, len(checks))
		for _, c := range checks {
			entries = append(entries, auditEntry(c))
		}
		if err := writeJSON(env.Stdout, entries); err != nil {
			return err
		}
	} else {
		printAudit(env.Stdout, r.ActiveTheme(), s.cfg.Audit.Background, checks)
	}

	failed := 0
	for _, c := range checks {
		if !c.Result.AA {
			failed++
			s.log.Debug().Str("role", c.Role).Str("level", c.Result.Level()).Msg("below AA")
		}
	}
	if f.strict && failed > 0 {
		return fmt.Errorf("%w: %d of %d roles below AA", ErrContrastFailed, failed, len(checks))
	}
	return nil
}

func printAudit(w io.Writer, theme, background string, checks []brandkit.ContrastCheck) {
	re := lipgloss.NewRenderer(w)
	bg := ""
	if len(checks) > 0 {
		bg = checks[0].Background
	}
	fmt.Fprintf(w, "Theme %s, %s %s\n", theme, background, bg)

	t := newTable(re, "ROLE", "COLOR", "SAMPLE", "RATIO", "LEVEL")
	for _, c := range checks {
		if !c.Result.Valid() {
			t.Row(c.Role, "-", "", "-", "missing")
			continue
		}
		t.Row(c.Role, c.Foreground, swatch(re, c.Foreground, c.Background), fmt.Sprintf("%.2f", c.Result.Ratio), c.Result.Level())
	}
	fmt.Fprintln(w, t.Render())
}

func newTable(re *lipgloss.Renderer, headers ...string) *table.Table {
	cell := re.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cell }).
		Headers(headers...)
}

// swatch renders a text sample in fg over bg. Without color support it is
// plain text.
func swatch(re *lipgloss.Renderer, fg, bg string) string {
	return re.NewStyle().
		Foreground(lipgloss.Color("#"+strings.TrimLeft(fg, "#"))).
		Background(lipgloss.Color("#"+strings.TrimLeft(bg, "#"))).
		Padding(0, 1).
		Render("Aa")
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

func ratioText(threshold float64) string {
	return fmt.Sprintf("%.1f:1", threshold)
}
