package brandkit

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WCAG 2.x contrast thresholds. AA for normal text and AAA for large text
// share the same ratio.
const (
	ThresholdAA       = 4.5
	ThresholdAAA      = 7.0
	ThresholdAALarge  = 3.0
	ThresholdAAALarge = 4.5
)

// ContrastResult reports the contrast ratio between two colors and the WCAG
// levels it meets. When either color cannot be parsed, only Error is set.
type ContrastResult struct {
	Ratio    float64 // rounded to 2 decimals
	AA       bool
	AAA      bool
	AALarge  bool
	AAALarge bool
	Error    string
}

// Valid reports whether both colors were parsed.
func (c ContrastResult) Valid() bool { return c.Error == "" }

// Level names the strictest level met: "AAA", "AA", "AA large" or "fail".
func (c ContrastResult) Level() string {
	switch {
	case !c.Valid():
		return "invalid"
	case c.AAA:
		return "AAA"
	case c.AA:
		return "AA"
	case c.AALarge:
		return "AA large"
	default:
		return "fail"
	}
}

// MarshalJSON emits {"error": ...} for failures and the ratio with the four
// level flags otherwise.
func (c ContrastResult) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{c.Error})
	}
	return json.Marshal(struct {
		Ratio    float64 `json:"ratio"`
		AA       bool    `json:"AA"`
		AAA      bool    `json:"AAA"`
		AALarge  bool    `json:"AA_large"`
		AAALarge bool    `json:"AAA_large"`
	}{c.Ratio, c.AA, c.AAA, c.AALarge, c.AAALarge})
}

// CheckContrast computes the WCAG contrast ratio of foreground against
// background. Colors are six hex digits with an optional leading "#".
// It never fails: malformed input is reported in ContrastResult.Error.
func CheckContrast(foreground, background string) ContrastResult {
	fg, err := parseHexColor(foreground)
	if err != nil {
		return ContrastResult{Error: err.Error()}
	}
	bg, err := parseHexColor(background)
	if err != nil {
		return ContrastResult{Error: err.Error()}
	}

	l1, l2 := luminance(fg), luminance(bg)
	ratio := (math.Max(l1, l2) + 0.05) / (math.Min(l1, l2) + 0.05)

	// Thresholds compare against the unrounded ratio.
	return ContrastResult{
		Ratio:    math.Round(ratio*100) / 100,
		AA:       ratio >= ThresholdAA,
		AAA:      ratio >= ThresholdAAA,
		AALarge:  ratio >= ThresholdAALarge,
		AAALarge: ratio >= ThresholdAAALarge,
	}
}

// ContrastCheck is one text role checked against a theme background.
type ContrastCheck struct {
	Theme      string
	Role       string
	Foreground string
	Background string
	Result     ContrastResult
}

// AuditContrast checks text colors of a theme against colors[background].
// With no roles given, every entry of colors.text is checked in document
// order. An empty background key means "background". A role that has no
// text color is reported through its result's Error.
func (r *Resolver) AuditContrast(themeName, background string, roles ...string) ([]ContrastCheck, error) {
	theme, err := r.Theme(themeName)
	if err != nil {
		return nil, err
	}
	if background == "" {
		background = "background"
	}
	bg, ok := theme.Colors.Text(background)
	if !ok {
		return nil, fmt.Errorf("%w: background color %q in theme %q", ErrNotFound, background, theme.Name)
	}

	text := theme.Colors.Child("text")
	if len(roles) == 0 {
		roles = text.Keys()
	}

	checks := make([]ContrastCheck, 0, len(roles))
	for _, role := range roles {
		check := ContrastCheck{Theme: theme.Name, Role: role, Background: bg}
		if fg, ok := text.Text(role); ok {
			check.Foreground = fg
			check.Result = CheckContrast(fg, bg)
		} else {
			check.Result = ContrastResult{Error: fmt.Sprintf("%v: text color %q", ErrNotFound, role)}
		}
		checks = append(checks, check)
	}
	return checks, nil
}

// ValidateColor reports whether s is accepted by CheckContrast. The error
// wraps ErrInvalidColor.
func ValidateColor(s string) error {
	_, err := parseHexColor(s)
	return err
}

// parseHexColor parses "RRGGBB", ignoring any leading "#", into 8-bit channels.
func parseHexColor(s string) ([3]uint8, error) {
	var rgb [3]uint8
	hex := strings.TrimLeft(s, "#")
	if len(hex) != 6 {
		return rgb, fmt.Errorf("%w: %q (want 6 hex digits)", ErrInvalidColor, s)
	}
	for i := range rgb {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return rgb, fmt.Errorf("%w: %q (non-hex digit)", ErrInvalidColor, s)
		}
		rgb[i] = uint8(v)
	}
	return rgb, nil
}

// luminance is the WCAG relative luminance of an sRGB color.
func luminance(rgb [3]uint8) float64 {
	r := linearize(rgb[0])
	g := linearize(rgb[1])
	b := linearize(rgb[2])
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
