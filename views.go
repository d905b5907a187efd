package brandkit

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// HeadingStyle is the typed view of typography.headings[level].
type HeadingStyle struct {
	FontFamily    string `mapstructure:"fontFamily" json:"fontFamily,omitempty"`
	FontSize      string `mapstructure:"fontSize" json:"fontSize,omitempty"`
	FontWeight    string `mapstructure:"fontWeight" json:"fontWeight,omitempty"`
	LineHeight    string `mapstructure:"lineHeight" json:"lineHeight,omitempty"`
	LetterSpacing string `mapstructure:"letterSpacing" json:"letterSpacing,omitempty"`
	MarginTop     string `mapstructure:"marginTop" json:"marginTop,omitempty"`
	MarginBottom  string `mapstructure:"marginBottom" json:"marginBottom,omitempty"`
	TextTransform string `mapstructure:"textTransform" json:"textTransform,omitempty"`
	Color         string `mapstructure:"color" json:"color,omitempty"`
}

// LinkStyle is the typed view of hyperlinks[state].
type LinkStyle struct {
	Color          string `mapstructure:"color" json:"color,omitempty"`
	TextDecoration string `mapstructure:"textDecoration" json:"textDecoration,omitempty"`
	FontWeight     string `mapstructure:"fontWeight" json:"fontWeight,omitempty"`
	Cursor         string `mapstructure:"cursor" json:"cursor,omitempty"`
	Transition     string `mapstructure:"transition" json:"transition,omitempty"`
}

// Heading decodes the heading style for level ("h1".."h6").
// A missing heading yields the zero style. Unknown keys are ignored and
// numbers are accepted where strings are expected (fontWeight: 700).
func (r *Resolver) Heading(level string) (HeadingStyle, error) {
	var style HeadingStyle
	if err := decodeView(r.doc.Typography().Child("headings").Child(level), &style); err != nil {
		return HeadingStyle{}, fmt.Errorf("decoding heading %q: %w", level, err)
	}
	return style, nil
}

// LinkStyle decodes hyperlinks[state]. An empty state means "style".
func (r *Resolver) LinkStyle(state string) (LinkStyle, error) {
	var style LinkStyle
	if err := decodeView(r.HyperlinkStyle(state), &style); err != nil {
		return LinkStyle{}, fmt.Errorf("decoding link style %q: %w", state, err)
	}
	return style, nil
}

func decodeView(m *Map, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(m.ToMap())
}
