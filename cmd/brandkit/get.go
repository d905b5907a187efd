package main

import (
	"fmt"
	"strconv"

	"github.com/alnah/go-brandkit"
)

// getter answers one "brandkit get" kind. It returns either a plain string
// or a value printed as JSON.
type getter struct {
	usage   string // arguments, for help output
	minArgs int
	maxArgs int
	run     func(r *brandkit.Resolver, args []string) (any, error)
}

// getterOrder lists get kinds in help order.
var getterOrder = []string{
	"color", "text", "palette", "font", "spacing", "container",
	"typography", "heading", "link", "layout", "numbering",
	"imagery", "guidelines", "brand-style", "topics",
}

// getters maps a kind to its lookup.
var getters = map[string]getter{
	"color": {"<name>", 1, 1, func(r *brandkit.Resolver, args []string) (any, error) {
		color, ok, err := r.Color(args[0], "")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q in theme %q", ErrColorNotFound, args[0], r.ActiveTheme())
		}
		return color, nil
	}},
	"text": {"[role]", 0, 1, func(r *brandkit.Resolver, args []string) (any, error) {
		return r.TextColor(optionalArg(args, 0), "")
	}},
	"palette": {"<palette> <color> [shade]", 2, 3, func(r *brandkit.Resolver, args []string) (any, error) {
		shade := brandkit.DefaultShade
		if len(args) == 3 {
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return nil, fmt.Errorf("%w: shade %q is not an integer", ErrUsage, args[2])
			}
			shade = n
		}
		color, ok := r.PaletteColor(args[0], args[1], shade)
		if !ok {
			return nil, fmt.Errorf("%w: palette %s.%s", ErrColorNotFound, args[0], args[1])
		}
		return color, nil
	}},
	"font": {"[kind]", 0, 1, func(r *brandkit.Resolver, args []string) (any, error) {
		return requireText(r.FontFamily(optionalArg(args, 0)), "font family", optionalArg(args, 0))
	}},
	"spacing": {"<step>", 1, 1, func(r *brandkit.Resolver, args []string) (any, error) {
		return r.Spacing(args[0])
	}},
	"container": {"[size]", 0, 1, func(r *brandkit.Resolver, args []string) (any, error) {
		return requireText(r.Container(optionalArg(args, 0)), "container", optionalArg(args, 0))
	}},
	"typography": {"[element]", 0, 1, func(r *brandkit.Resolver, args []string) (any, error) {
		return r.Typography(optionalArg(args, 0)), nil
	}},
	"heading": {"<h1..h6>", 1, 1, func(r *brandkit.Resolver, args []string) (any, error) {
		return r.Heading(args[0])
	}},
	"link": {"[state]", 0, 1, func(r *brandkit.Resolver, args []string) (any, error) {
		return r.LinkStyle(optionalArg(args, 0))
	}},
	"layout": {"<kind>", 1, 1, func(r *brandkit.Resolver, args []string) (any, error) {
		return r.Layout(args[0]), nil
	}},
	"numbering": {"<kind>", 1, 1, func(r *brandkit.Resolver, args []string) (any, error) {
		return r.Numbering(args[0]), nil
	}},
	"imagery": {"<category> [variant]", 1, 2, func(r *brandkit.Resolver, args []string) (any, error) {
		params, ok := r.ImageryParameters(args[0], optionalArg(args, 1))
		if !ok {
			return nil, fmt.Errorf("%w: imagery parameters %q", brandkit.ErrNotFound, args[0])
		}
		return params, nil
	}},
	"guidelines": {"<kind>", 1, 1, func(r *brandkit.Resolver, args []string) (any, error) {
		return r.ImageryGuidelines(args[0]), nil
	}},
	"brand-style": {"", 0, 0, func(r *brandkit.Resolver, _ []string) (any, error) {
		return r.BrandStyle(), nil
	}},
	"topics": {"", 0, 0, func(r *brandkit.Resolver, _ []string) (any, error) {
		return r.TopicStructure(), nil
	}},
}

// runGet prints one design token or token group.
func runGet(args []string, env *Environment) error {
	var common commonFlags
	fs := newCommonFlagSet("get", &common)
	positional, err := parseArgs(fs, args, env, func() { printGetUsage(env.Stderr) })
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: get requires a kind (see 'brandkit help get')", ErrUsage)
	}

	kind, kindArgs := positional[0], positional[1:]
	g, ok := getters[kind]
	if !ok {
		return fmt.Errorf("%w: unknown kind %q (see 'brandkit help get')", ErrUsage, kind)
	}
	if len(kindArgs) < g.minArgs || len(kindArgs) > g.maxArgs {
		return fmt.Errorf("%w: usage: brandkit get %s %s", ErrUsage, kind, g.usage)
	}

	s, err := loadSettings(&common, common.layer(), env)
	if err != nil {
		return err
	}
	r, err := s.openResolver()
	if err != nil {
		return err
	}

	value, err := g.run(r, kindArgs)
	if err != nil {
		return err
	}
	if text, ok := value.(string); ok {
		fmt.Fprintln(env.Stdout, text)
		return nil
	}
	return writeJSON(env.Stdout, value)
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// requireText turns an empty optional lookup into ErrNotFound.
func requireText(value, what, key string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("%w: %s %q", brandkit.ErrNotFound, what, key)
	}
	return value, nil
}
