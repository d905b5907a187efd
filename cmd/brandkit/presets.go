package main

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-brandkit/internal/presets"
)

// runPresets lists built-in and custom preset names.
func runPresets(args []string, env *Environment) error {
	var common commonFlags
	fs := newCommonFlagSet("presets", &common)
	if _, err := parseArgs(fs, args, env, func() { printPresetsUsage(env.Stderr) }); err != nil {
		return err
	}

	s, err := loadSettings(&common, common.layer(), env)
	if err != nil {
		return err
	}
	resolver, err := presets.NewResolver(s.cfg.Presets.Dir)
	if err != nil {
		return err
	}
	names, err := resolver.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}

// runInit writes a preset to a file as a starting branding document.
// The output defaults to "brand" plus the preset's extension.
func runInit(args []string, env *Environment) error {
	var (
		common commonFlags
		out    outputFlags
	)
	fs := newInitFlagSet(&common, &out)
	positional, err := parseArgs(fs, args, env, func() { printInitUsage(env.Stderr) })
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: init takes at most one preset name", ErrUsage)
	}

	layer := common.layer()
	if len(positional) == 1 {
		layer.Document.Preset = positional[0]
	}
	s, err := loadSettings(&common, layer, env)
	if err != nil {
		return err
	}

	preset, err := s.loadPreset()
	if err != nil {
		return err
	}
	if out.path == "" {
		out.path = "brand" + filepath.Ext(preset.Filename)
	}
	if err := writeOutput(env.Stdout, out, string(preset.Data), s.log); err != nil {
		return err
	}
	if !common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s from preset %q\n", out.path, preset.Name)
	}
	return nil
}
