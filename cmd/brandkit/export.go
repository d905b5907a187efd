package main

import (
	"strings"

	"github.com/alnah/go-brandkit/internal/config"
)

// runExport serializes the whole document as JSON or YAML.
func runExport(args []string, env *Environment) error {
	var f exportFlags
	fs := newExportFlagSet(&f)
	if _, err := parseArgs(fs, args, env, func() { printExportUsage(env.Stderr) }); err != nil {
		return err
	}

	layer := f.common.layer()
	layer.Export.Format = f.format
	if fs.Changed("pretty") {
		layer.Export.Pretty = &f.pretty
	}

	s, err := loadSettings(&f.common, layer, env)
	if err != nil {
		return err
	}
	r, err := s.openResolver()
	if err != nil {
		return err
	}

	var out string
	if strings.EqualFold(s.cfg.Export.Format, config.FormatYAML) {
		out, err = r.ExportYAML()
	} else {
		out, err = r.Export(s.cfg.PrettyExport())
	}
	if err != nil {
		return err
	}
	return writeOutput(env.Stdout, f.output, out, s.log)
}
