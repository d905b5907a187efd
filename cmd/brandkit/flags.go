package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-brandkit/internal/config"
	"github.com/alnah/go-brandkit/internal/logger"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	cmd        string // command name, attached to log lines
	config     string
	document   string
	preset     string
	theme      string
	presetsDir string
	quiet      bool
	verbose    bool
}

// outputFlags holds flags for commands that can write a file.
type outputFlags struct {
	path  string
	force bool
}

// exportFlags holds flags for the export command.
type exportFlags struct {
	common commonFlags
	output outputFlags
	format string
	pretty bool
}

// auditFlags holds flags for the audit command.
type auditFlags struct {
	common     commonFlags
	background string
	roles      []string
	strict     bool
	json       bool
}

// contrastFlags holds flags for the contrast command.
type contrastFlags struct {
	quiet bool
	json  bool
}

// cssFlags holds flags for the css command.
type cssFlags struct {
	common commonFlags
	output outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	f.cmd = fs.Name()
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.document, "document", "d", "", "branding document (.json, .yaml, .yml, .toml)")
	fs.StringVarP(&f.preset, "preset", "p", "", "built-in or custom preset name")
	fs.StringVarP(&f.theme, "theme", "t", "", "theme name (default: light)")
	fs.StringVar(&f.presetsDir, "presets-dir", "", "directory of custom presets")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addOutputFlags adds file output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "write to file instead of stdout")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing output file")
}

// layer converts common flags into the highest-priority config layer.
func (f *commonFlags) layer() *config.Config {
	return &config.Config{
		Document: config.DocumentConfig{
			Path:   f.document,
			Preset: f.preset,
			Theme:  f.theme,
		},
		Presets: config.PresetsConfig{Dir: f.presetsDir},
	}
}

// verbosity maps --quiet/--verbose to a log level; --quiet wins.
func (f *commonFlags) verbosity() logger.Verbosity {
	switch {
	case f.quiet:
		return logger.Quiet
	case f.verbose:
		return logger.Verbose
	default:
		return logger.Normal
	}
}

// newCommonFlagSet creates the FlagSet of commands taking only common flags.
func newCommonFlagSet(name string, f *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	addCommonFlags(fs, f)
	return fs
}

// newCSSFlagSet creates the FlagSet of the css command.
func newCSSFlagSet(f *cssFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("css", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	return fs
}

// newExportFlagSet creates the FlagSet of the export command.
func newExportFlagSet(f *exportFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	fs.StringVar(&f.format, "format", "", "output format: json, yaml (default: json)")
	fs.BoolVar(&f.pretty, "pretty", true, "indent JSON output")
	return fs
}

// newAuditFlagSet creates the FlagSet of the audit command.
func newAuditFlagSet(f *auditFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("audit", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.background, "background", "b", "", "theme color checked against (default: background)")
	fs.StringSliceVarP(&f.roles, "role", "r", nil, "text roles to check (repeatable, default: all)")
	fs.BoolVar(&f.strict, "strict", false, "fail when a role is below AA")
	fs.BoolVar(&f.json, "json", false, "print results as JSON")
	return fs
}

// newContrastFlagSet creates the FlagSet of the contrast command.
func newContrastFlagSet(f *contrastFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("contrast", flag.ContinueOnError)
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only print the level")
	fs.BoolVar(&f.json, "json", false, "print the result as JSON")
	return fs
}

// newInitFlagSet creates the FlagSet of the init command.
func newInitFlagSet(common *commonFlags, out *outputFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	addCommonFlags(fs, common)
	addOutputFlags(fs, out)
	return fs
}

// parseArgs parses args with fs, printing errors and usage to env.Stderr.
// Parse failures wrap ErrUsage; a help request is returned as flag.ErrHelp.
func parseArgs(fs *flag.FlagSet, args []string, env *Environment, usage func()) ([]string, error) {
	fs.SetOutput(env.Stderr)
	fs.Usage = usage
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return fs.Args(), nil
}
