package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-brandkit/internal/presets"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
	Args  []string // values for the first positional argument
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"format": {Values: []string{"json", "yaml"}},

	// File flags with glob patterns
	"config":   {FileGlob: "*.yaml,*.yml"},
	"document": {FileGlob: "*.json,*.yaml,*.yml,*.toml"},
	"output":   {FileGlob: "*"},

	// Directory flags
	"presets-dir": {IsDir: true},
}

// embeddedPresetNames lists built-in presets for --preset completion.
func embeddedPresetNames() []string {
	names, err := presets.NewEmbeddedLoader().Names()
	if err != nil {
		return nil
	}
	return names
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}
		if f.Name == "preset" {
			fd.Type = flagEnum
			fd.Values = embeddedPresetNames()
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets - single source of truth.
func getCommands() []commandDef {
	var (
		common   commonFlags
		css      cssFlags
		export   exportFlags
		audit    auditFlags
		contrast contrastFlags
		initOut  outputFlags
	)
	commonDefs := func(name string) []flagDef {
		return extractFlagsFromFlagSet(newCommonFlagSet(name, &common))
	}

	return []commandDef{
		{Name: "themes", Desc: "List themes of the document", Flags: commonDefs("themes")},
		{Name: "css", Desc: "Print CSS custom properties for a theme", Flags: extractFlagsFromFlagSet(newCSSFlagSet(&css))},
		{Name: "get", Desc: "Look up a design token", Flags: commonDefs("get"), Args: getterOrder},
		{Name: "contrast", Desc: "Check the WCAG contrast of two colors", Flags: extractFlagsFromFlagSet(newContrastFlagSet(&contrast))},
		{Name: "audit", Desc: "Check theme text colors against the background", Flags: extractFlagsFromFlagSet(newAuditFlagSet(&audit))},
		{Name: "export", Desc: "Export the document as JSON or YAML", Flags: extractFlagsFromFlagSet(newExportFlagSet(&export))},
		{Name: "init", Desc: "Write a preset to a new branding document", Flags: extractFlagsFromFlagSet(newInitFlagSet(&common, &initOut)), Args: embeddedPresetNames()},
		{Name: "presets", Desc: "List available presets", Flags: commonDefs("presets")},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command", Args: helpTopics()},
		{Name: "completion", Desc: "Generate shell completion script", Args: []string{"bash", "zsh", "fish", "powershell"}},
	}
}

// helpTopics lists command names accepted by "brandkit help".
func helpTopics() []string {
	return []string{"themes", "css", "get", "contrast", "audit", "export", "init", "presets", "completion", "version", "help"}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(brandkit completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(brandkit completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    brandkit completion fish > ~/.config/fish/completions/brandkit.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    brandkit completion powershell | Out-String | Invoke-Expression")
}
