package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  themes      List themes of the document")
	fmt.Fprintln(w, "  css         Print CSS custom properties for a theme")
	fmt.Fprintln(w, "  get         Look up a design token")
	fmt.Fprintln(w, "  contrast    Check the WCAG contrast of two colors")
	fmt.Fprintln(w, "  audit       Check theme text colors against the background")
	fmt.Fprintln(w, "  export      Export the document as JSON or YAML")
	fmt.Fprintln(w, "  init        Write a preset to a new branding document")
	fmt.Fprintln(w, "  presets     List available presets")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'brandkit help <command>' for details on a specific command.")
}

// printDocumentFlags prints the flags shared by document commands.
func printDocumentFlags(w io.Writer) {
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -d, --document <path>     Branding document (.json, .yaml, .yml, .toml)")
	fmt.Fprintln(w, "  -p, --preset <name>       Preset used when no document is given (default: default)")
	fmt.Fprintln(w, "  -t, --theme <name>        Theme name (default: light)")
	fmt.Fprintln(w, "      --presets-dir <dir>   Directory of custom presets")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
}

// printOutputFlags prints the file output flags.
func printOutputFlags(w io.Writer) {
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Write to file instead of stdout")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing output file")
	fmt.Fprintln(w)
}

func printThemesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit themes [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List themes in document order. The active theme is marked with '*'.")
	fmt.Fprintln(w)
	printDocumentFlags(w)
}

func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print a :root block of CSS custom properties for the theme colors")
	fmt.Fprintln(w, "and the spacing scale.")
	fmt.Fprintln(w)
	printOutputFlags(w)
	printDocumentFlags(w)
}

func printGetUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit get <kind> [args] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Look up a design token. Single values print as text, groups as JSON.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Kinds:")
	for _, kind := range getterOrder {
		fmt.Fprintf(w, "  %-12s %s\n", kind, getters[kind].usage)
	}
	fmt.Fprintln(w)
	printDocumentFlags(w)
}

func printContrastUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit contrast <foreground> <background> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compute the WCAG contrast ratio of two hex colors (#RRGGBB).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -q, --quiet               Only print the level: AAA, AA, AA large, fail")
	fmt.Fprintln(w, "      --json                Print the result as JSON")
}

func printAuditUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit audit [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check every text color of the theme against a background color.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Audit:")
	fmt.Fprintln(w, "  -b, --background <key>    Theme color to check against (default: background)")
	fmt.Fprintln(w, "  -r, --role <name>         Text role to check, repeatable (default: all)")
	fmt.Fprintln(w, "      --strict              Exit 1 when a role is below AA")
	fmt.Fprintln(w, "      --json                Print results as JSON")
	fmt.Fprintln(w)
	printDocumentFlags(w)
}

func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit export [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serialize the whole document, keys in document order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export:")
	fmt.Fprintln(w, "      --format <s>          Output format: json, yaml (default: json)")
	fmt.Fprintln(w, "      --pretty              Indent JSON output (default: true)")
	fmt.Fprintln(w)
	printOutputFlags(w)
	printDocumentFlags(w)
}

func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit init [preset] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a preset to a file as a starting branding document.")
	fmt.Fprintln(w, "The output defaults to brand.<ext>, using the preset's extension.")
	fmt.Fprintln(w)
	printOutputFlags(w)
	printDocumentFlags(w)
}

func printPresetsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandkit presets [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List built-in presets and those found in --presets-dir.")
	fmt.Fprintln(w)
	printDocumentFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "themes":
		printThemesUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "get":
		printGetUsage(env.Stdout)
	case "contrast":
		printContrastUsage(env.Stdout)
	case "audit":
		printAuditUsage(env.Stdout)
	case "export":
		printExportUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "presets":
		printPresetsUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: brandkit version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: brandkit help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
