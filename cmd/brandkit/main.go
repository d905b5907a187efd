package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if slices.Contains(os.Args, "-v") || slices.Contains(os.Args, "--verbose") {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// commands maps command names to their handlers. help, version and
// completion are dispatched separately.
var commands = map[string]func(args []string, env *Environment) error{
	"themes":   runThemes,
	"css":      runCSS,
	"get":      runGet,
	"contrast": runContrast,
	"audit":    runAudit,
	"export":   runExport,
	"init":     runInit,
	"presets":  runPresets,
}

// isCommand reports whether arg names a command.
func isCommand(arg string) bool {
	switch arg {
	case "help", "version", "completion":
		return true
	}
	_, ok := commands[arg]
	return ok
}

// runMain dispatches args[1] and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	name, rest := args[1], args[2:]
	var err error

	switch {
	case name == "help" || name == "-h" || name == "--help":
		runHelp(rest, env)
		return ExitSuccess
	case name == "version" || name == "--version":
		fmt.Fprintf(env.Stdout, "brandkit %s\n", Version)
		return ExitSuccess
	case name == "completion":
		err = runCompletion(rest, env)
	case isCommand(name):
		err = commands[name](rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", name)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
