package main

import (
	"fmt"
)

// runThemes lists themes in document order, marking the active one.
func runThemes(args []string, env *Environment) error {
	var common commonFlags
	fs := newCommonFlagSet("themes", &common)
	if _, err := parseArgs(fs, args, env, func() { printThemesUsage(env.Stderr) }); err != nil {
		return err
	}

	s, err := loadSettings(&common, common.layer(), env)
	if err != nil {
		return err
	}
	r, err := s.openResolver()
	if err != nil {
		return err
	}

	active := r.ActiveTheme()
	for _, name := range r.Themes() {
		marker := " "
		if name == active {
			marker = "*"
		}
		fmt.Fprintf(env.Stdout, "%s %s\n", marker, name)
	}
	return nil
}
