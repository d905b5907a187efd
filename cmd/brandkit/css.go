package main

// runCSS prints the :root custom properties of the active theme.
func runCSS(args []string, env *Environment) error {
	var f cssFlags
	fs := newCSSFlagSet(&f)
	if _, err := parseArgs(fs, args, env, func() { printCSSUsage(env.Stderr) }); err != nil {
		return err
	}

	s, err := loadSettings(&f.common, f.common.layer(), env)
	if err != nil {
		return err
	}
	r, err := s.openResolver()
	if err != nil {
		return err
	}

	css, err := r.CSSVariables("")
	if err != nil {
		return err
	}
	return writeOutput(env.Stdout, f.output, css, s.log)
}
