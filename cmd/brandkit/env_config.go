package main

import (
	"slices"
	"strings"

	"github.com/alnah/go-brandkit/internal/config"
	"github.com/alnah/go-brandkit/internal/logger"
)

// envConfigPath names the variable selecting the config file. The other
// BRANDKIT_* variables are read by config.FromEnvironment.
const envConfigPath = config.EnvPrefix + "CONFIG"

// knownEnvVars lists valid BRANDKIT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfigPath:               true,
	"BRANDKIT_DOCUMENT":         true,
	"BRANDKIT_PRESET":           true,
	"BRANDKIT_THEME":            true,
	"BRANDKIT_FORMAT":           true,
	"BRANDKIT_AUDIT_BACKGROUND": true,
	"BRANDKIT_AUDIT_ROLES":      true,
	"BRANDKIT_PRESETS_DIR":      true,
}

// environMap splits KEY=value pairs. The result is never nil, so
// config.FromEnvironment never falls back to the process environment.
func environMap(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if ok && key != "" {
			vars[key] = value
		}
	}
	return vars
}

// warnUnknownEnvVars logs a warning for each unrecognized BRANDKIT_* variable,
// in name order. Helps catch typos like BRANDKIT_THEMES.
func warnUnknownEnvVars(log *logger.Logger, vars map[string]string) {
	var unknown []string
	for name := range vars {
		if strings.HasPrefix(name, config.EnvPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	for _, name := range unknown {
		log.Warn().Str("name", name).Msg("unknown environment variable (typo?)")
	}
}
