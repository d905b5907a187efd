package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "BRANDKIT_"

// FromEnvironment reads BRANDKIT_* variables from vars into a Config
// layer. A nil map reads the process environment. Unset variables leave
// their fields at the zero value.
func FromEnvironment(vars map[string]string) (*Config, error) {
	return fromEnv(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func fromEnv(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("%w: environment: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge combines layers from highest to lowest priority: a field keeps the
// first non-zero value found. Nil layers are skipped. Pointer fields are
// compared as pointers, so an explicit false is kept.
// Typical order: flags, environment, file, DefaultConfig().
func Merge(layers ...*Config) (*Config, error) {
	merged := &Config{}
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if err := mergo.Merge(merged, layer, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("merging config: %w", err)
		}
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// PrettyExport reports export.pretty, true when unset.
func (c *Config) PrettyExport() bool {
	return c.Export.Pretty == nil || *c.Export.Pretty
}
