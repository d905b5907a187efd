package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/alnah/go-brandkit"
	"github.com/alnah/go-brandkit/internal/config"
	"github.com/alnah/go-brandkit/internal/hints"
	"github.com/alnah/go-brandkit/internal/logger"
	"github.com/alnah/go-brandkit/internal/presets"
)

// settings is the merged configuration of one command invocation.
type settings struct {
	cfg *config.Config
	log *logger.Logger
}

// loadSettings merges, highest priority first: flags, BRANDKIT_*
// variables, the config file, defaults.
//
// The config file is --config, else BRANDKIT_CONFIG, else "brandkit" from
// the standard locations. Only the last one may be missing.
func loadSettings(common *commonFlags, flags *config.Config, env *Environment) (*settings, error) {
	log := logger.New(env.Stderr, common.verbosity()).With("cmd", common.cmd)

	vars := environMap(env.Environ())
	warnUnknownEnvVars(log, vars)

	envLayer, err := config.FromEnvironment(vars)
	if err != nil {
		return nil, err
	}

	fileLayer, err := loadConfigFile(common.config, vars[envConfigPath], log)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Merge(flags, envLayer, fileLayer, config.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return &settings{cfg: cfg, log: log}, nil
}

func loadConfigFile(flagValue, envValue string, log *logger.Logger) (*config.Config, error) {
	name, explicit := flagValue, true
	switch {
	case name != "":
	case envValue != "":
		name = envValue
	default:
		name, explicit = config.DefaultConfigName, false
	}

	cfg, err := config.LoadConfig(name)
	if err == nil {
		log.Debug().Str("config", name).Msg("loaded config")
		return cfg, nil
	}
	if errors.Is(err, config.ErrConfigNotFound) {
		if !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
	}
	return nil, err
}

// openResolver loads the configured document, or preset when no document
// path is set, and activates the configured theme.
func (s *settings) openResolver() (*brandkit.Resolver, error) {
	doc, err := s.loadDocument()
	if err != nil {
		return nil, err
	}

	r := brandkit.NewResolver(doc)
	if theme := s.cfg.Document.Theme; theme != "" {
		if err := r.SetTheme(theme); err != nil {
			return nil, fmt.Errorf("%w%s", err, hints.ForThemeNotFound(r.Themes()))
		}
	}
	s.log.Debug().Str("theme", r.ActiveTheme()).Msg("active theme")
	return r, nil
}

func (s *settings) loadDocument() (*brandkit.Document, error) {
	if path := s.cfg.Document.Path; path != "" {
		s.log.Debug().Str("document", path).Msg("loading document")
		doc, err := brandkit.LoadFile(path)
		if errors.Is(err, brandkit.ErrUnsupportedFormat) {
			return nil, fmt.Errorf("%w%s", err, hints.ForDocumentFormat())
		}
		return doc, err
	}

	preset, err := s.loadPreset()
	if err != nil {
		return nil, err
	}
	format, err := brandkit.FormatFromPath(preset.Filename)
	if err != nil {
		return nil, err
	}
	doc, err := brandkit.Parse(preset.Data, format)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", preset.Name, err)
	}
	return doc, nil
}

// loadPreset returns the configured preset, the default one when none is
// set.
func (s *settings) loadPreset() (*presets.Preset, error) {
	name := s.cfg.Document.Preset
	if name == "" {
		name = presets.DefaultPresetName
	}

	resolver, err := presets.NewResolver(s.cfg.Presets.Dir)
	if err != nil {
		return nil, err
	}
	preset, err := resolver.Load(name)
	if errors.Is(err, presets.ErrPresetNotFound) {
		available, _ := resolver.Names()
		return nil, fmt.Errorf("%w%s", err, hints.ForPresetNotFound(available))
	}
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("preset", name).Str("file", filepath.Base(preset.Filename)).Msg("loading preset")
	return preset, nil
}
