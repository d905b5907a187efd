package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-brandkit/internal/fileutil"
	"github.com/alnah/go-brandkit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultConfigName is looked up when no --config flag is given.
const DefaultConfigName = "brandkit"

// userConfigSubdir is the directory searched under os.UserConfigDir.
const userConfigSubdir = "go-brandkit"

// Field length limits.
const (
	MaxPathLength   = 4096
	MaxNameLength   = 100 // theme, preset, color role
	MaxFormatLength = 10
	MaxRoles        = 64
)

// Export formats accepted by export.format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds CLI settings. Every field is optional; zero values are
// filled from lower-priority layers by Merge.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Export   ExportConfig   `yaml:"export"`
	Audit    AuditConfig    `yaml:"audit"`
	Presets  PresetsConfig  `yaml:"presets"`
}

// DocumentConfig selects the branding document and theme.
type DocumentConfig struct {
	Path   string `yaml:"path" env:"DOCUMENT"` // File path (.json, .yaml, .yml, .toml)
	Preset string `yaml:"preset" env:"PRESET"` // Preset name, used when Path is empty
	Theme  string `yaml:"theme" env:"THEME"`   // Empty = "light"
}

// ExportConfig defines export output options.
type ExportConfig struct {
	Format string `yaml:"format" env:"FORMAT"` // "json" or "yaml" (default: "json")
	Pretty *bool  `yaml:"pretty"`              // Indent JSON (default: true)
}

// AuditConfig defines contrast audit options.
type AuditConfig struct {
	Background string   `yaml:"background" env:"AUDIT_BACKGROUND"`        // Theme color key (default: "background")
	Roles      []string `yaml:"roles" env:"AUDIT_ROLES" envSeparator:","` // Empty = every text role
}

// PresetsConfig defines where custom presets live.
type PresetsConfig struct {
	Dir string `yaml:"dir" env:"PRESETS_DIR"` // Empty = built-in presets only
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("document.path", c.Document.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.preset", c.Document.Preset, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.theme", c.Document.Theme, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("presets.dir", c.Presets.Dir, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("export.format", c.Export.Format, MaxFormatLength); err != nil {
		return err
	}
	if c.Export.Format != "" {
		switch strings.ToLower(c.Export.Format) {
		case FormatJSON, FormatYAML:
			// valid
		default:
			return fmt.Errorf("%w: export.format %q (must be json or yaml)", ErrInvalidValue, c.Export.Format)
		}
	}

	if err := validateFieldLength("audit.background", c.Audit.Background, MaxNameLength); err != nil {
		return err
	}
	if len(c.Audit.Roles) > MaxRoles {
		return fmt.Errorf("%w: audit.roles (%d entries, max %d)", ErrFieldTooLong, len(c.Audit.Roles), MaxRoles)
	}
	for i, role := range c.Audit.Roles {
		if err := validateFieldLength(fmt.Sprintf("audit.roles[%d]", i), role, MaxNameLength); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the lowest-priority layer.
func DefaultConfig() *Config {
	pretty := true
	return &Config{
		Export: ExportConfig{Format: FormatJSON, Pretty: &pretty},
		Audit:  AuditConfig{Background: "background"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files tried for a config name, in lookup order:
// current directory, then ~/.config/go-brandkit/, each with .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigSubdir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
