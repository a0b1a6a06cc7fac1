// Package config provides hierarchical configuration management for relnotes using koanf.
// Configuration is loaded with priority: environment variables > project config (.relnotes/config.yml)
// > user config (~/.config/relnotes/config.yml) > defaults. The project config may also be
// written as JSON (.relnotes/config.json) when no YAML file is present.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ariel-frischer/relnotes/internal/changelog"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "RELNOTES_"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Exit status policies.
const (
	// ExitStatusConventional returns a distinct non-zero code per failure kind.
	ExitStatusConventional = "conventional"
	// ExitStatusLegacy exits 0 after reporting a missing file, missing
	// --semver or missing version, matching the historical script.
	ExitStatusLegacy = "legacy"
)

// Configuration represents the relnotes CLI configuration
type Configuration struct {
	// HeadingPrefix precedes the bracketed version in section headings.
	// Can be set via RELNOTES_HEADING_PREFIX env var.
	HeadingPrefix string `koanf:"heading_prefix" validate:"required"`

	// Newline selects the separator used when writing the extracted section.
	// Valid values: "auto" (platform native), "lf", "crlf"
	Newline string `koanf:"newline" validate:"oneof=auto lf crlf"`

	// Color controls colored diagnostics on stderr: "auto", "always", "never"
	Color string `koanf:"color" validate:"oneof=auto always never"`

	// ExitStatus selects the exit code policy: "conventional" or "legacy"
	ExitStatus string `koanf:"exit_status" validate:"oneof=conventional legacy"`

	Debug bool `koanf:"debug"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .relnotes/config.yml)
	ProjectConfigPath string
	// UserConfigPath overrides the user config path (default: UserConfigPath())
	UserConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k, opts.UserConfigPath); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config if it exists.
func loadUserConfig(k *koanf.Koanf, customPath string) error {
	userPath := customPath
	if userPath == "" {
		userPath, _ = UserConfigPath()
	}

	if !fileExists(userPath) {
		return nil
	}
	if err := loadYAMLConfig(k, userPath, "user"); err != nil {
		return fmt.Errorf("loading user config: %w", err)
	}
	return nil
}

// loadProjectConfig loads project-level config (YAML preferred, JSON supported).
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	projectYAMLPath := ProjectConfigPath()
	if customPath != "" {
		projectYAMLPath = customPath
	}
	projectJSONPath := ProjectJSONConfigPath()

	switch {
	case fileExists(projectYAMLPath):
		if err := loadYAMLConfig(k, projectYAMLPath, "project"); err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
	case customPath == "" && fileExists(projectJSONPath):
		if err := k.Load(file.Provider(projectJSONPath), json.Parser()); err != nil {
			return fmt.Errorf("failed to load project config %s: %w", projectJSONPath, err)
		}
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals, normalizes and validates the merged values.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Newline = strings.ToLower(strings.TrimSpace(cfg.Newline))
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	cfg.ExitStatus = strings.ToLower(strings.TrimSpace(cfg.ExitStatus))

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: RELNOTES_HEADING_PREFIX -> heading_prefix
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// ExtractOptions returns the section extraction options for this configuration.
func (c *Configuration) ExtractOptions() changelog.Options {
	return changelog.Options{
		HeadingPrefix: c.HeadingPrefix,
		Newline:       c.Newline,
	}
}

// LegacyExitStatus returns true if documented failures should exit with status 0.
func (c *Configuration) LegacyExitStatus() bool {
	return c.ExitStatus == ExitStatusLegacy
}
