package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/relnotes/config.yml
// - macOS: ~/Library/Application Support/relnotes/config.yml
// - Windows: %APPDATA%\relnotes\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "relnotes", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .relnotes/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".relnotes", "config.yml")
}

// ProjectJSONConfigPath returns the path to the JSON form of the project config.
// It is read only when the YAML project config does not exist.
func ProjectJSONConfigPath() string {
	return filepath.Join(".relnotes", "config.json")
}
