package config

import "github.com/ariel-frischer/relnotes/internal/changelog"

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# relnotes configuration
# Project: .relnotes/config.yml   User: ~/.config/relnotes/config.yml
# Every key can be overridden with a RELNOTES_<KEY> environment variable.

heading_prefix: "## "                 # Heading before the bracketed version
newline: auto                         # Output line separator: auto | lf | crlf
color: auto                           # Colored diagnostics: auto | always | never
exit_status: conventional             # Exit codes on failure: conventional | legacy (always 0)
debug: false                          # Trace extraction steps on stderr
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		// heading_prefix: "## " matches Keep a Changelog version headings ("## [1.2.3] - 2024-01-15").
		"heading_prefix": changelog.DefaultHeadingPrefix,
		// newline: "auto" joins extracted lines with the platform separator.
		"newline": changelog.NewlineAuto,
		"color":   ColorAuto,
		// exit_status: conventional non-zero codes so CI pipelines fail on a missing section.
		"exit_status": ExitStatusConventional,
		"debug":       false,
	}
}
