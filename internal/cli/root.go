// Package cli implements the relnotes command line.
package cli

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/ariel-frischer/relnotes/internal/changelog"
	"github.com/ariel-frischer/relnotes/internal/config"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
	"github.com/ariel-frischer/relnotes/internal/version"
	"github.com/spf13/cobra"
)

// execState carries what a single invocation resolved so that error
// reporting after Execute can honor the loaded configuration.
type execState struct {
	cfg    *config.Configuration
	logger *log.Logger

	// loadConfig is replaced in tests.
	loadConfig func() (*config.Configuration, error)
}

func newRootCmd(state *execState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relnotes <src> <dst>",
		Short: "Extract one version's section from a changelog",
		Long: `Extract the body of a single version's section from a Keep a Changelog
style Markdown file and write it to a separate file.

The section starts after the first line beginning with "## [<version>]" and
ends before the next line beginning with "## [", or at the end of the file.
Leading blank lines are dropped; the destination is created or overwritten.

Settings are read from .relnotes/config.yml, ~/.config/relnotes/config.yml
and RELNOTES_* environment variables. Defaults:

` + indent(config.GetDefaultConfigTemplate(), "  "),
		Example: `  relnotes CHANGELOG.md RELEASE_NOTES.md --semver 1.2.3
  relnotes CHANGELOG.md notes.md --semver Unreleased
  RELNOTES_DEBUG=true relnotes CHANGELOG.md notes.md --semver 0.4.0`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			semver, _ := cmd.Flags().GetString("semver")
			return state.runExtract(cmd, args[0], args[1], semver)
		},
	}

	cmd.Flags().String("semver", "", "Version whose section is extracted (required)")

	return cmd
}

func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// Execute runs the CLI with the process arguments and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes relnotes with args and returns the process exit code.
// Diagnostics are written to stderr; nothing is written to stdout on success.
func Run(args []string, stdout, stderr io.Writer) int {
	return run(args, stdout, stderr, &execState{loadConfig: loadConfig})
}

func run(args []string, stdout, stderr io.Writer, state *execState) int {
	cmd := newRootCmd(state)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	defer changelog.SetDebugLogger(nil)

	err := cmd.Execute()
	if err == nil {
		return clierrors.ExitSuccess
	}
	return state.report(stderr, err)
}

// loadConfig loads configuration from the default locations.
func loadConfig() (*config.Configuration, error) {
	return config.Load("")
}

// configure loads configuration once and enables debug tracing if requested.
func (s *execState) configure(stderr io.Writer) error {
	load := s.loadConfig
	if load == nil {
		load = loadConfig
	}

	cfg, err := load()
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Configuration, "loading config",
			"Check .relnotes/config.yml and ~/.config/relnotes/config.yml",
			"Check RELNOTES_* environment variables")
	}
	s.cfg = cfg

	if cfg.Debug {
		s.logger = log.New(stderr, "", log.Ltime)
		changelog.SetDebugLogger(s.logger.Printf)
		s.logger.Printf("[cli] relnotes %s (commit %s, built %s)", version.Version, version.Commit, version.BuildDate)
	}
	return nil
}

// report prints err as a single diagnostic line and returns the exit code.
func (s *execState) report(stderr io.Writer, err error) int {
	cliErr := clierrors.AsCLIError(err)
	switch {
	case cliErr != nil:
	case isMissingSemverValue(err):
		cliErr = clierrors.SemverRequired(err)
	default:
		// Argument parsing errors raised by cobra before RunE.
		cliErr = clierrors.Wrap(err, clierrors.Usage, "Run 'relnotes --help' for usage")
	}

	colorMode := config.ColorAuto
	debug := false
	if s.cfg != nil {
		colorMode = s.cfg.Color
		debug = s.cfg.Debug
	}

	clierrors.FprintError(stderr, cliErr, clierrors.FormatOptions{
		Color:    clierrors.UseColor(colorMode, stderr),
		Detailed: debug,
	})

	if s.cfg != nil && s.cfg.LegacyExitStatus() && cliErr.Category.Documented() {
		return clierrors.ExitSuccess
	}
	return cliErr.ExitCode()
}

// isMissingSemverValue reports whether err is pflag's error for a trailing
// --semver with no value.
func isMissingSemverValue(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "flag needs an argument:") && strings.HasSuffix(msg, "--semver")
}
