package cli

import (
	"github.com/ariel-frischer/relnotes/internal/changelog"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
	"github.com/spf13/cobra"
)

// runExtract writes the section for semver from src to dst.
// Failures are returned as CLIErrors carrying the fixed diagnostic line.
func (s *execState) runExtract(cmd *cobra.Command, src, dst, semver string) error {
	if err := s.configure(cmd.ErrOrStderr()); err != nil {
		return err
	}

	section, err := changelog.Extract(src, dst, semver, s.cfg.ExtractOptions())
	if err != nil {
		return clierrors.FromExtractError(err)
	}

	if s.logger != nil {
		s.logger.Printf("[cli] extracted %q (lines %d-%d of %s) to %s",
			section.Header, section.StartLine+1, section.EndLine, src, dst)
		if section.IsEmpty() {
			s.logger.Printf("[cli] section %q has no body; wrote an empty file", section.Header)
		}
	}
	return nil
}
