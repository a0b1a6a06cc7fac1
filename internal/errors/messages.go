package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/ariel-frischer/relnotes/internal/changelog"
)

// Fixed diagnostics for the documented failure kinds.
const (
	MsgFileNotFound    = "File not found."
	MsgSemverRequired  = "--semver is required."
	MsgVersionNotFound = "Version not found."
)

// FileNotFound creates an error for a missing or unreadable source file.
func FileNotFound(cause error) *CLIError {
	remediation := []string{"Check the <src> path points to an existing changelog file"}
	var nf *changelog.NotFoundError
	if stderrors.As(cause, &nf) {
		remediation = append(remediation, fmt.Sprintf("Path checked: %s", nf.Path))
	}
	return &CLIError{
		Category:    NotFound,
		Message:     MsgFileNotFound,
		Remediation: remediation,
		Cause:       cause,
	}
}

// SemverRequired creates an error for a missing or blank --semver value.
func SemverRequired(cause error) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  MsgSemverRequired,
		Remediation: []string{
			"Pass the version to extract, e.g. --semver 1.2.3",
		},
		Cause: cause,
	}
}

// VersionNotFound creates an error for a version with no matching section heading.
func VersionNotFound(cause error) *CLIError {
	header := "## [<version>]"
	var snf *changelog.SectionNotFoundError
	hasDetail := stderrors.As(cause, &snf)
	if hasDetail && snf.Header != "" {
		header = snf.Header
	}

	remediation := []string{fmt.Sprintf("Check the changelog has a line starting with %q", header)}
	if hasDetail && len(snf.AvailableVersions) > 0 {
		remediation = append(remediation,
			fmt.Sprintf("Available versions: %s", strings.Join(snf.AvailableVersions, ", ")))
	}
	return &CLIError{
		Category:    SectionNotFound,
		Message:     MsgVersionNotFound,
		Remediation: remediation,
		Cause:       cause,
	}
}

// FromExtractError classifies an error returned by changelog.Extract.
// Errors outside the documented kinds become Runtime errors carrying their own text.
func FromExtractError(err error) *CLIError {
	switch {
	case err == nil:
		return nil
	case changelog.IsInvalidArgument(err):
		return SemverRequired(err)
	case changelog.IsNotFound(err):
		return FileNotFound(err)
	case changelog.IsSectionNotFound(err):
		return VersionNotFound(err)
	default:
		return Wrap(err, Runtime)
	}
}
