package changelog

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidArgumentError is returned when a required input is missing or blank.
type InvalidArgumentError struct {
	Argument string
	Message  string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Argument, e.Message)
}

// SectionNotFoundError is returned when no line starts with the target header.
type SectionNotFoundError struct {
	Version           string
	Header            string
	AvailableVersions []string
}

func (e *SectionNotFoundError) Error() string {
	if len(e.AvailableVersions) == 0 {
		return fmt.Sprintf("section %q not found (no versions in document)", e.Header)
	}
	return fmt.Sprintf("section %q not found (available: %s)",
		e.Header, strings.Join(e.AvailableVersions, ", "))
}

// IsSectionNotFound returns true if the error is a SectionNotFoundError.
func IsSectionNotFound(err error) bool {
	var snf *SectionNotFoundError
	return errors.As(err, &snf)
}

// IsInvalidArgument returns true if the error is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}

// ValidateVersion rejects empty or whitespace-only version identifiers.
// Any other string is accepted as an opaque token.
func ValidateVersion(version string) error {
	if strings.TrimSpace(version) == "" {
		return &InvalidArgumentError{Argument: "semver", Message: "version is required"}
	}
	return nil
}

// Find locates the section for version.
// The section starts after the first line beginning with the target header
// and ends before the next line beginning with the marker prefix, or at the
// end of the document. Leading blank lines of the body are dropped.
func (d *Document) Find(version string, opts Options) (*Section, error) {
	if err := ValidateVersion(version); err != nil {
		return nil, err
	}

	header := opts.TargetHeader(version)
	start := d.indexFrom(0, header)
	if start < 0 {
		logDebug("[changelog] header %q not found", header)
		return nil, &SectionNotFoundError{
			Version:           version,
			Header:            header,
			AvailableVersions: d.Versions(opts),
		}
	}

	end := d.indexFrom(start+1, opts.MarkerPrefix())
	if end < 0 {
		end = len(d.Lines)
	}
	logDebug("[changelog] section %q spans lines %d..%d", header, start, end)

	return &Section{
		Version:   version,
		Header:    d.Lines[start],
		StartLine: start,
		EndLine:   end,
		Body:      trimLeadingBlank(d.Lines[start+1 : end]),
	}, nil
}

// Versions returns the bracketed token of every section heading, in document order.
func (d *Document) Versions(opts Options) []string {
	marker := opts.MarkerPrefix()
	versions := []string{}

	for _, line := range d.Lines {
		if !strings.HasPrefix(line, marker) {
			continue
		}
		rest := line[len(marker):]
		if i := strings.IndexByte(rest, ']'); i >= 0 {
			rest = rest[:i]
		}
		versions = append(versions, rest)
	}

	return versions
}

// indexFrom returns the index of the first line at or after from that starts
// with prefix, or -1.
func (d *Document) indexFrom(from int, prefix string) int {
	for i := from; i < len(d.Lines); i++ {
		if strings.HasPrefix(d.Lines[i], prefix) {
			return i
		}
	}
	return -1
}

// trimLeadingBlank drops leading lines that are empty or whitespace-only.
func trimLeadingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	return lines
}
