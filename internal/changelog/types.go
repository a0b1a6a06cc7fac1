package changelog

import (
	"runtime"
	"strings"
)

const (
	// DefaultHeadingPrefix is the heading that introduces a version section.
	DefaultHeadingPrefix = "## "

	// MarkerPrefix is the literal prefix of any version section heading.
	MarkerPrefix = DefaultHeadingPrefix + "["
)

// Newline modes accepted by Options.Newline.
const (
	NewlineAuto = "auto"
	NewlineLF   = "lf"
	NewlineCRLF = "crlf"
)

// Document is an ordered sequence of text lines read from a changelog file.
// It is not modified after loading.
type Document struct {
	Path  string
	Lines []string
}

// Section is the body of one version section located in a Document.
// StartLine is the index of the heading line; EndLine is the index of the
// next section heading, or len(Lines) when the section runs to end of document.
type Section struct {
	Version   string
	Header    string
	StartLine int
	EndLine   int
	Body      []string
}

// Options controls how sections are located and rendered.
// The zero value behaves like DefaultOptions.
type Options struct {
	// HeadingPrefix precedes the bracketed version, e.g. "## ".
	HeadingPrefix string
	// Newline selects the separator used to join body lines: auto, lf or crlf.
	Newline string
}

// DefaultOptions returns the options matching the Keep a Changelog convention.
func DefaultOptions() Options {
	return Options{
		HeadingPrefix: DefaultHeadingPrefix,
		Newline:       NewlineAuto,
	}
}

// MarkerPrefix returns the prefix shared by every section heading.
func (o Options) MarkerPrefix() string {
	if o.HeadingPrefix == "" {
		return MarkerPrefix
	}
	return o.HeadingPrefix + "["
}

// TargetHeader returns the heading that introduces the given version.
func (o Options) TargetHeader(version string) string {
	return o.MarkerPrefix() + version + "]"
}

// Separator returns the line separator for the configured newline mode.
func (o Options) Separator() string {
	switch strings.ToLower(o.Newline) {
	case NewlineLF:
		return "\n"
	case NewlineCRLF:
		return "\r\n"
	default:
		return PlatformNewline()
	}
}

// PlatformNewline returns the native line separator of the running OS.
func PlatformNewline() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// IsEmpty returns true if the section has no body lines.
func (s *Section) IsEmpty() bool {
	return len(s.Body) == 0
}
