package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ariel-frischer/relnotes/internal/changelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategory(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		category       ErrorCategory
		wantString     string
		wantExit       int
		wantDocumented bool
	}{
		"argument": {
			category: Argument, wantString: "Argument Error", wantExit: ExitInvalidArguments, wantDocumented: true,
		},
		"not found": {
			category: NotFound, wantString: "Not Found", wantExit: ExitNotFound, wantDocumented: true,
		},
		"section not found": {
			category: SectionNotFound, wantString: "Section Not Found", wantExit: ExitSectionNotFound, wantDocumented: true,
		},
		"configuration": {
			category: Configuration, wantString: "Configuration Error", wantExit: ExitConfiguration,
		},
		"runtime": {
			category: Runtime, wantString: "Runtime Error", wantExit: ExitFailure,
		},
		"usage": {
			category: Usage, wantString: "Usage Error", wantExit: ExitInvalidArguments,
		},
		"unknown": {
			category: ErrorCategory(99), wantString: "Error", wantExit: ExitFailure,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantString, tt.category.String())
			assert.Equal(t, tt.wantExit, tt.category.ExitCode())
			assert.Equal(t, tt.wantDocumented, tt.category.Documented())
		})
	}
}

func TestFromExtractError(t *testing.T) {
	t.Parallel()

	writeErr := fmt.Errorf("writing out.md: %w", stderrors.New("permission denied"))

	tests := map[string]struct {
		err          error
		wantCategory ErrorCategory
		wantMessage  string
	}{
		"invalid argument": {
			err:          &changelog.InvalidArgumentError{Argument: "semver", Message: "version is required"},
			wantCategory: Argument,
			wantMessage:  "--semver is required.",
		},
		"not found": {
			err:          &changelog.NotFoundError{Path: "CHANGELOG.md"},
			wantCategory: NotFound,
			wantMessage:  "File not found.",
		},
		"section not found": {
			err:          &changelog.SectionNotFoundError{Version: "9.9.9", Header: "## [9.9.9]"},
			wantCategory: SectionNotFound,
			wantMessage:  "Version not found.",
		},
		"wrapped section not found": {
			err:          fmt.Errorf("extracting: %w", &changelog.SectionNotFoundError{Version: "1"}),
			wantCategory: SectionNotFound,
			wantMessage:  "Version not found.",
		},
		"other error": {
			err:          writeErr,
			wantCategory: Runtime,
			wantMessage:  "writing out.md: permission denied",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cliErr := FromExtractError(tt.err)
			require.NotNil(t, cliErr)
			assert.Equal(t, tt.wantCategory, cliErr.Category)
			assert.Equal(t, tt.wantMessage, cliErr.Error())
			assert.ErrorIs(t, cliErr, tt.err)
		})
	}

	assert.Nil(t, FromExtractError(nil))
}

func TestVersionNotFound_ListsAvailableVersions(t *testing.T) {
	t.Parallel()

	cliErr := VersionNotFound(&changelog.SectionNotFoundError{
		Version:           "3.0.0",
		AvailableVersions: []string{"2.0.0", "1.0.0"},
	})

	require.Len(t, cliErr.Remediation, 2)
	assert.Equal(t, "Available versions: 2.0.0, 1.0.0", cliErr.Remediation[1])

	cliErr = VersionNotFound(&changelog.SectionNotFoundError{Version: "3.0.0", Header: "### [3.0.0]"})
	require.Len(t, cliErr.Remediation, 1)
	assert.Contains(t, cliErr.Remediation[0], `"### [3.0.0]"`)
}

func TestFormatError_SingleLine(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  *CLIError
		want string
	}{
		"file not found": {
			err:  FileNotFound(&changelog.NotFoundError{Path: "x.md"}),
			want: "File not found.\n",
		},
		"semver required": {
			err:  SemverRequired(nil),
			want: "--semver is required.\n",
		},
		"version not found": {
			err:  VersionNotFound(nil),
			want: "Version not found.\n",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatError(tt.err, FormatOptions{}))
		})
	}

	assert.Empty(t, FormatError(nil, FormatOptions{}))
}

func TestFormatError_Color(t *testing.T) {
	t.Parallel()

	out := FormatError(SemverRequired(nil), FormatOptions{Color: true})
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, MsgSemverRequired)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestFormatError_Detailed(t *testing.T) {
	t.Parallel()

	cause := &changelog.NotFoundError{Path: "missing.md"}
	out := FormatError(FileNotFound(cause), FormatOptions{Detailed: true})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "File not found.", lines[0])
	assert.Contains(t, out, "[Not Found]")
	assert.Contains(t, out, "To fix this:")
	assert.Contains(t, out, "Path checked: missing.md")
	assert.NotContains(t, out, "\x1b[")
}

func TestFprintError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	FprintError(&buf, VersionNotFound(nil), FormatOptions{})
	assert.Equal(t, "Version not found.\n", buf.String())

	buf.Reset()
	FprintError(&buf, nil, FormatOptions{})
	assert.Empty(t, buf.String())
}

func TestUseColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.True(t, UseColor("always", &buf))
	assert.False(t, UseColor("never", &buf))
	assert.False(t, UseColor("auto", &buf), "non-file writers are never terminals")
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, Runtime))
	assert.Nil(t, WrapWithMessage(nil, Configuration, "loading config"))

	base := stderrors.New("bad value")
	wrapped := WrapWithMessage(base, Configuration, "loading config", "Check .relnotes/config.yml")
	assert.Equal(t, "loading config: bad value", wrapped.Error())
	assert.Equal(t, ExitConfiguration, wrapped.ExitCode())
	assert.ErrorIs(t, wrapped, base)

	assert.Same(t, wrapped, AsCLIError(wrapped))
	assert.Nil(t, AsCLIError(base))

}
