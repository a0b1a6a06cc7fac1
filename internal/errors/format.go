package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// FormatOptions controls how a CLIError is rendered.
type FormatOptions struct {
	// Color enables ANSI colors.
	Color bool
	// Detailed appends the category, cause and remediation steps after the
	// diagnostic line. Used in debug mode only.
	Detailed bool
}

// FormatError formats a CLIError for display in the terminal.
// Without Detailed the output is exactly one line: the message.
func FormatError(err *CLIError, opts FormatOptions) string {
	if err == nil {
		return ""
	}

	errorMsg := newColor(opts.Color, color.FgRed)
	var sb strings.Builder
	sb.WriteString(errorMsg.Sprint(err.Message))
	sb.WriteString("\n")

	if !opts.Detailed {
		return sb.String()
	}

	categoryFmt := newColor(opts.Color, color.FgYellow)
	fixLabel := newColor(opts.Color, color.FgGreen, color.Bold)
	bullet := newColor(opts.Color, color.FgGreen)

	sb.WriteString("  [")
	sb.WriteString(categoryFmt.Sprint(err.Category.String()))
	sb.WriteString("]")
	if err.Cause != nil {
		sb.WriteString(" ")
		sb.WriteString(err.Cause.Error())
	}
	sb.WriteString("\n")

	if len(err.Remediation) > 0 {
		sb.WriteString("  ")
		sb.WriteString(fixLabel.Sprint("To fix this:"))
		sb.WriteString("\n")
		for _, step := range err.Remediation {
			sb.WriteString("    ")
			sb.WriteString(bullet.Sprint("•"))
			sb.WriteString(" ")
			sb.WriteString(step)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// FprintError prints a formatted CLIError to the given writer.
func FprintError(w io.Writer, err *CLIError, opts FormatOptions) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err, opts))
}

// UseColor resolves a color mode ("auto", "always", "never") for writer w.
// In auto mode colors are used only when w is a terminal and NO_COLOR is unset.
func UseColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// newColor builds a color that ignores fatih/color's global stdout detection,
// since diagnostics go to stderr.
func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
