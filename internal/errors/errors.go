// Package errors provides structured error handling for the relnotes CLI.
// It maps failures to categories with a fixed one-line diagnostic and exit code.
package errors

import "fmt"

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument ErrorCategory = iota
	// NotFound errors occur when the source changelog cannot be read.
	NotFound
	// SectionNotFound errors occur when the requested version has no section.
	SectionNotFound
	// Configuration errors are caused by invalid configuration files or env vars.
	Configuration
	// Runtime errors occur during command execution, e.g. writing the output.
	Runtime
	// Usage errors are raised by argument parsing, e.g. a wrong argument count.
	Usage
)

// Exit codes per category under the conventional exit status policy.
const (
	ExitSuccess          = 0
	ExitFailure          = 1
	ExitNotFound         = 2
	ExitInvalidArguments = 3
	ExitSectionNotFound  = 4
	ExitConfiguration    = 5
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case NotFound:
		return "Not Found"
	case SectionNotFound:
		return "Section Not Found"
	case Configuration:
		return "Configuration Error"
	case Runtime:
		return "Runtime Error"
	case Usage:
		return "Usage Error"
	default:
		return "Error"
	}
}

// ExitCode returns the process exit code for the category.
func (c ErrorCategory) ExitCode() int {
	switch c {
	case Argument, Usage:
		return ExitInvalidArguments
	case NotFound:
		return ExitNotFound
	case SectionNotFound:
		return ExitSectionNotFound
	case Configuration:
		return ExitConfiguration
	default:
		return ExitFailure
	}
}

// Documented reports whether the category is one of the three failures the
// CLI reports with a fixed message: missing file, missing --semver, missing version.
func (c ErrorCategory) Documented() bool {
	return c == Argument || c == NotFound || c == SectionNotFound
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Argument, NotFound, etc.)
	Category ErrorCategory
	// Message is the single diagnostic line shown to the user.
	Message string
	// Remediation is a list of actionable steps, shown only in debug output.
	Remediation []string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error's category.
func (e *CLIError) ExitCode() int {
	return e.Category.ExitCode()
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Cause:       err,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
		Cause:       err,
	}
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}
