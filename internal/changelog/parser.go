package changelog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for changelog operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// NotFoundError is returned when the source changelog cannot be opened.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("changelog %s not found: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("changelog %s not found", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// CheckSource returns NotFoundError if path does not exist or is a directory.
// The file is not opened.
func CheckSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &NotFoundError{Path: path, Err: err}
	}
	if info.IsDir() {
		return &NotFoundError{Path: path, Err: fmt.Errorf("is a directory")}
	}
	return nil
}

// LoadDocument reads the changelog at path into a Document.
// Returns NotFoundError if the path does not exist, is not accessible,
// or is a directory.
func LoadDocument(path string) (*Document, error) {
	if err := CheckSource(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	doc, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc.Path = path

	logDebug("[changelog] loaded %s (%d lines)", path, len(doc.Lines))
	return doc, nil
}

// ParseDocument decodes r as UTF-8 and splits it into lines.
// A leading byte order mark is dropped and ill-formed bytes become U+FFFD.
func ParseDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("decoding changelog: %w", err)
	}

	return &Document{Lines: SplitLines(string(data))}, nil
}

// SplitLines splits text on "\n", "\r\n" and "\r".
// A trailing line break does not produce a final empty line.
func SplitLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)

	for len(text) > 0 {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			lines = append(lines, text)
			break
		}

		lines = append(lines, text[:i])
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			i++
		}
		text = text[i+1:]
	}

	return lines
}
