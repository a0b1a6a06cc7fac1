package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError reports an invalid config file or value.
// Line is set for syntax errors, Field for value errors.
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
	Field    string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	case e.Field != "":
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
	}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateYAMLSyntax checks that the file at filePath parses as YAML.
// A missing file is valid.
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	return ValidateYAMLSyntaxFromBytes(data, filePath)
}

// ValidateYAMLSyntaxFromBytes checks that data parses as YAML.
// Blank input is valid.
func ValidateYAMLSyntaxFromBytes(data []byte, filePath string) error {
	if strings.TrimSpace(string(data)) == "" {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		pos := parseYAMLError(err.Error())
		return &ValidationError{
			FilePath: filePath,
			Line:     pos.line,
			Column:   pos.column,
			Message:  pos.message,
		}
	}
	return nil
}

// configValidator reports fields by their koanf key, e.g. "exit_status".
var configValidator = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}()

// ValidateConfigValues checks the struct tags of cfg and the constraints the
// tags cannot express. The first failure is returned as a ValidationError.
func ValidateConfigValues(cfg *Configuration, filePath string) error {
	if err := configValidator.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &ValidationError{
				FilePath: filePath,
				Field:    fieldErrs[0].Field(),
				Message:  describeFieldError(fieldErrs[0]),
			}
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	if strings.ContainsAny(cfg.HeadingPrefix, "\r\n") {
		return &ValidationError{
			FilePath: filePath,
			Field:    "heading_prefix",
			Message:  "must not contain line breaks",
		}
	}

	return nil
}

// yaml.v3 prefixes syntax errors with "yaml: line N:" and sometimes "column M:".
var yamlPosition = regexp.MustCompile(`^yaml: line (\d+):(?: column (\d+):)? (.*)$`)

type yamlErrorPosition struct {
	line    int
	column  int
	message string
}

// parseYAMLError splits a yaml.v3 error message into position and text.
// Column defaults to 1 when only a line is reported.
func parseYAMLError(msg string) yamlErrorPosition {
	m := yamlPosition.FindStringSubmatch(msg)
	if m == nil {
		return yamlErrorPosition{message: strings.TrimPrefix(msg, "yaml: ")}
	}

	pos := yamlErrorPosition{column: 1, message: m[3]}
	pos.line, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		pos.column, _ = strconv.Atoi(m[2])
	}
	return pos
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "failed validation: " + fe.Tag()
	}
}
