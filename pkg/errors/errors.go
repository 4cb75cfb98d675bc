package errors

import (
	"fmt"
	"regexp"
	"strconv"
)

// ParseError represents a JSON or YAML syntax failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	switch {
	case e.Path == "":
		return fmt.Sprintf("Invalid JSON: %s", e.Message)
	case e.Line > 0:
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	default:
		return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SanitizationError is returned when untrusted theme input cannot be coerced
// into a well-typed value. Field is the dotted path of the offending value and
// Expected names the type or format that would have been accepted.
type SanitizationError struct {
	Field    string
	Expected string
	Message  string
	Err      error
}

// NewSanitizationError constructs a SanitizationError.
func NewSanitizationError(field, expected, message string, err error) error {
	return &SanitizationError{Field: field, Expected: expected, Message: message, Err: err}
}

func (e *SanitizationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Expected != "" {
		msg = fmt.Sprintf("expected %s: %s", e.Expected, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("sanitization error: %s: %s", e.Field, msg)
	}
	return fmt.Sprintf("sanitization error: %s", msg)
}

// Unwrap exposes the underlying error.
func (e *SanitizationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidColorError reports a colour string that matches none of the supported
// hex, rgb() or hsl() grammars.
type InvalidColorError struct {
	Value string
}

// NewInvalidColorError constructs an InvalidColorError.
func NewInvalidColorError(value string) error {
	return &InvalidColorError{Value: value}
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid color %q", e.Value)
}

// CompositionError indicates a merge, override or variant request that could
// not be carried out.
type CompositionError struct {
	Op      string
	Message string
	Err     error
}

// NewCompositionError constructs a CompositionError for the given operation.
func NewCompositionError(op, message string, err error) error {
	return &CompositionError{Op: op, Message: message, Err: err}
}

func (e *CompositionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("composition error [%s]: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("composition error [%s]: %s", e.Op, e.Message)
}

// Unwrap exposes the underlying error.
func (e *CompositionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

var lineNumberPattern = regexp.MustCompile(`line (\d+)`)

// LineFromMessage extracts the first "line N" reference from err's message,
// as produced by the YAML decoder. It returns 0 when none is present.
func LineFromMessage(err error) int {
	if err == nil {
		return 0
	}

	matches := lineNumberPattern.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
