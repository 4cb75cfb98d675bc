// Package sanitize turns untrusted JSON or YAML theme documents into
// well-typed theme.Config values.
//
// Sanitization fails fast: any value that cannot be coerced into its expected
// type aborts with a *errors.SanitizationError naming the field. The only
// exceptions are font weights and line heights, which fall back to defaults.
package sanitize

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	themeerrors "github.com/spexop/theme/pkg/errors"
	"github.com/spexop/theme/pkg/logger"
	"github.com/spexop/theme/pkg/theme"
	"github.com/spexop/theme/pkg/validate"
)

const (
	defaultMaxStringLength  = 1000
	defaultMaxDepth         = 10
	descriptionLengthFactor = 5
)

// Options tunes sanitization. The zero value is the recommended setting for
// untrusted input: strings are trimmed, numeric strings are accepted and the
// limits below take their defaults.
type Options struct {
	// KeepWhitespace disables trimming of leading and trailing whitespace.
	KeepWhitespace bool
	// MaxStringLength caps strings in runes; meta.description gets five times
	// this limit. Zero means 1000.
	MaxStringLength int
	// StrictNumbers rejects numeric strings such as "16" where numbers are
	// expected.
	StrictNumbers bool
	// MaxDepth bounds the nesting depth of the input document. Zero means 10.
	MaxDepth int
	// Validation is applied by SanitizeAndValidate.
	Validation validate.Options
	// Logger receives fallback warnings. Nil disables logging.
	Logger *logger.Logger
}

// DefaultOptions returns the recommended settings for untrusted input.
func DefaultOptions() Options {
	return Options{
		MaxStringLength: defaultMaxStringLength,
		MaxDepth:        defaultMaxDepth,
	}
}

func (o Options) normalize() Options {
	if o.MaxStringLength <= 0 {
		o.MaxStringLength = defaultMaxStringLength
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = defaultMaxDepth
	}
	return o
}

// Sanitize coerces raw into a Config. raw is usually the result of decoding
// JSON or YAML into an `any`; typed Config values are accepted too and are
// re-sanitized, which is idempotent.
func Sanitize(raw any, opts Options) (theme.Config, error) {
	s := &sanitizer{opts: opts.normalize()}

	doc, err := toDocument(raw)
	if err != nil {
		return theme.Config{}, err
	}

	root, ok := asObject(doc)
	if !ok {
		return theme.Config{}, mismatch("theme", "object", doc)
	}
	if err := s.checkDepth("theme", root, 0); err != nil {
		return theme.Config{}, err
	}

	for _, section := range theme.RequiredSections() {
		if v, present := root[string(section)]; !present || v == nil {
			return theme.Config{}, themeerrors.NewSanitizationError(string(section), "object", "required section is missing", nil)
		}
	}

	var cfg theme.Config
	if cfg.Meta, err = s.meta(root["meta"]); err != nil {
		return theme.Config{}, err
	}
	if cfg.Colors, err = s.colors(root["colors"]); err != nil {
		return theme.Config{}, err
	}
	if cfg.Typography, err = s.typography(root["typography"]); err != nil {
		return theme.Config{}, err
	}
	if cfg.Spacing, err = s.spacing(root["spacing"]); err != nil {
		return theme.Config{}, err
	}
	if cfg.Borders, err = s.borders(root["borders"]); err != nil {
		return theme.Config{}, err
	}
	if err := s.optional(root, &cfg); err != nil {
		return theme.Config{}, err
	}

	return cfg, nil
}

// toDocument converts typed themes into their generic wire form.
func toDocument(raw any) (any, error) {
	var typed *theme.Config
	switch v := raw.(type) {
	case theme.Config:
		typed = &v
	case *theme.Config:
		if v == nil {
			return nil, themeerrors.NewSanitizationError("theme", "object", "got null", nil)
		}
		typed = v
	default:
		return raw, nil
	}

	data, err := json.Marshal(typed)
	if err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	return doc, nil
}

// FromJSON parses and sanitizes a JSON document. Syntax errors are reported as
// a *errors.ParseError reading "Invalid JSON: ...".
func FromJSON(text string, opts Options) (theme.Config, error) {
	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return theme.Config{}, themeerrors.NewParseError("", 0, err)
	}
	return Sanitize(doc, opts)
}

// FromYAML parses and sanitizes a YAML (or JSON) document.
func FromYAML(data []byte, opts Options) (theme.Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return theme.Config{}, themeerrors.NewParseError("<yaml>", themeerrors.LineFromMessage(err), err)
	}
	return Sanitize(doc, opts)
}

// IsThemeLike reports whether v has the minimal shape of a theme: a meta
// object with string name and version, and a colors object.
func IsThemeLike(v any) bool {
	doc, err := toDocument(v)
	if err != nil {
		return false
	}
	root, ok := asObject(doc)
	if !ok {
		return false
	}

	meta, ok := asObject(root["meta"])
	if !ok {
		return false
	}
	name, nameOK := meta["name"].(string)
	version, versionOK := meta["version"].(string)
	if !nameOK || !versionOK || strings.TrimSpace(name) == "" || strings.TrimSpace(version) == "" {
		return false
	}

	_, ok = asObject(root["colors"])
	return ok
}

// Outcome is the combined result of SanitizeAndValidate.
type Outcome struct {
	Success bool          `json:"success"`
	Theme   *theme.Config `json:"theme,omitempty"`
	Errors  []string      `json:"errors"`
}

// SanitizeAndValidate sanitizes input and validates the result in one step.
// Strings are parsed as JSON and byte slices as YAML. Theme is set whenever
// sanitization succeeded, even if validation then failed.
func SanitizeAndValidate(input any, opts Options) Outcome {
	var (
		cfg theme.Config
		err error
	)
	switch v := input.(type) {
	case string:
		cfg, err = FromJSON(v, opts)
	case []byte:
		cfg, err = FromYAML(v, opts)
	default:
		cfg, err = Sanitize(v, opts)
	}
	if err != nil {
		return Outcome{Errors: []string{err.Error()}}
	}

	result := validate.Validate(cfg, opts.Validation)
	outcome := Outcome{Success: result.Valid, Theme: &cfg, Errors: []string{}}
	for _, issue := range result.Issues {
		if issue.Severity == validate.SeverityError || result.Strict {
			outcome.Errors = append(outcome.Errors, issue.String())
		}
	}
	return outcome
}

// IsSanitizationError reports whether err stems from rejected input rather
// than a parse or internal failure.
func IsSanitizationError(err error) bool {
	var target *themeerrors.SanitizationError
	return errors.As(err, &target)
}
