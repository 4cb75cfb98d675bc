// Package validate checks theme documents field by field and reports typed
// issues. Validation is diagnostic: it never fails, it only describes.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/spexop/theme/pkg/colormath"
	"github.com/spexop/theme/pkg/theme"
)

// Severity classifies an Issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue describes one problem found in a theme.
type Issue struct {
	Field    string   `json:"field"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Hint     string   `json:"hint,omitempty"`
	Example  string   `json:"example,omitempty"`
	DocsURL  string   `json:"docsUrl,omitempty"`
}

// String renders the issue as "field: message".
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// ColorOptions tunes colour format acceptance.
type ColorOptions struct {
	// AllowRGB permits rgb()/rgba() notation. Nil means true.
	AllowRGB *bool
}

// Options configures a validation run. The zero value is the default.
type Options struct {
	// Strict counts warnings against Result.Valid.
	Strict       bool
	ColorOptions ColorOptions
}

func (o Options) allowRGB() bool {
	return o.ColorOptions.AllowRGB == nil || *o.ColorOptions.AllowRGB
}

// Bool returns a pointer to b, for populating optional flags.
func Bool(b bool) *bool {
	return &b
}

// Result is the outcome of a validation run. Issues holds both errors and
// warnings in discovery order.
type Result struct {
	Valid  bool    `json:"valid"`
	Strict bool    `json:"strict"`
	Issues []Issue `json:"errors"`
}

// Errors returns the error-severity issues.
func (r Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity issues.
func (r Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

// Messages renders every issue as "field: message".
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		out = append(out, issue.String())
	}
	return out
}

func (r Result) filter(sev Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			out = append(out, issue)
		}
	}
	return out
}

// Validate checks a typed theme.
func Validate(cfg theme.Config, opts Options) Result {
	var issues []Issue

	if err := validatorInstance().Struct(cfg); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			for _, fe := range ves {
				issues = append(issues, issueFromFieldError(fe))
			}
		} else {
			issues = append(issues, Issue{Field: "theme", Severity: SeverityError, Message: err.Error()})
		}
	}

	issues = append(issues, checkDarkModeColors(cfg)...)
	if !opts.allowRGB() {
		issues = append(issues, checkRGBDisallowed(cfg)...)
	}
	issues = append(issues, checkRecommendedRanges(cfg)...)

	return buildResult(issues, opts)
}

// ValidateDocument checks an untyped value, such as the result of decoding a
// JSON file into interface{}. Any Go value is accepted: values that are not
// objects produce the full set of missing-field errors, and fields with the
// wrong JSON type are reported rather than aborting the walk.
func ValidateDocument(raw any, opts Options) Result {
	switch v := raw.(type) {
	case theme.Config:
		return Validate(v, opts)
	case *theme.Config:
		if v != nil {
			return Validate(*v, opts)
		}
	case map[string]any:
		return validateMap(v, opts)
	}

	root := Issue{
		Field:    "theme",
		Severity: SeverityError,
		Message:  fmt.Sprintf("Theme must be an object, got %s", describe(raw)),
		Hint:     "A theme is a JSON object with meta, colors, typography, spacing and borders sections",
		DocsURL:  docsURL("theme"),
	}
	result := Validate(theme.Config{}, opts)
	result.Issues = append([]Issue{root}, result.Issues...)
	return buildResult(result.Issues, opts)
}

func validateMap(doc map[string]any, opts Options) Result {
	var typeIssues []Issue

	data, err := json.Marshal(doc)
	if err != nil {
		typeIssues = append(typeIssues, Issue{Field: "theme", Severity: SeverityError, Message: fmt.Sprintf("Theme is not serialisable: %v", err)})
		data = []byte("{}")
	}

	var cfg theme.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "theme"
			}
			typeIssues = append(typeIssues, Issue{
				Field:    field,
				Severity: SeverityError,
				Message:  fmt.Sprintf("Expected %s for %s, got %s", typeErr.Type.String(), field, typeErr.Value),
				Hint:     hintFor(field),
				DocsURL:  docsURL(field),
			})
		} else {
			typeIssues = append(typeIssues, Issue{Field: "theme", Severity: SeverityError, Message: err.Error()})
		}
	}

	result := Validate(cfg, opts)
	return buildResult(append(typeIssues, result.Issues...), opts)
}

func buildResult(issues []Issue, opts Options) Result {
	valid := true
	for _, issue := range issues {
		if issue.Severity == SeverityError || (opts.Strict && issue.Severity == SeverityWarning) {
			valid = false
			break
		}
	}
	return Result{Valid: valid, Strict: opts.Strict, Issues: issues}
}

func checkDarkModeColors(cfg theme.Config) []Issue {
	if cfg.DarkMode == nil || cfg.DarkMode.Colors == nil {
		return nil
	}
	var issues []Issue
	for _, k := range cfg.DarkMode.Colors.Defined() {
		value, _ := cfg.DarkMode.Colors.Get(k)
		if !colormath.IsValid(value) {
			issues = append(issues, invalidColorIssue("darkMode.colors."+string(k), value))
		}
	}
	return issues
}

// checkRGBDisallowed reports rgb() values anywhere a colour can appear:
// the palette, the dark palette and every button or card variant.
func checkRGBDisallowed(cfg theme.Config) []Issue {
	var issues []Issue
	visit := func(field, value string) {
		if value == "" || colormath.DetectFormat(value) != colormath.FormatRGB {
			return
		}
		issues = append(issues, Issue{
			Field:    field,
			Severity: SeverityError,
			Message:  fmt.Sprintf("RGB colors are not allowed for %s: %q", field, value),
			Hint:     "This theme is validated with RGB notation disabled; convert the value to hex or hsl()",
			Example:  `"#3b82f6" or "hsl(217, 91%, 60%)"`,
			DocsURL:  docsURL(field),
		})
	}

	cfg.Colors.Each(func(k theme.ColorKey, value string) { visit("colors."+string(k), value) })
	eachComponentColor("", cfg.Buttons, cfg.Cards, visit)

	if dm := cfg.DarkMode; dm != nil {
		if dm.Colors != nil {
			dm.Colors.Each(func(k theme.ColorKey, value string) { visit("darkMode.colors."+string(k), value) })
		}
		eachComponentColor("darkMode.", dm.Buttons, dm.Cards, visit)
	}
	return issues
}

// eachComponentColor calls fn with the dotted path of every colour set on a
// button or card variant, in declaration order.
func eachComponentColor(prefix string, buttons *theme.Buttons, cards *theme.Cards, fn func(field, value string)) {
	type variant struct {
		name   string
		colors *theme.VariantColors
	}
	var variants []variant
	if buttons != nil {
		variants = append(variants,
			variant{"buttons.primary", buttons.Primary},
			variant{"buttons.secondary", buttons.Secondary},
			variant{"buttons.outline", buttons.Outline},
			variant{"buttons.ghost", buttons.Ghost},
			variant{"buttons.danger", buttons.Danger},
		)
	}
	if cards != nil {
		variants = append(variants,
			variant{"cards.default", cards.Default},
			variant{"cards.elevated", cards.Elevated},
			variant{"cards.outlined", cards.Outlined},
			variant{"cards.filled", cards.Filled},
		)
	}

	for _, v := range variants {
		if v.colors == nil {
			continue
		}
		base := prefix + v.name + "."
		fn(base+"background", v.colors.Background)
		fn(base+"text", v.colors.Text)
		fn(base+"border", v.colors.Border)
		fn(base+"backgroundHover", v.colors.BackgroundHover)
		fn(base+"textHover", v.colors.TextHover)
		fn(base+"borderHover", v.colors.BorderHover)
	}
}

func describe(v any) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, int32, uint, uint64, json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
