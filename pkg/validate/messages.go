package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spexop/theme/pkg/theme"
)

// DocsBaseURL is prefixed to section anchors in Issue.DocsURL.
const DocsBaseURL = "https://spexop.dev/docs/theming"

const colorExample = `"#3b82f6", "rgb(59, 130, 246)" or "hsl(217, 91%, 60%)"`

var sectionHints = map[string]string{
	"meta":        "Every theme needs a name and a version so it can be identified and upgraded",
	"colors":      "Colors accept hex (#RGB, #RRGGBB, #RRGGBBAA), rgb() or hsl() notation",
	"typography":  "Typography defines the font stack, the base size in px and the modular scale ratio",
	"spacing":     "Spacing derives every gap from baseUnit; 4 or 8 are common choices",
	"borders":     "Border widths are in px; thin/default/thick are usually 1/2/4",
	"darkMode":    "Dark mode colors override the base palette when dark mode is active",
	"buttons":     "Button variant colors accept hex, rgb() or hsl() notation",
	"cards":       "Card variant colors accept hex, rgb() or hsl() notation",
	"radii":       "Radii are non-negative pixel values",
	"breakpoints": "Breakpoints are non-negative viewport widths in px",
	"animations":  "Durations are non-negative milliseconds",
	"opacity":     "Opacity levels range from 0 to 1",
	"grid":        "Grid values are non-negative",
}

var fieldExamples = map[string]string{
	"meta.name":                   `"Ocean Breeze"`,
	"meta.version":                `"1.0.0"`,
	"typography.fontFamily":       `"Inter, system-ui, sans-serif"`,
	"typography.baseSize":         "16",
	"typography.scale":            "1.25",
	"typography.weights.regular":  "400",
	"typography.weights.medium":   "500",
	"typography.weights.semibold": "600",
	"typography.weights.bold":     "700",
	"spacing.baseUnit":            "4",
	"borders.thin":                "1",
	"borders.default":             "2",
	"borders.thick":               "4",
	"borders.defaultStyle":        `"solid"`,
}

func section(field string) string {
	return strings.SplitN(field, ".", 2)[0]
}

func hintFor(field string) string {
	return sectionHints[section(field)]
}

func docsURL(field string) string {
	return DocsBaseURL + "#" + section(field)
}

func exampleFor(field string) string {
	if ex, ok := fieldExamples[field]; ok {
		return ex
	}
	if isColorField(field) {
		return colorExample
	}
	return ""
}

func isColorField(field string) bool {
	switch section(field) {
	case "colors", "buttons", "cards":
		return true
	case "darkMode":
		return strings.HasPrefix(field, "darkMode.colors.") ||
			strings.HasPrefix(field, "darkMode.buttons.") ||
			strings.HasPrefix(field, "darkMode.cards.")
	default:
		return false
	}
}

func issueFromFieldError(fe validator.FieldError) Issue {
	field := fieldPath(fe)
	issue := Issue{
		Field:    field,
		Severity: SeverityError,
		Hint:     hintFor(field),
		Example:  exampleFor(field),
		DocsURL:  docsURL(field),
	}

	switch fe.Tag() {
	case "required":
		issue.Message = fmt.Sprintf("%s is required", field)
		if isColorField(field) {
			issue.Message = fmt.Sprintf("Missing required color %s", field)
		}
	case "themecolor":
		return invalidColorIssue(field, fmt.Sprint(fe.Value()))
	case "gt":
		issue.Message = fmt.Sprintf("%s must be greater than %s (got %v)", field, fe.Param(), fe.Value())
	case "gte", "min":
		issue.Message = fmt.Sprintf("%s must be at least %s (got %v)", field, fe.Param(), fe.Value())
	case "lte", "max":
		issue.Message = fmt.Sprintf("%s must be at most %s (got %v)", field, fe.Param(), fe.Value())
	case "oneof":
		issue.Message = fmt.Sprintf("%s must be one of %s (got %q)", field, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	default:
		issue.Message = fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	}

	return issue
}

func invalidColorIssue(field, value string) Issue {
	return Issue{
		Field:    field,
		Severity: SeverityError,
		Message:  fmt.Sprintf("Invalid color format for %s: %q", field, value),
		Hint:     "Use hex (#RGB, #RRGGBB, #RRGGBBAA), rgb(r, g, b) or hsl(h, s%, l%) notation",
		Example:  colorExample,
		DocsURL:  docsURL(field),
	}
}

type recommendedRange struct {
	field    string
	min, max float64
	unit     string
	hint     string
	value    func(theme.Config) float64
}

var recommendedRanges = []recommendedRange{
	{
		field: "typography.baseSize", min: 12, max: 24, unit: "px",
		hint:  "16px matches the browser default and keeps body text readable",
		value: func(c theme.Config) float64 { return c.Typography.BaseSize },
	},
	{
		field: "typography.scale", min: 1.1, max: 1.5,
		hint:  "Common modular scales are 1.125 (major second), 1.25 (major third) and 1.333 (perfect fourth)",
		value: func(c theme.Config) float64 { return c.Typography.Scale },
	},
	{
		field: "spacing.baseUnit", min: 2, max: 12, unit: "px",
		hint:  "Most design systems use a 4px or 8px base unit",
		value: func(c theme.Config) float64 { return c.Spacing.BaseUnit },
	},
	{
		field: "borders.default", min: 0.5, max: 4, unit: "px",
		hint:  "Design-system convention keeps the default border between 1px and 2px; reserve heavier widths for borders.thick",
		value: func(c theme.Config) float64 { return c.Borders.Default },
	},
}

// checkRecommendedRanges warns about values that are legal but outside the
// ranges designers normally use. Zero values are left to the required checks.
func checkRecommendedRanges(cfg theme.Config) []Issue {
	var issues []Issue
	for _, r := range recommendedRanges {
		v := r.value(cfg)
		if v == 0 || (v >= r.min && v <= r.max) {
			continue
		}
		issues = append(issues, Issue{
			Field:    r.field,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("%s of %v%s is outside the recommended range (%v-%v%s)", r.field, v, r.unit, r.min, r.max, r.unit),
			Hint:     r.hint,
			Example:  exampleFor(r.field),
			DocsURL:  docsURL(r.field),
		})
	}
	return issues
}
