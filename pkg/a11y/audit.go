// Package a11y audits themes against WCAG 2.1 contrast requirements.
package a11y

import (
	"fmt"
	"math"

	"github.com/spexop/theme/pkg/colormath"
	"github.com/spexop/theme/pkg/theme"
)

// Severity grades an audit issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Category groups checks for reporting.
type Category string

const (
	CategoryText       Category = "text-contrast"
	CategoryUI         Category = "ui-contrast"
	CategoryTypography Category = "typography"
)

// MinBaseSize is the smallest body font size, in px, that does not draw a
// warning.
const MinBaseSize = 14.0

// Check is the outcome of one audit rule.
type Check struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Field       string   `json:"field"`
	Value       float64  `json:"value"`
	Required    float64  `json:"required"`
	Passed      bool     `json:"passed"`
	// Severity applies when the check fails.
	Severity Severity `json:"severity"`
}

// Issue describes a failed check and how to fix it.
type Issue struct {
	Check          string   `json:"check"`
	Field          string   `json:"field"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
	// Suggestion is a replacement colour that meets the requirement, when
	// one could be derived.
	Suggestion string `json:"suggestion,omitempty"`
}

// Summary counts checks by outcome.
type Summary struct {
	TotalChecks int `json:"totalChecks"`
	Passed      int `json:"passed"`
	Failed      int `json:"failed"`
	Warnings    int `json:"warnings"`
}

// Result is the outcome of Audit.
type Result struct {
	Passed   bool            `json:"passed"`
	Level    colormath.Level `json:"level"`
	Issues   []Issue         `json:"issues"`
	Checks   []Check         `json:"checks"`
	PassRate int             `json:"passRate"`
	Summary  Summary         `json:"summary"`
}

// Errors returns the error-severity issues.
func (r Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity issues.
func (r Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r Result) filter(s Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == s {
			out = append(out, issue)
		}
	}
	return out
}

type pairRule struct {
	id          string
	description string
	key         theme.ColorKey
	ui          bool
	severity    Severity
	// optional rules are skipped when the colour is not defined.
	optional bool
}

var pairRules = []pairRule{
	{id: "text-surface", description: "Body text on surface", key: theme.ColorText, severity: SeverityError},
	{id: "text-secondary-surface", description: "Secondary text on surface", key: theme.ColorTextSecondary, severity: SeverityWarning},
	{id: "text-muted-surface", description: "Muted text on surface", key: theme.ColorTextMuted, severity: SeverityWarning},
	{id: "primary-surface", description: "Primary color on surface", key: theme.ColorPrimary, ui: true, severity: SeverityError},
	{id: "border-surface", description: "Border on surface", key: theme.ColorBorder, ui: true, severity: SeverityWarning},
	{id: "success-surface", description: "Success color on surface", key: theme.ColorSuccess, ui: true, severity: SeverityWarning, optional: true},
	{id: "error-surface", description: "Error color on surface", key: theme.ColorError, ui: true, severity: SeverityError, optional: true},
	{id: "warning-surface", description: "Warning color on surface", key: theme.ColorWarning, ui: true, severity: SeverityWarning, optional: true},
}

// Audit runs every contrast and structure check at level. An empty level
// means AA. Unparseable colours fail their check rather than aborting.
func Audit(cfg theme.Config, level colormath.Level) Result {
	if level != colormath.LevelAAA {
		level = colormath.LevelAA
	}

	result := Result{Level: level, Issues: []Issue{}}
	surface := cfg.Colors.Surface

	for _, rule := range pairRules {
		fg, defined := cfg.Colors.Get(rule.key)
		if rule.optional && !defined {
			continue
		}
		check, issue := rule.evaluate(fg, surface, level)
		result.record(check, issue)
	}

	check, issue := baseSizeCheck(cfg.Typography.BaseSize)
	result.record(check, issue)

	for _, issue := range result.Issues {
		if issue.Severity == SeverityError {
			result.Summary.Failed++
		} else {
			result.Summary.Warnings++
		}
	}
	result.Summary.TotalChecks = len(result.Checks)
	result.Passed = result.Summary.Failed == 0
	if result.Summary.TotalChecks > 0 {
		result.PassRate = int(math.Round(100 * float64(result.Summary.Passed) / float64(result.Summary.TotalChecks)))
	}
	return result
}

func (r *Result) record(check Check, issue *Issue) {
	r.Checks = append(r.Checks, check)
	if check.Passed {
		r.Summary.Passed++
		return
	}
	if issue != nil {
		r.Issues = append(r.Issues, *issue)
	}
}

func (rule pairRule) evaluate(fg, bg string, level colormath.Level) (Check, *Issue) {
	field := "colors." + string(rule.key)
	category := CategoryText
	if rule.ui {
		category = CategoryUI
	}

	check := Check{
		ID:          rule.id,
		Description: rule.description,
		Category:    category,
		Field:       field,
		Required:    colormath.RequiredRatio(level, rule.ui),
		Severity:    rule.severity,
	}

	ratio, err := colormath.CalculateContrastRatio(fg, bg)
	if err != nil {
		return check, &Issue{
			Check:          rule.id,
			Field:          field,
			Severity:       rule.severity,
			Message:        fmt.Sprintf("%s cannot be checked: %v", rule.description, err),
			Recommendation: fmt.Sprintf("Set %s and colors.surface to valid colors", field),
		}
	}

	check.Value = ratio
	check.Passed = ratio >= check.Required
	if check.Passed {
		return check, nil
	}

	issue := &Issue{
		Check:          rule.id,
		Field:          field,
		Severity:       rule.severity,
		Message:        contrastMessage(rule, ratio, check.Required, level),
		Recommendation: recommendation(field, fg, bg, check.Required),
	}
	if suggestion, ok := SuggestColor(fg, bg, check.Required); ok {
		issue.Suggestion = suggestion
	}
	return check, issue
}

func contrastMessage(rule pairRule, ratio, required float64, level colormath.Level) string {
	if rule.key == theme.ColorTextSecondary && level == colormath.LevelAAA {
		return fmt.Sprintf("Secondary text contrast %.2f:1 does not meet the AAA enhanced requirement of %.1f:1", ratio, required)
	}
	return fmt.Sprintf("%s contrast %.2f:1 is below the WCAG %s minimum of %.1f:1", rule.description, ratio, level, required)
}

func recommendation(field, fg, bg string, required float64) string {
	darker, err := colormath.IsDarker(fg, bg)
	if err == nil && !darker {
		return fmt.Sprintf("Lighten %s or darken colors.surface to reach at least %.1f:1", field, required)
	}
	return fmt.Sprintf("Darken %s or lighten colors.surface to reach at least %.1f:1", field, required)
}

func baseSizeCheck(size float64) (Check, *Issue) {
	check := Check{
		ID:          "base-font-size",
		Description: "Base font size",
		Category:    CategoryTypography,
		Field:       "typography.baseSize",
		Value:       size,
		Required:    MinBaseSize,
		Passed:      size >= MinBaseSize,
		Severity:    SeverityWarning,
	}
	if check.Passed {
		return check, nil
	}
	return check, &Issue{
		Check:          check.ID,
		Field:          check.Field,
		Severity:       SeverityWarning,
		Message:        fmt.Sprintf("Base font size of %vpx is below the recommended minimum of %vpx", size, MinBaseSize),
		Recommendation: "Use a base font size of at least 14px; 16px matches browser defaults",
	}
}

// SuggestColor moves fg toward black or white, whichever increases contrast
// with bg, until the pair reaches required. It reports false when no blend
// qualifies or the colours cannot be parsed.
func SuggestColor(fg, bg string, required float64) (string, bool) {
	darker, err := colormath.IsDarker(fg, bg)
	if err != nil {
		return "", false
	}
	target := "#000000"
	if !darker {
		target = "#ffffff"
	}

	for step := 1; step <= 20; step++ {
		candidate, err := colormath.Mix(fg, target, float64(step)/20)
		if err != nil {
			return "", false
		}
		ratio, err := colormath.CalculateContrastRatio(candidate, bg)
		if err != nil {
			return "", false
		}
		if ratio >= required {
			return candidate, true
		}
	}
	return "", false
}

// IsAccessible is a quick gate: body text reaches 4.5:1 and the primary
// colour reaches 3:1 against the surface.
func IsAccessible(colors theme.Colors) bool {
	text, err := colormath.CalculateContrastRatio(colors.Text, colors.Surface)
	if err != nil || text < colormath.TextAA {
		return false
	}
	primary, err := colormath.CalculateContrastRatio(colors.Primary, colors.Surface)
	return err == nil && primary >= colormath.UIAA
}

// Score combines the AA pass rate with up to 20 bonus points scaled by the
// AAA pass rate, capped at 100.
func Score(cfg theme.Config) int {
	aa := Audit(cfg, colormath.LevelAA).PassRate
	aaa := Audit(cfg, colormath.LevelAAA).PassRate
	return min(100, aa+int(math.Round(20*float64(aaa)/100)))
}

// Recommendations lists actions in priority order: errors first, then a
// warning summary, then a nudge toward AAA when only AA is met.
func Recommendations(cfg theme.Config) []string {
	aa := Audit(cfg, colormath.LevelAA)
	out := []string{}

	if errs := aa.Errors(); len(errs) > 0 {
		out = append(out, fmt.Sprintf("Fix %d critical accessibility %s", len(errs), plural(len(errs), "issue", "issues")))
		for i, issue := range errs {
			if i == 3 {
				break
			}
			out = append(out, issue.Recommendation)
		}
	}

	if warnings := aa.Warnings(); len(warnings) > 0 {
		out = append(out, fmt.Sprintf("Consider addressing %d %s to improve accessibility", len(warnings), plural(len(warnings), "warning", "warnings")))
	}

	if aa.Passed && !Audit(cfg, colormath.LevelAAA).Passed {
		out = append(out, "Theme meets WCAG AA; increase contrast further to reach AAA compliance")
	}
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
