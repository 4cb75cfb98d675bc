package a11y

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spexop/theme/pkg/colormath"
	"github.com/spexop/theme/pkg/theme"
)

func sampleTheme() theme.Config {
	return theme.Default()
}

// poorTheme fails the body text, primary and error contrast checks.
func poorTheme() theme.Config {
	cfg := theme.Default()
	cfg.Meta.Name = "Washed Out"
	cfg.Colors.Text = "#eeeeee"
	cfg.Colors.TextSecondary = "#cccccc"
	cfg.Colors.TextMuted = "#cccccc"
	cfg.Colors.Primary = "#eeeeee"
	cfg.Colors.Error = "#fee2e2"
	return cfg
}

func findCheck(t *testing.T, r Result, id string) Check {
	t.Helper()
	for _, c := range r.Checks {
		if c.ID == id {
			return c
		}
	}
	require.Failf(t, "check not found", "no check %q", id)
	return Check{}
}

func findIssue(t *testing.T, r Result, field string) Issue {
	t.Helper()
	for _, issue := range r.Issues {
		if issue.Field == field {
			return issue
		}
	}
	require.Failf(t, "issue not found", "no issue for %q", field)
	return Issue{}
}

func TestAuditDefaultTheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		level    colormath.Level
		passed   bool
		summary  Summary
		passRate int
	}{
		{level: colormath.LevelAA, passed: true, summary: Summary{TotalChecks: 9, Passed: 8, Failed: 0, Warnings: 1}, passRate: 89},
		{level: colormath.LevelAAA, passed: false, summary: Summary{TotalChecks: 9, Passed: 6, Failed: 1, Warnings: 2}, passRate: 67},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.level), func(t *testing.T) {
			t.Parallel()

			result := Audit(sampleTheme(), tc.level)
			require.Equal(t, tc.level, result.Level)
			require.Equal(t, tc.passed, result.Passed)
			require.Equal(t, tc.summary, result.Summary)
			require.Equal(t, tc.passRate, result.PassRate)
			require.Len(t, result.Checks, tc.summary.TotalChecks)
			require.Equal(t, SeverityWarning, findIssue(t, result, "colors.border").Severity)
		})
	}
}

func TestAuditDefaultsToAA(t *testing.T) {
	t.Parallel()

	require.Equal(t, colormath.LevelAA, Audit(sampleTheme(), "").Level)
}

func TestAuditMaximumContrastPassesAAA(t *testing.T) {
	t.Parallel()

	cfg := sampleTheme()
	cfg.Colors.Text = "#000000"
	cfg.Colors.Surface = "#ffffff"
	cfg.Colors.Primary = "#1d4ed8"

	result := Audit(cfg, colormath.LevelAAA)
	require.True(t, result.Passed)
	require.Empty(t, result.Errors())
	require.InDelta(t, 21.0, findCheck(t, result, "text-surface").Value, 1e-9)
}

func TestAuditSecondaryTextStaysWarningUnderAAA(t *testing.T) {
	t.Parallel()

	cfg := sampleTheme()
	cfg.Colors.TextSecondary = "#64748b"

	aa := Audit(cfg, colormath.LevelAA)
	require.True(t, findCheck(t, aa, "text-secondary-surface").Passed)

	aaa := Audit(cfg, colormath.LevelAAA)
	issue := findIssue(t, aaa, "colors.textSecondary")
	require.Equal(t, SeverityWarning, issue.Severity)
	require.Contains(t, issue.Message, "AAA enhanced requirement")
}

func TestAuditSeverities(t *testing.T) {
	t.Parallel()

	result := Audit(poorTheme(), colormath.LevelAA)
	require.False(t, result.Passed)
	require.Equal(t, Summary{TotalChecks: 9, Passed: 3, Failed: 3, Warnings: 3}, result.Summary)
	require.Equal(t, 33, result.PassRate)

	for field, severity := range map[string]Severity{
		"colors.text":          SeverityError,
		"colors.primary":       SeverityError,
		"colors.error":         SeverityError,
		"colors.textSecondary": SeverityWarning,
		"colors.textMuted":     SeverityWarning,
		"colors.border":        SeverityWarning,
	} {
		require.Equal(t, severity, findIssue(t, result, field).Severity, field)
	}
}

func TestAuditSkipsUndefinedStatusColors(t *testing.T) {
	t.Parallel()

	cfg := sampleTheme()
	cfg.Colors = cfg.Colors.Without(theme.ColorSuccess, theme.ColorError, theme.ColorWarning)

	result := Audit(cfg, colormath.LevelAA)
	require.Equal(t, 6, result.Summary.TotalChecks)
}

func TestAuditWarnsAboutSmallBaseSize(t *testing.T) {
	t.Parallel()

	cfg := sampleTheme()
	cfg.Typography.BaseSize = 12

	result := Audit(cfg, colormath.LevelAA)
	issue := findIssue(t, result, "typography.baseSize")
	require.Equal(t, SeverityWarning, issue.Severity)
	require.Contains(t, issue.Message, "12px")
	require.True(t, result.Passed)
}

func TestAuditToleratesUnparseableColors(t *testing.T) {
	t.Parallel()

	cfg := sampleTheme()
	cfg.Colors.Surface = "nope"

	require.NotPanics(t, func() {
		result := Audit(cfg, colormath.LevelAA)
		require.False(t, result.Passed)
		require.Contains(t, findIssue(t, result, "colors.text").Message, "cannot be checked")
	})
}

func TestIssuesCarryWorkingSuggestions(t *testing.T) {
	t.Parallel()

	result := Audit(sampleTheme(), colormath.LevelAAA)
	issue := findIssue(t, result, "colors.primary")
	require.NotEmpty(t, issue.Suggestion)
	require.Contains(t, issue.Recommendation, "Darken colors.primary")

	ratio, err := colormath.CalculateContrastRatio(issue.Suggestion, "#ffffff")
	require.NoError(t, err)
	require.GreaterOrEqual(t, ratio, colormath.UIAAA)
}

func TestSuggestColorLightensOnDarkSurfaces(t *testing.T) {
	t.Parallel()

	suggestion, ok := SuggestColor("#334155", "#0f172a", colormath.TextAA)
	require.True(t, ok)

	darker, err := colormath.IsDarker("#334155", suggestion)
	require.NoError(t, err)
	require.True(t, darker)

	_, ok = SuggestColor("bad", "#ffffff", colormath.TextAA)
	require.False(t, ok)
}

func TestIsAccessible(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(c *theme.Colors)
		want   bool
	}{
		{name: "default", mutate: func(*theme.Colors) {}, want: true},
		{name: "faint text", mutate: func(c *theme.Colors) { c.Text = "#999999" }, want: false},
		{name: "faint primary", mutate: func(c *theme.Colors) { c.Primary = "#cccccc" }, want: false},
		{name: "invalid surface", mutate: func(c *theme.Colors) { c.Surface = "" }, want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			colors := sampleTheme().Colors
			tc.mutate(&colors)
			require.Equal(t, tc.want, IsAccessible(colors))
		})
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	require.Equal(t, 100, Score(sampleTheme()))
	require.Equal(t, 40, Score(poorTheme()))
}

func TestScoreIsMonotonic(t *testing.T) {
	t.Parallel()

	cfg := poorTheme()
	before := Score(cfg)

	steps := []func(c *theme.Config){
		func(c *theme.Config) { c.Colors.Primary = "#1d4ed8" },
		func(c *theme.Config) { c.Colors.Text = "#0f172a" },
		func(c *theme.Config) { c.Colors.Error = "#b91c1c" },
		func(c *theme.Config) { c.Colors.TextMuted = "#475569" },
	}
	for _, step := range steps {
		step(&cfg)
		after := Score(cfg)
		require.GreaterOrEqual(t, after, before)
		require.LessOrEqual(t, after, 100)
		before = after
	}
}

func TestRecommendations(t *testing.T) {
	t.Parallel()

	good := Recommendations(sampleTheme())
	require.Equal(t, []string{
		"Consider addressing 1 warning to improve accessibility",
		"Theme meets WCAG AA; increase contrast further to reach AAA compliance",
	}, good)

	poor := Recommendations(poorTheme())
	require.Len(t, poor, 5)
	require.Equal(t, "Fix 3 critical accessibility issues", poor[0])
	require.Contains(t, poor[1], "colors.text")
	require.Equal(t, "Consider addressing 3 warnings to improve accessibility", poor[4])
}

func TestGenerateReport(t *testing.T) {
	t.Parallel()

	report := GenerateReport(sampleTheme(), colormath.LevelAA)
	require.Equal(t, "Accessibility Report: Spexop Default", report.Title)
	require.Equal(t, 100, report.Score)
	require.Equal(t, colormath.LevelAA, report.Level)
	require.Contains(t, report.Summary, "Meets WCAG AA")

	titles := make([]string, 0, len(report.Sections))
	for _, s := range report.Sections {
		titles = append(titles, s.Title)
	}
	require.Equal(t, []string{SectionPassed, SectionText, SectionUI, SectionTypography}, titles)
	require.Len(t, report.Sections[0].Items, 8)
	require.Empty(t, report.Sections[1].Items)
	require.Len(t, report.Sections[2].Items, 1)
	require.Equal(t, StatusWarning, report.Sections[2].Items[0].Status)

	poor := GenerateReport(poorTheme(), colormath.LevelAA)
	require.Contains(t, poor.Summary, "Does not meet WCAG AA")
	require.Equal(t, StatusFail, poor.Sections[1].Items[0].Status)
}

func TestBatchAuditAndCompare(t *testing.T) {
	t.Parallel()

	themes := []theme.Config{poorTheme(), sampleTheme()}
	entries := BatchAudit(themes, colormath.LevelAA)
	require.Len(t, entries, 2)
	require.Equal(t, "Washed Out", entries[0].Name)
	require.False(t, entries[0].Result.Passed)

	comparison := Compare(themes)
	require.Equal(t, "Spexop Default", comparison.Best.Name)
	require.Equal(t, "Washed Out", comparison.Worst.Name)
	require.InDelta(t, 70.0, comparison.Average, 1e-9)

	empty := Compare(nil)
	require.Nil(t, empty.Best)
	require.Empty(t, empty.Entries)
}
