package a11y

import (
	"fmt"

	"github.com/spexop/theme/pkg/colormath"
	"github.com/spexop/theme/pkg/theme"
)

// Status is the display state of a report item.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusWarning Status = "warning"
)

// Report section titles.
const (
	SectionPassed     = "Passed Checks"
	SectionText       = "Text Contrast"
	SectionUI         = "UI Element Contrast"
	SectionTypography = "Typography & Structure"
)

// ReportItem is one line of a report section.
type ReportItem struct {
	Check       string  `json:"check"`
	Description string  `json:"description"`
	Status      Status  `json:"status"`
	Value       float64 `json:"value"`
	Required    float64 `json:"required"`
	Message     string  `json:"message,omitempty"`
	Suggestion  string  `json:"suggestion,omitempty"`
}

// ReportSection groups report items under a title.
type ReportSection struct {
	Title string       `json:"title"`
	Items []ReportItem `json:"items"`
}

// Report is a human-oriented rendering of an audit.
type Report struct {
	Title    string          `json:"title"`
	Summary  string          `json:"summary"`
	Score    int             `json:"score"`
	Level    colormath.Level `json:"level"`
	Result   Result          `json:"result"`
	Sections []ReportSection `json:"sections"`
}

// GenerateReport audits cfg at level and groups the outcome into the four
// report sections. Every section is present, possibly empty.
func GenerateReport(cfg theme.Config, level colormath.Level) Report {
	result := Audit(cfg, level)

	issues := make(map[string]Issue, len(result.Issues))
	for _, issue := range result.Issues {
		issues[issue.Check] = issue
	}

	sections := []ReportSection{
		{Title: SectionPassed, Items: []ReportItem{}},
		{Title: SectionText, Items: []ReportItem{}},
		{Title: SectionUI, Items: []ReportItem{}},
		{Title: SectionTypography, Items: []ReportItem{}},
	}

	for _, check := range result.Checks {
		item := ReportItem{
			Check:       check.ID,
			Description: check.Description,
			Status:      StatusPass,
			Value:       check.Value,
			Required:    check.Required,
		}
		if check.Passed {
			sections[0].Items = append(sections[0].Items, item)
			continue
		}

		issue := issues[check.ID]
		item.Message = issue.Message
		item.Suggestion = issue.Suggestion
		item.Status = StatusWarning
		if issue.Severity == SeverityError {
			item.Status = StatusFail
		}

		switch check.Category {
		case CategoryText:
			sections[1].Items = append(sections[1].Items, item)
		case CategoryUI:
			sections[2].Items = append(sections[2].Items, item)
		default:
			sections[3].Items = append(sections[3].Items, item)
		}
	}

	return Report{
		Title:    fmt.Sprintf("Accessibility Report: %s", cfg.Meta.Name),
		Summary:  summarize(result),
		Score:    Score(cfg),
		Level:    result.Level,
		Result:   result,
		Sections: sections,
	}
}

func summarize(r Result) string {
	if r.Passed {
		return fmt.Sprintf("Meets WCAG %s: %d of %d checks passed (%d%%), %d %s",
			r.Level, r.Summary.Passed, r.Summary.TotalChecks, r.PassRate,
			r.Summary.Warnings, plural(r.Summary.Warnings, "warning", "warnings"))
	}
	return fmt.Sprintf("Does not meet WCAG %s: %d %s, %d %s (%d%% of checks passed)",
		r.Level, r.Summary.Failed, plural(r.Summary.Failed, "error", "errors"),
		r.Summary.Warnings, plural(r.Summary.Warnings, "warning", "warnings"), r.PassRate)
}
