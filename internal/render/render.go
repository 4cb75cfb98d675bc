// Package render formats validation, audit and diff results for the terminal.
// Plain mode emits undecorated text suitable for pipes and tests.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spexop/theme/pkg/a11y"
	"github.com/spexop/theme/pkg/colormath"
	"github.com/spexop/theme/pkg/diff"
	"github.com/spexop/theme/pkg/theme"
	"github.com/spexop/theme/pkg/validate"
)

const (
	symbolPass    = "✔"
	symbolFail    = "✖"
	symbolWarning = "⚠"
)

// Renderer writes formatted output to a single writer.
type Renderer struct {
	out   io.Writer
	color bool
	st    styles
}

// New returns a Renderer for w. When color is false every style is a no-op.
func New(w io.Writer, color bool) *Renderer {
	st := plainStyles()
	if color {
		st = colorStyles(lipgloss.NewRenderer(w))
	}
	return &Renderer{out: w, color: color, st: st}
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Renderer) println(s string) {
	fmt.Fprintln(r.out, s)
}

// Validation prints a validation result for the theme labelled name.
func (r *Renderer) Validation(name string, res validate.Result) {
	if res.Valid {
		r.println(r.st.pass.Render(fmt.Sprintf("%s %s is valid", symbolPass, name)))
	} else {
		r.println(r.st.fail.Render(fmt.Sprintf("%s %s is invalid", symbolFail, name)))
	}

	for _, issue := range res.Issues {
		style, symbol := r.st.fail, symbolFail
		if issue.Severity == validate.SeverityWarning {
			style, symbol = r.st.warning, symbolWarning
		}
		r.printf("  %s %s\n", style.Render(symbol), issue.String())
		if issue.Hint != "" {
			r.printf("    %s\n", r.st.muted.Render("hint: "+issue.Hint))
		}
		if issue.Example != "" {
			r.printf("    %s\n", r.st.muted.Render("example: "+issue.Example))
		}
	}

	if n := len(res.Issues); n > 0 {
		r.printf("%d error(s), %d warning(s)\n", len(res.Errors()), len(res.Warnings()))
	}
}

// Report prints an accessibility report section by section.
func (r *Renderer) Report(rep a11y.Report) {
	r.println(r.st.title.Render(rep.Title))
	r.println(rep.Summary)
	r.printf("Level: %s  Score: %d/100  Pass rate: %d%%\n", rep.Level, rep.Score, rep.Result.PassRate)

	for _, section := range rep.Sections {
		r.println("")
		r.println(r.st.section.Render(section.Title))
		if len(section.Items) == 0 {
			r.println(r.st.muted.Render("  (none)"))
			continue
		}
		for _, item := range section.Items {
			r.printf("  %s %s", r.status(item.Status), item.Description)
			if item.Required > 0 {
				r.printf(" (%.2f, requires %.2f)", item.Value, item.Required)
			}
			r.println("")
			if item.Message != "" {
				r.printf("    %s\n", item.Message)
			}
			if item.Suggestion != "" {
				r.printf("    %s\n", r.st.muted.Render("suggested: "+item.Suggestion))
			}
		}
	}
}

func (r *Renderer) status(s a11y.Status) string {
	switch s {
	case a11y.StatusPass:
		return r.st.pass.Render(symbolPass)
	case a11y.StatusFail:
		return r.st.fail.Render(symbolFail)
	default:
		return r.st.warning.Render(symbolWarning)
	}
}

// Recommendations prints a numbered list, or nothing when recs is empty.
func (r *Renderer) Recommendations(recs []string) {
	if len(recs) == 0 {
		return
	}
	r.println("")
	r.println(r.st.section.Render("Recommendations"))
	for i, rec := range recs {
		r.printf("  %d. %s\n", i+1, rec)
	}
}

// Batch prints one line per audited theme.
func (r *Renderer) Batch(entries []a11y.Entry) {
	width := nameWidth(entries)
	for _, e := range entries {
		mark := r.st.pass.Render(symbolPass)
		if !e.Result.Passed {
			mark = r.st.fail.Render(symbolFail)
		}
		r.printf("%s %-*s  score %3d  passed %d/%d\n", mark, width, e.Name, e.Score, e.Result.Summary.Passed, e.Result.Summary.TotalChecks)
	}
}

// Comparison prints a batch followed by best, worst and average scores.
func (r *Renderer) Comparison(c a11y.Comparison) {
	r.Batch(c.Entries)
	if c.Best == nil {
		r.println(r.st.muted.Render("no themes to compare"))
		return
	}
	r.println("")
	r.printf("Best:    %s (%d)\n", c.Best.Name, c.Best.Score)
	r.printf("Worst:   %s (%d)\n", c.Worst.Name, c.Worst.Score)
	r.printf("Average: %.1f\n", c.Average)
}

func nameWidth(entries []a11y.Entry) int {
	width := 0
	for _, e := range entries {
		if n := lipgloss.Width(e.Name); n > width {
			width = n
		}
	}
	return width
}

// Swatches prints every defined colour. In colour mode each line carries a
// block painted in that colour.
func (r *Renderer) Swatches(colors theme.Colors) {
	keys := colors.Defined()
	width := 0
	for _, k := range keys {
		if n := len(k); n > width {
			width = n
		}
	}

	for _, k := range keys {
		value, _ := colors.Get(k)
		line := fmt.Sprintf("%-*s  %s", width, k, value)
		if r.color {
			if hex, err := colormath.ToHex(value); err == nil {
				line = r.st.swatch.Background(lipgloss.Color(hex)).Render(" ") + " " + line
			}
		}
		r.println(line)
	}
}

// Changes prints leaf-level differences between two themes.
func (r *Renderer) Changes(changes []diff.Change) {
	if len(changes) == 0 {
		r.println(r.st.muted.Render("no differences"))
		return
	}
	for _, c := range changes {
		switch {
		case c.Before == nil:
			r.printf("%s %s = %v\n", r.st.added.Render("+"), c.Path, c.After)
		case c.After == nil:
			r.printf("%s %s (was %v)\n", r.st.removed.Render("-"), c.Path, c.Before)
		default:
			r.printf("~ %s: %v -> %v\n", c.Path, c.Before, c.After)
		}
	}
}

// Diff prints a unified diff, colouring added and removed lines.
func (r *Renderer) Diff(text string) {
	if text == "" {
		r.println(r.st.muted.Render("no differences"))
		return
	}
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			r.println(r.st.section.Render(line))
		case strings.HasPrefix(line, "@@"):
			r.println(r.st.hunk.Render(line))
		case strings.HasPrefix(line, "+"):
			r.println(r.st.added.Render(line))
		case strings.HasPrefix(line, "-"):
			r.println(r.st.removed.Render(line))
		default:
			r.println(line)
		}
	}
}
