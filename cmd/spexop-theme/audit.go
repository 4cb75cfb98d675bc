package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spexop/theme/internal/themefile"
	"github.com/spexop/theme/pkg/a11y"
	"github.com/spexop/theme/pkg/colormath"
)

type auditOptions struct {
	Level   string
	JSON    bool
	Compare bool
}

type auditOutput struct {
	Report          a11y.Report `json:"report"`
	Recommendations []string    `json:"recommendations"`
}

func newAuditCmd(state *app) *cobra.Command {
	opts := auditOptions{}

	cmd := &cobra.Command{
		Use:   "audit <theme-file>...",
		Short: "Audit themes for WCAG contrast and readability",
		Long: `Audit checks text and UI colours against the surface colour at WCAG AA or
AAA. A single theme produces a full report with recommendations; several
themes produce one line each, or a ranking with --compare. Exit code 1 means
at least one theme has a critical issue.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, state, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Level, "level", "", "WCAG level: AA or AAA (default from settings)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")
	cmd.Flags().BoolVar(&opts.Compare, "compare", false, "Rank the themes by accessibility score (always at AA)")

	return cmd
}

func parseLevel(s string, fallback colormath.Level) (colormath.Level, error) {
	if s == "" {
		return fallback, nil
	}
	level := colormath.Level(strings.ToUpper(strings.TrimSpace(s)))
	if level != colormath.LevelAA && level != colormath.LevelAAA {
		return "", fmt.Errorf("unsupported WCAG level %q (want AA or AAA)", s)
	}
	return level, nil
}

func runAudit(cmd *cobra.Command, state *app, opts auditOptions, paths []string) error {
	level, err := parseLevel(opts.Level, state.settings.AuditLevel())
	if err != nil {
		return err
	}

	themes, err := themefile.LoadAll(paths, state.sanitizeOptions())
	if err != nil {
		return err
	}

	out := state.renderer(cmd)

	switch {
	case opts.Compare:
		comparison := a11y.Compare(themes)
		if opts.JSON {
			return writeJSON(cmd, comparison)
		}
		out.Comparison(comparison)
		return nil

	case len(themes) == 1:
		report := a11y.GenerateReport(themes[0], level)
		recs := a11y.Recommendations(themes[0])
		state.log.WithFields(map[string]any{
			"theme":  themes[0].Meta.Name,
			"level":  level,
			"score":  report.Score,
			"issues": len(report.Result.Issues),
		}).Debug("audited theme")

		if opts.JSON {
			if err := writeJSON(cmd, auditOutput{Report: report, Recommendations: recs}); err != nil {
				return err
			}
		} else {
			out.Report(report)
			out.Recommendations(recs)
		}
		if !report.Result.Passed {
			return failed(fmt.Errorf("theme %q does not meet WCAG %s", themes[0].Meta.Name, level))
		}
		return nil

	default:
		entries := a11y.BatchAudit(themes, level)
		if opts.JSON {
			if err := writeJSON(cmd, entries); err != nil {
				return err
			}
		} else {
			out.Batch(entries)
		}

		failing := 0
		for _, e := range entries {
			if !e.Result.Passed {
				failing++
			}
		}
		if failing > 0 {
			return failed(fmt.Errorf("%d of %d theme(s) do not meet WCAG %s", failing, len(entries), level))
		}
		return nil
	}
}
