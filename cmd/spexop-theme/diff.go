package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spexop/theme/internal/themefile"
	"github.com/spexop/theme/pkg/diff"
)

type diffOptions struct {
	Changes bool
	JSON    bool
}

func newDiffCmd(state *app) *cobra.Command {
	opts := diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <theme-a> <theme-b>",
		Short: "Show differences between two themes",
		Long: `Diff compares the canonical JSON form of two sanitized themes, so formatting
and key order never show up as changes. --changes lists differing values by
dotted path instead of printing a unified diff. Exit code 1 means the themes
differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, state, opts, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.Changes, "changes", false, "List changed values by path")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output changes in JSON format (implies --changes)")

	return cmd
}

func runDiff(cmd *cobra.Command, state *app, opts diffOptions, pathA, pathB string) error {
	themes, err := themefile.LoadAll([]string{pathA, pathB}, state.sanitizeOptions())
	if err != nil {
		return err
	}
	a, b := themes[0], themes[1]
	out := state.renderer(cmd)

	var differs bool
	if opts.Changes || opts.JSON {
		changes, err := diff.Changes(a, b)
		if err != nil {
			return err
		}
		differs = len(changes) > 0
		if opts.JSON {
			if changes == nil {
				changes = []diff.Change{}
			}
			if err := writeJSON(cmd, changes); err != nil {
				return err
			}
		} else {
			out.Changes(changes)
		}
	} else {
		text, err := diff.Themes(a, b, pathA, pathB)
		if err != nil {
			return err
		}
		differs = text != ""
		out.Diff(text)
	}

	if differs {
		return failed(fmt.Errorf("themes %s and %s differ", pathA, pathB))
	}
	return nil
}
