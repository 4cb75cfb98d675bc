package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spexop/theme/internal/themefile"
	"github.com/spexop/theme/pkg/validate"
)

type validateOptions struct {
	JSON bool
}

type validateOutput struct {
	File   string          `json:"file"`
	Result validate.Result `json:"result"`
}

func newValidateCmd(state *app) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <theme-file>...",
		Short: "Check theme files against the theme schema",
		Long: `Validate reports every schema problem in each theme file without
modifying it. Exit code 1 means at least one file is invalid; with --strict,
warnings also count.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, state, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")

	return cmd
}

func runValidate(cmd *cobra.Command, state *app, opts validateOptions, paths []string) error {
	validateOpts := state.settings.ValidateOptions()
	out := state.renderer(cmd)

	var (
		results []validateOutput
		invalid int
	)
	for _, path := range paths {
		doc, err := themefile.DecodeFile(path)
		if err != nil {
			return err
		}

		result := validate.ValidateDocument(doc, validateOpts)
		state.log.WithFields(map[string]any{
			"file":     path,
			"valid":    result.Valid,
			"errors":   len(result.Errors()),
			"warnings": len(result.Warnings()),
		}).Debug("validated theme")

		if !result.Valid {
			invalid++
		}
		if opts.JSON {
			results = append(results, validateOutput{File: path, Result: result})
			continue
		}
		out.Validation(path, result)
	}

	if opts.JSON {
		if err := writeJSON(cmd, results); err != nil {
			return err
		}
	}

	if invalid > 0 {
		return failed(fmt.Errorf("%d of %d theme(s) failed validation", invalid, len(paths)))
	}
	return nil
}
