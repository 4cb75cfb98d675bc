package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spexop/theme/internal/render"
	"github.com/spexop/theme/internal/themefile"
	"github.com/spexop/theme/pkg/validate"
)

func newSanitizeCmd(state *app) *cobra.Command {
	out := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "sanitize <theme-file>",
		Short: "Clean untrusted theme input into a well-typed theme",
		Long: `Sanitize trims and caps strings, strips control characters, coerces numbers
and fills typography defaults, then writes the cleaned theme. Use "-" to read
from stdin. The cleaned theme is validated afterwards; validation problems are
printed to stderr and produce exit code 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := themefile.Load(args[0], state.sanitizeOptions())
			if err != nil {
				return err
			}

			if err := out.emit(cmd, cfg); err != nil {
				return err
			}

			result := validate.Validate(cfg, state.settings.ValidateOptions())
			if !result.Valid {
				render.New(cmd.ErrOrStderr(), false).Validation(args[0], result)
				return failed(fmt.Errorf("sanitized theme %q is still invalid", cfg.Meta.Name))
			}
			return nil
		},
	}

	out.register(cmd)

	return cmd
}
