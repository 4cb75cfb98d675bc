package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spexop/theme/internal/themefile"
)

func newShowCmd(state *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <theme-file>",
		Short: "Print a theme's metadata and colour swatches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := themefile.Load(args[0], state.sanitizeOptions())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", cfg.Meta.Name, cfg.Meta.Version)
			if cfg.Meta.Author != "" {
				fmt.Fprintf(w, "by %s\n", cfg.Meta.Author)
			}
			if cfg.Meta.Description != "" {
				fmt.Fprintln(w, cfg.Meta.Description)
			}
			mode := "light"
			if cfg.IsDark() {
				mode = "dark"
			}
			fmt.Fprintf(w, "mode: %s\n\n", mode)

			state.renderer(cmd).Swatches(cfg.Colors)
			return nil
		},
	}

	return cmd
}
