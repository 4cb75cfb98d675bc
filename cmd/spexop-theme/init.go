package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spexop/theme/internal/themefile"
	"github.com/spexop/theme/pkg/theme"
)

type initOptions struct {
	Name  string
	Force bool
}

func newInitCmd() *cobra.Command {
	opts := initOptions{}

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default theme as a starting point",
		Long: `Init writes the built-in default theme to path (theme.json when omitted).
A .yaml or .yml extension writes YAML. Existing files are kept unless --force
is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "theme.json"
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(cmd, opts, path)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Theme name (default: the built-in name)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, opts initOptions, path string) error {
	if !opts.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	cfg := theme.Default()
	if opts.Name != "" {
		cfg.Meta.Name = opts.Name
	}

	if err := themefile.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	return nil
}
